package page

// StaticCell is a plain-value Cell.
type StaticCell struct {
	Content    string
	Attributes map[string]string
	Links      []Anchor
	SpanItems  []Span
}

func (c StaticCell) Text() string { return c.Content }

func (c StaticCell) Attr(name string) (string, bool) {
	v, ok := c.Attributes[name]
	return v, ok
}

func (c StaticCell) Anchors() []Anchor { return c.Links }

func (c StaticCell) Spans() []Span { return c.SpanItems }

// StaticRow is a plain-value Row. Once built it must not be modified.
type StaticRow struct {
	Attributes map[string]string
	Cells      []StaticCell
}

func (r StaticRow) Cell(index int) (Cell, bool) {
	if index < 0 || index >= len(r.Cells) {
		return nil, false
	}
	return r.Cells[index], true
}

func (r StaticRow) CellCount() int { return len(r.Cells) }

func (r StaticRow) Attr(name string) (string, bool) {
	v, ok := r.Attributes[name]
	return v, ok
}

// Attr returns a span attribute.
func (s Span) Attr(name string) (string, bool) {
	v, ok := s.Attrs[name]
	return v, ok
}
