package page

// TableID names one of the history tables on a match page.
type TableID string

const (
	TableHomeHistory TableID = "table_v1"
	TableAwayHistory TableID = "table_v2"
	TableHeadToHead  TableID = "table_v3"
)

// Anchor is a link inside a cell.
type Anchor struct {
	Text    string
	OnClick string
}

// Span is a span element inside a cell.
type Span struct {
	Name  string
	Class string
	Text  string
	Attrs map[string]string
}

// Cell is a read-only view of one table cell.
type Cell interface {
	Text() string
	Attr(name string) (string, bool)
	Anchors() []Anchor
	Spans() []Span
}

// Row is a read-only view of one table row.
type Row interface {
	Cell(index int) (Cell, bool)
	CellCount() int
	Attr(name string) (string, bool)
}

// StandingsLine is one row of a standings block. Header rows carry only
// Header; data rows carry Cells.
type StandingsLine struct {
	Header string
	Cells  []string
}

// StandingsBlock is one team's standings table. Home is set for the block
// listed on the home side of the page.
type StandingsBlock struct {
	Home  bool
	Text  string
	Title string
	Lines []StandingsLine
}

// OverUnderBlock is the over/under summary attached to a history table.
type OverUnderBlock struct {
	Title  string
	Values []string
}

// PanelToken is one piece of a comparison panel in document order: a text
// run outside any span, or the whole text of a span.
type PanelToken struct {
	Text string
	Span bool
}

// ComparisonBlock is one indirect-comparison panel. Stats holds the cell
// texts of each row of the panel's statistics table.
type ComparisonBlock struct {
	Title  string
	Tokens []PanelToken
	Stats  [][]string
}

// Document is an immutable, parsed match page. Implementations must be safe
// for concurrent readers.
type Document interface {
	Rows(table TableID) []Row
	OddsRow() (Row, bool)
	Script(marker string) (string, bool)
	Standings() []StandingsBlock
	OverUnder(table TableID) (OverUnderBlock, bool)
	Comparisons() []ComparisonBlock
	Fingerprint() string
}
