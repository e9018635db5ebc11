// Package document parses match analysis pages into immutable snapshots.
//
// goquery selections are not safe to traverse from several goroutines, so the
// page is walked once and every table, script and summary block the analyzer
// needs is copied into plain values.
package document

import (
	"bytes"
	"io"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchstudy/internal/domain/page"
)

const (
	oddsRowSelector      = `tr#tr_o_1_8[name="earlyOdds"], tr#tr_o_1_31[name="earlyOdds"]`
	standingsSelector    = "div#porletP4"
	comparisonSelector   = "div.football-history-list > div.content"
	overUnderGroupMarker = "Over/Under Odds"
)

var historyTables = []page.TableID{
	page.TableHomeHistory,
	page.TableAwayHistory,
	page.TableHeadToHead,
}

// Document is a parsed match page. It implements page.Document and is safe
// for concurrent readers.
type Document struct {
	rows        map[page.TableID][]page.Row
	odds        page.StaticRow
	hasOdds     bool
	scripts     []string
	standings   []page.StandingsBlock
	overUnder   map[page.TableID]page.OverUnderBlock
	comparisons []page.ComparisonBlock
	fingerprint string
}

var _ page.Document = (*Document)(nil)

// Parse reads the whole page from r.
func Parse(r io.Reader) (*Document, error) {
	if r == nil {
		return nil, crerr.New("document reader is required")
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, crerr.Wrap(err, "read match page")
	}
	return ParseBytes(raw)
}

// ParseBytes parses a page held in memory.
func ParseBytes(raw []byte) (*Document, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, crerr.New("match page is empty")
	}

	gq, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, crerr.Wrap(err, "parse match page")
	}

	doc := &Document{
		rows:        make(map[page.TableID][]page.Row, len(historyTables)),
		overUnder:   make(map[page.TableID]page.OverUnderBlock, 2),
		fingerprint: strconv.FormatUint(xxhash.Sum64(raw), 16),
	}

	for _, table := range historyTables {
		sel := gq.Find("table#" + string(table)).First()
		if sel.Length() == 0 {
			continue
		}
		doc.rows[table] = historyRows(sel, table)
		if block, ok := overUnderBlock(sel); ok {
			doc.overUnder[table] = block
		}
	}

	if odds := gq.Find(oddsRowSelector).First(); odds.Length() > 0 {
		doc.odds = snapshotRow(odds)
		doc.hasOdds = true
	}

	gq.Find("script").Each(func(_ int, s *goquery.Selection) {
		if text := s.Text(); strings.TrimSpace(text) != "" {
			doc.scripts = append(doc.scripts, text)
		}
	})

	doc.standings = standingsBlocks(gq.Find(standingsSelector).First())
	doc.comparisons = comparisonBlocks(gq.Find(comparisonSelector))
	return doc, nil
}

func (d *Document) Rows(table page.TableID) []page.Row {
	return slices.Clone(d.rows[table])
}

func (d *Document) OddsRow() (page.Row, bool) {
	if !d.hasOdds {
		return nil, false
	}
	return d.odds, true
}

// Script returns the first inline script containing marker.
func (d *Document) Script(marker string) (string, bool) {
	for _, script := range d.scripts {
		if strings.Contains(script, marker) {
			return script, true
		}
	}
	return "", false
}

func (d *Document) Standings() []page.StandingsBlock {
	return slices.Clone(d.standings)
}

func (d *Document) OverUnder(table page.TableID) (page.OverUnderBlock, bool) {
	block, ok := d.overUnder[table]
	return block, ok
}

// Comparisons returns the indirect-comparison panels in page order.
func (d *Document) Comparisons() []page.ComparisonBlock {
	return slices.Clone(d.comparisons)
}

// Fingerprint identifies the page content. Equal bytes give equal
// fingerprints.
func (d *Document) Fingerprint() string {
	return d.fingerprint
}

func historyRows(table *goquery.Selection, id page.TableID) []page.Row {
	// table_v1 rows are tr1_<n>, table_v2 rows tr2_<n> and so on.
	suffix := string(id)[len(id)-1:]
	pattern := regexp.MustCompile(`^tr` + regexp.QuoteMeta(suffix) + `_\d+$`)

	var rows []page.Row
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		if rowID, ok := tr.Attr("id"); ok && pattern.MatchString(rowID) {
			rows = append(rows, snapshotRow(tr))
		}
	})
	return rows
}

func snapshotRow(tr *goquery.Selection) page.StaticRow {
	row := page.StaticRow{Attributes: attributes(tr)}
	tr.Find("td").Each(func(_ int, td *goquery.Selection) {
		row.Cells = append(row.Cells, snapshotCell(td))
	})
	return row
}

func snapshotCell(td *goquery.Selection) page.StaticCell {
	cell := page.StaticCell{
		Content:    strings.TrimSpace(td.Text()),
		Attributes: attributes(td),
	}
	td.Find("a").Each(func(_ int, a *goquery.Selection) {
		onClick, _ := a.Attr("onclick")
		cell.Links = append(cell.Links, page.Anchor{
			Text:    strings.TrimSpace(a.Text()),
			OnClick: onClick,
		})
	})
	td.Find("span").Each(func(_ int, s *goquery.Selection) {
		name, _ := s.Attr("name")
		class, _ := s.Attr("class")
		cell.SpanItems = append(cell.SpanItems, page.Span{
			Name:  name,
			Class: class,
			Text:  strings.TrimSpace(s.Text()),
			Attrs: attributes(s),
		})
	})
	return cell
}

func attributes(sel *goquery.Selection) map[string]string {
	if sel.Length() == 0 {
		return nil
	}
	attrs := sel.Nodes[0].Attr
	if len(attrs) == 0 {
		return nil
	}
	out := make(map[string]string, len(attrs))
	for _, attr := range attrs {
		out[attr.Key] = attr.Val
	}
	return out
}

func standingsBlocks(section *goquery.Selection) []page.StandingsBlock {
	if section.Length() == 0 {
		return nil
	}

	sides := []struct {
		div   string
		table string
		home  bool
	}{
		{div: "div.home-div", table: "table.team-table-home", home: true},
		{div: "div.guest-div", table: "table.team-table-guest", home: false},
	}

	var blocks []page.StandingsBlock
	for _, side := range sides {
		div := section.Find(side.div).First()
		if div.Length() == 0 {
			continue
		}
		table := div.Find(side.table).First()
		if table.Length() == 0 {
			continue
		}
		blocks = append(blocks, page.StandingsBlock{
			Home:  side.home,
			Text:  collapseSpace(div.Text()),
			Title: collapseSpace(table.Find("a").First().Text()),
			Lines: standingsLines(table),
		})
	}
	return blocks
}

func standingsLines(table *goquery.Selection) []page.StandingsLine {
	var lines []page.StandingsLine
	table.Find(`tr[align="center"]`).Each(func(_ int, tr *goquery.Selection) {
		if th := tr.Find("th").First(); th.Length() > 0 {
			lines = append(lines, page.StandingsLine{Header: strings.TrimSpace(th.Text())})
			return
		}

		var cells []string
		tr.Find("td").Each(func(i int, td *goquery.Selection) {
			text := td.Text()
			if i == 0 {
				if span := td.Find("span").First(); span.Length() > 0 {
					text = span.Text()
				}
			}
			cells = append(cells, strings.TrimSpace(text))
		})
		if len(cells) > 0 {
			lines = append(lines, page.StandingsLine{Cells: cells})
		}
	})
	return lines
}

func overUnderBlock(table *goquery.Selection) (page.OverUnderBlock, bool) {
	group := table.Find("ul.y-bar li.group").FilterFunction(func(_ int, li *goquery.Selection) bool {
		return strings.Contains(li.Text(), overUnderGroupMarker)
	}).First()
	if group.Length() == 0 {
		return page.OverUnderBlock{}, false
	}

	block := page.OverUnderBlock{
		Title: collapseSpace(group.Find("div.tit span").First().Text()),
	}
	group.Find("span.value").Each(func(_ int, s *goquery.Selection) {
		block.Values = append(block.Values, strings.TrimSpace(s.Text()))
	})
	return block, true
}

func comparisonBlocks(panels *goquery.Selection) []page.ComparisonBlock {
	var blocks []page.ComparisonBlock
	panels.Each(func(_ int, panel *goquery.Selection) {
		block := page.ComparisonBlock{
			Title:  collapseSpace(panel.Find("div.title").First().Text()),
			Tokens: panelTokens(panel, nil),
		}
		panel.Find("table").First().Find("tr").Each(func(_ int, tr *goquery.Selection) {
			var cells []string
			tr.Find("td").Each(func(_ int, td *goquery.Selection) {
				cells = append(cells, strings.TrimSpace(td.Text()))
			})
			block.Stats = append(block.Stats, cells)
		})
		blocks = append(blocks, block)
	})
	return blocks
}

// panelTokens flattens sel into text runs and spans in document order.
// Statistics tables are read separately and skipped here.
func panelTokens(sel *goquery.Selection, tokens []page.PanelToken) []page.PanelToken {
	sel.Contents().Each(func(_ int, node *goquery.Selection) {
		switch goquery.NodeName(node) {
		case "#text":
			if text := collapseSpace(node.Text()); text != "" {
				tokens = append(tokens, page.PanelToken{Text: text})
			}
		case "span":
			tokens = append(tokens, page.PanelToken{Text: collapseSpace(node.Text()), Span: true})
		case "table", "script", "style", "#comment":
		default:
			tokens = panelTokens(node, tokens)
		}
	})
	return tokens
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

