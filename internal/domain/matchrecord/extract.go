package matchrecord

import (
	"regexp"
	"strings"

	"github.com/riskibarqy/matchstudy/internal/domain/market"
	"github.com/riskibarqy/matchstudy/internal/domain/page"
)

// SectionKind selects the column layout of a history table.
type SectionKind string

const (
	KindHomeHistory SectionKind = "home_history"
	KindAwayHistory SectionKind = "away_history"
	KindHeadToHead  SectionKind = "head_to_head"
)

// Layout holds the cell offsets of one table kind.
type Layout struct {
	Date     int
	Home     int
	Score    int
	Away     int
	Handicap int
	GoalLine int
	// ScoreMarker is the default score span class fragment.
	ScoreMarker string
}

var layouts = map[SectionKind]Layout{
	KindHomeHistory: {Date: 1, Home: 2, Score: 3, Away: 4, Handicap: 14, GoalLine: 19, ScoreMarker: "fscore_1"},
	KindAwayHistory: {Date: 1, Home: 2, Score: 3, Away: 4, Handicap: 14, GoalLine: 19, ScoreMarker: "fscore_2"},
	KindHeadToHead:  {Date: 1, Home: 2, Score: 3, Away: 4, Handicap: 14, GoalLine: 19, ScoreMarker: "fscore_3"},
}

// LayoutFor returns the layout of kind.
func LayoutFor(kind SectionKind) (Layout, bool) {
	l, ok := layouts[kind]
	return l, ok
}

// KindForTable maps a page table to its section kind.
func KindForTable(table page.TableID) SectionKind {
	switch table {
	case page.TableHomeHistory:
		return KindHomeHistory
	case page.TableAwayHistory:
		return KindAwayHistory
	default:
		return KindHeadToHead
	}
}

func (l Layout) maxIndex() int {
	out := l.Date
	for _, idx := range []int{l.Home, l.Score, l.Away, l.Handicap, l.GoalLine} {
		if idx > out {
			out = idx
		}
	}
	return out
}

var (
	scorePattern  = regexp.MustCompile(`(\d+)\s*-\s*(\d+)`)
	teamIDPattern = regexp.MustCompile(`team\((\d+)\)`)
)

const (
	dateSpanName = "timeData"
	dateAttr     = "data-t"
	lineAttr     = "data-o"
)

// Extract reads one history row. Rows without both team names, or too short
// for the layout, are rejected. An empty scoreMarker uses the layout default.
func Extract(row page.Row, scoreMarker string, kind SectionKind) (MatchRecord, bool) {
	layout, ok := LayoutFor(kind)
	if !ok || row == nil || row.CellCount() <= layout.maxIndex() {
		return MatchRecord{}, false
	}
	if scoreMarker == "" {
		scoreMarker = layout.ScoreMarker
	}

	homeCell, _ := row.Cell(layout.Home)
	awayCell, _ := row.Cell(layout.Away)
	home, homeID := teamName(homeCell)
	away, awayID := teamName(awayCell)
	if home == "" || away == "" {
		return MatchRecord{}, false
	}

	dateCell, _ := row.Cell(layout.Date)
	dateText := dateValue(dateCell)

	scoreCell, _ := row.Cell(layout.Score)
	handicapCell, _ := row.Cell(layout.Handicap)
	goalCell, _ := row.Cell(layout.GoalLine)

	record := MatchRecord{
		Date:            ParseDate(dateText),
		DateText:        dateText,
		HomeTeam:        home,
		AwayTeam:        away,
		HomeTeamID:      homeID,
		AwayTeamID:      awayID,
		ScoreRaw:        scoreValue(scoreCell, scoreMarker),
		HandicapLineRaw: LineToken(handicapCell),
		GoalLineRaw:     LineToken(goalCell),
	}
	if v, ok := row.Attr("name"); ok {
		record.GroupingKey = strings.TrimSpace(v)
	}
	if v, ok := row.Attr("index"); ok {
		record.ExternalID = strings.TrimSpace(v)
	}
	if v, ok := row.Attr("vs"); ok && strings.TrimSpace(v) == "1" {
		record.Flagged = true
	}

	return record, true
}

// ExtractAll extracts every usable row and silently drops the rest.
func ExtractAll(rows []page.Row, scoreMarker string, kind SectionKind) []MatchRecord {
	out := make([]MatchRecord, 0, len(rows))
	for _, row := range rows {
		record, ok := Extract(row, scoreMarker, kind)
		if !ok {
			continue
		}
		out = append(out, record)
	}
	return out
}

// LineToken reads a market line from the data-o attribute or, failing that,
// the cell text. Empty cells yield "-".
func LineToken(cell page.Cell) string {
	if cell == nil {
		return "-"
	}
	if v, ok := cell.Attr(lineAttr); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	if v := strings.TrimSpace(cell.Text()); v != "" {
		return v
	}
	return "-"
}

func teamName(cell page.Cell) (string, string) {
	if cell == nil {
		return "", ""
	}
	name := ""
	teamID := ""
	if anchors := cell.Anchors(); len(anchors) > 0 {
		name = strings.TrimSpace(anchors[0].Text)
		if m := teamIDPattern.FindStringSubmatch(anchors[0].OnClick); m != nil {
			teamID = m[1]
		}
	}
	if name == "" {
		name = strings.TrimSpace(cell.Text())
	}
	return name, teamID
}

func dateValue(cell page.Cell) string {
	if cell == nil {
		return ""
	}
	for _, span := range cell.Spans() {
		if span.Name != dateSpanName {
			continue
		}
		if v, ok := span.Attr(dateAttr); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return strings.TrimSpace(span.Text)
	}
	return strings.TrimSpace(cell.Text())
}

func scoreValue(cell page.Cell, marker string) string {
	if cell == nil {
		return market.UnknownScore
	}
	text := ""
	for _, span := range cell.Spans() {
		if marker != "" && strings.Contains(span.Class, marker) {
			text = strings.TrimSpace(span.Text)
			break
		}
	}
	if text == "" {
		text = strings.TrimSpace(cell.Text())
	}
	m := scorePattern.FindStringSubmatch(text)
	if m == nil {
		return market.UnknownScore
	}
	return m[1] + "-" + m[2]
}
