package matchrecord

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Date is a calendar day compared as a (year, month, day) tuple.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// UnknownDate is used for unparsable dates so they sort as the oldest.
var UnknownDate = Date{Year: 1900, Month: 1, Day: 1}

var (
	dayFirstPattern  = regexp.MustCompile(`(\d{1,2})-(\d{1,2})-(\d{4})`)
	yearFirstPattern = regexp.MustCompile(`(\d{4})-(\d{1,2})-(\d{1,2})`)
)

// ParseDate reads "dd-mm-yyyy" or "yyyy-mm-dd" anywhere in text.
func ParseDate(text string) Date {
	if m := yearFirstPattern.FindStringSubmatch(text); m != nil {
		if d, ok := newDate(m[1], m[2], m[3]); ok {
			return d
		}
	}
	if m := dayFirstPattern.FindStringSubmatch(text); m != nil {
		if d, ok := newDate(m[3], m[2], m[1]); ok {
			return d
		}
	}
	return UnknownDate
}

func newDate(year, month, day string) (Date, bool) {
	y, errY := strconv.Atoi(year)
	m, errM := strconv.Atoi(month)
	d, errD := strconv.Atoi(day)
	if errY != nil || errM != nil || errD != nil {
		return Date{}, false
	}
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return Date{}, false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Day() != d {
		return Date{}, false
	}
	return Date{Year: y, Month: m, Day: d}, true
}

// Compare returns -1, 0 or +1.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(d.Month - other.Month)
	default:
		return sign(d.Day - other.Day)
	}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// MatchRecord is one historical match read from a page table.
type MatchRecord struct {
	Date            Date   `json:"date"`
	DateText        string `json:"date_text"`
	HomeTeam        string `json:"home_team"`
	AwayTeam        string `json:"away_team"`
	HomeTeamID      string `json:"home_team_id,omitempty"`
	AwayTeamID      string `json:"away_team_id,omitempty"`
	ScoreRaw        string `json:"score_raw"`
	HandicapLineRaw string `json:"handicap_line_raw"`
	GoalLineRaw     string `json:"goal_line_raw"`
	GroupingKey     string `json:"grouping_key,omitempty"`
	ExternalID      string `json:"external_id,omitempty"`
	Flagged         bool   `json:"flagged,omitempty"`
}

// HasScore reports whether the record carries a readable scoreline.
func (r MatchRecord) HasScore() bool {
	return r.ScoreRaw != "" && r.ScoreRaw != "?-?"
}
