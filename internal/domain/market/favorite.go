package market

import (
	"math"
	"strings"
)

// Shift describes how the market's view of the favourite moved between a
// historical line and the current one.
type Shift int

const (
	ShiftUnknown Shift = iota
	MoreFavored
	LessFavored
	SameMagnitude
	FavoriteFlipped
	FavoriteCreated
	FavoriteRemoved
)

func (s Shift) String() string {
	switch s {
	case MoreFavored:
		return "MORE_FAVORED"
	case LessFavored:
		return "LESS_FAVORED"
	case SameMagnitude:
		return "SAME_MAGNITUDE"
	case FavoriteFlipped:
		return "FAVORITE_FLIPPED"
	case FavoriteCreated:
		return "FAVORITE_CREATED"
	case FavoriteRemoved:
		return "FAVORITE_REMOVED"
	default:
		return "UNKNOWN"
	}
}

func (s Shift) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// FavoriteFor returns the side a line favours: home for a positive line,
// away for a negative one, and "" for a level line.
func FavoriteFor(line float64, home, away string) string {
	switch {
	case IsZeroLine(line):
		return ""
	case line > 0:
		return home
	default:
		return away
	}
}

// CompareFavoritism compares the favourite implied by a historical line with
// currentFavorite ("" when the current line is level).
func CompareFavoritism(historicLine, currentLine float64, historicHome, historicAway, currentFavorite string) Shift {
	historicFavorite := FavoriteFor(historicLine, historicHome, historicAway)

	if strings.EqualFold(historicFavorite, currentFavorite) {
		current, historic := math.Abs(currentLine), math.Abs(historicLine)
		switch {
		case current-historic > lineEpsilon:
			return MoreFavored
		case historic-current > lineEpsilon:
			return LessFavored
		default:
			return SameMagnitude
		}
	}

	switch {
	case historicFavorite != "" && currentFavorite != "":
		return FavoriteFlipped
	case historicFavorite == "":
		return FavoriteCreated
	default:
		return FavoriteRemoved
	}
}
