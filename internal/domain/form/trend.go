package form

import (
	"fmt"
	"math"

	"github.com/riskibarqy/matchstudy/internal/domain/market"
	"github.com/riskibarqy/matchstudy/internal/domain/matchrecord"
	"github.com/riskibarqy/matchstudy/internal/domain/precedent"
)

// Movement labels how a team's line moved since its latest match.
type Movement int

const (
	Unchanged Movement = iota
	RoseSlightly
	RoseSharply
	FellSlightly
	FellSharply
)

func (m Movement) String() string {
	switch m {
	case RoseSlightly:
		return "ROSE_SLIGHTLY"
	case RoseSharply:
		return "ROSE_SHARPLY"
	case FellSlightly:
		return "FELL_SLIGHTLY"
	case FellSharply:
		return "FELL_SHARPLY"
	default:
		return "UNCHANGED"
	}
}

func (m Movement) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Thresholds are the absolute line deltas at which a move counts as slight or
// sharp.
type Thresholds struct {
	Slight float64 `yaml:"slight" json:"slight"`
	Sharp  float64 `yaml:"sharp" json:"sharp"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{Slight: 0.25, Sharp: 0.5}
}

func (t Thresholds) Validate() error {
	if t.Slight <= 0 {
		return fmt.Errorf("slight threshold must be > 0")
	}
	if t.Sharp < t.Slight {
		return fmt.Errorf("sharp threshold must be >= slight threshold")
	}
	return nil
}

const movementEpsilon = 1e-9

// ClassifyMovement labels delta. Positive deltas mean the market rates the
// team stronger than before.
func ClassifyMovement(delta float64, t Thresholds) Movement {
	magnitude := math.Abs(delta)
	switch {
	case magnitude+movementEpsilon >= t.Sharp && delta > 0:
		return RoseSharply
	case magnitude+movementEpsilon >= t.Sharp:
		return FellSharply
	case magnitude+movementEpsilon >= t.Slight && delta > 0:
		return RoseSlightly
	case magnitude+movementEpsilon >= t.Slight:
		return FellSlightly
	default:
		return Unchanged
	}
}

// Trend compares a team's latest historical line with the current one. Lines
// are expressed from the team's side: positive means the team gives goals.
type Trend struct {
	HistoricLine string   `json:"historic_line"`
	CurrentLine  string   `json:"current_line"`
	Delta        float64  `json:"delta"`
	Movement     Movement `json:"movement"`
}

// LineTrend compares latest with currentLine, quoted for the fixture's home
// side, for team playing on currentSide.
func LineTrend(team string, latest matchrecord.MatchRecord, currentLine float64, currentSide precedent.Side, t Thresholds) (Trend, bool) {
	historic, ok := market.ParseLine(latest.HandicapLineRaw)
	if !ok {
		return Trend{}, false
	}
	switch teamSide(latest, team) {
	case precedent.SideHome:
	case precedent.SideAway:
		historic = -historic
	default:
		return Trend{}, false
	}

	current := currentLine
	if currentSide == precedent.SideAway {
		current = -current
	}

	delta := current - historic
	return Trend{
		HistoricLine: market.Format(historic, market.FormatDisplay),
		CurrentLine:  market.Format(current, market.FormatDisplay),
		Delta:        delta,
		Movement:     ClassifyMovement(delta, t),
	}, true
}
