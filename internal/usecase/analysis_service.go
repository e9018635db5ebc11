package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/matchstudy/internal/domain/analysis"
	"github.com/riskibarqy/matchstudy/internal/domain/comparison"
	"github.com/riskibarqy/matchstudy/internal/domain/fixture"
	"github.com/riskibarqy/matchstudy/internal/domain/form"
	"github.com/riskibarqy/matchstudy/internal/domain/leaguestanding"
	"github.com/riskibarqy/matchstudy/internal/domain/market"
	"github.com/riskibarqy/matchstudy/internal/domain/matchrecord"
	"github.com/riskibarqy/matchstudy/internal/domain/page"
	"github.com/riskibarqy/matchstudy/internal/domain/precedent"
	"github.com/riskibarqy/matchstudy/internal/observability"
	idgen "github.com/riskibarqy/matchstudy/internal/platform/id"
	"github.com/riskibarqy/matchstudy/internal/platform/logging"
	"github.com/sourcegraph/conc/panics"
)

// AnalysisConfig tunes the analysis pipeline.
type AnalysisConfig struct {
	Workers     int           `validate:"gt=0"`
	Timeout     time.Duration `validate:"gt=0"`
	FormWindow  int           `validate:"gt=0"`
	Trend       form.Thresholds
	RatingBands form.Bands
}

// DefaultAnalysisConfig mirrors the configuration defaults.
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		Workers:     8,
		Timeout:     30 * time.Second,
		FormWindow:  8,
		Trend:       form.DefaultThresholds(),
		RatingBands: form.DefaultBands(),
	}
}

// AnalysisService turns a parsed match page into a report. It keeps no state
// between calls.
type AnalysisService struct {
	cfg      AnalysisConfig
	logger   *logging.Logger
	metrics  *observability.Metrics
	validate *validator.Validate
	ids      idgen.Generator
}

type analysisRequest struct {
	FixtureID string `validate:"required,numeric"`
}

func NewAnalysisService(cfg AnalysisConfig, logger *logging.Logger, metrics *observability.Metrics) (*AnalysisService, error) {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Trend.Validate(); err != nil {
		return nil, fmt.Errorf("%w: trend thresholds: %v", ErrInvalidConfig, err)
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &AnalysisService{
		cfg:      cfg,
		logger:   logger.With("component", "analysis_service"),
		metrics:  metrics,
		validate: validate,
		ids:      idgen.NewUUIDGenerator(),
	}, nil
}

// Analyze builds the report for fixtureID from doc. Only invalid input,
// missing fixture identity and cancellation are returned as errors; every
// other gap degrades the matching report section.
func (s *AnalysisService) Analyze(ctx context.Context, fixtureID string, doc page.Document) (report analysis.Report, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalysisService.Analyze")
	defer span.End()

	start := time.Now()
	fixtureID = strings.TrimSpace(fixtureID)
	logger := s.logger.With("request_id", s.ids.NewID(), "fixture_id", fixtureID)
	defer func() {
		s.metrics.ObserveAnalysis(analysisOutcome(err), time.Since(start))
	}()

	if err := s.validate.StructCtx(ctx, analysisRequest{FixtureID: fixtureID}); err != nil {
		return analysis.Report{}, fmt.Errorf("%w: fixture id %q: %v", ErrInvalidInput, fixtureID, err)
	}
	if doc == nil {
		return analysis.Report{}, fmt.Errorf("%w: document is required", ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	info, ok := fixture.LoadInfo(doc)
	if !ok {
		logger.WarnContext(ctx, "fixture identity not found in page")
		return analysis.Report{}, fmt.Errorf("%w: fixture %s", ErrMissingPrimaryInfo, fixtureID)
	}
	logger = logger.With("home_team", info.HomeTeam, "away_team", info.AwayTeam)
	logger.InfoContext(ctx, "analysis started")

	pool, err := ants.NewPool(s.cfg.Workers)
	if err != nil {
		return analysis.Report{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	first := s.extract(ctx, pool, logger, doc, info)
	if first.err != nil {
		return analysis.Report{}, first.err
	}

	derived := derive(first, info)
	second := s.aggregate(ctx, pool, logger, first, derived, info)
	if second.err != nil {
		return analysis.Report{}, second.err
	}

	report = assemble(fixtureID, info, first, derived, second, s.cfg.RatingBands)
	for _, name := range report.UnavailableSections() {
		s.metrics.SectionUnavailable(name)
		logger.WarnContext(ctx, "analysis section unavailable", "section", name)
	}
	logger.InfoContext(ctx, "analysis finished", "duration", time.Since(start))
	return report, nil
}

func analysisOutcome(err error) string {
	switch {
	case err == nil:
		return observability.OutcomeOK
	case errors.Is(err, ErrInvalidInput):
		return observability.OutcomeInvalidInput
	case errors.Is(err, ErrMissingPrimaryInfo):
		return observability.OutcomeMissingPrimaryInfo
	case errors.Is(err, ErrTimeout):
		return observability.OutcomeTimeout
	default:
		return observability.OutcomeError
	}
}

type analysisTask struct {
	name string
	run  func()
}

// runWave runs tasks on pool and waits for all of them. Each task writes only
// its own result slot. Panicking tasks are reported by name; a cancelled
// context fails the whole wave.
func (s *AnalysisService) runWave(ctx context.Context, pool *ants.Pool, logger *logging.Logger, tasks []analysisTask) (map[string]string, error) {
	failures := make([]string, len(tasks))

	var workers sync.WaitGroup
	for i, task := range tasks {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			if ctx.Err() != nil {
				return
			}

			var catcher panics.Catcher
			catcher.Try(task.run)
			if recovered := catcher.Recovered(); recovered != nil {
				s.metrics.TaskPanicked()
				logger.ErrorContext(ctx, "analysis task panicked", "task", task.name, "panic", fmt.Sprint(recovered.Value))
				failures[i] = fmt.Sprintf("task %s failed", task.name)
			}
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	out := make(map[string]string)
	for i, reason := range failures {
		if reason != "" {
			out[tasks[i].name] = reason
		}
	}
	return out, nil
}

type extraction struct {
	odds            fixture.Odds
	hasOdds         bool
	headToHead      []matchrecord.MatchRecord
	homeHistory     []matchrecord.MatchRecord
	awayHistory     []matchrecord.MatchRecord
	homeStanding    leaguestanding.Standing
	hasHomeStanding bool
	awayStanding    leaguestanding.Standing
	hasAwayStanding bool
	homeOverUnder   leaguestanding.OverUnderSplit
	hasHomeOU       bool
	awayOverUnder   leaguestanding.OverUnderSplit
	hasAwayOU       bool
	homePanel       comparison.Panel
	hasHomePanel    bool
	awayPanel       comparison.Panel
	hasAwayPanel    bool
	failures        map[string]string
	err             error
}

const (
	taskOdds          = "odds"
	taskHeadToHead    = "head_to_head"
	taskHomeHistory   = "home_history"
	taskAwayHistory   = "away_history"
	taskHomeStanding  = "home_standing"
	taskAwayStanding  = "away_standing"
	taskHomeOverUnder = "home_over_under"
	taskAwayOverUnder = "away_over_under"
	taskComparisons   = "comparisons"
	taskIndirectHome  = "indirect_home"
	taskIndirectAway  = "indirect_away"
	taskCrossover     = "crossover"
	taskHomeForm      = "home_form"
	taskAwayForm      = "away_form"
)

func (s *AnalysisService) extract(ctx context.Context, pool *ants.Pool, logger *logging.Logger, doc page.Document, info fixture.Info) extraction {
	var out extraction
	history := func(table page.TableID) []matchrecord.MatchRecord {
		return matchrecord.ExtractAll(doc.Rows(table), "", matchrecord.KindForTable(table))
	}

	tasks := []analysisTask{
		{name: taskOdds, run: func() { out.odds, out.hasOdds = fixture.LoadOdds(doc) }},
		{name: taskHeadToHead, run: func() { out.headToHead = history(page.TableHeadToHead) }},
		{name: taskHomeHistory, run: func() { out.homeHistory = history(page.TableHomeHistory) }},
		{name: taskAwayHistory, run: func() { out.awayHistory = history(page.TableAwayHistory) }},
		{name: taskHomeStanding, run: func() {
			out.homeStanding, out.hasHomeStanding = leaguestanding.LoadStanding(doc, info.HomeTeam)
		}},
		{name: taskAwayStanding, run: func() {
			out.awayStanding, out.hasAwayStanding = leaguestanding.LoadStanding(doc, info.AwayTeam)
		}},
		{name: taskHomeOverUnder, run: func() {
			out.homeOverUnder, out.hasHomeOU = leaguestanding.LoadOverUnder(doc, page.TableHomeHistory)
		}},
		{name: taskAwayOverUnder, run: func() {
			out.awayOverUnder, out.hasAwayOU = leaguestanding.LoadOverUnder(doc, page.TableAwayHistory)
		}},
		{name: taskComparisons, run: func() {
			out.homePanel, out.hasHomePanel, out.awayPanel, out.hasAwayPanel = comparison.Load(doc)
		}},
	}

	failures, err := s.runWave(ctx, pool, logger, tasks)
	out.failures = failures
	out.err = err
	return out
}

type derivation struct {
	market     analysis.Market
	sameVenue  matchrecord.MatchRecord
	hasSame    bool
	mostRecent matchrecord.MatchRecord
	hasRecent  bool
	lastHome   matchrecord.MatchRecord
	hasHome    bool
	lastAway   matchrecord.MatchRecord
	hasAway    bool
	homeRival  precedent.Rival
	hasHRival  bool
	awayRival  precedent.Rival
	hasARival  bool
}

func derive(first extraction, info fixture.Info) derivation {
	var d derivation
	d.market = analysis.Market{HomeTeam: info.HomeTeam}
	if first.hasOdds {
		d.market.Handicap, d.market.HasHandicap = first.odds.HandicapLine()
		d.market.GoalLine, d.market.HasGoalLine = first.odds.GoalLine()
		d.market.Favorite = first.odds.Favorite(info)
	}

	d.sameVenue, d.hasSame = precedent.SameVenue(first.headToHead, info.HomeTeam, info.AwayTeam)
	d.mostRecent, d.hasRecent = precedent.MostRecent(first.headToHead)
	d.lastHome, d.hasHome = precedent.LastInLeague(first.homeHistory, info.HomeTeam, info.LeagueID, precedent.SideHome)
	d.lastAway, d.hasAway = precedent.LastInLeague(first.awayHistory, info.AwayTeam, info.LeagueID, precedent.SideAway)
	d.homeRival, d.hasHRival = precedent.FlaggedRival(first.homeHistory, precedent.SideHome, info.LeagueID)
	d.awayRival, d.hasARival = precedent.FlaggedRival(first.awayHistory, precedent.SideAway, info.LeagueID)
	return d
}

type aggregation struct {
	indirectHome    precedent.IndirectMatch
	hasIndirectHome bool
	indirectAway    precedent.IndirectMatch
	hasIndirectAway bool
	crossover       matchrecord.MatchRecord
	hasCrossover    bool
	homeForm        teamForm
	awayForm        teamForm
	failures        map[string]string
	err             error
}

type teamForm struct {
	recent   []matchrecord.MatchRecord
	summary  form.Summary
	goals    form.GoalSummary
	trend    form.Trend
	hasTrend bool
}

func (s *AnalysisService) aggregate(ctx context.Context, pool *ants.Pool, logger *logging.Logger, first extraction, d derivation, info fixture.Info) aggregation {
	var out aggregation

	// Names as they appear in the history tables, falling back to the page metadata.
	homeName := info.HomeTeam
	if d.hasHome {
		homeName = d.lastHome.HomeTeam
	}
	awayName := info.AwayTeam
	if d.hasAway {
		awayName = d.lastAway.AwayTeam
	}

	var tasks []analysisTask
	if d.hasAway {
		tasks = append(tasks, analysisTask{name: taskIndirectHome, run: func() {
			out.indirectHome, out.hasIndirectHome = precedent.Indirect(first.homeHistory, homeName, d.lastAway.HomeTeam, info.LeagueID)
		}})
	}
	if d.hasHome {
		tasks = append(tasks, analysisTask{name: taskIndirectAway, run: func() {
			out.indirectAway, out.hasIndirectAway = precedent.Indirect(first.awayHistory, awayName, d.lastHome.AwayTeam, info.LeagueID)
		}})
	}
	if d.hasHRival && d.hasARival {
		tasks = append(tasks, analysisTask{name: taskCrossover, run: func() {
			out.crossover, out.hasCrossover = precedent.Crossover(first.awayHistory, d.homeRival, d.awayRival)
		}})
	}
	tasks = append(tasks,
		analysisTask{name: taskHomeForm, run: func() {
			out.homeForm = s.teamForm(first.homeHistory, info.HomeTeam, precedent.SideHome, d.market)
		}},
		analysisTask{name: taskAwayForm, run: func() {
			out.awayForm = s.teamForm(first.awayHistory, info.AwayTeam, precedent.SideAway, d.market)
		}},
	)

	failures, err := s.runWave(ctx, pool, logger, tasks)
	out.failures = failures
	out.err = err
	return out
}

func (s *AnalysisService) teamForm(records []matchrecord.MatchRecord, team string, side precedent.Side, m analysis.Market) teamForm {
	recent := form.Recent(records, team, side, s.cfg.FormWindow)
	out := teamForm{
		recent:  recent,
		summary: form.Summarize(team, recent),
		goals:   form.SummarizeGoals(recent),
	}
	if len(recent) > 0 && m.HasHandicap {
		out.trend, out.hasTrend = form.LineTrend(team, recent[0], m.Handicap, side, s.cfg.Trend)
	}
	return out
}

const (
	reasonNoOdds       = "opening odds row not found"
	reasonNoHeadToHead = "no head-to-head records"
	reasonNoSameVenue  = "no head-to-head match at this venue"
	reasonNoLastHome   = "no recent home match in league"
	reasonNoLastAway   = "no recent away match in league"
	reasonNoIndirect   = "no match against the shared opponent"
	reasonNoRivals     = "flagged rivals not found"
	reasonNoCrossover  = "rivals have not met"
	reasonNoForm       = "no recent matches on this side"
	reasonNoTrend      = "line trend cannot be computed"
	reasonNoStanding   = "standings not found"
	reasonNoOverUnder  = "over/under summary not found"
	reasonNoOpponent   = "opponent's last league match not found"
	reasonNoComparison = "comparison panel not found"
)

func assemble(fixtureID string, info fixture.Info, first extraction, d derivation, second aggregation, bands form.Bands) analysis.Report {
	// failed returns the reason of the first failed task in tasks, which
	// list a section's own task before the wave-1 tasks it reads from.
	failed := func(fallback string, tasks ...string) string {
		for _, task := range tasks {
			if reason, ok := first.failures[task]; ok {
				return reason
			}
			if reason, ok := second.failures[task]; ok {
				return reason
			}
		}
		return fallback
	}
	settle := func(record matchrecord.MatchRecord) analysis.Precedent {
		return analysis.Settle(record, d.market)
	}

	report := analysis.Report{FixtureID: fixtureID, Fixture: info}

	if first.hasOdds {
		report.Lines = analysis.Some(analysis.CurrentLines{
			Odds:     first.odds,
			Handicap: market.FormatText(first.odds.HandicapLineRaw, market.FormatDisplay),
			GoalLine: market.FormatText(first.odds.GoalLineRaw, market.FormatDisplay),
			Favorite: d.market.Favorite,
		})
	} else {
		report.Lines = analysis.Missing[analysis.CurrentLines](failed(reasonNoOdds, taskOdds))
	}

	switch {
	case d.hasSame:
		report.SameVenue = analysis.Some(settle(d.sameVenue))
	case len(first.headToHead) == 0:
		report.SameVenue = analysis.Missing[analysis.Precedent](failed(reasonNoHeadToHead, taskHeadToHead))
	default:
		report.SameVenue = analysis.Missing[analysis.Precedent](reasonNoSameVenue)
	}

	if d.hasRecent {
		p := settle(d.mostRecent)
		p.SameAsVenue = d.hasSame && d.mostRecent.ExternalID != "" && d.mostRecent.ExternalID == d.sameVenue.ExternalID
		report.MostRecent = analysis.Some(p)
	} else {
		report.MostRecent = analysis.Missing[analysis.Precedent](failed(reasonNoHeadToHead, taskHeadToHead))
	}

	if d.hasHome {
		report.LastHome = analysis.Some(settle(d.lastHome))
	} else {
		report.LastHome = analysis.Missing[analysis.Precedent](failed(reasonNoLastHome, taskHomeHistory))
	}
	if d.hasAway {
		report.LastAway = analysis.Some(settle(d.lastAway))
	} else {
		report.LastAway = analysis.Missing[analysis.Precedent](failed(reasonNoLastAway, taskAwayHistory))
	}

	report.IndirectHome = indirectSection(second.indirectHome, second.hasIndirectHome, d.hasAway, info.HomeTeam, d.lastAway.HomeTeam,
		failed(reasonNoIndirect, taskIndirectHome, taskHomeHistory), failed(reasonNoOpponent, taskAwayHistory), d.market)
	report.IndirectAway = indirectSection(second.indirectAway, second.hasIndirectAway, d.hasHome, info.AwayTeam, d.lastHome.AwayTeam,
		failed(reasonNoIndirect, taskIndirectAway, taskAwayHistory), failed(reasonNoOpponent, taskHomeHistory), d.market)

	switch {
	case second.hasCrossover:
		report.Crossover = analysis.Some(analysis.CrossoverPrecedent{
			HomeRival: d.homeRival,
			AwayRival: d.awayRival,
			Precedent: settle(second.crossover),
		})
	case !d.hasHRival || !d.hasARival:
		report.Crossover = analysis.Missing[analysis.CrossoverPrecedent](failed(reasonNoRivals, taskHomeHistory, taskAwayHistory))
	default:
		report.Crossover = analysis.Missing[analysis.CrossoverPrecedent](failed(reasonNoCrossover, taskCrossover, taskAwayHistory))
	}

	report.HomeForm = formSection(info.HomeTeam, precedent.SideHome, second.homeForm, bands, failed(reasonNoForm, taskHomeForm, taskHomeHistory))
	report.AwayForm = formSection(info.AwayTeam, precedent.SideAway, second.awayForm, bands, failed(reasonNoForm, taskAwayForm, taskAwayHistory))

	if first.hasHomeStanding {
		report.HomeStanding = analysis.Some(first.homeStanding)
	} else {
		report.HomeStanding = analysis.Missing[leaguestanding.Standing](failed(reasonNoStanding, taskHomeStanding))
	}
	if first.hasAwayStanding {
		report.AwayStanding = analysis.Some(first.awayStanding)
	} else {
		report.AwayStanding = analysis.Missing[leaguestanding.Standing](failed(reasonNoStanding, taskAwayStanding))
	}
	if first.hasHomeOU {
		report.HomeOverUnder = analysis.Some(first.homeOverUnder)
	} else {
		report.HomeOverUnder = analysis.Missing[leaguestanding.OverUnderSplit](failed(reasonNoOverUnder, taskHomeOverUnder))
	}
	if first.hasAwayOU {
		report.AwayOverUnder = analysis.Some(first.awayOverUnder)
	} else {
		report.AwayOverUnder = analysis.Missing[leaguestanding.OverUnderSplit](failed(reasonNoOverUnder, taskAwayOverUnder))
	}
	if first.hasHomePanel {
		report.HomeComparison = analysis.Some(first.homePanel)
	} else {
		report.HomeComparison = analysis.Missing[comparison.Panel](failed(reasonNoComparison, taskComparisons))
	}
	if first.hasAwayPanel {
		report.AwayComparison = analysis.Some(first.awayPanel)
	} else {
		report.AwayComparison = analysis.Missing[comparison.Panel](failed(reasonNoComparison, taskComparisons))
	}

	return report
}

func indirectSection(match precedent.IndirectMatch, found, hasOpponent bool, team, opponent, reason, opponentReason string, m analysis.Market) analysis.Section[analysis.IndirectPrecedent] {
	switch {
	case found:
		return analysis.Some(analysis.IndirectPrecedent{
			Team:      team,
			Opponent:  opponent,
			MainSide:  match.MainSide,
			Precedent: analysis.Settle(match.Record, m),
		})
	case !hasOpponent:
		return analysis.Missing[analysis.IndirectPrecedent](opponentReason)
	default:
		return analysis.Missing[analysis.IndirectPrecedent](reason)
	}
}

func formSection(team string, side precedent.Side, tf teamForm, bands form.Bands, reason string) analysis.Section[analysis.TeamForm] {
	if len(tf.recent) == 0 {
		return analysis.Missing[analysis.TeamForm](reason)
	}

	out := analysis.TeamForm{
		Team:    team,
		Side:    side,
		Summary: tf.summary,
		Rating:  tf.summary.Rating(bands),
		Verdict: tf.summary.Verdict(),
		Goals:   tf.goals,
		Trend:   analysis.Missing[form.Trend](reasonNoTrend),
	}
	if tf.hasTrend {
		out.Trend = analysis.Some(tf.trend)
	}
	return analysis.Some(out)
}
