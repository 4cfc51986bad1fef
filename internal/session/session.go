// Package session holds the state of one user's recommendation interaction.
package session

import (
	"errors"
	"strings"

	"FundPicker/internal/model"
	"FundPicker/internal/strategy"
	"FundPicker/internal/table"

	"github.com/shopspring/decimal"
)

// ErrIncompleteInput is returned by Submit when the amount or period is missing.
var ErrIncompleteInput = errors.New("investment amount and period are required")

// State is the position of a session in its lifecycle.
type State int

const (
	Editing State = iota
	Showing
)

func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s State) String() string {
	if s == Showing {
		return "showing"
	}
	return "editing"
}

// Session is the mutable input of one interaction plus the table cursor.
// Everything else is derived from it on read.
type Session struct {
	ID string

	catalog []model.Fund
	engine  *strategy.Engine

	amount  string
	period  string
	tier    model.RiskTier
	visible bool

	view *table.View
}

// New creates a session in the Editing state with default inputs.
func New(id string, catalog []model.Fund, engine *strategy.Engine) *Session {
	s := &Session{
		ID:      id,
		catalog: catalog,
		engine:  engine,
		tier:    model.DefaultRiskTier,
	}
	s.view = table.NewView(s.EligibleFunds(), engine.Classifier().Label)
	return s
}

func (s *Session) State() State {
	if s.visible {
		return Showing
	}
	return Editing
}

func (s *Session) ResultsVisible() bool     { return s.visible }
func (s *Session) Amount() string           { return s.amount }
func (s *Session) Period() string           { return s.period }
func (s *Session) RiskTier() model.RiskTier { return s.tier }

// SetAmount records the raw amount text. It is parsed on every read.
func (s *Session) SetAmount(v string) { s.amount = strings.TrimSpace(v) }

// SetPeriod records the raw investment horizon in years.
func (s *Session) SetPeriod(v string) { s.period = strings.TrimSpace(v) }

// SelectRiskTier switches the tier. A different tier yields a different
// eligible list, so the table goes back to its first page.
func (s *Session) SelectRiskTier(tier model.RiskTier) {
	if tier == s.tier {
		return
	}
	s.tier = tier
	s.view.Reset(s.EligibleFunds())
}

// Submit records all three inputs and shows results. Only the presence of
// amount and period is checked; an unparsable amount still shows the table.
func (s *Session) Submit(amount string, tier model.RiskTier, period string) error {
	s.SetAmount(amount)
	s.SelectRiskTier(tier)
	s.SetPeriod(period)
	return s.Show()
}

// Show submits the inputs already recorded on the session.
func (s *Session) Show() error {
	if s.amount == "" || s.period == "" {
		return ErrIncompleteInput
	}
	s.visible = true
	return nil
}

// Clear resets every input to its default and hides the results.
func (s *Session) Clear() {
	s.amount = ""
	s.period = ""
	s.tier = model.DefaultRiskTier
	s.visible = false
	s.view.Reset(s.EligibleFunds())
}

// GoToPage moves the table cursor by delta pages, one page at a time,
// stopping at either end.
func (s *Session) GoToPage(delta int) {
	for ; delta > 0; delta-- {
		s.view.GoToNext()
	}
	for ; delta < 0; delta++ {
		s.view.GoToPrevious()
	}
}

// EligibleFunds returns the catalog entries allowed by the current tier.
func (s *Session) EligibleFunds() []model.Fund {
	return s.engine.FilterByRisk(s.catalog, s.tier)
}

// Recommendation derives the top picks for the current inputs. Picks are
// empty until the session has been submitted.
func (s *Session) Recommendation() model.Recommendation {
	amount := strategy.ParseAmount(s.amount)
	if !s.visible {
		amount = strategy.Amount{}
	}
	return s.engine.Recommend(s.catalog, s.tier, amount)
}

// TopPicks returns the ranked picks, each carrying its allocation.
func (s *Session) TopPicks() []model.Pick { return s.Recommendation().Picks }

// AllocationPerPick returns the amount assigned to each pick.
func (s *Session) AllocationPerPick() decimal.Decimal { return s.Recommendation().Allocation }

// TablePage returns the current window of the eligible-funds table.
func (s *Session) TablePage() model.TablePage { return s.view.Page() }

// Snapshot is a read-only view of a session for presentation.
type Snapshot struct {
	ID             string          `json:"id"`
	State          State           `json:"state"`
	Amount         string          `json:"amount"`
	Period         string          `json:"period"`
	Tier           model.RiskTier  `json:"risk"`
	ResultsVisible bool            `json:"resultsVisible"`
	Picks          []model.Pick    `json:"picks"`
	Allocation     decimal.Decimal `json:"allocation"`
	Table          model.TablePage `json:"table"`
}

// Snapshot derives every output of the session in one call.
func (s *Session) Snapshot() Snapshot {
	rec := s.Recommendation()
	return Snapshot{
		ID:             s.ID,
		State:          s.State(),
		Amount:         s.amount,
		Period:         s.period,
		Tier:           s.tier,
		ResultsVisible: s.visible,
		Picks:          rec.Picks,
		Allocation:     rec.Allocation,
		Table:          s.view.Page(),
	}
}
