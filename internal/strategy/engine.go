package strategy

import (
	"slices"
	"sort"

	"FundPicker/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// DefaultTopN is the size of the top picks panel.
const DefaultTopN = 3

// Engine filters the catalog by risk tier, ranks the survivors by ROI and
// splits the investment amount across the top picks.
type Engine struct {
	classifier *Classifier
	topN       int
	log        zerolog.Logger
}

// NewEngine creates an Engine ranking DefaultTopN picks.
func NewEngine(classifier *Classifier, log zerolog.Logger) *Engine {
	return &Engine{
		classifier: classifier,
		topN:       DefaultTopN,
		log:        log.With().Str("component", "engine").Logger(),
	}
}

// Classifier returns the tier mapping the engine filters with.
func (e *Engine) Classifier() *Classifier { return e.classifier }

// FilterByRisk returns the catalog entries eligible under tier, in catalog order.
func (e *Engine) FilterByRisk(catalog []model.Fund, tier model.RiskTier) []model.Fund {
	allowed := e.classifier.CategoriesFor(tier)
	eligible := make([]model.Fund, 0, len(catalog))
	for _, f := range catalog {
		if slices.Contains(allowed, f.Category) {
			eligible = append(eligible, f)
		}
	}

	e.log.Debug().
		Str("tier", tier.Key()).
		Int("catalog", len(catalog)).
		Int("eligible", len(eligible)).
		Msg("filtered catalog by risk")

	return eligible
}

// RankTop returns the n funds with the highest yearly ROI. Equal ROIs keep
// their relative order, so identical input always ranks identically.
func RankTop(eligible []model.Fund, n int) []model.Fund {
	if n <= 0 || len(eligible) == 0 {
		return []model.Fund{}
	}
	ranked := slices.Clone(eligible)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].YearlyROI > ranked[j].YearlyROI
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Allocate splits amount equally across picks. It returns zero when there
// is nothing to split or the amount is invalid.
func Allocate(amount Amount, picks []model.Fund) decimal.Decimal {
	if !amount.Valid() || len(picks) == 0 {
		return decimal.Zero
	}
	return amount.Value().Div(decimal.NewFromInt(int64(len(picks))))
}

// Recommend runs one filter pass and derives both the eligible set and the
// ranked picks from it. Without a valid amount there are no picks.
func (e *Engine) Recommend(catalog []model.Fund, tier model.RiskTier, amount Amount) model.Recommendation {
	rec := model.Recommendation{
		Tier:       tier,
		Eligible:   e.FilterByRisk(catalog, tier),
		Picks:      []model.Pick{},
		Allocation: decimal.Zero,
	}
	if !amount.Valid() {
		return rec
	}

	top := RankTop(rec.Eligible, e.topN)
	rec.Allocation = Allocate(amount, top)
	for i, f := range top {
		rec.Picks = append(rec.Picks, model.Pick{
			Rank:       i + 1,
			Name:       f.Name,
			Category:   f.Category,
			YearlyROI:  f.YearlyROI,
			Allocation: rec.Allocation,
		})
	}

	e.log.Debug().
		Str("tier", tier.Key()).
		Str("amount", amount.String()).
		Int("picks", len(rec.Picks)).
		Msg("recommendation computed")

	return rec
}
