package strategy

import (
	"fmt"
	"slices"

	"FundPicker/internal/model"
)

// DefaultCategories maps each risk tier to the categories eligible under it.
var DefaultCategories = map[model.RiskTier][]model.Category{
	model.Low:    {model.LargeCap, model.Index, model.Debt},
	model.Medium: {model.MidCap, model.ELSS, model.FlexiCap},
	model.High:   {model.SmallCap},
}

// Classifier maps a risk tier to an ordered set of fund categories.
type Classifier struct {
	categories map[model.RiskTier][]model.Category
}

// NewClassifier validates mapping and returns a Classifier over a private copy of it.
// Every tier must map to at least one category; duplicates are dropped, first one wins.
func NewClassifier(mapping map[model.RiskTier][]model.Category) (*Classifier, error) {
	c := &Classifier{categories: make(map[model.RiskTier][]model.Category, len(model.RiskTiers))}
	for tier := range mapping {
		if !tier.Valid() {
			return nil, fmt.Errorf("%w: %d", model.ErrUnknownRiskTier, int(tier))
		}
	}
	for _, tier := range model.RiskTiers {
		var set []model.Category
		for _, cat := range mapping[tier] {
			if !slices.Contains(set, cat) {
				set = append(set, cat)
			}
		}
		if len(set) == 0 {
			return nil, fmt.Errorf("risk tier %s has no categories", tier)
		}
		c.categories[tier] = set
	}
	return c, nil
}

// DefaultClassifier returns a Classifier over DefaultCategories.
func DefaultClassifier() *Classifier {
	c, err := NewClassifier(DefaultCategories)
	if err != nil {
		panic(err)
	}
	return c
}

// CategoriesFor returns the categories eligible under tier, in mapping order.
// Tiers are validated at the input boundary, so an unknown tier panics.
func (c *Classifier) CategoriesFor(tier model.RiskTier) []model.Category {
	cats, ok := c.categories[tier]
	if !ok {
		panic(fmt.Sprintf("strategy: no categories for %s", tier))
	}
	return slices.Clone(cats)
}

// Allows reports whether cat is eligible under tier.
func (c *Classifier) Allows(tier model.RiskTier, cat model.Category) bool {
	return slices.Contains(c.categories[tier], cat)
}

// TierOf returns the most conservative tier that accepts cat.
func (c *Classifier) TierOf(cat model.Category) (model.RiskTier, bool) {
	for _, tier := range model.RiskTiers {
		if c.Allows(tier, cat) {
			return tier, true
		}
	}
	return 0, false
}

// Label returns the display name of the tier TierOf picks, or "" for an
// unmapped category.
func (c *Classifier) Label(cat model.Category) string {
	if tier, ok := c.TierOf(cat); ok {
		return tier.String()
	}
	return ""
}
