package strategy

import (
	"testing"

	"FundPicker/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultClassifier_CategoriesFor(t *testing.T) {
	c := DefaultClassifier()

	assert.Equal(t, []model.Category{model.LargeCap, model.Index, model.Debt}, c.CategoriesFor(model.Low))
	assert.Equal(t, []model.Category{model.MidCap, model.ELSS, model.FlexiCap}, c.CategoriesFor(model.Medium))
	assert.Equal(t, []model.Category{model.SmallCap}, c.CategoriesFor(model.High))
}

func TestClassifier_CategoriesForReturnsCopy(t *testing.T) {
	c := DefaultClassifier()

	cats := c.CategoriesFor(model.Low)
	cats[0] = model.SmallCap

	assert.Equal(t, model.LargeCap, c.CategoriesFor(model.Low)[0])
}

func TestClassifier_UnknownTierPanics(t *testing.T) {
	c := DefaultClassifier()
	assert.Panics(t, func() { c.CategoriesFor(model.RiskTier(7)) })
}

func TestNewClassifier(t *testing.T) {
	tests := []struct {
		name    string
		mapping map[model.RiskTier][]model.Category
		wantErr bool
	}{
		{
			name:    "default mapping",
			mapping: DefaultCategories,
		},
		{
			name: "missing tier",
			mapping: map[model.RiskTier][]model.Category{
				model.Low:    {model.Debt},
				model.Medium: {model.Index},
			},
			wantErr: true,
		},
		{
			name: "empty tier",
			mapping: map[model.RiskTier][]model.Category{
				model.Low:    {model.Debt},
				model.Medium: {model.Index},
				model.High:   {},
			},
			wantErr: true,
		},
		{
			name: "unknown tier",
			mapping: map[model.RiskTier][]model.Category{
				model.Low:          {model.Debt},
				model.Medium:       {model.Index},
				model.High:         {model.SmallCap},
				model.RiskTier(42): {model.MidCap},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClassifier(tt.mapping)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, c)
		})
	}
}

func TestNewClassifier_DropsDuplicates(t *testing.T) {
	c, err := NewClassifier(map[model.RiskTier][]model.Category{
		model.Low:    {model.Debt, model.Index, model.Debt},
		model.Medium: {model.MidCap},
		model.High:   {model.SmallCap, model.MidCap},
	})
	require.NoError(t, err)

	assert.Equal(t, []model.Category{model.Debt, model.Index}, c.CategoriesFor(model.Low))
}

func TestClassifier_TierOf(t *testing.T) {
	c, err := NewClassifier(map[model.RiskTier][]model.Category{
		model.Low:    {model.Debt},
		model.Medium: {model.MidCap, model.Index},
		model.High:   {model.SmallCap, model.MidCap},
	})
	require.NoError(t, err)

	tier, ok := c.TierOf(model.MidCap)
	assert.True(t, ok)
	assert.Equal(t, model.Medium, tier, "overlapping categories resolve to the most conservative tier")

	tier, ok = c.TierOf(model.SmallCap)
	assert.True(t, ok)
	assert.Equal(t, model.High, tier)

	_, ok = c.TierOf(model.ELSS)
	assert.False(t, ok)
}

func TestClassifier_Label(t *testing.T) {
	c := DefaultClassifier()
	assert.Equal(t, "Low", c.Label(model.Index))
	assert.Equal(t, "Medium", c.Label(model.ELSS))
	assert.Equal(t, "High", c.Label(model.SmallCap))

	narrow, err := NewClassifier(map[model.RiskTier][]model.Category{
		model.Low:    {model.Debt},
		model.Medium: {model.Debt},
		model.High:   {model.Debt},
	})
	require.NoError(t, err)
	assert.Equal(t, "", narrow.Label(model.SmallCap))
}
