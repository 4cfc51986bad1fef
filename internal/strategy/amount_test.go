package strategy

import (
	"strings"
	"testing"
	"time"

	"FundPicker/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		valid bool
		want  string
	}{
		{"integer", "9000", true, "9000"},
		{"decimal", "1234.56", true, "1234.56"},
		{"surrounding space", "  500 ", true, "500"},
		{"exponent", "1e3", true, "1000"},
		{"empty", "", false, "0"},
		{"blank", "   ", false, "0"},
		{"not a number", "ten thousand", false, "0"},
		{"trailing garbage", "100abc", false, "0"},
		{"zero", "0", false, "0"},
		{"negative", "-250", false, "0"},
		{"at the maximum", "1e15", true, "1000000000000000"},
		{"above the maximum", "1000000000000000.01", false, "0"},
		{"huge exponent", "1e2147483640", false, "0"},
		{"large exponent", "1e20000000", false, "0"},
		{"many digits", "1" + strings.Repeat("0", 4000), false, "0"},
		{"tiny exponent", "1e-2147483640", false, "0"},
		{"long fraction", "0." + strings.Repeat("1", 40), false, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := ParseAmount(tt.in)
			assert.Equal(t, tt.valid, a.Valid())
			assert.True(t, decimal.RequireFromString(tt.want).Equal(a.Value()),
				"value: want %s, got %s", tt.want, a.Value())
		})
	}
}

func TestAmount_ZeroValueIsInvalid(t *testing.T) {
	var a Amount
	assert.False(t, a.Valid())
	assert.True(t, a.Value().IsZero())
	assert.Equal(t, "invalid", a.String())
}

func TestParseAmount_ExtremeInputIsFast(t *testing.T) {
	start := time.Now()
	for _, in := range []string{"1e2147483640", "1e20000000", "9" + strings.Repeat("9", 4000) + "e-3990"} {
		a := ParseAmount(in)
		assert.False(t, a.Valid(), in)
		assert.True(t, Allocate(a, []model.Fund{{Name: "A"}}).IsZero())
	}
	assert.Less(t, time.Since(start), time.Second)
}
