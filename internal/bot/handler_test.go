package bot

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"FundPicker/internal/metrics"
	"FundPicker/internal/model"
	"FundPicker/internal/notifier"
	"FundPicker/internal/session"
	"FundPicker/internal/strategy"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []model.Fund {
	funds := []model.Fund{
		{Name: "A", Category: model.LargeCap, YearlyROI: 8},
		{Name: "B", Category: model.SmallCap, YearlyROI: 15},
		{Name: "C", Category: model.Index, YearlyROI: 6},
	}
	for i := 0; i < 12; i++ {
		funds = append(funds, model.Fund{Name: fmt.Sprintf("D%02d", i), Category: model.Debt, YearlyROI: 1})
	}
	return funds
}

func newTestHandler(t *testing.T) (*Handler, *session.Store, *metrics.Metrics) {
	t.Helper()
	catalog := testCatalog()
	engine := strategy.NewEngine(strategy.DefaultClassifier(), zerolog.Nop())
	store := session.NewStore(catalog, engine, time.Hour, zerolog.Nop())
	m := metrics.New(store.Len)
	h := NewHandler(store, catalog, engine, notifier.MarkdownFormatter{Currency: "INR"}, m, zerolog.Nop())
	return h, store, m
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		text string
		name string
		args []string
		ok   bool
	}{
		{"/recommend 9000 low 5", "recommend", []string{"9000", "low", "5"}, true},
		{"recommend 9000 low 5", "recommend", []string{"9000", "low", "5"}, true},
		{"/Next@FundPickerBot", "next", []string{}, true},
		{"  previous ", "prev", []string{}, true},
		{"/years 10", "period", []string{"10"}, true},
		{"/start", "help", []string{}, true},
		{"/weekly", "weekly", []string{}, false},
		{"", "", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			name, args, ok := ParseCommand(tt.text)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.args, args)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	return rec.Body.String()
}

func TestRecommend_LowTier(t *testing.T) {
	h, _, m := newTestHandler(t)

	out := h.HandleCommand("42", "/recommend 9000 low 5")

	assert.Contains(t, out, "Top 3 Funds for You")
	assert.Contains(t, out, "1. **A**")
	assert.Contains(t, out, "2. **C**")
	assert.Contains(t, out, "3. **D00**")
	assert.Equal(t, 3, strings.Count(out, "Your Allocation: ₹3,000.00"))
	assert.NotContains(t, out, "| B |")
	assert.Contains(t, out, "Page 1 of 2")

	body := scrape(t, m)
	assert.Contains(t, body, `fundpicker_recommendations_total{tier="low"} 1`)
	assert.Contains(t, body, `fundpicker_commands_total{command="recommend"} 1`)
	assert.Contains(t, body, "fundpicker_sessions_active 1")
}

func TestRecommend_BadInput(t *testing.T) {
	h, _, _ := newTestHandler(t)

	assert.Contains(t, h.HandleCommand("42", "/recommend 9000 low"), "Usage: /recommend")
	assert.Contains(t, h.HandleCommand("42", "/recommend 9000 extreme 5"), "unknown risk tier")
}

func TestRecommend_UnparsableAmountShowsTableOnly(t *testing.T) {
	h, _, _ := newTestHandler(t)

	out := h.HandleCommand("42", "/recommend abc high 5")
	assert.NotContains(t, out, "Top 3 Funds")
	assert.Contains(t, out, "| B | Small Cap | High | 15 |")
}

func TestStepwiseEditing(t *testing.T) {
	h, store, _ := newTestHandler(t)

	out := h.HandleCommand("7", "/amount 10000")
	assert.Contains(t, out, "Amount: 10000 | Risk: Medium | Period: (not set)")

	out = h.HandleCommand("7", "/submit")
	assert.Contains(t, out, "Please enter both investment amount and period.")

	h.HandleCommand("7", "/risk high")
	out = h.HandleCommand("7", "/period 3")
	assert.Contains(t, out, "Period: 3 years")
	assert.NotContains(t, out, "Top 3")

	out = h.HandleCommand("7", "/submit")
	assert.Contains(t, out, "1. **B**")
	assert.Contains(t, out, "₹10,000.00")

	// edits after submit recompute live
	out = h.HandleCommand("7", "/amount 20000")
	assert.Contains(t, out, "₹20,000.00")

	store.Do("7", func(s *session.Session) {
		assert.Equal(t, session.Showing, s.State())
		assert.Equal(t, model.High, s.RiskTier())
	})
}

func TestPaging(t *testing.T) {
	h, _, _ := newTestHandler(t)

	assert.Contains(t, h.HandleCommand("1", "/next"), "No results yet")

	h.HandleCommand("1", "/recommend 9000 low 5")
	out := h.HandleCommand("1", "/next")
	assert.Contains(t, out, "Page 2 of 2")
	assert.Contains(t, out, "| D11 |")
	assert.NotContains(t, out, "Top 3")

	assert.Contains(t, h.HandleCommand("1", "/next"), "Page 2 of 2")
	assert.Contains(t, h.HandleCommand("1", "/prev"), "Page 1 of 2")
	assert.Contains(t, h.HandleCommand("1", "/prev"), "Page 1 of 2")
}

func TestClear(t *testing.T) {
	h, store, _ := newTestHandler(t)
	h.HandleCommand("1", "/recommend 9000 low 5")

	out := h.HandleCommand("1", "/clear")
	assert.Contains(t, out, "Cleared.")
	assert.Contains(t, out, "Amount: (not set) | Risk: Medium | Period: (not set)")

	store.Do("1", func(s *session.Session) {
		assert.False(t, s.ResultsVisible())
		assert.Empty(t, s.TopPicks())
	})
}

func TestSessionsAreIsolated(t *testing.T) {
	h, store, _ := newTestHandler(t)
	h.HandleCommand("1", "/recommend 9000 low 5")
	h.HandleCommand("2", "/amount 500")

	require.Equal(t, 2, store.Len())
	store.Do("2", func(s *session.Session) {
		assert.False(t, s.ResultsVisible())
		assert.Equal(t, model.Medium, s.RiskTier())
	})
}

func TestHelpAndUnknown(t *testing.T) {
	h, _, m := newTestHandler(t)

	assert.Contains(t, h.HandleCommand("1", "/help"), "recommend <amount>")
	out := h.HandleCommand("1", "/weekly")
	assert.Contains(t, out, `Unknown command "weekly".`)
	assert.Contains(t, scrape(t, m), `fundpicker_commands_total{command="unknown"} 1`)
}

func TestCatalogCommand(t *testing.T) {
	h, _, _ := newTestHandler(t)

	out := h.HandleCommand("1", "catalog")
	assert.Contains(t, out, "Catalog (15 funds)")
	assert.Contains(t, out, "| C | Index | Low | 6 |")
}

func TestRecommend_OutOfRangeAmountIsInvalid(t *testing.T) {
	h, _, _ := newTestHandler(t)

	for _, amount := range []string{"1e2147483640", "1e20000000", "1e30"} {
		start := time.Now()
		out := h.HandleCommand("1", "/recommend "+amount+" low 5")
		assert.Less(t, time.Since(start), time.Second, amount)
		assert.NotContains(t, out, "Top 3 Funds", amount)
		assert.Contains(t, out, "| A | Large Cap | Low | 8 |", amount)
	}
}
