package model

import "github.com/shopspring/decimal"

// Pick is one ranked entry of the top picks panel.
type Pick struct {
	Rank       int             `json:"rank"`
	Name       string          `json:"name"`
	Category   Category        `json:"category"`
	YearlyROI  float64         `json:"yearlyROI"`
	Allocation decimal.Decimal `json:"allocation"`
}

// Recommendation is the result of one filter pass over the catalog.
// Eligible feeds the table, Picks the summary panel.
type Recommendation struct {
	Tier       RiskTier
	Eligible   []Fund
	Picks      []Pick
	Allocation decimal.Decimal // per pick, zero when Picks is empty
}

// Row is a fund projected onto the table columns.
type Row struct {
	Name      string   `json:"name"`
	Category  Category `json:"category"`
	Risk      string   `json:"risk"`
	YearlyROI float64  `json:"yearlyROI"`
}

// TablePage is one window of the eligible-funds table.
type TablePage struct {
	Rows      []Row `json:"rows"`
	PageIndex int   `json:"pageIndex"`
	PageCount int   `json:"pageCount"`
	CanPrev   bool  `json:"canPrev"`
	CanNext   bool  `json:"canNext"`
}
