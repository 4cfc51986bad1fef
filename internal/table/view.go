// Package table presents a fund list as a paginated grid.
package table

import "FundPicker/internal/model"

// PageSize is the number of rows on a page.
const PageSize = 10

// Columns are the table headers, in row projection order.
var Columns = []string{"Name", "Category", "Risk", "Yearly ROI (%)"}

// LabelFunc returns the risk label shown next to a category.
type LabelFunc func(model.Category) string

// View is a page window over a fund list. The page index is reset
// whenever the underlying list is replaced.
type View struct {
	funds     []model.Fund
	label     LabelFunc
	pageIndex int
}

// NewView returns a View positioned on the first page.
func NewView(funds []model.Fund, label LabelFunc) *View {
	return &View{funds: funds, label: label}
}

// Reset replaces the fund list and returns to the first page.
func (v *View) Reset(funds []model.Fund) {
	v.funds = funds
	v.pageIndex = 0
}

// Len returns the total number of funds across all pages.
func (v *View) Len() int { return len(v.funds) }

// PageIndex returns the zero-based current page.
func (v *View) PageIndex() int { return v.pageIndex }

// PageCount returns the number of pages; an empty list still has one.
func (v *View) PageCount() int {
	n := (len(v.funds) + PageSize - 1) / PageSize
	if n < 1 {
		return 1
	}
	return n
}

// Rows projects the funds on the current page.
func (v *View) Rows() []model.Row {
	start := v.pageIndex * PageSize
	if start >= len(v.funds) {
		return []model.Row{}
	}
	end := min(len(v.funds), start+PageSize)

	rows := make([]model.Row, 0, end-start)
	for _, f := range v.funds[start:end] {
		row := model.Row{Name: f.Name, Category: f.Category, YearlyROI: f.YearlyROI}
		if v.label != nil {
			row.Risk = v.label(f.Category)
		}
		rows = append(rows, row)
	}
	return rows
}

func (v *View) CanGoPrevious() bool { return v.pageIndex > 0 }

func (v *View) CanGoNext() bool { return v.pageIndex < v.PageCount()-1 }

// GoToPrevious moves back one page; no-op on the first page.
func (v *View) GoToPrevious() {
	if v.CanGoPrevious() {
		v.pageIndex--
	}
}

// GoToNext moves forward one page; no-op on the last page.
func (v *View) GoToNext() {
	if v.CanGoNext() {
		v.pageIndex++
	}
}

// Page snapshots the current window.
func (v *View) Page() model.TablePage {
	return model.TablePage{
		Rows:      v.Rows(),
		PageIndex: v.pageIndex,
		PageCount: v.PageCount(),
		CanPrev:   v.CanGoPrevious(),
		CanNext:   v.CanGoNext(),
	}
}
