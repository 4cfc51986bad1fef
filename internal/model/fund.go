package model

import (
	"errors"
	"fmt"
	"strings"
)

// Category is the label a fund is filed under in the catalog.
type Category string

const (
	LargeCap Category = "Large Cap"
	MidCap   Category = "Mid Cap"
	SmallCap Category = "Small Cap"
	Index    Category = "Index"
	Debt     Category = "Debt"
	ELSS     Category = "ELSS"
	FlexiCap Category = "Flexi Cap"
)

// Categories lists every known category in display order.
var Categories = []Category{LargeCap, MidCap, SmallCap, Index, Debt, ELSS, FlexiCap}

// ErrUnknownCategory is returned when a label is not one of Categories.
var ErrUnknownCategory = errors.New("unknown category")

// ParseCategory matches s against the known categories, ignoring case and surrounding space.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Fund is one immutable entry of the static catalog.
type Fund struct {
	Name      string   `json:"name" yaml:"name"`
	Category  Category `json:"category" yaml:"category"`
	YearlyROI float64  `json:"yearlyROI" yaml:"yearlyROI"`
}
