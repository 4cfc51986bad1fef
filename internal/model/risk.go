package model

import (
	"errors"
	"fmt"
	"strings"
)

// RiskTier is the investor's risk tolerance.
type RiskTier int

const (
	Low RiskTier = iota
	Medium
	High
)

// DefaultRiskTier is the tier a fresh session starts with.
const DefaultRiskTier = Medium

// RiskTiers lists the tiers from most to least conservative.
var RiskTiers = []RiskTier{Low, Medium, High}

// ErrUnknownRiskTier is returned by ParseRiskTier for unrecognised input.
var ErrUnknownRiskTier = errors.New("unknown risk tier")

// String returns the display label.
func (t RiskTier) String() string {
	switch t {
	case Low:
		return "Low"
	case Medium:
		return "Medium"
	case High:
		return "High"
	default:
		return fmt.Sprintf("RiskTier(%d)", int(t))
	}
}

// Key returns the lower-case identifier used in config files and commands.
func (t RiskTier) Key() string { return strings.ToLower(t.String()) }

// Valid reports whether t is one of the enumerated tiers.
func (t RiskTier) Valid() bool { return t >= Low && t <= High }

// ParseRiskTier accepts "low", "medium"/"med", "high" or their first letter.
func ParseRiskTier(s string) (RiskTier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "l":
		return Low, nil
	case "medium", "med", "m":
		return Medium, nil
	case "high", "h":
		return High, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRiskTier, s)
}

// MarshalText implements encoding.TextMarshaler.
func (t RiskTier) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRiskTier, int(t))
	}
	return []byte(t.Key()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so tiers can key YAML maps.
func (t *RiskTier) UnmarshalText(b []byte) error {
	v, err := ParseRiskTier(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
