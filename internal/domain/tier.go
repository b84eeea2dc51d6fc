package domain

import "strings"

// Tier classifies a seller. The zero value is Junior.
type Tier int

const (
	Junior Tier = iota
	Senior
)

// Tiers lists the tiers in display order. The first entry is the form default.
var Tiers = []Tier{Junior, Senior}

func (t Tier) String() string {
	switch t {
	case Senior:
		return "Senior"
	default:
		return "Junior"
	}
}

// ParseTier accepts a tier name, case-insensitively.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "junior":
		return Junior, nil
	case "senior":
		return Senior, nil
	}
	return Junior, &ValidationError{Msg: MsgUnknownTier}
}
