package catalog

import (
	"fmt"
	"strings"

	"github.com/Domenick1991/spacify/internal/domain"
)

// ModeFilter is a transport mode or the ModeAll wildcard.
type ModeFilter string

const ModeAll ModeFilter = "ALL"

// ParseModeFilter accepts "", "ALL" or one of the transport modes, in any case.
func ParseModeFilter(s string) (ModeFilter, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" || s == string(ModeAll) {
		return ModeAll, nil
	}
	for _, m := range domain.TransportModes {
		if s == string(m) {
			return ModeFilter(m), nil
		}
	}
	return "", fmt.Errorf("%w: unknown transport mode %q", domain.ErrValidation, s)
}

// Filter returns the offers whose origin or destination contains search
// (case-insensitive) and whose mode matches mode. Input order is kept.
func Filter(offers []domain.Offer, search string, mode ModeFilter) []domain.Offer {
	needle := strings.ToLower(search)
	out := make([]domain.Offer, 0, len(offers))
	for _, o := range offers {
		if !matchesText(o, needle) {
			continue
		}
		if mode != ModeAll && mode != "" && string(o.Mode) != string(mode) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func matchesText(o domain.Offer, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(o.Origin), needle) ||
		strings.Contains(strings.ToLower(o.Destination), needle)
}
