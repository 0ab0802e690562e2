package rules

import (
	"github.com/arthur-debert/dirprefs/pkg/types"
)

// Rule pairs a location with the view preferences applied when the
// current directory matches it.
type Rule struct {
	Location Location `json:"location"`
	types.ViewPrefs

	// Predefined marks rules supplied by startup configuration. They
	// are reconstructed on every reload and never written to disk.
	Predefined bool `json:"-"`
}

// NewRule creates a user rule for a literal directory path.
func NewRule(path string, prefs types.ViewPrefs) *Rule {
	return &Rule{Location: Literal(path), ViewPrefs: prefs}
}

// NewPredefined creates a predefined rule from a configured pattern.
func NewPredefined(pattern string, prefs types.ViewPrefs) *Rule {
	return &Rule{Location: Pattern(pattern), ViewPrefs: prefs, Predefined: true}
}

// Matches reports whether the rule's location matches path as a suffix.
func (r *Rule) Matches(path string) bool {
	return r.Location.Matches(path)
}
