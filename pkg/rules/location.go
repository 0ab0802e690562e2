package rules

import (
	"encoding/json"
	"regexp"

	"github.com/arthur-debert/dirprefs/pkg/errors"
)

// LocationKind distinguishes literal paths from user-supplied patterns.
type LocationKind int

const (
	// LocationLiteral is a path captured from the current directory.
	// Regex metacharacters are escaped before matching.
	LocationLiteral LocationKind = iota

	// LocationPattern is a user-supplied expression used verbatim.
	LocationPattern
)

// Location is the match key of a rule. Regardless of kind it matches a
// directory path as a suffix-anchored regular expression.
type Location struct {
	kind    LocationKind
	pattern string
	re      *regexp.Regexp
}

// Literal builds a location that matches the given path literally,
// anchored at the end of the candidate string.
func Literal(path string) Location {
	return Location{kind: LocationLiteral, pattern: regexp.QuoteMeta(path)}
}

// Pattern builds a location from a user-supplied expression.
func Pattern(expr string) Location {
	return Location{kind: LocationPattern, pattern: expr}
}

// Kind returns the location kind.
func (l Location) Kind() LocationKind { return l.kind }

// String returns the pattern as persisted: escaped for literals,
// verbatim for patterns.
func (l Location) String() string { return l.pattern }

// Compile validates the location's pattern. Literal locations cannot
// fail; user patterns may.
func (l *Location) Compile() error {
	if l.re != nil {
		return nil
	}
	re, err := regexp.Compile(l.pattern + "$")
	if err != nil {
		return errors.Wrapf(err, errors.ErrRuleCompile, "invalid location pattern %q", l.pattern)
	}
	l.re = re
	return nil
}

// Matches reports whether path matches this location as a suffix.
// An uncompilable pattern never matches.
func (l *Location) Matches(path string) bool {
	if err := l.Compile(); err != nil {
		return false
	}
	return l.re.MatchString(path)
}

// MarshalJSON encodes the location as its pattern string.
func (l Location) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.pattern)
}

// UnmarshalJSON decodes a pattern string. Anything read back from disk
// or the wire is already in pattern form.
func (l *Location) UnmarshalJSON(data []byte) error {
	var pattern string
	if err := json.Unmarshal(data, &pattern); err != nil {
		return err
	}
	*l = Pattern(pattern)
	return nil
}
