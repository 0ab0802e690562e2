// Package rules implements the location-keyed preference table.
//
// A rule pairs a location with the view preferences to apply when the
// current directory matches it. Locations come in two flavors: literal
// paths captured from the current directory (regex metacharacters
// escaped) and user-supplied patterns taken verbatim. Both match as
// suffix-anchored regular expressions, so a rule for "/home/user/project"
// fires in that directory regardless of mount prefix, and a predefined
// ".*" rule acts as a catch-all fallback.
//
// The table is ordered and first match wins. There is no scoring and no
// longest-match preference, which makes ordering semantically
// significant: saved rules go to the front, predefined fallback rules
// belong at the back.
package rules
