package rules

import (
	"github.com/arthur-debert/dirprefs/pkg/logging"
)

// Table is the ordered preference table. First match wins, so ordering
// is part of the semantics: user rules precede predefined rules and a
// catch-all ".*" fallback belongs at the very back.
type Table struct {
	rules []*Rule
}

// NewTable creates a table from rules in the given order.
func NewTable(rules ...*Rule) *Table {
	return &Table{rules: rules}
}

// Build assembles the startup table: user rules in their persisted
// order followed by predefined rules in configuration order.
func Build(user, predefined []*Rule) *Table {
	t := &Table{rules: make([]*Rule, 0, len(user)+len(predefined))}
	t.rules = append(t.rules, user...)
	t.rules = append(t.rules, predefined...)
	return t
}

// Match returns the first rule whose location matches path as a
// suffix, or nil when nothing matches.
func (t *Table) Match(path string) *Rule {
	logger := logging.GetLogger("rules.table")
	for _, rule := range t.rules {
		if rule.Matches(path) {
			logger.Debug().
				Str("path", path).
				Str("location", rule.Location.String()).
				Bool("predefined", rule.Predefined).
				Msg("Rule matched")
			return rule
		}
	}
	logger.Debug().Str("path", path).Msg("No rule matched")
	return nil
}

// Put inserts a user rule at the front, removing any existing
// non-predefined rule with the same location first. Predefined rules
// are never displaced.
func (t *Table) Put(rule *Rule) {
	t.Remove(rule.Location.String())
	t.rules = append([]*Rule{rule}, t.rules...)
}

// Remove deletes the non-predefined rule whose location string equals
// location exactly. It reports whether a rule was removed.
func (t *Table) Remove(location string) bool {
	for i, rule := range t.rules {
		if !rule.Predefined && rule.Location.String() == location {
			t.rules = append(t.rules[:i], t.rules[i+1:]...)
			return true
		}
	}
	return false
}

// UserRules returns the non-predefined subset in current order. This
// is exactly the set that gets persisted and broadcast.
func (t *Table) UserRules() []*Rule {
	var user []*Rule
	for _, rule := range t.rules {
		if !rule.Predefined {
			user = append(user, rule)
		}
	}
	return user
}

// ReplaceUserRules swaps the non-predefined subset for the given
// rules, keeping the predefined rules behind them. Used when a sibling
// instance broadcasts a new table and on reload from disk.
func (t *Table) ReplaceUserRules(user []*Rule) {
	var predefined []*Rule
	for _, rule := range t.rules {
		if rule.Predefined {
			predefined = append(predefined, rule)
		}
	}
	t.rules = append(append([]*Rule{}, user...), predefined...)
}

// Rules returns a copy of the full ordered table.
func (t *Table) Rules() []*Rule {
	out := make([]*Rule, len(t.rules))
	copy(out, t.rules)
	return out
}

// Len returns the number of rules in the table.
func (t *Table) Len() int { return len(t.rules) }
