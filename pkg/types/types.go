// Package types defines the shared value types used across dirprefs:
// sort specifications, line display modes and the optional preference
// bundle applied to a view.
package types

import (
	"fmt"
)

// SortCriterion selects the ordering of entries in a view.
type SortCriterion string

// Valid sort criteria.
const (
	SortNone         SortCriterion = "none"
	SortAlphabetical SortCriterion = "alphabetical"
	SortNatural      SortCriterion = "natural"
	SortSize         SortCriterion = "size"
	SortModified     SortCriterion = "mtime"
	SortCreated      SortCriterion = "btime"
	SortExtension    SortCriterion = "extension"
	SortRandom       SortCriterion = "random"
)

// ParseSortCriterion validates a sort criterion string.
func ParseSortCriterion(s string) (SortCriterion, error) {
	switch SortCriterion(s) {
	case SortNone, SortAlphabetical, SortNatural, SortSize,
		SortModified, SortCreated, SortExtension, SortRandom:
		return SortCriterion(s), nil
	}
	return "", fmt.Errorf("unknown sort criterion: %s", s)
}

// Linemode selects the per-entry detail column shown in a view.
type Linemode string

// Valid line display modes.
const (
	LinemodeNone        Linemode = "none"
	LinemodeSize        Linemode = "size"
	LinemodeBirthtime   Linemode = "birthtime"
	LinemodeMtime       Linemode = "modifiedtime"
	LinemodePermissions Linemode = "permissions"
	LinemodeOwner       Linemode = "owner"
)

// ParseLinemode validates a linemode string.
func ParseLinemode(s string) (Linemode, error) {
	switch Linemode(s) {
	case LinemodeNone, LinemodeSize, LinemodeBirthtime,
		LinemodeMtime, LinemodePermissions, LinemodeOwner:
		return Linemode(s), nil
	}
	return "", fmt.Errorf("unknown linemode: %s", s)
}

// SortSpec is the full sort bundle for a view.
type SortSpec struct {
	Criterion SortCriterion `json:"criterion"`
	Reverse   bool          `json:"reverse,omitempty"`
	DirsFirst bool          `json:"directoriesFirst,omitempty"`
	Translit  bool          `json:"transliterate,omitempty"`
	Sensitive bool          `json:"caseSensitive,omitempty"`
}

// ViewPrefs is the preference bundle attached to a rule. Nil fields
// mean "leave the view's current setting untouched".
type ViewPrefs struct {
	Sort       *SortSpec `json:"sort,omitempty"`
	Linemode   *Linemode `json:"linemode,omitempty"`
	ShowHidden *bool     `json:"showHidden,omitempty"`
}

// IsEmpty reports whether the bundle carries no settings at all.
func (p ViewPrefs) IsEmpty() bool {
	return p.Sort == nil && p.Linemode == nil && p.ShowHidden == nil
}

// ViewID identifies one view/tab in the host file manager.
type ViewID int
