// Package view applies matched preference rules to the active view
// through the host file manager's command surface.
package view

import (
	"github.com/arthur-debert/dirprefs/pkg/types"
)

// Commander issues view-mutation commands against the host. One
// method per host command; implementations are expected to be cheap
// and non-blocking.
type Commander interface {
	SetSort(view types.ViewID, sort types.SortSpec) error
	SetLinemode(view types.ViewID, mode types.Linemode) error
	SetHidden(view types.ViewID, show bool) error
	Hover(view types.ViewID, path string) error
}

// State is a snapshot of one view's current settings.
type State struct {
	CWD        string
	Sort       types.SortSpec
	Linemode   types.Linemode
	ShowHidden bool
	Hovered    string
}

// Inspector reads the current state of a view. Needed by save and
// toggle, which capture settings rather than push them.
type Inspector interface {
	State(view types.ViewID) (State, error)
}

// Host is the full boundary to the file manager.
type Host interface {
	Commander
	Inspector
}
