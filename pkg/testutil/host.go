// Package testutil provides shared test fixtures: a fake file-manager
// host that records issued commands and a notifier that captures
// notifications.
package testutil

import (
	"fmt"

	"github.com/arthur-debert/dirprefs/pkg/types"
	"github.com/arthur-debert/dirprefs/pkg/view"
)

// HostCommand is one recorded view-mutation command.
type HostCommand struct {
	Name string
	View types.ViewID
	Arg  interface{}
}

// FakeHost implements view.Host in memory, recording every command
// and mutating per-view state the way a real host would.
type FakeHost struct {
	Views    map[types.ViewID]*view.State
	Commands []HostCommand

	// FailCommands makes every Commander method return an error.
	FailCommands bool
}

// NewFakeHost creates a fake host with a single view at the given cwd.
func NewFakeHost(cwd string) *FakeHost {
	return &FakeHost{
		Views: map[types.ViewID]*view.State{
			0: {CWD: cwd, Sort: types.SortSpec{Criterion: types.SortNatural}, Linemode: types.LinemodeNone},
		},
	}
}

// AddView registers another view at the given cwd.
func (h *FakeHost) AddView(id types.ViewID, cwd string) {
	h.Views[id] = &view.State{CWD: cwd, Sort: types.SortSpec{Criterion: types.SortNatural}, Linemode: types.LinemodeNone}
}

func (h *FakeHost) record(name string, id types.ViewID, arg interface{}) error {
	h.Commands = append(h.Commands, HostCommand{Name: name, View: id, Arg: arg})
	if h.FailCommands {
		return fmt.Errorf("host rejected %s", name)
	}
	return nil
}

func (h *FakeHost) SetSort(id types.ViewID, sort types.SortSpec) error {
	if err := h.record("sort", id, sort); err != nil {
		return err
	}
	if v, ok := h.Views[id]; ok {
		v.Sort = sort
	}
	return nil
}

func (h *FakeHost) SetLinemode(id types.ViewID, mode types.Linemode) error {
	if err := h.record("linemode", id, mode); err != nil {
		return err
	}
	if v, ok := h.Views[id]; ok {
		v.Linemode = mode
	}
	return nil
}

func (h *FakeHost) SetHidden(id types.ViewID, show bool) error {
	if err := h.record("hidden", id, show); err != nil {
		return err
	}
	if v, ok := h.Views[id]; ok {
		v.ShowHidden = show
	}
	return nil
}

func (h *FakeHost) Hover(id types.ViewID, path string) error {
	if err := h.record("hover", id, path); err != nil {
		return err
	}
	if v, ok := h.Views[id]; ok {
		v.Hovered = path
	}
	return nil
}

func (h *FakeHost) State(id types.ViewID) (view.State, error) {
	v, ok := h.Views[id]
	if !ok {
		return view.State{}, fmt.Errorf("no such view: %d", id)
	}
	return *v, nil
}

// CommandNames returns the names of all recorded commands in order.
func (h *FakeHost) CommandNames() []string {
	names := make([]string, len(h.Commands))
	for i, c := range h.Commands {
		names[i] = c.Name
	}
	return names
}

// Reset clears the recorded command log.
func (h *FakeHost) Reset() {
	h.Commands = nil
}
