package view

import (
	"github.com/arthur-debert/dirprefs/pkg/logging"
	"github.com/arthur-debert/dirprefs/pkg/types"
)

// HoverMemory tracks the last hovered entry per view so it can be
// restored after a hidden-visibility toggle shifts the view contents.
// This is a best-effort UX affordance; every failure is ignored.
type HoverMemory struct {
	host    Host
	hovered map[types.ViewID]string
}

// NewHoverMemory creates an empty hover memory over the given host.
func NewHoverMemory(host Host) *HoverMemory {
	return &HoverMemory{host: host, hovered: make(map[types.ViewID]string)}
}

// Remember snapshots the view's currently hovered entry.
func (h *HoverMemory) Remember(view types.ViewID) {
	state, err := h.host.State(view)
	if err != nil || state.Hovered == "" {
		return
	}
	h.hovered[view] = state.Hovered
}

// Restore re-hovers the remembered entry for the view, if any, and
// clears the slot.
func (h *HoverMemory) Restore(view types.ViewID) {
	path, ok := h.hovered[view]
	if !ok {
		return
	}
	delete(h.hovered, view)

	if err := h.host.Hover(view, path); err != nil {
		logger := logging.GetLogger("view.hover")
		logger.Debug().
			Err(err).
			Int("view", int(view)).
			Str("path", path).
			Msg("Hover restoration failed")
	}
}
