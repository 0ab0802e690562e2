package view

import (
	"github.com/arthur-debert/dirprefs/pkg/logging"
	"github.com/arthur-debert/dirprefs/pkg/rules"
	"github.com/arthur-debert/dirprefs/pkg/types"
)

// Applier pushes a matched rule's settings into a view. Absent fields
// are left untouched; there is no reset-to-default behavior.
type Applier struct {
	host  Host
	hover *HoverMemory
}

// NewApplier creates an applier over the given host.
func NewApplier(host Host) *Applier {
	return &Applier{host: host, hover: NewHoverMemory(host)}
}

// Hover returns the applier's per-view hover memory.
func (a *Applier) Hover() *HoverMemory { return a.hover }

// Apply issues one command per present field of the rule's preference
// bundle. Command failures are logged, not propagated: applying is a
// side effect the caller never consumes.
func (a *Applier) Apply(rule *rules.Rule, view types.ViewID) {
	if rule == nil {
		return
	}
	logger := logging.GetLogger("view.applier")

	if rule.Sort != nil {
		if err := a.host.SetSort(view, *rule.Sort); err != nil {
			logger.Warn().Err(err).Int("view", int(view)).Msg("Failed to set sort")
		}
	}
	if rule.Linemode != nil {
		if err := a.host.SetLinemode(view, *rule.Linemode); err != nil {
			logger.Warn().Err(err).Int("view", int(view)).Msg("Failed to set linemode")
		}
	}
	if rule.ShowHidden != nil {
		a.SetHidden(view, *rule.ShowHidden)
	}
}

// SetHidden changes hidden-file visibility, remembering the hovered
// entry first so it can be restored after the view contents shift.
func (a *Applier) SetHidden(view types.ViewID, show bool) {
	logger := logging.GetLogger("view.applier")

	a.hover.Remember(view)
	if err := a.host.SetHidden(view, show); err != nil {
		logger.Warn().Err(err).Int("view", int(view)).Msg("Failed to set hidden visibility")
	}
}
