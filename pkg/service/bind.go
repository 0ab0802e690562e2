package service

import (
	"github.com/arthur-debert/dirprefs/pkg/dispatcher"
	"github.com/arthur-debert/dirprefs/pkg/errors"
)

// Bind registers the service's handlers on a dispatcher, connecting
// the host's event surface to the engine.
func (s *Service) Bind(d *dispatcher.Dispatcher) {
	d.Register(dispatcher.NavigationChanged, func(ev dispatcher.Event) error {
		s.HandleNavigation(ev.View, ev.Path, ev.Loading)
		return nil
	})

	d.Register(dispatcher.FolderLoaded, func(ev dispatcher.Event) error {
		s.HandleFolderLoaded(ev.View, ev.Path)
		return nil
	})

	d.Register(dispatcher.ActionInvoked, func(ev dispatcher.Event) error {
		switch ev.Action {
		case dispatcher.ActionSave:
			return s.Save(ev.View)
		case dispatcher.ActionToggle:
			return s.ToggleHidden(ev.View)
		case dispatcher.ActionDisable:
			s.SetDisabled(!s.disabled)
			return nil
		case dispatcher.ActionReset:
			return s.Reset(ev.View)
		case dispatcher.ActionHoverRestore:
			s.RestoreHover(ev.View)
			return nil
		default:
			return errors.Newf(errors.ErrActionUnknown, "unknown action %q", ev.Action)
		}
	})

	// Remote messages delivered by the host flow into the local bus,
	// where the relay's subscriptions pick them up.
	d.Register(dispatcher.RemoteMessage, func(ev dispatcher.Event) error {
		s.bus.Publish(ev.Message)
		return nil
	})
}
