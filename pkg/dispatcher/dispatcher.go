// Package dispatcher routes host events to registered handlers. It
// replaces ad-hoc reactive subscriptions with a closed set of event
// kinds dispatched synchronously on a single goroutine.
package dispatcher

import (
	"github.com/arthur-debert/dirprefs/pkg/errors"
	"github.com/arthur-debert/dirprefs/pkg/logging"
	"github.com/arthur-debert/dirprefs/pkg/relay"
	"github.com/arthur-debert/dirprefs/pkg/types"
)

// EventKind identifies the type of a host event.
type EventKind string

const (
	// NavigationChanged fires when a view's working directory changes.
	NavigationChanged EventKind = "navigation-changed"

	// FolderLoaded fires when a directory finishes loading.
	FolderLoaded EventKind = "folder-loaded"

	// ActionInvoked fires when the user triggers a named action.
	ActionInvoked EventKind = "action-invoked"

	// RemoteMessage fires when a pub/sub message arrives from a
	// sibling instance.
	RemoteMessage EventKind = "remote-message"
)

// Action names dispatched through ActionInvoked events.
const (
	ActionSave         = "save"
	ActionToggle       = "toggle"
	ActionDisable      = "disable"
	ActionReset        = "reset"
	ActionHoverRestore = "hover-restore"
)

// Event is one host event. Fields are populated per kind.
type Event struct {
	Kind EventKind

	// NavigationChanged / FolderLoaded
	View    types.ViewID
	Path    string
	Loading bool

	// ActionInvoked
	Action string
	Args   []string

	// RemoteMessage
	Message relay.Message
}

// Handler processes one event.
type Handler func(Event) error

// Dispatcher invokes typed handlers for a closed set of event kinds.
// All dispatch is synchronous; the host (or Run) guarantees serialized
// execution, so no locking is needed.
type Dispatcher struct {
	handlers map[EventKind][]Handler
}

// New creates an empty dispatcher.
func New() *Dispatcher {
	return &Dispatcher{handlers: make(map[EventKind][]Handler)}
}

// Register adds a handler for an event kind.
func (d *Dispatcher) Register(kind EventKind, fn Handler) {
	d.handlers[kind] = append(d.handlers[kind], fn)
}

// Dispatch invokes the handlers registered for the event's kind, in
// registration order, stopping at the first error.
func (d *Dispatcher) Dispatch(ev Event) error {
	logger := logging.GetLogger("dispatcher")

	handlers, ok := d.handlers[ev.Kind]
	if !ok {
		return errors.Newf(errors.ErrEventUnknown, "no handler for event kind %q", ev.Kind)
	}

	logger.Debug().
		Str("kind", string(ev.Kind)).
		Str("action", ev.Action).
		Str("path", ev.Path).
		Msg("Dispatching event")

	for _, fn := range handlers {
		if err := fn(ev); err != nil {
			return err
		}
	}
	return nil
}

// Run drains the event channel on the caller's goroutine until it is
// closed. Handler errors are logged and do not stop the loop.
func (d *Dispatcher) Run(events <-chan Event) {
	logger := logging.GetLogger("dispatcher")
	for ev := range events {
		if err := d.Dispatch(ev); err != nil {
			logger.Warn().Err(err).Str("kind", string(ev.Kind)).Msg("Event handler failed")
		}
	}
}
