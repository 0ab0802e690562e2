// Package notify delivers non-blocking user-facing notifications.
// Nothing here is fatal: a notification is advisory and execution
// always continues.
package notify

import (
	"github.com/pterm/pterm"

	"github.com/arthur-debert/dirprefs/pkg/logging"
)

// Notifier reports events to the user.
type Notifier interface {
	Info(title, message string)
	Error(title, message string)
}

// Terminal renders notifications with pterm prefixed printers.
type Terminal struct {
	// Quiet suppresses all output (the no_notify configuration key).
	Quiet bool
}

// NewTerminal creates a terminal notifier.
func NewTerminal(quiet bool) *Terminal {
	return &Terminal{Quiet: quiet}
}

func (t *Terminal) Info(title, message string) {
	logger := logging.GetLogger("notify")
	logger.Info().Str("title", title).Msg(message)
	if t.Quiet {
		return
	}
	pterm.Info.Printfln("%s: %s", title, message)
}

func (t *Terminal) Error(title, message string) {
	logger := logging.GetLogger("notify")
	logger.Error().Str("title", title).Msg(message)
	if t.Quiet {
		return
	}
	pterm.Error.Printfln("%s: %s", title, message)
}

// Noop discards all notifications.
type Noop struct{}

func (Noop) Info(string, string)  {}
func (Noop) Error(string, string) {}
