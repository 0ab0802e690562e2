// Package service owns one dirprefs engine instance: the preference
// table, the disabled flag, and the wiring between store, matcher,
// applier and sync relay. All state lives on the Service struct; all
// methods run on the host's event loop, so no locking is needed.
package service

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/dirprefs/pkg/config"
	"github.com/arthur-debert/dirprefs/pkg/errors"
	"github.com/arthur-debert/dirprefs/pkg/logging"
	"github.com/arthur-debert/dirprefs/pkg/notify"
	"github.com/arthur-debert/dirprefs/pkg/relay"
	"github.com/arthur-debert/dirprefs/pkg/rules"
	"github.com/arthur-debert/dirprefs/pkg/store"
	"github.com/arthur-debert/dirprefs/pkg/types"
	"github.com/arthur-debert/dirprefs/pkg/view"
)

// Service is one running dirprefs instance.
type Service struct {
	table      *rules.Table
	store      *store.Store
	applier    *view.Applier
	host       view.Host
	relay      *relay.Relay
	bus        *relay.Bus
	notifier   notify.Notifier
	disabled   bool
	activeView types.ViewID
	logger     zerolog.Logger
}

// Options bundles the collaborators a Service needs.
type Options struct {
	Config   *config.Config
	Host     view.Host
	Bus      *relay.Bus
	FS       types.FS
	Notifier notify.Notifier
}

// New builds a service: predefined rules from configuration, user
// rules from disk, sync relay subscriptions on the bus. A malformed
// preference file is reported and treated as empty.
func New(opts Options) (*Service, error) {
	if opts.FS == nil {
		opts.FS = types.OSFileSystem{}
	}
	if opts.Notifier == nil {
		opts.Notifier = notify.NewTerminal(opts.Config.NoNotify)
	}
	if opts.Bus == nil {
		opts.Bus = relay.NewBus()
	}

	predefined, err := opts.Config.PredefinedRules()
	if err != nil {
		return nil, err
	}

	st := store.New(opts.FS, opts.Config.SavePath)
	user, err := st.Load()
	if err != nil {
		// Missing file never errors; anything else means the file is
		// unreadable or malformed. Surface it and start empty.
		opts.Notifier.Error("dirprefs", err.Error())
	}

	s := &Service{
		table:    rules.Build(user, predefined),
		store:    st,
		host:     opts.Host,
		applier:  view.NewApplier(opts.Host),
		relay:    relay.New(opts.Bus),
		bus:      opts.Bus,
		notifier: opts.Notifier,
		disabled: opts.Config.Disabled,
		logger:   logging.GetLogger("service"),
	}

	s.relay.OnPrefs(s.handleRemotePrefs)
	s.relay.OnDisabled(s.handleRemoteDisabled)
	s.relay.OnProjectLoaded(s.reapply)

	s.logger.Debug().
		Int("userRules", len(user)).
		Int("predefinedRules", len(predefined)).
		Bool("disabled", s.disabled).
		Msg("Service initialized")

	return s, nil
}

// Table returns the live preference table.
func (s *Service) Table() *rules.Table { return s.table }

// Disabled reports whether rule application is suspended.
func (s *Service) Disabled() bool { return s.disabled }

// ActiveView returns the last view a navigation event arrived for.
func (s *Service) ActiveView() types.ViewID { return s.activeView }

// HandleNavigation applies the matching rule for the view's new
// directory. Directories still loading are skipped; the folder-loaded
// event re-fires the application once contents are in.
func (s *Service) HandleNavigation(viewID types.ViewID, path string, loading bool) {
	s.activeView = viewID
	if s.disabled || loading {
		return
	}
	s.applier.Apply(s.table.Match(path), viewID)
}

// HandleFolderLoaded re-applies the matching rule once a directory
// finishes loading.
func (s *Service) HandleFolderLoaded(viewID types.ViewID, path string) {
	if s.disabled {
		return
	}
	s.applier.Apply(s.table.Match(path), viewID)
}

// Save captures the view's current settings as a rule for its working
// directory, persists the table and broadcasts the change. On a write
// failure the in-memory rule is kept; the next save converges.
func (s *Service) Save(viewID types.ViewID) error {
	state, err := s.host.State(viewID)
	if err != nil {
		return errors.Wrap(err, errors.ErrViewState, "cannot read view state")
	}

	sort := state.Sort
	mode := state.Linemode
	show := state.ShowHidden
	rule := rules.NewRule(state.CWD, types.ViewPrefs{
		Sort:       &sort,
		Linemode:   &mode,
		ShowHidden: &show,
	})

	s.table.Put(rule)
	s.persist()
	s.relay.BroadcastPrefs(s.table)

	s.notifier.Info("dirprefs", "Saved preferences for "+state.CWD)
	return nil
}

// Reset removes the saved rule for the view's working directory,
// persists, broadcasts, and re-applies whatever rule still matches
// (typically the predefined fallback).
func (s *Service) Reset(viewID types.ViewID) error {
	state, err := s.host.State(viewID)
	if err != nil {
		return errors.Wrap(err, errors.ErrViewState, "cannot read view state")
	}

	location := rules.Literal(state.CWD).String()
	if !s.table.Remove(location) {
		s.notifier.Info("dirprefs", "No saved preferences for "+state.CWD)
		return nil
	}

	s.persist()
	s.relay.BroadcastPrefs(s.table)
	s.applier.Apply(s.table.Match(state.CWD), viewID)

	s.notifier.Info("dirprefs", "Removed preferences for "+state.CWD)
	return nil
}

// ToggleHidden flips the view's hidden-file visibility without
// persisting anything, restoring the hovered entry afterwards.
func (s *Service) ToggleHidden(viewID types.ViewID) error {
	state, err := s.host.State(viewID)
	if err != nil {
		return errors.Wrap(err, errors.ErrViewState, "cannot read view state")
	}

	s.applier.SetHidden(viewID, !state.ShowHidden)
	s.applier.Hover().Restore(viewID)
	return nil
}

// RestoreHover re-hovers the remembered entry for a view. This backs
// the internal hover-restoration action.
func (s *Service) RestoreHover(viewID types.ViewID) {
	s.applier.Hover().Restore(viewID)
}

// SetDisabled suspends or resumes rule application and broadcasts the
// flag. Re-enabling reloads the table from disk and immediately
// re-applies it to the active view.
func (s *Service) SetDisabled(disabled bool) {
	if s.disabled == disabled {
		return
	}
	s.disabled = disabled
	s.relay.BroadcastDisabled(disabled)

	if !disabled {
		s.reload()
		s.reapply()
	}
	s.logger.Info().Bool("disabled", disabled).Msg("Disabled flag changed")
}

func (s *Service) persist() {
	if err := s.store.Save(s.table); err != nil {
		s.notifier.Error("dirprefs", err.Error())
	}
}

// reload replaces the user subset with the rules currently on disk.
func (s *Service) reload() {
	user, err := s.store.Load()
	if err != nil {
		s.notifier.Error("dirprefs", err.Error())
	}
	s.table.ReplaceUserRules(user)
}

// reapply pushes the current match into the active view.
func (s *Service) reapply() {
	if s.disabled {
		return
	}
	state, err := s.host.State(s.activeView)
	if err != nil {
		return
	}
	s.applier.Apply(s.table.Match(state.CWD), s.activeView)
}

func (s *Service) handleRemotePrefs(user []*rules.Rule) {
	s.table.ReplaceUserRules(user)
	s.reapply()
}

func (s *Service) handleRemoteDisabled(disabled bool) {
	was := s.disabled
	s.disabled = disabled
	if was && !disabled {
		s.reapply()
	}
}
