// Package cli wires the dirprefs command-line interface. The CLI
// operates on the same store and rule table the embedded engine uses,
// so rules edited here are picked up by running instances on their
// next reload.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dirprefs/internal/version"
	"github.com/arthur-debert/dirprefs/pkg/cobrax/topics"
	"github.com/arthur-debert/dirprefs/pkg/config"
	"github.com/arthur-debert/dirprefs/pkg/errors"
	"github.com/arthur-debert/dirprefs/pkg/logging"
	"github.com/arthur-debert/dirprefs/pkg/notify"
	"github.com/arthur-debert/dirprefs/pkg/paths"
	"github.com/arthur-debert/dirprefs/pkg/rules"
	"github.com/arthur-debert/dirprefs/pkg/store"
	"github.com/arthur-debert/dirprefs/pkg/style"
	"github.com/arthur-debert/dirprefs/pkg/types"
	"github.com/arthur-debert/dirprefs/pkg/ui"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		formatName string
	)

	rootCmd := &cobra.Command{
		Use:   "dirprefs",
		Short: "Per-directory view preferences for terminal file managers",
		Long: `dirprefs remembers sort order, line display mode and hidden-file
visibility per directory. Preferences are stored as an ordered rule
table: the first rule whose location matches the current directory
(as a suffix) wins, and predefined fallback rules from the
configuration file catch everything else.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&formatName, "format", "auto", "Output format: auto, term, text, json")

	rootCmd.AddCommand(newListCmd(&formatName))
	rootCmd.AddCommand(newMatchCmd(&formatName))
	rootCmd.AddCommand(newSetCmd())
	rootCmd.AddCommand(newRemoveCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())

	// Topic-based help, looked up relative to the executable.
	if exe, err := os.Executable(); err == nil {
		for _, helpPath := range []string{
			filepath.Join(filepath.Dir(exe), "..", "..", "docs", "help"),
			filepath.Join(filepath.Dir(exe), "docs", "help"),
			"docs/help",
		} {
			if _, err := os.Stat(helpPath); err == nil {
				if m, err := topics.Load(helpPath, topics.NewGlamourRenderer()); err == nil {
					m.Attach(rootCmd)
					break
				}
			}
		}
	}

	return rootCmd
}

// loadTable builds the full rule table: user rules from disk followed
// by predefined rules from configuration.
func loadTable() (*rules.Table, *store.Store, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	predefined, err := cfg.PredefinedRules()
	if err != nil {
		return nil, nil, nil, err
	}

	st := store.New(types.OSFileSystem{}, cfg.SavePath)
	user, err := st.Load()
	if err != nil {
		// Unreadable or malformed file: report and continue empty.
		notify.NewTerminal(cfg.NoNotify).Error("dirprefs", err.Error())
	}

	return rules.Build(user, predefined), st, cfg, nil
}

func resolveFormat(name string) (ui.Format, error) {
	format, err := ui.ParseFormat(name)
	if err != nil {
		return ui.FormatText, err
	}
	return ui.Resolve(format, os.Stdout), nil
}

func newListCmd(formatName *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all preference rules in match order",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, _, _, err := loadTable()
			if err != nil {
				return err
			}
			format, err := resolveFormat(*formatName)
			if err != nil {
				return err
			}
			out, err := style.RenderTable(table, format)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
}

func newMatchCmd(formatName *string) *cobra.Command {
	return &cobra.Command{
		Use:   "match <path>",
		Short: "Show the rule that wins for a directory path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, _, _, err := loadTable()
			if err != nil {
				return err
			}
			rule := table.Match(args[0])
			if rule == nil {
				return errors.Newf(errors.ErrRuleNotFound, "no rule matches %s", args[0])
			}
			format, err := resolveFormat(*formatName)
			if err != nil {
				return err
			}
			fmt.Println(style.RenderRule(rule, format))
			return nil
		},
	}
}

func newSetCmd() *cobra.Command {
	var (
		sortName  string
		reverse   bool
		dirsFirst bool
		translit  bool
		sensitive bool
		linemode  string
		hidden    bool
	)

	cmd := &cobra.Command{
		Use:   "set <path>",
		Short: "Save a preference rule for a directory path",
		Long: `Save a preference rule for the given directory path. Only the
settings passed as flags become part of the rule; everything else is
left untouched when the rule is applied. An existing rule for the same
path is replaced.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var prefs types.ViewPrefs

			if cmd.Flags().Changed("sort") || cmd.Flags().Changed("reverse") || cmd.Flags().Changed("dirs-first") {
				criterion, err := types.ParseSortCriterion(sortName)
				if err != nil {
					return errors.Wrap(err, errors.ErrInvalidInput, "invalid --sort")
				}
				prefs.Sort = &types.SortSpec{
					Criterion: criterion,
					Reverse:   reverse,
					DirsFirst: dirsFirst,
					Translit:  translit,
					Sensitive: sensitive,
				}
			}
			if cmd.Flags().Changed("linemode") {
				mode, err := types.ParseLinemode(linemode)
				if err != nil {
					return errors.Wrap(err, errors.ErrInvalidInput, "invalid --linemode")
				}
				prefs.Linemode = &mode
			}
			if cmd.Flags().Changed("hidden") {
				prefs.ShowHidden = &hidden
			}
			if prefs.IsEmpty() {
				return errors.New(errors.ErrInvalidInput, "nothing to save: pass --sort, --linemode or --hidden")
			}

			table, st, _, err := loadTable()
			if err != nil {
				return err
			}
			table.Put(rules.NewRule(args[0], prefs))
			if err := st.Save(table); err != nil {
				return err
			}
			fmt.Printf("Saved preferences for %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&sortName, "sort", "natural", "Sort criterion (none, alphabetical, natural, size, mtime, btime, extension, random)")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "Reverse sort order")
	cmd.Flags().BoolVar(&dirsFirst, "dirs-first", false, "List directories before files")
	cmd.Flags().BoolVar(&translit, "transliterate", false, "Transliterate names when sorting")
	cmd.Flags().BoolVar(&sensitive, "case-sensitive", false, "Sort case-sensitively")
	cmd.Flags().StringVar(&linemode, "linemode", "none", "Line display mode (none, size, birthtime, modifiedtime, permissions, owner)")
	cmd.Flags().BoolVar(&hidden, "hidden", false, "Show hidden files")

	return cmd
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <path>",
		Short: "Remove the saved preference rule for a directory path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, st, _, err := loadTable()
			if err != nil {
				return err
			}
			if !table.Remove(rules.Literal(args[0]).String()) {
				return errors.Newf(errors.ErrRuleNotFound, "no saved preferences for %s", args[0])
			}
			if err := st.Save(table); err != nil {
				return err
			}
			fmt.Printf("Removed preferences for %s\n", args[0])
			return nil
		},
	}
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := paths.ConfigFilePaths()[0]
			if err := config.WriteDefault(target); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", target)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("dirprefs version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Printf("Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Printf("Built:  %s\n", version.Date)
			}
		},
	}
}
