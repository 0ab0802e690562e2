// Package config loads the startup configuration for dirprefs:
// the enable/disable and notification switches, an optional override
// for the preference file location, and the predefined rules matched
// after user-saved ones.
package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	koanftoml "github.com/knadh/koanf/parsers/toml"
	koanfyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	prefserrors "github.com/arthur-debert/dirprefs/pkg/errors"
	"github.com/arthur-debert/dirprefs/pkg/logging"
	"github.com/arthur-debert/dirprefs/pkg/paths"
	"github.com/arthur-debert/dirprefs/pkg/rules"
	"github.com/arthur-debert/dirprefs/pkg/types"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// SortConfig is the sort bundle as written in the configuration file.
type SortConfig struct {
	Criterion string `koanf:"criterion"`
	Reverse   bool   `koanf:"reverse"`
	DirsFirst bool   `koanf:"dirs_first"`
	Translit  bool   `koanf:"transliterate"`
	Sensitive bool   `koanf:"case_sensitive"`
}

// RuleConfig is one predefined rule as written in the configuration
// file. Location is a pattern, not a literal path.
type RuleConfig struct {
	Location   string      `koanf:"location"`
	Sort       *SortConfig `koanf:"sort"`
	Linemode   string      `koanf:"linemode"`
	ShowHidden *bool       `koanf:"show_hidden"`
}

// Config is the complete startup configuration surface.
type Config struct {
	Disabled bool         `koanf:"disabled"`
	NoNotify bool         `koanf:"no_notify"`
	SavePath string       `koanf:"save_path"`
	Prefs    []RuleConfig `koanf:"prefs"`
}

// Load reads configuration from the embedded defaults overlaid with
// the first existing candidate config file (dirprefs.toml or
// dirprefs.yaml in the config directory).
func Load() (*Config, error) {
	for _, candidate := range paths.ConfigFilePaths() {
		if _, err := os.Stat(candidate); err == nil {
			return LoadFile(candidate)
		}
	}
	return LoadFile("")
}

// LoadFile reads configuration from the embedded defaults overlaid
// with the given file. An empty path loads defaults only.
func LoadFile(path string) (*Config, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, koanftoml.Parser()); err != nil {
		return nil, prefserrors.Wrap(err, prefserrors.ErrConfigLoad, "failed to load default configuration")
	}

	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, prefserrors.Wrapf(err, prefserrors.ErrConfigParse, "failed to parse configuration file %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded configuration file")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, prefserrors.Wrap(err, prefserrors.ErrConfigParse, "failed to decode configuration")
	}

	if cfg.SavePath == "" {
		cfg.SavePath = paths.DefaultStorePath()
	}

	logger.Debug().
		Bool("disabled", cfg.Disabled).
		Bool("noNotify", cfg.NoNotify).
		Str("savePath", cfg.SavePath).
		Int("predefined", len(cfg.Prefs)).
		Msg("Configuration loaded")

	return &cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return koanftoml.Parser(), nil
	case ".yaml", ".yml":
		return koanfyaml.Parser(), nil
	}
	return nil, prefserrors.Newf(prefserrors.ErrConfigLoad, "unsupported configuration format: %s", path)
}

// PredefinedRules converts the configured prefs entries into
// predefined rules, validating enum values. Configuration order is
// preserved, so a catch-all ".*" entry should come last.
func (c *Config) PredefinedRules() ([]*rules.Rule, error) {
	out := make([]*rules.Rule, 0, len(c.Prefs))
	for i, rc := range c.Prefs {
		if rc.Location == "" {
			return nil, prefserrors.Newf(prefserrors.ErrConfigValid, "prefs[%d]: location is required", i)
		}

		var prefs types.ViewPrefs
		if rc.Sort != nil {
			criterion, err := types.ParseSortCriterion(rc.Sort.Criterion)
			if err != nil {
				return nil, prefserrors.Wrapf(err, prefserrors.ErrConfigValid, "prefs[%d]: invalid sort", i)
			}
			prefs.Sort = &types.SortSpec{
				Criterion: criterion,
				Reverse:   rc.Sort.Reverse,
				DirsFirst: rc.Sort.DirsFirst,
				Translit:  rc.Sort.Translit,
				Sensitive: rc.Sort.Sensitive,
			}
		}
		if rc.Linemode != "" {
			mode, err := types.ParseLinemode(rc.Linemode)
			if err != nil {
				return nil, prefserrors.Wrapf(err, prefserrors.ErrConfigValid, "prefs[%d]: invalid linemode", i)
			}
			prefs.Linemode = &mode
		}
		prefs.ShowHidden = rc.ShowHidden

		rule := rules.NewPredefined(rc.Location, prefs)
		if err := rule.Location.Compile(); err != nil {
			return nil, prefserrors.Wrapf(err, prefserrors.ErrConfigValid, "prefs[%d]: invalid location", i)
		}
		out = append(out, rule)
	}
	return out, nil
}
