package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	prefserrors "github.com/arthur-debert/dirprefs/pkg/errors"
)

// fileConfig mirrors Config with TOML tags for generation.
type fileConfig struct {
	Disabled bool       `toml:"disabled"`
	NoNotify bool       `toml:"no_notify"`
	SavePath string     `toml:"save_path"`
	Prefs    []fileRule `toml:"prefs,omitempty"`
}

type fileRule struct {
	Location   string        `toml:"location"`
	Sort       *fileSortSpec `toml:"sort,omitempty"`
	Linemode   string        `toml:"linemode,omitempty"`
	ShowHidden *bool         `toml:"show_hidden,omitempty"`
}

type fileSortSpec struct {
	Criterion string `toml:"criterion"`
	Reverse   bool   `toml:"reverse,omitempty"`
	DirsFirst bool   `toml:"dirs_first,omitempty"`
}

// WriteDefault writes a starter configuration file with a catch-all
// fallback rule. It refuses to overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return prefserrors.Newf(prefserrors.ErrInvalidInput, "configuration file already exists: %s", path)
	}

	showHidden := false
	starter := fileConfig{
		Prefs: []fileRule{
			{
				Location:   ".*",
				ShowHidden: &showHidden,
				Sort: &fileSortSpec{
					Criterion: "natural",
					DirsFirst: true,
				},
			},
		},
	}

	data, err := toml.Marshal(starter)
	if err != nil {
		return prefserrors.Wrap(err, prefserrors.ErrInternal, "failed to encode default configuration")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return prefserrors.Wrapf(err, prefserrors.ErrDirCreate, "failed to create directory %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return prefserrors.Wrapf(err, prefserrors.ErrStoreWrite, "failed to write configuration file %s", path)
	}
	return nil
}
