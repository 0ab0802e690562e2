// Package style defines the visual styling for dirprefs' terminal
// output. Styles use semantic names and adaptive colors loaded from an
// embedded YAML definition so theming stays in one place.
package style

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var stylesYAML []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold        bool   `yaml:"bold,omitempty"`
	Italic      bool   `yaml:"italic,omitempty"`
	Underline   bool   `yaml:"underline,omitempty"`
	Foreground  string `yaml:"foreground,omitempty"`
	PaddingLeft int    `yaml:"paddingLeft,omitempty"`
}

// definition is the complete styles configuration
type definition struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// registry maps semantic names to lipgloss styles
var registry map[string]lipgloss.Style

func init() {
	if err := loadStyles(stylesYAML); err != nil {
		panic(fmt.Sprintf("invalid embedded style definition: %v", err))
	}
}

func loadStyles(data []byte) error {
	var def definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return err
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(def.Colors))
	for name, c := range def.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Dark}
	}

	registry = make(map[string]lipgloss.Style, len(def.Styles))
	for name, s := range def.Styles {
		st := lipgloss.NewStyle().
			Bold(s.Bold).
			Italic(s.Italic).
			Underline(s.Underline)
		if s.Foreground != "" {
			color, ok := colors[s.Foreground]
			if !ok {
				return fmt.Errorf("style %s references unknown color %s", name, s.Foreground)
			}
			st = st.Foreground(color)
		}
		if s.PaddingLeft > 0 {
			st = st.PaddingLeft(s.PaddingLeft)
		}
		registry[name] = st
	}
	return nil
}

// Get returns the named style, or a zero style for unknown names.
func Get(name string) lipgloss.Style {
	if st, ok := registry[name]; ok {
		return st
	}
	return lipgloss.NewStyle()
}
