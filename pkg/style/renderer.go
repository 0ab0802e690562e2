package style

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/dirprefs/pkg/rules"
	"github.com/arthur-debert/dirprefs/pkg/ui"
)

// displayRule is the JSON shape for machine-readable listings. Unlike
// the persisted format it includes the predefined flag.
type displayRule struct {
	Location   string      `json:"location"`
	Sort       interface{} `json:"sort,omitempty"`
	Linemode   interface{} `json:"linemode,omitempty"`
	ShowHidden interface{} `json:"showHidden,omitempty"`
	Predefined bool        `json:"predefined"`
}

// RenderTable renders the full rule table in the given format.
func RenderTable(table *rules.Table, format ui.Format) (string, error) {
	all := table.Rules()

	switch format {
	case ui.FormatJSON:
		out := make([]displayRule, 0, len(all))
		for _, r := range all {
			d := displayRule{Location: r.Location.String(), Predefined: r.Predefined}
			if r.Sort != nil {
				d.Sort = r.Sort
			}
			if r.Linemode != nil {
				d.Linemode = r.Linemode
			}
			if r.ShowHidden != nil {
				d.ShowHidden = r.ShowHidden
			}
			out = append(out, d)
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil

	case ui.FormatTerminal:
		if len(all) == 0 {
			return Get("Detail").Render("No rules"), nil
		}
		var b strings.Builder
		b.WriteString(Get("Title").Render("Preference rules") + "\n\n")
		for _, r := range all {
			marker := pterm.Info.Prefix.Text
			line := fmt.Sprintf("%s %s", marker, Get("Location").Render(r.Location.String()))
			if r.Predefined {
				line += " " + Get("Predefined").Render("(predefined)")
			}
			b.WriteString(line + "\n")
			if detail := describePrefs(r); detail != "" {
				b.WriteString(Get("Detail").Render(detail) + "\n")
			}
		}
		return b.String(), nil

	default:
		if len(all) == 0 {
			return "No rules", nil
		}
		var b strings.Builder
		for _, r := range all {
			b.WriteString(RenderRule(r, ui.FormatText) + "\n")
		}
		return strings.TrimRight(b.String(), "\n"), nil
	}
}

// RenderRule renders a single rule in the given format.
func RenderRule(r *rules.Rule, format ui.Format) string {
	switch format {
	case ui.FormatJSON:
		d := displayRule{Location: r.Location.String(), Predefined: r.Predefined}
		if r.Sort != nil {
			d.Sort = r.Sort
		}
		if r.Linemode != nil {
			d.Linemode = r.Linemode
		}
		if r.ShowHidden != nil {
			d.ShowHidden = r.ShowHidden
		}
		data, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return r.Location.String()
		}
		return string(data)
	case ui.FormatTerminal:
		line := Get("Location").Render(r.Location.String())
		if r.Predefined {
			line += " " + Get("Predefined").Render("(predefined)")
		}
		if detail := describePrefs(r); detail != "" {
			line += "\n" + Get("Detail").Render(detail)
		}
		return line
	default:
		line := r.Location.String()
		if r.Predefined {
			line += " (predefined)"
		}
		if detail := describePrefs(r); detail != "" {
			line += "  " + detail
		}
		return line
	}
}

func describePrefs(r *rules.Rule) string {
	var parts []string
	if r.Sort != nil {
		desc := "sort=" + string(r.Sort.Criterion)
		if r.Sort.Reverse {
			desc += " reverse"
		}
		if r.Sort.DirsFirst {
			desc += " dirs-first"
		}
		parts = append(parts, desc)
	}
	if r.Linemode != nil {
		parts = append(parts, "linemode="+string(*r.Linemode))
	}
	if r.ShowHidden != nil {
		parts = append(parts, fmt.Sprintf("hidden=%t", *r.ShowHidden))
	}
	return strings.Join(parts, " ")
}
