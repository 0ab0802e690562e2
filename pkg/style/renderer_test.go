package style_test

import (
	"encoding/json"
	"testing"

	"github.com/arthur-debert/dirprefs/pkg/rules"
	"github.com/arthur-debert/dirprefs/pkg/style"
	"github.com/arthur-debert/dirprefs/pkg/types"
	"github.com/arthur-debert/dirprefs/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() *rules.Table {
	show := true
	hide := false
	size := types.LinemodeSize
	return rules.Build(
		[]*rules.Rule{
			rules.NewRule("/home/user/project", types.ViewPrefs{
				Sort:       &types.SortSpec{Criterion: types.SortNatural, DirsFirst: true},
				Linemode:   &size,
				ShowHidden: &show,
			}),
		},
		[]*rules.Rule{rules.NewPredefined(".*", types.ViewPrefs{ShowHidden: &hide})},
	)
}

func TestRenderTableText(t *testing.T) {
	out, err := style.RenderTable(sampleTable(), ui.FormatText)
	require.NoError(t, err)
	assert.Contains(t, out, "sort=natural dirs-first")
	assert.Contains(t, out, "linemode=size")
	assert.Contains(t, out, "hidden=true")
	assert.Contains(t, out, "(predefined)")
}

func TestRenderTableTextEmpty(t *testing.T) {
	out, err := style.RenderTable(rules.NewTable(), ui.FormatText)
	require.NoError(t, err)
	assert.Equal(t, "No rules", out)
}

func TestRenderTableJSON(t *testing.T) {
	out, err := style.RenderTable(sampleTable(), ui.FormatJSON)
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, false, decoded[0]["predefined"])
	assert.Equal(t, true, decoded[1]["predefined"])
	assert.Equal(t, ".*", decoded[1]["location"])
}

func TestRenderRuleText(t *testing.T) {
	hide := false
	rule := rules.NewPredefined(".*", types.ViewPrefs{ShowHidden: &hide})
	out := style.RenderRule(rule, ui.FormatText)
	assert.Equal(t, ".* (predefined)  hidden=false", out)
}
