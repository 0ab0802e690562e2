package types_test

import (
	"encoding/json"
	"testing"

	"github.com/arthur-debert/dirprefs/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortCriterion(t *testing.T) {
	for _, valid := range []string{"none", "alphabetical", "natural", "size", "mtime", "btime", "extension", "random"} {
		c, err := types.ParseSortCriterion(valid)
		require.NoError(t, err)
		assert.Equal(t, types.SortCriterion(valid), c)
	}

	_, err := types.ParseSortCriterion("sizes")
	assert.Error(t, err)
}

func TestParseLinemode(t *testing.T) {
	for _, valid := range []string{"none", "size", "birthtime", "modifiedtime", "permissions", "owner"} {
		m, err := types.ParseLinemode(valid)
		require.NoError(t, err)
		assert.Equal(t, types.Linemode(valid), m)
	}

	_, err := types.ParseLinemode("perm")
	assert.Error(t, err)
}

func TestViewPrefsIsEmpty(t *testing.T) {
	assert.True(t, types.ViewPrefs{}.IsEmpty())

	hidden := true
	assert.False(t, types.ViewPrefs{ShowHidden: &hidden}.IsEmpty())
}

func TestViewPrefsJSONOmitsAbsentFields(t *testing.T) {
	hidden := false
	data, err := json.Marshal(types.ViewPrefs{ShowHidden: &hidden})
	require.NoError(t, err)
	assert.JSONEq(t, `{"showHidden": false}`, string(data))
}
