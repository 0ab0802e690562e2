package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/dirprefs/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.ErrStoreWrite, "failed to write preferences")
	assert.Equal(t, "[STORE_WRITE] failed to write preferences", err.Error())
	assert.Equal(t, errors.ErrStoreWrite, err.Code)
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrRuleInvalid, "bad linemode %q", "sizes")
	assert.Equal(t, `[RULE_INVALID] bad linemode "sizes"`, err.Error())
}

func TestWrap(t *testing.T) {
	t.Run("wraps underlying error", func(t *testing.T) {
		inner := fmt.Errorf("permission denied")
		err := errors.Wrap(inner, errors.ErrDirCreate, "cannot create store directory")
		require.NotNil(t, err)
		assert.Equal(t, "[DIR_CREATE] cannot create store directory: permission denied", err.Error())
		assert.Equal(t, inner, stderrors.Unwrap(err))
	})

	t.Run("nil error returns nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrDirCreate, "unused"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrDirCreate, "unused %d", 1))
	})
}

func TestIsErrorCode(t *testing.T) {
	err := errors.New(errors.ErrStoreParse, "malformed preference file")
	assert.True(t, errors.IsErrorCode(err, errors.ErrStoreParse))
	assert.False(t, errors.IsErrorCode(err, errors.ErrStoreRead))
	assert.False(t, errors.IsErrorCode(fmt.Errorf("plain"), errors.ErrStoreParse))

	wrapped := fmt.Errorf("outer: %w", err)
	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrStoreParse))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrConfigParse, errors.GetErrorCode(errors.New(errors.ErrConfigParse, "x")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(fmt.Errorf("plain")))
}

func TestErrorsIs(t *testing.T) {
	err := errors.Wrap(fmt.Errorf("io"), errors.ErrStoreRead, "read failed")
	target := errors.New(errors.ErrStoreRead, "anything")
	assert.True(t, stderrors.Is(err, target))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrStoreWrite, "write failed").
		WithDetail("path", "/tmp/prefs.json")
	assert.Equal(t, "/tmp/prefs.json", err.Details["path"])
}
