// ABOUTME: Tests for CLIError covering categories, wrapping, exit codes, and suggestions.
package cliexit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCLIError_Basic(t *testing.T) {
	t.Run("create_new_error", func(t *testing.T) {
		err := New(CategoryConfig, "configuration is invalid")
		assert.Equal(t, CategoryConfig, err.Category)
		assert.Equal(t, "configuration is invalid", err.Error())
		assert.Nil(t, err.Cause)
	})

	t.Run("wrap_error", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := Wrap(cause, CategoryPool, "pool failed")
		assert.Equal(t, "pool failed: underlying error", err.Error())
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("wrap_nil_is_nil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, CategoryPool, "pool failed"))
	})
}

func TestCLIError_ExitCode(t *testing.T) {
	cases := []struct {
		cat  Category
		want int
	}{
		{CategoryUsage, ExitUsageError},
		{CategoryConfig, ExitConfigError},
		{CategoryPool, ExitPoolError},
		{CategoryTimeout, ExitTimeoutError},
		{CategoryIO, ExitIOError},
		{CategoryInterrupted, ExitInterrupted},
		{CategoryUnknown, ExitGeneralError},
	}
	for _, c := range cases {
		err := New(c.cat, "boom")
		assert.Equal(t, c.want, err.ExitCode())
		assert.Equal(t, c.want, ExitCodeFor(err))
	}
	assert.Equal(t, ExitSuccess, ExitCodeFor(nil))
	assert.Equal(t, ExitGeneralError, ExitCodeFor(errors.New("plain")))
}

func TestCLIError_SuggestionsAndFormat(t *testing.T) {
	err := ConfigErrorf(errors.New("bad yaml"), "failed to load %s", "pool.yaml")
	assert.Equal(t, CategoryConfig, err.Category)
	assert.NotEmpty(t, Suggestions(err))
	formatted := FormatForCLI(err)
	assert.Contains(t, formatted, "failed to load pool.yaml")
	assert.Contains(t, formatted, "poolctl validate")
}
