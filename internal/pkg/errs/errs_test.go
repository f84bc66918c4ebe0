//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"carhaul-portal/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := errs.New("account is not verified")

	t.Run("marked errors match the sentinel with errors.Is", func(t *testing.T) {
		cause := errs.New("upstream said 403")
		err := errs.Mark(cause, sentinel)

		assert.ErrorIs(t, err, sentinel)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("the mark survives further wrapping", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(errs.New("upstream said 403"), sentinel), "login upstream")

		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("the cause keeps its message", func(t *testing.T) {
		err := errs.Mark(errs.New("upstream said 403"), sentinel)

		assert.Equal(t, "upstream said 403", err.Error())
	})

	t.Run("marking nil returns the sentinel itself", func(t *testing.T) {
		assert.Same(t, sentinel, errs.Mark(nil, sentinel))
	})

	t.Run("unrelated sentinels do not match", func(t *testing.T) {
		err := errs.Mark(errs.New("upstream said 403"), sentinel)

		assert.NotErrorIs(t, err, errors.New("account is not verified"))
	})
}

func TestExtractStackLines(t *testing.T) {
	t.Run("marked errors keep the cause's verbose stack", func(t *testing.T) {
		err := errs.Mark(errs.New("boom"), errs.New("sentinel"))

		lines := errs.ExtractStackLines(err, 0)
		require.NotEmpty(t, lines)
		assert.Contains(t, fmt.Sprintf("%+v", err), "boom")
	})

	t.Run("nil yields no lines", func(t *testing.T) {
		assert.Nil(t, errs.ExtractStackLines(nil, 5))
	})

	t.Run("line budget is honored", func(t *testing.T) {
		lines := errs.ExtractStackLines(errs.New("boom"), 2)
		assert.LessOrEqual(t, len(lines), 2)
	})
}
