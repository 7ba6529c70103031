// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code lookup

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/envpath/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "invalid_input",
			code:    errors.ErrInvalidInput,
			message: "path is required",
			wantStr: "[INVALID_INPUT] path is required",
		},
		{
			name:    "release_not_found",
			code:    errors.ErrReleaseNotFound,
			message: "repository 'o/r' releases not found",
			wantStr: "[RELEASE_NOT_FOUND] repository 'o/r' releases not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrInvalidInput, "invalid target %q", "login")
	assert.Equal(t, `[INVALID_INPUT] invalid target "login"`, err.Error())
}

func TestWrap(t *testing.T) {
	base := stderrors.New("permission denied")

	err := errors.Wrap(base, errors.ErrFileWrite, "failed to write /home/u/.bashrc")
	require.NotNil(t, err)
	assert.Equal(t, "[FILE_WRITE] failed to write /home/u/.bashrc: permission denied", err.Error())
	assert.True(t, stderrors.Is(err, base))

	assert.Nil(t, errors.Wrap(nil, errors.ErrFileWrite, "nothing"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrFileWrite, "nothing %d", 1))
}

func TestIsMatchesOnCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", errors.New(errors.ErrReleaseFetch, "boom"))

	assert.True(t, stderrors.Is(err, errors.New(errors.ErrReleaseFetch, "")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrReleaseNotFound, "")))
}

func TestCodeAndDetailLookup(t *testing.T) {
	err := errors.New(errors.ErrFileAccess, "not a regular file").
		WithDetail("path", "/tmp/x")
	wrapped := fmt.Errorf("apply: %w", err)

	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrFileAccess))
	assert.False(t, errors.IsErrorCode(wrapped, errors.ErrFileWrite))
	assert.Equal(t, errors.ErrFileAccess, errors.GetErrorCode(wrapped))
	assert.Equal(t, "/tmp/x", errors.GetErrorDetails(wrapped)["path"])

	plain := stderrors.New("plain")
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(plain))
	assert.Nil(t, errors.GetErrorDetails(plain))
}

func TestOutermostCodeWins(t *testing.T) {
	inner := errors.New(errors.ErrFileWrite, "write failed").WithDetail("path", "/home/u/.zshrc")
	outer := errors.Wrap(inner, errors.ErrInternal, "ensure aborted").WithDetail("shell", "zsh")

	assert.Equal(t, errors.ErrInternal, errors.GetErrorCode(outer))
	assert.False(t, errors.IsErrorCode(outer, errors.ErrFileWrite))
	assert.Equal(t, map[string]interface{}{"shell": "zsh"}, errors.GetErrorDetails(outer))
	assert.True(t, stderrors.Is(outer, errors.New(errors.ErrFileWrite, "")))
}

func TestWrapfKeepsCause(t *testing.T) {
	base := stderrors.New("connection refused")

	err := errors.Wrapf(base, errors.ErrReleaseFetch, "failed to query %s", "cli/cli").
		WithDetail("repo", "cli/cli")
	assert.Equal(t, "[RELEASE_FETCH] failed to query cli/cli: connection refused", err.Error())
	assert.Equal(t, base, stderrors.Unwrap(err))
	assert.Equal(t, "cli/cli", err.Details["repo"])
}
