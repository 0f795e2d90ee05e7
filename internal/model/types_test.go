package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRepositoryContext(t *testing.T) {
	rc := NewRepositoryContext("/work/demo")

	assert.Equal(t, "/work/demo", rc.Root)
	assert.Equal(t, "demo", rc.Name)
	assert.Equal(t, "/work", rc.Parent)
}

func TestBranchResolutionExists(t *testing.T) {
	assert.True(t, BranchLocal.Exists())
	assert.True(t, BranchRemote.Exists())
	assert.False(t, BranchNotFound.Exists())
}

func TestCLIErrorMessage(t *testing.T) {
	err := NewCLIError(ExitFailure, "something broke")
	assert.Equal(t, "something broke", err.Error())
	assert.Equal(t, ExitFailure, err.Code)
}

func TestCLIErrorWrapping(t *testing.T) {
	underlying := errors.New("exit status 128")
	err := WrapCLIError(ExitFailure, "git refused", underlying)

	assert.Equal(t, "git refused: exit status 128", err.Error())
	assert.ErrorIs(t, err, underlying, "Unwrap should expose the cause")
}

func TestCLIErrorUnwrapsSentinels(t *testing.T) {
	err := WrapCLIError(ExitFailure, "remove failed", ErrWorktreeNotFound)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWorktreeNotFound)
}
