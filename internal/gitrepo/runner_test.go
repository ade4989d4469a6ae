package gitrepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_success(t *testing.T) {
	t.Parallel()

	out, err := NewRunner().Run("", "echo", "hello")

	require.NoError(t, err)
	assert.Contains(t, out, "hello")
}

func TestRunner_with_dir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	out, err := NewRunner().Run(dir, "pwd")

	require.NoError(t, err)
	assert.Contains(t, out, dir)
}

func TestRunner_failure_yields_git_error(t *testing.T) {
	t.Parallel()

	_, err := NewRunner().Run("", "false")

	var gerr *GitError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, "false", gerr.Op)
}
