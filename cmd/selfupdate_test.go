package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSelfUpdateCmd(t *testing.T) {
	cmd := newSelfUpdateCmd()

	assert.Equal(t, "self-update", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Contains(t, cmd.Long, "Checks for the latest release")
}

func TestRunSelfUpdate_DevVersion(t *testing.T) {
	origVersion := rootCmd.Version
	t.Cleanup(func() { rootCmd.Version = origVersion })

	for _, version := range []string{"", "dev"} {
		rootCmd.Version = version

		err := runSelfUpdate(newSelfUpdateCmd(), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "development version")
	}
}

func TestGithubRepoSlug(t *testing.T) {
	assert.Equal(t, "testctl-dev/testctl", githubRepoSlug)
}
