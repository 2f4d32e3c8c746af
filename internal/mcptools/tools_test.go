package mcptools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitions(t *testing.T) {
	tools := Definitions()
	require.Len(t, tools, 3)

	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Name)
		assert.NotEmpty(t, tool.Description, "tool %s must carry a description", tool.Name)
	}
	assert.Equal(t, []string{"run_tests", "list_categories", "doctor"}, names)
}

func TestDefinitions_RunTestsParameters(t *testing.T) {
	runTests := Definitions()[0]
	require.Equal(t, "run_tests", runTests.Name)

	props := runTests.InputSchema.Properties
	for _, param := range []string{"category", "browser", "env", "parallel", "coverage", "headed", "output"} {
		assert.Contains(t, props, param)
	}

	// Nothing is required; every parameter has a server-side default
	assert.Empty(t, runTests.InputSchema.Required)
}
