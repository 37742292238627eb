package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/rajvardhan161/os-lab/sim"
)

// TestExampleScenarios_Classroom verifies that examples/scenarios.yaml loads
// and its classroom preset matches the lab handout defaults.
func TestExampleScenarios_Classroom(t *testing.T) {
	// GIVEN the shipped scenario file
	path := filepath.Join("..", "examples", "scenarios.yaml")

	scenario, err := GetPagingScenario(path, "classroom")
	require.NoError(t, err, "failed to load scenarios.yaml")

	assert.Equal(t, "1,2,3,2,4,1,5,2,1,2,3,4,5", scenario.Refs)
	assert.Equal(t, 3, scenario.Frames)
	assert.Equal(t, "lru", scenario.Algorithm)

	// THEN the preset round-trips through the parsing layer and the engine
	references, err := ParseReferenceString(scenario.Refs)
	require.NoError(t, err)
	algorithm, err := sim.ParseAlgorithm(scenario.Algorithm)
	require.NoError(t, err)
	timeline, err := sim.Simulate(references, scenario.Frames, algorithm)
	require.NoError(t, err)
	assert.Len(t, timeline, len(references))
}

func TestExampleScenarios_FragTight(t *testing.T) {
	path := filepath.Join("..", "examples", "scenarios.yaml")

	scenario, err := GetFragScenario(path, "tight")
	require.NoError(t, err)

	assert.Equal(t, 64, scenario.Memory)
	assert.Equal(t, 80, scenario.Events)
	assert.Equal(t, 8, scenario.MinBlockSize)
	assert.Equal(t, 32, scenario.MaxBlockSize)
}

func TestGetPagingScenario_UnknownName(t *testing.T) {
	path := filepath.Join("..", "examples", "scenarios.yaml")

	_, err := GetPagingScenario(path, "no-such-scenario")
	assert.ErrorIs(t, err, sim.ErrInvalidConfiguration)
}

func TestLoadScenarioConfig_MissingFile(t *testing.T) {
	_, err := LoadScenarioConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
