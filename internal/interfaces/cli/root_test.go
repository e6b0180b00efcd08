package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/GreenScore-Intelligence/internal/application/readiness"
)

// runCommand executes the command tree against the embedded dataset.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommand_Help(t *testing.T) {
	out, err := runCommand(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "serve")
	assert.Contains(t, out, "rank")
	assert.Contains(t, out, "scenario")
}

func TestRankCommand(t *testing.T) {
	out, err := runCommand(t, "rank")
	require.NoError(t, err)
	assert.Contains(t, out, "RANK")
	assert.Contains(t, out, "Rajasthan")
}

func TestRankCommand_JSON(t *testing.T) {
	out, err := runCommand(t, "rank", "--json")
	require.NoError(t, err)

	var views []readiness.RegionView
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	require.NotEmpty(t, views)
	assert.Equal(t, 1, views[0].Rank)
}

func TestRecommendCommand(t *testing.T) {
	out, err := runCommand(t, "recommend", "Bihar")
	require.NoError(t, err)
	assert.Contains(t, out, "Bihar")
	assert.Contains(t, out, "PRIORITY")

	_, err = runCommand(t, "recommend", "Atlantis")
	assert.Error(t, err)
}

func TestScenarioCommand(t *testing.T) {
	out, err := runCommand(t, "scenario", "Bihar", "--mode", "percent", "--solar", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "Bihar")
	assert.Contains(t, out, "score:")

	_, err = runCommand(t, "scenario", "Bihar", "--mode", "triple")
	assert.Error(t, err)
}

func TestSummaryCommand(t *testing.T) {
	out, err := runCommand(t, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "mean final score")
	assert.Contains(t, out, "top:")
}

func TestBuildApp_EmbeddedDefault(t *testing.T) {
	a, err := buildApp(context.Background(), "")
	require.NoError(t, err)
	defer a.cleanup()
	assert.Equal(t, "embedded", a.cfg.Dataset.Source)
	require.NoError(t, a.service.Ready(context.Background()))
}
