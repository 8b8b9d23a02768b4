package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	tomlprompts "github.com/bnema/icebreaker-bingo/internal/adapters/prompts/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionPrintsBuildVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestStartBingoRendersBoard(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "start")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Icebreaker Bingo")
	assert.Contains(t, stdout, "FREE")
	assert.Contains(t, stdout, "marked: 1/25")

	_, err = os.Stat(filepath.Join(home, ".config", "ibingo", "bingo-game-state.json"))
	assert.NoError(t, err)
}

func TestStartScavengerRendersChecklist(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "start", "--mode", "scavenger")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Icebreaker Scavenger Hunt")
	assert.Contains(t, stdout, "marked: 0/24")
	assert.NotContains(t, stdout, "FREE")
}

func TestStartRejectsUnknownMode(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "start", "--mode", "trivia")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown game mode")
}

func TestToggleWithoutGame(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "toggle", "3")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No game in progress")
}

func TestToggleRejectsNonNumericID(t *testing.T) {
	home := t.TempDir()
	_, _, err := executeCLI(t, home, "start")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "toggle", "middle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid square id")
}

func TestToggleIsSavedBetweenInvocations(t *testing.T) {
	home := t.TempDir()
	_, _, err := executeCLI(t, home, "start")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "toggle", "3")
	require.NoError(t, err)

	record := showRecord(t, home)
	assert.Equal(t, float64(2), record["version"])
	assert.Equal(t, "playing", record["screen"])

	board := record["board"].([]any)
	require.Len(t, board, 25)
	assert.Equal(t, true, board[3].(map[string]any)["isMarked"])
	assert.Equal(t, true, board[12].(map[string]any)["isFreeSpace"])

	_, _, err = executeCLI(t, home, "toggle", "3")
	require.NoError(t, err)
	board = showRecord(t, home)["board"].([]any)
	assert.Equal(t, false, board[3].(map[string]any)["isMarked"])
}

func TestToggleRowCompletesBingo(t *testing.T) {
	home := t.TempDir()
	_, _, err := executeCLI(t, home, "start")
	require.NoError(t, err)

	var stdout string
	for _, id := range []string{"10", "11", "13", "14"} {
		stdout, _, err = executeCLI(t, home, "toggle", id)
		require.NoError(t, err)
	}
	assert.Contains(t, stdout, "BINGO! row 3 complete")
	assert.Contains(t, stdout, "You got a bingo!")

	record := showRecord(t, home)
	assert.Equal(t, "won", record["screen"])
	assert.Equal(t, map[string]any{
		"type":    "row",
		"index":   float64(2),
		"squares": []any{float64(10), float64(11), float64(12), float64(13), float64(14)},
	}, record["winningLine"])

	stdout, _, err = executeCLI(t, home, "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "BINGO! row 3 complete")
	assert.NotContains(t, stdout, "You got a bingo!")
}

func TestResetReturnsToStartScreen(t *testing.T) {
	home := t.TempDir()
	_, _, err := executeCLI(t, home, "start", "--mode", "scavenger")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "reset")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Game reset.")

	record := showRecord(t, home)
	assert.Equal(t, "start", record["screen"])
	assert.Equal(t, "scavenger", record["mode"])
	assert.Empty(t, record["board"])
	assert.Nil(t, record["winningLine"])
}

func TestCorruptStateIsInspectedThenDiscarded(t *testing.T) {
	home := t.TempDir()
	statePath := filepath.Join(home, ".config", "ibingo", "bingo-game-state.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(statePath), 0o700))
	require.NoError(t, os.WriteFile(statePath, []byte(`{"version":1,"screen":"playing"}`), 0o600))

	stdout, _, err := executeCLI(t, home, "state", "inspect")
	require.NoError(t, err)
	assert.Contains(t, stdout, "record: invalid")
	assert.Contains(t, stdout, "unsupported state schema version 1")
	_, err = os.Stat(statePath)
	require.NoError(t, err, "inspect must not discard the record")

	stdout, _, err = executeCLI(t, home, "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No game in progress.")
	_, err = os.Stat(statePath)
	assert.True(t, os.IsNotExist(err))

	stdout, _, err = executeCLI(t, home, "state", "inspect")
	require.NoError(t, err)
	assert.Contains(t, stdout, "record: none")
}

func TestStateInspectValidRecordAndClear(t *testing.T) {
	home := t.TempDir()
	_, _, err := executeCLI(t, home, "start")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "state", "inspect")
	require.NoError(t, err)
	assert.Contains(t, stdout, "backend: file")
	assert.Contains(t, stdout, "record: valid")
	assert.Contains(t, stdout, "squares: 25 (marked 1)")

	stdout, _, err = executeCLI(t, home, "state", "clear")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Saved game deleted.")

	stdout, _, err = executeCLI(t, home, "state", "inspect")
	require.NoError(t, err)
	assert.Contains(t, stdout, "record: none")
}

func TestSQLiteBackendPersistsGame(t *testing.T) {
	home := t.TempDir()
	t.Setenv("IBINGO_STATE_BACKEND", "sqlite")

	_, _, err := executeCLI(t, home, "start")
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, "toggle", "0")
	require.NoError(t, err)

	board := showRecord(t, home)["board"].([]any)
	assert.Equal(t, true, board[0].(map[string]any)["isMarked"])

	_, err = os.Stat(filepath.Join(home, ".config", "ibingo", "state.db"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(home, ".config", "ibingo", "bingo-game-state.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestAutoBackendPersistsGame(t *testing.T) {
	home := t.TempDir()
	t.Setenv("IBINGO_STATE_BACKEND", "auto")

	_, _, err := executeCLI(t, home, "start", "--mode", "scavenger")
	require.NoError(t, err)

	record := showRecord(t, home)
	assert.Equal(t, "scavenger", record["mode"])
	assert.Len(t, record["board"], 24)
}

func TestStateDirFromConfigFile(t *testing.T) {
	home := t.TempDir()
	stateDir := filepath.Join(t.TempDir(), "games")
	configPath := filepath.Join(home, ".config", "ibingo", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(configPath), 0o700))
	require.NoError(t, os.WriteFile(configPath, []byte("[state]\ndir = \""+filepath.ToSlash(stateDir)+"\"\n"), 0o600))

	_, _, err := executeCLI(t, home, "start")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(stateDir, "bingo-game-state.json"))
	assert.NoError(t, err)
}

func TestUnknownStateBackendFails(t *testing.T) {
	t.Setenv("IBINGO_STATE_BACKEND", "redis")

	_, _, err := executeCLI(t, t.TempDir(), "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown state backend \"redis\"")
}

func TestPromptsListSample(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "prompts", "list", "--sample")
	require.NoError(t, err)
	lines := bytes.Split(bytes.TrimSpace([]byte(stdout)), []byte("\n"))
	assert.Len(t, lines, 3)
	assert.Contains(t, stdout, "Has traveled to another continent this year")
}

func TestCustomPromptPool(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(t.TempDir(), "prompts.toml")

	stdout, _, err := executeCLI(t, home, "prompts", "init", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote 36 prompts")

	t.Setenv("IBINGO_PROMPTS_PATH", path)
	stdout, _, err = executeCLI(t, home, "prompts", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Prefers sunrise to sunset")

	_, _, err = executeCLI(t, home, "start")
	require.NoError(t, err)
}

func TestPromptPoolTooSmallFailsAtStart(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(t.TempDir(), "prompts.toml")
	require.NoError(t, tomlprompts.WritePrompts(path, "tiny", []string{"a", "b", "c"}))
	t.Setenv("IBINGO_PROMPTS_PATH", path)

	_, _, err := executeCLI(t, home, "start")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prompt pool too small")
}

func showRecord(t *testing.T, home string) map[string]any {
	t.Helper()

	stdout, _, err := executeCLI(t, home, "show", "--json")
	require.NoError(t, err)
	require.True(t, json.Valid([]byte(stdout)))

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &record))
	return record
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
