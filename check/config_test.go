package check

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnolang/proplogic/internal/formula"
	tt "github.com/gnolang/proplogic/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	content := `name: classroom
extensions: [".logic"]
rules:
  empty-group:
    severity: warning
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "classroom", config.Name)
	assert.Equal(t, []string{".logic"}, config.Extensions)
	assert.Equal(t, formula.DefaultMaxVariables, config.MaxVariables)
	assert.Equal(t, tt.SeverityWarning, config.Rules[formula.RuleEmptyGroup].Severity)
	assert.Equal(t, tt.SeverityError, config.Rules[formula.RuleBinaryOperand].Severity)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("rules:\n  empty-group:\n    severity: fatal\n"), 0o644))
	_, err = LoadConfig(bad)
	assert.Error(t, err)
}

func TestWriteConfigRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), DefaultConfigPath)

	want := DefaultConfig()
	want.Rules[formula.RuleNotOperand] = tt.ConfigRule{Severity: tt.SeverityInfo}
	require.NoError(t, WriteConfig(path, want))

	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNew(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules:\n  consecutive-variables: {severity: warning}\n"), 0o644))

	engine, config, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, "proplogic", config.Name)
	assert.Equal(t, tt.SeverityWarning, engine.Severity(formula.RuleConsecutiveVariables))
}
