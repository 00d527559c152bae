package check

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnolang/proplogic/internal"
	tt "github.com/gnolang/proplogic/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockEngine struct {
	mock.Mock
}

func (m *mockEngine) Run(filePath string) ([]tt.Issue, error) {
	args := m.Called(filePath)
	return args.Get(0).([]tt.Issue), args.Error(1)
}

func (m *mockEngine) RunSource(source []byte) ([]tt.Issue, error) {
	args := m.Called(source)
	return args.Get(0).([]tt.Issue), args.Error(1)
}

func testOptions() Options {
	opts := DefaultOptions(DefaultConfig())
	opts.Progress = nil
	return opts
}

func newEngine(t *testing.T) *internal.Engine {
	t.Helper()
	engine, err := internal.NewEngine(nil)
	require.NoError(t, err)
	return engine
}

func TestProcessFile(t *testing.T) {
	t.Parallel()
	expectedIssues := []tt.Issue{
		{
			Rule:     "test-rule",
			Filename: "test.prop",
			Start:    token.Position{Filename: "test.prop", Offset: 0, Line: 1, Column: 1},
			End:      token.Position{Filename: "test.prop", Offset: 1, Line: 1, Column: 2},
			Message:  "Test issue",
		},
	}
	engine := new(mockEngine)
	engine.On("Run", "test.prop").Return(expectedIssues, nil)

	issues, err := ProcessFile(engine, "test.prop")

	assert.NoError(t, err)
	assert.Equal(t, expectedIssues, issues)
	engine.AssertExpectations(t)
}

func TestProcessSources(t *testing.T) {
	t.Parallel()
	logger, _ := zap.NewDevelopment()
	sources := [][]byte{[]byte("A"), []byte("AB")}
	issue := tt.Issue{Rule: "consecutive-variables"}

	engine := new(mockEngine)
	engine.On("RunSource", sources[0]).Return([]tt.Issue(nil), nil)
	engine.On("RunSource", sources[1]).Return([]tt.Issue{issue}, nil)

	issues, err := ProcessSources(context.Background(), logger, engine, sources, ProcessSource)
	require.NoError(t, err)
	assert.Equal(t, []tt.Issue{issue}, issues)
	engine.AssertExpectations(t)
}

func TestProcessSourcesError(t *testing.T) {
	t.Parallel()
	engine := new(mockEngine)
	engine.On("RunSource", []byte("x")).Return([]tt.Issue(nil), errors.New("boom"))

	_, err := ProcessSources(context.Background(), nil, engine, [][]byte{[]byte("x")}, ProcessSource)
	assert.EqualError(t, err, "boom")
}

func TestProcessPathDirectory(t *testing.T) {
	t.Parallel()
	tempDir := t.TempDir()

	// file i holds i invalid formulas after one valid one
	for i := 0; i < 5; i++ {
		content := "A v ~A\n"
		for j := 0; j < i; j++ {
			content += fmt.Sprintf("A%c\n", 'B'+j)
		}
		err := os.WriteFile(filepath.Join(tempDir, fmt.Sprintf("f%d.prop", i)), []byte(content), 0o644)
		require.NoError(t, err)
	}
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "readme.md"), []byte("AB"), 0o644))

	issues, err := ProcessPath(context.Background(), nil, newEngine(t), tempDir, testOptions(), ProcessFile)
	require.NoError(t, err)
	require.Len(t, issues, 0+1+2+3+4)

	// results come back in file order
	assert.Equal(t, filepath.Join(tempDir, "f1.prop"), issues[0].Filename)
	assert.Equal(t, filepath.Join(tempDir, "f4.prop"), issues[len(issues)-1].Filename)
	for _, issue := range issues {
		assert.Equal(t, "consecutive-variables", issue.Rule)
	}
}

func TestProcessPathSingleFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "one.txt")
	require.NoError(t, os.WriteFile(path, []byte("(A\n"), 0o644))

	// an explicit file is checked whatever its extension
	issues, err := ProcessPath(context.Background(), nil, newEngine(t), path, testOptions(), ProcessFile)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "parenthesis-balance", issues[0].Rule)
}

func TestProcessPathMissing(t *testing.T) {
	t.Parallel()
	_, err := ProcessPath(context.Background(), nil, newEngine(t), filepath.Join(t.TempDir(), "nope"), testOptions(), ProcessFile)
	assert.Error(t, err)
}

// TestProcessPathContextCancellation tests that context cancellation is handled properly
func TestProcessPathContextCancellation(t *testing.T) {
	t.Parallel()
	tempDir := t.TempDir()
	for i := 0; i < 10; i++ {
		err := os.WriteFile(filepath.Join(tempDir, fmt.Sprintf("f%d.prop", i)), []byte("AB\n"), 0o644)
		require.NoError(t, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	issues, err := ProcessPath(ctx, nil, newEngine(t), tempDir, testOptions(), ProcessFile)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotNil(t, issues)
}

// TestConcurrentProcessingWithErrors tests error handling in concurrent processing
func TestConcurrentProcessingWithErrors(t *testing.T) {
	t.Parallel()
	tempDir := t.TempDir()
	var paths []string
	for i := 0; i < 3; i++ {
		p := filepath.Join(tempDir, fmt.Sprintf("f%d.prop", i))
		require.NoError(t, os.WriteFile(p, []byte("A\n"), 0o644))
		paths = append(paths, p)
	}

	engine := new(mockEngine)
	engine.On("Run", paths[0]).Return([]tt.Issue{{Rule: "r0"}}, nil)
	engine.On("Run", paths[1]).Return([]tt.Issue(nil), errors.New("unreadable"))
	engine.On("Run", paths[2]).Return([]tt.Issue{{Rule: "r2"}}, nil)

	issues, err := ProcessPath(context.Background(), zap.NewNop(), engine, tempDir, testOptions(), ProcessFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unreadable")
	assert.Equal(t, []tt.Issue{{Rule: "r0"}, {Rule: "r2"}}, issues)
	engine.AssertExpectations(t)
}

func TestProcessFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	a := filepath.Join(dir, "a.prop")
	b := filepath.Join(dir, "b.prop")
	require.NoError(t, os.WriteFile(a, []byte("A ^\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("()\n"), 0o644))

	issues, err := ProcessFiles(context.Background(), nil, newEngine(t), []string{a, b}, testOptions(), ProcessFile)
	require.NoError(t, err)
	require.Len(t, issues, 2)
	assert.Equal(t, "binary-operand", issues[0].Rule)
	assert.Equal(t, "empty-group", issues[1].Rule)
}
