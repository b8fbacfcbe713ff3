package lint

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/plint-dev/plint/internal/types"
)

func TestParseConfigurationFile(t *testing.T) {
	content := `name: plint
ignore-comments: true
checks:
  control-flow-spacing:
    severity: error
  comma-spacing:
    severity: off
custom-patterns:
  - name: return-paren-spacing
    templates:
      - "return (...);"
    severity: warning
`
	path := filepath.Join(t.TempDir(), ".plint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := parseConfigurationFile(path)
	require.NoError(t, err)

	assert.Equal(t, "plint", config.Name)
	assert.True(t, config.IgnoreComments)
	assert.Equal(t, tt.SeverityError, config.Checks["control-flow-spacing"].Severity)
	assert.Equal(t, tt.SeverityOff, config.Checks["comma-spacing"].Severity)
	require.Len(t, config.CustomPatterns, 1)
	assert.Equal(t, "return-paren-spacing", config.CustomPatterns[0].Name)
	assert.Equal(t, []string{"return (...);"}, config.CustomPatterns[0].Templates)
}

func TestParseConfigurationFile_EmptyPathUsesDefaults(t *testing.T) {
	config, err := parseConfigurationFile("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestParseConfigurationFile_MissingFile(t *testing.T) {
	_, err := parseConfigurationFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParseConfigurationFile_BadSeverity(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".plint.yaml")
	require.NoError(t, os.WriteFile(path, []byte("checks:\n  comma-spacing:\n    severity: loud\n"), 0o644))

	_, err := parseConfigurationFile(path)
	assert.Error(t, err)
}

func TestProcessPath_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.c")
	require.NoError(t, os.WriteFile(path, []byte("int f(void) {\n    if(x) {\n    }\n}\n"), 0o644))

	engine, err := New("")
	require.NoError(t, err)

	issues, err := ProcessPath(context.Background(), nil, engine, path, ProcessFile)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, path, issues[0].Filename)
	assert.Equal(t, "control-flow-spacing", issues[0].Check)
}

func TestProcessPath_SkipsOtherExtensions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("if(x) {"), 0o644))

	engine, err := New("")
	require.NoError(t, err)

	issues, err := ProcessPath(context.Background(), nil, engine, path, ProcessFile)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestProcessPath_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.c"),
		[]byte("if(x) {\n}\n"), 0o644))

	engine, err := New("")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = ProcessPath(ctx, nil, engine, dir, ProcessFile)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcessPath_CancelledContextSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.c")
	require.NoError(t, os.WriteFile(path, []byte("if(x) {\n}\n"), 0o644))

	engine, err := New("")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = ProcessPath(ctx, nil, engine, path, ProcessFile)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcessFiles_Directory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.c"),
		[]byte("void f(void) {\n    while(x) {\n    }\n}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.c"),
		[]byte("void g(void) {\n    if (x) {\n    }\n}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skip.txt"),
		[]byte("if(x) {"), 0o644))

	engine, err := New("")
	require.NoError(t, err)

	issues, err := ProcessFiles(context.Background(), nil, engine, []string{dir}, ProcessFile)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, filepath.Join(dir, "a.c"), issues[0].Filename)
}

func TestProcessSources(t *testing.T) {
	engine, err := New("")
	require.NoError(t, err)

	sources := [][]byte{
		[]byte("if (x) {\n}\n"),
		[]byte("if(x) {\n}\n"),
	}
	issues, err := ProcessSources(context.Background(), nil, engine, sources, ProcessSource)
	require.NoError(t, err)
	assert.Len(t, issues, 1)
}
