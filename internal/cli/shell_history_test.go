package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadShellHistory_FileNotFound_ReturnsNil(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent", "shell_history")
	lines := loadHistoryFromPath(path)
	assert.Nil(t, lines)
}

func TestLoadShellHistory_ReadsLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shell_history")
	content := "course list\ncourse stats --json\ntheme dark\nwhoami\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	lines := loadHistoryFromPath(path)
	assert.Equal(t, []string{"course list", "course stats --json", "theme dark", "whoami"}, lines)
}

func TestLoadShellHistory_TruncatesOverMax(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shell_history")

	// Write 600 lines.
	var b strings.Builder
	for i := 0; i < 600; i++ {
		b.WriteString("line\n")
	}
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))

	lines := loadHistoryFromPath(path)
	assert.Len(t, lines, maxHistoryLines)
}

func TestAppendShellHistory_AppendsLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shell_history")

	appendHistoryToPath(path, "course list")
	appendHistoryToPath(path, "  whoami  ")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "course list\nwhoami\n", string(data))
}

func TestAppendShellHistory_SkipsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shell_history")

	appendHistoryToPath(path, "")
	appendHistoryToPath(path, "   ")

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "file should not be created for empty lines")
}

func TestDefaultHistoryPath(t *testing.T) {
	t.Setenv("HOME", "/tmp/folio-home")
	assert.Equal(t, filepath.Join("/tmp/folio-home", ".folio", "shell_history"), DefaultHistoryPath())
}
