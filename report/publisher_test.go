package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeHTMLTree(t *testing.T, marker string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "htmlcov")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte(marker), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "style.css"), []byte("body {}"), 0o644))
	return dir
}

func TestPublish(t *testing.T) {
	out := t.TempDir()
	p := NewPublisher(out, nil)

	landing := p.Publish(writeHTMLTree(t, "<html>run</html>"), "prob-1")
	assert.Equal(t, filepath.Join(out, "prob-1", "index.html"), landing)

	content, err := os.ReadFile(landing)
	require.NoError(t, err)
	assert.Equal(t, "<html>run</html>", string(content))

	// supporting assets came along
	_, err = os.Stat(filepath.Join(out, "prob-1", "assets", "style.css"))
	assert.NoError(t, err)
}

func TestPublishOverwrites(t *testing.T) {
	out := t.TempDir()
	p := NewPublisher(out, nil)

	first := writeHTMLTree(t, "first")
	require.NoError(t, os.WriteFile(filepath.Join(first, "stale.html"), []byte("old"), 0o644))
	p.Publish(first, "prob-1")

	landing := p.Publish(writeHTMLTree(t, "second"), "prob-1")
	require.NotEmpty(t, landing)

	content, err := os.ReadFile(landing)
	require.NoError(t, err)
	assert.Equal(t, "second", string(content), "destination must reflect the second run")

	_, err = os.Stat(filepath.Join(out, "prob-1", "stale.html"))
	assert.True(t, os.IsNotExist(err), "files from the first run must be gone")

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "exactly one report subtree per identifier")
}

func TestPublishMissingSource(t *testing.T) {
	p := NewPublisher(t.TempDir(), nil)
	landing := p.Publish(filepath.Join(t.TempDir(), "absent"), "prob-1")
	assert.Empty(t, landing)
}
