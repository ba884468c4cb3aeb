package bank

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectMIME(t *testing.T) {
	assert.Equal(t, "application/pdf", DetectMIME("torts.PDF"))
	assert.Equal(t, "audio/mpeg", DetectMIME("lecture3.mp3"))
	assert.Equal(t, "text/plain", DetectMIME("notes.md"))
	assert.Equal(t, "application/octet-stream", DetectMIME("mystery.bin"))
}

func TestImportFilesGlobAndOrder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.txt", "c.pdf"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	s := NewStore(nil)
	results := s.ImportFiles([]string{filepath.Join(dir, "*.txt")}, CategoryReading)

	require.Len(t, results, 2)
	// Stable path order regardless of goroutine completion order.
	assert.Equal(t, filepath.Join(dir, "a.txt"), results[0].Path)
	assert.Equal(t, filepath.Join(dir, "b.txt"), results[1].Path)
	for _, r := range results {
		require.NoError(t, r.Err)
		assert.Equal(t, KindFile, r.Material.Kind)
	}
	assert.Equal(t, 2, s.Len())
}

func TestImportFilesOversizedItemFailsAlone(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "small.txt"), []byte("ok"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "big.txt"), make([]byte, 64), 0o644))

	s := NewStore(nil)
	s.SetSizeLimit(16)
	results := s.ImportFiles([]string{filepath.Join(dir, "*.txt")}, CategoryExam)

	require.Len(t, results, 2)
	byName := map[string]ImportResult{}
	for _, r := range results {
		byName[filepath.Base(r.Path)] = r
	}

	var serr *SizeLimitError
	require.ErrorAs(t, byName["big.txt"].Err, &serr)
	require.NoError(t, byName["small.txt"].Err)
	assert.Equal(t, 1, s.Len())
}

func TestImportFilesMissingLiteralPath(t *testing.T) {
	s := NewStore(nil)
	results := s.ImportFiles([]string{"/nonexistent/casebook.pdf"}, CategoryReading)

	require.Len(t, results, 1)
	assert.Error(t, results[0].Err)
	assert.Equal(t, 0, s.Len())
}

func TestImportAsTextKeepsFileName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "outline.txt")
	require.NoError(t, os.WriteFile(path, []byte("Duty, Breach, Causation, Damages"), 0o644))

	s := NewStore(nil)
	m, err := s.ImportAsText(path, CategoryLecture)
	require.NoError(t, err)
	assert.Equal(t, "outline.txt", m.Name)
	assert.Equal(t, KindText, m.Kind)

	snap := s.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "outline.txt", snap[0].Name)
	assert.Equal(t, "Duty, Breach, Causation, Damages", snap[0].Text)
}
