package bank

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
)

// ImportResult reports the outcome for one file of a batch. A failed file
// never blocks or rolls back its siblings.
type ImportResult struct {
	Path     string
	Material Material
	Err      error
}

// mimeByExt covers the upload types the tutor accepts: PDFs, audio
// lectures, and plain text. Anything else goes up as an opaque blob.
var mimeByExt = map[string]string{
	".pdf":  "application/pdf",
	".txt":  "text/plain",
	".md":   "text/plain",
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".m4a":  "audio/mp4",
	".ogg":  "audio/ogg",
	".flac": "audio/flac",
	".html": "text/html",
	".htm":  "text/html",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// DetectMIME maps a filename to a media type by extension.
func DetectMIME(name string) string {
	if mt, ok := mimeByExt[strings.ToLower(filepath.Ext(name))]; ok {
		return mt
	}
	return "application/octet-stream"
}

// ImportFiles expands the glob patterns and uploads every match as a file
// material under the given category. Files are processed independently and
// concurrently; each gets its own result, in stable path order.
func (s *Store) ImportFiles(patterns []string, category Category) []ImportResult {
	paths := expandPatterns(patterns)
	results := make([]ImportResult, len(paths))

	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			results[i] = s.importOne(path, category)
		}(i, path)
	}
	wg.Wait()
	return results
}

func (s *Store) importOne(path string, category Category) ImportResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return ImportResult{Path: path, Err: fmt.Errorf("read %s: %w", path, err)}
	}
	m, err := s.AddFile(data, DetectMIME(path), filepath.Base(path), category)
	if err != nil {
		return ImportResult{Path: path, Err: err}
	}
	return ImportResult{Path: path, Material: m}
}

// expandPatterns resolves ** globs and literal paths, dropping duplicates.
func expandPatterns(patterns []string) []string {
	seen := map[string]bool{}
	var paths []string
	for _, pat := range patterns {
		matches, err := doublestar.FilepathGlob(pat)
		if err != nil || len(matches) == 0 {
			// Not a glob (or nothing matched): treat as a literal path so
			// the caller gets a per-file read error instead of silence.
			matches = []string{pat}
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	sort.Strings(paths)
	return paths
}
