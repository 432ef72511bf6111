package build

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Note is one discovered source file: its stable id (path relative to the
// graph root) and raw text.
type Note struct {
	ID  string
	Raw string
}

// discoverNotes walks <graph>/pages and reads every markdown note, sorted
// by id so the whole run processes pages in a stable order.
func discoverNotes(graphDir string) ([]Note, error) {
	pagesDir := filepath.Join(graphDir, "pages")
	if info, err := os.Stat(pagesDir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("no pages directory found in graph %s", graphDir)
	}

	var notes []Note
	err := filepath.WalkDir(pagesDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("read note %s: %w", p, err)
		}
		rel, err := filepath.Rel(graphDir, p)
		if err != nil {
			return err
		}
		notes = append(notes, Note{ID: filepath.ToSlash(rel), Raw: string(data)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover notes: %w", err)
	}

	sort.Slice(notes, func(i, j int) bool { return notes[i].ID < notes[j].ID })
	return notes, nil
}
