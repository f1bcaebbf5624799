// Package output persists ingested documents as flat JSON files, one per
// spec, and loads them back for export. The JSON layout is the pipeline's
// storage contract; the storage engine is deliberately just the filesystem.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gaurav-prasanna/specpipe/core"
)

// Writer reads and writes persisted spec documents in a directory.
type Writer struct {
	Dir string
}

// New creates a Writer targeting the given directory, defaulting to the
// current working directory.
func New(dir string) (*Writer, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		dir = wd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &Writer{Dir: dir}, nil
}

// Write persists one document as <dir>/<specName>.json, replacing any
// previous ingestion of the same spec whole.
func (w *Writer) Write(doc *core.SpecDocument) (string, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling document %s: %w", doc.SpecName, err)
	}
	path := w.Path(doc.SpecName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// Load reads a persisted document back.
func (w *Writer) Load(specName string) (*core.SpecDocument, error) {
	path := w.Path(specName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var doc core.SpecDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return &doc, nil
}

// Path returns the storage path for a spec name.
func (w *Writer) Path(specName string) string {
	return filepath.Join(w.Dir, specName+".json")
}
