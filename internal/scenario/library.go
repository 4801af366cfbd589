package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Entry is a single cataloged workflow document.
//
// Entries are produced by [Library.Scan]. Invalid documents still produce an
// entry with Err set, so the catalog can report them without aborting the scan.
type Entry struct {
	// Path is the file path of the workflow document.
	Path string

	// ScenarioName is the extracted scenario name (with default applied).
	ScenarioName string

	// Domain is the extracted domain (with default applied).
	Domain string

	// Err is non-nil when the file could not be read or parsed.
	Err error
}

// Library discovers workflow documents in a directory.
//
// Use [NewLibrary] to create an instance and [Library.Scan] to produce the
// catalog. Discovery is non-recursive and matches *.yaml and *.yml files.
type Library struct {
	dir string
}

// NewLibrary creates a [Library] rooted at the given directory.
// Pass an empty string to use the current working directory.
func NewLibrary(dir string) *Library {
	if dir == "" {
		dir = "."
	}
	return &Library{dir: dir}
}

// Scan reads the library directory and catalogs every workflow document found.
//
// Files that fail to read or parse are included with Err set rather than
// aborting the scan. Entries are sorted by path. Returns an error if the
// directory itself cannot be read.
func (l *Library) Scan() ([]Entry, error) {
	dirEntries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read library directory: %w", err)
	}

	var entries []Entry
	for _, de := range dirEntries {
		if de.IsDir() || !isWorkflowFile(de.Name()) {
			continue
		}

		path := filepath.Join(l.dir, de.Name())
		entry := Entry{Path: path}

		data, err := os.ReadFile(path)
		if err != nil {
			entry.Err = err
			entries = append(entries, entry)
			continue
		}

		doc, err := Parse(string(data))
		if err != nil {
			entry.Err = err
			entries = append(entries, entry)
			continue
		}

		entry.ScenarioName = doc.ScenarioName
		entry.Domain = doc.Domain
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})

	return entries, nil
}

func isWorkflowFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
