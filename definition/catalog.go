package definition

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/dhamidi/fa/automaton"
)

// Extension marks definition files inside a catalog.
const Extension = ".fa.json"

// Catalog is the set of definition files found below a directory.
type Catalog struct {
	RootDir string
	Entries []*Entry
}

// Entry is one definition file. Exactly one of Automaton and Err is set.
type Entry struct {
	Name      string // path relative to the root, without Extension
	Path      string
	Automaton *automaton.Automaton[string, string]
	Err       error
}

// LoadCatalog scans rootDir recursively for definition files. Files that
// fail to load are kept with their error; only a failing walk is fatal.
func LoadCatalog(rootDir string) (*Catalog, error) {
	catalog := &Catalog{RootDir: rootDir}

	err := filepath.WalkDir(rootDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Extension) {
			return nil
		}

		rel, err := filepath.Rel(rootDir, path)
		if err != nil {
			rel = path
		}

		e := &Entry{
			Name: strings.TrimSuffix(filepath.ToSlash(rel), Extension),
			Path: path,
		}
		e.Automaton, e.Err = Load(path)
		log.Debugf("catalog entry %s loaded (err: %v)", e.Name, e.Err)
		catalog.Entries = append(catalog.Entries, e)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan definitions: %w", err)
	}

	return catalog, nil
}

// Entry returns the entry with the given name, or nil if not found.
func (c *Catalog) Entry(name string) *Entry {
	for _, e := range c.Entries {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// Failed returns the entries that could not be loaded.
func (c *Catalog) Failed() []*Entry {
	var failed []*Entry
	for _, e := range c.Entries {
		if e.Err != nil {
			failed = append(failed, e)
		}
	}
	return failed
}
