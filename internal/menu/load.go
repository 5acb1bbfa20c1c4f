package menu

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Load reads the catalog document from the given path. The path may be a
// doublestar glob (e.g. "menus/*.json"); all matching files are decoded
// and merged in lexical order, later files replacing earlier categories
// with the same key.
func Load(path string) (*Document, error) {
	paths := []string{path}

	if hasGlobMeta(path) {
		matches, err := doublestar.FilepathGlob(path)
		if err != nil {
			return nil, fmt.Errorf("resolving catalog glob %s: %w", path, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no catalog files match %s", path)
		}
		sort.Strings(matches)
		paths = matches
	}

	doc := NewDocument()
	for _, p := range paths {
		if err := mergeFile(doc, p); err != nil {
			return nil, err
		}
	}

	if doc.Len() == 0 {
		return nil, fmt.Errorf("catalog %s contains no categories", path)
	}
	return doc, nil
}

// mergeFile decodes one catalog file into doc.
func mergeFile(doc *Document, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading catalog %s: %w", path, err)
	}

	var part Document
	if err := json.Unmarshal(data, &part); err != nil {
		return fmt.Errorf("parsing catalog %s: %w", path, err)
	}

	for _, key := range part.Keys() {
		c, _ := part.Category(key)
		doc.Put(key, c)
	}
	return nil
}

// hasGlobMeta reports whether the path contains glob metacharacters.
func hasGlobMeta(path string) bool {
	for _, r := range path {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
