package site

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/calderhouse/menuview/internal/menu"
	"github.com/calderhouse/menuview/internal/render"
)

// SearchEntry is one searchable item in the static site's index. Text is
// the case-folded searchable field set; HTML is the item's pre-rendered
// fragment, so the page script reproduces the server-side search output
// by simple substring filtering and concatenation.
type SearchEntry struct {
	Category string `json:"category"`
	Section  int    `json:"section"`
	Item     int    `json:"item"`
	Text     string `json:"text"`
	HTML     string `json:"html"`
}

// BuildSearchIndex flattens the document into search entries, in
// document order.
func BuildSearchIndex(doc *menu.Document, state *render.ViewState) []SearchEntry {
	var entries []SearchEntry
	for _, key := range doc.Keys() {
		cat, _ := doc.Category(key)
		for si := range cat.Sections {
			items := cat.Sections[si].Items
			for ii := range items {
				var b strings.Builder
				render.ItemHTML(&b, &items[ii], key, si, ii, state)
				entries = append(entries, SearchEntry{
					Category: key,
					Section:  si,
					Item:     ii,
					Text:     menu.SearchText(&items[ii]),
					HTML:     b.String(),
				})
			}
		}
	}
	return entries
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshalling search index: %w", err)
	}
	return os.WriteFile(outputPath, data, 0o644)
}
