package render

import (
	"fmt"

	"github.com/calderhouse/menuview/internal/menu"
)

// DetailID derives the stable identifier for an item's detail block from
// its category key and its section/item position. Section and item
// insertion order is preserved by the loader, so the id is stable across
// render passes.
func DetailID(categoryKey string, sectionIndex, itemIndex int) string {
	return fmt.Sprintf("details-%s-%d-%d", categoryKey, sectionIndex, itemIndex)
}

// ViewState holds the transient UI flags of one page session: which
// detail blocks are expanded, which category is active in the nav, and
// the current search term. It exists so toggle and active-selection
// logic can be exercised without a rendered document; nothing here is
// ever persisted.
type ViewState struct {
	valid    map[string]bool
	expanded map[string]bool
	active   string
	query    string
}

// NewViewState builds the state for a loaded document. Only items that
// actually have details get a resolvable detail id.
func NewViewState(doc *menu.Document) *ViewState {
	s := &ViewState{
		valid:    make(map[string]bool),
		expanded: make(map[string]bool),
	}
	if doc == nil {
		return s
	}
	for _, key := range doc.Keys() {
		cat, _ := doc.Category(key)
		for si := range cat.Sections {
			items := cat.Sections[si].Items
			for ii := range items {
				if items[ii].HasDetails() {
					s.valid[DetailID(key, si, ii)] = true
				}
			}
		}
	}
	return s
}

// Toggle flips the visibility of the detail block with the given id and
// reports whether anything changed. An id that does not resolve is a
// silent no-op.
func (s *ViewState) Toggle(id string) bool {
	if !s.valid[id] {
		return false
	}
	if s.expanded[id] {
		delete(s.expanded, id)
	} else {
		s.expanded[id] = true
	}
	return true
}

// Expanded reports whether the detail block with the given id is visible.
func (s *ViewState) Expanded(id string) bool {
	return s != nil && s.expanded[id]
}

// ActivateCategory marks key as the selected category and resets the
// per-render flags: any in-progress search is cleared and all detail
// blocks collapse, since a category switch fully re-renders the content
// region.
func (s *ViewState) ActivateCategory(key string) {
	s.active = key
	s.query = ""
	s.expanded = make(map[string]bool)
}

// SetQuery records a search term. Searching is not "a category", so the
// active mark is cleared along with any expanded blocks.
func (s *ViewState) SetQuery(raw string) {
	s.query = raw
	s.active = ""
	s.expanded = make(map[string]bool)
}

// ActiveCategory returns the currently selected category key, or "" when
// none is selected (e.g. during a search).
func (s *ViewState) ActiveCategory() string {
	if s == nil {
		return ""
	}
	return s.active
}

// Query returns the raw search term last recorded.
func (s *ViewState) Query() string {
	if s == nil {
		return ""
	}
	return s.query
}
