package render

import (
	"fmt"
	"strings"

	"github.com/calderhouse/menuview/internal/menu"
)

// noticeNeutral is shown when the search box is empty: not an error, and
// distinct from the zero-results message.
const noticeNeutral = `<div class="notice notice-neutral">Select a category from the sidebar or use the search bar.</div>`

// SearchResultsHTML renders the content-region fragment for a search.
// The raw term is normalized here; a term that normalizes to empty
// (including whitespace-only input) produces the neutral placeholder.
// Matches are rendered flat, in document order, inside one grouping
// container, with a header carrying the escaped original term and the
// count. Returns the fragment and the match count.
func SearchResultsHTML(doc *menu.Document, rawTerm string, state *ViewState) (string, int) {
	if doc == nil || doc.Len() == 0 {
		return noticeLoading, 0
	}

	normalized := menu.Normalize(rawTerm)
	if normalized == "" {
		return noticeNeutral, 0
	}

	results := menu.Search(doc, normalized)
	if len(results) == 0 {
		return fmt.Sprintf(`<p class="notice notice-empty">No items found matching "%s".</p>`, Escape(rawTerm)), 0
	}

	var items strings.Builder
	for _, r := range results {
		ItemHTML(&items, r.Item, r.CategoryKey, r.SectionIndex, r.ItemIndex, state)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<h2 class="results-header">Search Results (%d) for "%s"</h2>`, len(results), Escape(rawTerm))
	fmt.Fprintf(&b, `<div class="item-group">%s</div>`, items.String())
	return b.String(), len(results)
}
