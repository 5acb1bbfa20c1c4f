package render

import (
	"fmt"
	"strings"

	"github.com/calderhouse/menuview/internal/menu"
)

// Inline messages for the non-error "nothing here" cases and the two
// failure cases of a category render.
const (
	noticeLoading         = `<p class="notice notice-loading">Menu data is loading...</p>`
	noticeUnknownCategory = `<p class="notice notice-error">Error: no menu found for this category.</p>`
	noticeEmptyCategory   = `<p class="notice notice-empty">No sections found for this menu.</p>`
	noticeEmptySection    = `<p class="notice notice-empty">No items in this section.</p>`
)

// CategoryHTML renders the full content-region fragment for one
// category: title, optional subtitle, then each section in insertion
// order with its items grouped in a bordered container. A nil or empty
// document yields a loading placeholder, an unknown key an inline error;
// both leave the rest of the UI usable.
func CategoryHTML(doc *menu.Document, key string, state *ViewState) string {
	if doc == nil || doc.Len() == 0 {
		return noticeLoading
	}
	cat, ok := doc.Category(key)
	if !ok {
		return noticeUnknownCategory
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<h2 class="category-title">%s</h2>`, Escape(cat.Title))
	if cat.Subtitle != "" {
		fmt.Fprintf(&b, `<p class="category-subtitle">%s</p>`, Escape(cat.Subtitle))
	}

	if len(cat.Sections) == 0 {
		b.WriteString(noticeEmptyCategory)
		return b.String()
	}

	for si := range cat.Sections {
		sec := &cat.Sections[si]
		b.WriteString(`<div class="menu-section">`)
		fmt.Fprintf(&b, `<h3 class="section-title">%s</h3>`, Escape(sec.Title))
		if len(sec.Items) == 0 {
			b.WriteString(noticeEmptySection)
		} else {
			b.WriteString(`<div class="item-group">`)
			for ii := range sec.Items {
				ItemHTML(&b, &sec.Items[ii], key, si, ii, state)
			}
			b.WriteString(`</div>`)
		}
		b.WriteString(`</div>`)
	}

	return b.String()
}
