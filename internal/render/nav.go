package render

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/calderhouse/menuview/internal/menu"
)

// navMeta is the fixed lookup table from known category keys to their
// display name and icon. Keys outside the table get a capitalized label
// and the generic book icon.
var navMeta = map[string]struct {
	Label string
	Icon  string
}{
	"breakfast": {"Breakfast", "coffee"},
	"dinner":    {"Dinner", "utensils-crossed"},
	"beers":     {"Beers & Ciders", "beer"},
	"cocktails": {"Cocktails", "martini"},
	"wines":     {"Wines", "grape"},
	"ird":       {"In-Room Dining", "concierge-bell"},
	"sh":        {"Side Hustle", "flame"},
}

const defaultNavIcon = "book-open"

// DisplayName resolves the human label for a category key.
func DisplayName(key string) string {
	if meta, ok := navMeta[key]; ok {
		return meta.Label
	}
	return capitalize(key)
}

// IconID resolves the icon identifier for a category key.
func IconID(key string) string {
	if meta, ok := navMeta[key]; ok {
		return meta.Icon
	}
	return defaultNavIcon
}

// NavHTML builds one control per category key, in document key order.
// Exactly the active category (if any) carries the active class; a
// search in progress means no control is active.
func NavHTML(doc *menu.Document, state *ViewState) string {
	if doc == nil || doc.Len() == 0 {
		return `<p class="notice notice-error">Error loading menu categories.</p>`
	}

	var b strings.Builder
	for _, key := range doc.Keys() {
		classes := "nav-button"
		if state.ActiveCategory() == key {
			classes += " active"
		}
		fmt.Fprintf(&b,
			`<button type="button" class="%s" data-category="%s"><svg class="nav-icon" width="20" height="20" aria-hidden="true"><use href="#icon-%s"></use></svg><span>%s</span></button>`+"\n",
			classes, Escape(key), IconID(key), Escape(DisplayName(key)))
	}
	return b.String()
}

// capitalize upper-cases the first rune of a key for its fallback label.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
