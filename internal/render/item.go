package render

import (
	"fmt"
	"strings"

	"github.com/calderhouse/menuview/internal/menu"
)

// chevronSVG is the expand indicator shown on headers that can toggle a
// detail block open.
const chevronSVG = `<svg class="chevron-icon" xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><polyline points="6 9 12 15 18 9"></polyline></svg>`

// ItemHTML renders one menu item as a collapsed header row plus, when
// the item has anything to show, an adjacent detail block. Toggling is
// wired declaratively through the data-details-id attribute; a delegated
// listener in the page script routes clicks and Enter/Space to the
// shared toggle entry point. The renderer itself attaches nothing and
// mutates nothing.
func ItemHTML(b *strings.Builder, it *menu.Item, categoryKey string, sectionIndex, itemIndex int, state *ViewState) {
	id := DetailID(categoryKey, sectionIndex, itemIndex)
	hasDetails := it.HasDetails()

	container := "menu-item-container"
	if hasDetails && state.Expanded(id) {
		container += " details-visible"
	}
	fmt.Fprintf(b, `<div class="%s">`, container)

	// Header row. Interactive and keyboard-focusable only when there is
	// something to expand.
	if hasDetails {
		fmt.Fprintf(b, `<div class="menu-item has-details" role="button" tabindex="0" data-details-id="%s">`, id)
	} else {
		b.WriteString(`<div class="menu-item" role="listitem">`)
	}

	name := Escape(it.Name)
	if name == "" {
		name = "Unnamed Item"
	}
	fmt.Fprintf(b, `<div class="item-name"><h4>%s</h4></div>`, name)

	b.WriteString(`<div class="item-meta">`)
	switch {
	case it.Price != "":
		fmt.Fprintf(b, `<span class="item-price">%s</span>`, Escape(it.Price))
	case it.ABV != "":
		fmt.Fprintf(b, `<span class="item-abv">ABV: %s</span>`, Escape(it.ABV))
	}
	if hasDetails {
		b.WriteString(chevronSVG)
	}
	b.WriteString(`</div>`)
	b.WriteString(`</div>`)

	if hasDetails {
		detailHTML(b, it, id)
	}

	b.WriteString(`</div>`)
}

// detailHTML renders the collapsible detail block. Fields appear in a
// fixed order; absent fields contribute nothing.
func detailHTML(b *strings.Builder, it *menu.Item, id string) {
	fmt.Fprintf(b, `<div id="%s" class="item-details">`, id)

	if it.SubName != "" {
		fmt.Fprintf(b, `<p class="item-subname">%s</p>`, Escape(it.SubName))
	}
	if it.Tagline != "" {
		fmt.Fprintf(b, `<p class="item-tagline">%s</p>`, Escape(it.Tagline))
	}

	labeled(b, "Type", it.Type)
	labeled(b, "Brewery", it.Brewery)
	labeled(b, "Producer", it.Producer)
	labeled(b, "Variety", it.Variety)
	labeled(b, "Region", it.Region)
	labeled(b, "Vintage", it.Vintage)

	if it.Description != "" {
		desc := strings.ReplaceAll(Escape(it.Description), "\n", "<br>")
		fmt.Fprintf(b, `<p class="item-description">%s</p>`, desc)
	}
	labeled(b, "Tasting Notes", it.TastingNotes)
	if it.About != "" {
		fmt.Fprintf(b, `<p class="item-about"><span class="detail-label">About:</span> %s</p>`, Escape(it.About))
	}
	if it.Farming != "" {
		fmt.Fprintf(b, `<p class="item-farming"><span class="detail-label">Farming:</span> %s</p>`, Escape(it.Farming))
	}

	badges(b, it)

	if it.Note != "" {
		fmt.Fprintf(b, `<p class="item-note">Note: %s</p>`, Escape(it.Note))
	}

	b.WriteString(`</div>`)
}

// labeled writes a "Label: value" detail row, skipping absent values.
func labeled(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, `<p><span class="detail-label">%s:</span> %s</p>`, label, Escape(value))
}

// badges renders the combined allergen/dietary badge region. Placeholder
// sentinels mean "no data" and produce no badge; the region itself is
// omitted when both badges are absent.
func badges(b *strings.Builder, it *menu.Item) {
	var inner strings.Builder
	if it.MeaningfulAllergens() {
		fmt.Fprintf(&inner, `<span class="badge badge-allergens">Allergens: %s</span>`, Escape(it.Allergens))
	}
	if it.MeaningfulDietaryInfo() {
		fmt.Fprintf(&inner, `<span class="badge badge-dietary">Dietary: %s</span>`, Escape(it.DietaryInfo))
	}
	if inner.Len() > 0 {
		fmt.Fprintf(b, `<div class="item-badges">%s</div>`, inner.String())
	}
}
