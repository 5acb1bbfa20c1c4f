package menu

import "strings"

// Result is one item matched by a search, with the coordinates needed to
// derive its stable display-fragment identifier.
type Result struct {
	CategoryKey  string
	SectionIndex int
	ItemIndex    int
	Item         *Item
}

// Normalize prepares a raw search string for matching: trim surrounding
// whitespace and case-fold. An empty result means "no search".
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// searchableText returns the fields a search term is matched against.
// This set is narrower than the detail-block field set on purpose:
// region, vintage, producer, brewery, about, farming and note are shown
// in details but never searched.
func searchableText(it *Item) []string {
	return []string{
		it.Name,
		it.Description,
		it.Tagline,
		it.Type,
		it.Variety,
		it.TastingNotes,
		it.Allergens,
		it.DietaryInfo,
		it.SubName,
	}
}

// SearchText returns the case-folded searchable fields of an item joined
// by newlines, for use in a pre-built client-side index. Newline joins
// keep a typed term from matching across field boundaries.
func SearchText(it *Item) string {
	var parts []string
	for _, field := range searchableText(it) {
		if field != "" {
			parts = append(parts, strings.ToLower(field))
		}
	}
	return strings.Join(parts, "\n")
}

// Matches reports whether the item matches an already-normalized term.
func Matches(it *Item, normalized string) bool {
	if normalized == "" {
		return false
	}
	for _, field := range searchableText(it) {
		if field != "" && strings.Contains(strings.ToLower(field), normalized) {
			return true
		}
	}
	return false
}

// Search scans every item in the document for a case-insensitive
// substring match against the normalized term. Results come back in
// document order: category key order, then section order, then item
// order. No ranking is applied; the catalog is small enough that a full
// linear rescan per invocation is fine.
func Search(doc *Document, normalized string) []Result {
	if normalized == "" {
		return nil
	}

	var results []Result
	for _, key := range doc.Keys() {
		cat, _ := doc.Category(key)
		for si := range cat.Sections {
			items := cat.Sections[si].Items
			for ii := range items {
				if Matches(&items[ii], normalized) {
					results = append(results, Result{
						CategoryKey:  key,
						SectionIndex: si,
						ItemIndex:    ii,
						Item:         &items[ii],
					})
				}
			}
		}
	}
	return results
}
