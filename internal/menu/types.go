package menu

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Placeholder sentinels that appear in catalog data where a field was
// filled with "no applicable data" rather than left absent.
const (
	SentinelNoneMarked   = "(None marked)"
	SentinelNotAvailable = "(Not available)"
)

// Item is a single orderable entry. Every field except Name is optional
// free text; empty string means absent.
type Item struct {
	Name         string `json:"name"`
	SubName      string `json:"subName,omitempty"`
	Tagline      string `json:"tagline,omitempty"`
	Price        string `json:"price,omitempty"`
	ABV          string `json:"abv,omitempty"`
	Type         string `json:"type,omitempty"`
	Brewery      string `json:"brewery,omitempty"`
	Producer     string `json:"producer,omitempty"`
	Variety      string `json:"variety,omitempty"`
	Region       string `json:"region,omitempty"`
	Vintage      string `json:"vintage,omitempty"`
	Description  string `json:"description,omitempty"`
	TastingNotes string `json:"tastingNotes,omitempty"`
	About        string `json:"about,omitempty"`
	Farming      string `json:"farming,omitempty"`
	Allergens    string `json:"allergens,omitempty"`
	DietaryInfo  string `json:"dietaryInfo,omitempty"`
	Note         string `json:"note,omitempty"`
}

// Section is a named subgroup of items within a category.
type Section struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// Category is a top-level menu grouping.
type Category struct {
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle,omitempty"`
	Sections []Section `json:"sections"`
}

// MeaningfulAllergens reports whether the allergens field carries real
// data, as opposed to being absent or a placeholder sentinel.
func (it *Item) MeaningfulAllergens() bool {
	return it.Allergens != "" && it.Allergens != SentinelNoneMarked && it.Allergens != SentinelNotAvailable
}

// MeaningfulDietaryInfo reports whether the dietary info field carries
// real data.
func (it *Item) MeaningfulDietaryInfo() bool {
	return it.DietaryInfo != "" && it.DietaryInfo != SentinelNoneMarked
}

// HasDetails reports whether the item has anything to show in an
// expandable detail block. Placeholder sentinels do not count.
func (it *Item) HasDetails() bool {
	if it.Description != "" || it.Tagline != "" || it.Type != "" ||
		it.Brewery != "" || it.Producer != "" || it.Variety != "" ||
		it.Region != "" || it.Vintage != "" || it.TastingNotes != "" ||
		it.About != "" || it.Farming != "" ||
		it.Note != "" || it.SubName != "" {
		return true
	}
	return it.MeaningfulAllergens() || it.MeaningfulDietaryInfo()
}

// Document is the whole menu catalog: category keys mapped to categories,
// with the key order of the source JSON preserved. It is loaded once and
// never mutated afterward.
type Document struct {
	keys []string
	cats map[string]*Category
}

// NewDocument returns an empty Document. Used by tests and the loader.
func NewDocument() *Document {
	return &Document{cats: make(map[string]*Category)}
}

// Put inserts or replaces a category. A replaced key keeps its original
// position in the key order.
func (d *Document) Put(key string, c *Category) {
	if _, exists := d.cats[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.cats[key] = c
}

// Keys returns the category keys in document order. Callers must not
// modify the returned slice.
func (d *Document) Keys() []string { return d.keys }

// Category returns the category for key, if present.
func (d *Document) Category(key string) (*Category, bool) {
	c, ok := d.cats[key]
	return c, ok
}

// Len returns the number of categories.
func (d *Document) Len() int { return len(d.keys) }

// UnmarshalJSON decodes a top-level JSON object of categories while
// recording the order keys appear in. encoding/json's map decoding would
// lose that order, and nav controls are built in document key order.
func (d *Document) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(strings.NewReader(string(data)))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("menu document must be a JSON object, got %v", tok)
	}

	d.keys = nil
	d.cats = make(map[string]*Category)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("reading category key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v for category key", tok)
		}

		var c Category
		if err := dec.Decode(&c); err != nil {
			return fmt.Errorf("decoding category %q: %w", key, err)
		}
		d.Put(key, &c)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("reading document end: %w", err)
	}
	return nil
}

// MarshalJSON re-encodes the document in key order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, key := range d.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(d.cats[key])
		if err != nil {
			return nil, err
		}
		b.Write(k)
		b.WriteByte(':')
		b.Write(v)
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}
