package site

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/calderhouse/menuview/internal/menu"
	"github.com/calderhouse/menuview/internal/render"
)

const testCatalog = `{
	"dinner": {
		"title": "Dinner",
		"sections": [
			{
				"title": "Mains",
				"items": [
					{"name": "Club Sandwich", "price": "$18", "description": "Triple decker.", "allergens": "Gluten"}
				]
			}
		]
	},
	"beers": {
		"title": "Beers",
		"sections": [
			{
				"title": "On Tap",
				"items": [
					{"name": "Hazy IPA", "abv": "6.2%", "type": "IPA"}
				]
			}
		]
	}
}`

func writeCatalog(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "menu-data.json")
	if err := os.WriteFile(path, []byte(testCatalog), 0o644); err != nil {
		t.Fatalf("writing catalog: %v", err)
	}
	return path
}

func TestGenerate(t *testing.T) {
	catalog := writeCatalog(t)
	out := filepath.Join(t.TempDir(), "site")

	gen := NewGenerator(catalog, out, "Test Menus", "dinner")
	pages, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// index + one page per category.
	if pages != 3 {
		t.Errorf("pages: got %d, want 3", pages)
	}

	for _, name := range []string{
		"index.html",
		"style.css",
		"script.js",
		"search-index.json",
		filepath.Join("menus", "dinner.html"),
		filepath.Join("menus", "beers.html"),
		filepath.Join("fragments", "dinner.html"),
		filepath.Join("fragments", "beers.html"),
	} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("expected output file %s: %v", name, err)
		}
	}
}

func TestGenerateIndexContent(t *testing.T) {
	catalog := writeCatalog(t)
	out := filepath.Join(t.TempDir(), "site")

	gen := NewGenerator(catalog, out, "Test Menus", "dinner")
	if _, err := gen.Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	f, err := os.Open(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatalf("open index: %v", err)
	}
	defer f.Close()
	d, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		t.Fatalf("parse index: %v", err)
	}

	if got := d.Find(".site-title").Text(); got != "Test Menus" {
		t.Errorf("site title: got %q", got)
	}
	if got := d.Find(".nav-button").Length(); got != 2 {
		t.Errorf("nav buttons: got %d, want 2", got)
	}
	// The index shows the default category, with its nav control active.
	if key, _ := d.Find(".nav-button.active").Attr("data-category"); key != "dinner" {
		t.Errorf("active nav: got %q, want dinner", key)
	}
	if got := d.Find("#menu-content .item-name h4").First().Text(); got != "Club Sandwich" {
		t.Errorf("index item: got %q", got)
	}
	if d.Find("#search-input").Length() != 1 {
		t.Error("expected search input in sidebar")
	}
	// No about page was configured, so no footer link.
	if d.Find(`a[href$="about.html"]`).Length() != 0 {
		t.Error("about link must be absent without an about file")
	}

	body := d.Find("body")
	if live, _ := body.Attr("data-live"); live != "0" {
		t.Errorf("static build must set data-live=0, got %q", live)
	}
}

func TestGenerateUnknownDefaultFallsBack(t *testing.T) {
	catalog := writeCatalog(t)
	out := filepath.Join(t.TempDir(), "site")

	gen := NewGenerator(catalog, out, "Test Menus", "brunch")
	if _, err := gen.Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	// First document key wins when the configured default is missing.
	if !strings.Contains(string(data), "Club Sandwich") {
		t.Error("index should fall back to the first category")
	}
}

func TestGenerateFragmentIsBare(t *testing.T) {
	catalog := writeCatalog(t)
	out := filepath.Join(t.TempDir(), "site")

	gen := NewGenerator(catalog, out, "Test Menus", "dinner")
	if _, err := gen.Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(out, "fragments", "beers.html"))
	if err != nil {
		t.Fatalf("read fragment: %v", err)
	}
	frag := string(data)
	if strings.Contains(frag, "<html") || strings.Contains(frag, "<body") {
		t.Error("fragment must not be a full page")
	}
	if !strings.Contains(frag, "Hazy IPA") {
		t.Error("fragment missing its items")
	}
	if !strings.Contains(frag, "ABV: 6.2%") {
		t.Error("fragment missing ABV meta")
	}
}

func TestGenerateWithAbout(t *testing.T) {
	catalog := writeCatalog(t)
	aboutPath := filepath.Join(t.TempDir(), "ABOUT.md")
	if err := os.WriteFile(aboutPath, []byte("# Our Story\n\nSince 1999."), 0o644); err != nil {
		t.Fatalf("write about: %v", err)
	}
	out := filepath.Join(t.TempDir(), "site")

	gen := NewGenerator(catalog, out, "Test Menus", "dinner")
	gen.AboutPath = aboutPath
	pages, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if pages != 4 {
		t.Errorf("pages: got %d, want 4 (index, 2 categories, about)", pages)
	}

	data, err := os.ReadFile(filepath.Join(out, "about.html"))
	if err != nil {
		t.Fatalf("read about.html: %v", err)
	}
	html := string(data)
	if !strings.Contains(html, "<h1") || !strings.Contains(html, "Our Story") {
		t.Error("about markdown was not rendered to HTML")
	}
	if !strings.Contains(html, "Since 1999.") {
		t.Error("about body missing")
	}
}

func TestBuildSearchIndex(t *testing.T) {
	var doc menu.Document
	if err := json.Unmarshal([]byte(testCatalog), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	entries := BuildSearchIndex(&doc, render.NewViewState(&doc))
	if len(entries) != 2 {
		t.Fatalf("entries: got %d, want 2", len(entries))
	}

	first := entries[0]
	if first.Category != "dinner" || first.Section != 0 || first.Item != 0 {
		t.Errorf("first entry coordinates: %+v", first)
	}
	if !strings.Contains(first.Text, "club sandwich") {
		t.Errorf("entry text not case-folded: %q", first.Text)
	}
	if !strings.Contains(first.Text, "gluten") {
		t.Errorf("entry text missing allergens: %q", first.Text)
	}
	if !strings.Contains(first.HTML, "Club Sandwich") {
		t.Error("entry HTML missing rendered item")
	}
	if !strings.Contains(first.HTML, `data-details-id="details-dinner-0-0"`) {
		t.Error("entry HTML missing detail id")
	}
}

func TestWriteSearchIndexRoundTrip(t *testing.T) {
	var doc menu.Document
	if err := json.Unmarshal([]byte(testCatalog), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	path := filepath.Join(t.TempDir(), "search-index.json")
	entries := BuildSearchIndex(&doc, render.NewViewState(&doc))
	if err := WriteSearchIndex(entries, path); err != nil {
		t.Fatalf("WriteSearchIndex: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	var loaded []SearchEntry
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("unmarshal index: %v", err)
	}
	if len(loaded) != len(entries) {
		t.Errorf("round-trip length: got %d, want %d", len(loaded), len(entries))
	}
}

func TestRenderAbout(t *testing.T) {
	if got, err := RenderAbout(""); err != nil || got != "" {
		t.Errorf("empty path: got %q, %v", got, err)
	}
	if _, err := RenderAbout(filepath.Join(t.TempDir(), "missing.md")); err == nil {
		t.Error("expected error for missing about file")
	}

	path := filepath.Join(t.TempDir(), "ABOUT.md")
	if err := os.WriteFile(path, []byte("A | B\n--- | ---\n1 | 2"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	html, err := RenderAbout(path)
	if err != nil {
		t.Fatalf("RenderAbout: %v", err)
	}
	// GFM tables are enabled.
	if !strings.Contains(html, "<table>") {
		t.Errorf("expected GFM table rendering, got %q", html)
	}
}
