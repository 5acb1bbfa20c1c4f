package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/calderhouse/menuview/internal/menu"
	"github.com/calderhouse/menuview/internal/progress"
	"github.com/calderhouse/menuview/internal/render"
)

// pageTmpl is parsed once; the template is a compile-time constant.
var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

// PageData is the view model for the page template.
type PageData struct {
	Title       string
	SiteTitle   string
	NavHTML     template.HTML
	ContentHTML template.HTML
	BasePath    string
	Live        bool
	HasAbout    bool
}

// RenderPage executes the page template into w.
func RenderPage(w io.Writer, data PageData) error {
	return pageTmpl.Execute(w, data)
}

// Generator builds the static menu site from a catalog document.
type Generator struct {
	Catalog         string // path or doublestar glob
	OutputDir       string
	SiteTitle       string
	DefaultCategory string
	AboutPath       string // optional markdown file rendered to about.html
	Reporter        progress.Reporter
}

// NewGenerator creates a Generator with the given catalog and output
// locations.
func NewGenerator(catalog, outputDir, siteTitle, defaultCategory string) *Generator {
	return &Generator{
		Catalog:         catalog,
		OutputDir:       outputDir,
		SiteTitle:       siteTitle,
		DefaultCategory: defaultCategory,
		Reporter:        progress.Quiet{},
	}
}

// Generate builds the full static site. Returns the number of pages
// generated.
func (g *Generator) Generate() (int, error) {
	doc, err := menu.Load(g.Catalog)
	if err != nil {
		return 0, err
	}
	return g.GenerateFrom(doc)
}

// GenerateFrom builds the site from an already-loaded document.
func (g *Generator) GenerateFrom(doc *menu.Document) (int, error) {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}
	for _, dir := range []string{"menus", "fragments"} {
		if err := os.MkdirAll(filepath.Join(g.OutputDir, dir), 0o755); err != nil {
			return 0, err
		}
	}

	// Static assets.
	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), []byte(StyleCSS), 0o644); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "script.js"), []byte(ScriptJS), 0o644); err != nil {
		return 0, err
	}

	state := render.NewViewState(doc)

	// Search index with pre-rendered item fragments.
	entries := BuildSearchIndex(doc, state)
	if err := WriteSearchIndex(entries, filepath.Join(g.OutputDir, "search-index.json")); err != nil {
		return 0, fmt.Errorf("writing search index: %w", err)
	}

	aboutHTML, err := RenderAbout(g.AboutPath)
	if err != nil {
		return 0, err
	}
	hasAbout := aboutHTML != ""

	defaultKey := g.DefaultCategory
	if _, ok := doc.Category(defaultKey); !ok {
		defaultKey = doc.Keys()[0]
	}

	total := doc.Len() + 1
	if hasAbout {
		total++
	}
	g.Reporter.Start(total)
	pages := 0

	writePage := func(outPath string, data PageData) error {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		return RenderPage(f, data)
	}

	// Index page shows the default category.
	state.ActivateCategory(defaultKey)
	err = writePage(filepath.Join(g.OutputDir, "index.html"), PageData{
		Title:       render.DisplayName(defaultKey),
		SiteTitle:   g.SiteTitle,
		NavHTML:     template.HTML(render.NavHTML(doc, state)),
		ContentHTML: template.HTML(render.CategoryHTML(doc, defaultKey, state)),
		BasePath:    "",
		HasAbout:    hasAbout,
	})
	if err != nil {
		return pages, fmt.Errorf("rendering index: %w", err)
	}
	pages++
	g.Reporter.Update(pages, "index")

	// One full page plus one bare fragment per category. The fragments
	// are what the page script swaps into the content region on
	// category selection.
	for _, key := range doc.Keys() {
		state.ActivateCategory(key)
		content := render.CategoryHTML(doc, key, state)

		fragPath := filepath.Join(g.OutputDir, "fragments", key+".html")
		if err := os.WriteFile(fragPath, []byte(content), 0o644); err != nil {
			return pages, fmt.Errorf("writing fragment %s: %w", key, err)
		}

		err = writePage(filepath.Join(g.OutputDir, "menus", key+".html"), PageData{
			Title:       render.DisplayName(key),
			SiteTitle:   g.SiteTitle,
			NavHTML:     template.HTML(render.NavHTML(doc, state)),
			ContentHTML: template.HTML(content),
			BasePath:    "../",
			HasAbout:    hasAbout,
		})
		if err != nil {
			return pages, fmt.Errorf("rendering category %s: %w", key, err)
		}
		pages++
		g.Reporter.Update(pages, key)
	}

	if hasAbout {
		state.ActivateCategory("")
		err = writePage(filepath.Join(g.OutputDir, "about.html"), PageData{
			Title:       "About",
			SiteTitle:   g.SiteTitle,
			NavHTML:     template.HTML(render.NavHTML(doc, state)),
			ContentHTML: template.HTML(`<div class="about-content">` + aboutHTML + `</div>`),
			BasePath:    "",
			HasAbout:    true,
		})
		if err != nil {
			return pages, fmt.Errorf("rendering about page: %w", err)
		}
		pages++
		g.Reporter.Update(pages, "about")
	}

	g.Reporter.Finish()
	return pages, nil
}

// RenderAbout converts an optional about markdown file to HTML.
// Returns "" when path is empty.
func RenderAbout(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading about file: %w", err)
	}

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("converting about markdown: %w", err)
	}
	return buf.String(), nil
}
