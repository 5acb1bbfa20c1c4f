package server

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/calderhouse/menuview/internal/menu"
	"github.com/calderhouse/menuview/internal/render"
	"github.com/calderhouse/menuview/internal/site"
)

// defaultKey resolves the configured default category against the
// current document, falling back to the first document key.
func (s *Server) defaultKey(doc *menu.Document) string {
	if _, ok := doc.Category(s.cfg.DefaultCategory); ok {
		return s.cfg.DefaultCategory
	}
	if doc.Len() > 0 {
		return doc.Keys()[0]
	}
	return s.cfg.DefaultCategory
}

// writePage renders the full page shell for one category.
func (s *Server) writePage(w http.ResponseWriter, status int, doc *menu.Document, key string) {
	state := render.NewViewState(doc)
	state.ActivateCategory(key)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	err := site.RenderPage(w, site.PageData{
		Title:       render.DisplayName(key),
		SiteTitle:   s.cfg.SiteTitle,
		NavHTML:     template.HTML(render.NavHTML(doc, state)),
		ContentHTML: template.HTML(render.CategoryHTML(doc, key, state)),
		BasePath:    "/",
		Live:        true,
		HasAbout:    s.aboutHTML != "",
	})
	if err != nil {
		s.log.Error("rendering page", "category", key, "error", err)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	doc := s.Document()
	key := s.defaultKey(doc)
	s.writePage(w, http.StatusOK, doc, key)
	s.recordView(r, key)
}

func (s *Server) handleCategoryPage(w http.ResponseWriter, r *http.Request) {
	doc := s.Document()
	key := chi.URLParam(r, "key")
	status := http.StatusOK
	if _, ok := doc.Category(key); !ok {
		status = http.StatusNotFound
	}
	s.writePage(w, status, doc, key)
	if status == http.StatusOK {
		s.recordView(r, key)
	}
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	if s.aboutHTML == "" {
		http.NotFound(w, r)
		return
	}
	doc := s.Document()
	state := render.NewViewState(doc)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := site.RenderPage(w, site.PageData{
		Title:       "About",
		SiteTitle:   s.cfg.SiteTitle,
		NavHTML:     template.HTML(render.NavHTML(doc, state)),
		ContentHTML: template.HTML(`<div class="about-content">` + s.aboutHTML + `</div>`),
		BasePath:    "/",
		Live:        true,
		HasAbout:    true,
	})
	if err != nil {
		s.log.Error("rendering about page", "error", err)
	}
}

func (s *Server) handleCSS(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(site.StyleCSS))
}

func (s *Server) handleJS(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Write([]byte(site.ScriptJS))
}

func (s *Server) handleSearchIndex(w http.ResponseWriter, _ *http.Request) {
	doc := s.Document()
	entries := site.BuildSearchIndex(doc, render.NewViewState(doc))
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(entries)
}

// handleCategoryFragment serves the bare content-region fragment for one
// category. The page script swaps it in on nav selection.
func (s *Server) handleCategoryFragment(w http.ResponseWriter, r *http.Request) {
	doc := s.Document()
	key := chi.URLParam(r, "key")
	state := render.NewViewState(doc)
	state.ActivateCategory(key)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, ok := doc.Category(key); !ok {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(render.CategoryHTML(doc, key, state)))
		return
	}
	w.Write([]byte(render.CategoryHTML(doc, key, state)))
	s.metrics.categoryViews.WithLabelValues(key).Inc()
	s.recordView(r, key)
}

// searchResponse is the JSON body of /api/search.
type searchResponse struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
	HTML  string `json:"html"`
}

// handleSearch runs the search engine over the current document and
// returns the rendered result fragment along with the match count. An
// empty (or whitespace-only) term yields the neutral placeholder with a
// zero count; that is not an error.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	doc := s.Document()
	term := r.URL.Query().Get("q")

	state := render.NewViewState(doc)
	state.SetQuery(term)
	html, count := render.SearchResultsHTML(doc, term, state)

	if menu.Normalize(term) != "" {
		s.metrics.searches.Inc()
		s.recordSearch(r, term, count)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(searchResponse{Term: term, Count: count, HTML: html})
}

func (s *Server) recordView(r *http.Request, key string) {
	if s.store == nil {
		return
	}
	if err := s.store.RecordView(r.Context(), key); err != nil {
		s.log.Warn("recording view", "category", key, "error", err)
	}
}

func (s *Server) recordSearch(r *http.Request, term string, count int) {
	if s.store == nil {
		return
	}
	if err := s.store.RecordSearch(r.Context(), term, count); err != nil {
		s.log.Warn("recording search", "error", err)
	}
}
