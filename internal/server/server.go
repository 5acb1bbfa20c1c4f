package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/calderhouse/menuview/internal/menu"
	"github.com/calderhouse/menuview/internal/stats"
)

// Config holds server configuration.
type Config struct {
	Port            int
	Catalog         string // path or glob the document is (re)loaded from
	SiteTitle       string
	DefaultCategory string
	AboutPath       string
	WatchInterval   time.Duration // 0 disables catalog watching
}

// Server renders the menu site live and exposes the search and stats
// APIs. The catalog document is loaded once at startup and swapped
// atomically if the file changes on disk; handlers only ever read it.
type Server struct {
	cfg        Config
	log        *slog.Logger
	store      *stats.Store // nil when stats are disabled
	router     chi.Router
	httpServer *http.Server
	metrics    *metrics

	mu        sync.RWMutex
	doc       *menu.Document
	aboutHTML string

	connMu sync.Mutex
	conns  map[*websocket.Conn]bool
}

// New creates a server for an already-loaded document. store may be nil.
func New(cfg Config, doc *menu.Document, aboutHTML string, store *stats.Store) *Server {
	if cfg.WatchInterval == 0 {
		cfg.WatchInterval = 2 * time.Second
	}
	s := &Server{
		cfg:       cfg,
		log:       slog.New(slog.NewJSONHandler(os.Stderr, nil)).With("component", "server"),
		store:     store,
		metrics:   newMetrics(),
		doc:       doc,
		aboutHTML: aboutHTML,
		conns:     make(map[*websocket.Conn]bool),
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Method(http.MethodGet, "/metrics", s.metrics.handler())

	// Pages and assets.
	r.Get("/", s.handleIndex)
	r.Get("/menus/{key}", s.handleCategoryPage)
	r.Get("/about.html", s.handleAbout)
	r.Get("/style.css", s.handleCSS)
	r.Get("/script.js", s.handleJS)
	r.Get("/search-index.json", s.handleSearchIndex)

	// Fragment and search APIs used by the page script.
	r.Get("/api/menus/{key}", s.handleCategoryFragment)
	r.Get("/api/search", s.handleSearch)

	// Live reload.
	r.Get("/ws/reload", s.handleReloadSocket)

	if s.store != nil {
		s.store.RegisterRoutes(r)
	}

	return r
}

// Router returns the chi router, chiefly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Document returns the current catalog document.
func (s *Server) Document() *menu.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

// swapDocument atomically replaces the catalog document and notifies
// connected reload sockets.
func (s *Server) swapDocument(doc *menu.Document) {
	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()
	s.broadcastReload()
}

// Run starts the HTTP server and the catalog watcher, and blocks until
// the context is canceled or either fails.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("menuview server listening", "addr", addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		s.watchCatalog(ctx)
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  256,
	WriteBufferSize: 256,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// handleReloadSocket registers a websocket client to be pinged when the
// catalog document changes.
func (s *Server) handleReloadSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("reload socket upgrade failed", "error", err)
		return
	}

	s.connMu.Lock()
	s.conns[conn] = true
	s.connMu.Unlock()

	// Drain (and discard) client messages until the peer goes away.
	go func() {
		defer func() {
			s.connMu.Lock()
			delete(s.conns, conn)
			s.connMu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// broadcastReload tells every connected client to refresh.
func (s *Server) broadcastReload() {
	s.connMu.Lock()
	defer s.connMu.Unlock()
	for conn := range s.conns {
		if err := conn.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
			delete(s.conns, conn)
			conn.Close()
		}
	}
}
