package server

import (
	"context"
	"os"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/calderhouse/menuview/internal/menu"
)

// watchCatalog polls the catalog file (or glob) for modification and
// swaps the document in place when it changes. A catalog that becomes
// unreadable or unparsable keeps the last good document; the error is
// logged and the watcher keeps polling.
func (s *Server) watchCatalog(ctx context.Context) {
	if s.cfg.WatchInterval < 0 {
		return
	}

	last, _ := s.catalogStamp()
	ticker := time.NewTicker(s.cfg.WatchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		stamp, ok := s.catalogStamp()
		if !ok || stamp.Equal(last) {
			continue
		}
		last = stamp

		doc, err := menu.Load(s.cfg.Catalog)
		if err != nil {
			s.log.Warn("catalog changed but failed to load, keeping previous", "error", err)
			continue
		}
		s.log.Info("catalog reloaded", "categories", doc.Len())
		s.swapDocument(doc)
	}
}

// catalogStamp returns the newest modification time across all files the
// catalog pattern resolves to.
func (s *Server) catalogStamp() (time.Time, bool) {
	paths := []string{s.cfg.Catalog}
	if matches, err := doublestar.FilepathGlob(s.cfg.Catalog); err == nil && len(matches) > 0 {
		sort.Strings(matches)
		paths = matches
	}

	var newest time.Time
	found := false
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		found = true
		if info.ModTime().After(newest) {
			newest = info.ModTime()
		}
	}
	return newest, found
}
