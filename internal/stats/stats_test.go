package stats

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestOpenCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "stats.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if err := store.RecordView(context.Background(), "dinner"); err != nil {
		t.Errorf("RecordView: %v", err)
	}
}

func TestRecordAndSummarize(t *testing.T) {
	store, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if err := store.RecordView(ctx, "dinner"); err != nil {
			t.Fatalf("RecordView: %v", err)
		}
	}
	if err := store.RecordView(ctx, "beers"); err != nil {
		t.Fatalf("RecordView: %v", err)
	}
	if err := store.RecordSearch(ctx, "ipa", 2); err != nil {
		t.Fatalf("RecordSearch: %v", err)
	}
	if err := store.RecordSearch(ctx, "ipa", 2); err != nil {
		t.Fatalf("RecordSearch: %v", err)
	}
	if err := store.RecordSearch(ctx, "gluten", 1); err != nil {
		t.Fatalf("RecordSearch: %v", err)
	}

	sum, err := store.Summarize(ctx)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if sum.TotalViews != 4 {
		t.Errorf("total views: got %d, want 4", sum.TotalViews)
	}
	if sum.TotalSearches != 3 {
		t.Errorf("total searches: got %d, want 3", sum.TotalSearches)
	}
	if len(sum.TopCategories) != 2 {
		t.Fatalf("top categories: got %d, want 2", len(sum.TopCategories))
	}
	if sum.TopCategories[0].Category != "dinner" || sum.TopCategories[0].Views != 3 {
		t.Errorf("top category: got %+v", sum.TopCategories[0])
	}
	if len(sum.TopTerms) != 2 {
		t.Fatalf("top terms: got %d, want 2", len(sum.TopTerms))
	}
	if sum.TopTerms[0].Term != "ipa" || sum.TopTerms[0].Searches != 2 {
		t.Errorf("top term: got %+v", sum.TopTerms[0])
	}
}

func TestSummarizeEmpty(t *testing.T) {
	store, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer store.Close()

	sum, err := store.Summarize(context.Background())
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if sum.TotalViews != 0 || sum.TotalSearches != 0 {
		t.Errorf("empty store should summarize to zeros, got %+v", sum)
	}
}

func TestStatsEndpoint(t *testing.T) {
	store, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer store.Close()

	if err := store.RecordView(context.Background(), "wines"); err != nil {
		t.Fatalf("RecordView: %v", err)
	}

	r := chi.NewRouter()
	store.RegisterRoutes(r)

	req := httptest.NewRequest("GET", "/api/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var sum Summary
	if err := json.Unmarshal(w.Body.Bytes(), &sum); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if sum.TotalViews != 1 {
		t.Errorf("total views: got %d, want 1", sum.TotalViews)
	}
}
