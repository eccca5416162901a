package qdrant

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"docchat/internal/domain"
)

func TestInit_CreatesCollection(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewStorage(Config{URL: srv.URL, Collection: "docs"})
	if err := s.Init(3); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/collections/docs" {
		t.Errorf("unexpected request %s %s", gotMethod, gotPath)
	}
}

func TestInit_RejectsBadDimension(t *testing.T) {
	s := NewStorage(Config{URL: "http://localhost:6333", Collection: "docs"})
	if err := s.Init(-1); err == nil {
		t.Fatal("expected error for invalid dimension")
	}
}

func TestSearch_ParsesPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/collections/docs/points/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"result": []map[string]any{
				{
					"score": 0.92,
					"payload": map[string]any{
						"document_id": "d1",
						"chunk_id":    "d1:0",
						"path":        "docs/essay.txt",
						"index":       0,
						"text":        "hello world",
					},
				},
			},
		})
	}))
	defer srv.Close()

	s := NewStorage(Config{URL: srv.URL, Collection: "docs"})
	results, err := s.Search([]float64{1, 0}, 5)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	want := domain.Chunk{DocumentID: "d1", ChunkID: "d1:0", Path: "docs/essay.txt", Text: "hello world", Index: 0}
	if results[0].Chunk != want {
		t.Errorf("unexpected chunk %+v", results[0].Chunk)
	}
	if results[0].Score != 0.92 {
		t.Errorf("unexpected score %f", results[0].Score)
	}
}

// Qdrant rejects point IDs that are not unsigned integers or UUIDs.
func TestUpsert_NumericPointIDs(t *testing.T) {
	var body struct {
		Points []struct {
			ID      json.Number    `json:"id"`
			Payload map[string]any `json:"payload"`
		} `json:"points"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&body); err != nil {
			t.Errorf("decode upsert body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewStorage(Config{URL: srv.URL, Collection: "docs"})
	chunks := []domain.Chunk{
		{DocumentID: "d1", ChunkID: "d1:0", Path: "docs/a.txt"},
		{DocumentID: "d1", ChunkID: "d1:1", Path: "docs/a.txt"},
	}
	if err := s.Upsert(chunks, [][]float64{{1}, {0}}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if len(body.Points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(body.Points))
	}
	seen := map[string]bool{}
	for i, p := range body.Points {
		if _, err := strconv.ParseUint(p.ID.String(), 10, 64); err != nil {
			t.Errorf("point %d ID %q is not an unsigned integer", i, p.ID)
		}
		if seen[p.ID.String()] {
			t.Errorf("point IDs must be distinct, %q repeats", p.ID)
		}
		seen[p.ID.String()] = true
		if p.Payload["chunk_id"] != chunks[i].ChunkID {
			t.Errorf("point %d payload should carry the chunk key, got %v", i, p.Payload["chunk_id"])
		}
	}
}

func TestUpsert_SendsAuthHeader(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("api-key")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewStorage(Config{URL: srv.URL, Collection: "docs", APIKey: "secret"})
	err := s.Upsert([]domain.Chunk{{DocumentID: "d1", ChunkID: "d1:0"}}, [][]float64{{1}})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if gotKey != "secret" {
		t.Errorf("expected api-key header, got %q", gotKey)
	}
}
