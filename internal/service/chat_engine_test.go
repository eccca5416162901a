package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"docchat/internal/domain"
)

type mockEmbedder struct {
	prepared bool
}

func (m *mockEmbedder) Name() string { return "mock" }
func (m *mockEmbedder) Prepare(corpus []string) error {
	m.prepared = true
	return nil
}
func (m *mockEmbedder) Dimension() int { return 2 }
func (m *mockEmbedder) Embed(text string) ([]float64, error) {
	return []float64{1, 0}, nil
}

type mockStore struct {
	inited   bool
	upserted int
}

func (m *mockStore) Init(dimension int) error { m.inited = true; return nil }
func (m *mockStore) Upsert(chunks []domain.Chunk, vectors [][]float64) error {
	m.upserted += len(chunks)
	return nil
}
func (m *mockStore) Search(vector []float64, topK int) ([]domain.SearchResult, error) {
	return nil, nil
}
func (m *mockStore) Clear() error { return nil }

type mockRetriever struct {
	indexed []domain.Chunk
	results []domain.SearchResult
	err     error
	calls   int
}

func (m *mockRetriever) Index(chunks []domain.Chunk) { m.indexed = chunks }
func (m *mockRetriever) RelevantDocuments(query string) ([]domain.SearchResult, error) {
	m.calls++
	return m.results, m.err
}

type mockGenerator struct {
	answer string
	err    error
}

func (m *mockGenerator) Generate(query string, results []domain.SearchResult) (string, error) {
	return m.answer, m.err
}

type mockChunker struct{}

func (mockChunker) Chunk(d domain.Document) ([]domain.Chunk, error) {
	return []domain.Chunk{{DocumentID: d.ID, ChunkID: d.ID + ":0", Text: d.Content}}, nil
}

type mockSummarizer struct{}

func (mockSummarizer) Summarize(text string, maxSentences int) (string, error) {
	return "summary", nil
}

func newEngine(ret *mockRetriever, gen *mockGenerator) (*Engine, *mockEmbedder, *mockStore) {
	emb := &mockEmbedder{}
	store := &mockStore{}
	return NewEngine(mockChunker{}, emb, store, ret, gen, mockSummarizer{}, 3), emb, store
}

func TestIngestDocuments_BuildsIndex(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte("Some text to index."), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	ret := &mockRetriever{}
	engine, emb, store := newEngine(ret, &mockGenerator{})

	summary, err := engine.IngestDocuments([]string{path})
	if err != nil {
		t.Fatalf("ingest failed: %v", err)
	}
	if summary != "summary" {
		t.Errorf("unexpected summary %q", summary)
	}
	if !emb.prepared {
		t.Error("embedder should be prepared over the corpus")
	}
	if !store.inited || store.upserted == 0 {
		t.Error("store should be initialized and populated")
	}
	if len(ret.indexed) == 0 {
		t.Error("retriever should receive the ingested corpus")
	}
}

func TestIngestDocuments_MissingFile(t *testing.T) {
	engine, _, _ := newEngine(&mockRetriever{}, &mockGenerator{})
	if _, err := engine.IngestDocuments([]string{"/nonexistent/x.txt"}); err == nil {
		t.Fatal("expected error for unreadable input")
	}
}

func TestAsk_EmptyQuery(t *testing.T) {
	ret := &mockRetriever{}
	engine, _, _ := newEngine(ret, &mockGenerator{answer: "hi"})

	for _, q := range []string{"", "   ", "\t\n"} {
		_, err := engine.Ask(q)
		if !errors.Is(err, domain.ErrEmptyQuery) {
			t.Errorf("query %q: expected ErrEmptyQuery, got %v", q, err)
		}
	}
	if ret.calls != 0 {
		t.Errorf("empty queries must not dispatch retrieval, got %d calls", ret.calls)
	}
}

func TestAsk_ReturnsGeneratedAnswer(t *testing.T) {
	ret := &mockRetriever{results: []domain.SearchResult{{Chunk: domain.Chunk{ChunkID: "d1:0", Text: "context"}, Score: 0.9}}}
	engine, _, _ := newEngine(ret, &mockGenerator{answer: "the answer"})

	answer, err := engine.Ask("a question")
	if err != nil {
		t.Fatalf("ask failed: %v", err)
	}
	if answer != "the answer" {
		t.Errorf("unexpected answer %q", answer)
	}
	if ret.calls != 1 {
		t.Errorf("expected exactly one retrieval call, got %d", ret.calls)
	}
}

func TestAsk_RetrievalError(t *testing.T) {
	ret := &mockRetriever{err: domain.ErrNoDocuments}
	engine, _, _ := newEngine(ret, &mockGenerator{})

	_, err := engine.Ask("question")
	if !errors.Is(err, domain.ErrNoDocuments) {
		t.Fatalf("expected wrapped ErrNoDocuments, got %v", err)
	}
}

func TestAsk_GenerationError(t *testing.T) {
	ret := &mockRetriever{results: []domain.SearchResult{{Chunk: domain.Chunk{Text: "x"}}}}
	genErr := errors.New("model unavailable")
	engine, _, _ := newEngine(ret, &mockGenerator{err: genErr})

	_, err := engine.Ask("question")
	if !errors.Is(err, genErr) {
		t.Fatalf("expected wrapped generation error, got %v", err)
	}
}
