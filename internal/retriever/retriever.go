// Package retriever implements the Retriever contract on top of an embedder
// and a vector store, with a lexical fallback for queries the embedder cannot
// represent.
package retriever

import (
	"fmt"
	"math"
	"sort"

	"docchat/internal/domain"
	"docchat/internal/textutil"
	"docchat/internal/vectorstore"
)

// Vector retrieves chunks by embedding similarity. It keeps the raw chunk
// corpus around so that zero-vector queries can still be ranked lexically.
type Vector struct {
	embedder domain.Embedder
	store    vectorstore.Storage
	chunks   []domain.Chunk
	topK     int
}

func New(embedder domain.Embedder, store vectorstore.Storage, topK int) *Vector {
	if topK <= 0 {
		topK = 5
	}
	return &Vector{embedder: embedder, store: store, topK: topK}
}

// Index records the corpus used for lexical fallback ranking. It is called
// once per ingest, after the store has been populated.
func (r *Vector) Index(chunks []domain.Chunk) {
	r.chunks = chunks
}

// RelevantDocuments returns the chunks most relevant to the query, best first.
// Querying before any ingest yields domain.ErrNoDocuments.
func (r *Vector) RelevantDocuments(query string) ([]domain.SearchResult, error) {
	if len(r.chunks) == 0 {
		return nil, domain.ErrNoDocuments
	}
	vec, err := r.embedder.Embed(query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if isZero(vec) {
		return r.lexical(query), nil
	}
	results, err := r.store.Search(vec, r.topK)
	if err != nil {
		return nil, fmt.Errorf("vector search: %w", err)
	}
	// A populated store returning only zero scores means the query shares no
	// vocabulary with the index; fall back to set overlap.
	allZero := true
	for _, res := range results {
		if res.Score > 1e-9 {
			allZero = false
			break
		}
	}
	if allZero {
		return r.lexical(query), nil
	}
	return results, nil
}

func (r *Vector) lexical(query string) []domain.SearchResult {
	qset := textutil.TokenSet(query)
	results := make([]domain.SearchResult, len(r.chunks))
	for i, ch := range r.chunks {
		results[i] = domain.SearchResult{Chunk: ch, Score: ochiai(qset, ch.Text)}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if r.topK < len(results) {
		results = results[:r.topK]
	}
	return results
}

func isZero(vec []float64) bool {
	for _, v := range vec {
		if v != 0 {
			return false
		}
	}
	return true
}

// ochiai computes |A∩B| / sqrt(|A||B|) over distinct token sets.
func ochiai(qset map[string]struct{}, text string) float64 {
	tset := textutil.TokenSet(text)
	if len(qset) == 0 || len(tset) == 0 {
		return 0
	}
	inter := 0
	for t := range tset {
		if _, ok := qset[t]; ok {
			inter++
		}
	}
	return float64(inter) / (math.Sqrt(float64(len(qset))) * math.Sqrt(float64(len(tset))))
}
