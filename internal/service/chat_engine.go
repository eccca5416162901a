// Package service wires the ingest and question-answering pipeline together.
package service

import (
	"fmt"
	"strings"

	"docchat/internal/domain"
	"docchat/internal/loader"
	"docchat/internal/vectorstore"
)

// CorpusRetriever is the engine-side retriever contract. Index records the
// ingested corpus so fallback ranking has something to rank.
type CorpusRetriever interface {
	domain.Retriever
	Index(chunks []domain.Chunk)
}

// Engine implements domain.ChatEngine.
type Engine struct {
	chunker             domain.Chunker
	embedder            domain.Embedder
	store               vectorstore.Storage
	retriever           CorpusRetriever
	generator           domain.Generator
	summarizer          domain.Summarizer
	summaryMaxSentences int
}

func NewEngine(
	chunker domain.Chunker,
	embedder domain.Embedder,
	store vectorstore.Storage,
	ret CorpusRetriever,
	generator domain.Generator,
	summarizer domain.Summarizer,
	summaryMaxSentences int,
) *Engine {
	return &Engine{
		chunker:             chunker,
		embedder:            embedder,
		store:               store,
		retriever:           ret,
		generator:           generator,
		summarizer:          summarizer,
		summaryMaxSentences: summaryMaxSentences,
	}
}

// IngestDocuments loads, chunks, embeds, and indexes the given paths, and
// returns a short summary of the ingested text.
func (e *Engine) IngestDocuments(paths []string) (string, error) {
	documents, err := loader.Load(paths)
	if err != nil {
		return "", err
	}
	var allChunks []domain.Chunk
	var allTexts []string
	var fullText strings.Builder
	for _, d := range documents {
		chunks, err := e.chunker.Chunk(d)
		if err != nil {
			return "", fmt.Errorf("chunk %s: %w", d.Path, err)
		}
		for _, ch := range chunks {
			allChunks = append(allChunks, ch)
			allTexts = append(allTexts, ch.Text)
		}
		fullText.WriteString("\n")
		fullText.WriteString(d.Content)
	}
	if len(allChunks) == 0 {
		return "", fmt.Errorf("documents contain no text: %w", domain.ErrNoDocuments)
	}
	if err := e.embedder.Prepare(allTexts); err != nil {
		return "", fmt.Errorf("prepare embedder: %w", err)
	}
	// Remote embedders only learn their dimension on first use
	vectors := make([][]float64, len(allChunks))
	for i := range allChunks {
		vec, err := e.embedder.Embed(allChunks[i].Text)
		if err != nil {
			return "", fmt.Errorf("embed chunk %s: %w", allChunks[i].ChunkID, err)
		}
		vectors[i] = vec
	}
	if err := e.store.Init(e.embedder.Dimension()); err != nil {
		return "", fmt.Errorf("init index: %w", err)
	}
	if err := e.store.Clear(); err != nil {
		return "", fmt.Errorf("clear index: %w", err)
	}
	if err := e.store.Upsert(allChunks, vectors); err != nil {
		return "", fmt.Errorf("build index: %w", err)
	}
	e.retriever.Index(allChunks)

	summary, err := e.summarizer.Summarize(fullText.String(), e.summaryMaxSentences)
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	return summary, nil
}

// Ask answers a free-text question over the ingested documents. Empty or
// whitespace-only queries are rejected with domain.ErrEmptyQuery before any
// dispatch happens.
func (e *Engine) Ask(query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", domain.ErrEmptyQuery
	}
	results, err := e.retriever.RelevantDocuments(query)
	if err != nil {
		return "", fmt.Errorf("retrieve: %w", err)
	}
	answer, err := e.generator.Generate(query, results)
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}
	return answer, nil
}
