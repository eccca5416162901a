package generator

import (
	"fmt"
	"strings"

	"docchat/internal/domain"
)

const systemPrompt = "You are a helpful assistant. Answer the question using only the provided context. If the context does not contain the answer, say so."

// buildPrompt assembles the user message: context blocks labeled with their
// source paths, then the question.
func buildPrompt(query string, results []domain.SearchResult) string {
	var sb strings.Builder
	sb.WriteString("Context:\n")
	for _, r := range results {
		fmt.Fprintf(&sb, "[Source %s]\n%s\n\n", sourceLabel(r.Chunk), r.Chunk.Text)
	}
	sb.WriteString("Question: ")
	sb.WriteString(query)
	return sb.String()
}

// sourceLabel prefers the source file path; chunks restored from a store
// payload without one fall back to the chunk ID.
func sourceLabel(c domain.Chunk) string {
	if c.Path != "" {
		return c.Path
	}
	return c.ChunkID
}
