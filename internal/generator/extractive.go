package generator

import (
	"fmt"
	"strings"

	"docchat/internal/domain"
	"docchat/internal/textutil"
)

// Extractive answers by quoting the best-matching chunk. It needs no API
// credential, which keeps the default configuration fully offline.
type Extractive struct{}

func NewExtractive() *Extractive { return &Extractive{} }

// Generate returns the best sentence span of the top result, cited by source.
func (g *Extractive) Generate(query string, results []domain.SearchResult) (string, error) {
	if len(results) == 0 {
		return "", domain.ErrNoDocuments
	}
	top := results[0]
	best := bestSentence(top.Chunk.Text, query)
	if best == "" {
		best = strings.TrimSpace(top.Chunk.Text)
	}
	return fmt.Sprintf("%s (from %s)", best, sourceLabel(top.Chunk)), nil
}

// bestSentence picks the sentence with the largest token overlap with the query.
func bestSentence(text, query string) string {
	sentences := textutil.Sentences(text)
	if len(sentences) == 0 {
		return ""
	}
	qset := textutil.TokenSet(query)
	bestIdx := 0
	bestScore := -1
	for i, s := range sentences {
		score := 0
		for t := range textutil.TokenSet(s) {
			if _, ok := qset[t]; ok {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}
	return strings.TrimSpace(sentences[bestIdx])
}
