package loader

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"docchat/internal/domain"
)

// Load reads the given paths into documents. Each path may be a glob pattern;
// only .txt files are accepted. File contents are treated as UTF-8 text and
// documents are immutable once returned.
func Load(paths []string) ([]domain.Document, error) {
	var documents []domain.Document
	for _, p := range paths {
		matches, _ := filepath.Glob(p)
		if matches == nil {
			matches = []string{p}
		}
		for _, m := range matches {
			if !strings.HasSuffix(strings.ToLower(m), ".txt") {
				continue
			}
			data, err := os.ReadFile(m)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", m, err)
			}
			documents = append(documents, domain.Document{
				ID:      hashString(m),
				Path:    m,
				Content: string(data),
			})
		}
	}
	if len(documents) == 0 {
		return nil, fmt.Errorf("no .txt documents found: %w", domain.ErrNoDocuments)
	}
	return documents, nil
}

func hashString(s string) string {
	h := sha1.Sum([]byte(s))
	return hex.EncodeToString(h[:8])
}
