package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"docchat/internal/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_ReadsTextFiles(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "essay.txt", "A short essay. It has two sentences.")
	writeFile(t, dir, "skipped.md", "# not a txt file")

	docs, err := Load([]string{filepath.Join(dir, "*")})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
	if docs[0].Path != p {
		t.Errorf("unexpected path %q", docs[0].Path)
	}
	if docs[0].Content != "A short essay. It has two sentences." {
		t.Errorf("unexpected content %q", docs[0].Content)
	}
	if docs[0].ID == "" {
		t.Error("document ID should be set")
	}
}

func TestLoad_UnreadableFile(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load([]string{filepath.Join(dir, "missing.txt")}); err == nil {
		t.Fatal("expected error for unreadable file")
	}
}

func TestLoad_NoDocuments(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.md", "markdown only")

	_, err := Load([]string{filepath.Join(dir, "*")})
	if !errors.Is(err, domain.ErrNoDocuments) {
		t.Fatalf("expected ErrNoDocuments, got %v", err)
	}
}

func TestLoad_StableIDs(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "doc.txt", "content")

	a, err := Load([]string{p})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	b, err := Load([]string{p})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if a[0].ID != b[0].ID {
		t.Errorf("IDs should be stable per path: %q vs %q", a[0].ID, b[0].ID)
	}
}
