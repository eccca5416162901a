package domain

// Document represents a single text file loaded into the system.
type Document struct {
	ID      string
	Path    string
	Content string
}

// Chunk is a semantically meaningful part of a document used for indexing.
// Path names the source file the chunk was cut from.
type Chunk struct {
	DocumentID string
	ChunkID    string
	Path       string
	Text       string
	Index      int
}

// SearchResult represents a matching chunk with a relevance score.
type SearchResult struct {
	Chunk Chunk
	Score float64
}

// Embedder converts free text into a numeric vector representation.
// Implementations may require a preparation phase over the corpus.
type Embedder interface {
	Name() string
	Prepare(corpus []string) error
	Dimension() int
	Embed(text string) ([]float64, error)
}

// Chunker splits documents into chunks suitable for retrieval indexing.
type Chunker interface {
	Chunk(document Document) ([]Chunk, error)
}

// Retriever returns the chunks most relevant to a query, best first.
// Implementations must not fail for a well-formed non-empty query against a
// populated index; querying an empty index yields ErrNoDocuments.
type Retriever interface {
	RelevantDocuments(query string) ([]SearchResult, error)
}

// Generator synthesizes an answer to a query from retrieved context.
type Generator interface {
	Generate(query string, results []SearchResult) (string, error)
}

// Summarizer produces a brief summary of the provided text.
type Summarizer interface {
	Summarize(text string, maxSentences int) (string, error)
}

// ChatEngine defines the operations exposed by the application core.
type ChatEngine interface {
	IngestDocuments(paths []string) (summary string, err error)
	Ask(query string) (answer string, err error)
}
