package domain

import "errors"

// Sentinel errors shared across the pipeline. Callers match them with
// errors.Is after unwrapping.
var (
	// ErrEmptyQuery is returned when a query is empty or whitespace-only.
	ErrEmptyQuery = errors.New("query is empty")

	// ErrMissingCredential is returned when a hosted-model component is
	// configured but its API key env var is unset.
	ErrMissingCredential = errors.New("missing API credential")

	// ErrNoDocuments is returned when retrieval runs against an empty index.
	ErrNoDocuments = errors.New("no documents indexed")
)
