package interfaces

import "context"

// Document is the raw result of a document read. Data is untrusted: stored
// payloads may predate the current section shape or be partially corrupted,
// so consumers are expected to normalize before use.
type Document struct {
	Exists bool
	Data   map[string]any
}

// SetOptions control document write behaviour.
type SetOptions struct {
	// MergeExistingFields preserves stored fields that are absent from the
	// written value instead of replacing the document wholesale.
	MergeExistingFields bool
}

// DocumentStore abstracts the document database used to persist section
// content. Implementations own durability and single-key read-after-write
// consistency; concurrent writers follow last-writer-wins semantics.
type DocumentStore interface {
	Get(ctx context.Context, key string) (Document, error)
	Set(ctx context.Context, key string, value map[string]any, opts SetOptions) error
}
