package core

// Store is an append-only ordered collection of documents.
// A document's position in the store is its stable identity for the lifetime
// of the process. Deletion is not supported.
//
// Store is not safe for concurrent mutation; callers that add documents from
// multiple goroutines must serialize externally.
type Store struct {
	docs []*Document
}

// NewStore creates an empty document store.
func NewStore() *Store {
	return &Store{}
}

// Add appends documents to the store, preserving insertion order.
func (s *Store) Add(docs ...*Document) {
	s.docs = append(s.docs, docs...)
}

// Len returns the number of documents in the store.
func (s *Store) Len() int { return len(s.docs) }

// At returns the document at position i.
func (s *Store) At(i int) *Document { return s.docs[i] }

// All returns the documents in insertion order.
// The returned slice must not be modified.
func (s *Store) All() []*Document { return s.docs }
