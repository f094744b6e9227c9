package index

import "github.com/poiesic/rowctx/core"

// Snapshot is an immutable index state: a vocabulary, its idf weights, and
// one L2-normalized sparse row per document in store order. A snapshot is
// never patched; rebuilds replace it wholesale, so holders of an old
// snapshot may keep reading it safely while a refit is in flight.
type Snapshot struct {
	docs       []*core.Document
	vocabulary map[string]int
	idf        []float64
	matrix     []Vector
	tok        *tokenizer
}

// Len returns the number of indexed documents.
// It always equals the size of the document collection the snapshot was
// fitted over.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.docs)
}

// VocabularySize returns the number of vocabulary entries.
func (s *Snapshot) VocabularySize() int {
	if s == nil {
		return 0
	}
	return len(s.vocabulary)
}

// Documents returns the indexed documents in store order.
// The returned slice must not be modified.
func (s *Snapshot) Documents() []*core.Document {
	if s == nil {
		return nil
	}
	return s.docs
}

// Row returns the embedding vector for the document at position i.
func (s *Snapshot) Row(i int) Vector { return s.matrix[i] }

// Transform maps a query string into the snapshot's vector space without
// altering the vocabulary. Tokens absent from the vocabulary contribute
// zero weight; a query with no known tokens yields the empty vector.
func (s *Snapshot) Transform(text string) Vector {
	if s == nil || len(s.vocabulary) == 0 {
		return Vector{}
	}
	counts := make(map[string]int)
	for _, term := range s.tok.terms(text) {
		counts[term]++
	}
	return weigh(counts, s.vocabulary, s.idf)
}

// Similarities computes the cosine similarity between the query vector and
// every document row. Rows and query are unit vectors, so cosine is the
// plain dot product; scores land in [0, 1] since all weights are
// non-negative. No document is excluded a priori.
func (s *Snapshot) Similarities(query Vector) []float64 {
	if s == nil {
		return nil
	}
	scores := make([]float64, len(s.matrix))
	for i, row := range s.matrix {
		scores[i] = query.Dot(row)
	}
	return scores
}
