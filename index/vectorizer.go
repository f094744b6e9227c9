package index

import (
	"log/slog"
	"math"
	"sort"

	"github.com/poiesic/rowctx/core"
)

// Defaults matching the stock retriever configuration.
const (
	DefaultMaxFeatures = 5000
	DefaultMaxDocFreq  = 0.95
)

// Vectorizer builds immutable index snapshots over a document collection
// using weighted term-frequency vectors.
//
// Weighting is sublinear tf (1 + log(count)) times smoothed idf
// (log((1+D)/(1+d)) + 1); every document vector is L2-normalized so cosine
// similarity reduces to a plain dot product. Fit is a full, non-incremental
// rebuild and is deterministic for a fixed document collection.
type Vectorizer struct {
	maxFeatures int
	maxDocFreq  float64
	tok         *tokenizer
	logger      *slog.Logger
}

// Option configures a Vectorizer.
type Option func(*Vectorizer) error

// WithMaxFeatures caps the vocabulary at the n most frequent terms.
// Default is DefaultMaxFeatures.
func WithMaxFeatures(n int) Option {
	return func(v *Vectorizer) error {
		if n < 1 {
			return ErrInvalidMaxFeatures
		}
		v.maxFeatures = n
		return nil
	}
}

// WithMaxDocFreq excludes terms occurring in more than the given fraction of
// documents. Default is DefaultMaxDocFreq.
func WithMaxDocFreq(f float64) Option {
	return func(v *Vectorizer) error {
		if f <= 0 || f > 1 {
			return ErrInvalidMaxDocFreq
		}
		v.maxDocFreq = f
		return nil
	}
}

// WithNGramRange sets the token n-gram range indexed as vocabulary entries.
// Default is (1, 3).
func WithNGramRange(minN, maxN int) Option {
	return func(v *Vectorizer) error {
		if minN < 1 || maxN < minN {
			return ErrInvalidNGramRange
		}
		v.tok = newTokenizer(minN, maxN)
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(v *Vectorizer) error {
		if logger == nil {
			logger = slog.Default()
		}
		v.logger = logger
		return nil
	}
}

// NewVectorizer creates a vectorizer with the stock configuration.
func NewVectorizer(opts ...Option) (*Vectorizer, error) {
	v := &Vectorizer{
		maxFeatures: DefaultMaxFeatures,
		maxDocFreq:  DefaultMaxDocFreq,
		tok:         newTokenizer(1, 3),
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Fit builds a fresh snapshot over the entire document collection.
// It never updates a previous snapshot; feature indices are stable only
// within the snapshot it returns. An empty collection yields an empty
// snapshot rather than an error.
func (v *Vectorizer) Fit(docs []*core.Document) (*Snapshot, error) {
	if len(docs) == 0 {
		return &Snapshot{tok: v.tok}, nil
	}

	// Per-document term counts, corpus term totals, and document frequencies.
	counts := make([]map[string]int, len(docs))
	total := make(map[string]int)
	df := make(map[string]int)
	for i, doc := range docs {
		tc := make(map[string]int)
		for _, term := range v.tok.terms(doc.Content) {
			tc[term]++
			total[term]++
		}
		for term := range tc {
			df[term]++
		}
		counts[i] = tc
	}

	// Prune near-universal terms, then keep the most frequent maxFeatures.
	maxDF := v.maxDocFreq * float64(len(docs))
	kept := make([]string, 0, len(df))
	for term, d := range df {
		if float64(d) > maxDF {
			continue
		}
		kept = append(kept, term)
	}
	sort.Slice(kept, func(i, j int) bool {
		if total[kept[i]] != total[kept[j]] {
			return total[kept[i]] > total[kept[j]]
		}
		return kept[i] < kept[j]
	})
	if len(kept) > v.maxFeatures {
		kept = kept[:v.maxFeatures]
	}
	sort.Strings(kept)

	vocabulary := make(map[string]int, len(kept))
	idf := make([]float64, len(kept))
	D := float64(len(docs))
	for i, term := range kept {
		vocabulary[term] = i
		// Smoothed IDF
		idf[i] = math.Log((1+D)/(1+float64(df[term]))) + 1.0
	}

	matrix := make([]Vector, len(docs))
	for i := range docs {
		matrix[i] = weigh(counts[i], vocabulary, idf)
	}

	v.logger.Debug("fitted index snapshot",
		"documents", len(docs), "vocabulary", len(kept), "pruned", len(df)-len(kept))

	return &Snapshot{
		docs:       docs,
		vocabulary: vocabulary,
		idf:        idf,
		matrix:     matrix,
		tok:        v.tok,
	}, nil
}

// weigh converts raw term counts into a unit-length sparse weight vector
// over the given vocabulary. Terms outside the vocabulary contribute zero.
func weigh(counts map[string]int, vocabulary map[string]int, idf []float64) Vector {
	type entry struct {
		idx    int
		weight float64
	}
	entries := make([]entry, 0, len(counts))
	for term, count := range counts {
		idx, ok := vocabulary[term]
		if !ok {
			continue
		}
		// Sublinear term-frequency scaling
		entries = append(entries, entry{idx, (1 + math.Log(float64(count))) * idf[idx]})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].idx < entries[j].idx })

	vec := Vector{
		Indices: make([]int, len(entries)),
		Values:  make([]float64, len(entries)),
	}
	for i, e := range entries {
		vec.Indices[i] = e.idx
		vec.Values[i] = e.weight
	}
	vec.normalize()
	return vec
}
