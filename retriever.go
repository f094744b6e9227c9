// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package rowctx builds a lexical search index over tabular records and
// retrieves the top-matching rows for a natural-language query, producing a
// ranked context block for downstream prompting of a language model.
package rowctx

import (
	"log/slog"
	"sync/atomic"

	"github.com/poiesic/rowctx/core"
	"github.com/poiesic/rowctx/index"
	"github.com/poiesic/rowctx/prompt"
	"github.com/poiesic/rowctx/search"
)

// Retriever ties the document store, the lexical vectorizer, and the
// searcher together. It always exposes exactly one immutable index
// snapshot; adding documents rebuilds the snapshot over the whole store and
// swaps it atomically, so concurrent readers keep a consistent view while a
// rebuild is in flight. AddDocuments itself must not be called concurrently.
type Retriever struct {
	store      *core.Store
	vectorizer *index.Vectorizer
	snapshot   atomic.Pointer[index.Snapshot]
	searcher   *search.Searcher
	logger     *slog.Logger
}

// RetrieverOption configures a Retriever.
type RetrieverOption func(*retrieverOptions)

type retrieverOptions struct {
	vectorizerOpts []index.Option
	rules          *search.Rules
	logger         *slog.Logger
}

// WithVectorizerOptions forwards options to the underlying vectorizer.
func WithVectorizerOptions(opts ...index.Option) RetrieverOption {
	return func(o *retrieverOptions) {
		o.vectorizerOpts = append(o.vectorizerOpts, opts...)
	}
}

// WithRules sets custom expansion and boost rules.
// Default is search.DefaultRules().
func WithRules(rules search.Rules) RetrieverOption {
	return func(o *retrieverOptions) {
		o.rules = &rules
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) RetrieverOption {
	return func(o *retrieverOptions) {
		o.logger = logger
	}
}

// NewRetriever creates a retriever with an empty document store.
func NewRetriever(opts ...RetrieverOption) (*Retriever, error) {
	// Apply options
	options := &retrieverOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}

	vectorizer, err := index.NewVectorizer(options.vectorizerOpts...)
	if err != nil {
		return nil, err
	}

	r := &Retriever{
		store:      core.NewStore(),
		vectorizer: vectorizer,
		logger:     options.logger,
	}

	// Seed an empty snapshot so retrieval before any AddDocuments is a
	// normal empty result, not an error.
	empty, err := vectorizer.Fit(nil)
	if err != nil {
		return nil, err
	}
	r.snapshot.Store(empty)

	searcherOpts := []search.Option{search.WithLogger(options.logger)}
	if options.rules != nil {
		searcherOpts = append(searcherOpts, search.WithRules(*options.rules))
	}
	searcher, err := search.NewSearcher(r, searcherOpts...)
	if err != nil {
		return nil, err
	}
	r.searcher = searcher

	return r, nil
}

// Snapshot returns the current immutable index snapshot.
func (r *Retriever) Snapshot() *index.Snapshot {
	return r.snapshot.Load()
}

// AddDocuments appends documents to the store and refits the index over the
// entire collection. Every addition is a full rebuild; the embedding matrix
// is replaced wholesale, never patched.
func (r *Retriever) AddDocuments(docs ...*core.Document) error {
	kept := make([]*core.Document, 0, len(docs))
	for _, doc := range docs {
		if err := core.ValidateDocument(doc); err != nil {
			r.logger.Warn("skipping invalid document", "err", err)
			continue
		}
		kept = append(kept, doc)
	}
	r.store.Add(kept...)

	snapshot, err := r.vectorizer.Fit(r.store.All())
	if err != nil {
		return err
	}
	r.snapshot.Store(snapshot)

	r.logger.Info("index rebuilt",
		"documents", snapshot.Len(), "vocabulary", snapshot.VocabularySize())
	return nil
}

// Len returns the number of documents in the store.
func (r *Retriever) Len() int { return r.store.Len() }

// Retrieve returns up to k documents ranked by boosted relevance.
func (r *Retriever) Retrieve(query string, k int) []core.RankedDocument {
	return r.searcher.Retrieve(query, k)
}

// RetrieveWithMonitor retrieves documents while reporting pipeline stages
// to the monitor.
func (r *Retriever) RetrieveWithMonitor(query string, k int, monitor search.RetrievalMonitor) []core.RankedDocument {
	return r.searcher.RetrieveWithMonitor(query, k, monitor)
}

// FormatContext renders ranked results and optional sidecar metadata into
// the final prompt string.
func (r *Retriever) FormatContext(results []core.RankedDocument, query string, sidecar core.Metadata) string {
	return prompt.FormatContext(results, query, sidecar)
}
