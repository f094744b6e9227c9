package search

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/poiesic/rowctx/core"
	"github.com/poiesic/rowctx/index"
)

// SnapshotSource provides the current immutable index snapshot.
// Implementations may swap snapshots between calls; a Searcher reads the
// source once per retrieval so a single query always sees one snapshot.
type SnapshotSource interface {
	Snapshot() *index.Snapshot
}

// Searcher retrieves the top-matching documents for a natural-language
// query: the query is expanded, projected into the snapshot's vector space,
// scored with cosine similarity, boosted with context heuristics, and
// ranked.
type Searcher struct {
	source SnapshotSource
	rules  Rules
	logger *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithRules sets custom expansion and boost rules.
// Default is DefaultRules().
func WithRules(rules Rules) Option {
	return func(s *Searcher) error {
		s.rules = rules
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher over the given snapshot source.
func NewSearcher(source SnapshotSource, opts ...Option) (*Searcher, error) {
	if source == nil {
		return nil, ErrSnapshotSourceRequired
	}

	s := &Searcher{
		source: source,
		rules:  DefaultRules(),
		logger: slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Retrieve returns up to k documents ranked by boosted relevance score.
// An empty index or a query with no vocabulary overlap yields an empty
// result, never an error.
func (s *Searcher) Retrieve(query string, k int) []core.RankedDocument {
	return s.RetrieveWithMonitor(query, k, nil)
}

// RetrieveWithMonitor retrieves documents while reporting each stage of the
// pipeline to the monitor.
func (s *Searcher) RetrieveWithMonitor(query string, k int, monitor RetrievalMonitor) []core.RankedDocument {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)

	snapshot := s.source.Snapshot()
	if snapshot.Len() == 0 || k <= 0 {
		monitor.Finish(nil)
		return nil
	}

	// 1. Expand the query before vectorization
	expanded := ExpandQuery(query, s.rules)
	monitor.AfterExpansion(expanded)

	// 2. Project into the snapshot's vector space and score every document
	queryVec := snapshot.Transform(expanded)
	raw := snapshot.Similarities(queryVec)
	monitor.AfterScoring(raw)

	// 3. Boost with lexical-overlap heuristics against the original query
	boosted := Boost(raw, strings.ToLower(query), snapshot.Documents(), s.rules.Boosts)
	monitor.AfterBoost(boosted)

	// 4. Rank: stable descending sort, drop non-positive scores, keep top-k
	results := rank(boosted, snapshot.Documents(), k)

	s.logger.Debug("retrieval complete",
		"query", query, "hits", len(results), "indexed", snapshot.Len())
	monitor.Finish(results)

	return results
}

// rank sorts documents by boosted score descending with ties broken by
// original index order, drops documents scoring zero or below, and returns
// at most k results.
func rank(scores []float64, docs []*core.Document, k int) []core.RankedDocument {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	results := make([]core.RankedDocument, 0, min(k, len(order)))
	for _, idx := range order {
		if len(results) == k {
			break
		}
		if scores[idx] <= 0 {
			break // sorted descending, nothing positive remains
		}
		results = append(results, core.RankedDocument{
			Document: docs[idx],
			Score:    scores[idx],
		})
	}
	return results
}
