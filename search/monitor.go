package search

import "github.com/poiesic/rowctx/core"

// RetrievalMonitor provides hooks to observe the retrieval pipeline.
// Implement this interface to track intermediate stages during retrieval.
type RetrievalMonitor interface {
	Start(query string)
	AfterExpansion(expanded string)
	AfterScoring(scores []float64)
	AfterBoost(scores []float64)
	Finish(results []core.RankedDocument)
}

// noopMonitor is a no-op implementation of RetrievalMonitor
type noopMonitor struct{}

var _ RetrievalMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                 {}
func (n *noopMonitor) AfterExpansion(_ string)        {}
func (n *noopMonitor) AfterScoring(_ []float64)       {}
func (n *noopMonitor) AfterBoost(_ []float64)         {}
func (n *noopMonitor) Finish(_ []core.RankedDocument) {}
