package search

import (
	"testing"

	"github.com/poiesic/rowctx/core"
	"github.com/poiesic/rowctx/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticSource serves one fixed snapshot, standing in for the facade.
type staticSource struct {
	snap *index.Snapshot
}

func (s *staticSource) Snapshot() *index.Snapshot { return s.snap }

func fitSource(t *testing.T, docs ...*core.Document) *staticSource {
	t.Helper()
	v, err := index.NewVectorizer()
	require.NoError(t, err)
	snap, err := v.Fit(docs)
	require.NoError(t, err)
	return &staticSource{snap: snap}
}

func healthDocs() []*core.Document {
	return []*core.Document{
		doc("State: CO | Measure: Obesity | Data_Value: 31.2"),
		doc("State: TX | Measure: Diabetes | Data_Value: 10.1"),
		doc("State: FL | Measure: Obesity | Data_Value: 28.0"),
	}
}

func TestNewSearcher(t *testing.T) {
	source := fitSource(t)

	t.Run("valid configuration", func(t *testing.T) {
		searcher, err := NewSearcher(source)
		require.NoError(t, err)
		assert.NotNil(t, searcher)
	})

	t.Run("with custom rules", func(t *testing.T) {
		searcher, err := NewSearcher(source, WithRules(DefaultRules()))
		require.NoError(t, err)
		assert.NotNil(t, searcher)
	})

	t.Run("with nil logger falls back to default", func(t *testing.T) {
		searcher, err := NewSearcher(source, WithLogger(nil))
		require.NoError(t, err)
		assert.NotNil(t, searcher)
	})

	t.Run("nil snapshot source", func(t *testing.T) {
		_, err := NewSearcher(nil)
		assert.Equal(t, ErrSnapshotSourceRequired, err)
	})
}

func TestRetrieve_EmptyIndex(t *testing.T) {
	searcher, err := NewSearcher(fitSource(t))
	require.NoError(t, err)

	results := searcher.Retrieve("anything", 5)
	assert.Empty(t, results)
}

func TestRetrieve_NilSnapshot(t *testing.T) {
	searcher, err := NewSearcher(&staticSource{})
	require.NoError(t, err)

	results := searcher.Retrieve("anything", 5)
	assert.Empty(t, results)
}

func TestRetrieve_ObesityInColorado(t *testing.T) {
	docs := healthDocs()
	searcher, err := NewSearcher(fitSource(t, docs...))
	require.NoError(t, err)

	results := searcher.Retrieve("What is the obesity rate in Colorado?", 5)

	// The CO obesity row wins on state alias plus health term; the FL
	// obesity row follows on the health term alone; the TX diabetes row
	// shares no vocabulary with the query and is filtered out.
	require.Len(t, results, 2)
	assert.Same(t, docs[0], results[0].Document)
	assert.Same(t, docs[2], results[1].Document)
	assert.Greater(t, results[0].Score, results[1].Score)
}

func TestRetrieve_Deterministic(t *testing.T) {
	searcher, err := NewSearcher(fitSource(t, healthDocs()...))
	require.NoError(t, err)

	first := searcher.Retrieve("obesity in colorado", 5)
	second := searcher.Retrieve("obesity in colorado", 5)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Same(t, first[i].Document, second[i].Document)
		assert.Equal(t, first[i].Score, second[i].Score)
	}
}

func TestRetrieve_NeverReturnsNonPositive(t *testing.T) {
	searcher, err := NewSearcher(fitSource(t, healthDocs()...))
	require.NoError(t, err)

	results := searcher.Retrieve("obesity statistics", 10)
	for _, result := range results {
		assert.Greater(t, result.Score, 0.0)
	}
}

func TestRetrieve_RespectsTopK(t *testing.T) {
	searcher, err := NewSearcher(fitSource(t, healthDocs()...))
	require.NoError(t, err)

	t.Run("at most k results", func(t *testing.T) {
		results := searcher.Retrieve("obesity", 1)
		assert.Len(t, results, 1)
	})

	t.Run("k larger than positive subset returns the subset sorted", func(t *testing.T) {
		results := searcher.Retrieve("obesity", 50)
		require.NotEmpty(t, results)
		assert.LessOrEqual(t, len(results), 3)
		for i := 1; i < len(results); i++ {
			assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
		}
	})

	t.Run("non-positive k", func(t *testing.T) {
		assert.Empty(t, searcher.Retrieve("obesity", 0))
		assert.Empty(t, searcher.Retrieve("obesity", -3))
	})
}

// recordingMonitor captures every pipeline callback for assertions.
type recordingMonitor struct {
	started  string
	expanded string
	raw      []float64
	boosted  []float64
	finished []core.RankedDocument
	calls    []string
}

func (m *recordingMonitor) Start(query string) {
	m.started = query
	m.calls = append(m.calls, "start")
}

func (m *recordingMonitor) AfterExpansion(expanded string) {
	m.expanded = expanded
	m.calls = append(m.calls, "expand")
}

func (m *recordingMonitor) AfterScoring(scores []float64) {
	m.raw = scores
	m.calls = append(m.calls, "score")
}

func (m *recordingMonitor) AfterBoost(scores []float64) {
	m.boosted = scores
	m.calls = append(m.calls, "boost")
}

func (m *recordingMonitor) Finish(results []core.RankedDocument) {
	m.finished = results
	m.calls = append(m.calls, "finish")
}

func TestRetrieveWithMonitor(t *testing.T) {
	searcher, err := NewSearcher(fitSource(t, healthDocs()...))
	require.NoError(t, err)

	monitor := &recordingMonitor{}
	results := searcher.RetrieveWithMonitor("obesity in colorado", 5, monitor)

	assert.Equal(t, []string{"start", "expand", "score", "boost", "finish"}, monitor.calls)
	assert.Equal(t, "obesity in colorado", monitor.started)
	assert.Contains(t, monitor.expanded, "obese")
	assert.Len(t, monitor.raw, 3)
	assert.Len(t, monitor.boosted, 3)
	assert.Equal(t, results, monitor.finished)

	// Raw cosine scores stay in the unit interval before boosting.
	for _, score := range monitor.raw {
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0+1e-9)
	}
}

func TestRetrieveWithMonitor_EmptyIndex(t *testing.T) {
	searcher, err := NewSearcher(fitSource(t))
	require.NoError(t, err)

	monitor := &recordingMonitor{}
	results := searcher.RetrieveWithMonitor("anything", 5, monitor)

	assert.Empty(t, results)
	assert.Equal(t, []string{"start", "finish"}, monitor.calls)
}
