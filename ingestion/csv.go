package ingestion

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/rowctx/core"
)

// Loader reads tabular sources and converts rows into documents.
// Row conversion runs on a worker pool; output order always matches source
// row order.
type Loader struct {
	sampleSize int
	poolSize   int
	logger     *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader) error

// WithSampleSize restricts loading to a deterministic random subset when the
// source exceeds size rows. Zero disables sampling.
func WithSampleSize(size int) Option {
	return func(l *Loader) error {
		if size < 0 {
			return ErrInvalidSampleSize
		}
		l.sampleSize = size
		return nil
	}
}

// WithPoolSize sets the worker pool size for row conversion.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(l *Loader) error {
		if size < 1 {
			size = 1
		}
		l.poolSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) error {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
		return nil
	}
}

// NewLoader creates a CSV row loader.
func NewLoader(opts ...Option) (*Loader, error) {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	l := &Loader{
		poolSize: poolSize,
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// LoadCSV reads a CSV file and converts each row into a document. The first
// record is the header. Each row's content joins its non-empty fields as
// "col: value" pairs separated by " | "; metadata carries the source path,
// the original row index, and one entry per non-empty field in column
// order. Rows with no usable fields are skipped individually, never fatal.
func (l *Loader) LoadCSV(path string) ([]*core.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %w", ErrSourceUnreadable, err)
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Skip the malformed row, keep the rest of the file
			l.logger.Warn("skipping malformed row", "source", path, "err", err)
			continue
		}
		rows = append(rows, record)
	}

	selected := sampleIndices(len(rows), l.sampleSize)
	if len(selected) < len(rows) {
		l.logger.Info("sampled rows from source",
			"source", path, "sampled", len(selected), "total", len(rows))
	}

	docs := l.convert(path, header, rows, selected)

	l.logger.Info("created documents from CSV", "source", path, "documents", len(docs))
	return docs, nil
}

// convert turns the selected rows into documents on the worker pool.
// Each worker writes into its own slot so document order matches selection
// order regardless of scheduling.
func (l *Loader) convert(source string, header []string, rows [][]string, selected []int) []*core.Document {
	slots := make([]*core.Document, len(selected))

	pool, err := ants.NewPool(l.poolSize)
	if err != nil {
		// Fall back to inline conversion
		for slot, rowIdx := range selected {
			slots[slot] = rowDocument(source, header, rows[rowIdx], rowIdx)
		}
		return compact(slots)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for slot, rowIdx := range selected {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			slots[slot] = rowDocument(source, header, rows[rowIdx], rowIdx)
		}
		if err := pool.Submit(task); err != nil {
			task()
		}
	}
	wg.Wait()

	return compact(slots)
}

// rowDocument flattens one row to text. Empty cells are treated as missing
// and skipped. Returns nil when the row has no usable fields.
func rowDocument(source string, header []string, record []string, rowIndex int) *core.Document {
	metadata := core.NewMetadata(
		core.Field{Key: core.MetaSource, Value: source},
		core.Field{Key: core.MetaRowIndex, Value: strconv.Itoa(rowIndex)},
	)

	var parts []string
	for i, col := range header {
		if i >= len(record) {
			break
		}
		value := record[i]
		if value == "" {
			continue
		}
		parts = append(parts, col+": "+value)
		metadata.Set(col, value)
	}
	if len(parts) == 0 {
		return nil
	}

	return core.NewDocument(strings.Join(parts, " | "), metadata)
}

func compact(docs []*core.Document) []*core.Document {
	out := docs[:0]
	for _, doc := range docs {
		if doc != nil {
			out = append(out, doc)
		}
	}
	return out
}
