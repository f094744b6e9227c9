package core

import (
	"bytes"
	"encoding/binary"
	"encoding/json"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs across rebuilds.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Reserved metadata keys attached to every ingested row.
const (
	MetaSource   = "source"
	MetaRowIndex = "row_index"
)

// Field is a single metadata key/value pair.
type Field struct {
	Key   string
	Value string
}

// Metadata is an ordered mapping from field name to string value.
// Insertion order is preserved, matching the column order of the source row.
type Metadata struct {
	fields []Field
}

// NewMetadata creates Metadata from fields in the given order.
func NewMetadata(fields ...Field) Metadata {
	return Metadata{fields: fields}
}

// Set appends the key/value pair, or replaces the value if the key exists.
func (m *Metadata) Set(key, value string) {
	for i := range m.fields {
		if m.fields[i].Key == key {
			m.fields[i].Value = value
			return
		}
	}
	m.fields = append(m.fields, Field{Key: key, Value: value})
}

// Get returns the value for key and whether it was present.
func (m Metadata) Get(key string) (string, bool) {
	for _, f := range m.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// Len returns the number of fields.
func (m Metadata) Len() int { return len(m.fields) }

// Fields returns the fields in insertion order.
// The returned slice must not be modified.
func (m Metadata) Fields() []Field { return m.fields }

// MarshalJSON renders the metadata as a JSON object with keys in insertion
// order. Standard map marshaling would sort keys and lose the column order.
func (m Metadata) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range m.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Document is a single tabular record flattened to text.
// Content holds the row's fields joined as "col: value" pairs separated by " | ".
// Documents are immutable once created.
type Document struct {
	Content     string
	Metadata    Metadata
	Fingerprint ID // Deterministic content hash, stable across index rebuilds
}

// NewDocument creates a Document and computes its fingerprint.
func NewDocument(content string, metadata Metadata) *Document {
	return &Document{
		Content:     content,
		Metadata:    metadata,
		Fingerprint: IDFromContent(content),
	}
}

// RankedDocument is a retrieval hit: a document with its boosted relevance score.
type RankedDocument struct {
	Document *Document
	Score    float64
}
