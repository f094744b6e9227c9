package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PreservesInsertionOrder(t *testing.T) {
	store := NewStore()
	a := NewDocument("first", Metadata{})
	b := NewDocument("second", Metadata{})
	c := NewDocument("third", Metadata{})

	store.Add(a, b)
	store.Add(c)

	require.Equal(t, 3, store.Len())
	assert.Same(t, a, store.At(0))
	assert.Same(t, b, store.At(1))
	assert.Same(t, c, store.At(2))

	all := store.All()
	require.Len(t, all, 3)
	assert.Same(t, a, all[0])
}

func TestStore_Empty(t *testing.T) {
	store := NewStore()
	assert.Equal(t, 0, store.Len())
	assert.Empty(t, store.All())
}
