package kv

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_Get(t *testing.T) {
	s := New[string, int]()

	_, ok := s.Get("missing")
	assert.False(t, ok)
}

func TestStore_GetOrCreate(t *testing.T) {
	s := New[string, int]()

	val, created := s.GetOrCreate("foo", func() int { return 42 })
	assert.True(t, created)
	assert.Equal(t, 42, val)

	// Existing key keeps its value and never calls create.
	val, created = s.GetOrCreate("foo", func() int {
		t.Fatal("create called for existing key")
		return 0
	})
	assert.False(t, created)
	assert.Equal(t, 42, val)

	got, ok := s.Get("foo")
	assert.True(t, ok)
	assert.Equal(t, 42, got)
	assert.Equal(t, 1, s.Len())
}

func TestStore_GetOrCreate_Concurrent(t *testing.T) {
	s := New[string, *int]()

	var calls atomic.Int32
	var wg sync.WaitGroup
	results := make([]*int, 50)

	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = s.GetOrCreate("shared", func() *int {
				calls.Add(1)
				v := i
				return &v
			})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load(), "create should run exactly once")
	for _, r := range results {
		assert.Same(t, results[0], r)
	}
}
