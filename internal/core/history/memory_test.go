package history

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_AppendThenList(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)

	require.NoError(t, store.Append(ctx, "s1", Entry{Command: "pwd", Output: "/tmp", Succeeded: true}))
	require.NoError(t, store.Append(ctx, "s1", Entry{Command: "cat nope", Succeeded: false}))

	entries, err := store.List(ctx, "s1", 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	last := entries[len(entries)-1]
	assert.Equal(t, "cat nope", last.Command, "most recent entry should be last")
	assert.True(t, last.Failed())
	assert.NotEmpty(t, last.ID)
	assert.False(t, last.Timestamp.IsZero())
}

func TestMemoryStore_ListLimit(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)

	for i := range 25 {
		require.NoError(t, store.Append(ctx, "s1", Entry{Command: fmt.Sprintf("cmd-%d", i)}))
	}

	entries, err := store.List(ctx, "s1", DisplayLimit)
	require.NoError(t, err)
	require.Len(t, entries, DisplayLimit)
	assert.Equal(t, "cmd-5", entries[0].Command)
	assert.Equal(t, "cmd-24", entries[DisplayLimit-1].Command)
}

func TestMemoryStore_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)

	require.NoError(t, store.Append(ctx, "a", Entry{Command: "ls"}))

	entries, err := store.List(ctx, "b", 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, 1, store.Sessions())
}

func TestMemoryStore_Retention(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(3)

	for i := range 5 {
		require.NoError(t, store.Append(ctx, "s1", Entry{Command: fmt.Sprintf("cmd-%d", i)}))
	}

	entries, err := store.List(ctx, "s1", 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "cmd-2", entries[0].Command)
}

func TestMemoryStore_KeepsProvidedFields(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)
	ts := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	require.NoError(t, store.Append(ctx, "s1", Entry{ID: "fixed", Timestamp: ts, Command: "pwd"}))

	entries, err := store.List(ctx, "s1", 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "fixed", entries[0].ID)
	assert.Equal(t, ts, entries[0].Timestamp)
}

func TestMemoryStore_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)
	require.NoError(t, store.Append(ctx, "s1", Entry{Command: "pwd"}))

	entries, err := store.List(ctx, "s1", 0)
	require.NoError(t, err)
	entries[0].Command = "mutated"

	again, err := store.List(ctx, "s1", 0)
	require.NoError(t, err)
	assert.Equal(t, "pwd", again[0].Command)
}

func TestMemoryStore_EmptySessionID(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)

	assert.ErrorIs(t, store.Append(ctx, "", Entry{}), ErrNoSession)
	_, err := store.List(ctx, "", 0)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestMemoryStore_ConcurrentAppend(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)

	var wg sync.WaitGroup
	for s := range 4 {
		for i := range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = store.Append(ctx, fmt.Sprintf("s%d", s), Entry{Command: fmt.Sprintf("cmd-%d", i)})
			}()
		}
	}
	wg.Wait()

	for s := range 4 {
		entries, err := store.List(ctx, fmt.Sprintf("s%d", s), 0)
		require.NoError(t, err)
		assert.Len(t, entries, 50)
	}
}
