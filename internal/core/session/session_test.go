package session

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Resolve(t *testing.T) {
	base := t.TempDir()
	s := New("id", base, time.Now())

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"relative", "notes.txt", filepath.Join(base, "notes.txt")},
		{"dot", ".", base},
		{"parent", "..", filepath.Dir(base)},
		{"absolute", "/etc/hosts", "/etc/hosts"},
		{"unclean absolute", "/etc/../etc/hosts", "/etc/hosts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Resolve(tt.in))
		})
	}
}

func TestSession_SetDir(t *testing.T) {
	s := New("id", "/tmp", time.Now())
	s.SetDir("/var/log/")

	assert.Equal(t, "/var/log", s.Dir())
	assert.Equal(t, "/var/log/syslog", s.Resolve("syslog"))
}

func TestManager_CreateAndGet(t *testing.T) {
	base := t.TempDir()
	m := NewManager(base)

	s := m.Create()
	require.NotEmpty(t, s.ID)
	assert.Equal(t, base, s.Dir())

	got, ok := m.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)

	_, ok = m.Get("")
	assert.False(t, ok)
}

func TestManager_Resolve(t *testing.T) {
	m := NewManager(t.TempDir())
	existing := m.Create()

	t.Run("known token", func(t *testing.T) {
		s, created := m.Resolve(existing.ID)
		assert.False(t, created)
		assert.Same(t, existing, s)
	})

	t.Run("unknown token gets a fresh session", func(t *testing.T) {
		s, created := m.Resolve("stale-token")
		assert.True(t, created)
		assert.NotEqual(t, "stale-token", s.ID)
	})

	t.Run("empty token", func(t *testing.T) {
		_, created := m.Resolve("")
		assert.True(t, created)
	})
}

func TestManager_CreateRetriesOnCollision(t *testing.T) {
	m := NewManager(t.TempDir())
	ids := []string{"dup", "dup", "unique"}
	m.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	first := m.Create()
	second := m.Create()

	assert.Equal(t, "dup", first.ID)
	assert.Equal(t, "unique", second.ID)
	assert.Equal(t, 2, m.Len())
}

func TestSession_IndependentDirectories(t *testing.T) {
	m := NewManager("/tmp")
	a := m.Create()
	b := m.Create()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); a.SetDir("/var") }()
	go func() { defer wg.Done(); b.SetDir("/etc") }()
	wg.Wait()

	assert.Equal(t, "/var", a.Dir())
	assert.Equal(t, "/etc", b.Dir())
}
