package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickbench/bench"
)

func sample(name string, avg time.Duration) bench.Result {
	return bench.Result{
		Name:     name,
		Sizes:    []int{25, 100},
		Averages: []time.Duration{avg, 4 * avg},
		Failures: []int{0, 1},
	}
}

// openAll 세 백엔드를 모두 연다 (bbolt 는 임시 파일)
func openAll(t *testing.T) map[string]Store {
	t.Helper()

	stores := map[string]Store{}
	for _, cfg := range []Config{
		{Backend: BackendBolt, Path: filepath.Join(t.TempDir(), "results.db")},
		{Backend: BackendBadger, InMemory: true},
		{Backend: BackendPebble, InMemory: true},
	} {
		s, err := Open(cfg)
		require.NoError(t, err, cfg.Backend)
		t.Cleanup(func() { s.Close() })
		stores[cfg.Backend] = s
	}
	return stores
}

func TestStoreSaveLoadList(t *testing.T) {
	for backend, s := range openAll(t) {
		t.Run(backend, func(t *testing.T) {
			require.NoError(t, s.Save(sample("b", 20), sample("a", 10)))

			got, err := s.Load("a")
			require.NoError(t, err)
			assert.Equal(t, sample("a", 10), got)

			// 덮어쓰기
			require.NoError(t, s.Save(sample("b", 30)))

			all, err := s.List()
			require.NoError(t, err)
			require.Len(t, all, 2)
			assert.Equal(t, "a", all[0].Name)
			assert.Equal(t, sample("b", 30), all[1])
		})
	}
}

func TestStoreNotFound(t *testing.T) {
	for backend, s := range openAll(t) {
		t.Run(backend, func(t *testing.T) {
			_, err := s.Load("missing")
			assert.ErrorIs(t, err, ErrNotFound)

			all, err := s.List()
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestStorePersistsOnDisk(t *testing.T) {
	dir := t.TempDir()
	for _, cfg := range []Config{
		{Backend: BackendBolt, Path: filepath.Join(dir, "results.db")},
		{Backend: BackendBadger, Path: filepath.Join(dir, "badger")},
		{Backend: BackendPebble, Path: filepath.Join(dir, "pebble")},
	} {
		t.Run(cfg.Backend, func(t *testing.T) {
			s, err := Open(cfg)
			require.NoError(t, err)
			require.NoError(t, s.Save(sample("Default", 1500)))
			require.NoError(t, s.Close())

			s, err = Open(cfg)
			require.NoError(t, err)
			defer s.Close()

			got, err := s.Load("Default")
			require.NoError(t, err)
			assert.Equal(t, sample("Default", 1500), got)

			size, err := DiskUsage(cfg.Backend, cfg.Path)
			require.NoError(t, err)
			assert.Positive(t, size)
		})
	}
}

func TestOpenErrors(t *testing.T) {
	_, err := Open(Config{Backend: "leveldb", Path: "x"})
	assert.ErrorIs(t, err, ErrUnknownBackend)

	_, err = Open(Config{Backend: BackendBolt, InMemory: true})
	assert.ErrorIs(t, err, ErrNoPath)

	_, err = Open(Config{Backend: BackendPebble})
	assert.ErrorIs(t, err, ErrNoPath)
}
