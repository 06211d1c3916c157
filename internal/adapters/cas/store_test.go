package cas_test

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nest/internal/adapters/cas"
	"go.trai.ch/nest/internal/core/domain"
)

func TestStore_PutGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build_info.json")
	s, err := cas.NewStore(path)
	require.NoError(t, err)

	info := domain.StepInfo{
		Project:     "umbrella",
		Step:        "compile",
		Fingerprint: "abc123",
		ConfigMtime: 42,
		CompletedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, s.Put("umbrella/compile", info))

	got, err := s.Get("umbrella/compile")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, info, *got)
}

func TestStore_GetAbsent(t *testing.T) {
	s, err := cas.NewStore(filepath.Join(t.TempDir(), "build_info.json"))
	require.NoError(t, err)

	got, err := s.Get("nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "build_info.json")

	s1, err := cas.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s1.Put("k", domain.StepInfo{Project: "p", Step: "s", Fingerprint: "f"}))

	s2, err := cas.NewStore(path)
	require.NoError(t, err)
	got, err := s2.Get("k")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "f", got.Fingerprint)
}

func TestStore_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build_info.json")
	s, err := cas.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Put("k", domain.StepInfo{Fingerprint: "f"}))

	require.NoError(t, s.Clear())

	got, err := s.Get("k")
	require.NoError(t, err)
	assert.Nil(t, got)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	// Clearing an already-empty store is fine.
	require.NoError(t, s.Clear())
}

func TestStore_ConcurrentPutsAllPersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build_info.json")
	s, err := cas.NewStore(path)
	require.NoError(t, err)

	// Concurrent puts must not interleave marshal and write, or the
	// file would end up carrying an older snapshot.
	const n = 16
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := fmt.Sprintf("proj/step-%d", i)
			assert.NoError(t, s.Put(key, domain.StepInfo{Step: key, Fingerprint: "f"}))
		}()
	}
	wg.Wait()

	reloaded, err := cas.NewStore(path)
	require.NoError(t, err)
	for i := range n {
		got, err := reloaded.Get(fmt.Sprintf("proj/step-%d", i))
		require.NoError(t, err)
		assert.NotNil(t, got, "record %d missing from persisted store", i)
	}
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build_info.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := cas.NewStore(path)
	require.Error(t, err)
}
