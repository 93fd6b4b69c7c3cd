package table

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCache(t *testing.T) (*Cache, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "multipliers.csv")
	require.NoError(t, os.WriteFile(path, []byte("7,396,1.0\n113,396,9.6\n"), 0644))
	return NewCache(NewLoader(false, zap.NewNop()), zap.NewNop()), path
}

func TestCacheMemoizesBySource(t *testing.T) {
	cache, path := newTestCache(t)

	first, err := cache.Get(path)
	require.NoError(t, err)
	second, err := cache.Get(path)
	require.NoError(t, err)

	assert.Same(t, first, second, "repeated Get must not re-read the source")

	hits, misses := cache.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)
}

func TestCacheServesStaleUntilInvalidated(t *testing.T) {
	cache, path := newTestCache(t)

	tbl, err := cache.Get(path)
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Len())

	// Changing the file on disk is invisible until an explicit invalidation.
	require.NoError(t, os.WriteFile(path, []byte("7,396,1.0\n"), 0644))

	cached, err := cache.Get(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cached.Len())

	cache.Invalidate(path)
	fresh, err := cache.Get(path)
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.Len())
}

func TestCacheReload(t *testing.T) {
	cache, path := newTestCache(t)

	_, err := cache.Get(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("30,396,2.5\n"), 0644))

	fresh, err := cache.Reload(path)
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.Len())
	assert.Equal(t, 30, fresh.MinDay())
}

func TestCacheReloadFailureEvicts(t *testing.T) {
	cache, path := newTestCache(t)

	_, err := cache.Get(path)
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))

	_, err = cache.Reload(path)
	var loadErr *DataLoadError
	require.ErrorAs(t, err, &loadErr)

	// The stale table must not come back after a failed reload.
	_, err = cache.Get(path)
	assert.ErrorAs(t, err, &loadErr)
}

func TestCacheLoadError(t *testing.T) {
	cache, _ := newTestCache(t)

	_, err := cache.Get(filepath.Join(t.TempDir(), "missing.csv"))
	var loadErr *DataLoadError
	assert.ErrorAs(t, err, &loadErr)
}
