package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dushebaa/chaindetails/internal/config"
	"github.com/dushebaa/chaindetails/internal/entity"
)

func newTestStore(t *testing.T) (*detailsStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chainDetails.json")
	store := NewDetailsStore(config.CacheConfig{Path: path}, zap.NewNop())
	return store.(*detailsStore), path
}

func TestDetailsStore_LoadAbsentFileStartsEmpty(t *testing.T) {
	store, _ := newTestStore(t)

	cache, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, cache)
	assert.Empty(t, cache)
}

func TestDetailsStore_RoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	cache := entity.ChainDetailsCache{
		"1": entity.ChainRecord{
			"chainId": "1",
			"name":    "Ethereum Mainnet",
			"rpc":     []any{"https://rpc.example"},
			"mainnet": true,
			"icon":    map[string]any{"url": "https://icons/eth.svg", "format": "svg"},
		},
		"137": entity.ChainRecord{
			"chainId": "137",
			"name":    "Polygon",
			"rpc":     []any{},
			"mainnet": true,
		},
	}

	require.NoError(t, store.Save(ctx, cache))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, cache, loaded)
}

func TestDetailsStore_SaveUsesTabIndentation(t *testing.T) {
	store, path := newTestStore(t)

	cache := entity.ChainDetailsCache{
		"1": entity.ChainRecord{"chainId": "1"},
	}
	require.NoError(t, store.Save(context.Background(), cache))

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "\n\t\"1\""),
		"expected tab-indented document, got:\n%s", body)
}

func TestDetailsStore_SaveLeavesNoTempFiles(t *testing.T) {
	store, path := newTestStore(t)

	require.NoError(t, store.Save(context.Background(), entity.ChainDetailsCache{}))
	require.NoError(t, store.Save(context.Background(), entity.ChainDetailsCache{
		"1": entity.ChainRecord{"chainId": "1"},
	}))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(path), entries[0].Name())
}

func TestDetailsStore_LoadMalformedFileFails(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := store.Load(context.Background())
	assert.Error(t, err)
}
