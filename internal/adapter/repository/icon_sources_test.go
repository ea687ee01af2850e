package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dushebaa/chaindetails/internal/config"
	"github.com/dushebaa/chaindetails/internal/pkg/apperrors"
	"github.com/dushebaa/chaindetails/internal/usecase"
)

func newTestIconSources(baseURL string) []usecase.IconSource {
	return NewIconSources(config.SourcesConfig{
		IconsBaseURL:       baseURL + "/icons",
		CryptoIconsBaseURL: baseURL + "/crypto",
		TrustWalletBaseURL: baseURL + "/tw",
		IPFSGateway:        "https://ipfs.io/ipfs/",
		RequestTimeout:     2 * time.Second,
	}, zap.NewNop())
}

func TestNewIconSources_PriorityOrder(t *testing.T) {
	sources := newTestIconSources("http://example.invalid")
	require.Len(t, sources, 3)
	assert.Equal(t, "ethereum-lists", sources[0].Name())
	assert.Equal(t, "cryptocurrency-icons", sources[1].Name())
	assert.Equal(t, "trustwallet", sources[2].Name())
}

func TestIconIndexSource_RewritesIPFSURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/icons/ethereum.json", r.URL.Path)
		w.Write([]byte(`[{"url": "ipfs://QmdwQDr6vmBtXmK2TmknkEuZNoaDqTasFdZdu3DRw8b2wt", "width": 512, "height": 512, "format": "png"}]`))
	}))
	defer server.Close()

	source := newTestIconSources(server.URL)[0]

	icon, err := source.Lookup(context.Background(), "ethereum")
	require.NoError(t, err)
	assert.Equal(t, "https://ipfs.io/ipfs/QmdwQDr6vmBtXmK2TmknkEuZNoaDqTasFdZdu3DRw8b2wt", icon.URL)
	assert.Equal(t, "png", icon.Format)
}

func TestIconIndexSource_MissAndEmptyDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/icons/empty.json" {
			w.Write([]byte(`[]`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	source := newTestIconSources(server.URL)[0]

	_, err := source.Lookup(context.Background(), "unknown")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = source.Lookup(context.Background(), "empty")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCryptoIconsSource_Lookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/crypto/eth.svg" {
			w.Write([]byte(`<svg/>`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	source := newTestIconSources(server.URL)[1]

	icon, err := source.Lookup(context.Background(), "eth")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%s/crypto/eth.svg", server.URL), icon.URL)
	assert.Equal(t, "svg", icon.Format)

	_, err = source.Lookup(context.Background(), "unknown")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTrustWalletSource_Lookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/tw/polygon/info/logo.png" {
			w.Write([]byte("png-bytes"))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	source := newTestIconSources(server.URL)[2]

	icon, err := source.Lookup(context.Background(), "polygon")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%s/tw/polygon/info/logo.png", server.URL), icon.URL)
	assert.Equal(t, "png", icon.Format)

	_, err = source.Lookup(context.Background(), "unknown")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
