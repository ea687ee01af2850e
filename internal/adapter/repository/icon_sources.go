package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/dushebaa/chaindetails/internal/config"
	"github.com/dushebaa/chaindetails/internal/entity"
	"github.com/dushebaa/chaindetails/internal/pkg/apperrors"
	"github.com/dushebaa/chaindetails/internal/usecase"
)

// Compile-time checks
var (
	_ usecase.IconSource = (*iconIndexSource)(nil)
	_ usecase.IconSource = (*cryptoIconsSource)(nil)
	_ usecase.IconSource = (*trustWalletSource)(nil)
)

// NewIconSources returns the icon sources in resolution priority order:
// ethereum-lists icon index, cryptocurrency-icons SVG set, trustwallet PNG
// logo set.
func NewIconSources(cfg config.SourcesConfig, logger *zap.Logger) []usecase.IconSource {
	client := &fasthttp.Client{}
	return []usecase.IconSource{
		&iconIndexSource{
			client:      client,
			baseURL:     cfg.IconsBaseURL,
			ipfsGateway: cfg.IPFSGateway,
			timeout:     cfg.RequestTimeout,
			logger:      logger.Named("IconIndexSource"),
		},
		&cryptoIconsSource{
			client:  client,
			baseURL: cfg.CryptoIconsBaseURL,
			timeout: cfg.RequestTimeout,
			logger:  logger.Named("CryptoIconsSource"),
		},
		&trustWalletSource{
			client:  client,
			baseURL: cfg.TrustWalletBaseURL,
			timeout: cfg.RequestTimeout,
			logger:  logger.Named("TrustWalletSource"),
		},
	}
}

// iconIndexSource resolves icons via the ethereum-lists icon index: a
// per-name JSON array whose first element carries the icon url and format.
type iconIndexSource struct {
	client      *fasthttp.Client
	baseURL     string
	ipfsGateway string
	timeout     time.Duration
	logger      *zap.Logger
}

func (s *iconIndexSource) Name() string { return "ethereum-lists" }

// iconIndexEntry is one element of an ethereum-lists icon document.
type iconIndexEntry struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Format string `json:"format"`
}

func (s *iconIndexSource) Lookup(ctx context.Context, name string) (entity.IconDescriptor, error) {
	url := fmt.Sprintf("%s/%s.json", s.baseURL, name)

	status, body, err := doGet(ctx, s.client, url, s.timeout)
	if err != nil {
		return entity.IconDescriptor{}, fmt.Errorf("%w: icon index fetch failed: %v",
			apperrors.ErrExternalServiceFailure, err)
	}
	if status != fasthttp.StatusOK {
		return entity.IconDescriptor{}, fmt.Errorf("%w: no icon index entry for %q",
			apperrors.ErrNotFound, name)
	}

	var entries []iconIndexEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		s.logger.Warn("Failed to parse icon index document", zap.String("name", name), zap.Error(err))
		return entity.IconDescriptor{}, fmt.Errorf("%w: failed to parse icon index for %q: %v",
			apperrors.ErrExternalServiceFailure, name, err)
	}
	if len(entries) == 0 {
		return entity.IconDescriptor{}, fmt.Errorf("%w: empty icon index for %q",
			apperrors.ErrNotFound, name)
	}

	first := entries[0]
	return entity.IconDescriptor{
		URL:    strings.Replace(first.URL, "ipfs://", s.ipfsGateway, 1),
		Format: first.Format,
	}, nil
}

// cryptoIconsSource resolves icons from the cryptocurrency-icons SVG set,
// one <name>.svg file per currency.
type cryptoIconsSource struct {
	client  *fasthttp.Client
	baseURL string
	timeout time.Duration
	logger  *zap.Logger
}

func (s *cryptoIconsSource) Name() string { return "cryptocurrency-icons" }

func (s *cryptoIconsSource) Lookup(ctx context.Context, name string) (entity.IconDescriptor, error) {
	url := fmt.Sprintf("%s/%s.svg", s.baseURL, name)

	status, _, err := doGet(ctx, s.client, url, s.timeout)
	if err != nil {
		return entity.IconDescriptor{}, fmt.Errorf("%w: crypto icons fetch failed: %v",
			apperrors.ErrExternalServiceFailure, err)
	}
	if status != fasthttp.StatusOK {
		return entity.IconDescriptor{}, fmt.Errorf("%w: no svg icon for %q",
			apperrors.ErrNotFound, name)
	}

	return entity.IconDescriptor{URL: url, Format: "svg"}, nil
}

// trustWalletSource resolves icons from the trustwallet assets repository,
// which keeps a logo.png per blockchain directory.
type trustWalletSource struct {
	client  *fasthttp.Client
	baseURL string
	timeout time.Duration
	logger  *zap.Logger
}

func (s *trustWalletSource) Name() string { return "trustwallet" }

func (s *trustWalletSource) Lookup(ctx context.Context, name string) (entity.IconDescriptor, error) {
	url := fmt.Sprintf("%s/%s/info/logo.png", s.baseURL, name)

	status, _, err := doGet(ctx, s.client, url, s.timeout)
	if err != nil {
		return entity.IconDescriptor{}, fmt.Errorf("%w: trustwallet fetch failed: %v",
			apperrors.ErrExternalServiceFailure, err)
	}
	if status != fasthttp.StatusOK {
		return entity.IconDescriptor{}, fmt.Errorf("%w: no logo for %q",
			apperrors.ErrNotFound, name)
	}

	return entity.IconDescriptor{URL: url, Format: "png"}, nil
}
