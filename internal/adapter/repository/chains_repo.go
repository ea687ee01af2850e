package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/dushebaa/chaindetails/internal/config"
	"github.com/dushebaa/chaindetails/internal/entity"
	"github.com/dushebaa/chaindetails/internal/pkg/apperrors"
	"github.com/dushebaa/chaindetails/internal/usecase"
)

// Compile-time check
var _ usecase.ChainDetailRepository = (*chainsRepo)(nil)

// chainsRepo fetches per-chain metadata documents from the ethereum-lists
// chains registry (one eip155-<id>.json file per chain).
type chainsRepo struct {
	client  *fasthttp.Client
	baseURL string
	timeout time.Duration
	logger  *zap.Logger
}

func NewChainsRepo(cfg config.SourcesConfig, logger *zap.Logger) usecase.ChainDetailRepository {
	return &chainsRepo{
		client:  &fasthttp.Client{},
		baseURL: cfg.ChainsBaseURL,
		timeout: cfg.RequestTimeout,
		logger:  logger.Named("ChainsRepo"),
	}
}

func (r *chainsRepo) GetChainDetails(ctx context.Context, chainID string) (entity.ChainRecord, error) {
	url := fmt.Sprintf("%s/eip155-%s.json", r.baseURL, chainID)
	r.logger.Debug("Fetching chain details", zap.String("url", url))

	status, body, err := doGet(ctx, r.client, url, r.timeout)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch details for chain %s: %v",
			apperrors.ErrExternalServiceFailure, chainID, err)
	}
	if status != fasthttp.StatusOK {
		return nil, fmt.Errorf("%w: no details document for chain %s (status %d)",
			apperrors.ErrNotFound, chainID, status)
	}

	// UseNumber keeps numeric fields intact through the generic mapping so
	// the persisted cache round-trips without float formatting drift.
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var record entity.ChainRecord
	if err := dec.Decode(&record); err != nil {
		r.logger.Warn("Failed to parse chain details document",
			zap.String("chainId", chainID), zap.Error(err))
		return nil, fmt.Errorf("%w: failed to parse details for chain %s: %v",
			apperrors.ErrExternalServiceFailure, chainID, err)
	}

	return record, nil
}
