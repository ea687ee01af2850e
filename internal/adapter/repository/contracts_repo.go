package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/dushebaa/chaindetails/internal/config"
	"github.com/dushebaa/chaindetails/internal/entity"
	"github.com/dushebaa/chaindetails/internal/pkg/apperrors"
	"github.com/dushebaa/chaindetails/internal/usecase"
)

// Compile-time check
var _ usecase.RegistryLoader = (*contractsRepo)(nil)

// contractsRepo loads the contract registry either from a remote URL or a
// local file, depending on how the source is configured.
type contractsRepo struct {
	client  *fasthttp.Client
	cfg     config.RegistryConfig
	timeout time.Duration
	logger  *zap.Logger
}

func NewContractsRepo(cfg config.RegistryConfig, sources config.SourcesConfig, logger *zap.Logger) usecase.RegistryLoader {
	return &contractsRepo{
		client:  &fasthttp.Client{},
		cfg:     cfg,
		timeout: sources.RequestTimeout,
		logger:  logger.Named("ContractsRepo"),
	}
}

func (r *contractsRepo) Load(ctx context.Context) (*entity.ContractRegistry, error) {
	var (
		body []byte
		err  error
	)

	if r.cfg.RemoteSource() {
		body, err = r.loadRemote(ctx)
	} else {
		body, err = r.loadFile()
	}
	if err != nil {
		return nil, err
	}

	var registry entity.ContractRegistry
	if err := json.Unmarshal(body, &registry); err != nil {
		r.logger.Error("Failed to parse contract registry", zap.Error(err))
		return nil, fmt.Errorf("%w: failed to parse contract registry: %v", apperrors.ErrInvalidInput, err)
	}

	r.logger.Info("Loaded contract registry",
		zap.String("source", r.cfg.Source),
		zap.Int("chains", registry.Len()))
	return &registry, nil
}

func (r *contractsRepo) loadRemote(ctx context.Context) ([]byte, error) {
	r.logger.Debug("Fetching contract registry", zap.String("url", r.cfg.Source))

	status, body, err := doGet(ctx, r.client, r.cfg.Source, r.timeout)
	if err != nil {
		r.logger.Error("Failed to fetch contract registry", zap.Error(err))
		return nil, fmt.Errorf("%w: failed to fetch contract registry: %v",
			apperrors.ErrExternalServiceFailure, err)
	}
	if status != fasthttp.StatusOK {
		r.logger.Error("Contract registry returned non-OK status", zap.Int("statusCode", status))
		return nil, fmt.Errorf("%w: contract registry returned status %d",
			apperrors.ErrExternalServiceFailure, status)
	}
	return body, nil
}

func (r *contractsRepo) loadFile() ([]byte, error) {
	r.logger.Debug("Reading contract registry file", zap.String("path", r.cfg.Source))

	body, err := os.ReadFile(r.cfg.Source)
	if err != nil {
		r.logger.Error("Failed to read contract registry file", zap.Error(err))
		return nil, fmt.Errorf("%w: failed to read contract registry file: %v",
			apperrors.ErrExternalServiceFailure, err)
	}
	return body, nil
}
