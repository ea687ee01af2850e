package usecase

import (
	"context"
	"time"

	"github.com/dushebaa/chaindetails/internal/entity"
)

//go:generate mockgen -destination=mocks/mock_interfaces.go -package=mocks . RegistryLoader,ChainDetailRepository,RPCChecker,IconSource,DetailsStore,OverwritePolicy

// RegistryLoader defines the interface for loading the contract registry,
// the authoritative list of chain ids to enrich.
type RegistryLoader interface {
	Load(ctx context.Context) (*entity.ContractRegistry, error)
}

// ChainDetailRepository defines the interface for fetching per-chain
// metadata documents.
type ChainDetailRepository interface {
	GetChainDetails(ctx context.Context, chainID string) (entity.ChainRecord, error)
}

// RPCChecker defines the interface for checking RPC endpoint liveness.
type RPCChecker interface {
	CheckRPC(ctx context.Context, rpcURL string) (bool, time.Duration, error)
}

// IconSource defines the interface for a single remote icon source. Lookup
// returns apperrors.ErrNotFound when the source has no icon for the name.
type IconSource interface {
	Name() string
	Lookup(ctx context.Context, name string) (entity.IconDescriptor, error)
}

// DetailsStore defines the interface for the persisted chain details cache.
type DetailsStore interface {
	Load(ctx context.Context) (entity.ChainDetailsCache, error)
	Save(ctx context.Context, cache entity.ChainDetailsCache) error
}

// OverwritePolicy decides whether a chain id already present in the cache
// should be refreshed.
type OverwritePolicy interface {
	ConfirmOverwrite(chainID string) (bool, error)
}

// EnrichUseCase defines the interface for the enrichment pipeline.
type EnrichUseCase interface {
	Run(ctx context.Context) (*RunSummary, error)
}

// RunSummary reports what a single enrichment run did.
type RunSummary struct {
	Registry  int
	Testnets  int
	Processed int
	Skipped   int
	Failed    int
	Cached    int
}
