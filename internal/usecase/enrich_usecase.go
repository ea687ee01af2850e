package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/dushebaa/chaindetails/internal/config"
	"github.com/dushebaa/chaindetails/internal/entity"
)

// Compile-time check to ensure enrichUseCase implements EnrichUseCase
var _ EnrichUseCase = (*enrichUseCase)(nil)

type enrichUseCase struct {
	registry   RegistryLoader
	details    ChainDetailRepository
	rpcChecker RPCChecker
	resolver   *IconResolver
	store      DetailsStore
	overwrite  OverwritePolicy
	limiter    *rate.Limiter
	logger     *zap.Logger
}

func NewEnrichUseCase(
	registry RegistryLoader,
	details ChainDetailRepository,
	rpcChecker RPCChecker,
	resolver *IconResolver,
	store DetailsStore,
	overwrite OverwritePolicy,
	logger *zap.Logger,
	cfg config.PipelineConfig,
) EnrichUseCase {
	interval := cfg.RequestInterval
	if interval <= 0 {
		interval = time.Second
	}
	return &enrichUseCase{
		registry:   registry,
		details:    details,
		rpcChecker: rpcChecker,
		resolver:   resolver,
		store:      store,
		overwrite:  overwrite,
		limiter:    rate.NewLimiter(rate.Every(interval), 1),
		logger:     logger.Named("EnrichUseCase"),
	}
}

// Run executes one enrichment pass: load registry, load cache, enrich every
// chain id in registry order, persist the cache. Only registry or cache
// failures abort the run; per-chain failures are skipped.
func (uc *enrichUseCase) Run(ctx context.Context) (*RunSummary, error) {
	registry, err := uc.registry.Load(ctx)
	if err != nil {
		uc.logger.Error("Failed to load contract registry", zap.Error(err))
		return nil, err
	}

	chainIDs := registry.ChainIDs()

	// Testnet ids are reported for diagnostics only; they do not filter
	// which chains get processed.
	testnets := lo.Filter(chainIDs, func(id string, _ int) bool {
		entry, ok := registry.Entry(id)
		return !ok || !entry.Mainnet()
	})
	uc.logger.Info("Loaded contract registry",
		zap.Int("chains", len(chainIDs)),
		zap.Int("testnets", len(testnets)))
	uc.logger.Debug("Testnet chain ids", zap.Strings("chainIds", testnets))

	cache, err := uc.store.Load(ctx)
	if err != nil {
		uc.logger.Error("Failed to load chain details cache", zap.Error(err))
		return nil, err
	}

	summary := &RunSummary{Registry: len(chainIDs), Testnets: len(testnets)}

	for _, chainID := range chainIDs {
		cached, exists := cache[chainID]
		if exists {
			confirmed, err := uc.overwrite.ConfirmOverwrite(chainID)
			if err != nil {
				uc.logger.Error("Overwrite confirmation failed", zap.String("chainId", chainID), zap.Error(err))
				return nil, err
			}
			if !confirmed {
				uc.logger.Info("Keeping cached record", zap.String("chainId", chainID))
				summary.Skipped++
				continue
			}
		}

		// Paced to at most one detail fetch per interval to stay clear of
		// upstream rate limits.
		if err := uc.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		uc.logger.Info("Fetching details", zap.String("chainId", chainID))
		record := uc.fetchChainDetails(ctx, chainID)
		if record == nil {
			summary.Failed++
			continue
		}

		entry, _ := registry.Entry(chainID)
		record.SetMainnet(entry.Mainnet())

		if exists {
			cache[chainID] = entity.MergeRecords(record, cached)
			summary.Processed++
			continue
		}

		record.SetIcon(uc.resolver.Resolve(ctx, candidateNames(record), cached))
		cache[chainID] = record
		summary.Processed++
	}

	if err := uc.store.Save(ctx, cache); err != nil {
		uc.logger.Error("Failed to persist chain details cache", zap.Error(err))
		return nil, err
	}

	summary.Cached = len(cache)
	uc.logger.Info("Run complete",
		zap.Int("processed", summary.Processed),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
		zap.Int("cached", summary.Cached))
	return summary, nil
}

// fetchChainDetails retrieves the metadata document for a chain and keeps
// only the RPC endpoints that pass the liveness check. Returns nil when the
// document cannot be fetched; the caller skips the chain.
func (uc *enrichUseCase) fetchChainDetails(ctx context.Context, chainID string) entity.ChainRecord {
	record, err := uc.details.GetChainDetails(ctx, chainID)
	if err != nil {
		uc.logger.Warn("Skipping chain, details fetch failed",
			zap.String("chainId", chainID), zap.Error(err))
		return nil
	}

	live := lo.Filter(record.RPC(), func(rpcURL string, _ int) bool {
		working, latency, err := uc.rpcChecker.CheckRPC(ctx, rpcURL)
		if err != nil {
			uc.logger.Debug("RPC check failed", zap.String("rpc", rpcURL), zap.Error(err))
			return false
		}
		if working {
			uc.logger.Debug("RPC is working", zap.String("rpc", rpcURL), zap.Duration("latency", latency))
		} else {
			uc.logger.Debug("RPC is not working", zap.String("rpc", rpcURL))
		}
		return working
	})

	record.SetRPC(live)
	record.SetChainID(record.ChainID())

	if len(live) == 0 {
		uc.logger.Warn("No live RPC endpoints found", zap.String("chainId", chainID))
	}

	return record
}

// candidateNames builds the ordered list of display names used to look up an
// icon: icon id, short name variants, full name, chain tag, followed by the
// lowercase form of each.
func candidateNames(record entity.ChainRecord) []string {
	// Some upstream documents carry a snake_case short name.
	altShortName, _ := record["short_name"].(string)

	var names []string
	for _, name := range []string{
		record.IconName(),
		altShortName,
		record.ShortName(),
		record.Name(),
		record.ChainTag(),
	} {
		if name != "" {
			names = append(names, name)
		}
	}

	names = append(names, lo.Map(names, func(name string, _ int) string {
		return strings.ToLower(name)
	})...)
	return lo.Uniq(names)
}
