package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dushebaa/chaindetails/internal/adapter/prompt"
	"github.com/dushebaa/chaindetails/internal/adapter/repository"
	"github.com/dushebaa/chaindetails/internal/config"
	"github.com/dushebaa/chaindetails/internal/logger"
	"github.com/dushebaa/chaindetails/internal/usecase"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath       string
		overwriteMode string
	)

	cmd := &cobra.Command{
		Use:   "chaindetails",
		Short: "Enrich registry chain ids with RPC, explorer, faucet and icon metadata",
		Long: "chaindetails reads the contract registry, fetches metadata for every " +
			"chain id from public data sources, keeps only live RPC endpoints, " +
			"resolves a display icon per chain and merges the result into the " +
			"local chainDetails.json cache.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfgPath, overwriteMode)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "configs", "directory containing config.yaml")
	cmd.Flags().StringVar(&overwriteMode, "overwrite", "",
		"overwrite policy for chain ids already cached (ask|always|never)")

	return cmd
}

func run(cfgPath, overwriteMode string) error {
	// --- Configuration ---
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Failed to load configuration from %s: %v", cfgPath, err)
		return err
	}
	if overwriteMode != "" {
		cfg.Pipeline.Overwrite = overwriteMode
	}

	// --- Logger ---
	zlog, err := logger.NewLogger(cfg.Logger)
	if err != nil {
		log.Printf("Failed to setup logger: %v", err)
		return err
	}
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Dependency Injection (Manual) ---
	contractsRepo := repository.NewContractsRepo(cfg.Registry, cfg.Sources, zlog)
	chainsRepo := repository.NewChainsRepo(cfg.Sources, zlog)
	rpcChecker := repository.NewRPCChecker(cfg.Checker, zlog)
	iconSources := repository.NewIconSources(cfg.Sources, zlog)
	detailsStore := repository.NewDetailsStore(cfg.Cache, zlog)

	overwritePolicy, err := prompt.NewOverwritePolicy(cfg.Pipeline.Overwrite, zlog)
	if err != nil {
		zlog.Error("Invalid overwrite policy", zap.Error(err))
		return err
	}

	resolver := usecase.NewIconResolver(iconSources, cfg.Sources, zlog)
	enricher := usecase.NewEnrichUseCase(
		contractsRepo,
		chainsRepo,
		rpcChecker,
		resolver,
		detailsStore,
		overwritePolicy,
		zlog,
		cfg.Pipeline,
	)

	summary, err := enricher.Run(ctx)
	if err != nil {
		zlog.Error("Enrichment run failed", zap.Error(err))
		color.New(color.FgRed).Fprintf(os.Stderr, "Run failed: %v\n", err)
		return err
	}

	color.New(color.FgGreen, color.Bold).Printf("Done. Processed %d of %d chain ids", summary.Processed, summary.Registry)
	fmt.Printf(" (%d skipped, %d failed, %d testnets). Cache now holds %d records.\n",
		summary.Skipped, summary.Failed, summary.Testnets, summary.Cached)
	return nil
}
