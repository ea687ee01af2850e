package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Overwrite policy modes for chain ids already present in the details cache.
const (
	OverwriteAsk    = "ask"
	OverwriteAlways = "always"
	OverwriteNever  = "never"
)

// Config holds all configuration for the application.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Logger   LoggerConfig   `mapstructure:"logger"`
	Registry RegistryConfig `mapstructure:"registry"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Checker  CheckerConfig  `mapstructure:"checker"`
	Sources  SourcesConfig  `mapstructure:"sources"`
	Pipeline PipelineConfig `mapstructure:"pipeline"`
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

// RegistryConfig holds configuration for the contract registry source.
// Source is either an http(s) URL or a local file path.
type RegistryConfig struct {
	Source string `mapstructure:"source"`
}

// CacheConfig holds configuration for the on-disk chain details cache.
type CacheConfig struct {
	Path string `mapstructure:"path"`
}

// CheckerConfig holds settings for the RPC liveness checker.
type CheckerConfig struct {
	ProbeTimeout  time.Duration `mapstructure:"probe_timeout"`
	ProbeCacheTTL time.Duration `mapstructure:"probe_cache_ttl"`
}

// SourcesConfig holds the remote data source locations.
type SourcesConfig struct {
	ChainsBaseURL      string        `mapstructure:"chains_base_url"`
	IconsBaseURL       string        `mapstructure:"icons_base_url"`
	CryptoIconsBaseURL string        `mapstructure:"crypto_icons_base_url"`
	TrustWalletBaseURL string        `mapstructure:"trust_wallet_base_url"`
	DefaultIconURL     string        `mapstructure:"default_icon_url"`
	IPFSGateway        string        `mapstructure:"ipfs_gateway"`
	RequestTimeout     time.Duration `mapstructure:"request_timeout"`
}

// PipelineConfig holds settings for the enrichment run itself.
type PipelineConfig struct {
	RequestInterval time.Duration `mapstructure:"request_interval"`
	Overwrite       string        `mapstructure:"overwrite"`
}

// Load reads configuration from file and environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("app.name", "chaindetails")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("registry.source", "contracts.json")
	v.SetDefault("cache.path", "chainDetails.json")
	v.SetDefault("checker.probe_timeout", "5s")
	v.SetDefault("checker.probe_cache_ttl", "30m")
	v.SetDefault("sources.chains_base_url", "https://raw.githubusercontent.com/ethereum-lists/chains/master/_data/chains")
	v.SetDefault("sources.icons_base_url", "https://raw.githubusercontent.com/ethereum-lists/chains/master/_data/icons")
	v.SetDefault("sources.crypto_icons_base_url", "https://raw.githubusercontent.com/spothq/cryptocurrency-icons/master/svg/color")
	v.SetDefault("sources.trust_wallet_base_url", "https://raw.githubusercontent.com/trustwallet/assets/8ee07e9d791bec6c3ada3cfac73ddfdc4f4a40b7/blockchains")
	v.SetDefault("sources.default_icon_url", "https://raw.githubusercontent.com/spothq/cryptocurrency-icons/master/svg/color/generic.svg")
	v.SetDefault("sources.ipfs_gateway", "https://ipfs.io/ipfs/")
	v.SetDefault("sources.request_timeout", "15s")
	v.SetDefault("pipeline.request_interval", "1s")
	v.SetDefault("pipeline.overwrite", OverwriteAsk)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			fmt.Printf("Warning: Config file not found in %s or '.', using defaults/env vars\n", configPath)
		}
	}

	v.SetEnvPrefix("CHAINDETAILS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Pipeline.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c PipelineConfig) validate() error {
	switch c.Overwrite {
	case OverwriteAsk, OverwriteAlways, OverwriteNever:
		return nil
	default:
		return fmt.Errorf("invalid pipeline.overwrite mode %q (want %s, %s or %s)",
			c.Overwrite, OverwriteAsk, OverwriteAlways, OverwriteNever)
	}
}

// RemoteSource reports whether the registry source is fetched over HTTP
// rather than read from a local file.
func (c RegistryConfig) RemoteSource() bool {
	return strings.HasPrefix(c.Source, "https://") || strings.HasPrefix(c.Source, "http://")
}
