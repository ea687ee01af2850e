package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/dushebaa/chaindetails/internal/config"
	"github.com/dushebaa/chaindetails/internal/entity"
	"github.com/dushebaa/chaindetails/internal/usecase"
)

// Compile-time check
var _ usecase.DetailsStore = (*detailsStore)(nil)

// detailsStore persists the chain details cache as a single tab-indented
// JSON document. The file is both the input and the output of every run.
type detailsStore struct {
	path   string
	logger *zap.Logger
}

func NewDetailsStore(cfg config.CacheConfig, logger *zap.Logger) usecase.DetailsStore {
	return &detailsStore{
		path:   cfg.Path,
		logger: logger.Named("DetailsStore"),
	}
}

func (s *detailsStore) Load(ctx context.Context) (entity.ChainDetailsCache, error) {
	body, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Info("No existing details cache, starting empty", zap.String("path", s.path))
			return entity.ChainDetailsCache{}, nil
		}
		return nil, fmt.Errorf("failed to read details cache %s: %w", s.path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var cache entity.ChainDetailsCache
	if err := dec.Decode(&cache); err != nil {
		return nil, fmt.Errorf("failed to parse details cache %s: %w", s.path, err)
	}

	s.logger.Info("Loaded details cache", zap.String("path", s.path), zap.Int("chains", len(cache)))
	return cache, nil
}

// Save rewrites the whole cache file. The document is written to a temp file
// in the same directory and renamed into place so readers never observe a
// partial write.
func (s *detailsStore) Save(ctx context.Context, cache entity.ChainDetailsCache) error {
	body, err := json.MarshalIndent(cache, "", "\t")
	if err != nil {
		return fmt.Errorf("failed to serialize details cache: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".chaindetails-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp cache file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp cache file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to chmod temp cache file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace details cache %s: %w", s.path, err)
	}

	s.logger.Info("Persisted details cache", zap.String("path", s.path), zap.Int("chains", len(cache)))
	return nil
}
