package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/dushebaa/chaindetails/internal/config"
	"github.com/dushebaa/chaindetails/internal/entity"
	"github.com/dushebaa/chaindetails/internal/pkg/apperrors"
)

// IconResolver finds a display icon for a chain by trying a fixed priority
// list of remote sources for each candidate name. Resolution is exhaustive:
// if every name fails on every source, a default descriptor is returned, so
// a record never ends up without an icon.
type IconResolver struct {
	sources     []IconSource
	defaultIcon entity.IconDescriptor
	logger      *zap.Logger
}

func NewIconResolver(sources []IconSource, cfg config.SourcesConfig, logger *zap.Logger) *IconResolver {
	return &IconResolver{
		sources:     sources,
		defaultIcon: entity.IconDescriptor{URL: cfg.DefaultIconURL, Format: "png"},
		logger:      logger.Named("IconResolver"),
	}
}

// Resolve returns the icon for a chain. An icon already present on the
// existing record is returned as-is without any network traffic; once
// resolved, icons are never re-fetched.
func (r *IconResolver) Resolve(ctx context.Context, names []string, existing entity.ChainRecord) entity.IconDescriptor {
	if icon, ok := existing.Icon(); ok {
		r.logger.Debug("Icon already resolved", zap.String("url", icon.URL))
		return icon
	}

	for _, name := range names {
		for _, source := range r.sources {
			icon, err := source.Lookup(ctx, name)
			if err != nil {
				if !errors.Is(err, apperrors.ErrNotFound) {
					r.logger.Debug("Icon source lookup failed",
						zap.String("source", source.Name()),
						zap.String("name", name),
						zap.Error(err))
				}
				continue
			}
			r.logger.Info("Resolved icon",
				zap.String("source", source.Name()),
				zap.String("name", name),
				zap.String("url", icon.URL))
			return icon
		}
	}

	r.logger.Warn("No icon found for any candidate name, using default",
		zap.Strings("names", names))
	return r.defaultIcon
}
