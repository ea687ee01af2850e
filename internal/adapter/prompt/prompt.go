package prompt

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"go.uber.org/zap"

	"github.com/dushebaa/chaindetails/internal/config"
	"github.com/dushebaa/chaindetails/internal/usecase"
)

// Compile-time checks
var (
	_ usecase.OverwritePolicy = (*alwaysPolicy)(nil)
	_ usecase.OverwritePolicy = (*neverPolicy)(nil)
	_ usecase.OverwritePolicy = (*interactivePolicy)(nil)
)

// NewOverwritePolicy builds the overwrite policy for the configured mode.
// Interactive mode asks the operator on stdin; always/never make the run
// non-interactive for automation.
func NewOverwritePolicy(mode string, logger *zap.Logger) (usecase.OverwritePolicy, error) {
	switch mode {
	case config.OverwriteAlways:
		return &alwaysPolicy{logger: logger.Named("OverwritePolicy")}, nil
	case config.OverwriteNever:
		return &neverPolicy{logger: logger.Named("OverwritePolicy")}, nil
	case config.OverwriteAsk:
		return &interactivePolicy{logger: logger.Named("OverwritePolicy")}, nil
	default:
		return nil, fmt.Errorf("unknown overwrite mode %q", mode)
	}
}

type alwaysPolicy struct {
	logger *zap.Logger
}

func (p *alwaysPolicy) ConfirmOverwrite(chainID string) (bool, error) {
	p.logger.Debug("Overwrite policy: always", zap.String("chainId", chainID))
	return true, nil
}

type neverPolicy struct {
	logger *zap.Logger
}

func (p *neverPolicy) ConfirmOverwrite(chainID string) (bool, error) {
	p.logger.Debug("Overwrite policy: never", zap.String("chainId", chainID))
	return false, nil
}

type interactivePolicy struct {
	logger *zap.Logger
}

func (p *interactivePolicy) ConfirmOverwrite(chainID string) (bool, error) {
	confirm := promptui.Prompt{
		Label:     fmt.Sprintf("Chain id %s already exists in the details cache. Overwrite", chainID),
		IsConfirm: true,
	}

	if _, err := confirm.Run(); err != nil {
		// A plain "n" surfaces as ErrAbort; that is a decline, not a failure.
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, fmt.Errorf("overwrite prompt failed: %w", err)
	}
	return true, nil
}
