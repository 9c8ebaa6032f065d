package impl

import (
	"fmt"

	"conecta/config"
	domainerrors "conecta/internal/domain/errors"
)

const fallbackMaxPageLimit = 1000

func maxPageLimit(cfg *config.Config) int {
	if cfg == nil || cfg.Directory == nil || cfg.Directory.MaxPageLimit <= 0 {
		return fallbackMaxPageLimit
	}

	return cfg.Directory.MaxPageLimit
}

// normalizePage rejects negative bounds and clamps limit to max.
func normalizePage(offset, limit, max int) (int, int, error) {
	if offset < 0 {
		return 0, 0, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("skip: must be >= 0, got %d", offset))
	}
	if limit < 0 {
		return 0, 0, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("limit: must be >= 0, got %d", limit))
	}
	if limit > max {
		limit = max
	}

	return offset, limit, nil
}
