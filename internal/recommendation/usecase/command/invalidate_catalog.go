package command

import (
	"context"
	"fmt"

	"github.com/tair/shopping-advisor/internal/recommendation/domain"
	"github.com/tair/shopping-advisor/pkg/logger"
)

// InvalidateCatalogCommand represents a change to the underlying catalog
type InvalidateCatalogCommand struct {
	ProductID string
	Change    string
}

// InvalidateCatalogHandler drops cached catalog snapshots after a change
type InvalidateCatalogHandler struct {
	invalidator domain.CatalogInvalidator
}

// NewInvalidateCatalogHandler creates a new invalidate catalog handler
func NewInvalidateCatalogHandler(invalidator domain.CatalogInvalidator) *InvalidateCatalogHandler {
	return &InvalidateCatalogHandler{invalidator: invalidator}
}

// Handle executes the invalidate catalog command
func (h *InvalidateCatalogHandler) Handle(ctx context.Context, cmd InvalidateCatalogCommand) error {
	if err := h.invalidator.Invalidate(ctx); err != nil {
		return fmt.Errorf("failed to invalidate catalog cache: %w", err)
	}

	logger.Info(ctx).
		Str("product_id", cmd.ProductID).
		Str("change", cmd.Change).
		Msg("Catalog cache invalidated")
	return nil
}
