package catalog

import (
	"context"
	"fmt"

	catalogRepo "homeserve/database/repository/catalog"
	"homeserve/models"
)

// Service supplies immutable service offerings and cart resolution. Pure
// data access; no computation happens here.
type Service interface {
	GetOffering(ctx context.Context, id string) (*models.ServiceOffering, error)
	ListOfferings(ctx context.Context, category string) ([]models.ServiceOffering, error)
	ResolveSelections(ctx context.Context, selections []models.CartSelection) ([]models.CartItem, error)
}

// DefaultCatalogService implements Service over the catalog repository.
type DefaultCatalogService struct {
	Repo catalogRepo.CatalogRepository
}

func (s *DefaultCatalogService) GetOffering(ctx context.Context, id string) (*models.ServiceOffering, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultCatalogService) ListOfferings(ctx context.Context, category string) ([]models.ServiceOffering, error) {
	return s.Repo.List(ctx, category)
}

// ResolveSelections materializes cart selections against the catalog. An
// unknown service id fails the whole resolution; items are never silently
// dropped.
func (s *DefaultCatalogService) ResolveSelections(ctx context.Context, selections []models.CartSelection) ([]models.CartItem, error) {
	items := make([]models.CartItem, 0, len(selections))
	for _, sel := range selections {
		offering, err := s.Repo.GetByID(ctx, sel.ServiceID)
		if err != nil {
			return nil, fmt.Errorf("resolving selection %s: %w", sel.ServiceID, err)
		}
		items = append(items, models.CartItem{Offering: *offering, Quantity: sel.Quantity})
	}
	return items, nil
}
