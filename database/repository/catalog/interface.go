package catalogRepo

import (
	"context"

	"marketplace/models"
)

// CatalogRepository reads service variations owned by the catalog
// collaborator. The booking core never writes through it.
type CatalogRepository interface {
	GetServiceVariation(ctx context.Context, id string) (*models.ServiceVariation, error)
}
