package locations

import (
	"context"

	"github.com/dmitrijs2005/inspekto/internal/models"
)

// Repository describes storage for Location records.
type Repository interface {
	// Save inserts a new location or fully replaces an existing one by id.
	Save(ctx context.Context, loc *models.Location) error

	// GetByID returns the location, or (nil, nil) if the id is unknown.
	GetByID(ctx context.Context, id string) (*models.Location, error)

	// GetAll returns every location. Order is not part of the contract.
	GetAll(ctx context.Context) ([]models.Location, error)
}
