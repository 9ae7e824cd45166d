package inspections

import (
	"context"

	"github.com/dmitrijs2005/inspekto/internal/models"
)

// Repository describes storage for Inspection records.
type Repository interface {
	// Save inserts a new inspection or fully replaces an existing one by id.
	Save(ctx context.Context, ins *models.Inspection) error

	// GetByID returns the inspection, or (nil, nil) if the id is unknown.
	GetByID(ctx context.Context, id string) (*models.Inspection, error)

	// GetAll returns every inspection. Order is not part of the contract.
	GetAll(ctx context.Context) ([]models.Inspection, error)

	// ListByLocation returns the inspections recorded at one location,
	// via the by_location index.
	ListByLocation(ctx context.Context, locationID string) ([]models.Inspection, error)
}
