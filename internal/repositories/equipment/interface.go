package equipment

import (
	"context"

	"github.com/dmitrijs2005/inspekto/internal/models"
)

// Repository describes storage for Equipment records.
type Repository interface {
	// Save inserts a new equipment record or fully replaces an existing one by id.
	Save(ctx context.Context, eq *models.Equipment) error

	// GetByID returns the equipment record, or (nil, nil) if the id is unknown.
	GetByID(ctx context.Context, id string) (*models.Equipment, error)

	// ListByInspection returns the equipment captured in one inspection,
	// via the by_inspection index.
	ListByInspection(ctx context.Context, inspectionID string) ([]models.Equipment, error)
}
