package media

import (
	"context"

	"github.com/dmitrijs2005/inspekto/internal/models"
)

// Repository describes storage for Media records.
type Repository interface {
	// Save inserts a new media record or fully replaces an existing one by id.
	// The upload reconciler uses Save to persist per-item sync bookkeeping.
	Save(ctx context.Context, m *models.Media) error

	// GetByID returns the media record, or (nil, nil) if the id is unknown.
	GetByID(ctx context.Context, id string) (*models.Media, error)

	// GetAll returns every media record. Order is not part of the contract.
	GetAll(ctx context.Context) ([]models.Media, error)

	// ListByInspection returns all media scoped to one inspection,
	// via the by_inspection index.
	ListByInspection(ctx context.Context, inspectionID string) ([]models.Media, error)

	// ListByParent returns the media attached to one record,
	// via the composite by_parent index.
	ListByParent(ctx context.Context, parentType models.ParentType, parentID string) ([]models.Media, error)

	// Delete removes a media record. Deleting an absent id is a no-op.
	Delete(ctx context.Context, id string) error
}
