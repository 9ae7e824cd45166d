package issues

import (
	"context"

	"github.com/dmitrijs2005/inspekto/internal/models"
)

// Repository describes storage for Issue records.
type Repository interface {
	// Save inserts a new issue or fully replaces an existing one by id.
	Save(ctx context.Context, iss *models.Issue) error

	// GetByID returns the issue, or (nil, nil) if the id is unknown.
	GetByID(ctx context.Context, id string) (*models.Issue, error)

	// ListByEquipment returns the issues found on one piece of equipment,
	// via the by_equipment index.
	ListByEquipment(ctx context.Context, equipmentID string) ([]models.Issue, error)
}
