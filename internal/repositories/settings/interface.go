// Package settings stores the key/value table consumed by the embedding UI:
// the upload endpoint, the issue-type and severity catalogs, and the
// active-inspection pointer.
package settings

import (
	"context"

	"github.com/dmitrijs2005/inspekto/internal/models"
)

// Repository describes upsert-style access to the settings table.
// Values are opaque JSON; the typed helpers cover the common cases.
type Repository interface {
	// Get returns the setting row, or (nil, nil) if the key is absent.
	Get(ctx context.Context, key string) (*models.Setting, error)

	// Set upserts the value under key and refreshes UpdatedAt.
	Set(ctx context.Context, key string, value any) error

	// GetString reads a string-valued setting, returning fallback when the
	// key is absent.
	GetString(ctx context.Context, key, fallback string) (string, error)

	// GetOptions reads an {id, label} list setting (issueTypes, severity).
	GetOptions(ctx context.Context, key string) ([]models.LabeledOption, error)

	// Delete removes the key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error

	// EnsureDefaults seeds any missing default settings. Existing values,
	// including user-edited ones, are left alone.
	EnsureDefaults(ctx context.Context) error
}
