package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/inspekto/internal/models"
	"github.com/dmitrijs2005/inspekto/internal/repositories/inspections"
	"github.com/dmitrijs2005/inspekto/internal/repositories/settings"
)

// Session mediates the single process-wide pointer to the inspection being
// captured. The pointer is persisted in the settings table so it survives
// restarts, but all reads and writes go through here rather than through a
// store-resident global.
type Session struct {
	settings    settings.Repository
	inspections inspections.Repository
}

func NewSession(settingsRepo settings.Repository, inspectionsRepo inspections.Repository) *Session {
	return &Session{settings: settingsRepo, inspections: inspectionsRepo}
}

// ActiveInspectionID returns the current pointer, empty if none is set.
func (s *Session) ActiveInspectionID(ctx context.Context) (string, error) {
	return s.settings.GetString(ctx, models.SettingActiveInspectionID, "")
}

// SetActiveInspectionID repoints the session at the given inspection.
func (s *Session) SetActiveInspectionID(ctx context.Context, id string) error {
	if err := s.settings.Set(ctx, models.SettingActiveInspectionID, id); err != nil {
		return fmt.Errorf("failed to set active inspection: %w", err)
	}
	return nil
}

// ActiveInspection resolves the pointer to its inspection record. It returns
// (nil, nil) when no pointer is set or the pointed-at record is gone.
func (s *Session) ActiveInspection(ctx context.Context) (*models.Inspection, error) {
	id, err := s.ActiveInspectionID(ctx)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, nil
	}
	return s.inspections.GetByID(ctx, id)
}
