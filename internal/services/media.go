package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/inspekto/internal/common"
	"github.com/dmitrijs2005/inspekto/internal/idgen"
	"github.com/dmitrijs2005/inspekto/internal/models"
	"github.com/dmitrijs2005/inspekto/internal/repositories/equipment"
	"github.com/dmitrijs2005/inspekto/internal/repositories/inspections"
	"github.com/dmitrijs2005/inspekto/internal/repositories/issues"
	"github.com/dmitrijs2005/inspekto/internal/repositories/media"
)

// MediaService records captured photos and audio notes.
type MediaService struct {
	repo        media.Repository
	inspections inspections.Repository
	equipment   equipment.Repository
	issues      issues.Repository
}

func NewMediaService(repo media.Repository, inspectionsRepo inspections.Repository, equipmentRepo equipment.Repository, issuesRepo issues.Repository) *MediaService {
	return &MediaService{repo: repo, inspections: inspectionsRepo, equipment: equipmentRepo, issues: issuesRepo}
}

type AddMediaParams struct {
	InspectionID string
	ParentType   models.ParentType
	ParentID     string
	Tag          models.MediaTag
	Blob         []byte
	MimeType     string
	Note         string
}

// Add persists a new media record, not yet uploaded. The parent must exist
// and belong to the same inspection the media is scoped to.
func (s *MediaService) Add(ctx context.Context, p AddMediaParams) (*models.Media, error) {
	if p.InspectionID == "" {
		return nil, fmt.Errorf("%w: inspection id is required", common.ErrValidation)
	}
	if !p.ParentType.Valid() {
		return nil, fmt.Errorf("%w: unknown parent type %q", common.ErrValidation, p.ParentType)
	}
	if !p.Tag.Valid() {
		return nil, fmt.Errorf("%w: unknown media tag %q", common.ErrValidation, p.Tag)
	}

	ins, err := s.inspections.GetByID(ctx, p.InspectionID)
	if err != nil {
		return nil, err
	}
	if ins == nil {
		return nil, fmt.Errorf("%w: inspection %s", common.ErrParentNotFound, p.InspectionID)
	}

	if err := s.checkParent(ctx, p); err != nil {
		return nil, err
	}

	m := &models.Media{
		ID:           idgen.New("m"),
		InspectionID: p.InspectionID,
		ParentType:   p.ParentType,
		ParentID:     p.ParentID,
		Tag:          p.Tag,
		Blob:         p.Blob,
		MimeType:     p.MimeType,
		Note:         p.Note,
		CreatedAt:    time.Now().UTC(),
		Uploaded:     false,
		UploadError:  "",
	}
	if err := s.repo.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// checkParent verifies that the (parentType, parentId) target exists inside
// the media's inspection. An issue whose equipment record has gone missing is
// tolerated: orphans are accepted behavior, there is no cascade delete.
func (s *MediaService) checkParent(ctx context.Context, p AddMediaParams) error {
	switch p.ParentType {
	case models.ParentInspection:
		if p.ParentID != p.InspectionID {
			return fmt.Errorf("%w: inspection %s", common.ErrWrongInspection, p.ParentID)
		}
	case models.ParentEquipment:
		eq, err := s.equipment.GetByID(ctx, p.ParentID)
		if err != nil {
			return err
		}
		if eq == nil {
			return fmt.Errorf("%w: equipment %s", common.ErrParentNotFound, p.ParentID)
		}
		if eq.InspectionID != p.InspectionID {
			return fmt.Errorf("%w: equipment %s", common.ErrWrongInspection, p.ParentID)
		}
	case models.ParentIssue:
		iss, err := s.issues.GetByID(ctx, p.ParentID)
		if err != nil {
			return err
		}
		if iss == nil {
			return fmt.Errorf("%w: issue %s", common.ErrParentNotFound, p.ParentID)
		}
		eq, err := s.equipment.GetByID(ctx, iss.EquipmentID)
		if err != nil {
			return err
		}
		if eq != nil && eq.InspectionID != p.InspectionID {
			return fmt.Errorf("%w: issue %s", common.ErrWrongInspection, p.ParentID)
		}
	}
	return nil
}

// Get returns a media record by id, (nil, nil) if unknown.
func (s *MediaService) Get(ctx context.Context, id string) (*models.Media, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByParent returns the media attached to one record.
func (s *MediaService) ListByParent(ctx context.Context, parentType models.ParentType, parentID string) ([]models.Media, error) {
	return s.repo.ListByParent(ctx, parentType, parentID)
}

// Delete removes a media record. Deleting an unknown id is a no-op.
func (s *MediaService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
