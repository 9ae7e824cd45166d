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
	"github.com/dmitrijs2005/inspekto/internal/repositories/media"
)

// EquipmentService creates equipment records and manages their cover and
// type-plate media slots.
type EquipmentService struct {
	repo        equipment.Repository
	inspections inspections.Repository
	media       media.Repository
}

func NewEquipmentService(repo equipment.Repository, inspectionsRepo inspections.Repository, mediaRepo media.Repository) *EquipmentService {
	return &EquipmentService{repo: repo, inspections: inspectionsRepo, media: mediaRepo}
}

type CreateEquipmentParams struct {
	InspectionID    string
	Title           string
	Vendor          string
	EquipmentNo     string
	AddressOverride string
}

// Create persists a new equipment record. The inspection must exist.
func (s *EquipmentService) Create(ctx context.Context, p CreateEquipmentParams) (*models.Equipment, error) {
	if p.InspectionID == "" {
		return nil, fmt.Errorf("%w: inspection id is required", common.ErrValidation)
	}
	ins, err := s.inspections.GetByID(ctx, p.InspectionID)
	if err != nil {
		return nil, err
	}
	if ins == nil {
		return nil, fmt.Errorf("%w: inspection %s", common.ErrParentNotFound, p.InspectionID)
	}

	now := time.Now().UTC()
	eq := &models.Equipment{
		ID:              idgen.New("eq"),
		InspectionID:    p.InspectionID,
		Title:           p.Title,
		Vendor:          p.Vendor,
		EquipmentNo:     p.EquipmentNo,
		AddressOverride: p.AddressOverride,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.Save(ctx, eq); err != nil {
		return nil, err
	}
	return eq, nil
}

// Get returns an equipment record by id, (nil, nil) if unknown.
func (s *EquipmentService) Get(ctx context.Context, id string) (*models.Equipment, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByInspection returns the equipment captured in one inspection.
func (s *EquipmentService) ListByInspection(ctx context.Context, inspectionID string) ([]models.Equipment, error) {
	return s.repo.ListByInspection(ctx, inspectionID)
}

// SetCover points one of the equipment's media slots (cover or sign) at a
// media item. Missing equipment or media is a skip; media captured under a
// different inspection is rejected.
func (s *EquipmentService) SetCover(ctx context.Context, equipmentID, mediaID string, slot models.CoverSlot) (Outcome, error) {
	if !slot.Valid() {
		return "", fmt.Errorf("%w: unknown cover slot %q", common.ErrValidation, slot)
	}

	eq, err := s.repo.GetByID(ctx, equipmentID)
	if err != nil {
		return "", err
	}
	if eq == nil {
		return OutcomeSkippedNotFound, nil
	}

	m, err := s.media.GetByID(ctx, mediaID)
	if err != nil {
		return "", err
	}
	if m == nil {
		return OutcomeSkippedNotFound, nil
	}
	if m.InspectionID != eq.InspectionID {
		return "", fmt.Errorf("%w: media %s", common.ErrWrongInspection, mediaID)
	}

	switch slot {
	case models.SlotCover:
		eq.CoverMediaID = mediaID
	case models.SlotSign:
		eq.SignMediaID = mediaID
	}
	eq.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, eq); err != nil {
		return "", err
	}
	return OutcomeApplied, nil
}
