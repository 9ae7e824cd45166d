package services

import (
	"context"

	"github.com/dmitrijs2005/inspekto/internal/models"
	"github.com/dmitrijs2005/inspekto/internal/repositories/equipment"
	"github.com/dmitrijs2005/inspekto/internal/repositories/inspections"
	"github.com/dmitrijs2005/inspekto/internal/repositories/issues"
	"github.com/dmitrijs2005/inspekto/internal/repositories/locations"
	"github.com/dmitrijs2005/inspekto/internal/repositories/media"
)

// Bundle is the fully assembled view of one inspection and all its descendant
// records, as handed to review and report surfaces. Issues from all equipment
// are concatenated into one flat list.
type Bundle struct {
	Inspection *models.Inspection `json:"inspection"`
	Location   *models.Location   `json:"location"`
	Equipment  []models.Equipment `json:"equipment"`
	Issues     []models.Issue     `json:"issues"`
	Media      []models.Media     `json:"media"`
}

// BundleService composes repository reads into Bundles.
type BundleService struct {
	inspections inspections.Repository
	locations   locations.Repository
	equipment   equipment.Repository
	issues      issues.Repository
	media       media.Repository
}

func NewBundleService(
	inspectionsRepo inspections.Repository,
	locationsRepo locations.Repository,
	equipmentRepo equipment.Repository,
	issuesRepo issues.Repository,
	mediaRepo media.Repository,
) *BundleService {
	return &BundleService{
		inspections: inspectionsRepo,
		locations:   locationsRepo,
		equipment:   equipmentRepo,
		issues:      issuesRepo,
		media:       mediaRepo,
	}
}

// Assemble walks the indexes under one inspection. An unknown inspection id
// yields a bundle with nil inspection/location and empty lists, never an error.
func (s *BundleService) Assemble(ctx context.Context, inspectionID string) (*Bundle, error) {
	b := &Bundle{
		Equipment: []models.Equipment{},
		Issues:    []models.Issue{},
		Media:     []models.Media{},
	}

	ins, err := s.inspections.GetByID(ctx, inspectionID)
	if err != nil {
		return nil, err
	}
	b.Inspection = ins

	if ins != nil {
		loc, err := s.locations.GetByID(ctx, ins.LocationID)
		if err != nil {
			return nil, err
		}
		b.Location = loc
	}

	eqs, err := s.equipment.ListByInspection(ctx, inspectionID)
	if err != nil {
		return nil, err
	}
	b.Equipment = eqs

	for _, eq := range eqs {
		eqIssues, err := s.issues.ListByEquipment(ctx, eq.ID)
		if err != nil {
			return nil, err
		}
		b.Issues = append(b.Issues, eqIssues...)
	}

	md, err := s.media.ListByInspection(ctx, inspectionID)
	if err != nil {
		return nil, err
	}
	b.Media = md

	return b, nil
}
