package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/inspekto/internal/common"
	"github.com/dmitrijs2005/inspekto/internal/idgen"
	"github.com/dmitrijs2005/inspekto/internal/models"
	"github.com/dmitrijs2005/inspekto/internal/repositories/inspections"
	"github.com/dmitrijs2005/inspekto/internal/repositories/locations"
)

// DefaultInspectionKind is used when the caller does not name a kind.
const DefaultInspectionKind = "annual"

// InspectionService creates inspections and drives their forward-only
// status transitions.
type InspectionService struct {
	repo      inspections.Repository
	locations locations.Repository
	session   *Session
}

func NewInspectionService(repo inspections.Repository, locationsRepo locations.Repository, session *Session) *InspectionService {
	return &InspectionService{repo: repo, locations: locationsRepo, session: session}
}

type CreateInspectionParams struct {
	LocationID string
	Kind       string
}

// Create persists a new inspection in capturing state and repoints the
// session at it. The location must exist.
func (s *InspectionService) Create(ctx context.Context, p CreateInspectionParams) (*models.Inspection, error) {
	if p.LocationID == "" {
		return nil, fmt.Errorf("%w: location id is required", common.ErrValidation)
	}
	loc, err := s.locations.GetByID(ctx, p.LocationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, fmt.Errorf("%w: location %s", common.ErrParentNotFound, p.LocationID)
	}

	kind := p.Kind
	if kind == "" {
		kind = DefaultInspectionKind
	}

	now := time.Now().UTC()
	ins := &models.Inspection{
		ID:         idgen.New("ins"),
		LocationID: p.LocationID,
		Kind:       kind,
		Status:     models.StatusCapturing,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Save(ctx, ins); err != nil {
		return nil, err
	}
	if err := s.session.SetActiveInspectionID(ctx, ins.ID); err != nil {
		return nil, err
	}
	return ins, nil
}

// Get returns an inspection by id, (nil, nil) if unknown.
func (s *InspectionService) Get(ctx context.Context, id string) (*models.Inspection, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByLocation returns the inspections recorded at a location.
func (s *InspectionService) ListByLocation(ctx context.Context, locationID string) ([]models.Inspection, error) {
	return s.repo.ListByLocation(ctx, locationID)
}

// End moves an inspection from capturing to review. Transitions only run
// forward: an inspection already past capturing is left as it is, which makes
// End idempotent. An unknown id is a skip, not an error.
func (s *InspectionService) End(ctx context.Context, id string) (Outcome, error) {
	ins, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if ins == nil {
		return OutcomeSkippedNotFound, nil
	}
	if ins.Status != models.StatusCapturing {
		return OutcomeApplied, nil
	}

	ins.Status = models.StatusReview
	ins.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, ins); err != nil {
		return "", err
	}
	return OutcomeApplied, nil
}
