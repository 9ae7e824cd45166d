package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/inspekto/internal/common"
	"github.com/dmitrijs2005/inspekto/internal/idgen"
	"github.com/dmitrijs2005/inspekto/internal/models"
	"github.com/dmitrijs2005/inspekto/internal/repositories/locations"
)

// LocationService creates and reads Location records.
type LocationService struct {
	repo locations.Repository
}

func NewLocationService(repo locations.Repository) *LocationService {
	return &LocationService{repo: repo}
}

type CreateLocationParams struct {
	Name    string
	Address string
	Notes   string
}

// Create persists a new location. Name is required.
func (s *LocationService) Create(ctx context.Context, p CreateLocationParams) (*models.Location, error) {
	if p.Name == "" {
		return nil, fmt.Errorf("%w: location name is required", common.ErrValidation)
	}

	now := time.Now().UTC()
	loc := &models.Location{
		ID:        idgen.New("loc"),
		Name:      p.Name,
		Address:   p.Address,
		Notes:     p.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Save(ctx, loc); err != nil {
		return nil, err
	}
	return loc, nil
}

// Get returns a location by id, (nil, nil) if unknown.
func (s *LocationService) Get(ctx context.Context, id string) (*models.Location, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns every recorded location.
func (s *LocationService) List(ctx context.Context) ([]models.Location, error) {
	return s.repo.GetAll(ctx)
}
