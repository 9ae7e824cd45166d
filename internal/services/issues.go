package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/inspekto/internal/common"
	"github.com/dmitrijs2005/inspekto/internal/idgen"
	"github.com/dmitrijs2005/inspekto/internal/models"
	"github.com/dmitrijs2005/inspekto/internal/repositories/equipment"
	"github.com/dmitrijs2005/inspekto/internal/repositories/issues"
)

// IssueService creates issue records and manages their attached media list.
type IssueService struct {
	repo      issues.Repository
	equipment equipment.Repository
}

func NewIssueService(repo issues.Repository, equipmentRepo equipment.Repository) *IssueService {
	return &IssueService{repo: repo, equipment: equipmentRepo}
}

type CreateIssueParams struct {
	EquipmentID string
	IssueTypeID string
	SeverityID  string
	Comment     string
}

// Create persists a new issue with an empty media list. The equipment must exist.
func (s *IssueService) Create(ctx context.Context, p CreateIssueParams) (*models.Issue, error) {
	if p.EquipmentID == "" {
		return nil, fmt.Errorf("%w: equipment id is required", common.ErrValidation)
	}
	eq, err := s.equipment.GetByID(ctx, p.EquipmentID)
	if err != nil {
		return nil, err
	}
	if eq == nil {
		return nil, fmt.Errorf("%w: equipment %s", common.ErrParentNotFound, p.EquipmentID)
	}

	now := time.Now().UTC()
	iss := &models.Issue{
		ID:          idgen.New("iss"),
		EquipmentID: p.EquipmentID,
		IssueTypeID: p.IssueTypeID,
		SeverityID:  p.SeverityID,
		Comment:     p.Comment,
		MediaIDs:    []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Save(ctx, iss); err != nil {
		return nil, err
	}
	return iss, nil
}

// Get returns an issue by id, (nil, nil) if unknown.
func (s *IssueService) Get(ctx context.Context, id string) (*models.Issue, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByEquipment returns the issues found on one piece of equipment.
func (s *IssueService) ListByEquipment(ctx context.Context, equipmentID string) ([]models.Issue, error) {
	return s.repo.ListByEquipment(ctx, equipmentID)
}

// AttachMedia appends mediaID to the issue's media list if it is not there
// already, then truncates the list to the first MaxIssueMedia entries. The
// first four attached ids win; a later distinct attach is silently dropped.
// Attaching the same id twice is a no-op reported as applied.
func (s *IssueService) AttachMedia(ctx context.Context, issueID, mediaID string) (Outcome, error) {
	iss, err := s.repo.GetByID(ctx, issueID)
	if err != nil {
		return "", err
	}
	if iss == nil {
		return OutcomeSkippedNotFound, nil
	}

	if !iss.HasMedia(mediaID) {
		iss.MediaIDs = append(iss.MediaIDs, mediaID)
		if len(iss.MediaIDs) > models.MaxIssueMedia {
			iss.MediaIDs = iss.MediaIDs[:models.MaxIssueMedia]
		}
		iss.UpdatedAt = time.Now().UTC()
		if err := s.repo.Save(ctx, iss); err != nil {
			return "", err
		}
	}
	return OutcomeApplied, nil
}
