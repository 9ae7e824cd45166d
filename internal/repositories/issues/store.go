package issues

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/inspekto/internal/models"
	"github.com/dmitrijs2005/inspekto/internal/recordstore"
)

// RecordRepository implements Repository on top of the record store.
type RecordRepository struct {
	st *recordstore.Store
}

func NewRecordRepository(st *recordstore.Store) *RecordRepository {
	return &RecordRepository{st: st}
}

func (r *RecordRepository) Save(ctx context.Context, iss *models.Issue) error {
	doc, err := json.Marshal(iss)
	if err != nil {
		return fmt.Errorf("failed to encode issue: %w", err)
	}
	if err := r.st.Put(ctx, recordstore.CollectionIssues, iss.ID, doc); err != nil {
		return fmt.Errorf("failed to save issue: %w", err)
	}
	return nil
}

func (r *RecordRepository) GetByID(ctx context.Context, id string) (*models.Issue, error) {
	doc, err := r.st.Get(ctx, recordstore.CollectionIssues, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read issue: %w", err)
	}
	return recordstore.Decode[models.Issue](doc)
}

func (r *RecordRepository) ListByEquipment(ctx context.Context, equipmentID string) ([]models.Issue, error) {
	docs, err := r.st.GetByIndex(ctx, recordstore.CollectionIssues, recordstore.IndexByEquipment, equipmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list issues by equipment: %w", err)
	}
	return recordstore.DecodeAll[models.Issue](docs)
}
