package equipment

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

func (r *RecordRepository) Save(ctx context.Context, eq *models.Equipment) error {
	doc, err := json.Marshal(eq)
	if err != nil {
		return fmt.Errorf("failed to encode equipment: %w", err)
	}
	if err := r.st.Put(ctx, recordstore.CollectionEquipment, eq.ID, doc); err != nil {
		return fmt.Errorf("failed to save equipment: %w", err)
	}
	return nil
}

func (r *RecordRepository) GetByID(ctx context.Context, id string) (*models.Equipment, error) {
	doc, err := r.st.Get(ctx, recordstore.CollectionEquipment, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read equipment: %w", err)
	}
	return recordstore.Decode[models.Equipment](doc)
}

func (r *RecordRepository) ListByInspection(ctx context.Context, inspectionID string) ([]models.Equipment, error) {
	docs, err := r.st.GetByIndex(ctx, recordstore.CollectionEquipment, recordstore.IndexByInspection, inspectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment by inspection: %w", err)
	}
	return recordstore.DecodeAll[models.Equipment](docs)
}
