package inspections

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

func (r *RecordRepository) Save(ctx context.Context, ins *models.Inspection) error {
	doc, err := json.Marshal(ins)
	if err != nil {
		return fmt.Errorf("failed to encode inspection: %w", err)
	}
	if err := r.st.Put(ctx, recordstore.CollectionInspections, ins.ID, doc); err != nil {
		return fmt.Errorf("failed to save inspection: %w", err)
	}
	return nil
}

func (r *RecordRepository) GetByID(ctx context.Context, id string) (*models.Inspection, error) {
	doc, err := r.st.Get(ctx, recordstore.CollectionInspections, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read inspection: %w", err)
	}
	return recordstore.Decode[models.Inspection](doc)
}

func (r *RecordRepository) GetAll(ctx context.Context) ([]models.Inspection, error) {
	docs, err := r.st.GetAll(ctx, recordstore.CollectionInspections)
	if err != nil {
		return nil, fmt.Errorf("failed to list inspections: %w", err)
	}
	return recordstore.DecodeAll[models.Inspection](docs)
}

func (r *RecordRepository) ListByLocation(ctx context.Context, locationID string) ([]models.Inspection, error) {
	docs, err := r.st.GetByIndex(ctx, recordstore.CollectionInspections, recordstore.IndexByLocation, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inspections by location: %w", err)
	}
	return recordstore.DecodeAll[models.Inspection](docs)
}
