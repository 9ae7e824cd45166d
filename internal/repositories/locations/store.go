package locations

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

func (r *RecordRepository) Save(ctx context.Context, loc *models.Location) error {
	doc, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("failed to encode location: %w", err)
	}
	if err := r.st.Put(ctx, recordstore.CollectionLocations, loc.ID, doc); err != nil {
		return fmt.Errorf("failed to save location: %w", err)
	}
	return nil
}

func (r *RecordRepository) GetByID(ctx context.Context, id string) (*models.Location, error) {
	doc, err := r.st.Get(ctx, recordstore.CollectionLocations, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read location: %w", err)
	}
	return recordstore.Decode[models.Location](doc)
}

func (r *RecordRepository) GetAll(ctx context.Context) ([]models.Location, error) {
	docs, err := r.st.GetAll(ctx, recordstore.CollectionLocations)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return recordstore.DecodeAll[models.Location](docs)
}
