package media

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

func (r *RecordRepository) Save(ctx context.Context, m *models.Media) error {
	doc, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode media: %w", err)
	}
	if err := r.st.Put(ctx, recordstore.CollectionMedia, m.ID, doc); err != nil {
		return fmt.Errorf("failed to save media: %w", err)
	}
	return nil
}

func (r *RecordRepository) GetByID(ctx context.Context, id string) (*models.Media, error) {
	doc, err := r.st.Get(ctx, recordstore.CollectionMedia, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read media: %w", err)
	}
	return recordstore.Decode[models.Media](doc)
}

func (r *RecordRepository) GetAll(ctx context.Context) ([]models.Media, error) {
	docs, err := r.st.GetAll(ctx, recordstore.CollectionMedia)
	if err != nil {
		return nil, fmt.Errorf("failed to list media: %w", err)
	}
	return recordstore.DecodeAll[models.Media](docs)
}

func (r *RecordRepository) ListByInspection(ctx context.Context, inspectionID string) ([]models.Media, error) {
	docs, err := r.st.GetByIndex(ctx, recordstore.CollectionMedia, recordstore.IndexByInspection, inspectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list media by inspection: %w", err)
	}
	return recordstore.DecodeAll[models.Media](docs)
}

func (r *RecordRepository) ListByParent(ctx context.Context, parentType models.ParentType, parentID string) ([]models.Media, error) {
	docs, err := r.st.GetByIndex(ctx, recordstore.CollectionMedia, recordstore.IndexByParent, string(parentType), parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list media by parent: %w", err)
	}
	return recordstore.DecodeAll[models.Media](docs)
}

func (r *RecordRepository) Delete(ctx context.Context, id string) error {
	return r.st.Delete(ctx, recordstore.CollectionMedia, id)
}
