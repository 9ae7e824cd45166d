package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

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

func (r *RecordRepository) Get(ctx context.Context, key string) (*models.Setting, error) {
	doc, err := r.st.Get(ctx, recordstore.CollectionSettings, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read setting: %w", err)
	}
	return recordstore.Decode[models.Setting](doc)
}

func (r *RecordRepository) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode setting value: %w", err)
	}
	row := models.Setting{Key: key, Value: raw, UpdatedAt: time.Now().UTC()}
	doc, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("failed to encode setting: %w", err)
	}
	if err := r.st.Put(ctx, recordstore.CollectionSettings, key, doc); err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}
	return nil
}

func (r *RecordRepository) GetString(ctx context.Context, key, fallback string) (string, error) {
	row, err := r.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if row == nil {
		return fallback, nil
	}
	var s string
	if err := json.Unmarshal(row.Value, &s); err != nil {
		return "", fmt.Errorf("setting %q is not a string: %w", key, err)
	}
	return s, nil
}

func (r *RecordRepository) GetOptions(ctx context.Context, key string) ([]models.LabeledOption, error) {
	row, err := r.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	var opts []models.LabeledOption
	if err := json.Unmarshal(row.Value, &opts); err != nil {
		return nil, fmt.Errorf("setting %q is not an option list: %w", key, err)
	}
	return opts, nil
}

func (r *RecordRepository) Delete(ctx context.Context, key string) error {
	return r.st.Delete(ctx, recordstore.CollectionSettings, key)
}

// EnsureDefaults seeds the catalogs and the empty upload endpoint on first run.
func (r *RecordRepository) EnsureDefaults(ctx context.Context) error {
	defaults := map[string]any{
		models.SettingIssueTypes: []models.LabeledOption{
			{ID: "finger_trap", Label: "Fastklemming (finger)"},
			{ID: "head_neck", Label: "Fastklemming (hode/hals)"},
			{ID: "sharp_edge", Label: "Skarp kant / kuttfare"},
			{ID: "loose_parts", Label: "Løse deler / fester"},
			{ID: "wear_chain", Label: "Slitasje kjetting / oppheng"},
			{ID: "impact_surface", Label: "Støtunderlag / fallområde"},
			{ID: "label_missing", Label: "Manglende merking / skilt"},
			{ID: "rot", Label: "Råte i bærende konstruksjon"},
			{ID: "other", Label: "Annet"},
		},
		models.SettingSeverity: []models.LabeledOption{
			{ID: "A", Label: "A (kritisk)"},
			{ID: "B", Label: "B (alvorlig)"},
			{ID: "C", Label: "C (mindre)"},
			{ID: "U", Label: "U (må risikovurderes)"},
			{ID: "OBS", Label: "Observasjon"},
		},
		models.SettingUploadEndpoint: "",
	}

	for key, value := range defaults {
		existing, err := r.Get(ctx, key)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if err := r.Set(ctx, key, value); err != nil {
			return err
		}
	}
	return nil
}
