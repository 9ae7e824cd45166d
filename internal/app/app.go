// Package app wires the core together for the embedding presentation layer:
// it opens the record store, runs migrations, seeds default settings, and
// hands out the domain services and the upload reconciler.
package app

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/inspekto/internal/config"
	"github.com/dmitrijs2005/inspekto/internal/logging"
	"github.com/dmitrijs2005/inspekto/internal/recordstore"
	"github.com/dmitrijs2005/inspekto/internal/repositories/equipment"
	"github.com/dmitrijs2005/inspekto/internal/repositories/inspections"
	"github.com/dmitrijs2005/inspekto/internal/repositories/issues"
	"github.com/dmitrijs2005/inspekto/internal/repositories/locations"
	"github.com/dmitrijs2005/inspekto/internal/repositories/media"
	"github.com/dmitrijs2005/inspekto/internal/repositories/settings"
	"github.com/dmitrijs2005/inspekto/internal/services"
	"github.com/dmitrijs2005/inspekto/internal/uploader"
)

// Repositories groups the per-collection repositories.
type Repositories struct {
	Settings    settings.Repository
	Locations   locations.Repository
	Inspections inspections.Repository
	Equipment   equipment.Repository
	Issues      issues.Repository
	Media       media.Repository
}

// App is the assembled core. Everything the UI and report layers call lives
// behind these fields.
type App struct {
	Repos       *Repositories
	Session     *services.Session
	Locations   *services.LocationService
	Inspections *services.InspectionService
	Equipment   *services.EquipmentService
	Issues      *services.IssueService
	Media       *services.MediaService
	Bundles     *services.BundleService
	Reconciler  *uploader.Reconciler

	store *recordstore.Store
}

// Open opens (or creates) the local store at cfg.DatabasePath, migrates it,
// seeds missing default settings and returns the wired App.
func Open(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.NewNopLogger()
	}

	st, err := recordstore.Open(ctx, cfg.DatabasePath, recordstore.DefaultSchema(), log)
	if err != nil {
		return nil, err
	}

	repos := &Repositories{
		Settings:    settings.NewRecordRepository(st),
		Locations:   locations.NewRecordRepository(st),
		Inspections: inspections.NewRecordRepository(st),
		Equipment:   equipment.NewRecordRepository(st),
		Issues:      issues.NewRecordRepository(st),
		Media:       media.NewRecordRepository(st),
	}

	if err := repos.Settings.EnsureDefaults(ctx); err != nil {
		_ = st.Close()
		return nil, err
	}

	session := services.NewSession(repos.Settings, repos.Inspections)

	return &App{
		Repos:       repos,
		Session:     session,
		Locations:   services.NewLocationService(repos.Locations),
		Inspections: services.NewInspectionService(repos.Inspections, repos.Locations, session),
		Equipment:   services.NewEquipmentService(repos.Equipment, repos.Inspections, repos.Media),
		Issues:      services.NewIssueService(repos.Issues, repos.Equipment),
		Media:       services.NewMediaService(repos.Media, repos.Inspections, repos.Equipment, repos.Issues),
		Bundles:     services.NewBundleService(repos.Inspections, repos.Locations, repos.Equipment, repos.Issues, repos.Media),
		Reconciler: uploader.NewReconciler(uploader.Options{
			Settings:   repos.Settings,
			Media:      repos.Media,
			HTTPClient: &http.Client{Timeout: cfg.UploadTimeout},
			BatchSize:  cfg.UploadBatchSize,
			Logger:     log,
		}),
		store: st,
	}, nil
}

// Close releases the underlying store.
func (a *App) Close() error {
	return a.store.Close()
}
