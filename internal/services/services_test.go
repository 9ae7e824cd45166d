package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/inspekto/internal/common"
	"github.com/dmitrijs2005/inspekto/internal/models"
	"github.com/dmitrijs2005/inspekto/internal/recordstore"
	"github.com/dmitrijs2005/inspekto/internal/repositories/equipment"
	"github.com/dmitrijs2005/inspekto/internal/repositories/inspections"
	"github.com/dmitrijs2005/inspekto/internal/repositories/issues"
	"github.com/dmitrijs2005/inspekto/internal/repositories/locations"
	"github.com/dmitrijs2005/inspekto/internal/repositories/media"
	"github.com/dmitrijs2005/inspekto/internal/repositories/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type env struct {
	session     *Session
	locations   *LocationService
	inspections *InspectionService
	equipment   *EquipmentService
	issues      *IssueService
	media       *MediaService
	bundles     *BundleService
}

func newTestEnv(t *testing.T) *env {
	t.Helper()
	st, err := recordstore.Open(context.Background(), ":memory:", recordstore.DefaultSchema(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	settingsRepo := settings.NewRecordRepository(st)
	locationsRepo := locations.NewRecordRepository(st)
	inspectionsRepo := inspections.NewRecordRepository(st)
	equipmentRepo := equipment.NewRecordRepository(st)
	issuesRepo := issues.NewRecordRepository(st)
	mediaRepo := media.NewRecordRepository(st)

	session := NewSession(settingsRepo, inspectionsRepo)
	return &env{
		session:     session,
		locations:   NewLocationService(locationsRepo),
		inspections: NewInspectionService(inspectionsRepo, locationsRepo, session),
		equipment:   NewEquipmentService(equipmentRepo, inspectionsRepo, mediaRepo),
		issues:      NewIssueService(issuesRepo, equipmentRepo),
		media:       NewMediaService(mediaRepo, inspectionsRepo, equipmentRepo, issuesRepo),
		bundles:     NewBundleService(inspectionsRepo, locationsRepo, equipmentRepo, issuesRepo, mediaRepo),
	}
}

func (e *env) mustCaptureTree(t *testing.T, ctx context.Context) (loc *models.Location, ins *models.Inspection, eq *models.Equipment, iss *models.Issue) {
	t.Helper()
	var err error
	loc, err = e.locations.Create(ctx, CreateLocationParams{Name: "Lekeplass Øst"})
	require.NoError(t, err)
	ins, err = e.inspections.Create(ctx, CreateInspectionParams{LocationID: loc.ID})
	require.NoError(t, err)
	eq, err = e.equipment.Create(ctx, CreateEquipmentParams{InspectionID: ins.ID, Title: "Huske"})
	require.NoError(t, err)
	iss, err = e.issues.Create(ctx, CreateIssueParams{EquipmentID: eq.ID, IssueTypeID: "sharp_edge", SeverityID: "B"})
	require.NoError(t, err)
	return loc, ins, eq, iss
}

func TestCreateLocation_RequiresName(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.locations.Create(context.Background(), CreateLocationParams{})
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestCreateInspection_SetsActivePointer(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	loc, err := e.locations.Create(ctx, CreateLocationParams{Name: "Park"})
	require.NoError(t, err)

	ins, err := e.inspections.Create(ctx, CreateInspectionParams{LocationID: loc.ID})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCapturing, ins.Status)
	assert.Equal(t, DefaultInspectionKind, ins.Kind)

	id, err := e.session.ActiveInspectionID(ctx)
	require.NoError(t, err)
	assert.Equal(t, ins.ID, id)

	active, err := e.session.ActiveInspection(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, ins.ID, active.ID)
}

func TestCreateInspection_MissingLocation(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.inspections.Create(context.Background(), CreateInspectionParams{LocationID: "loc_missing"})
	require.ErrorIs(t, err, common.ErrParentNotFound)
}

func TestEndInspection_ForwardOnlyAndIdempotent(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	_, ins, _, _ := e.mustCaptureTree(t, ctx)

	out, err := e.inspections.End(ctx, ins.ID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeApplied, out)

	got, err := e.inspections.Get(ctx, ins.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusReview, got.Status)
	assert.True(t, got.UpdatedAt.After(ins.UpdatedAt) || got.UpdatedAt.Equal(ins.UpdatedAt))

	// second End is a no-op, still applied, status untouched
	out, err = e.inspections.End(ctx, ins.ID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeApplied, out)

	got, err = e.inspections.Get(ctx, ins.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusReview, got.Status)
}

func TestEndInspection_UnknownID_IsSkip(t *testing.T) {
	e := newTestEnv(t)

	out, err := e.inspections.End(context.Background(), "ins_missing")
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkippedNotFound, out)
}

func TestAttachMedia_IdempotentAndCapped(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	_, ins, _, iss := e.mustCaptureTree(t, ctx)

	var mediaIDs []string
	for i := 0; i < 5; i++ {
		m, err := e.media.Add(ctx, AddMediaParams{
			InspectionID: ins.ID,
			ParentType:   models.ParentIssue,
			ParentID:     iss.ID,
			Tag:          models.TagIssue,
			Blob:         []byte{byte(i)},
			MimeType:     "image/jpeg",
		})
		require.NoError(t, err)
		mediaIDs = append(mediaIDs, m.ID)
	}

	for _, id := range mediaIDs {
		out, err := e.issues.AttachMedia(ctx, iss.ID, id)
		require.NoError(t, err)
		assert.Equal(t, OutcomeApplied, out)
	}

	got, err := e.issues.Get(ctx, iss.ID)
	require.NoError(t, err)
	// first four in insertion order; the fifth distinct attach is dropped
	assert.Equal(t, mediaIDs[:4], got.MediaIDs)

	// duplicate attach leaves the list untouched
	out, err := e.issues.AttachMedia(ctx, iss.ID, mediaIDs[0])
	require.NoError(t, err)
	assert.Equal(t, OutcomeApplied, out)

	got, err = e.issues.Get(ctx, iss.ID)
	require.NoError(t, err)
	assert.Equal(t, mediaIDs[:4], got.MediaIDs)
}

func TestAttachMedia_UnknownIssue_IsSkip(t *testing.T) {
	e := newTestEnv(t)

	out, err := e.issues.AttachMedia(context.Background(), "iss_missing", "m_1")
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkippedNotFound, out)
}

func TestSetCover_SlotsAndScope(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	loc, ins, eq, _ := e.mustCaptureTree(t, ctx)

	cover, err := e.media.Add(ctx, AddMediaParams{InspectionID: ins.ID, ParentType: models.ParentEquipment, ParentID: eq.ID, Tag: models.TagEquipment, Blob: []byte{1}, MimeType: "image/jpeg"})
	require.NoError(t, err)
	sign, err := e.media.Add(ctx, AddMediaParams{InspectionID: ins.ID, ParentType: models.ParentEquipment, ParentID: eq.ID, Tag: models.TagSign, Blob: []byte{2}, MimeType: "image/jpeg"})
	require.NoError(t, err)

	out, err := e.equipment.SetCover(ctx, eq.ID, cover.ID, models.SlotCover)
	require.NoError(t, err)
	assert.Equal(t, OutcomeApplied, out)

	out, err = e.equipment.SetCover(ctx, eq.ID, sign.ID, models.SlotSign)
	require.NoError(t, err)
	assert.Equal(t, OutcomeApplied, out)

	got, err := e.equipment.Get(ctx, eq.ID)
	require.NoError(t, err)
	assert.Equal(t, cover.ID, got.CoverMediaID)
	assert.Equal(t, sign.ID, got.SignMediaID)

	// media from another inspection must not be linked
	ins2, err := e.inspections.Create(ctx, CreateInspectionParams{LocationID: loc.ID})
	require.NoError(t, err)
	foreign, err := e.media.Add(ctx, AddMediaParams{InspectionID: ins2.ID, ParentType: models.ParentInspection, ParentID: ins2.ID, Tag: models.TagOverview, Blob: []byte{3}, MimeType: "image/jpeg"})
	require.NoError(t, err)

	_, err = e.equipment.SetCover(ctx, eq.ID, foreign.ID, models.SlotCover)
	require.ErrorIs(t, err, common.ErrWrongInspection)

	// missing targets are skips
	out, err = e.equipment.SetCover(ctx, "eq_missing", cover.ID, models.SlotCover)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkippedNotFound, out)

	out, err = e.equipment.SetCover(ctx, eq.ID, "m_missing", models.SlotCover)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkippedNotFound, out)

	_, err = e.equipment.SetCover(ctx, eq.ID, cover.ID, models.CoverSlot("back"))
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestAddMedia_Validation(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	_, ins, eq, iss := e.mustCaptureTree(t, ctx)

	_, err := e.media.Add(ctx, AddMediaParams{InspectionID: "", ParentType: models.ParentIssue, ParentID: iss.ID, Tag: models.TagIssue})
	require.ErrorIs(t, err, common.ErrValidation)

	_, err = e.media.Add(ctx, AddMediaParams{InspectionID: ins.ID, ParentType: "location", ParentID: iss.ID, Tag: models.TagIssue})
	require.ErrorIs(t, err, common.ErrValidation)

	_, err = e.media.Add(ctx, AddMediaParams{InspectionID: ins.ID, ParentType: models.ParentIssue, ParentID: iss.ID, Tag: "video"})
	require.ErrorIs(t, err, common.ErrValidation)

	_, err = e.media.Add(ctx, AddMediaParams{InspectionID: "ins_missing", ParentType: models.ParentIssue, ParentID: iss.ID, Tag: models.TagIssue})
	require.ErrorIs(t, err, common.ErrParentNotFound)

	_, err = e.media.Add(ctx, AddMediaParams{InspectionID: ins.ID, ParentType: models.ParentEquipment, ParentID: "eq_missing", Tag: models.TagEquipment})
	require.ErrorIs(t, err, common.ErrParentNotFound)

	// equipment of another inspection is out of scope
	loc2, err := e.locations.Create(ctx, CreateLocationParams{Name: "Annet sted"})
	require.NoError(t, err)
	ins2, err := e.inspections.Create(ctx, CreateInspectionParams{LocationID: loc2.ID})
	require.NoError(t, err)
	_, err = e.media.Add(ctx, AddMediaParams{InspectionID: ins2.ID, ParentType: models.ParentEquipment, ParentID: eq.ID, Tag: models.TagEquipment})
	require.ErrorIs(t, err, common.ErrWrongInspection)

	// attaching straight to the inspection works
	m, err := e.media.Add(ctx, AddMediaParams{InspectionID: ins.ID, ParentType: models.ParentInspection, ParentID: ins.ID, Tag: models.TagOverview, Blob: []byte{1}, MimeType: "image/jpeg"})
	require.NoError(t, err)
	assert.False(t, m.Uploaded)
	assert.Empty(t, m.UploadError)
}

func TestAssembleBundle_UnknownID_IsEmptyBundle(t *testing.T) {
	e := newTestEnv(t)

	b, err := e.bundles.Assemble(context.Background(), "ins_missing")
	require.NoError(t, err)
	assert.Nil(t, b.Inspection)
	assert.Nil(t, b.Location)
	assert.Empty(t, b.Equipment)
	assert.Empty(t, b.Issues)
	assert.Empty(t, b.Media)
	assert.NotNil(t, b.Equipment)
	assert.NotNil(t, b.Issues)
	assert.NotNil(t, b.Media)
}

func TestCaptureScenario_EndToEnd(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	loc, ins, eq, iss := e.mustCaptureTree(t, ctx)

	m, err := e.media.Add(ctx, AddMediaParams{
		InspectionID: ins.ID,
		ParentType:   models.ParentIssue,
		ParentID:     iss.ID,
		Tag:          models.TagIssue,
		Blob:         []byte{0xFF, 0xD8},
		MimeType:     "image/jpeg",
	})
	require.NoError(t, err)

	out, err := e.issues.AttachMedia(ctx, iss.ID, m.ID)
	require.NoError(t, err)
	require.Equal(t, OutcomeApplied, out)

	b, err := e.bundles.Assemble(ctx, ins.ID)
	require.NoError(t, err)

	require.NotNil(t, b.Inspection)
	assert.Equal(t, ins.ID, b.Inspection.ID)
	require.NotNil(t, b.Location)
	assert.Equal(t, loc.ID, b.Location.ID)

	require.Len(t, b.Equipment, 1)
	assert.Equal(t, eq.ID, b.Equipment[0].ID)

	require.Len(t, b.Issues, 1)
	assert.Equal(t, iss.ID, b.Issues[0].ID)
	assert.Equal(t, []string{m.ID}, b.Issues[0].MediaIDs)

	require.Len(t, b.Media, 1)
	assert.Equal(t, m.ID, b.Media[0].ID)
}

func TestGroupMediaByTag_CaptureOrder(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	_, ins, eq, iss := e.mustCaptureTree(t, ctx)

	first, err := e.media.Add(ctx, AddMediaParams{InspectionID: ins.ID, ParentType: models.ParentIssue, ParentID: iss.ID, Tag: models.TagIssue, Blob: []byte{1}, MimeType: "image/jpeg"})
	require.NoError(t, err)
	second, err := e.media.Add(ctx, AddMediaParams{InspectionID: ins.ID, ParentType: models.ParentIssue, ParentID: iss.ID, Tag: models.TagIssue, Blob: []byte{2}, MimeType: "image/jpeg"})
	require.NoError(t, err)
	_, err = e.media.Add(ctx, AddMediaParams{InspectionID: ins.ID, ParentType: models.ParentEquipment, ParentID: eq.ID, Tag: models.TagSign, Blob: []byte{3}, MimeType: "image/jpeg"})
	require.NoError(t, err)
	_, err = e.media.Add(ctx, AddMediaParams{InspectionID: ins.ID, ParentType: models.ParentInspection, ParentID: ins.ID, Tag: models.TagAudio, Blob: []byte{4}, MimeType: "audio/webm"})
	require.NoError(t, err)

	b, err := e.bundles.Assemble(ctx, ins.ID)
	require.NoError(t, err)

	grouped := GroupMediaByTag(b.Media)
	require.Len(t, grouped.Issue, 2)
	assert.Equal(t, first.ID, grouped.Issue[0].ID)
	assert.Equal(t, second.ID, grouped.Issue[1].ID)
	assert.Len(t, grouped.Sign, 1)
	assert.Len(t, grouped.Audio, 1)
	assert.Empty(t, grouped.Equipment)
	assert.Empty(t, grouped.Overview)
}
