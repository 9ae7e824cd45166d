package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnums_Valid(t *testing.T) {
	assert.True(t, StatusCapturing.Valid())
	assert.True(t, StatusReview.Valid())
	assert.True(t, StatusClosed.Valid())
	assert.False(t, InspectionStatus("done").Valid())

	assert.True(t, ParentIssue.Valid())
	assert.False(t, ParentType("location").Valid())

	assert.True(t, TagOverview.Valid())
	assert.False(t, MediaTag("video").Valid())

	assert.True(t, SlotCover.Valid())
	assert.True(t, SlotSign.Valid())
	assert.False(t, CoverSlot("back").Valid())
}

func TestIssue_HasMedia(t *testing.T) {
	iss := &Issue{MediaIDs: []string{"a", "b"}}
	assert.True(t, iss.HasMedia("a"))
	assert.False(t, iss.HasMedia("c"))
}

func TestMedia_UploadEligible(t *testing.T) {
	base := Media{Blob: []byte{1}, MimeType: "image/jpeg", Tag: TagIssue}

	assert.True(t, base.UploadEligible())

	noBlob := base
	noBlob.Blob = nil
	assert.False(t, noBlob.UploadEligible())

	noMime := base
	noMime.MimeType = ""
	assert.False(t, noMime.UploadEligible())

	audio := base
	audio.Tag = TagAudio
	assert.False(t, audio.UploadEligible())

	done := base
	done.Uploaded = true
	assert.False(t, done.UploadEligible())
}

// The JSON field names are the stored document format and the index
// extraction keys; renaming one silently breaks the secondary indexes.
func TestMedia_DocumentFieldNames(t *testing.T) {
	m := Media{ID: "m_1", InspectionID: "ins_1", ParentType: ParentIssue, ParentID: "iss_1", Tag: TagIssue}
	b, err := json.Marshal(m)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(b, &doc))
	assert.Equal(t, "ins_1", doc["inspectionId"])
	assert.Equal(t, "issue", doc["parentType"])
	assert.Equal(t, "iss_1", doc["parentId"])
	assert.Equal(t, "issue", doc["tag"])
}
