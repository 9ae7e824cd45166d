package models

import "time"

// ParentType names the kind of record a media item is attached to.
type ParentType string

const (
	ParentInspection ParentType = "inspection"
	ParentEquipment  ParentType = "equipment"
	ParentIssue      ParentType = "issue"
)

func (p ParentType) Valid() bool {
	switch p {
	case ParentInspection, ParentEquipment, ParentIssue:
		return true
	}
	return false
}

// MediaTag classifies what a captured media item shows.
type MediaTag string

const (
	TagEquipment MediaTag = "equipment"
	TagSign      MediaTag = "sign"
	TagIssue     MediaTag = "issue"
	TagOverview  MediaTag = "overview"
	TagAudio     MediaTag = "audio"
)

func (t MediaTag) Valid() bool {
	switch t {
	case TagEquipment, TagSign, TagIssue, TagOverview, TagAudio:
		return true
	}
	return false
}

// Media is a captured photo or audio note. It is attached to one record via
// (ParentType, ParentID) and additionally scoped to its inspection so bundle
// queries do not have to walk the tree. Uploaded/UploadError carry the sync
// bookkeeping: a non-empty error implies not uploaded.
type Media struct {
	ID           string     `json:"id"`
	InspectionID string     `json:"inspectionId"`
	ParentType   ParentType `json:"parentType"`
	ParentID     string     `json:"parentId"`
	Tag          MediaTag   `json:"tag"`
	Blob         []byte     `json:"blob"`
	MimeType     string     `json:"mime"`
	Note         string     `json:"note"`
	CreatedAt    time.Time  `json:"createdAt"`
	Uploaded     bool       `json:"uploaded"`
	UploadError  string     `json:"uploadError"`
}

// UploadEligible reports whether this item should be offered to the upload
// reconciler: it has a payload with a known type, is not an audio note, and
// has not been uploaded yet.
func (m *Media) UploadEligible() bool {
	return !m.Uploaded && len(m.Blob) > 0 && m.MimeType != "" && m.Tag != TagAudio
}
