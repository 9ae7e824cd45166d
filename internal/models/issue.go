package models

import "time"

// MaxIssueMedia caps how many media ids an issue may carry.
const MaxIssueMedia = 4

// Issue is a defect found on a piece of equipment. MediaIDs keeps insertion
// order, holds no duplicates, and never exceeds MaxIssueMedia entries.
type Issue struct {
	ID          string    `json:"id"`
	EquipmentID string    `json:"equipmentId"`
	IssueTypeID string    `json:"issueTypeId"`
	SeverityID  string    `json:"severityId"`
	Comment     string    `json:"comment"`
	MediaIDs    []string  `json:"mediaIds"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// HasMedia reports whether mediaID is already attached.
func (i *Issue) HasMedia(mediaID string) bool {
	for _, id := range i.MediaIDs {
		if id == mediaID {
			return true
		}
	}
	return false
}
