// Package models defines the typed records of the field-inspection domain as
// they are persisted in the local record store. JSON tags are the stored
// document field names; the indexed fields must keep their names in sync with
// the store schema.
package models

import (
	"encoding/json"
	"time"
)

// Setting is one row of the settings key/value table. Value is opaque JSON;
// typed accessors live in the settings repository.
type Setting struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Well-known settings keys consumed by the embedding UI.
const (
	SettingUploadEndpoint     = "uploadEndpoint"
	SettingIssueTypes         = "issueTypes"
	SettingSeverity           = "severity"
	SettingActiveInspectionID = "activeInspectionId"
)

// LabeledOption is an {id, label} pair used by the issueTypes and severity
// settings lists.
type LabeledOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
