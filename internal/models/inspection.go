package models

import "time"

// InspectionStatus is the forward-only lifecycle of an inspection.
type InspectionStatus string

const (
	// StatusCapturing means the inspector is still in the field.
	StatusCapturing InspectionStatus = "capturing"
	// StatusReview means capture has ended and the data is being reviewed.
	StatusReview InspectionStatus = "review"
	// StatusClosed is reserved for a future archive step.
	StatusClosed InspectionStatus = "closed"
)

func (s InspectionStatus) Valid() bool {
	switch s {
	case StatusCapturing, StatusReview, StatusClosed:
		return true
	}
	return false
}

// Inspection is one visit to a location.
type Inspection struct {
	ID         string           `json:"id"`
	LocationID string           `json:"locationId"`
	Kind       string           `json:"kind"`
	Status     InspectionStatus `json:"status"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}
