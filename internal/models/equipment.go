package models

import "time"

// Equipment is one piece of inspected equipment inside an inspection.
// CoverMediaID and SignMediaID, when set, point at media of the same
// inspection (the overview photo and the type-plate photo).
type Equipment struct {
	ID              string    `json:"id"`
	InspectionID    string    `json:"inspectionId"`
	Title           string    `json:"title"`
	Vendor          string    `json:"vendor"`
	EquipmentNo     string    `json:"equipmentNo"`
	AddressOverride string    `json:"addressOverride"`
	CoverMediaID    string    `json:"coverMediaId"`
	SignMediaID     string    `json:"signMediaId"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// CoverSlot names one of the two media slots on a piece of equipment.
type CoverSlot string

const (
	SlotCover CoverSlot = "cover"
	SlotSign  CoverSlot = "sign"
)

func (s CoverSlot) Valid() bool {
	return s == SlotCover || s == SlotSign
}
