package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// AvailabilitySlot is a sitter-declared window: a calendar date plus
// wall-clock start/end strings ("HH:MM"). All dates and times are
// interpreted in UTC.
type AvailabilitySlot struct {
	BaseModel
	UserID           string         `gorm:"type:uuid;not null;index" json:"user_id"`
	Date             time.Time      `gorm:"type:date;not null" json:"date"`
	StartTime        string         `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime          string         `gorm:"type:varchar(5);not null" json:"end_time"`
	MaxPets          int            `gorm:"default:1" json:"max_pets"`
	AcceptedPetTypes datatypes.JSON `gorm:"type:jsonb" json:"accepted_pet_types"`
}

func (s *AvailabilitySlot) OwnerUserID() string { return s.UserID }

// GetAcceptedPetTypes decodes the jsonb column. A null or malformed column
// yields an empty list, which matches nothing.
func (s *AvailabilitySlot) GetAcceptedPetTypes() []string {
	if len(s.AcceptedPetTypes) == 0 {
		return nil
	}
	var types []string
	if err := json.Unmarshal(s.AcceptedPetTypes, &types); err != nil {
		return nil
	}
	return types
}

func (s *AvailabilitySlot) SetAcceptedPetTypes(types []string) error {
	raw, err := json.Marshal(types)
	if err != nil {
		return err
	}
	s.AcceptedPetTypes = datatypes.JSON(raw)
	return nil
}

// AcceptsPetType reports whether the slot's accepted-type set contains t.
func (s *AvailabilitySlot) AcceptsPetType(t string) bool {
	if t == "" {
		return false
	}
	for _, accepted := range s.GetAcceptedPetTypes() {
		if accepted == t {
			return true
		}
	}
	return false
}
