package models

type Pet struct {
	BaseModel
	OwnerID    string `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name       string `gorm:"not null" json:"name"`
	AnimalType string `gorm:"not null" json:"animal_type"`
	Breed      string `json:"breed"`
	Age        int    `json:"age"`

	// Care instructions, free text
	Diet      string `json:"diet"`
	Allergies string `json:"allergies"`
	CareNotes string `json:"care_notes"`
}

func (p *Pet) OwnerUserID() string { return p.OwnerID }
