package models

import "time"

type SittingRequest struct {
	BaseModel
	RequesterID   string        `gorm:"type:uuid;not null;index" json:"requester_id"`
	PetID         string        `gorm:"type:uuid;not null;index" json:"pet_id"`
	StartDatetime time.Time     `gorm:"not null" json:"start_datetime"`
	EndDatetime   time.Time     `gorm:"not null" json:"end_datetime"`
	Notes         string        `json:"notes"`
	Status        RequestStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	// Relations
	Pet         *Pet                `gorm:"foreignKey:PetID" json:"pet,omitempty"`
	Requester   *User               `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Assignments []SittingAssignment `gorm:"foreignKey:RequestID" json:"assignments,omitempty"`
}

func (r *SittingRequest) OwnerUserID() string { return r.RequesterID }

type SittingAssignment struct {
	BaseModel
	RequestID string           `gorm:"type:uuid;not null;index" json:"request_id"`
	SitterID  string           `gorm:"type:uuid;not null;index" json:"sitter_id"`
	Status    AssignmentStatus `gorm:"type:varchar(20);not null" json:"status"`

	// Review, settable once the assignment is completed
	ReviewRating  *int    `gorm:"check:review_rating >= 1 AND review_rating <= 5" json:"review_rating"`
	ReviewComment *string `json:"review_comment"`

	// Relations
	Request *SittingRequest `gorm:"foreignKey:RequestID" json:"request,omitempty"`
	Sitter  *User           `gorm:"foreignKey:SitterID" json:"sitter,omitempty"`
}
