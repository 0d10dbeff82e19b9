package models

import "time"

type WorkExperience struct {
	BaseModel
	UserID       string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Title        string     `gorm:"not null" json:"title"`
	Organization string     `json:"organization"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	Description  string     `json:"description"`
}

func (w *WorkExperience) OwnerUserID() string { return w.UserID }
