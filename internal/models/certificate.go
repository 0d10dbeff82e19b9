package models

import "time"

type Certificate struct {
	BaseModel
	UserID              string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Name                string     `gorm:"not null" json:"name"`
	IssuingOrganization string     `json:"issuing_organization"`
	IssueDate           time.Time  `json:"issue_date"`
	ExpiryDate          *time.Time `json:"expiry_date"`
	FileURL             string     `json:"file_url"`
	Verified            bool       `gorm:"default:false" json:"verified"`
}

func (c *Certificate) OwnerUserID() string { return c.UserID }
