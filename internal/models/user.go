package models

type User struct {
	BaseModel
	Email           string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash    string   `gorm:"not null" json:"-"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	Phone           string   `json:"phone"`
	Address         string   `json:"address"`
	Bio             string   `json:"bio"`
	ProfileImageURL string   `json:"profile_image_url"`
	Role            UserRole `gorm:"type:varchar(20);not null;default:'user'" json:"role"`

	// Relations
	Pets              []Pet              `gorm:"foreignKey:OwnerID" json:"pets,omitempty"`
	Certificates      []Certificate      `gorm:"foreignKey:UserID" json:"certificates,omitempty"`
	WorkExperiences   []WorkExperience   `gorm:"foreignKey:UserID" json:"work_experiences,omitempty"`
	AvailabilitySlots []AvailabilitySlot `gorm:"foreignKey:UserID" json:"availability_slots,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
