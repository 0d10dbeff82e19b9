package dto

type CreateSlotRequest struct {
	Date             string   `json:"date" binding:"required" validate:"required,datetime=2006-01-02"`
	StartTime        string   `json:"start_time" binding:"required" validate:"required,datetime=15:04"`
	EndTime          string   `json:"end_time" binding:"required" validate:"required,datetime=15:04"`
	MaxPets          int      `json:"max_pets" validate:"min=0,max=50"`
	AcceptedPetTypes []string `json:"accepted_pet_types" validate:"max=20,dive,max=50"`
}

type UpdateSlotRequest struct {
	Date             string   `json:"date" binding:"required" validate:"required,datetime=2006-01-02"`
	StartTime        string   `json:"start_time" binding:"required" validate:"required,datetime=15:04"`
	EndTime          string   `json:"end_time" binding:"required" validate:"required,datetime=15:04"`
	MaxPets          int      `json:"max_pets" validate:"min=0,max=50"`
	AcceptedPetTypes []string `json:"accepted_pet_types" validate:"max=20,dive,max=50"`
}
