package dto

type CreatePetRequest struct {
	Name       string `json:"name" binding:"required" validate:"required,max=100"`
	AnimalType string `json:"animal_type" binding:"required" validate:"required,max=50"`
	Breed      string `json:"breed" validate:"max=100"`
	Age        int    `json:"age" validate:"min=0,max=200"`
	Diet       string `json:"diet" validate:"max=2000"`
	Allergies  string `json:"allergies" validate:"max=2000"`
	CareNotes  string `json:"care_notes" validate:"max=4000"`
}

type UpdatePetRequest struct {
	Name       string `json:"name" binding:"required" validate:"required,max=100"`
	AnimalType string `json:"animal_type" binding:"required" validate:"required,max=50"`
	Breed      string `json:"breed" validate:"max=100"`
	Age        int    `json:"age" validate:"min=0,max=200"`
	Diet       string `json:"diet" validate:"max=2000"`
	Allergies  string `json:"allergies" validate:"max=2000"`
	CareNotes  string `json:"care_notes" validate:"max=4000"`
}
