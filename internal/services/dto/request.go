package dto

type CreateRequestRequest struct {
	PetID         string `json:"pet_id" binding:"required" validate:"required,uuid"`
	StartDatetime string `json:"start_datetime" binding:"required" validate:"required"`
	EndDatetime   string `json:"end_datetime" binding:"required" validate:"required"`
	Notes         string `json:"notes" validate:"max=4000"`
}

type UpdateRequestRequest struct {
	PetID         string `json:"pet_id" validate:"omitempty,uuid"`
	StartDatetime string `json:"start_datetime"`
	EndDatetime   string `json:"end_datetime"`
	Notes         string `json:"notes" validate:"max=4000"`
}

type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=4000"`
}
