package dto

type ExperienceRequest struct {
	Title        string `json:"title" binding:"required" validate:"required,max=200"`
	Organization string `json:"organization" validate:"max=200"`
	StartDate    string `json:"start_date" binding:"required" validate:"required,datetime=2006-01-02"`
	EndDate      string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Description  string `json:"description" validate:"max=4000"`
}
