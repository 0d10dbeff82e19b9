package repositories

import (
	"errors"

	"petsit_backend/internal/models"

	"gorm.io/gorm"
)

var ErrExperienceNotFound = errors.New("work experience not found")

type ExperienceRepository interface {
	FindByID(db *gorm.DB, id string) (*models.WorkExperience, error)
	FindByUser(db *gorm.DB, userID string) ([]models.WorkExperience, error)
	Create(db *gorm.DB, exp *models.WorkExperience) error
	Update(db *gorm.DB, exp *models.WorkExperience) error
	Delete(db *gorm.DB, id string) error
}

type ExperienceRepositoryImpl struct{}

func NewExperienceRepository() ExperienceRepository {
	return &ExperienceRepositoryImpl{}
}

func (r *ExperienceRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.WorkExperience, error) {
	var exp models.WorkExperience
	err := db.First(&exp, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, err
	}
	return &exp, nil
}

func (r *ExperienceRepositoryImpl) FindByUser(db *gorm.DB, userID string) ([]models.WorkExperience, error) {
	var exps []models.WorkExperience
	err := db.Where("user_id = ?", userID).Order("start_date DESC").Find(&exps).Error
	return exps, err
}

func (r *ExperienceRepositoryImpl) Create(db *gorm.DB, exp *models.WorkExperience) error {
	return db.Create(exp).Error
}

func (r *ExperienceRepositoryImpl) Update(db *gorm.DB, exp *models.WorkExperience) error {
	result := db.Model(&models.WorkExperience{}).Where("id = ?", exp.ID).Updates(map[string]interface{}{
		"title":        exp.Title,
		"organization": exp.Organization,
		"start_date":   exp.StartDate,
		"end_date":     exp.EndDate,
		"description":  exp.Description,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrExperienceNotFound
	}
	return nil
}

func (r *ExperienceRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.WorkExperience{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrExperienceNotFound
	}
	return nil
}
