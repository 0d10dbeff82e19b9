package repositories

import (
	"errors"

	"petsit_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPetNotFound = errors.New("pet not found")

type PetRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Pet, error)
	FindByOwner(db *gorm.DB, ownerID string) ([]models.Pet, error)
	Create(db *gorm.DB, pet *models.Pet) error
	Update(db *gorm.DB, pet *models.Pet) error
	Delete(db *gorm.DB, id string) error
	CountAll(db *gorm.DB) (int64, error)
}

type PetRepositoryImpl struct{}

func NewPetRepository() PetRepository {
	return &PetRepositoryImpl{}
}

func (r *PetRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Pet, error) {
	var pet models.Pet
	err := db.First(&pet, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPetNotFound
		}
		return nil, err
	}
	return &pet, nil
}

func (r *PetRepositoryImpl) FindByOwner(db *gorm.DB, ownerID string) ([]models.Pet, error) {
	var pets []models.Pet
	err := db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&pets).Error
	return pets, err
}

func (r *PetRepositoryImpl) Create(db *gorm.DB, pet *models.Pet) error {
	return db.Create(pet).Error
}

func (r *PetRepositoryImpl) Update(db *gorm.DB, pet *models.Pet) error {
	result := db.Model(&models.Pet{}).Where("id = ?", pet.ID).Updates(map[string]interface{}{
		"name":        pet.Name,
		"animal_type": pet.AnimalType,
		"breed":       pet.Breed,
		"age":         pet.Age,
		"diet":        pet.Diet,
		"allergies":   pet.Allergies,
		"care_notes":  pet.CareNotes,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPetNotFound
	}
	return nil
}

func (r *PetRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Pet{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPetNotFound
	}
	return nil
}

func (r *PetRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Pet{}).Count(&count).Error
	return count, err
}
