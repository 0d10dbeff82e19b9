package repositories

import (
	"errors"

	"petsit_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSlotNotFound = errors.New("availability slot not found")

type AvailabilityRepository interface {
	FindByID(db *gorm.DB, id string) (*models.AvailabilitySlot, error)
	FindByUser(db *gorm.DB, userID string) ([]models.AvailabilitySlot, error)
	Create(db *gorm.DB, slot *models.AvailabilitySlot) error
	Update(db *gorm.DB, slot *models.AvailabilitySlot) error
	Delete(db *gorm.DB, id string) error
}

type AvailabilityRepositoryImpl struct{}

func NewAvailabilityRepository() AvailabilityRepository {
	return &AvailabilityRepositoryImpl{}
}

func (r *AvailabilityRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.AvailabilitySlot, error) {
	var slot models.AvailabilitySlot
	err := db.First(&slot, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return &slot, nil
}

func (r *AvailabilityRepositoryImpl) FindByUser(db *gorm.DB, userID string) ([]models.AvailabilitySlot, error) {
	var slots []models.AvailabilitySlot
	err := db.Where("user_id = ?", userID).Order("date ASC, start_time ASC").Find(&slots).Error
	return slots, err
}

func (r *AvailabilityRepositoryImpl) Create(db *gorm.DB, slot *models.AvailabilitySlot) error {
	return db.Create(slot).Error
}

func (r *AvailabilityRepositoryImpl) Update(db *gorm.DB, slot *models.AvailabilitySlot) error {
	result := db.Model(&models.AvailabilitySlot{}).Where("id = ?", slot.ID).Updates(map[string]interface{}{
		"date":               slot.Date,
		"start_time":         slot.StartTime,
		"end_time":           slot.EndTime,
		"max_pets":           slot.MaxPets,
		"accepted_pet_types": slot.AcceptedPetTypes,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSlotNotFound
	}
	return nil
}

func (r *AvailabilityRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.AvailabilitySlot{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSlotNotFound
	}
	return nil
}
