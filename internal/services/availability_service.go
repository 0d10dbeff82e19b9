package services

import (
	"time"

	"petsit_backend/internal/auth"
	"petsit_backend/internal/models"
	"petsit_backend/internal/repositories"
	"petsit_backend/internal/services/dto"
	"petsit_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AvailabilityService interface {
	Create(db *gorm.DB, owner *models.User, req *dto.CreateSlotRequest) (*models.AvailabilitySlot, error)
	ListMine(db *gorm.DB, userID string) ([]models.AvailabilitySlot, error)
	Update(db *gorm.DB, actor *models.User, slotID string, req *dto.UpdateSlotRequest) (*models.AvailabilitySlot, error)
	Delete(db *gorm.DB, actor *models.User, slotID string) error
}

type AvailabilityServiceImpl struct {
	slotRepo repositories.AvailabilityRepository
}

func NewAvailabilityService(slotRepo repositories.AvailabilityRepository) AvailabilityService {
	return &AvailabilityServiceImpl{slotRepo: slotRepo}
}

func (s *AvailabilityServiceImpl) Create(db *gorm.DB, owner *models.User, req *dto.CreateSlotRequest) (*models.AvailabilitySlot, error) {
	date, err := validateSlotWindow(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	slot := &models.AvailabilitySlot{
		UserID:    owner.ID,
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		MaxPets:   req.MaxPets,
	}
	if slot.MaxPets == 0 {
		slot.MaxPets = 1
	}
	if err := slot.SetAcceptedPetTypes(req.AcceptedPetTypes); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.slotRepo.Create(db, slot); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return slot, nil
}

func (s *AvailabilityServiceImpl) ListMine(db *gorm.DB, userID string) ([]models.AvailabilitySlot, error) {
	slots, err := s.slotRepo.FindByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return slots, nil
}

func (s *AvailabilityServiceImpl) Update(db *gorm.DB, actor *models.User, slotID string, req *dto.UpdateSlotRequest) (*models.AvailabilitySlot, error) {
	slot, err := s.findSlot(db, slotID)
	if err != nil {
		return nil, err
	}
	if !auth.Can(actor, auth.ActionUpdate, slot) {
		return nil, apperrors.ErrNotResourceOwner
	}

	date, err := validateSlotWindow(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	slot.Date = date
	slot.StartTime = req.StartTime
	slot.EndTime = req.EndTime
	slot.MaxPets = req.MaxPets
	if slot.MaxPets == 0 {
		slot.MaxPets = 1
	}
	if err := slot.SetAcceptedPetTypes(req.AcceptedPetTypes); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.slotRepo.Update(db, slot); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return slot, nil
}

func (s *AvailabilityServiceImpl) Delete(db *gorm.DB, actor *models.User, slotID string) error {
	slot, err := s.findSlot(db, slotID)
	if err != nil {
		return err
	}
	if !auth.Can(actor, auth.ActionDelete, slot) {
		return apperrors.ErrNotResourceOwner
	}
	if err := s.slotRepo.Delete(db, slot.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AvailabilityServiceImpl) findSlot(db *gorm.DB, slotID string) (*models.AvailabilitySlot, error) {
	slot, err := s.slotRepo.FindByID(db, slotID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSlotNotFound) {
			return nil, apperrors.NewNotFoundError("availability", "Availability slot not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return slot, nil
}

// validateSlotWindow parses the date and checks the wall-clock window is
// non-empty. Times are compared lexically, which is valid for "HH:MM".
func validateSlotWindow(date, startTime, endTime string) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return time.Time{}, apperrors.NewBadRequestError("Invalid date")
	}
	if startTime >= endTime {
		return time.Time{}, apperrors.NewBadRequestError("start_time must be before end_time")
	}
	return d, nil
}
