package services

import (
	"time"

	"petsit_backend/internal/models"
	"petsit_backend/internal/repositories"
	"petsit_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// MatchingService filters the open request pool down to the requests a
// sitter's declared availability actually covers.
type MatchingService interface {
	FindAvailableRequests(db *gorm.DB, sitter *models.User) ([]models.SittingRequest, error)
}

type MatchingServiceImpl struct {
	requestRepo repositories.RequestRepository
	slotRepo    repositories.AvailabilityRepository
}

func NewMatchingService(requestRepo repositories.RequestRepository, slotRepo repositories.AvailabilityRepository) MatchingService {
	return &MatchingServiceImpl{
		requestRepo: requestRepo,
		slotRepo:    slotRepo,
	}
}

// FindAvailableRequests returns pending requests, excluding the sitter's own
// and already-applied ones, that at least one of the sitter's slots covers.
// A sitter with no slots sees nothing.
func (s *MatchingServiceImpl) FindAvailableRequests(db *gorm.DB, sitter *models.User) ([]models.SittingRequest, error) {
	slots, err := s.slotRepo.FindByUser(db, sitter.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(slots) == 0 {
		return []models.SittingRequest{}, nil
	}

	candidates, err := s.requestRepo.FindPendingForSitter(db, sitter.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	matched := make([]models.SittingRequest, 0, len(candidates))
	for _, req := range candidates {
		if req.Pet == nil {
			continue
		}
		for i := range slots {
			if slotCovers(&slots[i], req.StartDatetime, req.EndDatetime, req.Pet.AnimalType) {
				matched = append(matched, req)
				break
			}
		}
	}
	return matched, nil
}

// slotCovers reports whether a slot fully contains the [start, end] window
// and accepts the pet type. The slot's window is its calendar date combined
// with its "HH:MM" bounds, in UTC.
func slotCovers(slot *models.AvailabilitySlot, start, end time.Time, petType string) bool {
	if !slot.AcceptsPetType(petType) {
		return false
	}

	slotStart, ok := combineDateTime(slot.Date, slot.StartTime)
	if !ok {
		return false
	}
	slotEnd, ok := combineDateTime(slot.Date, slot.EndTime)
	if !ok {
		return false
	}

	return !start.Before(slotStart) && !end.After(slotEnd)
}

// combineDateTime builds the instant for a slot date and an "HH:MM" string.
func combineDateTime(date time.Time, hhmm string) (time.Time, bool) {
	t, err := time.ParseInLocation("15:04", hhmm, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), true
}
