package repositories

import (
	"errors"

	"petsit_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrRequestNotFound    = errors.New("sitting request not found")
	ErrAssignmentNotFound = errors.New("sitting assignment not found")
	ErrStatusConflict     = errors.New("request status changed concurrently")
)

type RequestRepository interface {
	FindByID(db *gorm.DB, id string) (*models.SittingRequest, error)
	FindByRequester(db *gorm.DB, requesterID string) ([]models.SittingRequest, error)
	// FindPendingForSitter returns pending requests excluding the sitter's
	// own and those the sitter has already applied to. The time/pet-type
	// matching happens in the service on top of this candidate set.
	FindPendingForSitter(db *gorm.DB, sitterID string) ([]models.SittingRequest, error)
	Create(db *gorm.DB, req *models.SittingRequest) error
	Update(db *gorm.DB, req *models.SittingRequest) error
	// TransitionStatus flips the status only when the current value still
	// matches from, so concurrent writers cannot both move the same
	// request out of a state. Returns ErrStatusConflict when another
	// writer got there first (or the row is gone).
	TransitionStatus(db *gorm.DB, id string, from, to models.RequestStatus) error
	Delete(db *gorm.DB, id string) error
	CountAll(db *gorm.DB) (int64, error)

	// Assignment operations
	CreateAssignment(db *gorm.DB, a *models.SittingAssignment) error
	FindAssignmentByID(db *gorm.DB, id string) (*models.SittingAssignment, error)
	FindAssignmentsBySitter(db *gorm.DB, sitterID string) ([]models.SittingAssignment, error)
	FindAssignment(db *gorm.DB, requestID, sitterID string) (*models.SittingAssignment, error)
	UpdateAssignmentStatus(db *gorm.DB, id string, status models.AssignmentStatus) error
	UpdateAssignmentReview(db *gorm.DB, id string, rating int, comment string) error
}

type RequestRepositoryImpl struct{}

func NewRequestRepository() RequestRepository {
	return &RequestRepositoryImpl{}
}

func (r *RequestRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.SittingRequest, error) {
	var req models.SittingRequest
	err := db.Preload("Pet").First(&req, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *RequestRepositoryImpl) FindByRequester(db *gorm.DB, requesterID string) ([]models.SittingRequest, error) {
	var reqs []models.SittingRequest
	err := db.Where("requester_id = ?", requesterID).
		Preload("Pet").
		Preload("Assignments").
		Preload("Assignments.Sitter").
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *RequestRepositoryImpl) FindPendingForSitter(db *gorm.DB, sitterID string) ([]models.SittingRequest, error) {
	var reqs []models.SittingRequest
	err := db.
		Where("status = ?", models.RequestStatusPending).
		Where("requester_id <> ?", sitterID).
		Where("NOT EXISTS (SELECT 1 FROM sitting_assignments sa WHERE sa.request_id = sitting_requests.id AND sa.sitter_id = ?)", sitterID).
		Preload("Pet").
		Preload("Requester").
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *RequestRepositoryImpl) Create(db *gorm.DB, req *models.SittingRequest) error {
	return db.Create(req).Error
}

func (r *RequestRepositoryImpl) Update(db *gorm.DB, req *models.SittingRequest) error {
	result := db.Model(&models.SittingRequest{}).Where("id = ?", req.ID).Updates(map[string]interface{}{
		"pet_id":         req.PetID,
		"start_datetime": req.StartDatetime,
		"end_datetime":   req.EndDatetime,
		"notes":          req.Notes,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}

func (r *RequestRepositoryImpl) TransitionStatus(db *gorm.DB, id string, from, to models.RequestStatus) error {
	result := db.Model(&models.SittingRequest{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

func (r *RequestRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.SittingRequest{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}

func (r *RequestRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.SittingRequest{}).Count(&count).Error
	return count, err
}

// Assignment operations

func (r *RequestRepositoryImpl) CreateAssignment(db *gorm.DB, a *models.SittingAssignment) error {
	return db.Create(a).Error
}

func (r *RequestRepositoryImpl) FindAssignmentByID(db *gorm.DB, id string) (*models.SittingAssignment, error) {
	var a models.SittingAssignment
	err := db.Preload("Request").First(&a, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *RequestRepositoryImpl) FindAssignmentsBySitter(db *gorm.DB, sitterID string) ([]models.SittingAssignment, error) {
	var assignments []models.SittingAssignment
	err := db.Where("sitter_id = ?", sitterID).
		Preload("Request").
		Preload("Request.Pet").
		Preload("Request.Requester").
		Order("created_at DESC").
		Find(&assignments).Error
	return assignments, err
}

func (r *RequestRepositoryImpl) FindAssignment(db *gorm.DB, requestID, sitterID string) (*models.SittingAssignment, error) {
	var a models.SittingAssignment
	err := db.Where("request_id = ? AND sitter_id = ?", requestID, sitterID).First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *RequestRepositoryImpl) UpdateAssignmentStatus(db *gorm.DB, id string, status models.AssignmentStatus) error {
	result := db.Model(&models.SittingAssignment{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}

func (r *RequestRepositoryImpl) UpdateAssignmentReview(db *gorm.DB, id string, rating int, comment string) error {
	result := db.Model(&models.SittingAssignment{}).Where("id = ?", id).Updates(map[string]interface{}{
		"review_rating":  rating,
		"review_comment": comment,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}
