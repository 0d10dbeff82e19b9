package services

import (
	"time"

	"petsit_backend/internal/auth"
	"petsit_backend/internal/email"
	"petsit_backend/internal/logger"
	"petsit_backend/internal/models"
	"petsit_backend/internal/repositories"
	"petsit_backend/internal/services/dto"
	"petsit_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type RequestService interface {
	Create(db *gorm.DB, requester *models.User, req *dto.CreateRequestRequest) (*models.SittingRequest, error)
	Get(db *gorm.DB, actor *models.User, id string) (*models.SittingRequest, error)
	ListMine(db *gorm.DB, requesterID string) ([]models.SittingRequest, error)
	Update(db *gorm.DB, actor *models.User, id string, req *dto.UpdateRequestRequest) (*models.SittingRequest, error)
	Delete(db *gorm.DB, actor *models.User, id string) error

	// Apply assigns the calling sitter to a pending request. First
	// applicant wins; the request leaves the pending pool atomically.
	Apply(db *gorm.DB, sitter *models.User, requestID string) (*models.SittingAssignment, error)
	// Reject closes a pending request without a sitter.
	Reject(db *gorm.DB, actor *models.User, requestID string) (*models.SittingRequest, error)
	// ListAssignments returns the calling sitter's assignments.
	ListAssignments(db *gorm.DB, sitterID string) ([]models.SittingAssignment, error)
	// Complete marks an accepted assignment (and its request) completed.
	// Only the assigned sitter may complete.
	Complete(db *gorm.DB, sitter *models.User, assignmentID string) (*models.SittingAssignment, error)
	// Review records the requester's rating of a completed assignment.
	Review(db *gorm.DB, actor *models.User, assignmentID string, req *dto.ReviewRequest) (*models.SittingAssignment, error)
}

type RequestServiceImpl struct {
	requestRepo   repositories.RequestRepository
	petRepo       repositories.PetRepository
	userRepo      repositories.UserRepository
	emailProvider email.Provider
}

func NewRequestService(
	requestRepo repositories.RequestRepository,
	petRepo repositories.PetRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
) RequestService {
	return &RequestServiceImpl{
		requestRepo:   requestRepo,
		petRepo:       petRepo,
		userRepo:      userRepo,
		emailProvider: emailProvider,
	}
}

func (s *RequestServiceImpl) Create(db *gorm.DB, requester *models.User, req *dto.CreateRequestRequest) (*models.SittingRequest, error) {
	pet, err := s.petRepo.FindByID(db, req.PetID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPetNotFound) {
			return nil, apperrors.NewNotFoundError("pet", "Pet not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if !auth.Can(requester, auth.ActionRead, pet) {
		return nil, apperrors.ErrNotResourceOwner
	}

	start, end, err := parseRequestWindow(req.StartDatetime, req.EndDatetime)
	if err != nil {
		return nil, err
	}

	request := &models.SittingRequest{
		RequesterID:   requester.ID,
		PetID:         pet.ID,
		StartDatetime: start,
		EndDatetime:   end,
		Notes:         req.Notes,
		Status:        models.RequestStatusPending,
	}
	if err := s.requestRepo.Create(db, request); err != nil {
		return nil, apperrors.InternalError(err)
	}
	request.Pet = pet
	return request, nil
}

func (s *RequestServiceImpl) Get(db *gorm.DB, actor *models.User, id string) (*models.SittingRequest, error) {
	request, err := s.findRequest(db, id)
	if err != nil {
		return nil, err
	}
	if !auth.Can(actor, auth.ActionRead, request) {
		return nil, apperrors.ErrNotResourceOwner
	}
	return request, nil
}

func (s *RequestServiceImpl) ListMine(db *gorm.DB, requesterID string) ([]models.SittingRequest, error) {
	requests, err := s.requestRepo.FindByRequester(db, requesterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return requests, nil
}

func (s *RequestServiceImpl) Update(db *gorm.DB, actor *models.User, id string, req *dto.UpdateRequestRequest) (*models.SittingRequest, error) {
	request, err := s.findRequest(db, id)
	if err != nil {
		return nil, err
	}
	if !auth.Can(actor, auth.ActionUpdate, request) {
		return nil, apperrors.ErrNotResourceOwner
	}
	if request.Status != models.RequestStatusPending {
		return nil, apperrors.ErrInvalidStateTransition("request", "Only pending requests can be edited")
	}

	if req.PetID != "" && req.PetID != request.PetID {
		pet, err := s.petRepo.FindByID(db, req.PetID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrPetNotFound) {
				return nil, apperrors.NewNotFoundError("pet", "Pet not found")
			}
			return nil, apperrors.InternalError(err)
		}
		if !auth.Can(actor, auth.ActionRead, pet) {
			return nil, apperrors.ErrNotResourceOwner
		}
		request.PetID = pet.ID
		request.Pet = pet
	}

	startStr, endStr := req.StartDatetime, req.EndDatetime
	if startStr == "" {
		startStr = request.StartDatetime.Format(time.RFC3339)
	}
	if endStr == "" {
		endStr = request.EndDatetime.Format(time.RFC3339)
	}
	start, end, err := parseRequestWindow(startStr, endStr)
	if err != nil {
		return nil, err
	}
	request.StartDatetime = start
	request.EndDatetime = end
	if req.Notes != "" {
		request.Notes = req.Notes
	}

	if err := s.requestRepo.Update(db, request); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return request, nil
}

func (s *RequestServiceImpl) Delete(db *gorm.DB, actor *models.User, id string) error {
	request, err := s.findRequest(db, id)
	if err != nil {
		return err
	}
	if !auth.Can(actor, auth.ActionDelete, request) {
		return apperrors.ErrNotResourceOwner
	}
	if request.Status != models.RequestStatusPending {
		return apperrors.ErrInvalidStateTransition("request", "Only pending requests can be deleted")
	}
	if err := s.requestRepo.Delete(db, request.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *RequestServiceImpl) Apply(db *gorm.DB, sitter *models.User, requestID string) (*models.SittingAssignment, error) {
	var assignment *models.SittingAssignment
	var request *models.SittingRequest

	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		request, err = s.findRequest(tx, requestID)
		if err != nil {
			return err
		}
		if request.RequesterID == sitter.ID {
			return apperrors.ErrOwnRequest
		}
		if request.Status != models.RequestStatusPending {
			return apperrors.ErrRequestNotPending
		}

		if _, err := s.requestRepo.FindAssignment(tx, request.ID, sitter.ID); err == nil {
			return apperrors.ErrAlreadyApplied
		} else if !apperrors.Is(err, repositories.ErrAssignmentNotFound) {
			return apperrors.InternalError(err)
		}

		assignment = &models.SittingAssignment{
			RequestID: request.ID,
			SitterID:  sitter.ID,
			Status:    models.AssignmentStatusAccepted,
		}
		if err := s.requestRepo.CreateAssignment(tx, assignment); err != nil {
			return apperrors.InternalError(err)
		}
		// Conditional flip: a concurrent applicant who committed between
		// our pending check and this update leaves zero rows matched, and
		// the whole transaction (assignment included) rolls back.
		if err := s.requestRepo.TransitionStatus(tx, request.ID, models.RequestStatusPending, models.RequestStatusAccepted); err != nil {
			if apperrors.Is(err, repositories.ErrStatusConflict) {
				return apperrors.ErrRequestNotPending
			}
			return apperrors.InternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyRequester(db, request, func(addr, name, petName string) error {
		return s.emailProvider.SendRequestAccepted(addr, name, petName)
	})

	assignment.Request = request
	assignment.Request.Status = models.RequestStatusAccepted
	return assignment, nil
}

func (s *RequestServiceImpl) Reject(db *gorm.DB, actor *models.User, requestID string) (*models.SittingRequest, error) {
	request, err := s.findRequest(db, requestID)
	if err != nil {
		return nil, err
	}
	if !auth.Can(actor, auth.ActionUpdate, request) {
		return nil, apperrors.ErrNotResourceOwner
	}
	if request.Status != models.RequestStatusPending {
		return nil, apperrors.ErrInvalidStateTransition("request", "Only pending requests can be rejected")
	}

	if err := s.requestRepo.TransitionStatus(db, request.ID, models.RequestStatusPending, models.RequestStatusRejected); err != nil {
		if apperrors.Is(err, repositories.ErrStatusConflict) {
			return nil, apperrors.ErrInvalidStateTransition("request", "Only pending requests can be rejected")
		}
		return nil, apperrors.InternalError(err)
	}
	request.Status = models.RequestStatusRejected
	return request, nil
}

func (s *RequestServiceImpl) ListAssignments(db *gorm.DB, sitterID string) ([]models.SittingAssignment, error) {
	assignments, err := s.requestRepo.FindAssignmentsBySitter(db, sitterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return assignments, nil
}

func (s *RequestServiceImpl) Complete(db *gorm.DB, sitter *models.User, assignmentID string) (*models.SittingAssignment, error) {
	var assignment *models.SittingAssignment

	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		assignment, err = s.findAssignment(tx, assignmentID)
		if err != nil {
			return err
		}
		if assignment.SitterID != sitter.ID {
			return apperrors.ErrNotResourceOwner
		}
		if assignment.Status != models.AssignmentStatusAccepted {
			return apperrors.ErrInvalidStateTransition("assignment", "Only accepted assignments can be completed")
		}

		if err := s.requestRepo.UpdateAssignmentStatus(tx, assignment.ID, models.AssignmentStatusCompleted); err != nil {
			return apperrors.InternalError(err)
		}
		if err := s.requestRepo.TransitionStatus(tx, assignment.RequestID, models.RequestStatusAccepted, models.RequestStatusCompleted); err != nil {
			if apperrors.Is(err, repositories.ErrStatusConflict) {
				return apperrors.ErrInvalidStateTransition("assignment", "Only accepted assignments can be completed")
			}
			return apperrors.InternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyRequester(db, assignment.Request, func(addr, name, petName string) error {
		return s.emailProvider.SendRequestCompleted(addr, name, petName)
	})

	assignment.Status = models.AssignmentStatusCompleted
	if assignment.Request != nil {
		assignment.Request.Status = models.RequestStatusCompleted
	}
	return assignment, nil
}

func (s *RequestServiceImpl) Review(db *gorm.DB, actor *models.User, assignmentID string, req *dto.ReviewRequest) (*models.SittingAssignment, error) {
	assignment, err := s.findAssignment(db, assignmentID)
	if err != nil {
		return nil, err
	}
	if assignment.Request == nil || !auth.Can(actor, auth.ActionUpdate, assignment.Request) {
		return nil, apperrors.ErrNotResourceOwner
	}
	if assignment.Status != models.AssignmentStatusCompleted {
		return nil, apperrors.ErrInvalidStateTransition("assignment", "Only completed sittings can be reviewed")
	}

	if err := s.requestRepo.UpdateAssignmentReview(db, assignment.ID, req.Rating, req.Comment); err != nil {
		return nil, apperrors.InternalError(err)
	}
	rating := req.Rating
	comment := req.Comment
	assignment.ReviewRating = &rating
	assignment.ReviewComment = &comment
	return assignment, nil
}

func (s *RequestServiceImpl) findRequest(db *gorm.DB, id string) (*models.SittingRequest, error) {
	request, err := s.requestRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRequestNotFound) {
			return nil, apperrors.NewNotFoundError("request", "Sitting request not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return request, nil
}

func (s *RequestServiceImpl) findAssignment(db *gorm.DB, id string) (*models.SittingAssignment, error) {
	assignment, err := s.requestRepo.FindAssignmentByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAssignmentNotFound) {
			return nil, apperrors.NewNotFoundError("assignment", "Assignment not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return assignment, nil
}

// notifyRequester sends a lifecycle email to the request owner without
// blocking the caller.
func (s *RequestServiceImpl) notifyRequester(db *gorm.DB, request *models.SittingRequest, send func(addr, name, petName string) error) {
	if request == nil {
		return
	}
	requester, err := s.userRepo.FindByID(db, request.RequesterID)
	if err != nil {
		logger.Warn("failed to load requester for notification", "request_id", request.ID, "error", err)
		return
	}
	petName := ""
	if request.Pet != nil {
		petName = request.Pet.Name
	}
	go func(addr, name, pet string) {
		if err := send(addr, name, pet); err != nil {
			logger.Warn("failed to send notification email", "email", addr, "error", err)
		}
	}(requester.Email, requester.FirstName, petName)
}

// parseRequestWindow accepts RFC3339 bounds and enforces a non-empty window.
func parseRequestWindow(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewBadRequestError("Invalid start_datetime; use RFC3339")
	}
	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewBadRequestError("Invalid end_datetime; use RFC3339")
	}
	if !start.Before(end) {
		return time.Time{}, time.Time{}, apperrors.NewBadRequestError("start_datetime must be before end_datetime")
	}
	return start.UTC(), end.UTC(), nil
}
