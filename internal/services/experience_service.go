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

type ExperienceService interface {
	Create(db *gorm.DB, owner *models.User, req *dto.ExperienceRequest) (*models.WorkExperience, error)
	ListMine(db *gorm.DB, userID string) ([]models.WorkExperience, error)
	Update(db *gorm.DB, actor *models.User, id string, req *dto.ExperienceRequest) (*models.WorkExperience, error)
	Delete(db *gorm.DB, actor *models.User, id string) error
}

type ExperienceServiceImpl struct {
	expRepo repositories.ExperienceRepository
}

func NewExperienceService(expRepo repositories.ExperienceRepository) ExperienceService {
	return &ExperienceServiceImpl{expRepo: expRepo}
}

func (s *ExperienceServiceImpl) Create(db *gorm.DB, owner *models.User, req *dto.ExperienceRequest) (*models.WorkExperience, error) {
	startDate, endDate, err := parseExperienceDates(req)
	if err != nil {
		return nil, err
	}

	exp := &models.WorkExperience{
		UserID:       owner.ID,
		Title:        req.Title,
		Organization: req.Organization,
		StartDate:    startDate,
		EndDate:      endDate,
		Description:  req.Description,
	}
	if err := s.expRepo.Create(db, exp); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return exp, nil
}

func (s *ExperienceServiceImpl) ListMine(db *gorm.DB, userID string) ([]models.WorkExperience, error) {
	exps, err := s.expRepo.FindByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return exps, nil
}

func (s *ExperienceServiceImpl) Update(db *gorm.DB, actor *models.User, id string, req *dto.ExperienceRequest) (*models.WorkExperience, error) {
	exp, err := s.findExperience(db, id)
	if err != nil {
		return nil, err
	}
	if !auth.Can(actor, auth.ActionUpdate, exp) {
		return nil, apperrors.ErrNotResourceOwner
	}

	startDate, endDate, err := parseExperienceDates(req)
	if err != nil {
		return nil, err
	}

	exp.Title = req.Title
	exp.Organization = req.Organization
	exp.StartDate = startDate
	exp.EndDate = endDate
	exp.Description = req.Description

	if err := s.expRepo.Update(db, exp); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return exp, nil
}

func (s *ExperienceServiceImpl) Delete(db *gorm.DB, actor *models.User, id string) error {
	exp, err := s.findExperience(db, id)
	if err != nil {
		return err
	}
	if !auth.Can(actor, auth.ActionDelete, exp) {
		return apperrors.ErrNotResourceOwner
	}
	if err := s.expRepo.Delete(db, exp.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ExperienceServiceImpl) findExperience(db *gorm.DB, id string) (*models.WorkExperience, error) {
	exp, err := s.expRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrExperienceNotFound) {
			return nil, apperrors.NewNotFoundError("experience", "Work experience not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return exp, nil
}

func parseExperienceDates(req *dto.ExperienceRequest) (time.Time, *time.Time, error) {
	startDate, err := time.ParseInLocation("2006-01-02", req.StartDate, time.UTC)
	if err != nil {
		return time.Time{}, nil, apperrors.NewBadRequestError("Invalid start_date")
	}
	var endDate *time.Time
	if req.EndDate != "" {
		d, err := time.ParseInLocation("2006-01-02", req.EndDate, time.UTC)
		if err != nil {
			return time.Time{}, nil, apperrors.NewBadRequestError("Invalid end_date")
		}
		if d.Before(startDate) {
			return time.Time{}, nil, apperrors.NewBadRequestError("end_date must not be before start_date")
		}
		endDate = &d
	}
	return startDate, endDate, nil
}
