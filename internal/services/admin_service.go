package services

import (
	"petsit_backend/internal/repositories"
	"petsit_backend/internal/services/dto"
	"petsit_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AdminService interface {
	GetStats(db *gorm.DB) (*dto.StatsResponse, error)
}

type AdminServiceImpl struct {
	userRepo    repositories.UserRepository
	petRepo     repositories.PetRepository
	requestRepo repositories.RequestRepository
}

func NewAdminService(
	userRepo repositories.UserRepository,
	petRepo repositories.PetRepository,
	requestRepo repositories.RequestRepository,
) AdminService {
	return &AdminServiceImpl{
		userRepo:    userRepo,
		petRepo:     petRepo,
		requestRepo: requestRepo,
	}
}

func (s *AdminServiceImpl) GetStats(db *gorm.DB) (*dto.StatsResponse, error) {
	users, err := s.userRepo.CountAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	pets, err := s.petRepo.CountAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	requests, err := s.requestRepo.CountAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.StatsResponse{
		UserCount:    users,
		PetCount:     pets,
		RequestCount: requests,
	}, nil
}
