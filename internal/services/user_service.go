package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"petsit_backend/internal/imaging"
	"petsit_backend/internal/models"
	"petsit_backend/internal/repositories"
	"petsit_backend/internal/services/dto"
	"petsit_backend/internal/storage"
	"petsit_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	GetProfile(db *gorm.DB, userID string) (*models.User, error)
	GetPublicProfile(db *gorm.DB, userID string) (*models.User, error)
	UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*models.User, error)
	UploadProfileImage(ctx context.Context, db *gorm.DB, userID string, reader io.Reader) (string, error)
	ListUsers(db *gorm.DB, limit, offset int) ([]models.User, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
	store    storage.Storage
	images   *imaging.Processor
}

func NewUserService(userRepo repositories.UserRepository, store storage.Storage, images *imaging.Processor) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		store:    store,
		images:   images,
	}
}

func (s *UserServiceImpl) GetProfile(db *gorm.DB, userID string) (*models.User, error) {
	user, err := s.userRepo.FindProfile(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) GetPublicProfile(db *gorm.DB, userID string) (*models.User, error) {
	user, err := s.userRepo.FindPublicProfile(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	// The public view never exposes contact details.
	user.Email = ""
	user.Phone = ""
	user.Address = ""
	return user, nil
}

func (s *UserServiceImpl) UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Phone = req.Phone
	user.Address = req.Address
	user.Bio = req.Bio

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) UploadProfileImage(ctx context.Context, db *gorm.DB, userID string, reader io.Reader) (string, error) {
	processed, contentType, err := s.images.Fit(reader)
	if err != nil {
		return "", apperrors.NewBadRequestError("Unsupported image format")
	}

	ext := ".jpg"
	if contentType == "image/png" {
		ext = ".png"
	}
	path := fmt.Sprintf("profile-images/%s/%d%s", userID, time.Now().UnixNano(), ext)

	if err := s.store.Save(ctx, path, processed, contentType); err != nil {
		return "", apperrors.InternalError(err)
	}

	url, err := s.store.GetURL(ctx, path)
	if err != nil {
		return "", apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdateProfileImage(db, userID, url); err != nil {
		return "", apperrors.InternalError(err)
	}
	return url, nil
}

func (s *UserServiceImpl) ListUsers(db *gorm.DB, limit, offset int) ([]models.User, error) {
	users, err := s.userRepo.FindAll(db, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return users, nil
}
