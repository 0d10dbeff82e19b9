package services

import (
	"petsit_backend/internal/auth"
	"petsit_backend/internal/models"
	"petsit_backend/internal/repositories"
	"petsit_backend/internal/services/dto"
	"petsit_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type PetService interface {
	Create(db *gorm.DB, owner *models.User, req *dto.CreatePetRequest) (*models.Pet, error)
	Get(db *gorm.DB, actor *models.User, petID string) (*models.Pet, error)
	ListMine(db *gorm.DB, ownerID string) ([]models.Pet, error)
	Update(db *gorm.DB, actor *models.User, petID string, req *dto.UpdatePetRequest) (*models.Pet, error)
	Delete(db *gorm.DB, actor *models.User, petID string) error
}

type PetServiceImpl struct {
	petRepo repositories.PetRepository
}

func NewPetService(petRepo repositories.PetRepository) PetService {
	return &PetServiceImpl{petRepo: petRepo}
}

func (s *PetServiceImpl) Create(db *gorm.DB, owner *models.User, req *dto.CreatePetRequest) (*models.Pet, error) {
	pet := &models.Pet{
		OwnerID:    owner.ID,
		Name:       req.Name,
		AnimalType: req.AnimalType,
		Breed:      req.Breed,
		Age:        req.Age,
		Diet:       req.Diet,
		Allergies:  req.Allergies,
		CareNotes:  req.CareNotes,
	}
	if err := s.petRepo.Create(db, pet); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return pet, nil
}

func (s *PetServiceImpl) Get(db *gorm.DB, actor *models.User, petID string) (*models.Pet, error) {
	pet, err := s.findPet(db, petID)
	if err != nil {
		return nil, err
	}
	if !auth.Can(actor, auth.ActionRead, pet) {
		return nil, apperrors.ErrNotResourceOwner
	}
	return pet, nil
}

func (s *PetServiceImpl) ListMine(db *gorm.DB, ownerID string) ([]models.Pet, error) {
	pets, err := s.petRepo.FindByOwner(db, ownerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return pets, nil
}

func (s *PetServiceImpl) Update(db *gorm.DB, actor *models.User, petID string, req *dto.UpdatePetRequest) (*models.Pet, error) {
	pet, err := s.findPet(db, petID)
	if err != nil {
		return nil, err
	}
	if !auth.Can(actor, auth.ActionUpdate, pet) {
		return nil, apperrors.ErrNotResourceOwner
	}

	pet.Name = req.Name
	pet.AnimalType = req.AnimalType
	pet.Breed = req.Breed
	pet.Age = req.Age
	pet.Diet = req.Diet
	pet.Allergies = req.Allergies
	pet.CareNotes = req.CareNotes

	if err := s.petRepo.Update(db, pet); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return pet, nil
}

func (s *PetServiceImpl) Delete(db *gorm.DB, actor *models.User, petID string) error {
	pet, err := s.findPet(db, petID)
	if err != nil {
		return err
	}
	if !auth.Can(actor, auth.ActionDelete, pet) {
		return apperrors.ErrNotResourceOwner
	}
	if err := s.petRepo.Delete(db, pet.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *PetServiceImpl) findPet(db *gorm.DB, petID string) (*models.Pet, error) {
	pet, err := s.petRepo.FindByID(db, petID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPetNotFound) {
			return nil, apperrors.NewNotFoundError("pet", "Pet not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return pet, nil
}
