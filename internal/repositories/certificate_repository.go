package repositories

import (
	"errors"

	"petsit_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCertificateNotFound = errors.New("certificate not found")

type CertificateRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Certificate, error)
	FindByUser(db *gorm.DB, userID string) ([]models.Certificate, error)
	Create(db *gorm.DB, cert *models.Certificate) error
	Delete(db *gorm.DB, id string) error
	// SetVerified flips the verified flag. Verifying an already verified
	// certificate is a no-op.
	SetVerified(db *gorm.DB, id string) (*models.Certificate, error)
}

type CertificateRepositoryImpl struct{}

func NewCertificateRepository() CertificateRepository {
	return &CertificateRepositoryImpl{}
}

func (r *CertificateRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Certificate, error) {
	var cert models.Certificate
	err := db.First(&cert, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCertificateNotFound
		}
		return nil, err
	}
	return &cert, nil
}

func (r *CertificateRepositoryImpl) FindByUser(db *gorm.DB, userID string) ([]models.Certificate, error) {
	var certs []models.Certificate
	err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&certs).Error
	return certs, err
}

func (r *CertificateRepositoryImpl) Create(db *gorm.DB, cert *models.Certificate) error {
	return db.Create(cert).Error
}

func (r *CertificateRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Certificate{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCertificateNotFound
	}
	return nil
}

func (r *CertificateRepositoryImpl) SetVerified(db *gorm.DB, id string) (*models.Certificate, error) {
	cert, err := r.FindByID(db, id)
	if err != nil {
		return nil, err
	}
	if cert.Verified {
		return cert, nil
	}
	if err := db.Model(cert).Update("verified", true).Error; err != nil {
		return nil, err
	}
	cert.Verified = true
	return cert, nil
}
