package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"petsit_backend/internal/auth"
	"petsit_backend/internal/logger"
	"petsit_backend/internal/models"
	"petsit_backend/internal/repositories"
	"petsit_backend/internal/services/dto"
	"petsit_backend/internal/storage"
	"petsit_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// allowed upload extensions for certificate files
var certificateExtensions = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

type CertificateService interface {
	Create(ctx context.Context, db *gorm.DB, owner *models.User, req *dto.CreateCertificateRequest, filename string, file io.Reader, contentType string) (*models.Certificate, error)
	ListMine(db *gorm.DB, userID string) ([]models.Certificate, error)
	Delete(ctx context.Context, db *gorm.DB, actor *models.User, id string) error
	// Verify marks a certificate as verified. Admin only; verifying twice
	// is a no-op.
	Verify(db *gorm.DB, actor *models.User, id string) (*models.Certificate, error)
}

type CertificateServiceImpl struct {
	certRepo repositories.CertificateRepository
	store    storage.Storage
}

func NewCertificateService(certRepo repositories.CertificateRepository, store storage.Storage) CertificateService {
	return &CertificateServiceImpl{
		certRepo: certRepo,
		store:    store,
	}
}

func (s *CertificateServiceImpl) Create(ctx context.Context, db *gorm.DB, owner *models.User, req *dto.CreateCertificateRequest, filename string, file io.Reader, contentType string) (*models.Certificate, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !certificateExtensions[ext] {
		return nil, apperrors.NewBadRequestError("Unsupported file type; use pdf, png or jpg")
	}

	issueDate, err := time.ParseInLocation("2006-01-02", req.IssueDate, time.UTC)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid issue_date")
	}
	var expiryDate *time.Time
	if req.ExpiryDate != "" {
		d, err := time.ParseInLocation("2006-01-02", req.ExpiryDate, time.UTC)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid expiry_date")
		}
		expiryDate = &d
	}

	path := fmt.Sprintf("certificates/%s/%d%s", owner.ID, time.Now().UnixNano(), ext)
	if err := s.store.Save(ctx, path, file, contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}
	fileURL, err := s.store.GetURL(ctx, path)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	cert := &models.Certificate{
		UserID:              owner.ID,
		Name:                req.Name,
		IssuingOrganization: req.IssuingOrganization,
		IssueDate:           issueDate,
		ExpiryDate:          expiryDate,
		FileURL:             fileURL,
	}
	if err := s.certRepo.Create(db, cert); err != nil {
		// The row failed, drop the orphaned file.
		if delErr := s.store.Delete(ctx, path); delErr != nil {
			logger.Warn("failed to clean up certificate file", "path", path, "error", delErr)
		}
		return nil, apperrors.InternalError(err)
	}
	return cert, nil
}

func (s *CertificateServiceImpl) ListMine(db *gorm.DB, userID string) ([]models.Certificate, error) {
	certs, err := s.certRepo.FindByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return certs, nil
}

func (s *CertificateServiceImpl) Delete(ctx context.Context, db *gorm.DB, actor *models.User, id string) error {
	cert, err := s.findCertificate(db, id)
	if err != nil {
		return err
	}
	if !auth.Can(actor, auth.ActionDelete, cert) {
		return apperrors.ErrNotResourceOwner
	}

	if err := s.certRepo.Delete(db, cert.ID); err != nil {
		return apperrors.InternalError(err)
	}

	// The stored file is best-effort cleanup; the record is already gone.
	if path, ok := storagePathFromURL(cert.FileURL); ok {
		if err := s.store.Delete(ctx, path); err != nil {
			logger.Warn("failed to delete certificate file", "path", path, "error", err)
		}
	}
	return nil
}

func (s *CertificateServiceImpl) Verify(db *gorm.DB, actor *models.User, id string) (*models.Certificate, error) {
	if !auth.Can(actor, auth.ActionVerify, nil) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	cert, err := s.certRepo.SetVerified(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCertificateNotFound) {
			return nil, apperrors.NewNotFoundError("certificate", "Certificate not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return cert, nil
}

func (s *CertificateServiceImpl) findCertificate(db *gorm.DB, id string) (*models.Certificate, error) {
	cert, err := s.certRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCertificateNotFound) {
			return nil, apperrors.NewNotFoundError("certificate", "Certificate not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return cert, nil
}

// storagePathFromURL recovers the storage key from a public URL by taking
// everything after the "certificates/" segment.
func storagePathFromURL(url string) (string, bool) {
	idx := strings.Index(url, "certificates/")
	if idx < 0 {
		return "", false
	}
	return url[idx:], true
}
