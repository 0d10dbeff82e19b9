package handlers

import (
	"net/http"

	"petsit_backend/internal/services"
	"petsit_backend/internal/services/dto"
	"petsit_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// certificate uploads are capped at 10 MiB
const maxCertificateSize = 10 << 20

type CertificateHandler struct {
	*BaseHandler
	certificateService services.CertificateService
}

func NewCertificateHandler(base *BaseHandler, certificateService services.CertificateService) *CertificateHandler {
	return &CertificateHandler{
		BaseHandler:        base,
		certificateService: certificateService,
	}
}

func (h *CertificateHandler) RegisterRoutes(rg *gin.RouterGroup) {
	certs := rg.Group("/certificates")
	{
		certs.POST("", h.Create)
		certs.GET("", h.ListMine)
		certs.DELETE("/:id", h.Delete)
	}
}

// Create godoc
// @Summary Upload a certificate
// @Description Accepts a multipart form with certificate metadata and the document file
// @Tags certificates
// @Accept mpfd
// @Produce json
// @Param name formData string true "Certificate name"
// @Param issue_date formData string true "Issue date (YYYY-MM-DD)"
// @Param file formData file true "Certificate document (pdf, png or jpg)"
// @Success 201 {object} models.Certificate
// @Failure 400 {object} map[string]string
// @Router /certificates [post]
func (h *CertificateHandler) Create(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.CreateCertificateRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing certificate file"))
		return
	}
	if fileHeader.Size > maxCertificateSize {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Certificate file too large"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer file.Close()

	db := h.GetDB(c)
	cert, err := h.certificateService.Create(c.Request.Context(), db, user, &req, fileHeader.Filename, file, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cert)
}

func (h *CertificateHandler) ListMine(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	certs, err := h.certificateService.ListMine(db, user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, certs)
}

func (h *CertificateHandler) Delete(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	if err := h.certificateService.Delete(c.Request.Context(), db, user, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Certificate deleted"})
}
