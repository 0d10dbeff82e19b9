package handlers

import (
	"net/http"

	"petsit_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	adminService       services.AdminService
	userService        services.UserService
	certificateService services.CertificateService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService, userService services.UserService, certificateService services.CertificateService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:        base,
		adminService:       adminService,
		userService:        userService,
		certificateService: certificateService,
	}
}

// RegisterRoutes expects a group already gated by AuthMiddleware and
// AdminMiddleware.
func (h *AdminHandler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/stats", h.GetStats)
	admin.GET("/users", h.ListUsers)
	admin.PUT("/certificates/:id/verify", h.VerifyCertificate)
}

func (h *AdminHandler) GetStats(c *gin.Context) {
	db := h.GetDB(c)

	stats, err := h.adminService.GetStats(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	db := h.GetDB(c)
	limit, offset := ParsePagination(c)

	users, err := h.userService.ListUsers(db, limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) VerifyCertificate(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	cert, err := h.certificateService.Verify(db, user, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cert)
}
