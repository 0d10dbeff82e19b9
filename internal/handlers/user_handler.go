package handlers

import (
	"net/http"

	"petsit_backend/internal/services"
	"petsit_backend/internal/services/dto"
	"petsit_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

// RegisterRoutes wires user routes. The authRequired group carries
// AuthMiddleware; public is open.
func (h *UserHandler) RegisterRoutes(public, authRequired *gin.RouterGroup) {
	authRequired.GET("/auth/me", h.GetMe)

	users := authRequired.Group("/users")
	{
		users.GET("/me", h.GetMe)
		users.PUT("/me", h.UpdateMe)
		users.POST("/me/profile-image", h.UploadProfileImage)
	}

	// Public sitter profile, no auth needed.
	public.GET("/users/:id", h.GetPublicProfile)
}

func (h *UserHandler) GetMe(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}
	db := h.GetDB(c)

	profile, err := h.userService.GetProfile(db, user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	updated, err := h.userService.UpdateProfile(db, user.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *UserHandler) UploadProfileImage(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing image file"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer file.Close()

	db := h.GetDB(c)
	url, err := h.userService.UploadProfileImage(c.Request.Context(), db, user.ID, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile_image_url": url})
}

// GetPublicProfile godoc
// @Summary Public sitter profile
// @Description Returns a user's public profile with verified certificates and upcoming availability
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} map[string]string
// @Router /users/{id} [get]
func (h *UserHandler) GetPublicProfile(c *gin.Context) {
	db := h.GetDB(c)

	profile, err := h.userService.GetPublicProfile(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
