package handlers

import (
	"net/http"

	"petsit_backend/internal/services"
	"petsit_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ExperienceHandler struct {
	*BaseHandler
	experienceService services.ExperienceService
}

func NewExperienceHandler(base *BaseHandler, experienceService services.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{
		BaseHandler:       base,
		experienceService: experienceService,
	}
}

func (h *ExperienceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	exps := rg.Group("/experiences")
	{
		exps.POST("", h.Create)
		exps.GET("", h.ListMine)
		exps.PUT("/:id", h.Update)
		exps.DELETE("/:id", h.Delete)
	}
}

func (h *ExperienceHandler) Create(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.ExperienceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	exp, err := h.experienceService.Create(db, user, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, exp)
}

func (h *ExperienceHandler) ListMine(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	exps, err := h.experienceService.ListMine(db, user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exps)
}

func (h *ExperienceHandler) Update(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.ExperienceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	exp, err := h.experienceService.Update(db, user, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exp)
}

func (h *ExperienceHandler) Delete(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	if err := h.experienceService.Delete(db, user, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Work experience deleted"})
}
