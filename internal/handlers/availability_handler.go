package handlers

import (
	"net/http"

	"petsit_backend/internal/services"
	"petsit_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	*BaseHandler
	availabilityService services.AvailabilityService
}

func NewAvailabilityHandler(base *BaseHandler, availabilityService services.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{
		BaseHandler:         base,
		availabilityService: availabilityService,
	}
}

func (h *AvailabilityHandler) RegisterRoutes(rg *gin.RouterGroup) {
	slots := rg.Group("/availability")
	{
		slots.POST("", h.Create)
		slots.GET("", h.ListMine)
		slots.PUT("/:id", h.Update)
		slots.DELETE("/:id", h.Delete)
	}
}

func (h *AvailabilityHandler) Create(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.CreateSlotRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	slot, err := h.availabilityService.Create(db, user, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, slot)
}

func (h *AvailabilityHandler) ListMine(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	slots, err := h.availabilityService.ListMine(db, user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

func (h *AvailabilityHandler) Update(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.UpdateSlotRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	slot, err := h.availabilityService.Update(db, user, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, slot)
}

func (h *AvailabilityHandler) Delete(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	if err := h.availabilityService.Delete(db, user, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability slot deleted"})
}
