package handlers

import (
	"net/http"

	"petsit_backend/internal/services"
	"petsit_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PetHandler struct {
	*BaseHandler
	petService services.PetService
}

func NewPetHandler(base *BaseHandler, petService services.PetService) *PetHandler {
	return &PetHandler{
		BaseHandler: base,
		petService:  petService,
	}
}

func (h *PetHandler) RegisterRoutes(rg *gin.RouterGroup) {
	pets := rg.Group("/pets")
	{
		pets.POST("", h.Create)
		pets.GET("", h.ListMine)
		pets.GET("/:id", h.Get)
		pets.PUT("/:id", h.Update)
		pets.DELETE("/:id", h.Delete)
	}
}

func (h *PetHandler) Create(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.CreatePetRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	pet, err := h.petService.Create(db, user, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pet)
}

func (h *PetHandler) ListMine(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	pets, err := h.petService.ListMine(db, user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, pets)
}

func (h *PetHandler) Get(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	pet, err := h.petService.Get(db, user, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, pet)
}

func (h *PetHandler) Update(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.UpdatePetRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	pet, err := h.petService.Update(db, user, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, pet)
}

func (h *PetHandler) Delete(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	if err := h.petService.Delete(db, user, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pet deleted"})
}
