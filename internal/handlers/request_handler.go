package handlers

import (
	"net/http"

	"petsit_backend/internal/services"
	"petsit_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	*BaseHandler
	requestService  services.RequestService
	matchingService services.MatchingService
}

func NewRequestHandler(base *BaseHandler, requestService services.RequestService, matchingService services.MatchingService) *RequestHandler {
	return &RequestHandler{
		BaseHandler:     base,
		requestService:  requestService,
		matchingService: matchingService,
	}
}

func (h *RequestHandler) RegisterRoutes(rg *gin.RouterGroup) {
	requests := rg.Group("/requests")
	{
		requests.POST("", h.Create)
		requests.GET("", h.ListMine)
		requests.GET("/available", h.FindAvailable)
		requests.GET("/my-assignments", h.ListAssignments)
		requests.GET("/:id", h.Get)
		requests.PUT("/:id", h.Update)
		requests.DELETE("/:id", h.Delete)
		requests.POST("/:id/apply", h.Apply)
		requests.PUT("/:id/reject", h.Reject)
		requests.PUT("/assignments/:id/complete", h.Complete)
		requests.POST("/assignments/:id/review", h.Review)
	}
}

func (h *RequestHandler) Create(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.CreateRequestRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	request, err := h.requestService.Create(db, user, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

func (h *RequestHandler) ListMine(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	requests, err := h.requestService.ListMine(db, user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// FindAvailable godoc
// @Summary Requests matching my availability
// @Description Returns pending requests whose window and pet type fall inside one of the caller's availability slots
// @Tags requests
// @Produce json
// @Success 200 {array} models.SittingRequest
// @Router /requests/available [get]
func (h *RequestHandler) FindAvailable(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	requests, err := h.matchingService.FindAvailableRequests(db, user)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *RequestHandler) ListAssignments(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	assignments, err := h.requestService.ListAssignments(db, user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}

func (h *RequestHandler) Get(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	request, err := h.requestService.Get(db, user, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

func (h *RequestHandler) Update(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.UpdateRequestRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	request, err := h.requestService.Update(db, user, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

func (h *RequestHandler) Delete(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	if err := h.requestService.Delete(db, user, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request deleted"})
}

// Apply godoc
// @Summary Apply to sit a pending request
// @Description Assigns the caller as the sitter. The first applicant wins; the request leaves the open pool.
// @Tags requests
// @Produce json
// @Param id path string true "Request ID"
// @Success 201 {object} models.SittingAssignment
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /requests/{id}/apply [post]
func (h *RequestHandler) Apply(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	assignment, err := h.requestService.Apply(db, user, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

func (h *RequestHandler) Reject(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	request, err := h.requestService.Reject(db, user, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

func (h *RequestHandler) Complete(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	assignment, err := h.requestService.Complete(db, user, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignment)
}

func (h *RequestHandler) Review(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.ReviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	assignment, err := h.requestService.Review(db, user, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignment)
}
