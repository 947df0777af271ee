package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gyver-dev/wedding-planner/internal/httperr"
	"github.com/gyver-dev/wedding-planner/internal/models"
	"github.com/gyver-dev/wedding-planner/internal/repository"
)

type ServiceHandler struct {
	services repository.ServiceRepository
}

func NewServiceHandler(services repository.ServiceRepository) *ServiceHandler {
	return &ServiceHandler{services: services}
}

// --------- Requests ---------

// Subcategories arrives as a JSON-encoded string, not a native array; it is
// decoded separately so a malformed value turns into a 400 before anything
// touches the database.
type CreateServiceRequest struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description" binding:"required"`
	UserID        int64  `json:"userId" binding:"required"`
	UserEmail     string `json:"userEmail" binding:"required"`
	Subcategories string `json:"subcategories" binding:"required"`
}

type UpdateServiceRequest struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description" binding:"required"`
	Subcategories string `json:"subcategories" binding:"required"`
}

// parseSubcategories decodes the embedded JSON string. Invalid JSON and a
// valid non-array document are reported as distinct validation codes.
func parseSubcategories(c *gin.Context, raw string) ([]models.SubcategoryInput, bool) {
	var probe any
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		httperr.BadRequest(c, "invalid_subcategories_format", "Invalid subcategories format")
		return nil, false
	}
	if _, ok := probe.([]any); !ok {
		httperr.BadRequest(c, "subcategories_not_array", "Subcategories must be an array")
		return nil, false
	}

	var subs []models.SubcategoryInput
	if err := json.Unmarshal([]byte(raw), &subs); err != nil {
		httperr.BadRequest(c, "invalid_subcategories_format", "Invalid subcategories format")
		return nil, false
	}
	return subs, true
}

// --------- Handlers ---------

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_required_fields", "Missing required fields")
		return
	}

	subs, ok := parseSubcategories(c, req.Subcategories)
	if !ok {
		return
	}

	serviceID, err := h.services.Create(c.Request.Context(), repository.CreateServiceParams{
		Title:         req.Title,
		Description:   req.Description,
		UserID:        req.UserID,
		UserEmail:     req.UserEmail,
		Subcategories: subs,
	})
	if err != nil {
		logrus.WithError(err).Error("failed to add service and subcategories")
		httperr.Internal(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Service and subcategories added successfully",
		"serviceId": serviceID,
	})
}

func (h *ServiceHandler) ListAll(c *gin.Context) {
	services, err := h.services.ListAll(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("failed to fetch services")
		httperr.Internal(c)
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) ListByUser(c *gin.Context) {
	userID := c.Param("userId")

	services, err := h.services.ListByUser(c.Request.Context(), userID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("failed to fetch services by user")
		httperr.Internal(c)
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	serviceID := c.Param("serviceId")

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_required_fields", "Missing required fields")
		return
	}

	subs, ok := parseSubcategories(c, req.Subcategories)
	if !ok {
		return
	}

	err := h.services.Update(c.Request.Context(), serviceID, repository.UpdateServiceParams{
		Title:         req.Title,
		Description:   req.Description,
		Subcategories: subs,
	})
	if err != nil {
		logrus.WithError(err).WithField("service_id", serviceID).Error("failed to update service")
		httperr.Internal(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Service and subcategories updated successfully",
	})
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	serviceID := c.Param("serviceId")

	if err := h.services.Delete(c.Request.Context(), serviceID); err != nil {
		logrus.WithError(err).WithField("service_id", serviceID).Error("failed to delete service")
		httperr.Internal(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Service and associated subcategories deleted successfully",
	})
}
