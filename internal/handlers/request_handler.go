package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gyver-dev/wedding-planner/internal/httperr"
	"github.com/gyver-dev/wedding-planner/internal/repository"
)

type RequestHandler struct {
	requests repository.RequestRepository
}

func NewRequestHandler(requests repository.RequestRepository) *RequestHandler {
	return &RequestHandler{requests: requests}
}

type CreateRequestRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Message string `json:"message" binding:"required"`
	UserID  int64  `json:"userId" binding:"required"`
}

func (h *RequestHandler) Create(c *gin.Context) {
	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_required_fields", "Missing required fields")
		return
	}

	created, err := h.requests.Insert(c.Request.Context(), repository.CreateRequestParams{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
		UserID:  req.UserID,
	})
	if err != nil {
		logrus.WithError(err).Error("failed to add request")
		httperr.Internal(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Request added successfully",
		"request": created,
	})
}
