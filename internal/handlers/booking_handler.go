package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gyver-dev/wedding-planner/internal/httperr"
	"github.com/gyver-dev/wedding-planner/internal/repository"
)

type BookingHandler struct {
	bookings repository.BookingRepository
}

func NewBookingHandler(bookings repository.BookingRepository) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

type CreateBookingRequest struct {
	ServiceID       int64  `json:"serviceId" binding:"required"`
	SubcategoryName string `json:"subcategoryName" binding:"required"`
	UserID          int64  `json:"userId" binding:"required"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_required_fields", "Missing required fields")
		return
	}

	booking, err := h.bookings.Insert(c.Request.Context(), repository.CreateBookingParams{
		ServiceID:       req.ServiceID,
		SubcategoryName: req.SubcategoryName,
		UserID:          req.UserID,
	})
	if err != nil {
		logrus.WithError(err).Error("failed to add booking")
		httperr.Internal(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking added successfully",
		"booking": booking,
	})
}
