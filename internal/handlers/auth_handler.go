package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gyver-dev/wedding-planner/internal/auth"
	"github.com/gyver-dev/wedding-planner/internal/db"
	"github.com/gyver-dev/wedding-planner/internal/httperr"
	"github.com/gyver-dev/wedding-planner/internal/repository"
)

type AuthHandler struct {
	users repository.UserRepository
}

func NewAuthHandler(users repository.UserRepository) *AuthHandler {
	return &AuthHandler{users: users}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email         string `json:"email" binding:"required"`
	FullName      string `json:"full_name" binding:"required"`
	Password      string `json:"password" binding:"required"`
	ContactNumber string `json:"contact_number"`
	Address       string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_required_fields", "Missing required fields")
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		logrus.WithError(err).Error("failed to hash password")
		httperr.Internal(c)
		return
	}

	user, err := h.users.Insert(c.Request.Context(), repository.CreateUserParams{
		Email:         req.Email,
		FullName:      req.FullName,
		ContactNumber: req.ContactNumber,
		Address:       req.Address,
		PasswordHash:  hashed,
	})
	if err != nil {
		logrus.WithError(err).Error("failed to add user")
		httperr.Internal(c)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login answers unknown email and wrong password with the same 401 body, so
// responses do not reveal which accounts exist.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_required_fields", "Missing email or password")
		return
	}

	user, err := h.users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if db.IsNotFound(err) {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password")
			return
		}
		logrus.WithError(err).Error("failed to look up user during login")
		httperr.Internal(c)
		return
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user,
	})
}
