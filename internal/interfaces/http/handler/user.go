package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/streetmarket/backend/internal/application/identity"
)

// UpdateUserStatusRequest represents the request body for an account
// status overwrite
type UpdateUserStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active pending suspended"`
}

// UserHandler handles admin user management HTTP requests
type UserHandler struct {
	BaseHandler
	userService *identity.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *identity.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListByRole returns all accounts with the given role, hashes excluded.
// The path segment is plural ("vendors", "suppliers").
func (h *UserHandler) ListByRole(c *gin.Context) {
	role := c.Param("role")
	switch role {
	case "vendors":
		role = "vendor"
	case "suppliers":
		role = "supplier"
	case "admins":
		role = "admin"
	}

	users, err := h.userService.GetUsersByRole(c.Request.Context(), role)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, users)
}

// UpdateStatus overwrites an account's status, typically to approve a
// pending supplier
func (h *UserHandler) UpdateStatus(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	var req UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	user, err := h.userService.UpdateUserStatus(c.Request.Context(), identity.UpdateUserStatusInput{
		UserID: userID,
		Status: req.Status,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, user)
}
