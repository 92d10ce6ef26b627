package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/streetmarket/backend/internal/domain/identity"
)

// LoginInput contains the input for user login
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult contains the result of a successful login
type LoginResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
	User                  UserInfo
}

// UserInfo contains user information safe to return to clients.
// The password hash is never part of it.
type UserInfo struct {
	ID              uuid.UUID `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	Role            string    `json:"role"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone,omitempty"`
	BusinessName    string    `json:"businessName,omitempty"`
	CompanyName     string    `json:"companyName,omitempty"`
	ContactPerson   string    `json:"contactPerson,omitempty"`
	BusinessLicense string    `json:"businessLicense,omitempty"`
	Status          string    `json:"status"`
	DisplayName     string    `json:"displayName"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewUserInfo maps a user aggregate to its client-safe view
func NewUserInfo(user *identity.User) UserInfo {
	return UserInfo{
		ID:              user.ID,
		Username:        user.Username,
		Email:           user.Email,
		Role:            user.Role.String(),
		Name:            user.Name,
		Phone:           user.Phone,
		BusinessName:    user.BusinessName,
		CompanyName:     user.CompanyName,
		ContactPerson:   user.ContactPerson,
		BusinessLicense: user.BusinessLicense,
		Status:          user.Status.String(),
		DisplayName:     user.DisplayName(),
		CreatedAt:       user.CreatedAt,
	}
}

// RegisterVendorInput contains the input for vendor registration
type RegisterVendorInput struct {
	Username     string
	Email        string
	Password     string
	Name         string
	Phone        string
	BusinessName string
}

// RegisterSupplierInput contains the input for supplier registration
type RegisterSupplierInput struct {
	Username        string
	Email           string
	Password        string
	Name            string
	Phone           string
	CompanyName     string
	ContactPerson   string
	BusinessLicense string
}

// RegisterResult contains the result of a registration
type RegisterResult struct {
	User UserInfo
}

// RefreshTokenInput contains the input for token refresh
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenResult contains the result of a token refresh
type RefreshTokenResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
}

// LogoutInput contains the input for user logout
type LogoutInput struct {
	UserID   uuid.UUID
	TokenJTI string
	TokenTTL time.Duration
}

// ChangePasswordInput contains the input for password change
type ChangePasswordInput struct {
	UserID      uuid.UUID
	OldPassword string
	NewPassword string
}

// UpdateUserStatusInput contains the input for an admin status overwrite
type UpdateUserStatusInput struct {
	UserID uuid.UUID
	Status string
}
