package handler

import (
	"time"

	"github.com/streetmarket/backend/internal/application/identity"
)

// LoginRequest represents the request body for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterVendorRequest represents the request body for vendor signup
type RegisterVendorRequest struct {
	Username     string `json:"username" binding:"required,min=3,max=100"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8,max=128"`
	Name         string `json:"name" binding:"required,max=200"`
	BusinessName string `json:"businessName" binding:"required,max=200"`
	Phone        string `json:"phone" binding:"omitempty,max=30"`
}

// RegisterSupplierRequest represents the request body for supplier signup
type RegisterSupplierRequest struct {
	Username        string `json:"username" binding:"required,min=3,max=100"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8,max=128"`
	Name            string `json:"name" binding:"required,max=200"`
	CompanyName     string `json:"companyName" binding:"required,max=200"`
	ContactPerson   string `json:"contactPerson" binding:"required,max=200"`
	BusinessLicense string `json:"businessLicense" binding:"omitempty,max=100"`
	Phone           string `json:"phone" binding:"omitempty,max=30"`
}

// RefreshTokenRequest represents the request body for token refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ChangePasswordRequest represents the request body for password change
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8,max=128"`
}

// TokenResponse represents the token data in auth responses
type TokenResponse struct {
	AccessToken           string    `json:"accessToken"`
	RefreshToken          string    `json:"refreshToken"`
	AccessTokenExpiresAt  time.Time `json:"accessTokenExpiresAt"`
	RefreshTokenExpiresAt time.Time `json:"refreshTokenExpiresAt"`
	TokenType             string    `json:"tokenType"`
}

// LoginResponse represents the response body for successful login
type LoginResponse struct {
	Token TokenResponse     `json:"token"`
	User  identity.UserInfo `json:"user"`
}

// RegisterResponse represents the response body for successful signup
type RegisterResponse struct {
	User identity.UserInfo `json:"user"`
}

// RefreshTokenResponse represents the response body for token refresh
type RefreshTokenResponse struct {
	Token TokenResponse `json:"token"`
}

// LogoutResponse represents the response body for logout
type LogoutResponse struct {
	Message string `json:"message"`
}
