package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/streetmarket/backend/internal/domain/identity"
	"github.com/streetmarket/backend/internal/domain/shared"
	"github.com/streetmarket/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		logger:     logger,
	}
}

// Login authenticates a user by email and returns a token pair.
// Unknown email and wrong password produce the same error so the
// response does not reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Warn("Login attempt for unknown email", zap.String("email", input.Email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid credentials")
	}

	if !user.VerifyPassword(input.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("email", input.Email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid credentials")
	}

	if !user.CanLogin() {
		s.logger.Warn("Login attempt for inactive account",
			zap.String("email", input.Email),
			zap.String("status", user.Status.String()))
		return nil, shared.NewDomainError("ACCOUNT_NOT_ACTIVE", "Account is not active")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role.String(),
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	s.logger.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("role", user.Role.String()))

	return &LoginResult{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
		User:                  NewUserInfo(user),
	}, nil
}

// RegisterVendor registers a new vendor account. Vendors are active
// immediately and can log in right away.
func (s *AuthService) RegisterVendor(ctx context.Context, input RegisterVendorInput) (*RegisterResult, error) {
	if err := s.checkDuplicate(ctx, input.Email, input.Username); err != nil {
		return nil, err
	}

	user, err := identity.NewVendor(input.Username, input.Email, input.Password, input.Name, input.BusinessName)
	if err != nil {
		return nil, err
	}
	if input.Phone != "" {
		if err := user.SetPhone(input.Phone); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if err == shared.ErrAlreadyExists {
			return nil, shared.NewDomainError("USER_EXISTS", "User already exists")
		}
		s.logger.Error("Failed to create vendor", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to register vendor")
	}

	s.logger.Info("Vendor registered",
		zap.String("user_id", user.ID.String()),
		zap.String("business_name", user.BusinessName))

	return &RegisterResult{User: NewUserInfo(user)}, nil
}

// RegisterSupplier registers a new supplier account. Suppliers always start
// pending and cannot log in until an admin approves them.
func (s *AuthService) RegisterSupplier(ctx context.Context, input RegisterSupplierInput) (*RegisterResult, error) {
	if err := s.checkDuplicate(ctx, input.Email, input.Username); err != nil {
		return nil, err
	}

	user, err := identity.NewSupplier(
		input.Username,
		input.Email,
		input.Password,
		input.Name,
		input.CompanyName,
		input.ContactPerson,
		input.BusinessLicense,
	)
	if err != nil {
		return nil, err
	}
	if input.Phone != "" {
		if err := user.SetPhone(input.Phone); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if err == shared.ErrAlreadyExists {
			return nil, shared.NewDomainError("USER_EXISTS", "User already exists")
		}
		s.logger.Error("Failed to create supplier", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to register supplier")
	}

	s.logger.Info("Supplier registered, pending approval",
		zap.String("user_id", user.ID.String()),
		zap.String("company_name", user.CompanyName))

	return &RegisterResult{User: NewUserInfo(user)}, nil
}

// RefreshToken exchanges a valid refresh token for a new token pair
func (s *AuthService) RefreshToken(ctx context.Context, input RefreshTokenInput) (*RefreshTokenResult, error) {
	claims, err := s.jwtService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, mapTokenError(err)
	}

	if blacklisted, err := s.blacklist.IsBlacklisted(ctx, claims.ID); err != nil {
		s.logger.Error("Failed to check token blacklist", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to validate token")
	} else if blacklisted {
		return nil, shared.NewDomainError("TOKEN_REVOKED", "Token has been revoked")
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid user ID in token")
	}

	if invalidated, err := s.blacklist.IsUserTokenInvalidated(ctx, claims.UserID, claims.GetIssuedAtTime()); err != nil {
		s.logger.Error("Failed to check user token invalidation", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to validate token")
	} else if invalidated {
		return nil, shared.NewDomainError("TOKEN_REVOKED", "Token has been revoked")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		s.logger.Warn("Token refresh for unknown user", zap.String("user_id", claims.UserID))
		return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}

	if !user.CanLogin() {
		return nil, shared.NewDomainError("ACCOUNT_NOT_ACTIVE", "Account is no longer active")
	}

	tokenPair, err := s.jwtService.RefreshTokenPair(input.RefreshToken, user.Username, user.Role.String())
	if err != nil {
		return nil, mapTokenError(err)
	}

	s.logger.Info("Token refreshed", zap.String("user_id", user.ID.String()))

	return &RefreshTokenResult{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
	}, nil
}

// Logout revokes the presented token by blacklisting its JTI for the
// remainder of its lifetime
func (s *AuthService) Logout(ctx context.Context, input LogoutInput) error {
	if input.TokenJTI != "" && input.TokenTTL > 0 {
		if err := s.blacklist.AddToBlacklist(ctx, input.TokenJTI, input.TokenTTL); err != nil {
			s.logger.Error("Failed to blacklist token on logout",
				zap.String("user_id", input.UserID.String()),
				zap.Error(err))
			return shared.NewDomainError("INTERNAL_ERROR", "Failed to log out")
		}
	}

	s.logger.Info("User logged out", zap.String("user_id", input.UserID.String()))
	return nil
}

// GetCurrentUser retrieves the authenticated user's profile
func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}

	info := NewUserInfo(user)
	return &info, nil
}

// ChangePassword changes a user's password after verifying the old one
func (s *AuthService) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}

	if err := user.ChangePassword(input.OldPassword, input.NewPassword); err != nil {
		return err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to update user after password change", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to update password")
	}

	s.logger.Info("User password changed", zap.String("user_id", input.UserID.String()))
	return nil
}

func (s *AuthService) checkDuplicate(ctx context.Context, email, username string) error {
	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		s.logger.Error("Failed to check email uniqueness", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to validate registration")
	}
	if exists {
		return shared.NewDomainError("USER_EXISTS", "User already exists")
	}

	exists, err = s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		s.logger.Error("Failed to check username uniqueness", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to validate registration")
	}
	if exists {
		return shared.NewDomainError("USER_EXISTS", "User already exists")
	}

	return nil
}

func mapTokenError(err error) error {
	switch err {
	case auth.ErrExpiredToken:
		return shared.NewDomainError("TOKEN_EXPIRED", "Refresh token has expired")
	case auth.ErrMaxRefreshExceeded:
		return shared.NewDomainError("TOKEN_MAX_REFRESH", "Maximum token refresh count exceeded. Please log in again")
	case auth.ErrInvalidToken, auth.ErrInvalidTokenType, auth.ErrInvalidClaims:
		return shared.NewDomainError("TOKEN_INVALID", "Invalid refresh token")
	default:
		return shared.NewDomainError("TOKEN_ERROR", "Failed to validate refresh token")
	}
}
