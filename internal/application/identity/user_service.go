package identity

import (
	"context"

	"github.com/streetmarket/backend/internal/domain/identity"
	"github.com/streetmarket/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// UserService handles admin-facing user management
type UserService struct {
	userRepo identity.UserRepository
	logger   *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo identity.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetUsersByRole returns all users with the given role, without password hashes
func (s *UserService) GetUsersByRole(ctx context.Context, role string) ([]UserInfo, error) {
	userRole := identity.UserRole(role)
	if !userRole.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown user role")
	}

	users, err := s.userRepo.FindByRole(ctx, userRole)
	if err != nil {
		s.logger.Error("Failed to list users by role", zap.String("role", role), zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to fetch users")
	}

	infos := make([]UserInfo, 0, len(users))
	for _, user := range users {
		infos = append(infos, NewUserInfo(user))
	}
	return infos, nil
}

// UpdateUserStatus overwrites a user's status. Any known status value is
// accepted regardless of the current one; admins use this to approve
// pending suppliers and to suspend or reinstate accounts.
func (s *UserService) UpdateUserStatus(ctx context.Context, input UpdateUserStatusInput) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}

	if err := user.SetStatus(identity.UserStatus(input.Status)); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to update user status", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update user status")
	}

	s.logger.Info("User status updated",
		zap.String("user_id", user.ID.String()),
		zap.String("status", input.Status))

	info := NewUserInfo(user)
	return &info, nil
}
