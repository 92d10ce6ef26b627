package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/streetmarket/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// UserRole represents the marketplace role of a user
type UserRole string

const (
	UserRoleVendor   UserRole = "vendor"   // Street-food seller purchasing raw materials
	UserRoleSupplier UserRole = "supplier" // Wholesaler listing products
	UserRoleAdmin    UserRole = "admin"    // Platform operator
)

// IsValid checks if the role is a valid enum value
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleVendor, UserRoleSupplier, UserRoleAdmin:
		return true
	}
	return false
}

// String returns the string representation
func (r UserRole) String() string {
	return string(r)
}

// UserStatus represents the status of a user account
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusPending   UserStatus = "pending" // Awaiting admin approval
)

// IsValid checks if the status is a valid enum value
func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusSuspended, UserStatusPending:
		return true
	}
	return false
}

// String returns the string representation
func (s UserStatus) String() string {
	return string(s)
}

// Password cost for bcrypt
const bcryptCost = 12

// User represents a marketplace account.
// It is the aggregate root for identity operations; the role is fixed at
// creation and never changes afterwards.
type User struct {
	shared.BaseAggregateRoot
	Username        string     `gorm:"size:100;not null;uniqueIndex"`
	Email           string     `gorm:"size:200;not null;uniqueIndex"`
	PasswordHash    string     `gorm:"size:100;not null"`
	Role            UserRole   `gorm:"size:20;not null;index"`
	Name            string     `gorm:"size:200;not null"`
	Phone           string     `gorm:"size:50"`
	BusinessName    string     `gorm:"size:200"` // Vendor storefront name
	CompanyName     string     `gorm:"size:200"` // Supplier company name
	ContactPerson   string     `gorm:"size:200"` // Supplier contact
	BusinessLicense string     `gorm:"size:100"`
	Status          UserStatus `gorm:"size:20;not null;default:'active';index"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

func newUser(username, email, password, name string, role UserRole) (*User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	user := &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Username:          strings.ToLower(strings.TrimSpace(username)),
		Email:             strings.ToLower(strings.TrimSpace(email)),
		PasswordHash:      passwordHash,
		Role:              role,
		Name:              strings.TrimSpace(name),
		Status:            UserStatusActive,
	}

	return user, nil
}

// NewVendor creates a vendor account. Vendors are active immediately.
func NewVendor(username, email, password, name, businessName string) (*User, error) {
	if strings.TrimSpace(businessName) == "" {
		return nil, shared.NewDomainError("INVALID_BUSINESS_NAME", "Business name is required for vendors")
	}

	user, err := newUser(username, email, password, name, UserRoleVendor)
	if err != nil {
		return nil, err
	}
	user.BusinessName = strings.TrimSpace(businessName)

	user.AddDomainEvent(NewUserRegisteredEvent(user))
	return user, nil
}

// NewSupplier creates a supplier account. Suppliers always start pending
// regardless of any status supplied by the caller and need admin approval
// before they can log in.
func NewSupplier(username, email, password, name, companyName, contactPerson, businessLicense string) (*User, error) {
	if strings.TrimSpace(companyName) == "" {
		return nil, shared.NewDomainError("INVALID_COMPANY_NAME", "Company name is required for suppliers")
	}
	if strings.TrimSpace(contactPerson) == "" {
		return nil, shared.NewDomainError("INVALID_CONTACT_PERSON", "Contact person is required for suppliers")
	}

	user, err := newUser(username, email, password, name, UserRoleSupplier)
	if err != nil {
		return nil, err
	}
	user.CompanyName = strings.TrimSpace(companyName)
	user.ContactPerson = strings.TrimSpace(contactPerson)
	user.BusinessLicense = strings.TrimSpace(businessLicense)
	user.Status = UserStatusPending

	user.AddDomainEvent(NewUserRegisteredEvent(user))
	return user, nil
}

// NewAdmin creates an admin account. Admins are seeded, never self-registered.
func NewAdmin(username, email, password, name string) (*User, error) {
	user, err := newUser(username, email, password, name, UserRoleAdmin)
	if err != nil {
		return nil, err
	}

	user.AddDomainEvent(NewUserRegisteredEvent(user))
	return user, nil
}

// SetPhone sets the user's phone number
func (u *User) SetPhone(phone string) error {
	if phone != "" && len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}

	u.Phone = strings.TrimSpace(phone)
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// SetStatus overwrites the account status. Admins may move accounts between
// any two statuses; there is no transition table.
func (u *User) SetStatus(status UserStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Status must be one of active, suspended, pending")
	}

	oldStatus := u.Status
	u.Status = status
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	if oldStatus != status {
		u.AddDomainEvent(NewUserStatusChangedEvent(u, oldStatus, status))
	}

	return nil
}

// ChangePassword changes the user's password after verifying the current one
func (u *User) ChangePassword(oldPassword, newPassword string) error {
	if !u.VerifyPassword(oldPassword) {
		return shared.NewDomainError("INVALID_PASSWORD", "Current password is incorrect")
	}

	return u.SetPassword(newPassword)
}

// SetPassword sets a new password without checking the old one
func (u *User) SetPassword(newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	passwordHash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	u.AddDomainEvent(NewUserPasswordChangedEvent(u))

	return nil
}

// VerifyPassword verifies if the provided password matches
func (u *User) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// IsActive returns true if the account is active
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// CanLogin returns true if the account may authenticate
func (u *User) CanLogin() bool {
	return u.Status == UserStatusActive
}

// DisplayName returns the business-facing name for the account: company
// name for suppliers, business name for vendors, falling back to the
// personal name when unset.
func (u *User) DisplayName() string {
	switch u.Role {
	case UserRoleSupplier:
		if u.CompanyName != "" {
			return u.CompanyName
		}
	case UserRoleVendor:
		if u.BusinessName != "" {
			return u.BusinessName
		}
	}
	return u.Name
}

// Validation functions

func validateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return shared.NewDomainError("INVALID_USERNAME", "Username cannot be empty")
	}
	if len(username) < 3 {
		return shared.NewDomainError("INVALID_USERNAME", "Username must be at least 3 characters")
	}
	if len(username) > 100 {
		return shared.NewDomainError("INVALID_USERNAME", "Username cannot exceed 100 characters")
	}

	// Allow alphanumeric, underscore, hyphen, and dot
	usernameRegex := regexp.MustCompile(`^[a-zA-Z0-9_\-.]+$`)
	if !usernameRegex.MatchString(username) {
		return shared.NewDomainError("INVALID_USERNAME", "Username can only contain letters, numbers, underscores, hyphens, and dots")
	}

	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 128 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 128 characters")
	}

	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}

	// Basic email validation
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}

	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
