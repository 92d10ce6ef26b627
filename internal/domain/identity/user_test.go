package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestVendor(t *testing.T) *User {
	user, err := NewVendor("arjun_vendor", "arjun@streetfood.com", "vendor123", "Arjun Singh", "Singh Street Food Corner")
	require.NoError(t, err)
	return user
}

func createTestSupplier(t *testing.T) *User {
	user, err := NewSupplier("rajesh_supplier", "rajesh@wholesale.com", "supplier123", "Rajesh Kumar", "Kumar Wholesale Mart", "Rajesh Kumar", "WHL2023001")
	require.NoError(t, err)
	return user
}

// ============================================
// Role / Status enum tests
// ============================================

func TestUserRole_IsValid(t *testing.T) {
	tests := []struct {
		role    UserRole
		isValid bool
	}{
		{UserRoleVendor, true},
		{UserRoleSupplier, true},
		{UserRoleAdmin, true},
		{UserRole("customer"), false},
		{UserRole(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.isValid, tt.role.IsValid())
		})
	}
}

func TestUserStatus_IsValid(t *testing.T) {
	tests := []struct {
		status  UserStatus
		isValid bool
	}{
		{UserStatusActive, true},
		{UserStatusSuspended, true},
		{UserStatusPending, true},
		{UserStatus("locked"), false},
		{UserStatus(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.isValid, tt.status.IsValid())
		})
	}
}

// ============================================
// Constructor tests
// ============================================

func TestNewVendor(t *testing.T) {
	t.Run("creates active vendor with valid inputs", func(t *testing.T) {
		user := createTestVendor(t)

		assert.Equal(t, UserRoleVendor, user.Role)
		assert.Equal(t, UserStatusActive, user.Status)
		assert.Equal(t, "arjun_vendor", user.Username)
		assert.Equal(t, "arjun@streetfood.com", user.Email)
		assert.Equal(t, "Singh Street Food Corner", user.BusinessName)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotEqual(t, "vendor123", user.PasswordHash)
		assert.Len(t, user.GetDomainEvents(), 1)
	})

	t.Run("requires business name", func(t *testing.T) {
		_, err := NewVendor("arjun_vendor", "arjun@streetfood.com", "vendor123", "Arjun Singh", "")
		require.Error(t, err)
	})

	t.Run("normalizes username and email to lowercase", func(t *testing.T) {
		user, err := NewVendor("Arjun.Vendor", "Arjun@StreetFood.com", "vendor123", "Arjun Singh", "Singh Street Food Corner")
		require.NoError(t, err)
		assert.Equal(t, "arjun.vendor", user.Username)
		assert.Equal(t, "arjun@streetfood.com", user.Email)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		_, err := NewVendor("arjun_vendor", "not-an-email", "vendor123", "Arjun Singh", "Singh Street Food Corner")
		require.Error(t, err)
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := NewVendor("arjun_vendor", "arjun@streetfood.com", "short", "Arjun Singh", "Singh Street Food Corner")
		require.Error(t, err)
	})
}

func TestNewSupplier(t *testing.T) {
	t.Run("supplier always starts pending", func(t *testing.T) {
		user := createTestSupplier(t)

		assert.Equal(t, UserRoleSupplier, user.Role)
		assert.Equal(t, UserStatusPending, user.Status)
		assert.Equal(t, "Kumar Wholesale Mart", user.CompanyName)
		assert.Equal(t, "WHL2023001", user.BusinessLicense)
	})

	t.Run("requires company name", func(t *testing.T) {
		_, err := NewSupplier("rajesh", "rajesh@wholesale.com", "supplier123", "Rajesh Kumar", "", "Rajesh Kumar", "")
		require.Error(t, err)
	})

	t.Run("requires contact person", func(t *testing.T) {
		_, err := NewSupplier("rajesh", "rajesh@wholesale.com", "supplier123", "Rajesh Kumar", "Kumar Wholesale Mart", "", "")
		require.Error(t, err)
	})
}

func TestNewAdmin(t *testing.T) {
	user, err := NewAdmin("admin", "admin@streetmarket.com", "admin123", "Platform Admin")
	require.NoError(t, err)

	assert.Equal(t, UserRoleAdmin, user.Role)
	assert.Equal(t, UserStatusActive, user.Status)
}

// ============================================
// Password tests
// ============================================

func TestUser_VerifyPassword(t *testing.T) {
	user := createTestVendor(t)

	assert.True(t, user.VerifyPassword("vendor123"))
	assert.False(t, user.VerifyPassword("wrong-password"))
	assert.False(t, user.VerifyPassword(""))
}

func TestUser_ChangePassword(t *testing.T) {
	t.Run("changes password with correct current password", func(t *testing.T) {
		user := createTestVendor(t)

		err := user.ChangePassword("vendor123", "newpass456")
		require.NoError(t, err)

		assert.True(t, user.VerifyPassword("newpass456"))
		assert.False(t, user.VerifyPassword("vendor123"))
	})

	t.Run("rejects wrong current password", func(t *testing.T) {
		user := createTestVendor(t)

		err := user.ChangePassword("wrong", "newpass456")
		require.Error(t, err)
		assert.True(t, user.VerifyPassword("vendor123"))
	})
}

// ============================================
// Status tests
// ============================================

func TestUser_SetStatus(t *testing.T) {
	t.Run("admin may toggle between any statuses", func(t *testing.T) {
		user := createTestSupplier(t)

		require.NoError(t, user.SetStatus(UserStatusActive))
		assert.Equal(t, UserStatusActive, user.Status)

		require.NoError(t, user.SetStatus(UserStatusSuspended))
		assert.Equal(t, UserStatusSuspended, user.Status)

		require.NoError(t, user.SetStatus(UserStatusPending))
		assert.Equal(t, UserStatusPending, user.Status)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		user := createTestVendor(t)
		err := user.SetStatus(UserStatus("deleted"))
		require.Error(t, err)
	})
}

func TestUser_CanLogin(t *testing.T) {
	user := createTestSupplier(t)
	assert.False(t, user.CanLogin(), "pending supplier cannot login")

	require.NoError(t, user.SetStatus(UserStatusActive))
	assert.True(t, user.CanLogin())

	require.NoError(t, user.SetStatus(UserStatusSuspended))
	assert.False(t, user.CanLogin())
}

// ============================================
// Display name tests
// ============================================

func TestUser_DisplayName(t *testing.T) {
	t.Run("supplier uses company name", func(t *testing.T) {
		user := createTestSupplier(t)
		assert.Equal(t, "Kumar Wholesale Mart", user.DisplayName())
	})

	t.Run("vendor uses business name", func(t *testing.T) {
		user := createTestVendor(t)
		assert.Equal(t, "Singh Street Food Corner", user.DisplayName())
	})

	t.Run("falls back to personal name", func(t *testing.T) {
		user := createTestSupplier(t)
		user.CompanyName = ""
		assert.Equal(t, "Rajesh Kumar", user.DisplayName())
	})
}
