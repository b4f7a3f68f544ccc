package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles a profile can carry. Superadmin accounts are seeded, never created
// through the API.
const (
	RoleAgent      = "agent"
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

// ValidRole reports whether r is a known role tag.
func ValidRole(r string) bool {
	return r == RoleAgent || r == RoleAdmin || r == RoleSuperadmin
}

/** --------------------ENTITIES-------------------- */

// Credential is the login half of an account: email plus bcrypt hash. It is
// created and deleted as a unit with the User profile by the privileged
// creation flow, which rolls the credential back if the profile write fails.
type Credential struct {
	ID           string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Email        string         `gorm:"unique;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	CreatedAt    time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"createdAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (c *Credential) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// User is the profile record keyed by the credential's id. A login with no
// profile, or a disabled profile, is treated as unauthenticated.
type User struct {
	ID          string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Email       string         `gorm:"unique;not null" json:"email"`
	DisplayName string         `gorm:"not null" json:"displayName"`
	Role        string         `gorm:"not null;index" json:"role"`
	Disabled    bool           `gorm:"default:false" json:"disabled"`
	District    string         `json:"district"`
	Subcounty   string         `json:"subcounty"`
	Parish      string         `json:"parish"`
	Village     string         `json:"village"`
	CreatedAt   time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"createdAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

/** -------------------- DTOs -------------------- */

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// CreateUserRequest is the privileged creation payload. Role is restricted to
// agent or admin; the service enforces who may request which.
type CreateUserRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Role        string `json:"role" binding:"required"`
	DisplayName string `json:"displayName"`
	District    string `json:"district"`
	Subcounty   string `json:"subcounty"`
	Parish      string `json:"parish"`
	Village     string `json:"village"`
}

type CreateUserResponse struct {
	UID string `json:"uid"`
}

// UpdateUserRequest covers the admin-side mutations: role, disabled flag and
// location metadata. Nil fields are left untouched.
type UpdateUserRequest struct {
	Role      *string `json:"role"`
	Disabled  *bool   `json:"disabled"`
	District  *string `json:"district"`
	Subcounty *string `json:"subcounty"`
	Parish    *string `json:"parish"`
	Village   *string `json:"village"`
}

type UpdateProfileRequest struct {
	DisplayName string `json:"displayName" binding:"required"`
}
