package domain

import "time"

// Role is the platform-wide role of a user.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool { return r == RoleUser || r == RoleAdmin }

// AccountRole is the role a user has inside its account.
type AccountRole string

const (
	// AccountRoleOwner may manage billing, members and invites.
	AccountRoleOwner AccountRole = "OWNER"
	// AccountRoleMember may run scans on behalf of the account.
	AccountRoleMember AccountRole = "MEMBER"
)

// User is a person that can log in. Every user belongs to exactly one account.
type User struct {
	ID          UserID      `json:"id"`
	AccountID   AccountID   `json:"accountId"`
	Email       string      `json:"email"`
	Name        string      `json:"name"`
	Role        Role        `json:"role"`
	AccountRole AccountRole `json:"accountRole"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsAdmin reports whether the user can use the admin console.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// IsOwner reports whether the user owns its account.
func (u User) IsOwner() bool { return u.AccountRole == AccountRoleOwner }
