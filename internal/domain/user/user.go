package user

import (
	"fmt"
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStaff    Role = "staff"
	RoleApprover Role = "approver"
	RoleTenant   Role = "tenant"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleApprover, RoleTenant:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// CanOverrideApprovals reports whether the role may decide approvals
// assigned to someone else.
func (r Role) CanOverrideApprovals() bool {
	return r == RoleAdmin || r == RoleStaff
}

// User is the account projection the approval workflow needs: identity,
// a role for authorization, and an address for email mirroring.
type User struct {
	id        uint
	name      string
	email     string
	role      Role
	active    bool
	createdAt time.Time
}

func NewUser(name, email string, role Role) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("valid email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		name:      name,
		email:     email,
		role:      role,
		active:    true,
		createdAt: time.Now(),
	}, nil
}

func ReconstructUser(id uint, name, email string, role Role, active bool, createdAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:        id,
		name:      name,
		email:     email,
		role:      role,
		active:    active,
		createdAt: createdAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) Role() Role {
	return u.role
}

func (u *User) IsActive() bool {
	return u.active
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) Deactivate() {
	u.active = false
}
