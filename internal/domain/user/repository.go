package user

import "context"

type Repository interface {
	Save(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	// ListAdmins returns all active users with the admin role.
	ListAdmins(ctx context.Context) ([]*User, error)
}
