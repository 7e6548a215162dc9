package user

import "context"

type Repository interface {
	List(ctx context.Context) ([]User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	Create(ctx context.Context, u *User) error
	Delete(ctx context.Context, id int64) error
}
