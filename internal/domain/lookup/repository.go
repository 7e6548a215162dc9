package lookup

import "context"

type Repository interface {
	ListBrands(ctx context.Context) ([]Brand, error)
	CreateBrand(ctx context.Context, b *Brand) error
	DeleteBrand(ctx context.Context, id int64) error

	ListColors(ctx context.Context) ([]Color, error)
	CreateColor(ctx context.Context, c *Color) error
	DeleteColor(ctx context.Context, id int64) error
}
