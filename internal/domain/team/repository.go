package team

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (Team, bool, error)
	List(ctx context.Context) ([]Team, error)
	Create(ctx context.Context, t Team) error
	Update(ctx context.Context, t Team) error
	Delete(ctx context.Context, id string) error
}
