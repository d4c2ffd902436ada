package roster

import "context"

// Repository persists members. Create, Update and Delete span the person row
// and the role row; implementations must apply both writes atomically so a
// person without a role (or the reverse) is never observable.
type Repository interface {
	Create(ctx context.Context, m Member) error
	Update(ctx context.Context, m Member) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Member, bool, error)
	ListPlayersByTeam(ctx context.Context, teamID string) ([]Member, error)
	ListCoachesByTeam(ctx context.Context, teamID string) ([]Member, error)
}
