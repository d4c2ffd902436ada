package match

import (
	"context"
	"time"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (Match, bool, error)
	List(ctx context.Context) ([]Match, error)
	// ListPlayed returns matches with both goal columns set, newest first.
	// "Played" is defined by null-ness, so a 0-0 result is included.
	ListPlayed(ctx context.Context) ([]Match, error)
	// ListUpcoming returns matches with no goals recorded, soonest first.
	ListUpcoming(ctx context.Context) ([]Match, error)
	Create(ctx context.Context, m Match) error
	Reschedule(ctx context.Context, id string, kickoffAt time.Time) error
	Delete(ctx context.Context, id string) error
}
