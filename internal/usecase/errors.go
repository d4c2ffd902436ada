package usecase

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidInput covers malformed requests and ledger validation
	// failures (bad clock, unknown kind, player on neither roster). Nothing
	// is written; the operator corrects and retries.
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
	// ErrPersistenceFailure wraps a store error raised inside the commit
	// transaction. The transaction is rolled back in full; the attempt is
	// lost but the process and the stored state are intact.
	ErrPersistenceFailure = errors.New("persistence failure")
)
