package repositories

import (
	"context"
)

// UnitOfWork executes a function within one transaction scope. The registry
// engine runs fee collection, record persistence and event emission inside a
// single Do call so a failure at any step rolls back all of them.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
