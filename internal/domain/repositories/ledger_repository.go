package repositories

import (
	"context"
	"math/big"

	"contract-hub.backend/internal/domain/entities"
)

// LedgerRepository defines balance operations on the internal fee ledger.
// Transfer moves amount from one account to another and fails without
// partial effect when the source balance is insufficient or absent.
type LedgerRepository interface {
	GetAccount(ctx context.Context, address string) (*entities.LedgerAccount, error)
	Deposit(ctx context.Context, address string, amount *big.Int) (*entities.LedgerAccount, error)
	Transfer(ctx context.Context, from, to string, amount *big.Int) error
}
