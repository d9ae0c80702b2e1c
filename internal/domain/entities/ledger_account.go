package entities

import (
	"math/big"
	"time"
)

// LedgerAccount is one balance row in the internal fee ledger. The ledger
// stands in for the host chain's value transfer: creation fees are debited
// from the caller's account and credited to the administrator's account in
// the same transaction that persists the record.
type LedgerAccount struct {
	Address   string    `json:"address"`
	Balance   string    `json:"balance"` // decimal string, smallest unit
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BalanceInt parses the stored balance. A malformed balance reads as zero.
func (a *LedgerAccount) BalanceInt() *big.Int {
	v, ok := new(big.Int).SetString(a.Balance, 10)
	if !ok {
		return big.NewInt(0)
	}
	return v
}
