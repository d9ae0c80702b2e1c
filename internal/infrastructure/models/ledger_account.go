package models

import (
	"time"
)

// LedgerAccount balances are stored as decimal strings in the smallest unit
// to avoid float drift; arithmetic happens in big.Int at the repository.
type LedgerAccount struct {
	Address   string `gorm:"type:varchar(66);primaryKey"`
	Balance   string `gorm:"type:numeric(78,0);not null;default:'0'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LedgerAccount) TableName() string {
	return "ledger_accounts"
}
