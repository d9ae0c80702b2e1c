package models

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Record is the persisted registry record. The id is assigned from the
// registry_counters row, not a database autoincrement, so allocation order
// is owned by the application and ids are never reused. The index on
// contract_address is the secondary lookup path; it only ever grows because
// the address column is immutable.
type Record struct {
	ID              uint32      `gorm:"primaryKey;autoIncrement:false"`
	ContractAddress string      `gorm:"type:varchar(66);not null;index:idx_records_address;index:idx_records_chain_address,priority:2"`
	Chain           uint8       `gorm:"not null;index:idx_records_chain_address,priority:1"`
	Owner           string      `gorm:"type:varchar(66);not null"`
	Enabled         bool        `gorm:"not null;default:true"`
	Identity        string      `gorm:"type:varchar(255);not null"`
	AbiURL          string      `gorm:"type:text;not null;column:abi_url"`
	ContractURL     null.String `gorm:"type:text;column:contract_url"`
	WasmURL         null.String `gorm:"type:text;column:wasm_url"`
	AuditURL        null.String `gorm:"type:text;column:audit_url"`
	GroupID         null.Uint32 `gorm:"column:group_id"`
	ProjectName     null.String `gorm:"type:varchar(255)"`
	ProjectWebsite  null.String `gorm:"type:text"`
	Github          null.String `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Record) TableName() string {
	return "records"
}

// RegistryCounter holds the next record id. Exactly one row exists.
type RegistryCounter struct {
	ID     uint32 `gorm:"primaryKey;autoIncrement:false"`
	NextID uint32 `gorm:"not null;column:next_id"`
}

func (RegistryCounter) TableName() string {
	return "registry_counters"
}
