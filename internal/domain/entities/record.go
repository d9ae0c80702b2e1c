package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Chain tags distinguish the network a contract is deployed to.
const (
	ChainProduction uint8 = 0
	ChainTestnet    uint8 = 1
	ChainDevnet     uint8 = 2
)

// Record describes one registered smart contract.
//
// ContractAddress, Chain, Owner, AbiURL, ContractURL and WasmURL are set at
// creation and never change; updates touch only the mutable subset (see
// UpdateRecordInput). Records are never deleted, only disabled.
type Record struct {
	ID              uint32      `json:"id"`
	ContractAddress string      `json:"contractAddress"`
	Chain           uint8       `json:"chain"`
	Owner           string      `json:"owner"`
	Enabled         bool        `json:"enabled"`
	Identity        string      `json:"identity"`
	AbiURL          string      `json:"abiUrl"`
	ContractURL     null.String `json:"contractUrl,omitempty"`
	WasmURL         null.String `json:"wasmUrl,omitempty"`
	AuditURL        null.String `json:"auditUrl,omitempty"`
	GroupID         null.Uint32 `json:"groupId,omitempty"`
	ProjectName     null.String `json:"projectName,omitempty"`
	ProjectWebsite  null.String `json:"projectWebsite,omitempty"`
	Github          null.String `json:"github,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// CreateRecordInput carries the caller-supplied fields for record creation.
// The owner is never part of the input; it is always the authenticated caller.
type CreateRecordInput struct {
	ContractAddress string      `json:"contractAddress" binding:"required"`
	Chain           uint8       `json:"chain"`
	Identity        string      `json:"identity" binding:"required"`
	AbiURL          string      `json:"abiUrl"`
	ContractURL     null.String `json:"contractUrl"`
	WasmURL         null.String `json:"wasmUrl"`
	AuditURL        null.String `json:"auditUrl"`
	GroupID         null.Uint32 `json:"groupId"`
	ProjectName     null.String `json:"projectName"`
	ProjectWebsite  null.String `json:"projectWebsite"`
	Github          null.String `json:"github"`
}

// UpdateRecordInput carries the mutable subset for record updates. Immutable
// fields have no representation here, so they cannot be smuggled through.
type UpdateRecordInput struct {
	Enabled        bool        `json:"enabled"`
	Identity       string      `json:"identity" binding:"required"`
	GroupID        null.Uint32 `json:"groupId"`
	AuditURL       null.String `json:"auditUrl"`
	ProjectName    null.String `json:"projectName"`
	ProjectWebsite null.String `json:"projectWebsite"`
	Github         null.String `json:"github"`
}

// RecordMutation is the mutable-field set the store applies on update.
type RecordMutation struct {
	Enabled        bool
	Identity       string
	GroupID        null.Uint32
	AuditURL       null.String
	ProjectName    null.String
	ProjectWebsite null.String
	Github         null.String
}
