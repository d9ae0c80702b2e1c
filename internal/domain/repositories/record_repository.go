package repositories

import (
	"context"

	"contract-hub.backend/internal/domain/entities"
	"contract-hub.backend/pkg/utils"
)

// RecordRepository defines registry record data operations.
//
// Insert assigns the next id from the persisted counter and stores the
// record; ids are strictly increasing and never reused. UpdateMutable
// replaces only the mutable field subset; there is no path through this
// interface that touches contract_address, chain, owner, abi_url,
// contract_url or wasm_url after creation.
type RecordRepository interface {
	Insert(ctx context.Context, record *entities.Record) error
	GetByID(ctx context.Context, id uint32) (*entities.Record, error)
	UpdateMutable(ctx context.Context, id uint32, mutation entities.RecordMutation) (*entities.Record, error)
	ListByAddress(ctx context.Context, address string, chain *uint8, pagination utils.PaginationParams) ([]*entities.Record, int64, error)
	List(ctx context.Context, pagination utils.PaginationParams) ([]*entities.Record, int64, error)
	Count(ctx context.Context) (int64, error)
}
