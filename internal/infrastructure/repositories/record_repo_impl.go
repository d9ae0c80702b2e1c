package repositories

import (
	"context"
	"errors"
	"math"
	"time"

	"gorm.io/gorm"
	"contract-hub.backend/internal/domain/entities"
	domainerrors "contract-hub.backend/internal/domain/errors"
	domainrepos "contract-hub.backend/internal/domain/repositories"
	"contract-hub.backend/internal/infrastructure/models"
	"contract-hub.backend/pkg/utils"
)

const counterRowID uint32 = 1

// mutableRecordColumns is the full set of columns UpdateMutable may touch.
// Anything outside this set is an immutable field and the store refuses it.
var mutableRecordColumns = map[string]bool{
	"enabled":         true,
	"identity":        true,
	"group_id":        true,
	"audit_url":       true,
	"project_name":    true,
	"project_website": true,
	"github":          true,
	"updated_at":      true,
}

type recordRepo struct {
	db *gorm.DB
}

// NewRecordRepository creates a new record repository
func NewRecordRepository(db *gorm.DB) domainrepos.RecordRepository {
	return &recordRepo{db: db}
}

// Insert assigns the next id from the counter row and stores the record.
// Callers wrap this in a UnitOfWork so the counter increment and the insert
// commit together.
func (r *recordRepo) Insert(ctx context.Context, record *entities.Record) error {
	db := GetDB(ctx, r.db)

	var counter models.RegistryCounter
	err := db.Where("id = ?", counterRowID).First(&counter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		counter = models.RegistryCounter{ID: counterRowID, NextID: 1}
		if err := db.Create(&counter).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	// ids are never reused, so the space can genuinely run out
	if counter.NextID == math.MaxUint32 {
		return domainerrors.ErrRecordLimitReached
	}

	record.ID = counter.NextID
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt

	if err := db.Create(toRecordModel(record)).Error; err != nil {
		return err
	}

	return db.Model(&models.RegistryCounter{}).
		Where("id = ?", counterRowID).
		Update("next_id", counter.NextID+1).Error
}

// GetByID gets a record by id
func (r *recordRepo) GetByID(ctx context.Context, id uint32) (*entities.Record, error) {
	var m models.Record
	err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toRecordEntity(&m), nil
}

// UpdateMutable replaces only the mutable field subset and returns the
// updated record. Immutable columns are unreachable from here; the column
// allowlist is a last-line guard should that ever change.
func (r *recordRepo) UpdateMutable(ctx context.Context, id uint32, mutation entities.RecordMutation) (*entities.Record, error) {
	db := GetDB(ctx, r.db)

	cols := map[string]interface{}{
		"enabled":         mutation.Enabled,
		"identity":        mutation.Identity,
		"group_id":        mutation.GroupID,
		"audit_url":       mutation.AuditURL,
		"project_name":    mutation.ProjectName,
		"project_website": mutation.ProjectWebsite,
		"github":          mutation.Github,
		"updated_at":      time.Now(),
	}
	if err := guardMutableColumns(cols); err != nil {
		return nil, err
	}

	result := db.Model(&models.Record{}).Where("id = ?", id).Updates(cols)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}

	return r.GetByID(ctx, id)
}

// ListByAddress is the secondary-index lookup: all records registered for a
// contract address, optionally narrowed to one chain.
func (r *recordRepo) ListByAddress(ctx context.Context, address string, chain *uint8, pagination utils.PaginationParams) ([]*entities.Record, int64, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Record{}).
		Where("contract_address = ?", address)
	if chain != nil {
		query = query.Where("chain = ?", *chain)
	}
	return r.listQuery(query, pagination)
}

// List gets all records
func (r *recordRepo) List(ctx context.Context, pagination utils.PaginationParams) ([]*entities.Record, int64, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Record{})
	return r.listQuery(query, pagination)
}

// Count returns the total number of records
func (r *recordRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Record{}).Count(&total).Error
	return total, err
}

func (r *recordRepo) listQuery(query *gorm.DB, pagination utils.PaginationParams) ([]*entities.Record, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if pagination.Limit > 0 {
		query = query.Limit(pagination.Limit).Offset(pagination.CalculateOffset())
	}

	var rows []models.Record
	if err := query.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.Record, 0, len(rows))
	for i := range rows {
		items = append(items, toRecordEntity(&rows[i]))
	}
	return items, total, nil
}

func guardMutableColumns(cols map[string]interface{}) error {
	for name := range cols {
		if !mutableRecordColumns[name] {
			return domainerrors.ErrImmutableFieldChange
		}
	}
	return nil
}

func toRecordModel(e *entities.Record) *models.Record {
	return &models.Record{
		ID:              e.ID,
		ContractAddress: e.ContractAddress,
		Chain:           e.Chain,
		Owner:           e.Owner,
		Enabled:         e.Enabled,
		Identity:        e.Identity,
		AbiURL:          e.AbiURL,
		ContractURL:     e.ContractURL,
		WasmURL:         e.WasmURL,
		AuditURL:        e.AuditURL,
		GroupID:         e.GroupID,
		ProjectName:     e.ProjectName,
		ProjectWebsite:  e.ProjectWebsite,
		Github:          e.Github,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func toRecordEntity(m *models.Record) *entities.Record {
	return &entities.Record{
		ID:              m.ID,
		ContractAddress: m.ContractAddress,
		Chain:           m.Chain,
		Owner:           m.Owner,
		Enabled:         m.Enabled,
		Identity:        m.Identity,
		AbiURL:          m.AbiURL,
		ContractURL:     m.ContractURL,
		WasmURL:         m.WasmURL,
		AuditURL:        m.AuditURL,
		GroupID:         m.GroupID,
		ProjectName:     m.ProjectName,
		ProjectWebsite:  m.ProjectWebsite,
		Github:          m.Github,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
