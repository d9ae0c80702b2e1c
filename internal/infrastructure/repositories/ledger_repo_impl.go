package repositories

import (
	"context"
	"errors"
	"math/big"
	"time"

	"gorm.io/gorm"
	"contract-hub.backend/internal/domain/entities"
	domainerrors "contract-hub.backend/internal/domain/errors"
	domainrepos "contract-hub.backend/internal/domain/repositories"
	"contract-hub.backend/internal/infrastructure/models"
)

type ledgerRepo struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *gorm.DB) domainrepos.LedgerRepository {
	return &ledgerRepo{db: db}
}

// GetAccount gets a ledger account by address
func (r *ledgerRepo) GetAccount(ctx context.Context, address string) (*entities.LedgerAccount, error) {
	var m models.LedgerAccount
	err := GetDB(ctx, r.db).WithContext(ctx).Where("address = ?", address).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toLedgerEntity(&m), nil
}

// Deposit credits an account, creating it when absent
func (r *ledgerRepo) Deposit(ctx context.Context, address string, amount *big.Int) (*entities.LedgerAccount, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, domainerrors.ErrInvalidInput
	}

	db := GetDB(ctx, r.db)

	var m models.LedgerAccount
	err := db.Where("address = ?", address).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		m = models.LedgerAccount{
			Address:   address,
			Balance:   amount.String(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := db.Create(&m).Error; err != nil {
			return nil, err
		}
		return toLedgerEntity(&m), nil
	}
	if err != nil {
		return nil, err
	}

	balance, ok := new(big.Int).SetString(m.Balance, 10)
	if !ok {
		balance = big.NewInt(0)
	}
	m.Balance = new(big.Int).Add(balance, amount).String()
	m.UpdatedAt = time.Now()

	if err := db.Model(&models.LedgerAccount{}).Where("address = ?", address).
		Updates(map[string]interface{}{"balance": m.Balance, "updated_at": m.UpdatedAt}).Error; err != nil {
		return nil, err
	}
	return toLedgerEntity(&m), nil
}

// Transfer debits from and credits to in two statements. Callers run it
// inside a UnitOfWork, so a failure between the statements cannot leave a
// half-applied transfer behind.
func (r *ledgerRepo) Transfer(ctx context.Context, from, to string, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return domainerrors.ErrFeeTransferFailed
	}
	if amount.Sign() == 0 {
		return nil
	}

	db := GetDB(ctx, r.db)

	var source models.LedgerAccount
	err := db.Where("address = ?", from).First(&source).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainerrors.ErrFeeTransferFailed
	}
	if err != nil {
		return err
	}

	balance, ok := new(big.Int).SetString(source.Balance, 10)
	if !ok || balance.Cmp(amount) < 0 {
		return domainerrors.ErrFeeTransferFailed
	}

	debited := new(big.Int).Sub(balance, amount)
	if err := db.Model(&models.LedgerAccount{}).Where("address = ?", from).
		Updates(map[string]interface{}{"balance": debited.String(), "updated_at": time.Now()}).Error; err != nil {
		return err
	}

	if _, err := r.Deposit(ctx, to, amount); err != nil {
		return err
	}
	return nil
}

func toLedgerEntity(m *models.LedgerAccount) *entities.LedgerAccount {
	return &entities.LedgerAccount{
		Address:   m.Address,
		Balance:   m.Balance,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
