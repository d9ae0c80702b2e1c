package services

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	domainErrors "contract-hub.backend/internal/domain/errors"
	"contract-hub.backend/internal/domain/repositories"
	"contract-hub.backend/internal/domain/services"
)

// LedgerFeeCollector charges the record creation fee against the internal
// ledger, crediting the registry administrator. It also acts as the live
// store for the runtime-adjustable registry parameters.
type LedgerFeeCollector struct {
	ledgerRepo repositories.LedgerRepository

	mu           sync.RWMutex
	adminAddress string
	fee          *big.Int
}

// NewLedgerFeeCollector creates a fee collector with the initial parameters.
// feeAmount must be a non-negative base-unit decimal string.
func NewLedgerFeeCollector(ledgerRepo repositories.LedgerRepository, adminAddress, feeAmount string) (*LedgerFeeCollector, error) {
	fee, err := parseFee(feeAmount)
	if err != nil {
		return nil, err
	}
	return &LedgerFeeCollector{
		ledgerRepo:   ledgerRepo,
		adminAddress: adminAddress,
		fee:          fee,
	}, nil
}

// Collect transfers the current fee from the caller to the administrator.
// A zero fee is a no-op. Runs inside the caller's transaction context, so a
// later failure in the same unit of work rolls the debit back.
func (c *LedgerFeeCollector) Collect(ctx context.Context, from string) error {
	c.mu.RLock()
	admin := c.adminAddress
	fee := new(big.Int).Set(c.fee)
	c.mu.RUnlock()

	if fee.Sign() == 0 {
		return nil
	}
	return c.ledgerRepo.Transfer(ctx, from, admin, fee)
}

// Params returns the current registry parameters
func (c *LedgerFeeCollector) Params() services.RegistryParams {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return services.RegistryParams{
		AdminAddress: c.adminAddress,
		FeeAmount:    c.fee.String(),
	}
}

// UpdateParams replaces the registry parameters. Empty fields keep their
// current value.
func (c *LedgerFeeCollector) UpdateParams(params services.RegistryParams) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if params.FeeAmount != "" {
		fee, err := parseFee(params.FeeAmount)
		if err != nil {
			return err
		}
		c.fee = fee
	}
	if params.AdminAddress != "" {
		c.adminAddress = params.AdminAddress
	}
	return nil
}

func parseFee(s string) (*big.Int, error) {
	fee, ok := new(big.Int).SetString(s, 10)
	if !ok || fee.Sign() < 0 {
		return nil, fmt.Errorf("%w: invalid fee amount %q", domainErrors.ErrInvalidInput, s)
	}
	return fee, nil
}
