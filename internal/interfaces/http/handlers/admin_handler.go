package handlers

import (
	"math/big"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "contract-hub.backend/internal/domain/errors"
	"contract-hub.backend/internal/domain/repositories"
	"contract-hub.backend/internal/domain/services"
	"contract-hub.backend/internal/interfaces/http/response"
	"contract-hub.backend/internal/usecases"
)

// AdminHandler handles operator endpoints: runtime config and the fee ledger
type AdminHandler struct {
	usecase    *usecases.RegistryUsecase
	ledgerRepo repositories.LedgerRepository
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(usecase *usecases.RegistryUsecase, ledgerRepo repositories.LedgerRepository) *AdminHandler {
	return &AdminHandler{
		usecase:    usecase,
		ledgerRepo: ledgerRepo,
	}
}

// UpdateRegistryConfig replaces the runtime fee amount and admin address
// PUT /api/v1/admin/registry/config
func (h *AdminHandler) UpdateRegistryConfig(c *gin.Context) {
	var params services.RegistryParams
	if err := c.ShouldBindJSON(&params); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	if params.AdminAddress == "" && params.FeeAmount == "" {
		response.Error(c, domainerrors.BadRequest("nothing to update"))
		return
	}

	cfg, err := h.usecase.UpdateConfig(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"config": cfg})
}

// GetLedgerAccount inspects a fee ledger balance
// GET /api/v1/admin/ledger/:address
func (h *AdminHandler) GetLedgerAccount(c *gin.Context) {
	account, err := h.ledgerRepo.GetAccount(c.Request.Context(), c.Param("address"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"account": account})
}

type depositInput struct {
	Amount string `json:"amount" binding:"required"`
}

// DepositLedger credits a fee ledger account
// POST /api/v1/admin/ledger/:address/deposit
func (h *AdminHandler) DepositLedger(c *gin.Context) {
	var input depositInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	amount, ok := new(big.Int).SetString(input.Amount, 10)
	if !ok {
		response.Error(c, domainerrors.BadRequest("amount must be a base-unit decimal string"))
		return
	}

	account, err := h.ledgerRepo.Deposit(c.Request.Context(), c.Param("address"), amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"account": account})
}
