package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"contract-hub.backend/internal/domain/entities"
	domainerrors "contract-hub.backend/internal/domain/errors"
	"contract-hub.backend/internal/interfaces/http/middleware"
	"contract-hub.backend/internal/interfaces/http/response"
	"contract-hub.backend/internal/usecases"
	"contract-hub.backend/pkg/utils"
)

// RecordHandler handles registry record endpoints
type RecordHandler struct {
	usecase *usecases.RegistryUsecase
}

// NewRecordHandler creates a new record handler
func NewRecordHandler(usecase *usecases.RegistryUsecase) *RecordHandler {
	return &RecordHandler{usecase: usecase}
}

// CreateRecord registers a new smart contract record
// POST /api/v1/records
func (h *RecordHandler) CreateRecord(c *gin.Context) {
	caller, ok := middleware.GetCallerAddress(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("caller not authenticated"))
		return
	}

	var input entities.CreateRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	record, err := h.usecase.Create(c.Request.Context(), caller, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"record": record})
}

// UpdateRecord applies the mutable field subset to an owned record
// PUT /api/v1/records/:id
func (h *RecordHandler) UpdateRecord(c *gin.Context) {
	caller, ok := middleware.GetCallerAddress(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("caller not authenticated"))
		return
	}

	id, err := parseRecordID(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid record ID"))
		return
	}

	var input entities.UpdateRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	record, err := h.usecase.Update(c.Request.Context(), caller, id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"record": record})
}

// GetRecord gets a record by ID
// GET /api/v1/records/:id
func (h *RecordHandler) GetRecord(c *gin.Context) {
	id, err := parseRecordID(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid record ID"))
		return
	}

	record, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"record": record})
}

// ListRecords lists records, optionally filtered by contract address and chain
// GET /api/v1/records?address=&chain=&page=&limit=
func (h *RecordHandler) ListRecords(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	pagination := utils.GetPaginationParams(page, limit)

	var chain *uint8
	if chainStr := c.Query("chain"); chainStr != "" {
		parsed, err := strconv.ParseUint(chainStr, 10, 8)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("invalid chain"))
			return
		}
		value := uint8(parsed)
		chain = &value
	}

	var records []*entities.Record
	var totalCount int64
	var err error

	if address := c.Query("address"); address != "" {
		records, totalCount, err = h.usecase.ListByAddress(c.Request.Context(), address, chain, pagination)
	} else {
		records, totalCount, err = h.usecase.List(c.Request.Context(), pagination)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"records":    records,
		"pagination": utils.CalculateMeta(totalCount, pagination.Page, pagination.Limit),
	})
}

// GetRecordEvents returns the audit trail of a record
// GET /api/v1/records/:id/events
func (h *RecordHandler) GetRecordEvents(c *gin.Context) {
	id, err := parseRecordID(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid record ID"))
		return
	}

	events, err := h.usecase.EventsFor(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"events": events})
}

func parseRecordID(s string) (uint32, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(id), nil
}
