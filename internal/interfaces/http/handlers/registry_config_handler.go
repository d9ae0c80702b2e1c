package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"contract-hub.backend/internal/interfaces/http/response"
	"contract-hub.backend/internal/usecases"
)

// RegistryConfigHandler exposes the public engine configuration
type RegistryConfigHandler struct {
	usecase *usecases.RegistryUsecase
}

// NewRegistryConfigHandler creates a new registry config handler
func NewRegistryConfigHandler(usecase *usecases.RegistryUsecase) *RegistryConfigHandler {
	return &RegistryConfigHandler{usecase: usecase}
}

// GetConfig reports fee amount, administrator address and record count
// GET /api/v1/registry/config
func (h *RegistryConfigHandler) GetConfig(c *gin.Context) {
	cfg, err := h.usecase.Config(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"config": cfg})
}
