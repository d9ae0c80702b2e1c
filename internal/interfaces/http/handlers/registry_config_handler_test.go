package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "contract-hub.backend/internal/domain/errors"
)

func newConfigRouter(f *handlerFixture) *gin.Engine {
	h := NewRegistryConfigHandler(f.usecase)
	r := gin.New()
	r.GET("/api/v1/registry/config", h.GetConfig)
	return r
}

func TestRegistryConfigHandler_GetConfig(t *testing.T) {
	f := newHandlerFixture()
	f.recordRepo.countFn = func(ctx context.Context) (int64, error) {
		return 3, nil
	}

	w := httptest.NewRecorder()
	newConfigRouter(f).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/registry/config", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"adminAddress":"0xadmin"`)
	assert.Contains(t, w.Body.String(), `"feeAmount":"10"`)
	assert.Contains(t, w.Body.String(), `"recordCount":3`)
}

func TestRegistryConfigHandler_GetConfigStoreFailure(t *testing.T) {
	f := newHandlerFixture()
	f.recordRepo.countFn = func(ctx context.Context) (int64, error) {
		return 0, domainerrors.InternalError(context.DeadlineExceeded)
	}

	w := httptest.NewRecorder()
	newConfigRouter(f).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/registry/config", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
