package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "contract-hub.backend/internal/domain/errors"
	"contract-hub.backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init("test")
	os.Exit(m.Run())
}

func TestIdentityClient_Resolve(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		assert.Equal(t, "/resolve", r.URL.Path)
		assert.Equal(t, "alice.azero", r.URL.Query().Get("name"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"address":"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"}`))
	}))
	defer srv.Close()

	client := NewIdentityClient(srv.URL)

	addr, err := client.Resolve(context.Background(), "alice.azero")
	require.NoError(t, err)
	assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", addr)
	assert.Equal(t, 1, hits)
}

func TestIdentityClient_ResolveReflectsOwnershipTransfer(t *testing.T) {
	owner := "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`{"address":"` + owner + `"}`))
	}))
	defer srv.Close()

	client := NewIdentityClient(srv.URL)

	addr, err := client.Resolve(context.Background(), "alice.azero")
	require.NoError(t, err)
	assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", addr)

	// identity changes hands; the next resolution must see the new owner
	owner = "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359"

	addr, err = client.Resolve(context.Background(), "alice.azero")
	require.NoError(t, err)
	assert.Equal(t, "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359", addr)
	assert.Equal(t, 2, hits)
}

func TestIdentityClient_ResolveUnknownIdentity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewIdentityClient(srv.URL)
	_, err := client.Resolve(context.Background(), "nobody.azero")
	assert.ErrorIs(t, err, domainErrors.ErrIdentityNotOwned)
}

func TestIdentityClient_ResolveEmptyAddress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"address":""}`))
	}))
	defer srv.Close()

	client := NewIdentityClient(srv.URL)
	_, err := client.Resolve(context.Background(), "hollow.azero")
	assert.ErrorIs(t, err, domainErrors.ErrIdentityNotOwned)
}

func TestIdentityClient_ResolveServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewIdentityClient(srv.URL)
	_, err := client.Resolve(context.Background(), "alice.azero")
	assert.ErrorIs(t, err, domainErrors.ErrResolverUnavailable)
}

func TestIdentityClient_ResolveTransportError(t *testing.T) {
	client := NewIdentityClient("http://127.0.0.1:1")
	_, err := client.Resolve(context.Background(), "alice.azero")
	assert.ErrorIs(t, err, domainErrors.ErrResolverUnavailable)
}

func TestIdentityClient_ResolveMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not-json`))
	}))
	defer srv.Close()

	client := NewIdentityClient(srv.URL)
	_, err := client.Resolve(context.Background(), "alice.azero")
	assert.ErrorIs(t, err, domainErrors.ErrResolverUnavailable)
}
