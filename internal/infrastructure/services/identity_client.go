package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	domainErrors "contract-hub.backend/internal/domain/errors"
)

// IdentityClient resolves human-readable identities to account addresses
// through the external identity service. Resolutions are never cached:
// ownership can change hands at any moment, so every create and update
// must see the resolver's current answer.
type IdentityClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewIdentityClient creates a new identity service client
func NewIdentityClient(baseURL string) *IdentityClient {
	return &IdentityClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type resolveResponse struct {
	Address string `json:"address"`
}

// Resolve returns the account address that owns the given identity.
// Unknown identities map to ErrIdentityNotOwned, transport and server
// failures to ErrResolverUnavailable.
func (c *IdentityClient) Resolve(ctx context.Context, identity string) (string, error) {
	endpoint := c.baseURL + "/resolve?name=" + url.QueryEscape(identity)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domainErrors.ErrResolverUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domainErrors.ErrResolverUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusNotFound:
		return "", fmt.Errorf("%w: identity %q is unknown", domainErrors.ErrIdentityNotOwned, identity)
	default:
		return "", fmt.Errorf("%w: resolver returned status %d", domainErrors.ErrResolverUnavailable, resp.StatusCode)
	}

	var body resolveResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: %v", domainErrors.ErrResolverUnavailable, err)
	}
	if body.Address == "" {
		return "", fmt.Errorf("%w: identity %q has no registered address", domainErrors.ErrIdentityNotOwned, identity)
	}

	return body.Address, nil
}
