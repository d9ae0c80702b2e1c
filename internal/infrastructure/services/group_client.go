package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	domainErrors "contract-hub.backend/internal/domain/errors"
)

// GroupClient answers membership questions against the external group service.
type GroupClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewGroupClient creates a new group service client
func NewGroupClient(baseURL string) *GroupClient {
	return &GroupClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type membershipResponse struct {
	Member  bool `json:"member"`
	Enabled bool `json:"enabled"`
}

// IsMember reports whether address holds an active membership in the group.
// A disabled group answers false for every address. Unknown groups map to
// ErrGroupNotFound, transport and server failures to ErrGroupServiceUnavailable.
func (c *GroupClient) IsMember(ctx context.Context, groupID uint32, address string) (bool, error) {
	endpoint := c.baseURL + "/groups/" + strconv.FormatUint(uint64(groupID), 10) +
		"/members/" + url.PathEscape(address)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("%w: %v", domainErrors.ErrGroupServiceUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: %v", domainErrors.ErrGroupServiceUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusNotFound:
		return false, fmt.Errorf("%w: group %d", domainErrors.ErrGroupNotFound, groupID)
	default:
		return false, fmt.Errorf("%w: group service returned status %d", domainErrors.ErrGroupServiceUnavailable, resp.StatusCode)
	}

	var body membershipResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, fmt.Errorf("%w: %v", domainErrors.ErrGroupServiceUnavailable, err)
	}

	return body.Member && body.Enabled, nil
}
