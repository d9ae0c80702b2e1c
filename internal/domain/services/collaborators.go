package services

import (
	"context"
)

// IdentityResolver answers which address currently controls an identity
// handle. Resolution is a read-only query against an external service; a
// handle that does not resolve returns domainerrors.ErrIdentityNotOwned and
// a transport or service failure returns domainerrors.ErrResolverUnavailable.
type IdentityResolver interface {
	Resolve(ctx context.Context, identity string) (string, error)
}

// GroupService answers whether an address is a member of a group. Unknown
// groups return domainerrors.ErrGroupNotFound; transport or service failures
// return domainerrors.ErrGroupServiceUnavailable.
type GroupService interface {
	IsMember(ctx context.Context, groupID uint32, address string) (bool, error)
}

// FeeCollector moves the fixed creation fee from the caller to the registry
// administrator. A single blocking call with no retry: insufficient balance
// or a rejected transfer returns domainerrors.ErrFeeTransferFailed and fails
// the whole create operation.
type FeeCollector interface {
	Collect(ctx context.Context, from string) error
}

// RegistryParams is the runtime-adjustable engine configuration.
// FeeAmount is a base-unit decimal string.
type RegistryParams struct {
	AdminAddress string `json:"adminAddress"`
	FeeAmount    string `json:"feeAmount"`
}

// ParamStore exposes read and update of registry parameters.
type ParamStore interface {
	Params() RegistryParams
	UpdateParams(params RegistryParams) error
}
