package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/volatiletech/null/v8"

	"contract-hub.backend/internal/domain/entities"
	domainerrors "contract-hub.backend/internal/domain/errors"
	"contract-hub.backend/internal/domain/repositories"
	"contract-hub.backend/internal/domain/services"
	"contract-hub.backend/pkg/logger"
	"contract-hub.backend/pkg/utils"
	"go.uber.org/zap"
)

// RegistryUsecase handles registry record business logic
type RegistryUsecase struct {
	recordRepo repositories.RecordRepository
	eventRepo  repositories.RegistryEventRepository
	resolver   services.IdentityResolver
	groups     services.GroupService
	fees       services.FeeCollector
	params     services.ParamStore
	uow        repositories.UnitOfWork
}

// NewRegistryUsecase creates a new registry usecase
func NewRegistryUsecase(
	recordRepo repositories.RecordRepository,
	eventRepo repositories.RegistryEventRepository,
	resolver services.IdentityResolver,
	groups services.GroupService,
	fees services.FeeCollector,
	params services.ParamStore,
	uow repositories.UnitOfWork,
) *RegistryUsecase {
	return &RegistryUsecase{
		recordRepo: recordRepo,
		eventRepo:  eventRepo,
		resolver:   resolver,
		groups:     groups,
		fees:       fees,
		params:     params,
		uow:        uow,
	}
}

// Create registers a new record owned by caller. The creation fee, the id
// assignment, the record row and the created event all land in one
// transaction; any failure leaves no trace.
func (u *RegistryUsecase) Create(ctx context.Context, caller string, input *entities.CreateRecordInput) (*entities.Record, error) {
	abiURL := strings.TrimSpace(input.AbiURL)
	if abiURL == "" {
		return nil, fmt.Errorf("%w: abiUrl", domainerrors.ErrMissingField)
	}
	if strings.TrimSpace(input.ContractAddress) == "" {
		return nil, fmt.Errorf("%w: contractAddress", domainerrors.ErrMissingField)
	}
	if input.Chain > entities.ChainDevnet {
		return nil, fmt.Errorf("%w: unknown chain %d", domainerrors.ErrInvalidInput, input.Chain)
	}

	identity := strings.TrimSpace(input.Identity)
	if err := u.checkIdentityOwnership(ctx, identity, caller); err != nil {
		return nil, err
	}
	if err := u.checkGroupMembership(ctx, input.GroupID, caller); err != nil {
		return nil, err
	}

	record := &entities.Record{
		ContractAddress: strings.TrimSpace(input.ContractAddress),
		Chain:           input.Chain,
		Owner:           caller,
		Enabled:         true,
		Identity:        identity,
		AbiURL:          abiURL,
		ContractURL:     trimmedNull(input.ContractURL),
		WasmURL:         trimmedNull(input.WasmURL),
		AuditURL:        trimmedNull(input.AuditURL),
		GroupID:         input.GroupID,
		ProjectName:     input.ProjectName,
		ProjectWebsite:  input.ProjectWebsite,
		Github:          input.Github,
	}

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.fees.Collect(txCtx, caller); err != nil {
			return err
		}
		if err := u.recordRepo.Insert(txCtx, record); err != nil {
			return err
		}
		return u.eventRepo.Create(txCtx, &entities.RegistryEvent{
			RecordID:  record.ID,
			EventType: entities.RegistryEventCreated,
			Caller:    caller,
			Payload:   createdPayload(record),
		})
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "record created",
		zap.Uint32("record_id", record.ID),
		zap.String("owner", record.Owner),
		zap.Uint8("chain", record.Chain),
	)
	return record, nil
}

// Update applies the mutable field subset to an existing record. Only the
// owner may update, and the submitted identity must still resolve to them.
func (u *RegistryUsecase) Update(ctx context.Context, caller string, id uint32, input *entities.UpdateRecordInput) (*entities.Record, error) {
	record, err := u.recordRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !utils.SameAddress(record.Owner, caller) {
		return nil, fmt.Errorf("%w: only the owner may update record %d", domainerrors.ErrForbidden, id)
	}

	identity := strings.TrimSpace(input.Identity)
	if err := u.checkIdentityOwnership(ctx, identity, caller); err != nil {
		return nil, err
	}
	if err := u.checkGroupMembership(ctx, input.GroupID, caller); err != nil {
		return nil, err
	}

	mutation := entities.RecordMutation{
		Enabled:        input.Enabled,
		Identity:       identity,
		GroupID:        input.GroupID,
		AuditURL:       trimmedNull(input.AuditURL),
		ProjectName:    input.ProjectName,
		ProjectWebsite: input.ProjectWebsite,
		Github:         input.Github,
	}

	var updated *entities.Record
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		var txErr error
		updated, txErr = u.recordRepo.UpdateMutable(txCtx, id, mutation)
		if txErr != nil {
			return txErr
		}
		return u.eventRepo.Create(txCtx, &entities.RegistryEvent{
			RecordID:  id,
			EventType: entities.RegistryEventUpdated,
			Caller:    caller,
			Payload:   updatedPayload(mutation),
		})
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "record updated", zap.Uint32("record_id", id), zap.String("caller", caller))
	return updated, nil
}

// GetByID returns a single record
func (u *RegistryUsecase) GetByID(ctx context.Context, id uint32) (*entities.Record, error) {
	return u.recordRepo.GetByID(ctx, id)
}

// ListByAddress returns records whose contract address matches, optionally
// narrowed to one chain, ordered by ascending id.
func (u *RegistryUsecase) ListByAddress(ctx context.Context, address string, chain *uint8, pagination utils.PaginationParams) ([]*entities.Record, int64, error) {
	if strings.TrimSpace(address) == "" {
		return nil, 0, fmt.Errorf("%w: address", domainerrors.ErrMissingField)
	}
	if chain != nil && *chain > entities.ChainDevnet {
		return nil, 0, fmt.Errorf("%w: unknown chain %d", domainerrors.ErrInvalidInput, *chain)
	}
	return u.recordRepo.ListByAddress(ctx, address, chain, pagination)
}

// List returns all records ordered by ascending id
func (u *RegistryUsecase) List(ctx context.Context, pagination utils.PaginationParams) ([]*entities.Record, int64, error) {
	return u.recordRepo.List(ctx, pagination)
}

// EventsFor returns the audit trail of a record in insertion order
func (u *RegistryUsecase) EventsFor(ctx context.Context, recordID uint32) ([]*entities.RegistryEvent, error) {
	if _, err := u.recordRepo.GetByID(ctx, recordID); err != nil {
		return nil, err
	}
	return u.eventRepo.GetByRecordID(ctx, recordID)
}

// Config reports the current engine parameters and record count
func (u *RegistryUsecase) Config(ctx context.Context) (*entities.RegistryConfig, error) {
	count, err := u.recordRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	params := u.params.Params()
	return &entities.RegistryConfig{
		AdminAddress: params.AdminAddress,
		FeeAmount:    params.FeeAmount,
		RecordCount:  count,
	}, nil
}

// UpdateConfig replaces the runtime registry parameters
func (u *RegistryUsecase) UpdateConfig(ctx context.Context, params services.RegistryParams) (*entities.RegistryConfig, error) {
	if err := u.params.UpdateParams(params); err != nil {
		return nil, err
	}
	logger.Info(ctx, "registry config updated",
		zap.String("admin_address", params.AdminAddress),
		zap.String("fee_amount", params.FeeAmount),
	)
	return u.Config(ctx)
}

func (u *RegistryUsecase) checkIdentityOwnership(ctx context.Context, identity, caller string) error {
	if identity == "" {
		return fmt.Errorf("%w: identity", domainerrors.ErrMissingField)
	}
	resolved, err := u.resolver.Resolve(ctx, identity)
	if err != nil {
		return err
	}
	if !utils.SameAddress(resolved, caller) {
		return fmt.Errorf("%w: %q resolves to %s", domainerrors.ErrIdentityNotOwned, identity, resolved)
	}
	return nil
}

func (u *RegistryUsecase) checkGroupMembership(ctx context.Context, groupID null.Uint32, caller string) error {
	if !groupID.Valid {
		return nil
	}
	member, err := u.groups.IsMember(ctx, groupID.Uint32, caller)
	if err != nil {
		return err
	}
	if !member {
		return fmt.Errorf("%w: %s is not a member of group %d", domainerrors.ErrNotGroupMember, caller, groupID.Uint32)
	}
	return nil
}

func trimmedNull(s null.String) null.String {
	if !s.Valid {
		return s
	}
	trimmed := strings.TrimSpace(s.String)
	if trimmed == "" {
		return null.String{}
	}
	return null.StringFrom(trimmed)
}

func createdPayload(record *entities.Record) map[string]interface{} {
	payload := map[string]interface{}{
		"id":              record.ID,
		"contractAddress": record.ContractAddress,
		"chain":           record.Chain,
		"owner":           record.Owner,
		"enabled":         record.Enabled,
		"identity":        record.Identity,
		"abiUrl":          record.AbiURL,
	}
	if record.GroupID.Valid {
		payload["groupId"] = record.GroupID.Uint32
	}
	return payload
}

func updatedPayload(mutation entities.RecordMutation) map[string]interface{} {
	payload := map[string]interface{}{
		"enabled":  mutation.Enabled,
		"identity": mutation.Identity,
	}
	if mutation.GroupID.Valid {
		payload["groupId"] = mutation.GroupID.Uint32
	}
	if mutation.AuditURL.Valid {
		payload["auditUrl"] = mutation.AuditURL.String
	}
	if mutation.ProjectName.Valid {
		payload["projectName"] = mutation.ProjectName.String
	}
	if mutation.ProjectWebsite.Valid {
		payload["projectWebsite"] = mutation.ProjectWebsite.String
	}
	if mutation.Github.Valid {
		payload["github"] = mutation.Github.String
	}
	return payload
}
