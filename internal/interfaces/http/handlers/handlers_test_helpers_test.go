package handlers

import (
	"context"
	"math/big"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"contract-hub.backend/internal/domain/entities"
	domainerrors "contract-hub.backend/internal/domain/errors"
	"contract-hub.backend/internal/domain/services"
	"contract-hub.backend/internal/interfaces/http/middleware"
	"contract-hub.backend/internal/usecases"
	"contract-hub.backend/pkg/logger"
	"contract-hub.backend/pkg/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	os.Exit(m.Run())
}

type recordRepoStub struct {
	insertFn        func(ctx context.Context, record *entities.Record) error
	getByIDFn       func(ctx context.Context, id uint32) (*entities.Record, error)
	updateMutableFn func(ctx context.Context, id uint32, mutation entities.RecordMutation) (*entities.Record, error)
	listByAddressFn func(ctx context.Context, address string, chain *uint8, pagination utils.PaginationParams) ([]*entities.Record, int64, error)
	listFn          func(ctx context.Context, pagination utils.PaginationParams) ([]*entities.Record, int64, error)
	countFn         func(ctx context.Context) (int64, error)
}

func (s *recordRepoStub) Insert(ctx context.Context, record *entities.Record) error {
	if s.insertFn != nil {
		return s.insertFn(ctx, record)
	}
	record.ID = 1
	return nil
}

func (s *recordRepoStub) GetByID(ctx context.Context, id uint32) (*entities.Record, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *recordRepoStub) UpdateMutable(ctx context.Context, id uint32, mutation entities.RecordMutation) (*entities.Record, error) {
	if s.updateMutableFn != nil {
		return s.updateMutableFn(ctx, id, mutation)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *recordRepoStub) ListByAddress(ctx context.Context, address string, chain *uint8, pagination utils.PaginationParams) ([]*entities.Record, int64, error) {
	if s.listByAddressFn != nil {
		return s.listByAddressFn(ctx, address, chain, pagination)
	}
	return []*entities.Record{}, 0, nil
}

func (s *recordRepoStub) List(ctx context.Context, pagination utils.PaginationParams) ([]*entities.Record, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, pagination)
	}
	return []*entities.Record{}, 0, nil
}

func (s *recordRepoStub) Count(ctx context.Context) (int64, error) {
	if s.countFn != nil {
		return s.countFn(ctx)
	}
	return 0, nil
}

type eventRepoStub struct {
	createFn        func(ctx context.Context, event *entities.RegistryEvent) error
	getByRecordIDFn func(ctx context.Context, recordID uint32) ([]*entities.RegistryEvent, error)
}

func (s *eventRepoStub) Create(ctx context.Context, event *entities.RegistryEvent) error {
	if s.createFn != nil {
		return s.createFn(ctx, event)
	}
	return nil
}

func (s *eventRepoStub) GetByRecordID(ctx context.Context, recordID uint32) ([]*entities.RegistryEvent, error) {
	if s.getByRecordIDFn != nil {
		return s.getByRecordIDFn(ctx, recordID)
	}
	return []*entities.RegistryEvent{}, nil
}

type ledgerRepoStub struct {
	getAccountFn func(ctx context.Context, address string) (*entities.LedgerAccount, error)
	depositFn    func(ctx context.Context, address string, amount *big.Int) (*entities.LedgerAccount, error)
	transferFn   func(ctx context.Context, from, to string, amount *big.Int) error
}

func (s *ledgerRepoStub) GetAccount(ctx context.Context, address string) (*entities.LedgerAccount, error) {
	if s.getAccountFn != nil {
		return s.getAccountFn(ctx, address)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *ledgerRepoStub) Deposit(ctx context.Context, address string, amount *big.Int) (*entities.LedgerAccount, error) {
	if s.depositFn != nil {
		return s.depositFn(ctx, address, amount)
	}
	return &entities.LedgerAccount{Address: address, Balance: amount.String()}, nil
}

func (s *ledgerRepoStub) Transfer(ctx context.Context, from, to string, amount *big.Int) error {
	if s.transferFn != nil {
		return s.transferFn(ctx, from, to, amount)
	}
	return nil
}

type resolverStub struct {
	resolveFn func(ctx context.Context, identity string) (string, error)
}

func (s *resolverStub) Resolve(ctx context.Context, identity string) (string, error) {
	if s.resolveFn != nil {
		return s.resolveFn(ctx, identity)
	}
	return testCaller, nil
}

type groupServiceStub struct {
	isMemberFn func(ctx context.Context, groupID uint32, address string) (bool, error)
}

func (s *groupServiceStub) IsMember(ctx context.Context, groupID uint32, address string) (bool, error) {
	if s.isMemberFn != nil {
		return s.isMemberFn(ctx, groupID, address)
	}
	return true, nil
}

type feeCollectorStub struct {
	collectFn func(ctx context.Context, from string) error
}

func (s *feeCollectorStub) Collect(ctx context.Context, from string) error {
	if s.collectFn != nil {
		return s.collectFn(ctx, from)
	}
	return nil
}

type paramStoreStub struct {
	params   services.RegistryParams
	updateFn func(params services.RegistryParams) error
}

func (s *paramStoreStub) Params() services.RegistryParams {
	return s.params
}

func (s *paramStoreStub) UpdateParams(params services.RegistryParams) error {
	if s.updateFn != nil {
		return s.updateFn(params)
	}
	if params.AdminAddress != "" {
		s.params.AdminAddress = params.AdminAddress
	}
	if params.FeeAmount != "" {
		s.params.FeeAmount = params.FeeAmount
	}
	return nil
}

type passthroughUoW struct{}

func (passthroughUoW) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

const testCaller = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"

type handlerFixture struct {
	recordRepo *recordRepoStub
	eventRepo  *eventRepoStub
	ledgerRepo *ledgerRepoStub
	resolver   *resolverStub
	groups     *groupServiceStub
	fees       *feeCollectorStub
	params     *paramStoreStub
	usecase    *usecases.RegistryUsecase
}

func newHandlerFixture() *handlerFixture {
	f := &handlerFixture{
		recordRepo: &recordRepoStub{},
		eventRepo:  &eventRepoStub{},
		ledgerRepo: &ledgerRepoStub{},
		resolver:   &resolverStub{},
		groups:     &groupServiceStub{},
		fees:       &feeCollectorStub{},
		params:     &paramStoreStub{params: services.RegistryParams{AdminAddress: "0xadmin", FeeAmount: "10"}},
	}
	f.usecase = usecases.NewRegistryUsecase(
		f.recordRepo, f.eventRepo, f.resolver, f.groups, f.fees, f.params, passthroughUoW{},
	)
	return f
}

// injectCaller stands in for the signature middleware in handler tests
func injectCaller(address string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CallerAddressKey, address)
		c.Next()
	}
}
