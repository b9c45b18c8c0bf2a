package usecase

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/domain"
	mAccount "github.com/x-xyz/hbarmarket/domain/account/mocks"
	"github.com/x-xyz/hbarmarket/domain/keys"
	"github.com/x-xyz/hbarmarket/domain/txn"
	mTxn "github.com/x-xyz/hbarmarket/domain/txn/mocks"
	sAccount "github.com/x-xyz/hbarmarket/service/account"
	"github.com/x-xyz/hbarmarket/service/cache"
	"github.com/x-xyz/hbarmarket/service/cache/provider/local"
	"github.com/x-xyz/hbarmarket/service/chain/chaintest"
	"github.com/x-xyz/hbarmarket/stores/transaction/repository"
)

var (
	mockCtx  = ctx.Background()
	mockHash = domain.TxHash("0x1111111111111111111111111111111111111111111111111111111111111111")
	mockTo   = domain.Address("0x2222222222222222222222222222222222222222")
)

type usecaseSuite struct {
	suite.Suite

	pingAbi  abi.ABI
	provider *mAccount.Provider
	watcher  *mTxn.Watcher
	repo     *mTxn.Repository
	im       *impl
}

func TestUsecaseSuite(t *testing.T) {
	suite.Run(t, new(usecaseSuite))
}

func (s *usecaseSuite) SetupTest() {
	parsed, err := abi.JSON(strings.NewReader(chaintest.PingedABI))
	s.Require().NoError(err)
	s.pingAbi = parsed

	s.provider = mAccount.NewProvider(s.T())
	s.watcher = mTxn.NewWatcher(s.T())
	s.repo = mTxn.NewRepository(s.T())
	s.im = New(&TransactionUseCaseCfg{
		Provider: s.provider,
		Watcher:  s.watcher,
		Repo:     s.repo,
	}).(*impl)
	s.provider.On("ExplorerUrl").Return("https://hashscan.io/testnet").Maybe()
}

func (s *usecaseSuite) call() txn.Call {
	return txn.Call{Label: "ping", To: mockTo, ABI: &s.pingAbi, Method: "ping"}
}

func (s *usecaseSuite) receipt() *types.Receipt {
	return &types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(9)}
}

func (s *usecaseSuite) TestSubmitAndWait() {
	event := s.pingAbi.Events["Pinged"]
	s.provider.On("Submit", mockCtx, s.call()).Return(mockHash, nil).Once()
	s.repo.On("Store", mockCtx, mock.Anything).Return(nil).Twice()
	s.watcher.On("Watch", mockCtx, mockHash, &event).Return(&txn.Receipt{
		Receipt:   s.receipt(),
		EventName: "Pinged",
		Event:     map[string]interface{}{},
	}, nil).Once()

	o, err := s.im.SubmitAndWait(mockCtx, txn.Request{Call: s.call(), Event: &event})
	s.Require().NoError(err)
	s.Equal(txn.StatusConfirmed, o.Status)
	s.Equal("Pinged", o.EventName)
	s.Equal(uint64(9), o.BlockNumber)
	s.Equal("https://hashscan.io/testnet/transaction/"+string(mockHash), o.ExplorerUrl)
	s.NotNil(o.FinalizedAt)
}

func (s *usecaseSuite) TestSubmitAndWaitEventNotFound() {
	event := s.pingAbi.Events["Pinged"]
	s.provider.On("Submit", mockCtx, s.call()).Return(mockHash, nil).Once()
	s.repo.On("Store", mockCtx, mock.Anything).Return(nil)
	s.watcher.On("Watch", mockCtx, mockHash, &event).Return(&txn.Receipt{Receipt: s.receipt()}, domain.ErrEventNotFound).Once()

	o, err := s.im.SubmitAndWait(mockCtx, txn.Request{Call: s.call(), Event: &event})
	s.ErrorIs(err, domain.ErrEventNotFound)
	s.Equal(txn.StatusConfirmed, o.Status)
	s.NotEmpty(o.Error)
}

func (s *usecaseSuite) TestSubmitAndWaitReverted() {
	s.provider.On("Submit", mockCtx, s.call()).Return(mockHash, nil).Once()
	s.repo.On("Store", mockCtx, mock.Anything).Return(nil)
	failed := domain.NewUserError(domain.ErrTxFailed, "Transaction failed", nil)
	s.watcher.On("Watch", mockCtx, mockHash, (*abi.Event)(nil)).Return(&txn.Receipt{Receipt: s.receipt()}, failed).Once()

	o, err := s.im.SubmitAndWait(mockCtx, txn.Request{Call: s.call()})
	s.ErrorIs(err, domain.ErrTxFailed)
	s.Equal(txn.StatusFailed, o.Status)
	s.Equal("Transaction failed", o.Error)
}

func (s *usecaseSuite) TestSubmitAndWaitUnconfirmedStaysPending() {
	s.provider.On("Submit", mockCtx, s.call()).Return(mockHash, nil).Once()
	s.repo.On("Store", mockCtx, mock.Anything).Return(nil)
	unconfirmed := domain.NewUserError(domain.ErrReadFailed, "Transaction submitted but not confirmed yet", context.DeadlineExceeded)
	s.watcher.On("Watch", mockCtx, mockHash, (*abi.Event)(nil)).Return(nil, unconfirmed).Once()

	o, err := s.im.SubmitAndWait(mockCtx, txn.Request{Call: s.call()})
	s.ErrorIs(err, domain.ErrReadFailed)
	s.Equal(txn.StatusPending, o.Status)
	s.False(o.IsFinal())
	s.Nil(o.FinalizedAt)
	s.Equal("Transaction submitted but not confirmed yet", o.Error)
}

func (s *usecaseSuite) TestGetRewatchesUnconfirmed() {
	stale := &txn.Outcome{Hash: mockHash, Status: txn.StatusPending, Error: "Transaction submitted but not confirmed yet"}
	done := make(chan *txn.Outcome, 1)
	s.repo.On("Get", mockCtx, mockHash).Return(stale, nil).Once()
	s.repo.On("Store", mockCtx, mock.MatchedBy(func(o *txn.Outcome) bool { return o.Status == txn.StatusPending && o.Error == "" })).Return(nil).Once()
	s.repo.On("Store", mock.Anything, mock.MatchedBy(func(o *txn.Outcome) bool { return o.IsFinal() })).
		Run(func(args mock.Arguments) { done <- args.Get(1).(*txn.Outcome) }).
		Return(nil).Once()
	s.watcher.On("Watch", mock.Anything, mockHash, (*abi.Event)(nil)).Return(&txn.Receipt{Receipt: s.receipt()}, nil).Once()

	o, err := s.im.Get(mockCtx, mockHash)
	s.Require().NoError(err)
	s.Equal(txn.StatusPending, o.Status)

	select {
	case final := <-done:
		s.Equal(txn.StatusConfirmed, final.Status)
	case <-time.After(time.Second):
		s.Fail("outcome never finalized")
	}
	s.NoError(s.im.bg.Wait(mockCtx))
}

func (s *usecaseSuite) TestSubmitRejectedIsNotStored() {
	rejected := domain.NewUserError(domain.ErrUserRejected, "Transaction was rejected by user", nil)
	s.provider.On("Submit", mockCtx, s.call()).Return(domain.TxHash(""), rejected).Once()

	o, err := s.im.Submit(mockCtx, txn.Request{Call: s.call()})
	s.Nil(o)
	s.ErrorIs(err, domain.ErrUserRejected)
}

func (s *usecaseSuite) TestSubmitWatchesInBackground() {
	done := make(chan *txn.Outcome, 1)
	s.provider.On("Submit", mockCtx, s.call()).Return(mockHash, nil).Once()
	s.repo.On("Store", mockCtx, mock.MatchedBy(func(o *txn.Outcome) bool { return o.Status == txn.StatusPending })).Return(nil).Once()
	s.repo.On("Store", mock.Anything, mock.MatchedBy(func(o *txn.Outcome) bool { return o.IsFinal() })).
		Run(func(args mock.Arguments) { done <- args.Get(1).(*txn.Outcome) }).
		Return(nil).Once()
	s.watcher.On("Watch", mock.Anything, mockHash, (*abi.Event)(nil)).Return(&txn.Receipt{Receipt: s.receipt()}, nil).Once()

	o, err := s.im.Submit(mockCtx, txn.Request{Call: s.call()})
	s.Require().NoError(err)
	s.Equal(txn.StatusPending, o.Status)

	select {
	case final := <-done:
		s.Equal(txn.StatusConfirmed, final.Status)
		s.Equal(mockHash, final.Hash)
	case <-time.After(time.Second):
		s.Fail("outcome never finalized")
	}
	s.NoError(s.im.bg.Wait(mockCtx))
	// the returned outcome is a snapshot and is not mutated by the watcher
	s.Equal(txn.StatusPending, o.Status)
}

func (s *usecaseSuite) TestHook() {
	h := s.im.Hook(txn.HookSpec{Label: "ping", To: mockTo, ABI: &s.pingAbi, Method: "ping", Wait: true})
	s.Equal(txn.HookIdle, h.Status().State)

	value := big.NewInt(5)
	s.provider.On("Submit", mockCtx, mock.MatchedBy(func(c txn.Call) bool {
		return c.Method == "ping" && c.Value.Cmp(value) == 0
	})).Return(mockHash, nil).Once()
	s.repo.On("Store", mockCtx, mock.Anything).Return(nil)
	s.watcher.On("Watch", mockCtx, mockHash, (*abi.Event)(nil)).Return(&txn.Receipt{Receipt: s.receipt()}, nil).Once()

	_, err := h.Send(mockCtx, value)
	s.Require().NoError(err)
	s.Equal(txn.HookStatus{State: txn.HookSuccess, Hash: mockHash}, h.Status())

	h.Reset()
	s.Equal(txn.HookIdle, h.Status().State)
}

func (s *usecaseSuite) TestHookError() {
	h := s.im.Hook(txn.HookSpec{Label: "ping", To: mockTo, ABI: &s.pingAbi, Method: "ping"})
	insufficient := domain.NewUserError(domain.ErrInsufficientFunds, "Insufficient funds for transaction", nil)
	s.provider.On("Submit", mockCtx, mock.Anything).Return(domain.TxHash(""), insufficient).Once()

	_, err := h.Send(mockCtx, nil)
	s.ErrorIs(err, domain.ErrInsufficientFunds)
	s.Equal(txn.HookError, h.Status().State)
	s.Equal("Insufficient funds for transaction", h.Status().Error)
}

func (s *usecaseSuite) TestGet() {
	s.repo.On("Get", mockCtx, mockHash).Return(nil, domain.ErrNotFound).Once()
	_, err := s.im.Get(mockCtx, mockHash)
	s.ErrorIs(err, domain.ErrNotFound)
}

// committingReader mines pending transactions before every receipt lookup.
type committingReader struct {
	*chaintest.Backend
}

func (r committingReader) TransactionReceipt(c context.Context, h common.Hash) (*types.Receipt, error) {
	r.Commit()
	return r.Backend.TransactionReceipt(c, h)
}

func TestOnSimulatedChain(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}
	key, keyHex := chaintest.NewKey()
	backend := chaintest.NewBackend(key)
	defer backend.Close()

	provider := sAccount.MustNewProvider(&sAccount.Config{
		PrivateKey: keyHex,
		ChainId:    chaintest.SimulatedChainId,
		ProjectId:  "test",
		Backend:    backend,
	})
	uc := New(&TransactionUseCaseCfg{
		Provider: provider,
		Watcher: repository.NewWatcher(&repository.WatcherCfg{
			Reader:    committingReader{backend},
			PollStart: time.Millisecond,
			Timeout:   5 * time.Second,
		}),
		Repo: repository.NewOutcomeRepo(cache.New(cache.ServiceConfig{
			Ttl:   time.Minute,
			Pfx:   keys.PfxTxOutcome,
			Cache: local.New("txn", 1),
		})),
	})

	parsed, err := abi.JSON(strings.NewReader(chaintest.PingedABI))
	if err != nil {
		t.Fatal(err)
	}

	deployed, err := uc.Deploy(mockCtx, txn.Deploy{Label: "ping", ABI: &parsed, Bytecode: chaintest.PingCode})
	if err != nil {
		t.Fatal(err)
	}
	if deployed.Status != txn.StatusConfirmed || deployed.ContractAddress.IsEmpty() {
		t.Fatalf("unexpected deploy outcome %+v", deployed)
	}

	event := parsed.Events["Pinged"]
	h := uc.Hook(txn.HookSpec{Label: "ping", To: deployed.ContractAddress, ABI: &parsed, Method: "ping", Event: &event, Wait: true})
	o, err := h.Send(mockCtx, nil)
	if err != nil {
		t.Fatal(err)
	}
	if o.EventName != "Pinged" {
		t.Fatalf("expected Pinged, got %q", o.EventName)
	}

	stored, err := uc.Get(mockCtx, o.Hash)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Status != txn.StatusConfirmed {
		t.Fatalf("expected stored outcome confirmed, got %s", stored.Status)
	}

	reverting, err := uc.Deploy(mockCtx, txn.Deploy{Label: "revert", ABI: &parsed, Bytecode: chaintest.RevertCode})
	if err != nil {
		t.Fatal(err)
	}
	fail := uc.Hook(txn.HookSpec{Label: "ping", To: reverting.ContractAddress, ABI: &parsed, Method: "ping", GasLimit: 100000, Wait: true})
	o, err = fail.Send(mockCtx, nil)
	if !errors.Is(err, domain.ErrTxFailed) {
		t.Fatalf("expected transaction failure, got %v", err)
	}
	if o.Status != txn.StatusFailed {
		t.Fatalf("expected failed outcome, got %s", o.Status)
	}
}
