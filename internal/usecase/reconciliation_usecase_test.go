package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Telli/betts-ctis-sub020/internal/domain/entities"
	"github.com/Telli/betts-ctis-sub020/internal/usecase/interfaces"
	mock_interfaces "github.com/Telli/betts-ctis-sub020/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newReconciliationForTest(txRepo interfaces.IPaymentTransactionRepository, registry interfaces.IGatewayRegistry) (*ReconciliationUseCase, *[]time.Duration) {
	uc := NewReconciliationUseCase(txRepo, registry, 0, 0, 0)
	backoffs := &[]time.Duration{}
	uc.sleep = func(_ context.Context, d time.Duration) {
		*backoffs = append(*backoffs, d)
	}
	return uc, backoffs
}

func TestReconciliation_PendingToCompleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txRepo := newFakeTxRepo(pendingTx("pay-1", "REF-1"))
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	registry := mock_interfaces.NewMockIGatewayRegistry(ctrl)

	registry.EXPECT().Get(entities.ProviderSLSwitch).Return(gateway, nil)
	gateway.EXPECT().GetStatus(gomock.Any(), "REF-1").Return(interfaces.GatewayResponse{
		Success:           true,
		ProviderReference: "REF-1",
		Status:            entities.StatusCompleted,
		StatusMessage:     "ACSC",
	}, nil)

	uc, _ := newReconciliationForTest(txRepo, registry)
	result, err := uc.RunCycle(context.Background(), entities.ProviderSLSwitch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Scanned != 1 || result.Succeeded != 1 || result.Failed != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}

	got := txRepo.byID["pay-1"]
	if got.Status != entities.StatusCompleted {
		t.Fatalf("expected completed, got %s", got.Status)
	}
	if got.CompletedDate == nil {
		t.Fatalf("expected CompletedDate to be stamped")
	}
}

func TestReconciliation_QueriesWithProviderTransactionID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tx := pendingTx("pay-1", "REF-1")
	tx.Provider = entities.ProviderMercadoPago
	tx.ProviderTransactionID = "12345"
	txRepo := newFakeTxRepo(tx)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	registry := mock_interfaces.NewMockIGatewayRegistry(ctrl)

	registry.EXPECT().Get(entities.ProviderMercadoPago).Return(gateway, nil)
	// the gateway gets its own id, not our ledger reference
	gateway.EXPECT().GetStatus(gomock.Any(), "12345").Return(interfaces.GatewayResponse{
		Success:       true,
		TransactionID: "12345",
		Status:        entities.StatusCompleted,
		StatusMessage: "approved",
	}, nil)

	uc, _ := newReconciliationForTest(txRepo, registry)
	result, err := uc.RunCycle(context.Background(), entities.ProviderMercadoPago)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Succeeded != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if txRepo.byID["pay-1"].Status != entities.StatusCompleted {
		t.Fatalf("expected completed, got %s", txRepo.byID["pay-1"].Status)
	}
}

func TestReconciliation_BoundedRetryLeavesStatusUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txRepo := newFakeTxRepo(pendingTx("pay-1", "REF-1"))
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	registry := mock_interfaces.NewMockIGatewayRegistry(ctrl)

	registry.EXPECT().Get(entities.ProviderSLSwitch).Return(gateway, nil)
	gateway.EXPECT().GetStatus(gomock.Any(), "REF-1").
		Return(interfaces.GatewayResponse{}, errors.New("switch timeout")).
		Times(DefaultReconcileMaxAttempts)

	uc, backoffs := newReconciliationForTest(txRepo, registry)
	result, err := uc.RunCycle(context.Background(), entities.ProviderSLSwitch)
	if err != nil {
		t.Fatalf("an exhausted row must not fail the cycle: %v", err)
	}
	if result.Failed != 1 || result.Succeeded != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if txRepo.saveCount != 0 {
		t.Fatalf("failed polling must never touch the ledger, got %d saves", txRepo.saveCount)
	}
	if txRepo.byID["pay-1"].Status != entities.StatusPending {
		t.Fatalf("status must be unchanged, got %s", txRepo.byID["pay-1"].Status)
	}

	want := []time.Duration{2 * time.Second, 4 * time.Second}
	if len(*backoffs) != len(want) {
		t.Fatalf("expected %d backoffs, got %v", len(want), *backoffs)
	}
	for i, d := range want {
		if (*backoffs)[i] != d {
			t.Fatalf("backoff %d: expected %v, got %v", i, d, (*backoffs)[i])
		}
	}
}

func TestReconciliation_RetrySucceedsOnSecondAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txRepo := newFakeTxRepo(pendingTx("pay-1", "REF-1"))
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	registry := mock_interfaces.NewMockIGatewayRegistry(ctrl)

	registry.EXPECT().Get(entities.ProviderSLSwitch).Return(gateway, nil)
	gomock.InOrder(
		gateway.EXPECT().GetStatus(gomock.Any(), "REF-1").Return(interfaces.GatewayResponse{}, errors.New("switch timeout")),
		gateway.EXPECT().GetStatus(gomock.Any(), "REF-1").Return(interfaces.GatewayResponse{
			Success:           true,
			ProviderReference: "REF-1",
			Status:            entities.StatusFailed,
			StatusMessage:     "RJCT",
		}, nil),
	)

	uc, backoffs := newReconciliationForTest(txRepo, registry)
	result, err := uc.RunCycle(context.Background(), entities.ProviderSLSwitch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Succeeded != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(*backoffs) != 1 || (*backoffs)[0] != 2*time.Second {
		t.Fatalf("expected a single 2s backoff, got %v", *backoffs)
	}
	if got := txRepo.byID["pay-1"]; got.Status != entities.StatusFailed || got.CompletedDate != nil {
		t.Fatalf("expected failed with no CompletedDate, got %+v", got)
	}
}

func TestReconciliation_BatchSizePassedToRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	registry := mock_interfaces.NewMockIGatewayRegistry(ctrl)
	txRepo := mock_interfaces.NewMockIPaymentTransactionRepository(ctrl)

	registry.EXPECT().Get(entities.ProviderSLSwitch).Return(gateway, nil)
	txRepo.EXPECT().ListNonTerminalByProvider(gomock.Any(), entities.ProviderSLSwitch, DefaultReconcileBatchSize).Return(nil, nil)

	uc := NewReconciliationUseCase(txRepo, registry, 0, 0, 0)
	result, err := uc.RunCycle(context.Background(), entities.ProviderSLSwitch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Scanned != 0 {
		t.Fatalf("expected an empty cycle, got %+v", result)
	}
}

func TestReconciliation_ScanFailureReturnsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	registry := mock_interfaces.NewMockIGatewayRegistry(ctrl)

	registry.EXPECT().Get(entities.ProviderSLSwitch).Return(gateway, nil)

	txRepo := newFakeTxRepo()
	txRepo.listErr = errors.New("dynamodb unavailable")

	uc, _ := newReconciliationForTest(txRepo, registry)
	if _, err := uc.RunCycle(context.Background(), entities.ProviderSLSwitch); err == nil {
		t.Fatalf("expected scan error to propagate")
	}
}

func TestReconciliation_CancelledContextStopsRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txRepo := newFakeTxRepo(pendingTx("pay-1", "REF-1"))
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	registry := mock_interfaces.NewMockIGatewayRegistry(ctrl)

	ctx, cancel := context.WithCancel(context.Background())

	registry.EXPECT().Get(entities.ProviderSLSwitch).Return(gateway, nil)
	// only the first attempt runs; cancellation during backoff ends the row
	gateway.EXPECT().GetStatus(gomock.Any(), "REF-1").
		DoAndReturn(func(context.Context, string) (interfaces.GatewayResponse, error) {
			cancel()
			return interfaces.GatewayResponse{}, errors.New("switch timeout")
		}).Times(1)

	uc, _ := newReconciliationForTest(txRepo, registry)
	result, err := uc.RunCycle(ctx, entities.ProviderSLSwitch)
	if err != nil {
		t.Fatalf("cancellation must not fail the cycle: %v", err)
	}
	if result.Failed != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if txRepo.saveCount != 0 {
		t.Fatalf("expected no ledger mutation, got %d saves", txRepo.saveCount)
	}
}
