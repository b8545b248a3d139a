package usecase

import (
	"context"
	"log"
	"time"

	"github.com/Telli/betts-ctis-sub020/internal/domain/entities"
	"github.com/Telli/betts-ctis-sub020/internal/metrics"
	"github.com/Telli/betts-ctis-sub020/internal/usecase/interfaces"
)

const (
	DefaultReconcileBatchSize   = 25
	DefaultReconcileMaxAttempts = 3
	DefaultStatusCallTimeout    = 15 * time.Second
)

// CycleResult summarizes one reconciliation pass for one provider.
type CycleResult struct {
	Scanned   int
	Succeeded int
	Failed    int
}

// IReconciliationUseCase runs one reconciliation cycle: pull authoritative
// status from the provider for ledger rows stuck in non-terminal states.
type IReconciliationUseCase interface {
	RunCycle(ctx context.Context, provider entities.PaymentProvider) (CycleResult, error)
}

type ReconciliationUseCase struct {
	txRepo   interfaces.IPaymentTransactionRepository
	registry interfaces.IGatewayRegistry

	batchSize   int
	maxAttempts int
	callTimeout time.Duration

	// test seam; production uses interruptible sleep on the context
	sleep func(ctx context.Context, d time.Duration)
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(txRepo interfaces.IPaymentTransactionRepository, registry interfaces.IGatewayRegistry, batchSize, maxAttempts int, callTimeout time.Duration) *ReconciliationUseCase {
	if batchSize <= 0 {
		batchSize = DefaultReconcileBatchSize
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultReconcileMaxAttempts
	}
	if callTimeout <= 0 {
		callTimeout = DefaultStatusCallTimeout
	}
	return &ReconciliationUseCase{
		txRepo:      txRepo,
		registry:    registry,
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
		callTimeout: callTimeout,
		sleep:       sleepCtx,
	}
}

// RunCycle scans at most batchSize pending/processing rows for the provider,
// oldest first, and overwrites each row's status with the provider's answer.
//
// Status queries are retried sequentially up to maxAttempts with increasing
// backoff; a row whose queries all fail keeps its recorded status untouched
// and is left for the next cycle. Mutations are persisted in one pass after
// the scan.
func (u *ReconciliationUseCase) RunCycle(ctx context.Context, provider entities.PaymentProvider) (CycleResult, error) {
	var result CycleResult

	gateway, err := u.registry.Get(provider)
	if err != nil {
		return result, err
	}

	batch, err := u.txRepo.ListNonTerminalByProvider(ctx, provider, u.batchSize)
	if err != nil {
		log.Printf("[reconcile][usecase] batch scan failed provider=%s err=%v", provider, err)
		return result, err
	}
	result.Scanned = len(batch)
	if len(batch) == 0 {
		return result, nil
	}
	log.Printf("[reconcile][usecase] cycle start provider=%s batch=%d", provider, len(batch))

	updated := make([]entities.PaymentTransaction, 0, len(batch))
	for i := range batch {
		tx := batch[i]

		resp, err := u.queryWithRetry(ctx, gateway, tx.GatewayTransactionID())
		if err != nil {
			// A transient polling failure never downgrades the recorded state.
			result.Failed++
			metrics.PollingFailure.WithLabelValues(string(provider)).Inc()
			log.Printf("[reconcile][usecase] attempts exhausted provider=%s payment_id=%s reference=%s err=%v", provider, tx.PaymentID, tx.TransactionReference, err)
			continue
		}

		tx.ApplyStatus(resp.Status, resp.StatusMessage, time.Now())
		updated = append(updated, tx)
		result.Succeeded++
		metrics.PollingSuccess.WithLabelValues(string(provider)).Inc()
	}

	for _, tx := range updated {
		if err := u.txRepo.Save(ctx, tx); err != nil {
			log.Printf("[reconcile][usecase] ledger save failed provider=%s payment_id=%s err=%v", provider, tx.PaymentID, err)
			return result, err
		}
	}

	log.Printf("[reconcile][usecase] cycle done provider=%s scanned=%d succeeded=%d failed=%d", provider, result.Scanned, result.Succeeded, result.Failed)
	return result, nil
}

// queryWithRetry issues sequential status queries for one row, never two
// in-flight at once, backing off 2*attempt seconds between tries.
func (u *ReconciliationUseCase) queryWithRetry(ctx context.Context, gateway interfaces.IPaymentGateway, providerTxID string) (interfaces.GatewayResponse, error) {
	var lastErr error
	for attempt := 1; attempt <= u.maxAttempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, u.callTimeout)
		resp, err := gateway.GetStatus(callCtx, providerTxID)
		cancel()
		if err == nil {
			return resp, nil
		}
		lastErr = err
		log.Printf("[reconcile][usecase] status query failed provider_tx_id=%s attempt=%d/%d err=%v", providerTxID, attempt, u.maxAttempts, err)
		if attempt < u.maxAttempts {
			u.sleep(ctx, time.Duration(2*attempt)*time.Second)
		}
		if ctx.Err() != nil {
			return interfaces.GatewayResponse{}, ctx.Err()
		}
	}
	return interfaces.GatewayResponse{}, lastErr
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
