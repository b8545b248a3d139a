package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Telli/betts-ctis-sub020/internal/domain/entities"
	"github.com/Telli/betts-ctis-sub020/internal/metrics"
	"github.com/Telli/betts-ctis-sub020/internal/usecase/interfaces"
)

var (
	ErrUnknownWebhookProvider = errors.New("unknown webhook provider")
	ErrEmptyWebhookPayload    = errors.New("empty webhook payload")
)

// SignatureHeader is where providers place the HMAC of the raw body.
const SignatureHeader = "X-Signature"

// IWebhookProcessorUseCase ingests raw provider callbacks.
//
// The boolean result is the accept signal: true tells the HTTP layer to answer
// 2xx so the provider stops retrying. Duplicates, unmatched references,
// signature failures and malformed payloads are all accepted (and logged for
// triage); false is reserved for processor-internal hard failures where a
// provider retry can actually help.

type IWebhookProcessorUseCase interface {
	Process(ctx context.Context, providerName string, rawBody string, headers map[string]string) (bool, error)
}

type WebhookProcessorUseCase struct {
	txRepo   interfaces.IPaymentTransactionRepository
	logRepo  interfaces.IPaymentWebhookLogRepository
	registry interfaces.IGatewayRegistry
}

var _ IWebhookProcessorUseCase = (*WebhookProcessorUseCase)(nil)

func NewWebhookProcessorUseCase(txRepo interfaces.IPaymentTransactionRepository, logRepo interfaces.IPaymentWebhookLogRepository, registry interfaces.IGatewayRegistry) *WebhookProcessorUseCase {
	return &WebhookProcessorUseCase{txRepo: txRepo, logRepo: logRepo, registry: registry}
}

// Process applies one inbound webhook delivery to the ledger, idempotently.
//
// Every call appends exactly one audit row, the duplicate path included; only
// the first delivery of a payload may mutate the ledger. A delivery whose
// ledger update fails is recorded with the failed outcome, which the dedup
// lookup ignores, so the provider's solicited retry re-applies it.
func (u *WebhookProcessorUseCase) Process(ctx context.Context, providerName string, rawBody string, headers map[string]string) (bool, error) {
	log.Printf("[webhook][usecase] process start provider=%s payload_len=%d", providerName, len(rawBody))

	provider, ok := entities.ParseProvider(providerName)
	if !ok {
		log.Printf("[webhook][usecase] unknown provider provider=%s", providerName)
		return false, ErrUnknownWebhookProvider
	}
	body := strings.TrimSpace(rawBody)
	if body == "" {
		log.Printf("[webhook][usecase] empty payload provider=%s", provider)
		return false, ErrEmptyWebhookPayload
	}

	gateway, err := u.registry.Get(provider)
	if err != nil {
		return false, err
	}

	dedupKey := dedupKeyFor(provider, body)
	seen, err := u.logRepo.ExistsByDedupKey(ctx, provider, dedupKey)
	if err != nil {
		log.Printf("[webhook][usecase] dedup lookup failed provider=%s err=%v", provider, err)
		return false, err
	}

	entry := entities.PaymentWebhookLog{
		LogID:      uuid.NewString(),
		Provider:   provider,
		DedupKey:   dedupKey,
		Payload:    body,
		Headers:    headers,
		ReceivedAt: time.Now().UTC(),
		Outcome:    entities.WebhookOutcomeApplied,
	}

	if seen {
		entry.Outcome = entities.WebhookOutcomeDuplicateIgnored
		if err := u.logRepo.Append(ctx, entry); err != nil {
			log.Printf("[webhook][usecase] log append failed provider=%s err=%v", provider, err)
			return false, err
		}
		metrics.WebhooksDuplicate.WithLabelValues(string(provider)).Inc()
		log.Printf("[webhook][usecase] duplicate ignored provider=%s dedup_key=%s", provider, dedupKey)
		return true, nil
	}

	// Payloads that cannot be applied are logged immediately so they leave a
	// trace for operator triage; the applied row is written only after the
	// ledger mutation commits.
	valid, err := gateway.ValidateWebhook(ctx, []byte(body), headers[SignatureHeader])
	if err != nil || !valid {
		entry.Note = "signature validation failed"
		if err != nil {
			entry.Note = "signature validation failed: " + err.Error()
		}
		if appendErr := u.logRepo.Append(ctx, entry); appendErr != nil {
			return false, appendErr
		}
		metrics.WebhooksProcessed.WithLabelValues(string(provider)).Inc()
		log.Printf("[webhook][usecase] invalid signature provider=%s note=%q", provider, entry.Note)
		return true, nil
	}

	resp, err := gateway.ProcessWebhook(ctx, []byte(body))
	if err != nil {
		entry.Note = "payload not applied: " + err.Error()
		if appendErr := u.logRepo.Append(ctx, entry); appendErr != nil {
			return false, appendErr
		}
		metrics.WebhooksProcessed.WithLabelValues(string(provider)).Inc()
		log.Printf("[webhook][usecase] payload not applied provider=%s err=%v", provider, err)
		return true, nil
	}

	tx, err := u.txRepo.GetByProviderAndReference(ctx, provider, resp.ProviderReference)
	if err != nil {
		log.Printf("[webhook][usecase] ledger lookup failed provider=%s reference=%s err=%v", provider, resp.ProviderReference, err)
		return false, err
	}
	if tx.PaymentID == "" {
		// Webhooks may legitimately arrive before the ledger row exists; log
		// and no-op rather than failing the delivery.
		entry.Note = "no matching transaction for reference " + resp.ProviderReference
		if appendErr := u.logRepo.Append(ctx, entry); appendErr != nil {
			return false, appendErr
		}
		metrics.WebhooksProcessed.WithLabelValues(string(provider)).Inc()
		log.Printf("[webhook][usecase] no matching transaction provider=%s reference=%s", provider, resp.ProviderReference)
		return true, nil
	}

	if resp.TransactionID != "" && tx.ProviderTransactionID == "" {
		tx.ProviderTransactionID = resp.TransactionID
	}
	tx.ApplyStatus(resp.Status, resp.StatusMessage, time.Now())
	if err := u.txRepo.Save(ctx, tx); err != nil {
		log.Printf("[webhook][usecase] ledger save failed provider=%s payment_id=%s err=%v", provider, tx.PaymentID, err)
		entry.Outcome = entities.WebhookOutcomeFailed
		entry.Note = "ledger update failed: " + err.Error()
		if appendErr := u.logRepo.Append(ctx, entry); appendErr != nil {
			return false, appendErr
		}
		return false, err
	}

	if err := u.logRepo.Append(ctx, entry); err != nil {
		log.Printf("[webhook][usecase] log append failed provider=%s err=%v", provider, err)
		return false, err
	}

	metrics.WebhooksProcessed.WithLabelValues(string(provider)).Inc()
	log.Printf("[webhook][usecase] applied provider=%s payment_id=%s reference=%s status=%s", provider, tx.PaymentID, tx.TransactionReference, tx.Status)
	return true, nil
}

func dedupKeyFor(provider entities.PaymentProvider, normalizedBody string) string {
	sum := sha256.Sum256([]byte(string(provider) + "\n" + normalizedBody))
	return hex.EncodeToString(sum[:])
}
