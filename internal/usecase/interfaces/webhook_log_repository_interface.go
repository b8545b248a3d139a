package interfaces

import (
	"context"

	"github.com/Telli/betts-ctis-sub020/internal/domain/entities"
)

// IPaymentWebhookLogRepository abstracts DynamoDB persistence for the
// append-only webhook audit trail. There are deliberately no update or delete
// operations.
type IPaymentWebhookLogRepository interface {
	Append(ctx context.Context, l entities.PaymentWebhookLog) error
	ExistsByDedupKey(ctx context.Context, provider entities.PaymentProvider, dedupKey string) (bool, error)
}
