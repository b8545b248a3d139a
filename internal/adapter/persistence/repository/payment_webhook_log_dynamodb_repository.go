package repository

import (
	"context"
	"time"

	"github.com/Telli/betts-ctis-sub020/internal/domain/entities"
	"github.com/Telli/betts-ctis-sub020/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultWebhookLogsTableName = "payment_webhook_logs"
	webhookLogsDedupIndex       = "dedup-index"
)

type paymentWebhookLogItem struct {
	LogID      string            `dynamodbav:"log_id"`
	Provider   string            `dynamodbav:"provider"`
	DedupKey   string            `dynamodbav:"dedup_key"`
	Payload    string            `dynamodbav:"payload"`
	Headers    map[string]string `dynamodbav:"headers,omitempty"`
	ReceivedAt string            `dynamodbav:"received_at"`
	Outcome    string            `dynamodbav:"outcome"`
	Note       string            `dynamodbav:"note,omitempty"`
}

// PaymentWebhookLogDynamoRepository persists the webhook audit trail.
//
// Table requirements:
//   - PK: log_id (string)
//   - GSI: dedup-index (PK: provider, SK: dedup_key)
//
// Rows are append-only; this repository exposes no update or delete.

type PaymentWebhookLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentWebhookLogRepository = (*PaymentWebhookLogDynamoRepository)(nil)

func NewPaymentWebhookLogDynamoRepository(ddb *dynamodb.Client) *PaymentWebhookLogDynamoRepository {
	return &PaymentWebhookLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_WEBHOOK_LOGS_TABLE", defaultWebhookLogsTableName),
	}
}

func (r *PaymentWebhookLogDynamoRepository) Append(ctx context.Context, l entities.PaymentWebhookLog) error {
	av, err := attributevalue.MarshalMap(toPaymentWebhookLogItem(l))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#lid)"),
		ExpressionAttributeNames: map[string]string{
			"#lid": "log_id",
		},
	})
	return err
}

// ExistsByDedupKey reports whether the payload was already processed. failed
// rows are excluded: a delivery whose ledger update did not commit must not
// block the retry.
func (r *PaymentWebhookLogDynamoRepository) ExistsByDedupKey(ctx context.Context, provider entities.PaymentProvider, dedupKey string) (bool, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(webhookLogsDedupIndex),
		KeyConditionExpression: aws.String("provider = :p AND dedup_key = :dk"),
		FilterExpression:       aws.String("#oc <> :failed"),
		ExpressionAttributeNames: map[string]string{
			"#oc": "outcome",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":p":      &types.AttributeValueMemberS{Value: string(provider)},
			":dk":     &types.AttributeValueMemberS{Value: dedupKey},
			":failed": &types.AttributeValueMemberS{Value: string(entities.WebhookOutcomeFailed)},
		},
		Select: types.SelectCount,
	})
	if err != nil {
		return false, err
	}
	return out.Count > 0, nil
}

func toPaymentWebhookLogItem(l entities.PaymentWebhookLog) paymentWebhookLogItem {
	return paymentWebhookLogItem{
		LogID:      l.LogID,
		Provider:   string(l.Provider),
		DedupKey:   l.DedupKey,
		Payload:    l.Payload,
		Headers:    l.Headers,
		ReceivedAt: l.ReceivedAt.UTC().Format(time.RFC3339Nano),
		Outcome:    string(l.Outcome),
		Note:       l.Note,
	}
}
