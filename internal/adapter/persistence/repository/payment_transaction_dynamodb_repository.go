package repository

import (
	"context"
	"sort"
	"time"

	"github.com/Telli/betts-ctis-sub020/internal/domain/entities"
	"github.com/Telli/betts-ctis-sub020/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTransactionsTableName = "payment_transactions"
	transactionsReferenceIndex   = "provider-reference-index"
)

type paymentTransactionItem struct {
	PaymentID             string  `dynamodbav:"payment_id"`
	TransactionReference  string  `dynamodbav:"transaction_reference"`
	Provider              string  `dynamodbav:"provider"`
	ProviderTransactionID string  `dynamodbav:"provider_transaction_id,omitempty"`
	Amount                float64 `dynamodbav:"amount"`
	Currency              string  `dynamodbav:"currency"`
	Status                string  `dynamodbav:"status"`
	ProviderResponse      string  `dynamodbav:"provider_response,omitempty"`
	CreatedDate           string  `dynamodbav:"created_date"`
	CompletedDate         string  `dynamodbav:"completed_date,omitempty"`
}

// PaymentTransactionDynamoRepository persists the payment ledger in DynamoDB.
//
// Table requirements:
//   - PK: payment_id (string)
//   - GSI: provider-reference-index (PK: provider, SK: transaction_reference)

type PaymentTransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentTransactionRepository = (*PaymentTransactionDynamoRepository)(nil)

func NewPaymentTransactionDynamoRepository(ddb *dynamodb.Client) *PaymentTransactionDynamoRepository {
	return &PaymentTransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *PaymentTransactionDynamoRepository) Create(ctx context.Context, t entities.PaymentTransaction) (entities.PaymentTransaction, error) {
	it := toPaymentTransactionItem(t)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentTransaction{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#pid)"),
		ExpressionAttributeNames: map[string]string{
			"#pid": "payment_id",
		},
	})
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	return t, nil
}

func (r *PaymentTransactionDynamoRepository) GetByID(ctx context.Context, paymentID string) (entities.PaymentTransaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"payment_id": &types.AttributeValueMemberS{Value: paymentID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentTransaction{}, nil
	}

	var it paymentTransactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentTransaction{}, err
	}
	return fromPaymentTransactionItem(it), nil
}

func (r *PaymentTransactionDynamoRepository) GetByProviderAndReference(ctx context.Context, provider entities.PaymentProvider, reference string) (entities.PaymentTransaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transactionsReferenceIndex),
		KeyConditionExpression: aws.String("provider = :p AND transaction_reference = :ref"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":p":   &types.AttributeValueMemberS{Value: string(provider)},
			":ref": &types.AttributeValueMemberS{Value: reference},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	if len(out.Items) == 0 {
		return entities.PaymentTransaction{}, nil
	}

	var it paymentTransactionItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.PaymentTransaction{}, err
	}
	return fromPaymentTransactionItem(it), nil
}

// Save overwrites the full row. Callers compute their mutation completely
// before committing, so a plain put is enough.
func (r *PaymentTransactionDynamoRepository) Save(ctx context.Context, t entities.PaymentTransaction) error {
	av, err := attributevalue.MarshalMap(toPaymentTransactionItem(t))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

// ListNonTerminalByProvider returns at most limit pending/processing rows for
// the provider, oldest created first.
func (r *PaymentTransactionDynamoRepository) ListNonTerminalByProvider(ctx context.Context, provider entities.PaymentProvider, limit int) ([]entities.PaymentTransaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transactionsReferenceIndex),
		KeyConditionExpression: aws.String("provider = :p"),
		FilterExpression:       aws.String("#st IN (:pending, :processing)"),
		ExpressionAttributeNames: map[string]string{
			"#st": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":p":          &types.AttributeValueMemberS{Value: string(provider)},
			":pending":    &types.AttributeValueMemberS{Value: string(entities.StatusPending)},
			":processing": &types.AttributeValueMemberS{Value: string(entities.StatusProcessing)},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PaymentTransaction, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentTransactionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentTransactionItem(it))
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedDate.Before(items[j].CreatedDate)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func toPaymentTransactionItem(t entities.PaymentTransaction) paymentTransactionItem {
	it := paymentTransactionItem{
		PaymentID:             t.PaymentID,
		TransactionReference:  t.TransactionReference,
		Provider:              string(t.Provider),
		ProviderTransactionID: t.ProviderTransactionID,
		Amount:                t.Amount,
		Currency:              t.Currency,
		Status:                string(t.Status),
		ProviderResponse:      t.ProviderResponse,
		CreatedDate:           t.CreatedDate.UTC().Format(time.RFC3339Nano),
	}
	if t.CompletedDate != nil {
		it.CompletedDate = t.CompletedDate.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromPaymentTransactionItem(it paymentTransactionItem) entities.PaymentTransaction {
	created, _ := time.Parse(time.RFC3339Nano, it.CreatedDate)
	t := entities.PaymentTransaction{
		PaymentID:             it.PaymentID,
		TransactionReference:  it.TransactionReference,
		Provider:              entities.PaymentProvider(it.Provider),
		ProviderTransactionID: it.ProviderTransactionID,
		Amount:                it.Amount,
		Currency:              it.Currency,
		Status:                entities.TransactionStatus(it.Status),
		ProviderResponse:      it.ProviderResponse,
		CreatedDate:           created,
	}
	if it.CompletedDate != "" {
		if completed, err := time.Parse(time.RFC3339Nano, it.CompletedDate); err == nil {
			t.CompletedDate = &completed
		}
	}
	return t
}
