package repository

import (
	"context"
	"time"

	"wrenchgo_payments/internal/domain/entities"
	"wrenchgo_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultContractsTableName = "job_contracts"

type contractItem struct {
	ID         string `dynamodbav:"id"`
	JobID      string `dynamodbav:"job_id"`
	CustomerID string `dynamodbav:"customer_id"`
	MechanicID string `dynamodbav:"mechanic_id"`
	Status     string `dynamodbav:"status"`

	TotalCustomerCents    int64  `dynamodbav:"total_customer_cents"`
	PlatformFeeCents      int64  `dynamodbav:"platform_fee_cents"`
	StripePaymentIntentID string `dynamodbav:"stripe_payment_intent_id,omitempty"`

	PaymentAuthorizedAt string `dynamodbav:"payment_authorized_at,omitempty"`
	PaymentCapturedAt   string `dynamodbav:"payment_captured_at,omitempty"`
	CreatedAt           string `dynamodbav:"created_at"`
	UpdatedAt           string `dynamodbav:"updated_at"`
}

// ContractDynamoRepository persists service contracts in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ContractDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContractRepository = (*ContractDynamoRepository)(nil)

func NewContractDynamoRepository(ddb *dynamodb.Client) *ContractDynamoRepository {
	return &ContractDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOB_CONTRACTS_TABLE", defaultContractsTableName),
	}
}

func (r *ContractDynamoRepository) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Contract{}, err
	}
	if len(out.Item) == 0 {
		return entities.Contract{}, nil
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

// Authorize flips pending_payment to active. The status condition makes
// concurrent authorizations first-writer-wins; losers get ErrConflict.
func (r *ContractDynamoRepository) Authorize(ctx context.Context, id, stripePaymentIntentID string, at time.Time) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("#status = :pending"),
		UpdateExpression: aws.String(
			"SET #status = :active, stripe_payment_intent_id = :pi, payment_authorized_at = :at, updated_at = :at"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.ContractStatusPendingPayment)},
			":active":  &types.AttributeValueMemberS{Value: string(entities.ContractStatusActive)},
			":pi":      &types.AttributeValueMemberS{Value: stripePaymentIntentID},
			":at":      &types.AttributeValueMemberS{Value: formatTime(at)},
		},
	})
	return asConflict(err)
}

func (r *ContractDynamoRepository) MarkCaptured(ctx context.Context, id string, at time.Time) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(id)"),
		UpdateExpression:    aws.String("SET payment_captured_at = :at, updated_at = :at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":at": &types.AttributeValueMemberS{Value: formatTime(at)},
		},
	})
	return asConflict(err)
}

func fromContractItem(it contractItem) entities.Contract {
	return entities.Contract{
		ID:         it.ID,
		JobID:      it.JobID,
		CustomerID: it.CustomerID,
		MechanicID: it.MechanicID,
		Status:     entities.ContractStatus(it.Status),

		TotalCustomerCents:    entities.Cents(it.TotalCustomerCents),
		PlatformFeeCents:      entities.Cents(it.PlatformFeeCents),
		StripePaymentIntentID: it.StripePaymentIntentID,

		PaymentAuthorizedAt: parseTimePtr(it.PaymentAuthorizedAt),
		PaymentCapturedAt:   parseTimePtr(it.PaymentCapturedAt),
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
}
