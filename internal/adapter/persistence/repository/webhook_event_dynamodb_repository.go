package repository

import (
	"context"

	"wrenchgo_payments/internal/domain/entities"
	"wrenchgo_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultWebhookEventsTableName = "webhook_events"

type webhookEventItem struct {
	StripeEventID string `dynamodbav:"stripe_event_id"`
	EventType     string `dynamodbav:"event_type"`
	Processed     bool   `dynamodbav:"processed"`
	ProcessedAt   string `dynamodbav:"processed_at"`
}

// WebhookEventDynamoRepository is the processed-event dedup store.
//
// Table requirements:
//   - PK: stripe_event_id (string)

type WebhookEventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWebhookEventRepository = (*WebhookEventDynamoRepository)(nil)

func NewWebhookEventDynamoRepository(ddb *dynamodb.Client) *WebhookEventDynamoRepository {
	return &WebhookEventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WEBHOOK_EVENTS_TABLE", defaultWebhookEventsTableName),
	}
}

func (r *WebhookEventDynamoRepository) Exists(ctx context.Context, eventID string) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"stripe_event_id": &types.AttributeValueMemberS{Value: eventID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	return len(out.Item) > 0, nil
}

func (r *WebhookEventDynamoRepository) RecordProcessed(ctx context.Context, ev entities.WebhookEvent) error {
	av, err := attributevalue.MarshalMap(webhookEventItem{
		StripeEventID: ev.StripeEventID,
		EventType:     ev.EventType,
		Processed:     ev.Processed,
		ProcessedAt:   formatTime(ev.ProcessedAt),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(stripe_event_id)"),
	})
	return asConflict(err)
}
