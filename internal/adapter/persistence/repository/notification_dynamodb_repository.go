package repository

import (
	"context"

	"wrenchgo_payments/internal/domain/entities"
	"wrenchgo_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultNotificationsTableName = "notifications"

type notificationItem struct {
	ID        string            `dynamodbav:"id"`
	UserID    string            `dynamodbav:"user_id"`
	Type      string            `dynamodbav:"type"`
	Title     string            `dynamodbav:"title"`
	Body      string            `dynamodbav:"body"`
	Data      map[string]string `dynamodbav:"data,omitempty"`
	CreatedAt string            `dynamodbav:"created_at"`
}

// NotificationDynamoRepository writes notification rows for the app layer to
// deliver.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)

type NotificationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INotifier = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb *dynamodb.Client) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NOTIFICATIONS_TABLE", defaultNotificationsTableName),
	}
}

func (r *NotificationDynamoRepository) Notify(ctx context.Context, n entities.Notification) error {
	av, err := attributevalue.MarshalMap(notificationItem{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      n.Type,
		Title:     n.Title,
		Body:      n.Body,
		Data:      n.Data,
		CreatedAt: formatTime(n.CreatedAt),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
