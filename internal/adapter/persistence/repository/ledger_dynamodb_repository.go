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

const (
	defaultLedgerTableName    = "mechanic_ledger"
	defaultTransfersTableName = "transfers"
	ledgerStatusAvailableIndex = "status-available_at-index"
	ledgerAccountIndex         = "stripe_account-index"
	transfersMechanicIndex     = "mechanic_id-index"

	// DynamoDB caps a transaction at 100 items.
	transactBatchSize = 100
)

type ledgerEntryItem struct {
	PaymentID       string `dynamodbav:"payment_id"`
	MechanicID      string `dynamodbav:"mechanic_id"`
	JobID           string `dynamodbav:"job_id"`
	StripeAccountID string `dynamodbav:"stripe_account_id"`
	AmountCents     int64  `dynamodbav:"amount_cents"`
	Status          string `dynamodbav:"status"`

	AvailableForTransferAt string `dynamodbav:"available_for_transfer_at"`
	StripeTransferID       string `dynamodbav:"stripe_transfer_id,omitempty"`
	StripePayoutID         string `dynamodbav:"stripe_payout_id,omitempty"`
	TransferredAt          string `dynamodbav:"transferred_at,omitempty"`
	PaidOutAt              string `dynamodbav:"paid_out_at,omitempty"`
	CreatedAt              string `dynamodbav:"created_at"`
}

type transferItem struct {
	StripeTransferID string   `dynamodbav:"stripe_transfer_id"`
	MechanicID       string   `dynamodbav:"mechanic_id"`
	StripeAccountID  string   `dynamodbav:"stripe_account_id"`
	AmountCents      int64    `dynamodbav:"amount_cents"`
	Status           string   `dynamodbav:"status"`
	LedgerPaymentIDs []string `dynamodbav:"ledger_payment_ids"`
	ErrorMessage     string   `dynamodbav:"error_message,omitempty"`
	CreatedAt        string   `dynamodbav:"created_at"`
}

// LedgerDynamoRepository persists mechanic ledger entries in DynamoDB.
//
// Table requirements:
//   - PK: payment_id (string)
//   - GSI: status-available_at-index (PK: status, SK: available_for_transfer_at)
//   - GSI: stripe_account-index (PK: stripe_account_id)

type LedgerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILedgerRepository = (*LedgerDynamoRepository)(nil)

func NewLedgerDynamoRepository(ddb *dynamodb.Client) *LedgerDynamoRepository {
	return &LedgerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MECHANIC_LEDGER_TABLE", defaultLedgerTableName),
	}
}

func (r *LedgerDynamoRepository) PostEarning(ctx context.Context, e entities.LedgerEntry) error {
	av, err := attributevalue.MarshalMap(toLedgerEntryItem(e))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(payment_id)"),
	})
	return asConflict(err)
}

func (r *LedgerDynamoRepository) GetByPaymentID(ctx context.Context, paymentID string) (entities.LedgerEntry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"payment_id": &types.AttributeValueMemberS{Value: paymentID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.LedgerEntry{}, err
	}
	if len(out.Item) == 0 {
		return entities.LedgerEntry{}, nil
	}

	var it ledgerEntryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.LedgerEntry{}, err
	}
	return fromLedgerEntryItem(it), nil
}

func (r *LedgerDynamoRepository) ListDueForTransfer(ctx context.Context, now time.Time) ([]entities.LedgerEntry, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ledgerStatusAvailableIndex),
		KeyConditionExpression: aws.String("#status = :status AND available_for_transfer_at <= :now"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(entities.LedgerStatusAvailableForTransfer)},
			":now":    &types.AttributeValueMemberS{Value: formatTime(now)},
		},
	})
	if err != nil {
		return nil, err
	}

	entries := make([]entities.LedgerEntry, 0, len(out.Items))
	for _, raw := range out.Items {
		var it ledgerEntryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		entries = append(entries, fromLedgerEntryItem(it))
	}
	return entries, nil
}

// MarkTransferred flips the batch to transferred in transactions, conditional
// on each entry still being available. A concurrent run losing the condition
// surfaces as ErrConflict and its transfer attempt is abandoned.
func (r *LedgerDynamoRepository) MarkTransferred(ctx context.Context, paymentIDs []string, stripeTransferID string, at time.Time) error {
	return r.transactUpdate(ctx, paymentIDs, func(paymentID string) types.TransactWriteItem {
		return types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"payment_id": &types.AttributeValueMemberS{Value: paymentID},
				},
				ConditionExpression: aws.String("#status = :available"),
				UpdateExpression:    aws.String("SET #status = :transferred, stripe_transfer_id = :tid, transferred_at = :at"),
				ExpressionAttributeNames: map[string]string{
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":available":   &types.AttributeValueMemberS{Value: string(entities.LedgerStatusAvailableForTransfer)},
					":transferred": &types.AttributeValueMemberS{Value: string(entities.LedgerStatusTransferred)},
					":tid":         &types.AttributeValueMemberS{Value: stripeTransferID},
					":at":          &types.AttributeValueMemberS{Value: formatTime(at)},
				},
			},
		}
	})
}

func (r *LedgerDynamoRepository) RevertToAvailable(ctx context.Context, paymentIDs []string) error {
	return r.transactUpdate(ctx, paymentIDs, func(paymentID string) types.TransactWriteItem {
		return types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"payment_id": &types.AttributeValueMemberS{Value: paymentID},
				},
				ConditionExpression: aws.String("#status = :transferred"),
				UpdateExpression:    aws.String("SET #status = :available REMOVE stripe_transfer_id, transferred_at"),
				ExpressionAttributeNames: map[string]string{
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":transferred": &types.AttributeValueMemberS{Value: string(entities.LedgerStatusTransferred)},
					":available":   &types.AttributeValueMemberS{Value: string(entities.LedgerStatusAvailableForTransfer)},
				},
			},
		}
	})
}

func (r *LedgerDynamoRepository) transactUpdate(ctx context.Context, paymentIDs []string, build func(paymentID string) types.TransactWriteItem) error {
	for start := 0; start < len(paymentIDs); start += transactBatchSize {
		end := start + transactBatchSize
		if end > len(paymentIDs) {
			end = len(paymentIDs)
		}

		items := make([]types.TransactWriteItem, 0, end-start)
		for _, id := range paymentIDs[start:end] {
			items = append(items, build(id))
		}

		if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems: items,
		}); err != nil {
			return asConflict(err)
		}
	}
	return nil
}

func (r *LedgerDynamoRepository) MarkPaidOutByAccount(ctx context.Context, stripeAccountID, stripePayoutID string, at time.Time) ([]entities.LedgerEntry, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ledgerAccountIndex),
		KeyConditionExpression: aws.String("stripe_account_id = :acc"),
		FilterExpression:       aws.String("#status = :transferred"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":acc":         &types.AttributeValueMemberS{Value: stripeAccountID},
			":transferred": &types.AttributeValueMemberS{Value: string(entities.LedgerStatusTransferred)},
		},
	})
	if err != nil {
		return nil, err
	}

	entries := make([]entities.LedgerEntry, 0, len(out.Items))
	for _, raw := range out.Items {
		var it ledgerEntryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		entries = append(entries, fromLedgerEntryItem(it))
	}

	paymentIDs := make([]string, 0, len(entries))
	for _, e := range entries {
		paymentIDs = append(paymentIDs, e.PaymentID)
	}
	if len(paymentIDs) == 0 {
		return entries, nil
	}

	err = r.transactUpdate(ctx, paymentIDs, func(paymentID string) types.TransactWriteItem {
		return types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"payment_id": &types.AttributeValueMemberS{Value: paymentID},
				},
				ConditionExpression: aws.String("#status = :transferred"),
				UpdateExpression:    aws.String("SET #status = :paid_out, stripe_payout_id = :pid, paid_out_at = :at"),
				ExpressionAttributeNames: map[string]string{
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":transferred": &types.AttributeValueMemberS{Value: string(entities.LedgerStatusTransferred)},
					":paid_out":    &types.AttributeValueMemberS{Value: string(entities.LedgerStatusPaidOut)},
					":pid":         &types.AttributeValueMemberS{Value: stripePayoutID},
					":at":          &types.AttributeValueMemberS{Value: formatTime(at)},
				},
			},
		}
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *LedgerDynamoRepository) MarkRefunded(ctx context.Context, paymentID string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"payment_id": &types.AttributeValueMemberS{Value: paymentID},
		},
		ConditionExpression: aws.String("#status <> :paid_out"),
		UpdateExpression:    aws.String("SET #status = :refunded"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":paid_out": &types.AttributeValueMemberS{Value: string(entities.LedgerStatusPaidOut)},
			":refunded": &types.AttributeValueMemberS{Value: string(entities.LedgerStatusRefunded)},
		},
	})
	return asConflict(err)
}

func toLedgerEntryItem(e entities.LedgerEntry) ledgerEntryItem {
	return ledgerEntryItem{
		PaymentID:              e.PaymentID,
		MechanicID:             e.MechanicID,
		JobID:                  e.JobID,
		StripeAccountID:        e.StripeAccountID,
		AmountCents:            int64(e.AmountCents),
		Status:                 string(e.Status),
		AvailableForTransferAt: formatTime(e.AvailableForTransferAt),
		StripeTransferID:       e.StripeTransferID,
		StripePayoutID:         e.StripePayoutID,
		TransferredAt:          formatTimePtr(e.TransferredAt),
		PaidOutAt:              formatTimePtr(e.PaidOutAt),
		CreatedAt:              formatTime(e.CreatedAt),
	}
}

func fromLedgerEntryItem(it ledgerEntryItem) entities.LedgerEntry {
	return entities.LedgerEntry{
		PaymentID:              it.PaymentID,
		MechanicID:             it.MechanicID,
		JobID:                  it.JobID,
		StripeAccountID:        it.StripeAccountID,
		AmountCents:            entities.Cents(it.AmountCents),
		Status:                 entities.LedgerEntryStatus(it.Status),
		AvailableForTransferAt: parseTime(it.AvailableForTransferAt),
		StripeTransferID:       it.StripeTransferID,
		StripePayoutID:         it.StripePayoutID,
		TransferredAt:          parseTimePtr(it.TransferredAt),
		PaidOutAt:              parseTimePtr(it.PaidOutAt),
		CreatedAt:              parseTime(it.CreatedAt),
	}
}

// TransferDynamoRepository persists bulk weekly transfers.
//
// Table requirements:
//   - PK: stripe_transfer_id (string)
//   - GSI: mechanic_id-index (PK: mechanic_id)

type TransferDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransferRepository = (*TransferDynamoRepository)(nil)

func NewTransferDynamoRepository(ddb *dynamodb.Client) *TransferDynamoRepository {
	return &TransferDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSFERS_TABLE", defaultTransfersTableName),
	}
}

func (r *TransferDynamoRepository) Create(ctx context.Context, t entities.Transfer) error {
	av, err := attributevalue.MarshalMap(transferItem{
		StripeTransferID: t.StripeTransferID,
		MechanicID:       t.MechanicID,
		StripeAccountID:  t.StripeAccountID,
		AmountCents:      int64(t.AmountCents),
		Status:           string(t.Status),
		LedgerPaymentIDs: t.LedgerPaymentIDs,
		ErrorMessage:     t.ErrorMessage,
		CreatedAt:        formatTime(t.CreatedAt),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(stripe_transfer_id)"),
	})
	return asConflict(err)
}

func (r *TransferDynamoRepository) GetByStripeTransferID(ctx context.Context, stripeTransferID string) (entities.Transfer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"stripe_transfer_id": &types.AttributeValueMemberS{Value: stripeTransferID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Transfer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Transfer{}, nil
	}

	var it transferItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Transfer{}, err
	}
	return entities.Transfer{
		StripeTransferID: it.StripeTransferID,
		MechanicID:       it.MechanicID,
		StripeAccountID:  it.StripeAccountID,
		AmountCents:      entities.Cents(it.AmountCents),
		Status:           entities.TransferStatus(it.Status),
		LedgerPaymentIDs: it.LedgerPaymentIDs,
		ErrorMessage:     it.ErrorMessage,
		CreatedAt:        parseTime(it.CreatedAt),
	}, nil
}

func (r *TransferDynamoRepository) ListUnresolvedByMechanicID(ctx context.Context, mechanicID string) ([]entities.Transfer, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transfersMechanicIndex),
		KeyConditionExpression: aws.String("mechanic_id = :mid"),
		FilterExpression:       aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":mid":     &types.AttributeValueMemberS{Value: mechanicID},
			":pending": &types.AttributeValueMemberS{Value: string(entities.TransferStatusPending)},
		},
	})
	if err != nil {
		return nil, err
	}

	transfers := make([]entities.Transfer, 0, len(out.Items))
	for _, raw := range out.Items {
		var it transferItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		transfers = append(transfers, entities.Transfer{
			StripeTransferID: it.StripeTransferID,
			MechanicID:       it.MechanicID,
			StripeAccountID:  it.StripeAccountID,
			AmountCents:      entities.Cents(it.AmountCents),
			Status:           entities.TransferStatus(it.Status),
			LedgerPaymentIDs: it.LedgerPaymentIDs,
			ErrorMessage:     it.ErrorMessage,
			CreatedAt:        parseTime(it.CreatedAt),
		})
	}
	return transfers, nil
}

func (r *TransferDynamoRepository) UpsertStatus(ctx context.Context, stripeTransferID string, status entities.TransferStatus, errorMessage string) error {
	expr := "SET #status = :status"
	names := map[string]string{
		"#status": "status",
	}
	vals := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: string(status)},
	}
	if errorMessage != "" {
		expr += ", error_message = :error_message"
		vals[":error_message"] = &types.AttributeValueMemberS{Value: errorMessage}
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"stripe_transfer_id": &types.AttributeValueMemberS{Value: stripeTransferID},
		},
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: vals,
	})
	return err
}
