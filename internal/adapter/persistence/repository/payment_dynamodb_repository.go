package repository

import (
	"context"
	"sort"
	"time"

	"wrenchgo_payments/internal/domain/entities"
	"wrenchgo_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName   = "payments"
	paymentsJobIDIndex         = "job_id-index"
	paymentsPaymentIntentIndex = "payment_intent-index"
	paymentsChargeIndex        = "charge-index"
	paymentsCustomerIDIndex    = "customer_id-index"
)

type paymentItem struct {
	ID         string `dynamodbav:"id"`
	JobID      string `dynamodbav:"job_id"`
	InvoiceID  string `dynamodbav:"invoice_id,omitempty"`
	CustomerID string `dynamodbav:"customer_id"`
	MechanicID string `dynamodbav:"mechanic_id"`

	AmountCents         int64 `dynamodbav:"amount_cents"`
	PlatformFeeCents    int64 `dynamodbav:"platform_fee_cents"`
	OriginalFeeCents    int64 `dynamodbav:"original_platform_fee_cents"`
	OriginalAmountCents int64 `dynamodbav:"original_amount_cents"`
	MechanicNetCents    int64 `dynamodbav:"mechanic_net_cents"`
	PromoDiscountCents  int64 `dynamodbav:"promo_discount_cents"`
	AmountRefundedCents int64 `dynamodbav:"amount_refunded_cents"`

	Status                  string `dynamodbav:"status"`
	StripePaymentIntentID   string `dynamodbav:"stripe_payment_intent_id,omitempty"`
	StripeChargeID          string `dynamodbav:"stripe_charge_id,omitempty"`
	MechanicStripeAccountID string `dynamodbav:"mechanic_stripe_account_id,omitempty"`
	ClientSecret            string `dynamodbav:"client_secret,omitempty"`
	ErrorMessage            string `dynamodbav:"error_message,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
	PaidAt    string `dynamodbav:"paid_at,omitempty"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)
//   - GSI: payment_intent-index (PK: stripe_payment_intent_id)
//   - GSI: charge-index (PK: stripe_charge_id)
//   - GSI: customer_id-index (PK: customer_id)

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Payment{}, asConflict(err)
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsJobIDIndex),
		KeyConditionExpression: aws.String("job_id = :jid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jid": &types.AttributeValueMemberS{Value: jobID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentItem(it))
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (r *PaymentDynamoRepository) GetByPaymentIntentID(ctx context.Context, paymentIntentID string) (entities.Payment, error) {
	return r.getByIndex(ctx, paymentsPaymentIntentIndex, "stripe_payment_intent_id", paymentIntentID)
}

func (r *PaymentDynamoRepository) GetByChargeID(ctx context.Context, chargeID string) (entities.Payment, error) {
	return r.getByIndex(ctx, paymentsChargeIndex, "stripe_charge_id", chargeID)
}

func (r *PaymentDynamoRepository) getByIndex(ctx context.Context, index, attr, value string) (entities.Payment, error) {
	if value == "" {
		return entities.Payment{}, nil
	}
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Items) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) AttachHold(ctx context.Context, id string, hold entities.ProcessorHold, status entities.PaymentStatus) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression: aws.String(
			"SET #pi = :pi, #cs = :cs, #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#pi":         "stripe_payment_intent_id",
			"#cs":         "client_secret",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pi":         &types.AttributeValueMemberS{Value: hold.ID},
			":cs":         &types.AttributeValueMemberS{Value: hold.ClientSecret},
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
	})
	return asConflict(err)
}

func (r *PaymentDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus, errorMessage string) error {
	expr := "SET #status = :status, #updated_at = :updated_at"
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	vals := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(status)},
		":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
	}
	if errorMessage != "" {
		expr += ", #error_message = :error_message"
		names["#error_message"] = "error_message"
		vals[":error_message"] = &types.AttributeValueMemberS{Value: errorMessage}
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: vals,
	})
	return asConflict(err)
}

func (r *PaymentDynamoRepository) UpdateStatusByPaymentIntentID(ctx context.Context, paymentIntentID string, status entities.PaymentStatus, errorMessage string) error {
	p, err := r.GetByPaymentIntentID(ctx, paymentIntentID)
	if err != nil {
		return err
	}
	if p.ID == "" {
		return interfaces.ErrConflict
	}
	return r.UpdateStatus(ctx, p.ID, status, errorMessage)
}

func (r *PaymentDynamoRepository) MarkSucceeded(ctx context.Context, id, paymentIntentID, chargeID string, paidAt time.Time) error {
	expr := "SET #status = :status, #paid_at = :paid_at, #updated_at = :updated_at"
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#paid_at":    "paid_at",
		"#updated_at": "updated_at",
	}
	vals := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(entities.PaymentStatusSucceeded)},
		":paid_at":    &types.AttributeValueMemberS{Value: formatTime(paidAt)},
		":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
	}
	if paymentIntentID != "" {
		expr += ", #pi = :pi"
		names["#pi"] = "stripe_payment_intent_id"
		vals[":pi"] = &types.AttributeValueMemberS{Value: paymentIntentID}
	}
	if chargeID != "" {
		expr += ", #charge = :charge"
		names["#charge"] = "stripe_charge_id"
		vals[":charge"] = &types.AttributeValueMemberS{Value: chargeID}
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: vals,
	})
	return asConflict(err)
}

func (r *PaymentDynamoRepository) HasPriorQualifyingPayment(ctx context.Context, customerID, paymentID string) (bool, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsCustomerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		FilterExpression:       aws.String("#status = :succeeded AND original_platform_fee_cents > :zero AND #id <> :pid"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid":       &types.AttributeValueMemberS{Value: customerID},
			":succeeded": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusSucceeded)},
			":zero":      &types.AttributeValueMemberN{Value: "0"},
			":pid":       &types.AttributeValueMemberS{Value: paymentID},
		},
	})
	if err != nil {
		return false, err
	}
	return len(out.Items) > 0, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:         p.ID,
		JobID:      p.JobID,
		InvoiceID:  p.InvoiceID,
		CustomerID: p.CustomerID,
		MechanicID: p.MechanicID,

		AmountCents:         int64(p.AmountCents),
		PlatformFeeCents:    int64(p.PlatformFeeCents),
		OriginalFeeCents:    int64(p.OriginalFeeCents),
		OriginalAmountCents: int64(p.OriginalAmountCents),
		MechanicNetCents:    int64(p.MechanicNetCents),
		PromoDiscountCents:  int64(p.PromoDiscountCents),
		AmountRefundedCents: int64(p.AmountRefundedCents),

		Status:                  string(p.Status),
		StripePaymentIntentID:   p.StripePaymentIntentID,
		StripeChargeID:          p.StripeChargeID,
		MechanicStripeAccountID: p.MechanicStripeAccountID,
		ClientSecret:            p.ClientSecret,
		ErrorMessage:            p.ErrorMessage,

		CreatedAt: formatTime(p.CreatedAt),
		UpdatedAt: formatTime(p.UpdatedAt),
		PaidAt:    formatTimePtr(p.PaidAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:         it.ID,
		JobID:      it.JobID,
		InvoiceID:  it.InvoiceID,
		CustomerID: it.CustomerID,
		MechanicID: it.MechanicID,

		AmountCents:         entities.Cents(it.AmountCents),
		PlatformFeeCents:    entities.Cents(it.PlatformFeeCents),
		OriginalFeeCents:    entities.Cents(it.OriginalFeeCents),
		OriginalAmountCents: entities.Cents(it.OriginalAmountCents),
		MechanicNetCents:    entities.Cents(it.MechanicNetCents),
		PromoDiscountCents:  entities.Cents(it.PromoDiscountCents),
		AmountRefundedCents: entities.Cents(it.AmountRefundedCents),

		Status:                  entities.PaymentStatus(it.Status),
		StripePaymentIntentID:   it.StripePaymentIntentID,
		StripeChargeID:          it.StripeChargeID,
		MechanicStripeAccountID: it.MechanicStripeAccountID,
		ClientSecret:            it.ClientSecret,
		ErrorMessage:            it.ErrorMessage,

		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
		PaidAt:    parseTimePtr(it.PaidAt),
	}
}
