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

// Collaborator tables are owned by other services; this service reads them to
// gate payments and stamps the paid/refunded/disputed transitions that follow
// processor events.

const (
	defaultJobsTableName           = "jobs"
	defaultJobInvoicesTableName    = "job_invoices"
	defaultPayoutAccountsTableName = "mechanic_payout_accounts"
	defaultProfilesTableName       = "customer_profiles"

	invoicesJobIDIndex        = "job_id-index"
	accountsStripeIndex       = "stripe_account-index"
	profilesStripeCustomerIdx = "stripe_customer-index"
)

type jobItem struct {
	ID         string `dynamodbav:"id"`
	CustomerID string `dynamodbav:"customer_id"`
	MechanicID string `dynamodbav:"mechanic_id"`
	Title      string `dynamodbav:"title,omitempty"`
	Status     string `dynamodbav:"status"`

	MechanicVerifiedAt string `dynamodbav:"mechanic_verified_at,omitempty"`
	CustomerVerifiedAt string `dynamodbav:"customer_verified_at,omitempty"`
	PaidAt             string `dynamodbav:"paid_at,omitempty"`
}

type invoiceItem struct {
	ID               string `dynamodbav:"id"`
	JobID            string `dynamodbav:"job_id"`
	TotalCents       int64  `dynamodbav:"total_cents"`
	PlatformFeeCents int64  `dynamodbav:"platform_fee_cents"`
	MechanicNetCents int64  `dynamodbav:"mechanic_net_cents"`
	Status           string `dynamodbav:"status"`
	PaidAt           string `dynamodbav:"paid_at,omitempty"`
}

type payoutAccountItem struct {
	MechanicID          string `dynamodbav:"mechanic_id"`
	StripeAccountID     string `dynamodbav:"stripe_account_id"`
	OnboardingCompleted bool   `dynamodbav:"onboarding_completed"`
	ChargesEnabled      bool   `dynamodbav:"charges_enabled"`
	PayoutsEnabled      bool   `dynamodbav:"payouts_enabled"`
	DetailsSubmitted    bool   `dynamodbav:"details_submitted"`
}

type customerProfileItem struct {
	UserID               string `dynamodbav:"user_id"`
	StripeCustomerID     string `dynamodbav:"stripe_customer_id,omitempty"`
	DefaultPaymentMethod string `dynamodbav:"default_payment_method,omitempty"`
	PaymentMethodStatus  string `dynamodbav:"payment_method_status,omitempty"`
}

// JobDynamoRepository reads and stamps job rows.
//
// Table requirements:
//   - PK: id (string)

type JobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOBS_TABLE", defaultJobsTableName),
	}
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return entities.Job{
		ID:                 it.ID,
		CustomerID:         it.CustomerID,
		MechanicID:         it.MechanicID,
		Title:              it.Title,
		Status:             entities.JobStatus(it.Status),
		MechanicVerifiedAt: parseTimePtr(it.MechanicVerifiedAt),
		CustomerVerifiedAt: parseTimePtr(it.CustomerVerifiedAt),
		PaidAt:             parseTimePtr(it.PaidAt),
	}, nil
}

func (r *JobDynamoRepository) MarkPaid(ctx context.Context, id string, at time.Time) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(id)"),
		UpdateExpression:    aws.String("SET #status = :paid, paid_at = :at"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":paid": &types.AttributeValueMemberS{Value: string(entities.JobStatusPaid)},
			":at":   &types.AttributeValueMemberS{Value: formatTime(at)},
		},
	})
	return asConflict(err)
}

func (r *JobDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.JobStatus) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	return asConflict(err)
}

// InvoiceDynamoRepository reads and stamps job invoices.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOB_INVOICES_TABLE", defaultJobInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) GetByJobID(ctx context.Context, jobID string) (entities.JobInvoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesJobIDIndex),
		KeyConditionExpression: aws.String("job_id = :jid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jid": &types.AttributeValueMemberS{Value: jobID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.JobInvoice{}, err
	}
	if len(out.Items) == 0 {
		return entities.JobInvoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.JobInvoice{}, err
	}
	return entities.JobInvoice{
		ID:               it.ID,
		JobID:            it.JobID,
		TotalCents:       entities.Cents(it.TotalCents),
		PlatformFeeCents: entities.Cents(it.PlatformFeeCents),
		MechanicNetCents: entities.Cents(it.MechanicNetCents),
		Status:           entities.InvoiceStatus(it.Status),
		PaidAt:           parseTimePtr(it.PaidAt),
	}, nil
}

func (r *InvoiceDynamoRepository) MarkPaid(ctx context.Context, id string, at time.Time) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(id)"),
		UpdateExpression:    aws.String("SET #status = :paid, paid_at = :at"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":paid": &types.AttributeValueMemberS{Value: string(entities.InvoiceStatusPaid)},
			":at":   &types.AttributeValueMemberS{Value: formatTime(at)},
		},
	})
	return asConflict(err)
}

func (r *InvoiceDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.InvoiceStatus) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	return asConflict(err)
}

// PayoutAccountDynamoRepository reads and syncs mechanic payout accounts.
//
// Table requirements:
//   - PK: mechanic_id (string)
//   - GSI: stripe_account-index (PK: stripe_account_id)

type PayoutAccountDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPayoutAccountRepository = (*PayoutAccountDynamoRepository)(nil)

func NewPayoutAccountDynamoRepository(ddb *dynamodb.Client) *PayoutAccountDynamoRepository {
	return &PayoutAccountDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYOUT_ACCOUNTS_TABLE", defaultPayoutAccountsTableName),
	}
}

func (r *PayoutAccountDynamoRepository) GetByMechanicID(ctx context.Context, mechanicID string) (entities.PayoutAccount, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"mechanic_id": &types.AttributeValueMemberS{Value: mechanicID},
		},
	})
	if err != nil {
		return entities.PayoutAccount{}, err
	}
	if len(out.Item) == 0 {
		return entities.PayoutAccount{}, nil
	}

	var it payoutAccountItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PayoutAccount{}, err
	}
	return fromPayoutAccountItem(it), nil
}

// UpdateFromAccount resolves the mechanic via the account GSI, then syncs the
// capability flags. An account with no mechanic row is not ours to track.
func (r *PayoutAccountDynamoRepository) UpdateFromAccount(ctx context.Context, a entities.PayoutAccount) error {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(accountsStripeIndex),
		KeyConditionExpression: aws.String("stripe_account_id = :acc"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":acc": &types.AttributeValueMemberS{Value: a.StripeAccountID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return err
	}
	if len(out.Items) == 0 {
		return nil
	}

	var it payoutAccountItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return err
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"mechanic_id": &types.AttributeValueMemberS{Value: it.MechanicID},
		},
		UpdateExpression: aws.String(
			"SET charges_enabled = :charges, payouts_enabled = :payouts, details_submitted = :details, onboarding_completed = :onboarded"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":charges":   &types.AttributeValueMemberBOOL{Value: a.ChargesEnabled},
			":payouts":   &types.AttributeValueMemberBOOL{Value: a.PayoutsEnabled},
			":details":   &types.AttributeValueMemberBOOL{Value: a.DetailsSubmitted},
			":onboarded": &types.AttributeValueMemberBOOL{Value: a.OnboardingCompleted},
		},
	})
	return err
}

func fromPayoutAccountItem(it payoutAccountItem) entities.PayoutAccount {
	return entities.PayoutAccount{
		MechanicID:          it.MechanicID,
		StripeAccountID:     it.StripeAccountID,
		OnboardingCompleted: it.OnboardingCompleted,
		ChargesEnabled:      it.ChargesEnabled,
		PayoutsEnabled:      it.PayoutsEnabled,
		DetailsSubmitted:    it.DetailsSubmitted,
	}
}

// CustomerProfileDynamoRepository reads customer processor identifiers.
//
// Table requirements:
//   - PK: user_id (string)
//   - GSI: stripe_customer-index (PK: stripe_customer_id)

type CustomerProfileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerProfileRepository = (*CustomerProfileDynamoRepository)(nil)

func NewCustomerProfileDynamoRepository(ddb *dynamodb.Client) *CustomerProfileDynamoRepository {
	return &CustomerProfileDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CUSTOMER_PROFILES_TABLE", defaultProfilesTableName),
	}
}

func (r *CustomerProfileDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.CustomerProfile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return entities.CustomerProfile{}, err
	}
	if len(out.Item) == 0 {
		return entities.CustomerProfile{}, nil
	}

	var it customerProfileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CustomerProfile{}, err
	}
	return fromCustomerProfileItem(it), nil
}

func (r *CustomerProfileDynamoRepository) GetByStripeCustomerID(ctx context.Context, stripeCustomerID string) (entities.CustomerProfile, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(profilesStripeCustomerIdx),
		KeyConditionExpression: aws.String("stripe_customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: stripeCustomerID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.CustomerProfile{}, err
	}
	if len(out.Items) == 0 {
		return entities.CustomerProfile{}, nil
	}

	var it customerProfileItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.CustomerProfile{}, err
	}
	return fromCustomerProfileItem(it), nil
}

func (r *CustomerProfileDynamoRepository) UpdatePaymentMethodStatus(ctx context.Context, userID, status string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ConditionExpression: aws.String("attribute_exists(user_id)"),
		UpdateExpression:    aws.String("SET payment_method_status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: status},
		},
	})
	return asConflict(err)
}

func fromCustomerProfileItem(it customerProfileItem) entities.CustomerProfile {
	return entities.CustomerProfile{
		UserID:               it.UserID,
		StripeCustomerID:     it.StripeCustomerID,
		DefaultPaymentMethod: it.DefaultPaymentMethod,
		PaymentMethodStatus:  it.PaymentMethodStatus,
	}
}
