package repository

import (
	"context"
	"sort"
	"strconv"
	"time"

	"wrenchgo_payments/internal/domain/entities"
	"wrenchgo_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPromoCreditsTableName      = "promo_credits"
	defaultPromoApplicationsTableName = "promo_applications"
	defaultPromotionsTableName        = "promotions"
	promoCreditsUserIDIndex           = "user_id-index"
)

type promoCreditItem struct {
	ID            string `dynamodbav:"id"`
	UserID        string `dynamodbav:"user_id"`
	CreditType    string `dynamodbav:"credit_type"`
	RemainingUses int    `dynamodbav:"remaining_uses"`
	Source        string `dynamodbav:"source,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
}

type promoApplicationItem struct {
	PaymentID     string `dynamodbav:"payment_id"`
	PromoCreditID string `dynamodbav:"promo_credit_id"`
	UserID        string `dynamodbav:"user_id"`
	CreditType    string `dynamodbav:"credit_type"`
	DiscountCents int64  `dynamodbav:"discount_cents"`
	FeeAfterCents int64  `dynamodbav:"fee_after_cents"`
	AppliedAt     string `dynamodbav:"applied_at"`
}

type promotionItem struct {
	Code               string `dynamodbav:"code"`
	Active             bool   `dynamodbav:"active"`
	PercentOff         int    `dynamodbav:"percent_off,omitempty"`
	AmountOffCents     int64  `dynamodbav:"amount_off_cents,omitempty"`
	MinAmountCents     int64  `dynamodbav:"min_amount_cents,omitempty"`
	MaxRedemptions     int    `dynamodbav:"max_redemptions,omitempty"`
	CurrentRedemptions int    `dynamodbav:"current_redemptions"`
	StartDate          string `dynamodbav:"start_date"`
	EndDate            string `dynamodbav:"end_date,omitempty"`
}

// PromoDynamoRepository persists promo credits and applications in DynamoDB.
//
// Table requirements:
//   - promo_credits: PK id (string), GSI user_id-index (PK: user_id)
//   - promo_applications: PK payment_id (string)
//
// The application table's partition key is the at-most-one-promo-per-payment
// constraint; no scan or read-before-write is involved in enforcing it.

type PromoDynamoRepository struct {
	ddb               *dynamodb.Client
	creditsTable      string
	applicationsTable string
	paymentsTable     string
}

var _ interfaces.IPromoRepository = (*PromoDynamoRepository)(nil)

func NewPromoDynamoRepository(ddb *dynamodb.Client) *PromoDynamoRepository {
	return &PromoDynamoRepository{
		ddb:               ddb,
		creditsTable:      getenvDefault("PROMO_CREDITS_TABLE", defaultPromoCreditsTableName),
		applicationsTable: getenvDefault("PROMO_APPLICATIONS_TABLE", defaultPromoApplicationsTableName),
		paymentsTable:     getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PromoDynamoRepository) ListActiveCreditsByUser(ctx context.Context, userID string) ([]entities.PromoCredit, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.creditsTable),
		IndexName:              aws.String(promoCreditsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		FilterExpression:       aws.String("remaining_uses > :zero"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid":  &types.AttributeValueMemberS{Value: userID},
			":zero": &types.AttributeValueMemberN{Value: "0"},
		},
	})
	if err != nil {
		return nil, err
	}

	credits := make([]entities.PromoCredit, 0, len(out.Items))
	for _, raw := range out.Items {
		var it promoCreditItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		credits = append(credits, fromPromoCreditItem(it))
	}

	sortCreditsForSelection(credits)
	return credits, nil
}

// sortCreditsForSelection orders credits the way they are consumed: full
// waivers before partial discounts, oldest grant first within the same type.
func sortCreditsForSelection(credits []entities.PromoCredit) {
	sort.SliceStable(credits, func(i, j int) bool {
		if credits[i].CreditType != credits[j].CreditType {
			return credits[i].CreditType == entities.PromoCreditFeeless
		}
		return credits[i].CreatedAt.Before(credits[j].CreatedAt)
	})
}

func (r *PromoDynamoRepository) GetApplicationByPaymentID(ctx context.Context, paymentID string) (entities.PromoApplication, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.applicationsTable),
		Key: map[string]types.AttributeValue{
			"payment_id": &types.AttributeValueMemberS{Value: paymentID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PromoApplication{}, err
	}
	if len(out.Item) == 0 {
		return entities.PromoApplication{}, nil
	}

	var it promoApplicationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PromoApplication{}, err
	}
	return fromPromoApplicationItem(it), nil
}

// ApplyCreditAtomic performs the three writes as one transaction. All
// conditions hold or nothing happens:
//   - the credit still has a use left (remaining_uses > 0)
//   - no application exists for the payment yet
//   - the payment row still exists
func (r *PromoDynamoRepository) ApplyCreditAtomic(ctx context.Context, app entities.PromoApplication, updated entities.Payment) error {
	appItem, err := attributevalue.MarshalMap(toPromoApplicationItem(app))
	if err != nil {
		return err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.creditsTable),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: app.PromoCreditID},
					},
					ConditionExpression: aws.String("remaining_uses > :zero"),
					UpdateExpression:    aws.String("SET remaining_uses = remaining_uses - :one"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":zero": &types.AttributeValueMemberN{Value: "0"},
						":one":  &types.AttributeValueMemberN{Value: "1"},
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.applicationsTable),
					Item:                appItem,
					ConditionExpression: aws.String("attribute_not_exists(payment_id)"),
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.paymentsTable),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: updated.ID},
					},
					ConditionExpression: aws.String("attribute_exists(id)"),
					UpdateExpression: aws.String(
						"SET amount_cents = :amount, platform_fee_cents = :fee, promo_discount_cents = :discount, updated_at = :updated_at"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount":     &types.AttributeValueMemberN{Value: strconv.FormatInt(int64(updated.AmountCents), 10)},
						":fee":        &types.AttributeValueMemberN{Value: strconv.FormatInt(int64(updated.PlatformFeeCents), 10)},
						":discount":   &types.AttributeValueMemberN{Value: strconv.FormatInt(int64(updated.PromoDiscountCents), 10)},
						":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
					},
				},
			},
		},
	})
	return asConflict(err)
}

// GrantCredit inserts a new credit row. Used by seeding and admin tooling;
// invitation awards grant through the award transaction instead.
func (r *PromoDynamoRepository) GrantCredit(ctx context.Context, c entities.PromoCredit) error {
	av, err := attributevalue.MarshalMap(toPromoCreditItem(c))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.creditsTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	return asConflict(err)
}

func toPromoCreditItem(c entities.PromoCredit) promoCreditItem {
	return promoCreditItem{
		ID:            c.ID,
		UserID:        c.UserID,
		CreditType:    string(c.CreditType),
		RemainingUses: c.RemainingUses,
		Source:        c.Source,
		CreatedAt:     formatTime(c.CreatedAt),
	}
}

func fromPromoCreditItem(it promoCreditItem) entities.PromoCredit {
	return entities.PromoCredit{
		ID:            it.ID,
		UserID:        it.UserID,
		CreditType:    entities.PromoCreditType(it.CreditType),
		RemainingUses: it.RemainingUses,
		Source:        it.Source,
		CreatedAt:     parseTime(it.CreatedAt),
	}
}

func toPromoApplicationItem(a entities.PromoApplication) promoApplicationItem {
	return promoApplicationItem{
		PaymentID:     a.PaymentID,
		PromoCreditID: a.PromoCreditID,
		UserID:        a.UserID,
		CreditType:    string(a.CreditType),
		DiscountCents: int64(a.DiscountCents),
		FeeAfterCents: int64(a.FeeAfterCents),
		AppliedAt:     formatTime(a.AppliedAt),
	}
}

func fromPromoApplicationItem(it promoApplicationItem) entities.PromoApplication {
	return entities.PromoApplication{
		PaymentID:     it.PaymentID,
		PromoCreditID: it.PromoCreditID,
		UserID:        it.UserID,
		CreditType:    entities.PromoCreditType(it.CreditType),
		DiscountCents: entities.Cents(it.DiscountCents),
		FeeAfterCents: entities.Cents(it.FeeAfterCents),
		AppliedAt:     parseTime(it.AppliedAt),
	}
}

// PromotionDynamoRepository reads opt-in promotion codes.
//
// Table requirements:
//   - promotions: PK code (string)

type PromotionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPromotionRepository = (*PromotionDynamoRepository)(nil)

func NewPromotionDynamoRepository(ddb *dynamodb.Client) *PromotionDynamoRepository {
	return &PromotionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROMOTIONS_TABLE", defaultPromotionsTableName),
	}
}

func (r *PromotionDynamoRepository) GetByCode(ctx context.Context, code string) (entities.Promotion, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: code},
		},
	})
	if err != nil {
		return entities.Promotion{}, err
	}
	if len(out.Item) == 0 {
		return entities.Promotion{}, nil
	}

	var it promotionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Promotion{}, err
	}
	return entities.Promotion{
		Code:               it.Code,
		Active:             it.Active,
		PercentOff:         it.PercentOff,
		AmountOffCents:     entities.Cents(it.AmountOffCents),
		MinAmountCents:     entities.Cents(it.MinAmountCents),
		MaxRedemptions:     it.MaxRedemptions,
		CurrentRedemptions: it.CurrentRedemptions,
		StartDate:          parseTime(it.StartDate),
		EndDate:            parseTimePtr(it.EndDate),
	}, nil
}
