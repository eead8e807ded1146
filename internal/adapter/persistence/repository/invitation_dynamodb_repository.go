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

const (
	defaultInvitationsTableName      = "invitations"
	defaultInvitationAwardsTableName = "invitation_awards"
)

type invitationItem struct {
	InvitedID   string `dynamodbav:"invited_id"`
	InviterID   string `dynamodbav:"inviter_id"`
	InvitedRole string `dynamodbav:"invited_role"`
	InviteCode  string `dynamodbav:"invite_code,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

type invitationAwardItem struct {
	InvitedID     string `dynamodbav:"invited_id"`
	InviterID     string `dynamodbav:"inviter_id"`
	PaymentID     string `dynamodbav:"payment_id"`
	StripeEventID string `dynamodbav:"stripe_event_id"`
	AwardType     string `dynamodbav:"award_type"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// InvitationDynamoRepository persists invitations and awards in DynamoDB.
//
// Table requirements:
//   - invitations: PK invited_id (string)
//   - invitation_awards: PK invited_id (string)
//
// The award table's partition key is the once-per-invited-user constraint.

type InvitationDynamoRepository struct {
	ddb          *dynamodb.Client
	table        string
	awardsTable  string
	creditsTable string
}

var _ interfaces.IInvitationRepository = (*InvitationDynamoRepository)(nil)

func NewInvitationDynamoRepository(ddb *dynamodb.Client) *InvitationDynamoRepository {
	return &InvitationDynamoRepository{
		ddb:          ddb,
		table:        getenvDefault("INVITATIONS_TABLE", defaultInvitationsTableName),
		awardsTable:  getenvDefault("INVITATION_AWARDS_TABLE", defaultInvitationAwardsTableName),
		creditsTable: getenvDefault("PROMO_CREDITS_TABLE", defaultPromoCreditsTableName),
	}
}

func (r *InvitationDynamoRepository) GetByInvitedID(ctx context.Context, invitedID string) (entities.Invitation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"invited_id": &types.AttributeValueMemberS{Value: invitedID},
		},
	})
	if err != nil {
		return entities.Invitation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invitation{}, nil
	}

	var it invitationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invitation{}, err
	}
	return entities.Invitation{
		InvitedID:   it.InvitedID,
		InviterID:   it.InviterID,
		InvitedRole: it.InvitedRole,
		InviteCode:  it.InviteCode,
		CreatedAt:   parseTime(it.CreatedAt),
	}, nil
}

// AwardAtomic writes the award row and the inviter's credit grant in one
// transaction. The conditional put on the award row makes the whole grant
// first-writer-wins; replays and races collapse to ErrConflict.
func (r *InvitationDynamoRepository) AwardAtomic(ctx context.Context, a entities.InvitationAward, credit entities.PromoCredit) error {
	awardAV, err := attributevalue.MarshalMap(invitationAwardItem{
		InvitedID:     a.InvitedID,
		InviterID:     a.InviterID,
		PaymentID:     a.PaymentID,
		StripeEventID: a.StripeEventID,
		AwardType:     string(a.AwardType),
		CreatedAt:     formatTime(a.CreatedAt),
	})
	if err != nil {
		return err
	}
	creditAV, err := attributevalue.MarshalMap(toPromoCreditItem(credit))
	if err != nil {
		return err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.awardsTable),
					Item:                awardAV,
					ConditionExpression: aws.String("attribute_not_exists(invited_id)"),
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.creditsTable),
					Item:                creditAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
		},
	})
	return asConflict(err)
}
