package repository

import (
	"context"
	"errors"
	"time"

	"comcraft/internal/domain/entities"
	"comcraft/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCustomersTableName = "customers"

type customerItem struct {
	DiscordID string `dynamodbav:"discord_id"`
	ID        string `dynamodbav:"id"`
	Tag       string `dynamodbav:"tag"`
	Email     string `dynamodbav:"email"`
	AvatarURL string `dynamodbav:"avatar_url"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// CustomerDynamoRepository persists Customer entities in DynamoDB.
//
// Table requirements:
//   - PK: discord_id (string)
//
// Discord id as PK makes the identity key the uniqueness constraint: the
// conditional put below rejects the loser of a concurrent create race, which
// the use case then retries as an update.
type CustomerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
	}
}

func (r *CustomerDynamoRepository) GetByDiscordID(ctx context.Context, discordID string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"discord_id": &types.AttributeValueMemberS{Value: discordID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	av, err := attributevalue.MarshalMap(toCustomerItem(c))
	if err != nil {
		return entities.Customer{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#discord_id)"),
		ExpressionAttributeNames: map[string]string{
			"#discord_id": "discord_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Lost a create race; the row exists, refresh it instead.
			return r.UpdateProfile(ctx, c.DiscordID, entities.CustomerIdentity{
				DiscordID: c.DiscordID,
				Tag:       c.Tag,
				Email:     c.Email,
				AvatarURL: c.AvatarURL,
			})
		}
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) UpdateProfile(ctx context.Context, discordID string, identity entities.CustomerIdentity) (entities.Customer, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"discord_id": &types.AttributeValueMemberS{Value: discordID},
		},
		ConditionExpression: aws.String("attribute_exists(#discord_id)"),
		UpdateExpression:    aws.String("SET #tag = :tag, #email = :email, #avatar_url = :avatar_url, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tag":        &types.AttributeValueMemberS{Value: identity.Tag},
			":email":      &types.AttributeValueMemberS{Value: identity.Email},
			":avatar_url": &types.AttributeValueMemberS{Value: identity.AvatarURL},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#discord_id": "discord_id",
			"#tag":        "tag",
			"#email":      "email",
			"#avatar_url": "avatar_url",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Customer{}, nil
		}
		return entities.Customer{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func toCustomerItem(c entities.Customer) customerItem {
	return customerItem{
		DiscordID: c.DiscordID,
		ID:        c.ID,
		Tag:       c.Tag,
		Email:     c.Email,
		AvatarURL: c.AvatarURL,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCustomerItem(it customerItem) entities.Customer {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Customer{
		DiscordID: it.DiscordID,
		ID:        it.ID,
		Tag:       it.Tag,
		Email:     it.Email,
		AvatarURL: it.AvatarURL,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
