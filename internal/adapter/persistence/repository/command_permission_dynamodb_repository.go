package repository

import (
	"context"

	"comcraft/internal/domain/entities"
	"comcraft/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCommandPermissionsTableName = "command_permissions"

type commandPermissionItem struct {
	GuildID        string   `dynamodbav:"guild_id"`
	CommandName    string   `dynamodbav:"command_name"`
	AllowedRoleIDs []string `dynamodbav:"allowed_role_ids"`
}

// CommandPermissionDynamoRepository persists per-guild command allow-lists.
//
// Table requirements:
//   - PK: guild_id (string), SK: command_name (string)
//
// A missing row maps to a zero-value rule, which the gate reads as
// "unrestricted".
type CommandPermissionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICommandPermissionRepository = (*CommandPermissionDynamoRepository)(nil)

func NewCommandPermissionDynamoRepository(ddb *dynamodb.Client) *CommandPermissionDynamoRepository {
	return &CommandPermissionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COMMAND_PERMISSIONS_TABLE", defaultCommandPermissionsTableName),
	}
}

func (r *CommandPermissionDynamoRepository) GetRule(ctx context.Context, guildID, commandName string) (entities.CommandPermissionRule, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"guild_id":     &types.AttributeValueMemberS{Value: guildID},
			"command_name": &types.AttributeValueMemberS{Value: commandName},
		},
	})
	if err != nil {
		return entities.CommandPermissionRule{}, err
	}
	if len(out.Item) == 0 {
		return entities.CommandPermissionRule{}, nil
	}

	var it commandPermissionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CommandPermissionRule{}, err
	}
	return fromCommandPermissionItem(it), nil
}

func (r *CommandPermissionDynamoRepository) PutRule(ctx context.Context, rule entities.CommandPermissionRule) (entities.CommandPermissionRule, error) {
	av, err := attributevalue.MarshalMap(commandPermissionItem{
		GuildID:        rule.GuildID,
		CommandName:    rule.CommandName,
		AllowedRoleIDs: rule.AllowedRoleIDs,
	})
	if err != nil {
		return entities.CommandPermissionRule{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.CommandPermissionRule{}, err
	}
	return rule, nil
}

func fromCommandPermissionItem(it commandPermissionItem) entities.CommandPermissionRule {
	return entities.CommandPermissionRule{
		GuildID:        it.GuildID,
		CommandName:    it.CommandName,
		AllowedRoleIDs: it.AllowedRoleIDs,
	}
}
