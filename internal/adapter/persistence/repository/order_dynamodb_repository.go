package repository

import (
	"context"
	"strconv"
	"time"

	"comcraft/internal/domain/entities"
	"comcraft/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersNumberIndex      = "order_number-index"
	ordersCustomerIDIndex  = "customer_id-index"
)

type orderItem struct {
	ID            string `dynamodbav:"id"`
	OrderNumber   string `dynamodbav:"order_number"`
	CustomerID    string `dynamodbav:"customer_id"`
	DiscordID     string `dynamodbav:"discord_id"`
	ServiceType   string `dynamodbav:"service_type"`
	ServiceName   string `dynamodbav:"service_name"`
	Price         string `dynamodbav:"price"`
	Budget        string `dynamodbav:"budget"`
	Timeline      string `dynamodbav:"timeline"`
	Status        string `dynamodbav:"status"`
	PaymentStatus string `dynamodbav:"payment_status"`
	PaymentLink   string `dynamodbav:"payment_link"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_number-index (PK: order_number)
//   - GSI: customer_id-index (PK: customer_id)
type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersNumberIndex),
		KeyConditionExpression: aws.String("order_number = :num"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":num": &types.AttributeValueMemberS{Value: orderNumber},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Items) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersCustomerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromOrderItem(it))
	}
	return orders, nil
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		CustomerID:    o.CustomerID,
		DiscordID:     o.DiscordID,
		ServiceType:   o.ServiceType,
		ServiceName:   o.ServiceName,
		Price:         floatToString(o.Price),
		Budget:        o.Budget,
		Timeline:      o.Timeline,
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		PaymentLink:   o.PaymentLink,
		CreatedAt:     o.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	price, _ := strconv.ParseFloat(it.Price, 64)
	return entities.Order{
		ID:            it.ID,
		OrderNumber:   it.OrderNumber,
		CustomerID:    it.CustomerID,
		DiscordID:     it.DiscordID,
		ServiceType:   it.ServiceType,
		ServiceName:   it.ServiceName,
		Price:         price,
		Budget:        it.Budget,
		Timeline:      it.Timeline,
		Status:        entities.OrderStatus(it.Status),
		PaymentStatus: entities.PaymentStatus(it.PaymentStatus),
		PaymentLink:   it.PaymentLink,
		CreatedAt:     createdAt,
	}
}
