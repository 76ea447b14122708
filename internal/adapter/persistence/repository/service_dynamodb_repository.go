package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"logibook/internal/domain/entities"
	"logibook/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultServicesTableName = "services"
	servicesNameIndex        = "name-index"
)

type serviceItem struct {
	ID                    string  `dynamodbav:"id"`
	Name                  string  `dynamodbav:"name"`
	Type                  string  `dynamodbav:"type"`
	Description           string  `dynamodbav:"description,omitempty"`
	BasePrice             float64 `dynamodbav:"base_price"`
	EstimatedDeliveryDays int     `dynamodbav:"estimated_delivery_days"`
	CreatedAt             string  `dynamodbav:"created_at"`
}

// ServiceDynamoRepository persists Service entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: name-index (PK: name)

type ServiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb *dynamodb.Client) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICES_TABLE", defaultServicesTableName),
	}
}

func (r *ServiceDynamoRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	av, err := attributevalue.MarshalMap(toServiceItem(s))
	if err != nil {
		return entities.Service{}, err
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
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Service{}, err
	}
	if len(out.Item) == 0 {
		return entities.Service{}, nil
	}

	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it)
}

func (r *ServiceDynamoRepository) GetByName(ctx context.Context, name string) (entities.Service, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(servicesNameIndex),
		KeyConditionExpression: aws.String("#name = :name"),
		ExpressionAttributeNames: map[string]string{
			"#name": "name",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name": &types.AttributeValueMemberS{Value: name},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Service{}, err
	}
	if len(out.Items) == 0 {
		return entities.Service{}, nil
	}

	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it)
}

func (r *ServiceDynamoRepository) List(ctx context.Context) ([]entities.Service, error) {
	items, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	services := make([]entities.Service, 0, len(items))
	for _, raw := range items {
		var it serviceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			log.Printf("[service][repository] skipping item: %v", err)
			continue
		}
		s, err := fromServiceItem(it)
		if err != nil {
			log.Printf("[service][repository] skipping item: %v", err)
			continue
		}
		services = append(services, s)
	}
	return services, nil
}

func (r *ServiceDynamoRepository) Count(ctx context.Context) (int, error) {
	return countAll(ctx, r.ddb, r.tableName)
}

func toServiceItem(s entities.Service) serviceItem {
	return serviceItem{
		ID:                    s.ID,
		Name:                  s.Name,
		Type:                  string(s.Type),
		Description:           s.Description,
		BasePrice:             s.BasePrice,
		EstimatedDeliveryDays: s.EstimatedDeliveryDays,
		CreatedAt:             s.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromServiceItem(it serviceItem) (entities.Service, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, it.CreatedAt)
	if err != nil {
		return entities.Service{}, fmt.Errorf("service %s: bad created_at: %w", it.ID, err)
	}
	return entities.Service{
		ID:                    it.ID,
		Name:                  it.Name,
		Type:                  entities.ServiceType(it.Type),
		Description:           it.Description,
		BasePrice:             it.BasePrice,
		EstimatedDeliveryDays: it.EstimatedDeliveryDays,
		CreatedAt:             createdAt,
	}, nil
}
