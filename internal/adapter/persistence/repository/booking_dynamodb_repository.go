package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"logibook/internal/domain/entities"
	"logibook/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBookingsTableName = "bookings"
	bookingsStatusIndex      = "status-index"
)

type bookingItem struct {
	ID                    string  `dynamodbav:"id"`
	CustomerID            string  `dynamodbav:"customer_id"`
	ServiceID             string  `dynamodbav:"service_id"`
	Quantity              int     `dynamodbav:"quantity"`
	TotalPrice            float64 `dynamodbav:"total_price"`
	Status                string  `dynamodbav:"status"`
	EstimatedDeliveryDate string  `dynamodbav:"estimated_delivery_date"`
	ActualDeliveryDate    string  `dynamodbav:"actual_delivery_date,omitempty"`
	Notes                 string  `dynamodbav:"notes,omitempty"`
	DeliveryVarianceDays  *int    `dynamodbav:"delivery_variance_days,omitempty"`
	DeliveredOnTime       *bool   `dynamodbav:"delivered_on_time,omitempty"`
	CreatedAt             string  `dynamodbav:"created_at"`
	UpdatedAt             string  `dynamodbav:"updated_at"`
}

// BookingDynamoRepository persists Booking entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status)
//
// Timestamps are stored as RFC3339Nano UTC strings and mapped back
// field-by-field; nothing is inferred from attribute names.

type BookingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
	}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	av, err := attributevalue.MarshalMap(toBookingItem(b))
	if err != nil {
		return entities.Booking{}, err
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
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it)
}

// UpdateFields writes only the supplied fields in a single UpdateItem call.
// A missing booking yields the zero value, never an error.
func (r *BookingDynamoRepository) UpdateFields(ctx context.Context, id string, upd entities.BookingUpdate) (entities.Booking, error) {
	exprParts := []string{"#updated_at = :updated_at"}
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: upd.UpdatedAt.UTC().Format(time.RFC3339Nano)},
	}
	names := map[string]string{
		"#updated_at": "updated_at",
	}

	if upd.Status != nil {
		exprParts = append(exprParts, "#status = :status")
		values[":status"] = &types.AttributeValueMemberS{Value: string(*upd.Status)}
		names["#status"] = "status"
	}
	if upd.ActualDeliveryDate != nil {
		exprParts = append(exprParts, "#actual_delivery_date = :actual_delivery_date")
		values[":actual_delivery_date"] = &types.AttributeValueMemberS{Value: upd.ActualDeliveryDate.UTC().Format(time.RFC3339Nano)}
		names["#actual_delivery_date"] = "actual_delivery_date"
	}
	if upd.Notes != nil {
		exprParts = append(exprParts, "#notes = :notes")
		values[":notes"] = &types.AttributeValueMemberS{Value: *upd.Notes}
		names["#notes"] = "notes"
	}
	if upd.DeliveryVarianceDays != nil {
		exprParts = append(exprParts, "#delivery_variance_days = :delivery_variance_days")
		values[":delivery_variance_days"] = &types.AttributeValueMemberN{Value: strconv.Itoa(*upd.DeliveryVarianceDays)}
		names["#delivery_variance_days"] = "delivery_variance_days"
	}
	if upd.DeliveredOnTime != nil {
		exprParts = append(exprParts, "#delivered_on_time = :delivered_on_time")
		values[":delivered_on_time"] = &types.AttributeValueMemberBOOL{Value: *upd.DeliveredOnTime}
		names["#delivered_on_time"] = "delivered_on_time"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String("SET " + strings.Join(exprParts, ", ")),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Booking{}, nil
		}
		return entities.Booking{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it)
}

func (r *BookingDynamoRepository) List(ctx context.Context) ([]entities.Booking, error) {
	items, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	return unmarshalBookings(items), nil
}

func (r *BookingDynamoRepository) ListByStatus(ctx context.Context, status entities.BookingStatus) ([]entities.Booking, error) {
	items, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(bookingsStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalBookings(items), nil
}

func (r *BookingDynamoRepository) ListDelivered(ctx context.Context) ([]entities.Booking, error) {
	items, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(bookingsStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		FilterExpression:       aws.String("attribute_exists(#actual_delivery_date)"),
		ExpressionAttributeNames: map[string]string{
			"#status":               "status",
			"#actual_delivery_date": "actual_delivery_date",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(entities.BookingStatusDelivered)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalBookings(items), nil
}

func (r *BookingDynamoRepository) Count(ctx context.Context) (int, error) {
	return countAll(ctx, r.ddb, r.tableName)
}

// CountByStatus scans the status attribute and groups client side; DynamoDB
// has no server-side group-by.
func (r *BookingDynamoRepository) CountByStatus(ctx context.Context) (map[entities.BookingStatus]int, error) {
	counts := make(map[entities.BookingStatus]int)
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:            aws.String(r.tableName),
			ProjectionExpression: aws.String("#status"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			sv, ok := raw["status"].(*types.AttributeValueMemberS)
			if !ok {
				continue
			}
			counts[entities.BookingStatus(sv.Value)]++
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return counts, nil
}

func (r *BookingDynamoRepository) CountDeliveredOnTime(ctx context.Context) (int, int, error) {
	items, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(bookingsStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		FilterExpression:       aws.String("attribute_exists(#delivered_on_time)"),
		ProjectionExpression:   aws.String("#delivered_on_time"),
		ExpressionAttributeNames: map[string]string{
			"#status":            "status",
			"#delivered_on_time": "delivered_on_time",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(entities.BookingStatusDelivered)},
		},
	})
	if err != nil {
		return 0, 0, err
	}

	delivered := 0
	onTime := 0
	for _, raw := range items {
		bv, ok := raw["delivered_on_time"].(*types.AttributeValueMemberBOOL)
		if !ok {
			continue
		}
		delivered++
		if bv.Value {
			onTime++
		}
	}
	return delivered, onTime, nil
}

// unmarshalBookings maps raw items on the list read path. Items that fail to
// unmarshal or carry unparsable timestamps are logged and skipped so a single
// bad record cannot take down a listing or an analytics aggregate. Point reads
// stay strict.
func unmarshalBookings(items []map[string]types.AttributeValue) []entities.Booking {
	bookings := make([]entities.Booking, 0, len(items))
	for _, raw := range items {
		var it bookingItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			log.Printf("[booking][repository] skipping item: %v", err)
			continue
		}
		b, err := fromBookingItem(it)
		if err != nil {
			log.Printf("[booking][repository] skipping item: %v", err)
			continue
		}
		bookings = append(bookings, b)
	}
	return bookings
}

func toBookingItem(b entities.Booking) bookingItem {
	it := bookingItem{
		ID:                    b.ID,
		CustomerID:            b.CustomerID,
		ServiceID:             b.ServiceID,
		Quantity:              b.Quantity,
		TotalPrice:            b.TotalPrice,
		Status:                string(b.Status),
		EstimatedDeliveryDate: b.EstimatedDeliveryDate.UTC().Format(time.RFC3339Nano),
		Notes:                 b.Notes,
		DeliveryVarianceDays:  b.DeliveryVarianceDays,
		DeliveredOnTime:       b.DeliveredOnTime,
		CreatedAt:             b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:             b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if b.ActualDeliveryDate != nil {
		it.ActualDeliveryDate = b.ActualDeliveryDate.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromBookingItem(it bookingItem) (entities.Booking, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, it.CreatedAt)
	if err != nil {
		return entities.Booking{}, fmt.Errorf("booking %s: bad created_at: %w", it.ID, err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	if err != nil {
		return entities.Booking{}, fmt.Errorf("booking %s: bad updated_at: %w", it.ID, err)
	}
	estimated, err := time.Parse(time.RFC3339Nano, it.EstimatedDeliveryDate)
	if err != nil {
		return entities.Booking{}, fmt.Errorf("booking %s: bad estimated_delivery_date: %w", it.ID, err)
	}

	b := entities.Booking{
		ID:                    it.ID,
		CustomerID:            it.CustomerID,
		ServiceID:             it.ServiceID,
		Quantity:              it.Quantity,
		TotalPrice:            it.TotalPrice,
		Status:                entities.BookingStatus(it.Status),
		EstimatedDeliveryDate: estimated,
		Notes:                 it.Notes,
		DeliveryVarianceDays:  it.DeliveryVarianceDays,
		DeliveredOnTime:       it.DeliveredOnTime,
		CreatedAt:             createdAt,
		UpdatedAt:             updatedAt,
	}
	if it.ActualDeliveryDate != "" {
		actual, err := time.Parse(time.RFC3339Nano, it.ActualDeliveryDate)
		if err != nil {
			return entities.Booking{}, fmt.Errorf("booking %s: bad actual_delivery_date: %w", it.ID, err)
		}
		b.ActualDeliveryDate = &actual
	}
	return b, nil
}
