package repository

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func marshalBookingItem(t *testing.T, it bookingItem) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		t.Fatalf("marshal booking item: %v", err)
	}
	return av
}

func validBookingItem(id string) bookingItem {
	return bookingItem{
		ID:                    id,
		CustomerID:            "cust-1",
		ServiceID:             "svc-1",
		Quantity:              2,
		TotalPrice:            150.0,
		Status:                "pending",
		EstimatedDeliveryDate: "2026-01-15T00:00:00Z",
		CreatedAt:             "2026-01-10T09:30:00Z",
		UpdatedAt:             "2026-01-10T09:30:00Z",
	}
}

func TestUnmarshalBookings(t *testing.T) {
	t.Run("maps well formed items", func(t *testing.T) {
		items := []map[string]types.AttributeValue{
			marshalBookingItem(t, validBookingItem("book-1")),
			marshalBookingItem(t, validBookingItem("book-2")),
		}

		bookings := unmarshalBookings(items)
		if len(bookings) != 2 {
			t.Fatalf("expected 2 bookings, got %d", len(bookings))
		}
		if bookings[0].ID != "book-1" || bookings[1].ID != "book-2" {
			t.Fatalf("unexpected ids: %s, %s", bookings[0].ID, bookings[1].ID)
		}
	})

	t.Run("skips items with unparsable timestamps", func(t *testing.T) {
		bad := validBookingItem("book-bad")
		bad.CreatedAt = "yesterday"
		items := []map[string]types.AttributeValue{
			marshalBookingItem(t, validBookingItem("book-1")),
			marshalBookingItem(t, bad),
			marshalBookingItem(t, validBookingItem("book-2")),
		}

		bookings := unmarshalBookings(items)
		if len(bookings) != 2 {
			t.Fatalf("expected the bad record to be skipped, got %d bookings", len(bookings))
		}
		for _, b := range bookings {
			if b.ID == "book-bad" {
				t.Fatalf("bad record should not survive unmarshalling")
			}
		}
	})

	t.Run("skips items that fail attribute unmarshalling", func(t *testing.T) {
		broken := map[string]types.AttributeValue{
			"id":       &types.AttributeValueMemberS{Value: "book-broken"},
			"quantity": &types.AttributeValueMemberS{Value: "two"},
		}
		items := []map[string]types.AttributeValue{
			broken,
			marshalBookingItem(t, validBookingItem("book-1")),
		}

		bookings := unmarshalBookings(items)
		if len(bookings) != 1 || bookings[0].ID != "book-1" {
			t.Fatalf("expected only the valid booking, got %+v", bookings)
		}
	})

	t.Run("empty input yields empty non-nil slice", func(t *testing.T) {
		bookings := unmarshalBookings(nil)
		if bookings == nil || len(bookings) != 0 {
			t.Fatalf("expected empty slice, got %v", bookings)
		}
	})
}

func TestFromBookingItem(t *testing.T) {
	t.Run("maps every field", func(t *testing.T) {
		variance := -1
		onTime := true
		it := validBookingItem("book-1")
		it.ActualDeliveryDate = "2026-01-14T00:00:00Z"
		it.Notes = "left at reception"
		it.DeliveryVarianceDays = &variance
		it.DeliveredOnTime = &onTime

		b, err := fromBookingItem(it)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.ID != "book-1" || b.CustomerID != "cust-1" || b.ServiceID != "svc-1" {
			t.Fatalf("unexpected identifiers: %+v", b)
		}
		if b.Quantity != 2 || b.TotalPrice != 150.0 {
			t.Fatalf("unexpected quantity or price: %+v", b)
		}
		if b.ActualDeliveryDate == nil || !b.ActualDeliveryDate.Equal(time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected actual delivery date: %v", b.ActualDeliveryDate)
		}
		if b.DeliveryVarianceDays == nil || *b.DeliveryVarianceDays != -1 {
			t.Fatalf("unexpected variance: %v", b.DeliveryVarianceDays)
		}
		if b.DeliveredOnTime == nil || !*b.DeliveredOnTime {
			t.Fatalf("unexpected on-time flag: %v", b.DeliveredOnTime)
		}
	})

	t.Run("rejects bad created_at", func(t *testing.T) {
		it := validBookingItem("book-1")
		it.CreatedAt = "not-a-date"
		if _, err := fromBookingItem(it); err == nil {
			t.Fatalf("expected an error for a bad created_at")
		}
	})

	t.Run("rejects bad estimated_delivery_date", func(t *testing.T) {
		it := validBookingItem("book-1")
		it.EstimatedDeliveryDate = "soon"
		if _, err := fromBookingItem(it); err == nil {
			t.Fatalf("expected an error for a bad estimated_delivery_date")
		}
	})

	t.Run("rejects bad actual_delivery_date", func(t *testing.T) {
		it := validBookingItem("book-1")
		it.ActualDeliveryDate = "someday"
		if _, err := fromBookingItem(it); err == nil {
			t.Fatalf("expected an error for a bad actual_delivery_date")
		}
	})
}
