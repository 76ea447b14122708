package request

import (
	"errors"
	"testing"
	"time"

	"logibook/internal/domain/entities"
)

func TestBookingCreateRequest_ResolveQuantity(t *testing.T) {
	r := BookingCreateRequest{}
	if got := r.ResolveQuantity(); got != 1 {
		t.Fatalf("expected default 1, got %d", got)
	}

	zero := 0
	r2 := BookingCreateRequest{Quantity: &zero}
	if got := r2.ResolveQuantity(); got != 0 {
		t.Fatalf("expected explicit 0, got %d", got)
	}

	five := 5
	r3 := BookingCreateRequest{Quantity: &five}
	if got := r3.ResolveQuantity(); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
}

func TestBookingUpdateRequest_ToPatch(t *testing.T) {
	t.Run("empty payload yields empty patch", func(t *testing.T) {
		patch, err := BookingUpdateRequest{}.ToPatch()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if patch.Status != nil || patch.ActualDeliveryDate != nil || patch.Notes != nil {
			t.Fatalf("expected empty patch, got %+v", patch)
		}
	})

	t.Run("full payload", func(t *testing.T) {
		status := "delivered"
		date := "2024-01-14T10:00:00-03:00"
		notes := "left at dock"
		patch, err := BookingUpdateRequest{Status: &status, ActualDeliveryDate: &date, Notes: &notes}.ToPatch()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if patch.Status == nil || *patch.Status != entities.BookingStatusDelivered {
			t.Fatalf("unexpected status: %+v", patch.Status)
		}
		want := time.Date(2024, 1, 14, 13, 0, 0, 0, time.UTC)
		if patch.ActualDeliveryDate == nil || !patch.ActualDeliveryDate.Equal(want) {
			t.Fatalf("expected %v, got %+v", want, patch.ActualDeliveryDate)
		}
		if patch.ActualDeliveryDate.Location() != time.UTC {
			t.Fatalf("expected UTC normalization, got %v", patch.ActualDeliveryDate.Location())
		}
		if patch.Notes == nil || *patch.Notes != notes {
			t.Fatalf("unexpected notes: %+v", patch.Notes)
		}
	})

	t.Run("malformed date", func(t *testing.T) {
		bad := "14/01/2024"
		_, err := BookingUpdateRequest{ActualDeliveryDate: &bad}.ToPatch()
		if !errors.Is(err, ErrInvalidActualDeliveryDate) {
			t.Fatalf("expected ErrInvalidActualDeliveryDate, got %v", err)
		}
	})
}
