package request

import (
	"errors"
	"time"

	"logibook/internal/domain/entities"
)

var ErrInvalidActualDeliveryDate = errors.New("invalid actual delivery date")

// BookingCreateRequest is the payload for booking creation. Quantity is a
// pointer so an omitted field defaults to 1 while an explicit 0 still reaches
// the use case's validation.
type BookingCreateRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
	ServiceID  string `json:"service_id" binding:"required"`
	Quantity   *int   `json:"quantity"`
	Notes      string `json:"notes"`
}

func (r BookingCreateRequest) ResolveQuantity() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

// BookingUpdateRequest is a partial booking update. Absent fields stay
// untouched; every field present is applied, so "not supplied" and "supplied"
// remain distinguishable after binding.
type BookingUpdateRequest struct {
	Status             *string `json:"status"`
	ActualDeliveryDate *string `json:"actual_delivery_date"`
	Notes              *string `json:"notes"`
}

// ToPatch converts the raw payload into a domain patch, parsing the actual
// delivery date as RFC 3339. Status validity is the use case's concern.
func (r BookingUpdateRequest) ToPatch() (entities.BookingPatch, error) {
	patch := entities.BookingPatch{Notes: r.Notes}

	if r.Status != nil {
		st := entities.BookingStatus(*r.Status)
		patch.Status = &st
	}
	if r.ActualDeliveryDate != nil {
		t, err := time.Parse(time.RFC3339, *r.ActualDeliveryDate)
		if err != nil {
			return entities.BookingPatch{}, ErrInvalidActualDeliveryDate
		}
		utc := t.UTC()
		patch.ActualDeliveryDate = &utc
	}
	return patch, nil
}
