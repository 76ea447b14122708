package response

import (
	"time"

	"logibook/internal/domain/entities"
)

type BookingResponse struct {
	ID                    string     `json:"id"`
	CustomerID            string     `json:"customer_id"`
	ServiceID             string     `json:"service_id"`
	Quantity              int        `json:"quantity"`
	TotalPrice            float64    `json:"total_price"`
	Status                string     `json:"status"`
	EstimatedDeliveryDate time.Time  `json:"estimated_delivery_date"`
	ActualDeliveryDate    *time.Time `json:"actual_delivery_date,omitempty"`
	Notes                 string     `json:"notes,omitempty"`
	DeliveryVarianceDays  *int       `json:"delivery_variance_days,omitempty"`
	DeliveredOnTime       *bool      `json:"delivered_on_time,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		ID:                    b.ID,
		CustomerID:            b.CustomerID,
		ServiceID:             b.ServiceID,
		Quantity:              b.Quantity,
		TotalPrice:            b.TotalPrice,
		Status:                string(b.Status),
		EstimatedDeliveryDate: b.EstimatedDeliveryDate,
		ActualDeliveryDate:    b.ActualDeliveryDate,
		Notes:                 b.Notes,
		DeliveryVarianceDays:  b.DeliveryVarianceDays,
		DeliveredOnTime:       b.DeliveredOnTime,
		CreatedAt:             b.CreatedAt,
		UpdatedAt:             b.UpdatedAt,
	}
}

func FromBookings(bookings []entities.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromBooking(b))
	}
	return out
}
