package entities

import "time"

// BookingStatus represents the lifecycle of a booking.
//
// Domain notes:
//   - Regular flow: pending -> confirmed -> in_progress -> delivered.
//   - cancelled may be reached from any non-terminal status.
//   - Transitions out of a terminal status are not guarded here; product
//     intent is still open, so the status field stays freely writable.
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusDelivered  BookingStatus = "delivered"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusInProgress,
		BookingStatusDelivered, BookingStatusCancelled:
		return true
	}
	return false
}

func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusDelivered || s == BookingStatusCancelled
}

// Booking is the central record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-index): status
//
// Derived fields:
//   - TotalPrice and EstimatedDeliveryDate are computed exactly once, at
//     creation, and never recalculated afterwards.
//   - DeliveryVarianceDays and DeliveredOnTime are computed exactly once, at
//     the update that moves the booking to delivered with an actual delivery
//     date; later edits leave them untouched.
type Booking struct {
	ID                    string        `json:"id"`
	CustomerID            string        `json:"customer_id"`
	ServiceID             string        `json:"service_id"`
	Quantity              int           `json:"quantity"`
	TotalPrice            float64       `json:"total_price"`
	Status                BookingStatus `json:"status"`
	EstimatedDeliveryDate time.Time     `json:"estimated_delivery_date"`
	ActualDeliveryDate    *time.Time    `json:"actual_delivery_date,omitempty"`
	Notes                 string        `json:"notes,omitempty"`
	DeliveryVarianceDays  *int          `json:"delivery_variance_days,omitempty"`
	DeliveredOnTime       *bool         `json:"delivered_on_time,omitempty"`
	CreatedAt             time.Time     `json:"created_at"`
	UpdatedAt             time.Time     `json:"updated_at"`
}

// BookingPatch is a partial booking update as supplied by the caller. Nil
// fields are left unchanged, which keeps "no value supplied" distinct from an
// explicit value.
type BookingPatch struct {
	Status             *BookingStatus
	ActualDeliveryDate *time.Time
	Notes              *string
}

// BookingUpdate is the store-facing partial record written by the lifecycle
// manager: the caller's patch plus the variance fields derived on delivery
// and the refreshed updated_at stamp.
type BookingUpdate struct {
	Status               *BookingStatus
	ActualDeliveryDate   *time.Time
	Notes                *string
	DeliveryVarianceDays *int
	DeliveredOnTime      *bool
	UpdatedAt            time.Time
}
