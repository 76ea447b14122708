package entities

import "time"

// ServiceType is the fixed catalog of offered supply-chain services.
type ServiceType string

const (
	ServiceTypeLogistics      ServiceType = "logistics"
	ServiceTypeTransportation ServiceType = "transportation"
	ServiceTypeConsulting     ServiceType = "consulting"
)

func (t ServiceType) IsValid() bool {
	switch t {
	case ServiceTypeLogistics, ServiceTypeTransportation, ServiceTypeConsulting:
		return true
	}
	return false
}

// Service is a bookable service persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (name-index): name
//
// BasePrice and EstimatedDeliveryDays feed the booking quote: the calculator
// derives total price and estimated delivery date from them at creation time.
// Services are append-only; bulk import resolves them by name.
type Service struct {
	ID                    string      `json:"id"`
	Name                  string      `json:"name"`
	Type                  ServiceType `json:"type"`
	Description           string      `json:"description,omitempty"`
	BasePrice             float64     `json:"base_price"`
	EstimatedDeliveryDays int         `json:"estimated_delivery_days"`
	CreatedAt             time.Time   `json:"created_at"`
}
