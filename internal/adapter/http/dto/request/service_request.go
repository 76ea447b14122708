package request

// ServiceCreateRequest is the payload for adding a service to the catalog.
// Type must be one of the fixed service types; the use case validates it
// together with the price and day values.
type ServiceCreateRequest struct {
	Name                  string  `json:"name" binding:"required"`
	Type                  string  `json:"type" binding:"required"`
	Description           string  `json:"description"`
	BasePrice             float64 `json:"base_price"`
	EstimatedDeliveryDays int     `json:"estimated_delivery_days"`
}
