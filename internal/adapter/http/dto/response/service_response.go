package response

import (
	"time"

	"logibook/internal/domain/entities"
)

type ServiceResponse struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	Type                  string    `json:"type"`
	Description           string    `json:"description,omitempty"`
	BasePrice             float64   `json:"base_price"`
	EstimatedDeliveryDays int       `json:"estimated_delivery_days"`
	CreatedAt             time.Time `json:"created_at"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:                    s.ID,
		Name:                  s.Name,
		Type:                  string(s.Type),
		Description:           s.Description,
		BasePrice:             s.BasePrice,
		EstimatedDeliveryDays: s.EstimatedDeliveryDays,
		CreatedAt:             s.CreatedAt,
	}
}

func FromServices(services []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromService(s))
	}
	return out
}
