package interfaces

import (
	"context"
	"logibook/internal/domain/entities"
)

// IServiceRepository abstracts DynamoDB persistence for Service.
//
// GetByName exists for bulk import, which references services by their
// catalog name rather than by id.

type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	GetByName(ctx context.Context, name string) (entities.Service, error)
	List(ctx context.Context) ([]entities.Service, error)
	Count(ctx context.Context) (int, error)
}
