package interfaces

import (
	"context"
	"logibook/internal/domain/entities"
)

// ICustomerRepository abstracts DynamoDB persistence for Customer.
//
// Lookups return the zero value (empty ID) when nothing matches; callers map
// that to their own not-found errors.

type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	GetByEmail(ctx context.Context, email string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	Count(ctx context.Context) (int, error)
}
