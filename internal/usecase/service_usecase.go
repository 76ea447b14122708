package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"logibook/internal/domain/entities"
	"logibook/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidServiceName  = errors.New("invalid service name")
	ErrInvalidServiceType  = errors.New("invalid service type")
	ErrInvalidBasePrice    = errors.New("invalid base price")
	ErrInvalidDeliveryDays = errors.New("invalid estimated delivery days")
)

// IServiceUseCase exposes service catalog operations. Like customers,
// services are append-only reference data.

type IServiceUseCase interface {
	Create(ctx context.Context, name string, serviceType string, description string, basePrice float64, estimatedDeliveryDays int) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	List(ctx context.Context) ([]entities.Service, error)
}

type ServiceUseCase struct {
	repo interfaces.IServiceRepository
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(repo interfaces.IServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo}
}

func (u *ServiceUseCase) Create(ctx context.Context, name string, serviceType string, description string, basePrice float64, estimatedDeliveryDays int) (entities.Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Service{}, ErrInvalidServiceName
	}
	st := entities.ServiceType(strings.TrimSpace(serviceType))
	if !st.IsValid() {
		return entities.Service{}, ErrInvalidServiceType
	}
	if basePrice < 0 {
		return entities.Service{}, ErrInvalidBasePrice
	}
	if estimatedDeliveryDays < 0 {
		return entities.Service{}, ErrInvalidDeliveryDays
	}

	s := entities.Service{
		ID:                    uuid.NewString(),
		Name:                  name,
		Type:                  st,
		Description:           strings.TrimSpace(description),
		BasePrice:             basePrice,
		EstimatedDeliveryDays: estimatedDeliveryDays,
		CreatedAt:             time.Now().UTC(),
	}
	return u.repo.Create(ctx, s)
}

func (u *ServiceUseCase) GetByID(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

func (u *ServiceUseCase) List(ctx context.Context) ([]entities.Service, error) {
	return u.repo.List(ctx)
}
