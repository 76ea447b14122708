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
	ErrInvalidCustomerName  = errors.New("invalid customer name")
	ErrInvalidCustomerEmail = errors.New("invalid customer email")
)

// ICustomerUseCase exposes customer reference-data operations. Customers are
// append-only: there is no update or delete.

type ICustomerUseCase interface {
	Create(ctx context.Context, name, email, phone, address string) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	// FindOrCreateByEmail resolves a customer by email, creating one with
	// the given name when no match exists. Bulk import keys on this.
	FindOrCreateByEmail(ctx context.Context, name, email string) (entities.Customer, error)
}

type CustomerUseCase struct {
	repo interfaces.ICustomerRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

func (u *CustomerUseCase) Create(ctx context.Context, name, email, phone, address string) (entities.Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Customer{}, ErrInvalidCustomerName
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return entities.Customer{}, ErrInvalidCustomerEmail
	}

	c := entities.Customer{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Phone:     strings.TrimSpace(phone),
		Address:   strings.TrimSpace(address),
		CreatedAt: time.Now().UTC(),
	}
	return u.repo.Create(ctx, c)
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) List(ctx context.Context) ([]entities.Customer, error) {
	return u.repo.List(ctx)
}

func (u *CustomerUseCase) FindOrCreateByEmail(ctx context.Context, name, email string) (entities.Customer, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return entities.Customer{}, ErrInvalidCustomerEmail
	}

	existing, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return entities.Customer{}, err
	}
	if existing.ID != "" {
		return existing, nil
	}

	// No uniqueness guard beyond the lookup above: concurrent imports of the
	// same email can race and create duplicates unless the store enforces
	// email uniqueness.
	return u.Create(ctx, name, email, "", "")
}
