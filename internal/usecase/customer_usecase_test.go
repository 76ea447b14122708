package usecase

import (
	"context"
	"errors"
	"testing"

	"logibook/internal/domain/entities"
	mock_interfaces "logibook/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCustomerUseCase_Create(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc := NewCustomerUseCase(nil)
		_, err := uc.Create(context.Background(), "  ", "a@b.com", "", "")
		if !errors.Is(err, ErrInvalidCustomerName) {
			t.Fatalf("expected ErrInvalidCustomerName, got %v", err)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		uc := NewCustomerUseCase(nil)
		_, err := uc.Create(context.Background(), "Alice", "", "", "")
		if !errors.Is(err, ErrInvalidCustomerEmail) {
			t.Fatalf("expected ErrInvalidCustomerEmail, got %v", err)
		}
	})

	t.Run("success trims fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Customer{})).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.ID == "" {
					t.Fatalf("expected generated id")
				}
				if c.Name != "Alice" || c.Email != "a@b.com" || c.Phone != "555" || c.Address != "Main St" {
					t.Fatalf("unexpected customer: %+v", c)
				}
				if c.CreatedAt.IsZero() {
					t.Fatalf("expected created at")
				}
				return c, nil
			},
		)

		res, err := uc.Create(context.Background(), " Alice ", " a@b.com ", " 555 ", " Main St ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestCustomerUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewCustomerUseCase(nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{}, nil)

		_, err := uc.GetByID(context.Background(), "cust-1")
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1"}, nil)

		res, err := uc.GetByID(context.Background(), " cust-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "cust-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestCustomerUseCase_FindOrCreateByEmail(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		uc := NewCustomerUseCase(nil)
		_, err := uc.FindOrCreateByEmail(context.Background(), "Alice", " ")
		if !errors.Is(err, ErrInvalidCustomerEmail) {
			t.Fatalf("expected ErrInvalidCustomerEmail, got %v", err)
		}
	})

	t.Run("existing customer is reused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)
		existing := entities.Customer{ID: "cust-1", Name: "Alice", Email: "a@b.com"}
		repo.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(existing, nil)

		res, err := uc.FindOrCreateByEmail(context.Background(), "Someone Else", " a@b.com ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "cust-1" || res.Name != "Alice" {
			t.Fatalf("expected existing customer, got %+v", res)
		}
	})

	t.Run("missing customer is created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(entities.Customer{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Customer{})).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.Name != "Alice" || c.Email != "a@b.com" {
					t.Fatalf("unexpected customer: %+v", c)
				}
				return c, nil
			},
		)

		res, err := uc.FindOrCreateByEmail(context.Background(), "Alice", "a@b.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)
		repo.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(entities.Customer{}, errors.New("db"))

		_, err := uc.FindOrCreateByEmail(context.Background(), "Alice", "a@b.com")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
