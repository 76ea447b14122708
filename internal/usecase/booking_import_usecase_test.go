package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"logibook/internal/domain/entities"
	"logibook/internal/usecase/interfaces"
	mock_interfaces "logibook/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type importFixture struct {
	uc        *BookingImportUseCase
	decoder   *mock_interfaces.MockIRowDecoder
	customers *mock_interfaces.MockICustomerRepository
	services  *mock_interfaces.MockIServiceRepository
	bookings  *mock_interfaces.MockIBookingRepository
}

// The import use case is exercised with real customer and booking use cases
// over mocked repositories, so row handling covers the full path down to
// persistence.
func newImportFixture(t *testing.T) importFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	decoder := mock_interfaces.NewMockIRowDecoder(ctrl)
	customerRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
	serviceRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
	bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)

	customers := NewCustomerUseCase(customerRepo)
	bookings := NewBookingUseCase(bookingRepo, customerRepo, serviceRepo)

	return importFixture{
		uc:        NewBookingImportUseCase(decoder, customers, serviceRepo, bookings),
		decoder:   decoder,
		customers: customerRepo,
		services:  serviceRepo,
		bookings:  bookingRepo,
	}
}

func TestBookingImportUseCase_ImportBookings(t *testing.T) {
	t.Run("decode error propagates", func(t *testing.T) {
		f := newImportFixture(t)
		f.decoder.EXPECT().Decode("data.txt", gomock.Any()).Return(interfaces.Table{}, interfaces.ErrUnsupportedFileType)

		_, err := f.uc.ImportBookings(context.Background(), "data.txt", strings.NewReader(""))
		if !errors.Is(err, interfaces.ErrUnsupportedFileType) {
			t.Fatalf("expected ErrUnsupportedFileType, got %v", err)
		}
	})

	t.Run("missing required columns fails whole upload", func(t *testing.T) {
		f := newImportFixture(t)
		f.decoder.EXPECT().Decode("data.csv", gomock.Any()).Return(interfaces.Table{
			Columns: []string{"customer_name", "quantity"},
			Rows:    []map[string]string{{"customer_name": "Alice"}},
		}, nil)

		_, err := f.uc.ImportBookings(context.Background(), "data.csv", strings.NewReader(""))
		if !errors.Is(err, ErrMissingRequiredColumns) {
			t.Fatalf("expected ErrMissingRequiredColumns, got %v", err)
		}
		if !strings.Contains(err.Error(), "customer_email") || !strings.Contains(err.Error(), "service_name") {
			t.Fatalf("expected missing column names in error, got %v", err)
		}
	})

	t.Run("mixed rows succeed and fail independently", func(t *testing.T) {
		f := newImportFixture(t)
		f.decoder.EXPECT().Decode("data.csv", gomock.Any()).Return(interfaces.Table{
			Columns: []string{"customer_name", "customer_email", "service_name", "quantity", "notes"},
			Rows: []map[string]string{
				{"customer_name": "Alice", "customer_email": "alice@acme.com", "service_name": "Express Freight", "quantity": "2", "notes": "dock 4"},
				{"customer_name": "Bob", "customer_email": "bob@acme.com", "service_name": "Teleportation", "quantity": "1"},
				{"customer_name": "Carol", "customer_email": "carol@acme.com", "service_name": "Express Freight", "quantity": ""},
			},
		}, nil)

		svc := entities.Service{ID: "svc-1", Name: "Express Freight", BasePrice: 50, EstimatedDeliveryDays: 2}
		alice := entities.Customer{ID: "cust-a", Name: "Alice", Email: "alice@acme.com"}

		// Row 1: existing customer, known service.
		f.customers.EXPECT().GetByEmail(gomock.Any(), "alice@acme.com").Return(alice, nil)
		f.services.EXPECT().GetByName(gomock.Any(), "Express Freight").Return(svc, nil)
		f.customers.EXPECT().GetByID(gomock.Any(), "cust-a").Return(alice, nil)
		f.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(svc, nil)
		f.bookings.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Booking{})).DoAndReturn(
			func(_ context.Context, b entities.Booking) (entities.Booking, error) {
				if b.Quantity != 2 || b.TotalPrice != 100 || b.Notes != "dock 4" {
					t.Fatalf("unexpected booking for row 1: %+v", b)
				}
				return b, nil
			},
		)

		// Row 2: unknown service fails the row after the customer is created.
		f.customers.EXPECT().GetByEmail(gomock.Any(), "bob@acme.com").Return(entities.Customer{}, nil)
		f.customers.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Customer{})).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) { return c, nil },
		)
		f.services.EXPECT().GetByName(gomock.Any(), "Teleportation").Return(entities.Service{}, nil)

		// Row 3: blank quantity defaults to 1.
		carol := entities.Customer{ID: "cust-c", Name: "Carol", Email: "carol@acme.com"}
		f.customers.EXPECT().GetByEmail(gomock.Any(), "carol@acme.com").Return(carol, nil)
		f.services.EXPECT().GetByName(gomock.Any(), "Express Freight").Return(svc, nil)
		f.customers.EXPECT().GetByID(gomock.Any(), "cust-c").Return(carol, nil)
		f.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(svc, nil)
		f.bookings.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Booking{})).DoAndReturn(
			func(_ context.Context, b entities.Booking) (entities.Booking, error) {
				if b.Quantity != 1 {
					t.Fatalf("expected defaulted quantity 1, got %d", b.Quantity)
				}
				return b, nil
			},
		)

		res, err := f.uc.ImportBookings(context.Background(), "data.csv", strings.NewReader(""))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Filename != "data.csv" || res.RecordsProcessed != 3 {
			t.Fatalf("unexpected result: %+v", res)
		}
		if res.SuccessfulImports != 2 || res.FailedImports != 1 {
			t.Fatalf("expected 2 ok / 1 failed, got %+v", res)
		}
		if len(res.Errors) != 1 || res.Errors[0] != "Row 2: Service 'Teleportation' not found" {
			t.Fatalf("unexpected errors: %v", res.Errors)
		}
	})

	t.Run("unparsable quantity fails the row", func(t *testing.T) {
		f := newImportFixture(t)
		f.decoder.EXPECT().Decode("data.csv", gomock.Any()).Return(interfaces.Table{
			Columns: []string{"customer_name", "customer_email", "service_name", "quantity"},
			Rows: []map[string]string{
				{"customer_name": "Alice", "customer_email": "alice@acme.com", "service_name": "Express Freight", "quantity": "lots"},
			},
		}, nil)

		alice := entities.Customer{ID: "cust-a", Email: "alice@acme.com"}
		f.customers.EXPECT().GetByEmail(gomock.Any(), "alice@acme.com").Return(alice, nil)
		f.services.EXPECT().GetByName(gomock.Any(), "Express Freight").Return(entities.Service{ID: "svc-1"}, nil)

		res, err := f.uc.ImportBookings(context.Background(), "data.csv", strings.NewReader(""))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.FailedImports != 1 || len(res.Errors) != 1 {
			t.Fatalf("expected one failed row, got %+v", res)
		}
		if res.Errors[0] != `Row 1: invalid quantity "lots"` {
			t.Fatalf("unexpected error message: %q", res.Errors[0])
		}
	})

	t.Run("empty dataset with valid header", func(t *testing.T) {
		f := newImportFixture(t)
		f.decoder.EXPECT().Decode("data.csv", gomock.Any()).Return(interfaces.Table{
			Columns: []string{"customer_name", "customer_email", "service_name"},
			Rows:    nil,
		}, nil)

		res, err := f.uc.ImportBookings(context.Background(), "data.csv", strings.NewReader(""))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.RecordsProcessed != 0 || res.SuccessfulImports != 0 || res.FailedImports != 0 {
			t.Fatalf("expected empty result, got %+v", res)
		}
		if res.Errors == nil || len(res.Errors) != 0 {
			t.Fatalf("expected empty errors slice, got %v", res.Errors)
		}
	})
}
