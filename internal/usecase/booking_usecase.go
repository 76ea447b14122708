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
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrServiceNotFound      = errors.New("service not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrInvalidCustomerID    = errors.New("invalid customer id")
	ErrInvalidServiceID     = errors.New("invalid service id")
	ErrInvalidBookingID     = errors.New("invalid booking id")
	ErrInvalidQuantity      = errors.New("invalid quantity")
	ErrInvalidBookingStatus = errors.New("invalid booking status")
)

// IBookingUseCase exposes the booking lifecycle operations:
//   - Create validates the referenced customer/service, quotes price and
//     delivery date, and persists a pending booking.
//   - Update applies a partial patch and, on the transition to delivered
//     with an actual delivery date, derives the delivery variance fields.
//   - List optionally filters by status.

type IBookingUseCase interface {
	Create(ctx context.Context, customerID, serviceID string, quantity int, notes string) (entities.Booking, error)
	Update(ctx context.Context, bookingID string, patch entities.BookingPatch) (entities.Booking, error)
	GetByID(ctx context.Context, bookingID string) (entities.Booking, error)
	List(ctx context.Context, status string) ([]entities.Booking, error)
}

type BookingUseCase struct {
	bookings  interfaces.IBookingRepository
	customers interfaces.ICustomerRepository
	services  interfaces.IServiceRepository
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(bookings interfaces.IBookingRepository, customers interfaces.ICustomerRepository, services interfaces.IServiceRepository) *BookingUseCase {
	return &BookingUseCase{bookings: bookings, customers: customers, services: services}
}

func (u *BookingUseCase) Create(ctx context.Context, customerID, serviceID string, quantity int, notes string) (entities.Booking, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.Booking{}, ErrInvalidCustomerID
	}
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return entities.Booking{}, ErrInvalidServiceID
	}

	customer, err := u.customers.GetByID(ctx, customerID)
	if err != nil {
		return entities.Booking{}, err
	}
	if customer.ID == "" {
		return entities.Booking{}, ErrCustomerNotFound
	}

	svc, err := u.services.GetByID(ctx, serviceID)
	if err != nil {
		return entities.Booking{}, err
	}
	if svc.ID == "" {
		return entities.Booking{}, ErrServiceNotFound
	}

	if quantity <= 0 {
		return entities.Booking{}, ErrInvalidQuantity
	}

	now := time.Now().UTC()
	totalPrice, estimatedDelivery := QuoteBooking(svc, quantity, now)

	b := entities.Booking{
		ID:                    uuid.NewString(),
		CustomerID:            customer.ID,
		ServiceID:             svc.ID,
		Quantity:              quantity,
		TotalPrice:            totalPrice,
		Status:                entities.BookingStatusPending,
		EstimatedDeliveryDate: estimatedDelivery,
		Notes:                 notes,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	return u.bookings.Create(ctx, b)
}

func (u *BookingUseCase) Update(ctx context.Context, bookingID string, patch entities.BookingPatch) (entities.Booking, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return entities.Booking{}, ErrInvalidBookingStatus
	}

	stored, err := u.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return entities.Booking{}, err
	}
	if stored.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}

	upd := entities.BookingUpdate{
		Status:             patch.Status,
		ActualDeliveryDate: patch.ActualDeliveryDate,
		Notes:              patch.Notes,
		UpdatedAt:          time.Now().UTC(),
	}

	// Delivery performance is derived exactly once, on the update that marks
	// the booking delivered and supplies the actual delivery date.
	if patch.Status != nil && *patch.Status == entities.BookingStatusDelivered && patch.ActualDeliveryDate != nil {
		estimatedDays := wholeDaysBetween(stored.CreatedAt, stored.EstimatedDeliveryDate)
		actualDays := wholeDaysBetween(stored.CreatedAt, *patch.ActualDeliveryDate)
		variance := actualDays - estimatedDays
		onTime := actualDays <= estimatedDays
		upd.DeliveryVarianceDays = &variance
		upd.DeliveredOnTime = &onTime
	}

	updated, err := u.bookings.UpdateFields(ctx, bookingID, upd)
	if err != nil {
		return entities.Booking{}, err
	}
	if updated.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return updated, nil
}

func (u *BookingUseCase) GetByID(ctx context.Context, bookingID string) (entities.Booking, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}

	b, err := u.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

func (u *BookingUseCase) List(ctx context.Context, status string) ([]entities.Booking, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return u.bookings.List(ctx)
	}

	st := entities.BookingStatus(status)
	if !st.IsValid() {
		return nil, ErrInvalidBookingStatus
	}
	return u.bookings.ListByStatus(ctx, st)
}
