package interfaces

import (
	"context"
	"logibook/internal/domain/entities"
)

// IBookingRepository abstracts DynamoDB persistence for Booking.
//
// The booking lifecycle needs:
//   - point lookups and inserts for create/get
//   - a partial field update for status/notes/delivery patches
//   - status-filtered listings for the API and analytics
//   - count aggregations for the analytics overview

type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	UpdateFields(ctx context.Context, id string, upd entities.BookingUpdate) (entities.Booking, error)
	List(ctx context.Context) ([]entities.Booking, error)
	ListByStatus(ctx context.Context, status entities.BookingStatus) ([]entities.Booking, error)
	// ListDelivered returns delivered bookings that carry an actual delivery
	// date, the population delivery-performance reporting works from.
	ListDelivered(ctx context.Context) ([]entities.Booking, error)
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context) (map[entities.BookingStatus]int, error)
	// CountDeliveredOnTime counts delivered bookings carrying a persisted
	// on-time flag, and how many of those were flagged on time.
	CountDeliveredOnTime(ctx context.Context) (delivered int, onTime int, err error)
}
