package usecase

import (
	"context"
	"math"

	"logibook/internal/usecase/interfaces"
)

// DeliveryPerformance is one delivered booking's schedule outcome, recomputed
// from the booking's own dates.
type DeliveryPerformance struct {
	BookingID     string `json:"booking_id"`
	EstimatedDays int    `json:"estimated_days"`
	ActualDays    int    `json:"actual_days"`
	VarianceDays  int    `json:"variance_days"`
	OnTime        bool   `json:"on_time"`
}

// AnalyticsOverview aggregates the whole store into summary counters.
type AnalyticsOverview struct {
	StatusCounts       map[string]int `json:"status_counts"`
	OnTimeDeliveryRate float64        `json:"on_time_delivery_rate"`
	TotalCustomers     int            `json:"total_customers"`
	TotalServices      int            `json:"total_services"`
	TotalBookings      int            `json:"total_bookings"`
}

// IAnalyticsUseCase reads persisted records and derives summary statistics.
// Reporting is best effort: malformed or incomplete bookings are skipped,
// never failing the whole aggregate.

type IAnalyticsUseCase interface {
	DeliveryPerformance(ctx context.Context) ([]DeliveryPerformance, error)
	Overview(ctx context.Context) (AnalyticsOverview, error)
}

type AnalyticsUseCase struct {
	bookings  interfaces.IBookingRepository
	customers interfaces.ICustomerRepository
	services  interfaces.IServiceRepository
}

var _ IAnalyticsUseCase = (*AnalyticsUseCase)(nil)

func NewAnalyticsUseCase(bookings interfaces.IBookingRepository, customers interfaces.ICustomerRepository, services interfaces.IServiceRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{bookings: bookings, customers: customers, services: services}
}

// DeliveryPerformance recomputes estimated and actual days for every
// delivered booking from its own created/estimated/actual dates; the variance
// fields persisted at delivery time are deliberately not trusted here.
// Bookings whose referenced service no longer resolves, or whose dates are
// unusable, are silently omitted.
func (u *AnalyticsUseCase) DeliveryPerformance(ctx context.Context) ([]DeliveryPerformance, error) {
	delivered, err := u.bookings.ListDelivered(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]DeliveryPerformance, 0, len(delivered))
	for _, b := range delivered {
		if b.ActualDeliveryDate == nil || b.CreatedAt.IsZero() || b.EstimatedDeliveryDate.IsZero() {
			continue
		}

		svc, err := u.services.GetByID(ctx, b.ServiceID)
		if err != nil || svc.ID == "" {
			continue
		}

		estimatedDays := wholeDaysBetween(b.CreatedAt, b.EstimatedDeliveryDate)
		actualDays := wholeDaysBetween(b.CreatedAt, *b.ActualDeliveryDate)

		out = append(out, DeliveryPerformance{
			BookingID:     b.ID,
			EstimatedDays: estimatedDays,
			ActualDays:    actualDays,
			VarianceDays:  actualDays - estimatedDays,
			OnTime:        actualDays <= estimatedDays,
		})
	}
	return out, nil
}

func (u *AnalyticsUseCase) Overview(ctx context.Context) (AnalyticsOverview, error) {
	byStatus, err := u.bookings.CountByStatus(ctx)
	if err != nil {
		return AnalyticsOverview{}, err
	}
	statusCounts := make(map[string]int, len(byStatus))
	for status, count := range byStatus {
		statusCounts[string(status)] = count
	}

	deliveredWithFlag, onTime, err := u.bookings.CountDeliveredOnTime(ctx)
	if err != nil {
		return AnalyticsOverview{}, err
	}
	rate := 0.0
	if deliveredWithFlag > 0 {
		rate = float64(onTime) / float64(deliveredWithFlag) * 100
		rate = math.Round(rate*100) / 100
	}

	totalCustomers, err := u.customers.Count(ctx)
	if err != nil {
		return AnalyticsOverview{}, err
	}
	totalServices, err := u.services.Count(ctx)
	if err != nil {
		return AnalyticsOverview{}, err
	}
	totalBookings, err := u.bookings.Count(ctx)
	if err != nil {
		return AnalyticsOverview{}, err
	}

	return AnalyticsOverview{
		StatusCounts:       statusCounts,
		OnTimeDeliveryRate: rate,
		TotalCustomers:     totalCustomers,
		TotalServices:      totalServices,
		TotalBookings:      totalBookings,
	}, nil
}
