package usecase

import (
	"time"

	"logibook/internal/domain/entities"
)

// QuoteBooking derives the one-time booking quote from the service catalog
// entry: total price is base price times quantity, and the estimated delivery
// date is the creation day's midnight (UTC) plus the service's estimated
// delivery days. AddDate carries day arithmetic across month and year
// boundaries.
//
// Quantity validation is the caller's job; the quote itself is pure.
func QuoteBooking(svc entities.Service, quantity int, now time.Time) (totalPrice float64, estimatedDeliveryDate time.Time) {
	totalPrice = svc.BasePrice * float64(quantity)
	estimatedDeliveryDate = midnightUTC(now).AddDate(0, 0, svc.EstimatedDeliveryDays)
	return totalPrice, estimatedDeliveryDate
}

func midnightUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// wholeDaysBetween returns the calendar-day difference between two instants,
// comparing their UTC dates only. Negative when b precedes a.
func wholeDaysBetween(a, b time.Time) int {
	from := midnightUTC(a)
	to := midnightUTC(b)
	return int(to.Sub(from) / (24 * time.Hour))
}
