package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"logibook/internal/usecase/interfaces"
)

var ErrMissingRequiredColumns = errors.New("missing required columns")

var importRequiredColumns = []string{"customer_name", "customer_email", "service_name"}

// ImportResult summarizes a bulk upload. Errors holds one message per failed
// row, in row order, each prefixed with the row's 1-based position.
type ImportResult struct {
	Filename          string   `json:"filename"`
	RecordsProcessed  int      `json:"records_processed"`
	SuccessfulImports int      `json:"successful_imports"`
	FailedImports     int      `json:"failed_imports"`
	Errors            []string `json:"errors"`
}

// IBookingImportUseCase turns an uploaded tabular file into bookings, one row
// at a time. Rows fail independently: a bad row is recorded and the batch
// moves on. Only dataset-level problems (unsupported file type, missing
// required columns) fail the whole upload.

type IBookingImportUseCase interface {
	ImportBookings(ctx context.Context, filename string, file io.Reader) (ImportResult, error)
}

type BookingImportUseCase struct {
	decoder   interfaces.IRowDecoder
	customers ICustomerUseCase
	services  interfaces.IServiceRepository
	bookings  IBookingUseCase
}

var _ IBookingImportUseCase = (*BookingImportUseCase)(nil)

func NewBookingImportUseCase(decoder interfaces.IRowDecoder, customers ICustomerUseCase, services interfaces.IServiceRepository, bookings IBookingUseCase) *BookingImportUseCase {
	return &BookingImportUseCase{decoder: decoder, customers: customers, services: services, bookings: bookings}
}

func (u *BookingImportUseCase) ImportBookings(ctx context.Context, filename string, file io.Reader) (ImportResult, error) {
	log.Printf("[import][usecase] start filename=%q", filename)

	table, err := u.decoder.Decode(filename, file)
	if err != nil {
		log.Printf("[import][usecase] decode failed filename=%q err=%v", filename, err)
		return ImportResult{}, err
	}

	if missing := missingColumns(table.Columns); len(missing) > 0 {
		log.Printf("[import][usecase] missing columns filename=%q missing=%v", filename, missing)
		return ImportResult{}, fmt.Errorf("%w: %s", ErrMissingRequiredColumns, strings.Join(missing, ", "))
	}

	result := ImportResult{
		Filename:         filename,
		RecordsProcessed: len(table.Rows),
		Errors:           []string{},
	}

	for i, row := range table.Rows {
		rowNum := i + 1
		if err := u.importRow(ctx, row); err != nil {
			result.FailedImports++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %s", rowNum, err.Error()))
			continue
		}
		result.SuccessfulImports++
	}

	log.Printf("[import][usecase] done filename=%q processed=%d ok=%d failed=%d",
		filename, result.RecordsProcessed, result.SuccessfulImports, result.FailedImports)
	return result, nil
}

func (u *BookingImportUseCase) importRow(ctx context.Context, row map[string]string) error {
	customer, err := u.customers.FindOrCreateByEmail(ctx, row["customer_name"], row["customer_email"])
	if err != nil {
		return err
	}

	serviceName := strings.TrimSpace(row["service_name"])
	svc, err := u.services.GetByName(ctx, serviceName)
	if err != nil {
		return err
	}
	if svc.ID == "" {
		return fmt.Errorf("Service '%s' not found", serviceName)
	}

	quantity, err := parseQuantity(row["quantity"])
	if err != nil {
		return err
	}

	_, err = u.bookings.Create(ctx, customer.ID, svc.ID, quantity, strings.TrimSpace(row["notes"]))
	return err
}

// parseQuantity defaults a missing or blank quantity cell to 1; a cell that
// is present but not an integer fails the row.
func parseQuantity(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}
	q, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q", raw)
	}
	return q, nil
}

func missingColumns(columns []string) []string {
	present := make(map[string]bool, len(columns))
	for _, c := range columns {
		present[strings.TrimSpace(c)] = true
	}

	var missing []string
	for _, required := range importRequiredColumns {
		if !present[required] {
			missing = append(missing, required)
		}
	}
	return missing
}
