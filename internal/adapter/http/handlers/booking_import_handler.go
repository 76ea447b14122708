package handlers

import (
	"errors"
	"net/http"

	"logibook/internal/usecase"
	"logibook/internal/usecase/interfaces"
	"logibook/pkg"

	"github.com/gin-gonic/gin"
)

var errMissingUploadFile = pkg.NewDomainErrorSimple("MISSING_UPLOAD_FILE", "Missing upload file", http.StatusBadRequest)

// BookingImportHandler handles the bulk booking upload endpoint. It hands
// the multipart file straight to the import use case; per-row failures come
// back inside the result, not as an HTTP error.

type BookingImportHandler struct {
	usecase usecase.IBookingImportUseCase
}

func NewBookingImportHandler(uc usecase.IBookingImportUseCase) *BookingImportHandler {
	return &BookingImportHandler{usecase: uc}
}

func (h *BookingImportHandler) UploadBookings(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(errMissingUploadFile.HTTPStatus, errMissingUploadFile.ToHTTPError())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer file.Close()

	result, err := h.usecase.ImportBookings(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		appErr := mapImportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, result)
}

func mapImportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, interfaces.ErrUnsupportedFileType):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_FILE_TYPE", "Only CSV and Excel files are supported", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingRequiredColumns):
		return pkg.NewDomainError("MISSING_REQUIRED_COLUMNS", err.Error(), err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
