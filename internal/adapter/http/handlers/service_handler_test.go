package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"logibook/internal/adapter/http/handlers/mocks"
	"logibook/internal/domain/entities"
	"logibook/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestServiceHandler_CreateService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc)

		r := gin.New()
		r.POST("/v1/services", h.CreateService)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc)

		r := gin.New()
		r.POST("/v1/services", h.CreateService)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(`{"name":"Express Freight"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown type rejected by usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc)

		r := gin.New()
		r.POST("/v1/services", h.CreateService)

		uc.EXPECT().Create(gomock.Any(), "Express Freight", "catering", "", 10.0, 3).Return(entities.Service{}, usecase.ErrInvalidServiceType)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(`{"name":"Express Freight","type":"catering","base_price":10,"estimated_delivery_days":3}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc)

		r := gin.New()
		r.POST("/v1/services", h.CreateService)

		svc := entities.Service{ID: "svc-1", Name: "Express Freight", Type: entities.ServiceTypeLogistics, BasePrice: 99.9, EstimatedDeliveryDays: 2}
		uc.EXPECT().Create(gomock.Any(), "Express Freight", "logistics", "next-day trucking", 99.9, 2).Return(svc, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(`{"name":"Express Freight","type":"logistics","description":"next-day trucking","base_price":99.9,"estimated_delivery_days":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "svc-1" || body["type"] != "logistics" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestServiceHandler_GetServiceByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc)

		r := gin.New()
		r.GET("/v1/services/:service_id", h.GetServiceByID)

		uc.EXPECT().GetByID(gomock.Any(), "svc-x").Return(entities.Service{}, usecase.ErrServiceNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/services/svc-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc)

		r := gin.New()
		r.GET("/v1/services/:service_id", h.GetServiceByID)

		uc.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{ID: "svc-1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/services/svc-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestServiceHandler_GetServices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIServiceUseCase(ctrl)
	h := NewServiceHandler(uc)

	r := gin.New()
	r.GET("/v1/services", h.GetServices)

	uc.EXPECT().List(gomock.Any()).Return([]entities.Service{{ID: "a"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/services", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestMapServiceError(t *testing.T) {
	if got := mapServiceError(usecase.ErrInvalidServiceType); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapServiceError(usecase.ErrInvalidBasePrice); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapServiceError(usecase.ErrServiceNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapServiceError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
