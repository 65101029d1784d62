package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"premstore/internal/models"
	"premstore/internal/services"
)

type MockPromoService struct {
	mock.Mock
}

func (m *MockPromoService) Validate(ctx context.Context, code string) (*models.PromoCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PromoCode), args.Error(1)
}

func (m *MockPromoService) List(ctx context.Context) ([]*models.PromoCode, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.PromoCode), args.Error(1)
}

func (m *MockPromoService) Create(ctx context.Context, request *services.CreatePromoRequest) (*models.PromoCode, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PromoCode), args.Error(1)
}

func promoRouter(service services.PromoService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewPromoHandler(service)
	router := gin.New()
	router.POST("/promos/validate", handler.ValidatePromoCode)
	return router
}

func TestPromoHandler_ValidatePromoCode(t *testing.T) {
	tests := []struct {
		name         string
		serviceError error
		expectedCode int
	}{
		{
			name:         "valid code",
			expectedCode: http.StatusOK,
		},
		{
			name:         "unknown or inactive code",
			serviceError: services.ErrPromoNotFound,
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "exhausted code",
			serviceError: services.ErrPromoExhausted,
			expectedCode: http.StatusGone,
		},
		{
			name:         "expired code",
			serviceError: services.ErrPromoExpired,
			expectedCode: http.StatusGone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockPromoService)
			if tt.serviceError != nil {
				service.On("Validate", mock.Anything, "SAVE10").Return(nil, tt.serviceError)
			} else {
				service.On("Validate", mock.Anything, "SAVE10").Return(&models.PromoCode{
					Code:          "SAVE10",
					DiscountType:  models.DiscountTypePercentage,
					DiscountValue: 10,
					IsActive:      true,
				}, nil)
			}

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodPost, "/promos/validate", bytes.NewReader([]byte(`{"code":"SAVE10"}`)))
			promoRouter(service).ServeHTTP(recorder, request)

			assert.Equal(t, tt.expectedCode, recorder.Code)
		})
	}

	t.Run("missing code fails validation", func(t *testing.T) {
		service := new(MockPromoService)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/promos/validate", bytes.NewReader([]byte(`{}`)))
		promoRouter(service).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		service.AssertNotCalled(t, "Validate", mock.Anything, mock.Anything)
	})
}
