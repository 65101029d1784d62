package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"premstore/internal/models"
	"premstore/internal/repositories/interfaces"
)

func TestRatingService_Submit(t *testing.T) {
	order := &models.Order{
		OrderID:       "ORD-AAAA111122",
		CustomerEmail: "buyer@example.com",
	}

	tests := []struct {
		name          string
		request       *SubmitRatingRequest
		setupMocks    func(*MockRatingRepository, *MockOrderRepository)
		expectedError error
	}{
		{
			name: "owner rates their order",
			request: &SubmitRatingRequest{
				OrderID:       "ORD-AAAA111122",
				CustomerEmail: "buyer@example.com",
				Rating:        5,
				Review:        "fast delivery",
			},
			setupMocks: func(ratingRepo *MockRatingRepository, orderRepo *MockOrderRepository) {
				orderRepo.On("GetByOrderID", mock.Anything, "ORD-AAAA111122").Return(order, nil)
				ratingRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Rating")).Return(nil)
			},
		},
		{
			name: "unknown order",
			request: &SubmitRatingRequest{
				OrderID:       "ORD-MISSING123",
				CustomerEmail: "buyer@example.com",
				Rating:        4,
			},
			setupMocks: func(ratingRepo *MockRatingRepository, orderRepo *MockOrderRepository) {
				orderRepo.On("GetByOrderID", mock.Anything, "ORD-MISSING123").Return(nil, interfaces.ErrNotFound)
			},
			expectedError: ErrOrderNotFound,
		},
		{
			name: "email does not match the order",
			request: &SubmitRatingRequest{
				OrderID:       "ORD-AAAA111122",
				CustomerEmail: "someone-else@example.com",
				Rating:        1,
			},
			setupMocks: func(ratingRepo *MockRatingRepository, orderRepo *MockOrderRepository) {
				orderRepo.On("GetByOrderID", mock.Anything, "ORD-AAAA111122").Return(order, nil)
			},
			expectedError: ErrEmailMismatch,
		},
		{
			name: "second rating for the same order",
			request: &SubmitRatingRequest{
				OrderID:       "ORD-AAAA111122",
				CustomerEmail: "buyer@example.com",
				Rating:        3,
			},
			setupMocks: func(ratingRepo *MockRatingRepository, orderRepo *MockOrderRepository) {
				orderRepo.On("GetByOrderID", mock.Anything, "ORD-AAAA111122").Return(order, nil)
				ratingRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Rating")).Return(interfaces.ErrDuplicate)
			},
			expectedError: ErrRatingExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ratingRepo := new(MockRatingRepository)
			orderRepo := new(MockOrderRepository)
			tt.setupMocks(ratingRepo, orderRepo)

			service := NewRatingService(ratingRepo, orderRepo, testLogger())
			rating, err := service.Submit(context.Background(), tt.request)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, rating)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.request.OrderID, rating.OrderID)
			assert.Equal(t, tt.request.Rating, rating.Rating)
			assert.False(t, rating.IsApproved)
			assert.False(t, rating.VoucherSent)
			ratingRepo.AssertExpectations(t)
			orderRepo.AssertExpectations(t)
		})
	}
}

func TestRatingService_Approve(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("approves a rating", func(t *testing.T) {
		ratingRepo := new(MockRatingRepository)
		ratingRepo.On("SetApproved", mock.Anything, id, true).Return(nil)

		service := NewRatingService(ratingRepo, new(MockOrderRepository), testLogger())
		assert.NoError(t, service.Approve(context.Background(), id, true))
		ratingRepo.AssertExpectations(t)
	})

	t.Run("unknown rating", func(t *testing.T) {
		ratingRepo := new(MockRatingRepository)
		ratingRepo.On("SetApproved", mock.Anything, id, false).Return(interfaces.ErrNotFound)

		service := NewRatingService(ratingRepo, new(MockOrderRepository), testLogger())
		assert.ErrorIs(t, service.Approve(context.Background(), id, false), ErrRatingNotFound)
	})
}

func TestRatingService_ListApproved(t *testing.T) {
	ratingRepo := new(MockRatingRepository)
	ratingRepo.On("GetApproved", mock.Anything).Return([]*models.Rating{
		{OrderID: "ORD-AAAA111122", Rating: 5, IsApproved: true},
	}, nil)

	service := NewRatingService(ratingRepo, new(MockOrderRepository), testLogger())

	ratings, err := service.ListApproved(context.Background())
	assert.NoError(t, err)
	assert.Len(t, ratings, 1)
	assert.True(t, ratings[0].IsApproved)
}
