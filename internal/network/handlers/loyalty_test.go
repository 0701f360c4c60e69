package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/fralcy/MegaMarket-sub000/internal/config"
	"github.com/fralcy/MegaMarket-sub000/internal/logger"
	"github.com/fralcy/MegaMarket-sub000/internal/services"
	"github.com/fralcy/MegaMarket-sub000/internal/services/mocks"
	"github.com/fralcy/MegaMarket-sub000/internal/storage"
)

func TestEarnPointsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLoyalty := mocks.NewMockLoyaltyService(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	testCases := []struct {
		Name         string
		CustomerID   string
		Body         string
		SetupMocks   func()
		ExpectedCode int
	}{
		{
			Name:         "Error. Invalid customer id #1",
			CustomerID:   "abc",
			Body:         `{"points": 100}`,
			SetupMocks:   func() {},
			ExpectedCode: http.StatusUnprocessableEntity,
		},
		{
			Name:         "Error. Invalid request body #2",
			CustomerID:   "1",
			Body:         `{"points": }`,
			SetupMocks:   func() {},
			ExpectedCode: http.StatusBadRequest,
		},
		{
			Name:       "Error. Invalid points amount #3",
			CustomerID: "1",
			Body:       `{"points": 0}`,
			SetupMocks: func() {
				mockLoyalty.EXPECT().EarnPoints(gomock.Any(), int64(1), int64(0), nil, "").Return(nil, services.ErrInvalidPointsAmount)
			},
			ExpectedCode: http.StatusUnprocessableEntity,
		},
		{
			Name:       "Error. Customer not found #4",
			CustomerID: "99",
			Body:       `{"points": 100}`,
			SetupMocks: func() {
				mockLoyalty.EXPECT().EarnPoints(gomock.Any(), int64(99), int64(100), nil, "").Return(nil, storage.ErrCustomerNotFound)
			},
			ExpectedCode: http.StatusNotFound,
		},
		{
			Name:       "Success. Manual accrual #5",
			CustomerID: "1",
			Body:       `{"points": 100, "description": "bonus"}`,
			SetupMocks: func() {
				mockLoyalty.EXPECT().EarnPoints(gomock.Any(), int64(1), int64(100), nil, "bonus").Return(nil, nil)
			},
			ExpectedCode: http.StatusOK,
		},
		{
			Name:       "Success. Accrual linked to invoice #6",
			CustomerID: "1",
			Body:       `{"points": 100, "invoice_id": 456}`,
			SetupMocks: func() {
				mockLoyalty.EXPECT().EarnPoints(gomock.Any(), int64(1), int64(100), ptr(int64(456)), "").Return(nil, nil)
			},
			ExpectedCode: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			req := httptest.NewRequest(http.MethodPost, "/api/customers/"+tc.CustomerID+"/points/earn", strings.NewReader(tc.Body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("customerID", tc.CustomerID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()

			EarnPointsHandler(mockLoyalty).ServeHTTP(w, req)

			if w.Code != tc.ExpectedCode {
				t.Errorf("Expected status %d, got: %d", tc.ExpectedCode, w.Code)
			}
		})
	}
}

func ptr(v int64) *int64 {
	return &v
}
