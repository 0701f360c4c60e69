package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"

	"github.com/fralcy/MegaMarket-sub000/internal/client"
	"github.com/fralcy/MegaMarket-sub000/internal/config"
	"github.com/fralcy/MegaMarket-sub000/internal/logger"
	"github.com/fralcy/MegaMarket-sub000/internal/models"
	servicemocks "github.com/fralcy/MegaMarket-sub000/internal/services/mocks"
	"github.com/fralcy/MegaMarket-sub000/internal/storage"
	"github.com/fralcy/MegaMarket-sub000/internal/storage/mocks"
)

func TestRedemptionService_Redeem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRedemptions := mocks.NewMockRedemptionsStorage(ctrl)
	mockRewards := mocks.NewMockRewardsStorage(ctrl)
	mockInvoices := servicemocks.NewMockInvoiceService(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	redemption := NewRedemption(mockRedemptions, mockRewards, mockInvoices)

	testCases := []struct {
		Name               string
		Request            models.RedeemRequest
		SetupMocks         func()
		ExpectedError      error
		ExpectedRedemption *models.RedemptionData
	}{
		{
			Name:          "Error. Invalid customer id #1",
			Request:       models.RedeemRequest{CustomerID: 0, RewardID: 1},
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidCustomerID,
		},
		{
			Name:          "Error. Invalid reward id #2",
			Request:       models.RedeemRequest{CustomerID: 1, RewardID: -1},
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidRewardID,
		},
		{
			Name:          "Error. Invalid invoice id #3",
			Request:       models.RedeemRequest{CustomerID: 1, RewardID: 1, InvoiceID: ptr(int64(0))},
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidInvoiceID,
		},
		{
			Name:    "Error. Customer not found #4",
			Request: models.RedeemRequest{CustomerID: 1, RewardID: 2},
			SetupMocks: func() {
				mockRedemptions.EXPECT().CreateRedemption(gomock.Any(), int64(1), int64(2), nil).Return(nil, storage.ErrCustomerNotFound)
			},
			ExpectedError: storage.ErrCustomerNotFound,
		},
		{
			Name:    "Error. Reward not found #5",
			Request: models.RedeemRequest{CustomerID: 1, RewardID: 2},
			SetupMocks: func() {
				mockRedemptions.EXPECT().CreateRedemption(gomock.Any(), int64(1), int64(2), nil).Return(nil, storage.ErrRewardNotFound)
			},
			ExpectedError: storage.ErrRewardNotFound,
		},
		{
			Name:    "Error. Insufficient points #6",
			Request: models.RedeemRequest{CustomerID: 1, RewardID: 2},
			SetupMocks: func() {
				mockRedemptions.EXPECT().CreateRedemption(gomock.Any(), int64(1), int64(2), nil).Return(nil, storage.ErrInsufficientPoints)
			},
			ExpectedError: storage.ErrInsufficientPoints,
		},
		{
			Name:    "Error. Out of stock #7",
			Request: models.RedeemRequest{CustomerID: 1, RewardID: 2},
			SetupMocks: func() {
				mockRedemptions.EXPECT().CreateRedemption(gomock.Any(), int64(1), int64(2), nil).Return(nil, storage.ErrOutOfStock)
			},
			ExpectedError: storage.ErrOutOfStock,
		},
		{
			Name:    "Error. Conflict after retries #8",
			Request: models.RedeemRequest{CustomerID: 1, RewardID: 2},
			SetupMocks: func() {
				mockRedemptions.EXPECT().CreateRedemption(gomock.Any(), int64(1), int64(2), nil).Return(nil, storage.ErrConflict)
			},
			ExpectedError: storage.ErrConflict,
		},
		{
			Name:    "Success. #9",
			Request: models.RedeemRequest{CustomerID: 1, RewardID: 2},
			SetupMocks: func() {
				mockRedemptions.EXPECT().CreateRedemption(gomock.Any(), int64(1), int64(2), nil).Return(&models.RedemptionData{
					ID: 7, CustomerID: 1, RewardID: 2, Status: models.RedemptionStatusPending,
				}, nil)
			},
			ExpectedError: nil,
			ExpectedRedemption: &models.RedemptionData{
				ID: 7, CustomerID: 1, RewardID: 2, Status: models.RedemptionStatusPending,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			result, err := redemption.Redeem(ctx, tc.Request)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			diff := cmp.Diff(tc.ExpectedRedemption, result)
			if len(diff) != 0 {
				t.Errorf("expected redemption mismatch:\n %s", diff)
			}
		})
	}
}

func TestRedemptionService_Claim(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRedemptions := mocks.NewMockRedemptionsStorage(ctrl)
	mockRewards := mocks.NewMockRewardsStorage(ctrl)
	mockInvoices := servicemocks.NewMockInvoiceService(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	redemption := NewRedemption(mockRedemptions, mockRewards, mockInvoices)

	testCases := []struct {
		Name           string
		RedemptionID   int64
		SetupMocks     func()
		ExpectedError  error
		ExpectedStatus string
	}{
		{
			Name:         "Error. Redemption not found #1",
			RedemptionID: 7,
			SetupMocks: func() {
				mockRedemptions.EXPECT().GetRedemption(gomock.Any(), int64(7)).Return(nil, storage.ErrRedemptionNotFound)
			},
			ExpectedError: storage.ErrRedemptionNotFound,
		},
		{
			Name:         "Success. Voucher goes to claimed #2",
			RedemptionID: 7,
			SetupMocks: func() {
				mockRedemptions.EXPECT().GetRedemption(gomock.Any(), int64(7)).Return(&models.RedemptionData{
					ID: 7, RewardID: 2, Status: models.RedemptionStatusPending,
				}, nil)
				mockRewards.EXPECT().GetReward(gomock.Any(), int64(2)).Return(&models.RewardData{
					ID: 2, RewardType: models.RewardTypeVoucher,
				}, nil)
				mockRedemptions.EXPECT().UpdateRedemptionStatus(gomock.Any(), int64(7), models.RedemptionStatusPending, models.RedemptionStatusClaimed, nil, false).Return(&models.RedemptionData{
					ID: 7, RewardID: 2, Status: models.RedemptionStatusClaimed,
				}, nil)
			},
			ExpectedError:  nil,
			ExpectedStatus: models.RedemptionStatusClaimed,
		},
		{
			Name:         "Success. Gift goes straight to used #3",
			RedemptionID: 8,
			SetupMocks: func() {
				mockRedemptions.EXPECT().GetRedemption(gomock.Any(), int64(8)).Return(&models.RedemptionData{
					ID: 8, RewardID: 3, Status: models.RedemptionStatusPending,
				}, nil)
				mockRewards.EXPECT().GetReward(gomock.Any(), int64(3)).Return(&models.RewardData{
					ID: 3, RewardType: models.RewardTypeGift,
				}, nil)
				mockRedemptions.EXPECT().UpdateRedemptionStatus(gomock.Any(), int64(8), models.RedemptionStatusPending, models.RedemptionStatusUsed, nil, true).Return(&models.RedemptionData{
					ID: 8, RewardID: 3, Status: models.RedemptionStatusUsed,
				}, nil)
			},
			ExpectedError:  nil,
			ExpectedStatus: models.RedemptionStatusUsed,
		},
		{
			Name:         "Error. Claim from invalid state #4",
			RedemptionID: 9,
			SetupMocks: func() {
				mockRedemptions.EXPECT().GetRedemption(gomock.Any(), int64(9)).Return(&models.RedemptionData{
					ID: 9, RewardID: 2, Status: models.RedemptionStatusUsed,
				}, nil)
				mockRewards.EXPECT().GetReward(gomock.Any(), int64(2)).Return(&models.RewardData{
					ID: 2, RewardType: models.RewardTypeVoucher,
				}, nil)
				mockRedemptions.EXPECT().UpdateRedemptionStatus(gomock.Any(), int64(9), models.RedemptionStatusPending, models.RedemptionStatusClaimed, nil, false).Return(nil, storage.ErrInvalidState)
			},
			ExpectedError: storage.ErrInvalidState,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			result, err := redemption.Claim(ctx, tc.RedemptionID)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if tc.ExpectedStatus != "" && result.Status != tc.ExpectedStatus {
				t.Errorf("Expected status '%s', got: '%s'", tc.ExpectedStatus, result.Status)
			}
		})
	}
}

func TestRedemptionService_ApplyToInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRedemptions := mocks.NewMockRedemptionsStorage(ctrl)
	mockRewards := mocks.NewMockRewardsStorage(ctrl)
	mockInvoices := servicemocks.NewMockInvoiceService(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	redemption := NewRedemption(mockRedemptions, mockRewards, mockInvoices)

	testCases := []struct {
		Name          string
		RedemptionID  int64
		InvoiceID     int64
		SetupMocks    func()
		ExpectedError error
	}{
		{
			Name:          "Error. Invalid invoice id #1",
			RedemptionID:  7,
			InvoiceID:     0,
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidInvoiceID,
		},
		{
			Name:         "Error. Redemption not found #2",
			RedemptionID: 7,
			InvoiceID:    456,
			SetupMocks: func() {
				mockRedemptions.EXPECT().GetRedemption(gomock.Any(), int64(7)).Return(nil, storage.ErrRedemptionNotFound)
			},
			ExpectedError: storage.ErrRedemptionNotFound,
		},
		{
			Name:         "Error. Apply from pending without invoice call #3",
			RedemptionID: 7,
			InvoiceID:    456,
			SetupMocks: func() {
				// сервис чеков не вызывается: обмен ещё не получен
				mockRedemptions.EXPECT().GetRedemption(gomock.Any(), int64(7)).Return(&models.RedemptionData{
					ID: 7, Status: models.RedemptionStatusPending,
				}, nil)
			},
			ExpectedError: storage.ErrInvalidState,
		},
		{
			Name:         "Error. Invoice not found #4",
			RedemptionID: 7,
			InvoiceID:    456,
			SetupMocks: func() {
				mockRedemptions.EXPECT().GetRedemption(gomock.Any(), int64(7)).Return(&models.RedemptionData{
					ID: 7, Status: models.RedemptionStatusClaimed,
				}, nil)
				mockInvoices.EXPECT().ValidateInvoice(gomock.Any(), int64(456)).Return(client.ErrInvoiceNotFound)
			},
			ExpectedError: ErrInvoiceNotFound,
		},
		{
			Name:         "Error. Invoice service unavailable #5",
			RedemptionID: 7,
			InvoiceID:    456,
			SetupMocks: func() {
				mockRedemptions.EXPECT().GetRedemption(gomock.Any(), int64(7)).Return(&models.RedemptionData{
					ID: 7, Status: models.RedemptionStatusClaimed,
				}, nil)
				mockInvoices.EXPECT().ValidateInvoice(gomock.Any(), int64(456)).Return(client.ErrServiceUnavailable)
			},
			ExpectedError: client.ErrServiceUnavailable,
		},
		{
			Name:         "Error. State changed concurrently #6",
			RedemptionID: 7,
			InvoiceID:    456,
			SetupMocks: func() {
				mockRedemptions.EXPECT().GetRedemption(gomock.Any(), int64(7)).Return(&models.RedemptionData{
					ID: 7, Status: models.RedemptionStatusClaimed,
				}, nil)
				mockInvoices.EXPECT().ValidateInvoice(gomock.Any(), int64(456)).Return(nil)
				mockRedemptions.EXPECT().UpdateRedemptionStatus(gomock.Any(), int64(7), models.RedemptionStatusClaimed, models.RedemptionStatusUsed, ptr(int64(456)), true).Return(nil, storage.ErrInvalidState)
			},
			ExpectedError: storage.ErrInvalidState,
		},
		{
			Name:         "Success. #7",
			RedemptionID: 7,
			InvoiceID:    456,
			SetupMocks: func() {
				mockRedemptions.EXPECT().GetRedemption(gomock.Any(), int64(7)).Return(&models.RedemptionData{
					ID: 7, Status: models.RedemptionStatusClaimed,
				}, nil)
				mockInvoices.EXPECT().ValidateInvoice(gomock.Any(), int64(456)).Return(nil)
				mockRedemptions.EXPECT().UpdateRedemptionStatus(gomock.Any(), int64(7), models.RedemptionStatusClaimed, models.RedemptionStatusUsed, ptr(int64(456)), true).Return(&models.RedemptionData{
					ID: 7, InvoiceID: ptr(int64(456)), Status: models.RedemptionStatusUsed,
				}, nil)
			},
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			_, err := redemption.ApplyToInvoice(ctx, tc.RedemptionID, tc.InvoiceID)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}

func TestRedemptionService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRedemptions := mocks.NewMockRedemptionsStorage(ctrl)
	mockRewards := mocks.NewMockRewardsStorage(ctrl)
	mockInvoices := servicemocks.NewMockInvoiceService(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	redemption := NewRedemption(mockRedemptions, mockRewards, mockInvoices)

	testCases := []struct {
		Name          string
		RedemptionID  int64
		SetupMocks    func()
		ExpectedError error
	}{
		{
			Name:         "Error. Redemption not found #1",
			RedemptionID: 7,
			SetupMocks: func() {
				mockRedemptions.EXPECT().DeleteRedemption(gomock.Any(), int64(7)).Return(storage.ErrRedemptionNotFound)
			},
			ExpectedError: storage.ErrRedemptionNotFound,
		},
		{
			Name:         "Error. Delete from invalid state #2",
			RedemptionID: 7,
			SetupMocks: func() {
				mockRedemptions.EXPECT().DeleteRedemption(gomock.Any(), int64(7)).Return(storage.ErrInvalidState)
			},
			ExpectedError: storage.ErrInvalidState,
		},
		{
			Name:         "Success. #3",
			RedemptionID: 7,
			SetupMocks: func() {
				mockRedemptions.EXPECT().DeleteRedemption(gomock.Any(), int64(7)).Return(nil)
			},
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := redemption.Delete(ctx, tc.RedemptionID)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}

func TestRedemptionService_Use(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRedemptions := mocks.NewMockRedemptionsStorage(ctrl)
	mockRewards := mocks.NewMockRewardsStorage(ctrl)
	mockInvoices := servicemocks.NewMockInvoiceService(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	redemption := NewRedemption(mockRedemptions, mockRewards, mockInvoices)

	testCases := []struct {
		Name          string
		RedemptionID  int64
		SetupMocks    func()
		ExpectedError error
	}{
		{
			Name:         "Error. Use from pending #1",
			RedemptionID: 7,
			SetupMocks: func() {
				mockRedemptions.EXPECT().UpdateRedemptionStatus(gomock.Any(), int64(7), models.RedemptionStatusClaimed, models.RedemptionStatusUsed, nil, true).Return(nil, storage.ErrInvalidState)
			},
			ExpectedError: storage.ErrInvalidState,
		},
		{
			Name:         "Success. #2",
			RedemptionID: 7,
			SetupMocks: func() {
				mockRedemptions.EXPECT().UpdateRedemptionStatus(gomock.Any(), int64(7), models.RedemptionStatusClaimed, models.RedemptionStatusUsed, nil, true).Return(&models.RedemptionData{
					ID: 7, Status: models.RedemptionStatusUsed,
				}, nil)
			},
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			_, err := redemption.Use(ctx, tc.RedemptionID)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}

func ptr(v int64) *int64 {
	return &v
}
