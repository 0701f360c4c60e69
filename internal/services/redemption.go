package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/fralcy/MegaMarket-sub000/internal/client"
	"github.com/fralcy/MegaMarket-sub000/internal/logger"
	"github.com/fralcy/MegaMarket-sub000/internal/models"
	"github.com/fralcy/MegaMarket-sub000/internal/storage"
)

var (
	ErrInvalidCustomerID = errors.New("invalid customer id")
	ErrInvalidRewardID   = errors.New("invalid reward id")
	ErrInvalidInvoiceID  = errors.New("invalid invoice id")
	ErrInvoiceNotFound   = errors.New("invoice not found")
)

type RedemptionService interface {
	Redeem(ctx context.Context, request models.RedeemRequest) (*models.RedemptionData, error)
	Claim(ctx context.Context, redemptionID int64) (*models.RedemptionData, error)
	ApplyToInvoice(ctx context.Context, redemptionID int64, invoiceID int64) (*models.RedemptionData, error)
	Use(ctx context.Context, redemptionID int64) (*models.RedemptionData, error)
	Delete(ctx context.Context, redemptionID int64) error
	GetRedemption(ctx context.Context, redemptionID int64) (*models.RedemptionData, error)
	GetRedemptions(ctx context.Context, filter models.RedemptionFilter) ([]models.RedemptionData, error)
	GetCustomerRedemptions(ctx context.Context, customerID int64) ([]models.RedemptionData, error)
}

type Redemption struct {
	Redemptions storage.RedemptionsStorage
	Rewards     storage.RewardsStorage
	Invoices    InvoiceService
}

// Создание сервиса
func NewRedemption(redemptions storage.RedemptionsStorage, rewards storage.RewardsStorage, invoices InvoiceService) RedemptionService {
	return &Redemption{Redemptions: redemptions, Rewards: rewards, Invoices: invoices}
}

// Redeem - обмен баллов покупателя на вознаграждение. Все проверки
// (существование, достаточность баллов, остаток) и все записи выполняются
// хранилищем одной транзакцией.
func (s *Redemption) Redeem(ctx context.Context, request models.RedeemRequest) (*models.RedemptionData, error) {
	if request.CustomerID <= 0 {
		return nil, ErrInvalidCustomerID
	}
	if request.RewardID <= 0 {
		return nil, ErrInvalidRewardID
	}
	if request.InvoiceID != nil && *request.InvoiceID <= 0 {
		return nil, ErrInvalidInvoiceID
	}

	redemption, err := s.Redemptions.CreateRedemption(ctx, request.CustomerID, request.RewardID, request.InvoiceID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInsufficientPoints):
			logger.Warn("Insufficient points for redemption", request.CustomerID)
		case errors.Is(err, storage.ErrOutOfStock):
			logger.Warn("Reward out of stock", request.RewardID)
		case errors.Is(err, storage.ErrConflict):
			logger.Warn("Redemption conflict", request.CustomerID, request.RewardID)
		default:
			logger.Error("Failed to create redemption", zap.Error(err))
		}
		return nil, err
	}

	logger.Info("Redemption created", redemption.ID, "customer", redemption.CustomerID, "reward", redemption.RewardID)
	return redemption, nil
}

// Claim - получение вознаграждения покупателем. Ваучеры и скидки переходят
// в CLAIMED и ждут привязки к чеку. Физический подарок выдаётся на месте
// и сразу переходит в USED.
func (s *Redemption) Claim(ctx context.Context, redemptionID int64) (*models.RedemptionData, error) {
	redemption, err := s.Redemptions.GetRedemption(ctx, redemptionID)
	if err != nil {
		if errors.Is(err, storage.ErrRedemptionNotFound) {
			logger.Warn("Redemption not found", redemptionID)
			return nil, err
		}
		logger.Error("Failed to get redemption", zap.Error(err))
		return nil, err
	}

	reward, err := s.Rewards.GetReward(ctx, redemption.RewardID)
	if err != nil {
		logger.Error("Failed to get reward", zap.Error(err))
		return nil, err
	}

	next, terminal := models.NextStatusOnClaim(reward.RewardType)
	updated, err := s.Redemptions.UpdateRedemptionStatus(ctx, redemptionID, models.RedemptionStatusPending, next, nil, terminal)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidState) {
			logger.Warn("Claim from invalid state", redemptionID, redemption.Status)
			return nil, err
		}
		logger.Error("Failed to claim redemption", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// ApplyToInvoice - привязка полученного вознаграждения к чеку.
// Состояние обмена проверяется до похода в сервис чеков, чтобы не ходить
// во внешний сервис заведомо впустую. Финальная проверка - условный
// UPDATE в хранилище.
func (s *Redemption) ApplyToInvoice(ctx context.Context, redemptionID int64, invoiceID int64) (*models.RedemptionData, error) {
	if invoiceID <= 0 {
		return nil, ErrInvalidInvoiceID
	}

	redemption, err := s.Redemptions.GetRedemption(ctx, redemptionID)
	if err != nil {
		if errors.Is(err, storage.ErrRedemptionNotFound) {
			logger.Warn("Redemption not found", redemptionID)
			return nil, err
		}
		logger.Error("Failed to get redemption", zap.Error(err))
		return nil, err
	}
	if redemption.Status != models.RedemptionStatusClaimed {
		logger.Warn("Apply to invoice from invalid state", redemptionID, redemption.Status)
		return nil, storage.ErrInvalidState
	}

	if err := s.Invoices.ValidateInvoice(ctx, invoiceID); err != nil {
		if errors.Is(err, client.ErrInvoiceNotFound) {
			logger.Warn("Invoice not found", invoiceID)
			return nil, ErrInvoiceNotFound
		}
		logger.Error("Failed to validate invoice", zap.Error(err))
		return nil, err
	}

	updated, err := s.Redemptions.UpdateRedemptionStatus(ctx, redemptionID, models.RedemptionStatusClaimed, models.RedemptionStatusUsed, &invoiceID, true)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidState) || errors.Is(err, storage.ErrRedemptionNotFound) {
			logger.Warn("Apply to invoice rejected", redemptionID, zap.Error(err))
			return nil, err
		}
		logger.Error("Failed to apply redemption to invoice", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// Use - завершение вознаграждения без привязки нового чека
// (чек мог быть указан при обмене)
func (s *Redemption) Use(ctx context.Context, redemptionID int64) (*models.RedemptionData, error) {
	updated, err := s.Redemptions.UpdateRedemptionStatus(ctx, redemptionID, models.RedemptionStatusClaimed, models.RedemptionStatusUsed, nil, true)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidState) || errors.Is(err, storage.ErrRedemptionNotFound) {
			logger.Warn("Use rejected", redemptionID, zap.Error(err))
			return nil, err
		}
		logger.Error("Failed to use redemption", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// Delete - отмена обмена в статусе PENDING с возвратом баллов и остатка
func (s *Redemption) Delete(ctx context.Context, redemptionID int64) error {
	err := s.Redemptions.DeleteRedemption(ctx, redemptionID)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidState) || errors.Is(err, storage.ErrRedemptionNotFound) {
			logger.Warn("Delete rejected", redemptionID, zap.Error(err))
			return err
		}
		logger.Error("Failed to delete redemption", zap.Error(err))
		return err
	}
	logger.Info("Redemption deleted with refund", redemptionID)
	return nil
}

func (s *Redemption) GetRedemption(ctx context.Context, redemptionID int64) (*models.RedemptionData, error) {
	redemption, err := s.Redemptions.GetRedemption(ctx, redemptionID)
	if err != nil {
		if errors.Is(err, storage.ErrRedemptionNotFound) {
			return nil, err
		}
		logger.Error("Failed to get redemption", zap.Error(err))
		return nil, err
	}
	return redemption, nil
}

// GetRedemptions возвращает обмены с фильтром по покупателю и статусу, новые первыми
func (s *Redemption) GetRedemptions(ctx context.Context, filter models.RedemptionFilter) ([]models.RedemptionData, error) {
	if filter.Status != nil && !models.ValidRedemptionStatus(*filter.Status) {
		return nil, storage.ErrInvalidState
	}
	redemptions, err := s.Redemptions.GetRedemptions(ctx, filter)
	if err != nil {
		logger.Error("Failed to get redemptions", zap.Error(err))
		return nil, err
	}
	return redemptions, nil
}

// GetCustomerRedemptions возвращает обмены одного покупателя, новые первыми
func (s *Redemption) GetCustomerRedemptions(ctx context.Context, customerID int64) ([]models.RedemptionData, error) {
	if customerID <= 0 {
		return nil, ErrInvalidCustomerID
	}
	return s.GetRedemptions(ctx, models.RedemptionFilter{CustomerID: &customerID})
}
