package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/fralcy/MegaMarket-sub000/internal/config"
	"github.com/fralcy/MegaMarket-sub000/internal/logger"
	"github.com/fralcy/MegaMarket-sub000/internal/models"
	"github.com/fralcy/MegaMarket-sub000/internal/storage"
)

var (
	ErrInvalidAccrual = errors.New("invalid accrual request")
)

type AccrualsService interface {
	QueueAccrual(ctx context.Context, request models.AccrualRequest) error
	ProcessAccruals(ctx context.Context) error
}

type Accruals struct {
	Storage   storage.AccrualsStorage
	EarnRate  decimal.Decimal
	BatchSize int
}

// Создание сервиса
func NewAccruals(accruals storage.AccrualsStorage, cfg config.LoyaltyConfig) AccrualsService {
	rate, err := decimal.NewFromString(cfg.EarnRate)
	if err != nil || rate.LessThanOrEqual(decimal.Zero) {
		logger.Warn("Invalid earn rate, using default 0.01:", cfg.EarnRate)
		rate = decimal.NewFromFloat(0.01)
	}
	return &Accruals{Storage: accruals, EarnRate: rate, BatchSize: cfg.BatchSize}
}

// QueueAccrual - постановка начисления баллов за оплаченный чек в очередь.
// Вызывается сервисом чеков при закрытии чека.
func (s *Accruals) QueueAccrual(ctx context.Context, request models.AccrualRequest) error {
	if request.CustomerID <= 0 || request.InvoiceID <= 0 || request.Amount <= 0 {
		return ErrInvalidAccrual
	}

	accrual := models.AccrualData{
		ID:         uuid.New().String(),
		CustomerID: request.CustomerID,
		InvoiceID:  request.InvoiceID,
		Amount:     decimal.NewFromFloat(request.Amount),
	}

	err := s.Storage.AddAccrual(ctx, accrual)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			// повторная постановка того же чека не ошибка
			logger.Warn("Accrual already queued for invoice", request.InvoiceID)
			return err
		}
		logger.Error("Failed to queue accrual", zap.Error(err))
		return err
	}
	return nil
}

// ProcessAccruals - обработка пачки начислений из очереди.
// Сумма чека переводится в баллы по курсу начисления с округлением вниз.
func (s *Accruals) ProcessAccruals(ctx context.Context) error {
	accruals, err := s.Storage.ClaimAccrualsForProcessing(ctx, s.BatchSize)
	if err != nil {
		logger.Error("Failed to claim accruals", zap.Error(err))
		return err
	}

	for _, accrual := range accruals {
		if err := s.processAccrual(ctx, accrual); err != nil {
			logger.Error("Failed to process accrual", accrual.ID, zap.Error(err))
		}
	}
	return nil
}

func (s *Accruals) processAccrual(ctx context.Context, accrual models.AccrualData) error {
	points := accrual.Amount.Mul(s.EarnRate).Floor().IntPart()

	// чек слишком мал и баллов не даёт - просто завершаем строку очереди
	if points <= 0 {
		return s.Storage.MarkAccrualProcessed(ctx, accrual.ID)
	}

	event := models.TransactionData{
		CustomerID:  accrual.CustomerID,
		InvoiceID:   &accrual.InvoiceID,
		PointChange: points,
		Type:        models.TransactionEarn,
		Description: fmt.Sprintf("invoice %d accrual", accrual.InvoiceID),
	}

	err := s.Storage.CompleteAccrual(ctx, accrual.ID, event)
	if err != nil {
		// покупателя больше нет - начисление не обработать
		if errors.Is(err, storage.ErrCustomerNotFound) {
			logger.Warn("Accrual for unknown customer", accrual.CustomerID)
			return s.Storage.MarkAccrualInvalid(ctx, accrual.ID)
		}
		// строку уже завершил другой экземпляр - повторно не начисляем
		if errors.Is(err, storage.ErrAlreadyExists) {
			logger.Warn("Accrual already completed", accrual.ID)
			return nil
		}
		return err
	}

	logger.Info("Accrual processed", accrual.ID, "customer", accrual.CustomerID, "points", points)
	return nil
}
