package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/fralcy/MegaMarket-sub000/internal/logger"
	"github.com/fralcy/MegaMarket-sub000/internal/models"
	"github.com/fralcy/MegaMarket-sub000/internal/storage"
)

var (
	ErrInvalidPointsAmount = errors.New("invalid points amount")
)

type LoyaltyService interface {
	GetBalance(ctx context.Context, customerID int64) (*models.CustomerBalance, error)
	GetHistory(ctx context.Context, customerID int64, limit int, offset int) ([]models.TransactionData, error)
	EarnPoints(ctx context.Context, customerID int64, points int64, invoiceID *int64, description string) (*models.TransactionData, error)
	WithdrawPoints(ctx context.Context, customerID int64, points int64, description string) (*models.TransactionData, error)
}

type Loyalty struct {
	Customers storage.CustomersStorage
	Ledger    storage.LedgerStorage
}

// Создание сервиса
func NewLoyalty(customers storage.CustomersStorage, ledger storage.LedgerStorage) LoyaltyService {
	return &Loyalty{Customers: customers, Ledger: ledger}
}

// GetBalance возвращает баланс баллов и ранг покупателя
func (s *Loyalty) GetBalance(ctx context.Context, customerID int64) (*models.CustomerBalance, error) {
	// Получаем кешированный баланс покупателя из хранилища
	balance, err := s.Customers.GetCustomerBalance(ctx, customerID)
	if err != nil {
		logger.Error("Failed to get customer balance", zap.Error(err))
		return nil, err
	}

	return balance, nil
}

// GetHistory возвращает историю операций с баллами покупателя, новые первыми
func (s *Loyalty) GetHistory(ctx context.Context, customerID int64, limit int, offset int) ([]models.TransactionData, error) {
	_, err := s.Customers.GetCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, storage.ErrCustomerNotFound) {
			logger.Warn("Customer not found", customerID)
			return nil, storage.ErrCustomerNotFound
		}
		logger.Error("Error getting customer", zap.Error(err))
		return nil, err
	}

	// Получаем историю операций покупателя
	transactions, err := s.Ledger.GetTransactions(ctx, customerID, limit, offset)
	if err != nil {
		logger.Error("Failed to get transactions:", zap.Error(err))
		return nil, err
	}

	return transactions, nil
}

// EarnPoints начисляет баллы покупателю записью журнала
func (s *Loyalty) EarnPoints(ctx context.Context, customerID int64, points int64, invoiceID *int64, description string) (*models.TransactionData, error) {
	// Проверка на неположительное количество баллов
	if points <= 0 {
		return nil, ErrInvalidPointsAmount
	}

	event := models.TransactionData{
		CustomerID:  customerID,
		InvoiceID:   invoiceID,
		PointChange: points,
		Type:        models.TransactionEarn,
		Description: description,
	}

	// Добавляем запись журнала и обновляем баланс покупателя
	transaction, err := s.Ledger.ApplyLedgerEvent(ctx, event)
	if err != nil {
		logger.Error("Failed to apply ledger event", zap.Error(err))
		return nil, err
	}
	return transaction, nil
}

// WithdrawPoints обработка ручного списания баллов покупателя.
// Достаточность баланса проверяется хранилищем в момент списания.
func (s *Loyalty) WithdrawPoints(ctx context.Context, customerID int64, points int64, description string) (*models.TransactionData, error) {
	// Проверка на неположительное количество баллов
	if points <= 0 {
		return nil, ErrInvalidPointsAmount
	}

	transaction, err := s.Ledger.WithdrawPoints(ctx, customerID, points, description)
	if err != nil {
		if errors.Is(err, storage.ErrInsufficientPoints) {
			logger.Warn("Insufficient points for withdrawal", customerID)
			return nil, err
		}
		logger.Error("Failed to withdraw points", zap.Error(err))
		return nil, err
	}
	return transaction, nil
}
