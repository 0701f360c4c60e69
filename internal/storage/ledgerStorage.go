package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/fralcy/MegaMarket-sub000/internal/logger"
	"github.com/fralcy/MegaMarket-sub000/internal/models"
)

const (
	InsertTransaction = `INSERT INTO POINT_TRANSACTIONS (id, customer_id, invoice_id, point_change, transaction_type, description)
							VALUES ($1, $2, $3, $4, $5, $6)
							RETURNING created_at;`
	AddCustomerPoints = `UPDATE CUSTOMERS
							SET points = points + $1
							WHERE id = $2
							RETURNING points;`
	SubtractCustomerPoints = `UPDATE CUSTOMERS
							SET points = points - $1
							WHERE id = $2 AND points >= $1
							RETURNING points;`
	UpdateCustomerRank  = `UPDATE CUSTOMERS SET rank = $1 WHERE id = $2;`
	CheckCustomerExists = `SELECT EXISTS(SELECT 1 FROM CUSTOMERS WHERE id=$1);`
	GetTransactions     = `SELECT id, invoice_id, point_change, transaction_type, description, created_at
							FROM POINT_TRANSACTIONS
							WHERE customer_id=$1
							ORDER BY created_at DESC
							LIMIT NULLIF($2, 0) OFFSET $3;`
)

type LedgerDatabase struct {
	DB *Database
}

// Создание хранилища
func NewLedgerStorage(db *Database) LedgerStorage {
	return &LedgerDatabase{DB: db}
}

// applyLedgerEventTx - единая точка записи в журнал операций с баллами.
// В рамках переданной транзакции: добавляет неизменяемую запись журнала,
// обновляет кешированный баланс покупателя и пересчитывает ранг.
// Баланс и журнал меняются только вместе, иначе кеш разойдётся с журналом.
func applyLedgerEventTx(ctx context.Context, tx pgx.Tx, event models.TransactionData) (*models.TransactionData, error) {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}

	// Обновляем баланс покупателя
	var points int64
	err := tx.QueryRow(ctx, AddCustomerPoints, event.PointChange, event.CustomerID).Scan(&points)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to update customer balance: %w", err)
	}

	// Пересчитываем ранг по новому балансу
	if _, err = tx.Exec(ctx, UpdateCustomerRank, models.CalculateRank(points), event.CustomerID); err != nil {
		return nil, fmt.Errorf("failed to update customer rank: %w", err)
	}

	// Добавляем запись журнала
	var createdAt time.Time
	err = tx.QueryRow(ctx, InsertTransaction,
		event.ID,
		event.CustomerID,
		event.InvoiceID,
		event.PointChange,
		event.Type,
		event.Description,
	).Scan(&createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}
	event.CreatedAt = createdAt

	return &event, nil
}

// applyDebitLedgerEventTx - вариант applyLedgerEventTx для списаний.
// Баланс уменьшается условным UPDATE только при достаточном количестве баллов,
// дальше путь записи общий: журнал, баланс и ранг меняются вместе.
func applyDebitLedgerEventTx(ctx context.Context, tx pgx.Tx, event models.TransactionData) (*models.TransactionData, error) {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}

	// Списываем баллы только при достаточном балансе
	points := -event.PointChange
	var balance int64
	err := tx.QueryRow(ctx, SubtractCustomerPoints, points, event.CustomerID).Scan(&balance)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("failed to subtract points: %w", err)
		}
		// Отличаем отсутствие покупателя от нехватки баллов
		var exists bool
		if chkErr := tx.QueryRow(ctx, CheckCustomerExists, event.CustomerID).Scan(&exists); chkErr != nil {
			return nil, fmt.Errorf("failed to check customer exists: %w", chkErr)
		}
		if !exists {
			return nil, ErrCustomerNotFound
		}
		return nil, ErrInsufficientPoints
	}

	// Пересчитываем ранг по новому балансу
	if _, err = tx.Exec(ctx, UpdateCustomerRank, models.CalculateRank(balance), event.CustomerID); err != nil {
		return nil, fmt.Errorf("failed to update customer rank: %w", err)
	}

	// Добавляем запись журнала
	var createdAt time.Time
	err = tx.QueryRow(ctx, InsertTransaction,
		event.ID,
		event.CustomerID,
		event.InvoiceID,
		event.PointChange,
		event.Type,
		event.Description,
	).Scan(&createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}
	event.CreatedAt = createdAt

	return &event, nil
}

// ApplyLedgerEvent - добавление записи журнала и обновление баланса покупателя в одной транзакции
func (s *LedgerDatabase) ApplyLedgerEvent(ctx context.Context, event models.TransactionData) (*models.TransactionData, error) {
	// Начинаем транзакцию
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("ApplyLedgerEvent. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	applied, err := applyLedgerEventTx(ctx, tx, event)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit failed: %w", err)
	}
	return applied, nil
}

// WithdrawPoints - ручное списание баллов. Достаточность баланса проверяется
// условным UPDATE в момент списания, в той же транзакции, что и запись журнала.
func (s *LedgerDatabase) WithdrawPoints(ctx context.Context, customerID int64, points int64, description string) (*models.TransactionData, error) {
	// Начинаем транзакцию
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("WithdrawPoints. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	transaction, err := applyDebitLedgerEventTx(ctx, tx, models.TransactionData{
		CustomerID:  customerID,
		PointChange: -points,
		Type:        models.TransactionAdjust,
		Description: description,
	})
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit failed: %w", err)
	}
	return transaction, nil
}

// GetTransactions - история операций покупателя, новые записи первыми
func (s *LedgerDatabase) GetTransactions(ctx context.Context, customerID int64, limit int, offset int) ([]models.TransactionData, error) {
	var transactions []models.TransactionData
	rows, err := s.DB.Pool.Query(ctx, GetTransactions, customerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	for rows.Next() {
		var (
			id              string
			invoiceID       *int64
			pointChange     int64
			transactionType string
			description     string
			createdAt       time.Time
		)
		err := rows.Scan(
			&id,
			&invoiceID,
			&pointChange,
			&transactionType,
			&description,
			&createdAt,
		)
		if err != nil {
			return transactions, fmt.Errorf("failed scan transaction data: %w", err)
		}
		transactions = append(transactions, models.TransactionData{
			ID:          id,
			CustomerID:  customerID,
			InvoiceID:   invoiceID,
			PointChange: pointChange,
			Type:        transactionType,
			Description: description,
			CreatedAt:   createdAt,
		})
	}
	return transactions, err
}
