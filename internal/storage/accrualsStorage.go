package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/fralcy/MegaMarket-sub000/internal/logger"
	"github.com/fralcy/MegaMarket-sub000/internal/models"
)

const (
	InsertAccrual = `INSERT INTO POINT_ACCRUALS (id, customer_id, invoice_id, amount, status)
						VALUES ($1, $2, $3, $4, $5)
						ON CONFLICT (invoice_id) DO NOTHING
						RETURNING id;`
	// Повторный захват PROCESSING-строки разрешён только по устареванию:
	// свежезахваченную строку ещё обрабатывает другой экземпляр сервиса.
	ClaimAccrualsForProcessing = `UPDATE POINT_ACCRUALS
									SET status = 'PROCESSING',
									    retry_count = retry_count + 1,
									    updated_at = NOW()
									WHERE id IN (
									    SELECT id FROM POINT_ACCRUALS
									    WHERE status = 'NEW'
									       OR (status = 'PROCESSING' AND retry_count < 3 AND updated_at < NOW() - INTERVAL '1 minute')
									    ORDER BY created_at
									    LIMIT $1
									    FOR UPDATE SKIP LOCKED
									)
									RETURNING id, customer_id, invoice_id, amount, status, created_at;`
	CompleteAccrualStatus = `UPDATE POINT_ACCRUALS
								SET status = 'PROCESSED',
								    updated_at = NOW()
								WHERE id = $1 AND status = 'PROCESSING';`
	UpdateAccrualStatus = `UPDATE POINT_ACCRUALS
							SET status = $1,
							    updated_at = NOW()
							WHERE id = $2;`
)

type AccrualDatabase struct {
	DB *Database
}

// Создание хранилища
func NewAccrualsStorage(db *Database) AccrualsStorage {
	return &AccrualDatabase{DB: db}
}

// AddAccrual - постановка начисления за чек в очередь. Повторная постановка
// одного и того же чека отсекается уникальностью invoice_id.
func (s *AccrualDatabase) AddAccrual(ctx context.Context, accrual models.AccrualData) error {
	var prevID string
	err := s.DB.Pool.QueryRow(ctx, InsertAccrual,
		accrual.ID,
		accrual.CustomerID,
		accrual.InvoiceID,
		accrual.Amount,
		models.AccrualStatusNew,
	).Scan(&prevID)

	// Успешное добавление
	if err == nil {
		return nil
	}

	// ON CONFLICT DO NOTHING не возвращает строку при дубле
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrAlreadyExists
	}

	// Проверяем нарушение ссылочной целостности (нет такого покупателя)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return ErrCustomerNotFound
	}

	// Все остальные ошибки
	return fmt.Errorf("failed to add accrual: %w", err)
}

// ClaimAccrualsForProcessing - захват пачки начислений для обработки.
// FOR UPDATE SKIP LOCKED позволяет нескольким экземплярам сервиса
// разбирать очередь без пересечений.
func (s *AccrualDatabase) ClaimAccrualsForProcessing(ctx context.Context, count int) ([]models.AccrualData, error) {
	var accruals []models.AccrualData
	rows, err := s.DB.Pool.Query(ctx, ClaimAccrualsForProcessing, count)
	if err != nil {
		return nil, fmt.Errorf("failed to claim accruals: %w", err)
	}
	for rows.Next() {
		var (
			id         string
			customerID int64
			invoiceID  int64
			amount     decimal.Decimal
			status     string
			createdAt  time.Time
		)
		err := rows.Scan(
			&id,
			&customerID,
			&invoiceID,
			&amount,
			&status,
			&createdAt,
		)
		if err != nil {
			return accruals, fmt.Errorf("failed scan accrual data: %w", err)
		}
		accruals = append(accruals, models.AccrualData{
			ID:         id,
			CustomerID: customerID,
			InvoiceID:  invoiceID,
			Amount:     amount,
			Status:     status,
			CreatedAt:  createdAt,
		})
	}
	return accruals, err
}

// CompleteAccrual - начисление баллов покупателю и завершение строки очереди
// в одной транзакции
func (s *AccrualDatabase) CompleteAccrual(ctx context.Context, accrualID string, event models.TransactionData) error {
	// Начинаем транзакцию
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("CompleteAccrual. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	// Начисляем баллы через журнал (баланс и ранг обновятся там же)
	if _, err = applyLedgerEventTx(ctx, tx, event); err != nil {
		return err
	}

	// Помечаем начисление обработанным. Условие по статусу защищает от
	// двойного начисления: если строку уже завершил другой экземпляр,
	// откатываем транзакцию вместе с записью журнала.
	var tag pgconn.CommandTag
	if tag, err = tx.Exec(ctx, CompleteAccrualStatus, accrualID); err != nil {
		return fmt.Errorf("failed to update accrual status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		err = ErrAlreadyExists
		return err
	}

	// Если всё успешно - коммитим
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("CompleteAccrual. Commit failed: %w", err)
	}
	return nil
}

// MarkAccrualProcessed - завершение начисления без записи журнала
// (сумма чека слишком мала и баллов не даёт)
func (s *AccrualDatabase) MarkAccrualProcessed(ctx context.Context, accrualID string) error {
	if _, err := s.DB.Pool.Exec(ctx, UpdateAccrualStatus, models.AccrualStatusProcessed, accrualID); err != nil {
		return fmt.Errorf("failed to mark accrual processed: %w", err)
	}
	return nil
}

// MarkAccrualInvalid - пометка начисления необрабатываемым (нет покупателя и т.п.)
func (s *AccrualDatabase) MarkAccrualInvalid(ctx context.Context, accrualID string) error {
	if _, err := s.DB.Pool.Exec(ctx, UpdateAccrualStatus, models.AccrualStatusInvalid, accrualID); err != nil {
		return fmt.Errorf("failed to mark accrual invalid: %w", err)
	}
	return nil
}
