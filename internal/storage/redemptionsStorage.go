package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/fralcy/MegaMarket-sub000/internal/logger"
	"github.com/fralcy/MegaMarket-sub000/internal/models"
)

const (
	GetRewardForRedeem = `SELECT point_cost, is_active FROM REWARDS WHERE id=$1;`
	InsertRedemption   = `INSERT INTO CUSTOMER_REWARDS (customer_id, reward_id, invoice_id, status)
							VALUES ($1, $2, $3, $4)
							RETURNING id, redeemed_at;`
	GetRedemption = `SELECT id, customer_id, reward_id, invoice_id, status, redeemed_at, used_at
						FROM CUSTOMER_REWARDS WHERE id=$1;`
	GetRedemptions = `SELECT id, customer_id, reward_id, invoice_id, status, redeemed_at, used_at
						FROM CUSTOMER_REWARDS
						WHERE ($1::BIGINT IS NULL OR customer_id = $1)
						  AND ($2::TEXT IS NULL OR status = $2)
						ORDER BY redeemed_at DESC;`
	// Переход статуса только из ожидаемого текущего: смена статуса из другого
	// состояния не пройдёт условие WHERE и не затронет ни одной строки.
	UpdateRedemptionStatus = `UPDATE CUSTOMER_REWARDS
								SET status = $3,
								    invoice_id = COALESCE($4, invoice_id),
								    used_at = CASE WHEN $5 THEN NOW() ELSE used_at END
								WHERE id = $1 AND status = $2
								RETURNING id, customer_id, reward_id, invoice_id, status, redeemed_at, used_at;`
	GetRedemptionForDelete = `SELECT customer_id, reward_id, status FROM CUSTOMER_REWARDS WHERE id=$1 FOR UPDATE;`
	DeleteRedemption       = `DELETE FROM CUSTOMER_REWARDS WHERE id=$1;`
	CheckRedemptionExists  = `SELECT EXISTS(SELECT 1 FROM CUSTOMER_REWARDS WHERE id=$1);`
)

type RedemptionDatabase struct {
	DB *Database
}

// Создание хранилища
func NewRedemptionsStorage(db *Database) RedemptionsStorage {
	return &RedemptionDatabase{DB: db}
}

// CreateRedemption - обмен баллов на вознаграждение. Списание баллов, резервирование
// остатка, запись журнала и строка обмена создаются в одной транзакции: либо всё,
// либо ничего. При конфликте конкурентных транзакций операция повторяется
// ограниченное число раз (см. WithConflictRetry).
func (s *RedemptionDatabase) CreateRedemption(ctx context.Context, customerID int64, rewardID int64, invoiceID *int64) (*models.RedemptionData, error) {
	var redemption *models.RedemptionData
	err := WithConflictRetry(ctx, "CreateRedemption", func(ctx context.Context) error {
		var txErr error
		redemption, txErr = s.createRedemptionTx(ctx, customerID, rewardID, invoiceID)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return redemption, nil
}

func (s *RedemptionDatabase) createRedemptionTx(ctx context.Context, customerID int64, rewardID int64, invoiceID *int64) (*models.RedemptionData, error) {
	// Начинаем транзакцию
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("CreateRedemption. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	// 1. Узнаём стоимость вознаграждения и проверяем, что оно активно
	var (
		pointCost int64
		isActive  bool
	)
	err = tx.QueryRow(ctx, GetRewardForRedeem, rewardID).Scan(&pointCost, &isActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRewardNotFound
		}
		return nil, fmt.Errorf("failed to get reward: %w", err)
	}
	if !isActive {
		err = ErrRewardNotFound
		return nil, err
	}

	// 2. Списываем баллы через журнал: условный UPDATE баланса,
	// пересчёт ранга и запись журнала одним общим путём
	if _, err = applyDebitLedgerEventTx(ctx, tx, models.TransactionData{
		CustomerID:  customerID,
		InvoiceID:   invoiceID,
		PointChange: -pointCost,
		Type:        models.TransactionRedeem,
		Description: fmt.Sprintf("redeem reward %d", rewardID),
	}); err != nil {
		return nil, err
	}

	// 3. Резервируем единицу вознаграждения
	tag, err := tx.Exec(ctx, ReserveReward, rewardID)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve reward: %w", err)
	}
	if tag.RowsAffected() == 0 {
		err = ErrOutOfStock
		return nil, err
	}

	// 4. Создаём строку обмена в статусе PENDING
	var (
		redemptionID int64
		redeemedAt   time.Time
	)
	err = tx.QueryRow(ctx, InsertRedemption, customerID, rewardID, invoiceID, models.RedemptionStatusPending).Scan(&redemptionID, &redeemedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert redemption: %w", err)
	}

	// Если всё успешно - коммитим
	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("CreateRedemption. Commit failed: %w", err)
	}

	return &models.RedemptionData{
		ID:         redemptionID,
		CustomerID: customerID,
		RewardID:   rewardID,
		InvoiceID:  invoiceID,
		Status:     models.RedemptionStatusPending,
		RedeemedAt: redeemedAt,
	}, nil
}

func (s *RedemptionDatabase) GetRedemption(ctx context.Context, redemptionID int64) (*models.RedemptionData, error) {
	redemption, err := scanRedemption(s.DB.Pool.QueryRow(ctx, GetRedemption, redemptionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRedemptionNotFound
		}
		return nil, fmt.Errorf("failed to get redemption: %w", err)
	}
	return redemption, nil
}

// GetRedemptions - выборка обменов с фильтром по покупателю и статусу, новые первыми
func (s *RedemptionDatabase) GetRedemptions(ctx context.Context, filter models.RedemptionFilter) ([]models.RedemptionData, error) {
	var redemptions []models.RedemptionData
	rows, err := s.DB.Pool.Query(ctx, GetRedemptions, filter.CustomerID, filter.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to get redemptions: %w", err)
	}
	for rows.Next() {
		redemption, err := scanRedemption(rows)
		if err != nil {
			return redemptions, fmt.Errorf("failed scan redemption data: %w", err)
		}
		redemptions = append(redemptions, *redemption)
	}
	return redemptions, err
}

// UpdateRedemptionStatus - атомарный переход статуса обмена из from в to.
// Если строка существует, но статус не совпал с ожидаемым - ErrInvalidState.
func (s *RedemptionDatabase) UpdateRedemptionStatus(ctx context.Context, redemptionID int64, from string, to string, invoiceID *int64, setUsedAt bool) (*models.RedemptionData, error) {
	redemption, err := scanRedemption(s.DB.Pool.QueryRow(ctx, UpdateRedemptionStatus, redemptionID, from, to, invoiceID, setUsedAt))
	if err == nil {
		return redemption, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to update redemption status: %w", err)
	}
	// Отличаем отсутствие обмена от неподходящего статуса
	var exists bool
	if chkErr := s.DB.Pool.QueryRow(ctx, CheckRedemptionExists, redemptionID).Scan(&exists); chkErr != nil {
		return nil, fmt.Errorf("failed to check redemption exists: %w", chkErr)
	}
	if !exists {
		return nil, ErrRedemptionNotFound
	}
	return nil, ErrInvalidState
}

// DeleteRedemption - отмена обмена в статусе PENDING с полной компенсацией:
// возврат баллов записью журнала, возврат единицы остатка, удаление строки обмена.
// Обмены в статусах CLAIMED и USED не возвращаются через этот путь.
func (s *RedemptionDatabase) DeleteRedemption(ctx context.Context, redemptionID int64) error {
	return WithConflictRetry(ctx, "DeleteRedemption", func(ctx context.Context) error {
		return s.deleteRedemptionTx(ctx, redemptionID)
	})
}

func (s *RedemptionDatabase) deleteRedemptionTx(ctx context.Context, redemptionID int64) error {
	// Начинаем транзакцию
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("DeleteRedemption. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	// 1. Читаем строку обмена под блокировкой
	var (
		customerID int64
		rewardID   int64
		status     string
	)
	err = tx.QueryRow(ctx, GetRedemptionForDelete, redemptionID).Scan(&customerID, &rewardID, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrRedemptionNotFound
		}
		return fmt.Errorf("failed to get redemption: %w", err)
	}
	if status != models.RedemptionStatusPending {
		err = ErrInvalidState
		return err
	}

	// 2. Узнаём стоимость вознаграждения для возврата
	var (
		pointCost int64
		isActive  bool
	)
	err = tx.QueryRow(ctx, GetRewardForRedeem, rewardID).Scan(&pointCost, &isActive)
	if err != nil {
		return fmt.Errorf("failed to get reward: %w", err)
	}

	// 3. Возвращаем баллы записью журнала и пересчитываем ранг
	if _, err = applyLedgerEventTx(ctx, tx, models.TransactionData{
		CustomerID:  customerID,
		PointChange: pointCost,
		Type:        models.TransactionAdjust,
		Description: "refund",
	}); err != nil {
		return err
	}

	// 4. Возвращаем единицу остатка
	if _, err = tx.Exec(ctx, ReleaseReward, rewardID); err != nil {
		return fmt.Errorf("failed to release reward: %w", err)
	}

	// 5. Удаляем строку обмена
	if _, err = tx.Exec(ctx, DeleteRedemption, redemptionID); err != nil {
		return fmt.Errorf("failed to delete redemption: %w", err)
	}

	// Если всё успешно - коммитим
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("DeleteRedemption. Commit failed: %w", err)
	}
	return nil
}

func scanRedemption(row pgx.Row) (*models.RedemptionData, error) {
	var (
		id         int64
		customerID int64
		rewardID   int64
		invoiceID  *int64
		status     string
		redeemedAt time.Time
		usedAt     *time.Time
	)
	err := row.Scan(
		&id,
		&customerID,
		&rewardID,
		&invoiceID,
		&status,
		&redeemedAt,
		&usedAt,
	)
	if err != nil {
		return nil, err
	}
	return &models.RedemptionData{
		ID:         id,
		CustomerID: customerID,
		RewardID:   rewardID,
		InvoiceID:  invoiceID,
		Status:     status,
		RedeemedAt: redeemedAt,
		UsedAt:     usedAt,
	}, nil
}
