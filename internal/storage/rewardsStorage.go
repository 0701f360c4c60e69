package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/fralcy/MegaMarket-sub000/internal/models"
)

const (
	GetReward = `SELECT id, name, point_cost, reward_type, value, quantity_available, is_active
					FROM REWARDS WHERE id=$1;`
	GetRewards = `SELECT id, name, point_cost, reward_type, value, quantity_available, is_active
					FROM REWARDS
					WHERE is_active AND (NOT $1 OR quantity_available > 0)
					ORDER BY point_cost;`
	// Резервирование единицы вознаграждения. Условный UPDATE повторно проверяет
	// остаток под блокировкой строки: конкурентные вызовы не уведут остаток ниже нуля.
	ReserveReward = `UPDATE REWARDS
						SET quantity_available = quantity_available - 1
						WHERE id = $1 AND quantity_available > 0;`
	ReleaseReward    = `UPDATE REWARDS SET quantity_available = quantity_available + 1 WHERE id = $1;`
	DeactivateReward = `UPDATE REWARDS SET is_active = FALSE WHERE id = $1;`
)

type RewardDatabase struct {
	DB *Database
}

// Создание хранилища
func NewRewardsStorage(db *Database) RewardsStorage {
	return &RewardDatabase{DB: db}
}

func (s *RewardDatabase) GetReward(ctx context.Context, rewardID int64) (*models.RewardData, error) {
	reward, err := scanReward(s.DB.Pool.QueryRow(ctx, GetReward, rewardID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRewardNotFound
		}
		return nil, fmt.Errorf("failed to get reward: %w", err)
	}
	return reward, nil
}

// GetRewards - список активных вознаграждений. При onlyRedeemable
// отдаются только вознаграждения с положительным остатком.
func (s *RewardDatabase) GetRewards(ctx context.Context, onlyRedeemable bool) ([]models.RewardData, error) {
	var rewards []models.RewardData
	rows, err := s.DB.Pool.Query(ctx, GetRewards, onlyRedeemable)
	if err != nil {
		return nil, fmt.Errorf("failed to get rewards: %w", err)
	}
	for rows.Next() {
		reward, err := scanReward(rows)
		if err != nil {
			return rewards, fmt.Errorf("failed scan reward data: %w", err)
		}
		rewards = append(rewards, *reward)
	}
	return rewards, err
}

func (s *RewardDatabase) ReserveReward(ctx context.Context, rewardID int64) error {
	tag, err := s.DB.Pool.Exec(ctx, ReserveReward, rewardID)
	if err != nil {
		return fmt.Errorf("failed to reserve reward: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrOutOfStock
	}
	return nil
}

func (s *RewardDatabase) ReleaseReward(ctx context.Context, rewardID int64) error {
	tag, err := s.DB.Pool.Exec(ctx, ReleaseReward, rewardID)
	if err != nil {
		return fmt.Errorf("failed to release reward: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRewardNotFound
	}
	return nil
}

// DeactivateReward - логическое удаление вознаграждения.
// История обменов и остаток не затрагиваются.
func (s *RewardDatabase) DeactivateReward(ctx context.Context, rewardID int64) error {
	tag, err := s.DB.Pool.Exec(ctx, DeactivateReward, rewardID)
	if err != nil {
		return fmt.Errorf("failed to deactivate reward: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRewardNotFound
	}
	return nil
}

func scanReward(row pgx.Row) (*models.RewardData, error) {
	var (
		id                int64
		name              string
		pointCost         int64
		rewardType        string
		value             decimal.Decimal
		quantityAvailable int64
		isActive          bool
	)
	err := row.Scan(
		&id,
		&name,
		&pointCost,
		&rewardType,
		&value,
		&quantityAvailable,
		&isActive,
	)
	if err != nil {
		return nil, err
	}
	return &models.RewardData{
		ID:                id,
		Name:              name,
		PointCost:         pointCost,
		RewardType:        rewardType,
		Value:             value,
		QuantityAvailable: quantityAvailable,
		IsActive:          isActive,
	}, nil
}
