package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/fralcy/MegaMarket-sub000/internal/logger"
	"github.com/fralcy/MegaMarket-sub000/internal/models"
	"github.com/fralcy/MegaMarket-sub000/internal/storage"
)

type RewardsService interface {
	GetRewards(ctx context.Context) ([]models.RewardData, error)
	GetRedeemable(ctx context.Context) ([]models.RewardData, error)
	Deactivate(ctx context.Context, rewardID int64) error
}

type Rewards struct {
	Storage storage.RewardsStorage
}

// Создание сервиса
func NewRewards(storage storage.RewardsStorage) RewardsService {
	return &Rewards{Storage: storage}
}

// GetRewards возвращает все активные вознаграждения каталога
func (s *Rewards) GetRewards(ctx context.Context) ([]models.RewardData, error) {
	rewards, err := s.Storage.GetRewards(ctx, false)
	if err != nil {
		logger.Error("Failed to get rewards", zap.Error(err))
		return nil, err
	}
	return rewards, nil
}

// GetRedeemable возвращает активные вознаграждения с положительным остатком
func (s *Rewards) GetRedeemable(ctx context.Context) ([]models.RewardData, error) {
	rewards, err := s.Storage.GetRewards(ctx, true)
	if err != nil {
		logger.Error("Failed to get redeemable rewards", zap.Error(err))
		return nil, err
	}
	return rewards, nil
}

// Deactivate - логическое удаление вознаграждения из каталога
func (s *Rewards) Deactivate(ctx context.Context, rewardID int64) error {
	err := s.Storage.DeactivateReward(ctx, rewardID)
	if err != nil {
		if errors.Is(err, storage.ErrRewardNotFound) {
			logger.Warn("Reward not found", rewardID)
			return err
		}
		logger.Error("Failed to deactivate reward", zap.Error(err))
		return err
	}
	return nil
}
