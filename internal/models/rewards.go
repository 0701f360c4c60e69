package models

import "github.com/shopspring/decimal"

// Типы вознаграждений
const (
	RewardTypeGift     = "GIFT"
	RewardTypeVoucher  = "VOUCHER"
	RewardTypeDiscount = "DISCOUNT"
)

// RewardData - модель вознаграждения из хранилища
type RewardData struct {
	ID                int64
	Name              string
	PointCost         int64
	RewardType        string
	Value             decimal.Decimal
	QuantityAvailable int64
	IsActive          bool
}

// RewardResponse - модель вознаграждения для выдачи
type RewardResponse struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	PointCost         int64   `json:"point_cost"`
	RewardType        string  `json:"reward_type"`
	Value             float64 `json:"value,omitempty"`
	QuantityAvailable int64   `json:"quantity_available"`
}

// ValidRewardType - проверяет, что тип вознаграждения из допустимого набора
func ValidRewardType(rewardType string) bool {
	return rewardType == RewardTypeGift ||
		rewardType == RewardTypeVoucher ||
		rewardType == RewardTypeDiscount
}
