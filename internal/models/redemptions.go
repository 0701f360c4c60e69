package models

import "time"

// Статусы обмена баллов на вознаграждение
const (
	RedemptionStatusPending = "PENDING"
	RedemptionStatusClaimed = "CLAIMED"
	RedemptionStatusUsed    = "USED"
)

// RedemptionData - модель обмена баллов на вознаграждение
type RedemptionData struct {
	ID         int64
	CustomerID int64
	RewardID   int64
	InvoiceID  *int64
	Status     string
	RedeemedAt time.Time
	UsedAt     *time.Time
}

// RedeemRequest - модель запроса обмена баллов на вознаграждение
type RedeemRequest struct {
	CustomerID int64  `json:"customer_id"`
	RewardID   int64  `json:"reward_id"`
	InvoiceID  *int64 `json:"invoice_id,omitempty"`
}

// ApplyInvoiceRequest - модель запроса привязки вознаграждения к чеку
type ApplyInvoiceRequest struct {
	InvoiceID int64 `json:"invoice_id"`
}

// RedemptionResponse - модель обмена для выдачи
type RedemptionResponse struct {
	ID         int64  `json:"id"`
	CustomerID int64  `json:"customer_id"`
	RewardID   int64  `json:"reward_id"`
	InvoiceID  *int64 `json:"invoice_id,omitempty"`
	Status     string `json:"status"`
	RedeemedAt string `json:"redeemed_at"`
	UsedAt     string `json:"used_at,omitempty"`
}

// RedemptionFilter - фильтр выборки обменов
type RedemptionFilter struct {
	CustomerID *int64
	Status     *string
}

// ValidRedemptionStatus - проверяет, что статус обмена из допустимого набора
func ValidRedemptionStatus(status string) bool {
	return status == RedemptionStatusPending ||
		status == RedemptionStatusClaimed ||
		status == RedemptionStatusUsed
}

// NextStatusOnClaim - вычисляет статус обмена после получения вознаграждения.
// Физический подарок не привязывается к чеку, поэтому сразу становится USED.
// Ваучеры и скидки ждут применения к чеку в статусе CLAIMED.
func NextStatusOnClaim(rewardType string) (status string, terminal bool) {
	if rewardType == RewardTypeGift {
		return RedemptionStatusUsed, true
	}
	return RedemptionStatusClaimed, false
}
