package storage

import (
	"context"
	"errors"

	"github.com/fralcy/MegaMarket-sub000/internal/models"
)

type CustomersStorage interface {
	GetCustomer(ctx context.Context, customerID int64) (*models.CustomerData, error)
	GetCustomerBalance(ctx context.Context, customerID int64) (*models.CustomerBalance, error)
}

type LedgerStorage interface {
	ApplyLedgerEvent(ctx context.Context, event models.TransactionData) (*models.TransactionData, error)
	WithdrawPoints(ctx context.Context, customerID int64, points int64, description string) (*models.TransactionData, error)
	GetTransactions(ctx context.Context, customerID int64, limit int, offset int) ([]models.TransactionData, error)
}

type RewardsStorage interface {
	GetReward(ctx context.Context, rewardID int64) (*models.RewardData, error)
	GetRewards(ctx context.Context, onlyRedeemable bool) ([]models.RewardData, error)
	ReserveReward(ctx context.Context, rewardID int64) error
	ReleaseReward(ctx context.Context, rewardID int64) error
	DeactivateReward(ctx context.Context, rewardID int64) error
}

type RedemptionsStorage interface {
	CreateRedemption(ctx context.Context, customerID int64, rewardID int64, invoiceID *int64) (*models.RedemptionData, error)
	GetRedemption(ctx context.Context, redemptionID int64) (*models.RedemptionData, error)
	GetRedemptions(ctx context.Context, filter models.RedemptionFilter) ([]models.RedemptionData, error)
	UpdateRedemptionStatus(ctx context.Context, redemptionID int64, from string, to string, invoiceID *int64, setUsedAt bool) (*models.RedemptionData, error)
	DeleteRedemption(ctx context.Context, redemptionID int64) error
}

type AccrualsStorage interface {
	AddAccrual(ctx context.Context, accrual models.AccrualData) error
	ClaimAccrualsForProcessing(ctx context.Context, count int) ([]models.AccrualData, error)
	CompleteAccrual(ctx context.Context, accrualID string, event models.TransactionData) error
	MarkAccrualProcessed(ctx context.Context, accrualID string) error
	MarkAccrualInvalid(ctx context.Context, accrualID string) error
}

type Storage struct {
	Customers   CustomersStorage
	Ledger      LedgerStorage
	Rewards     RewardsStorage
	Redemptions RedemptionsStorage
	Accruals    AccrualsStorage
}

// Создание хранилища
func NewStorage(db *Database) Storage {
	return Storage{
		Customers:   NewCustomersStorage(db),
		Ledger:      NewLedgerStorage(db),
		Rewards:     NewRewardsStorage(db),
		Redemptions: NewRedemptionsStorage(db),
		Accruals:    NewAccrualsStorage(db),
	}
}

var (
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrRewardNotFound     = errors.New("reward not found")
	ErrRedemptionNotFound = errors.New("redemption not found")

	ErrInsufficientPoints = errors.New("insufficient points")
	ErrOutOfStock         = errors.New("reward is out of stock")
	ErrInvalidState       = errors.New("invalid redemption state")

	ErrAlreadyExists = errors.New("already exists")
	ErrConflict      = errors.New("transaction conflict")
)
