package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fralcy/MegaMarket-sub000/internal/models"
)

const (
	GetCustomer        = `SELECT id, name, points, rank FROM CUSTOMERS WHERE id=$1;`
	GetCustomerBalance = `SELECT points, rank FROM CUSTOMERS WHERE id=$1;`
)

type CustomerDatabase struct {
	DB *Database
}

// Создание хранилища
func NewCustomersStorage(db *Database) CustomersStorage {
	return &CustomerDatabase{DB: db}
}

func (s *CustomerDatabase) GetCustomer(ctx context.Context, customerID int64) (*models.CustomerData, error) {
	var (
		id     int64
		name   string
		points int64
		rank   string
	)
	err := s.DB.Pool.QueryRow(ctx, GetCustomer, customerID).Scan(&id, &name, &points, &rank)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return &models.CustomerData{
		ID:     id,
		Name:   name,
		Points: points,
		Rank:   rank,
	}, nil
}

// GetCustomerBalance - Получение баланса баллов и ранга покупателя
func (s *CustomerDatabase) GetCustomerBalance(ctx context.Context, customerID int64) (*models.CustomerBalance, error) {
	var (
		points int64
		rank   string
	)

	err := s.DB.Pool.QueryRow(ctx, GetCustomerBalance, customerID).Scan(
		&points,
		&rank,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer balance: %w", err)
	}

	return &models.CustomerBalance{
		Points: points,
		Rank:   rank,
	}, nil
}
