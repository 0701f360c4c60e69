package storage

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"

	"github.com/fralcy/MegaMarket-sub000/internal/config"
	"github.com/fralcy/MegaMarket-sub000/internal/logger"
	"github.com/fralcy/MegaMarket-sub000/internal/models"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestLedgerStorage_WithdrawPoints(t *testing.T) {
	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	testCases := []struct {
		Name          string
		CustomerID    int64
		Points        int64
		Description   string
		SetupMocks    func(mock pgxmock.PgxPoolIface)
		ExpectedError error
	}{
		{
			Name:        "Error. Insufficient points rolls back #1",
			CustomerID:  1,
			Points:      500,
			Description: "manual",
			SetupMocks: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				mock.ExpectQuery(`SET points = points - \$1`).
					WithArgs(int64(500), int64(1)).
					WillReturnError(pgx.ErrNoRows)
				mock.ExpectQuery(`SELECT 1 FROM CUSTOMERS WHERE`).
					WithArgs(int64(1)).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
				mock.ExpectRollback()
			},
			ExpectedError: ErrInsufficientPoints,
		},
		{
			Name:        "Error. Customer not found rolls back #2",
			CustomerID:  99,
			Points:      500,
			Description: "manual",
			SetupMocks: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				mock.ExpectQuery(`SET points = points - \$1`).
					WithArgs(int64(500), int64(99)).
					WillReturnError(pgx.ErrNoRows)
				mock.ExpectQuery(`SELECT 1 FROM CUSTOMERS WHERE`).
					WithArgs(int64(99)).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectRollback()
			},
			ExpectedError: ErrCustomerNotFound,
		},
		{
			Name:        "Success. Balance, rank and journal change together #3",
			CustomerID:  1,
			Points:      500,
			Description: "manual",
			SetupMocks: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				mock.ExpectQuery(`SET points = points - \$1`).
					WithArgs(int64(500), int64(1)).
					WillReturnRows(pgxmock.NewRows([]string{"points"}).AddRow(int64(1500)))
				mock.ExpectExec(`UPDATE CUSTOMERS SET rank`).
					WithArgs(models.RankGold, int64(1)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectQuery(`INSERT INTO POINT_TRANSACTIONS`).
					WithArgs(pgxmock.AnyArg(), int64(1), pgxmock.AnyArg(), int64(-500), models.TransactionAdjust, "manual").
					WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
				mock.ExpectCommit()
			},
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			if err != nil {
				t.Fatalf("failed to create pool mock: %v", err)
			}
			defer mock.Close()
			tc.SetupMocks(mock)

			s := NewLedgerStorage(&Database{Pool: mock})

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			transaction, err := s.WithdrawPoints(ctx, tc.CustomerID, tc.Points, tc.Description)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if tc.ExpectedError == nil && transaction.PointChange != -tc.Points {
				t.Errorf("Expected point change %d, got: %d", -tc.Points, transaction.PointChange)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("Unmet expectations: %v", err)
			}
		})
	}
}

func TestLedgerStorage_ApplyLedgerEvent(t *testing.T) {
	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	testCases := []struct {
		Name          string
		Event         models.TransactionData
		SetupMocks    func(mock pgxmock.PgxPoolIface)
		ExpectedError error
	}{
		{
			Name: "Error. Customer not found rolls back #1",
			Event: models.TransactionData{
				CustomerID: 99, PointChange: 100, Type: models.TransactionEarn,
			},
			SetupMocks: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				mock.ExpectQuery(`SET points = points \+ \$1`).
					WithArgs(int64(100), int64(99)).
					WillReturnError(pgx.ErrNoRows)
				mock.ExpectRollback()
			},
			ExpectedError: ErrCustomerNotFound,
		},
		{
			Name: "Success. Credit updates balance, rank and journal #2",
			Event: models.TransactionData{
				CustomerID: 1, InvoiceID: int64Ptr(456), PointChange: 100,
				Type: models.TransactionEarn, Description: "invoice 456 accrual",
			},
			SetupMocks: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				mock.ExpectQuery(`SET points = points \+ \$1`).
					WithArgs(int64(100), int64(1)).
					WillReturnRows(pgxmock.NewRows([]string{"points"}).AddRow(int64(700)))
				mock.ExpectExec(`UPDATE CUSTOMERS SET rank`).
					WithArgs(models.RankSilver, int64(1)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectQuery(`INSERT INTO POINT_TRANSACTIONS`).
					WithArgs(pgxmock.AnyArg(), int64(1), int64Ptr(456), int64(100), models.TransactionEarn, "invoice 456 accrual").
					WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
				mock.ExpectCommit()
			},
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			if err != nil {
				t.Fatalf("failed to create pool mock: %v", err)
			}
			defer mock.Close()
			tc.SetupMocks(mock)

			s := NewLedgerStorage(&Database{Pool: mock})

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			_, err = s.ApplyLedgerEvent(ctx, tc.Event)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("Unmet expectations: %v", err)
			}
		})
	}
}
