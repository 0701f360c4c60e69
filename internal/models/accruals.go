package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Статусы начислений баллов за чеки
const (
	AccrualStatusNew        = "NEW"
	AccrualStatusProcessing = "PROCESSING"
	AccrualStatusProcessed  = "PROCESSED"
	AccrualStatusInvalid    = "INVALID"
)

// AccrualData - отложенное начисление баллов за оплаченный чек
type AccrualData struct {
	ID         string
	CustomerID int64
	InvoiceID  int64
	Amount     decimal.Decimal
	Status     string
	CreatedAt  time.Time
}

// AccrualRequest - модель запроса начисления баллов от сервиса чеков
type AccrualRequest struct {
	CustomerID int64   `json:"customer_id"`
	InvoiceID  int64   `json:"invoice_id"`
	Amount     float64 `json:"amount"`
}
