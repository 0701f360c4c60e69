package models

import "time"

// Типы операций с баллами
const (
	TransactionEarn   = "EARN"
	TransactionRedeem = "REDEEM"
	TransactionAdjust = "ADJUST"
)

// TransactionData - запись журнала операций с баллами.
// Журнал append-only: записи неизменяемы после создания.
type TransactionData struct {
	ID          string
	CustomerID  int64
	InvoiceID   *int64
	PointChange int64
	Type        string
	Description string
	CreatedAt   time.Time
}

// TransactionResponse - запись журнала операций для выдачи
type TransactionResponse struct {
	ID          string `json:"id"`
	PointChange int64  `json:"point_change"`
	Type        string `json:"transaction_type"`
	InvoiceID   *int64 `json:"invoice_id,omitempty"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
}
