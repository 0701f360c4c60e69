package models

// CustomerData - модель покупателя из хранилища
type CustomerData struct {
	ID     int64
	Name   string
	Points int64
	Rank   string
}

// CustomerBalance - текущий баланс баллов и ранг покупателя
type CustomerBalance struct {
	Points int64  `json:"points"`
	Rank   string `json:"rank"`
}

// EarnRequest - модель запроса ручного начисления баллов
type EarnRequest struct {
	Points      int64  `json:"points"`
	InvoiceID   *int64 `json:"invoice_id,omitempty"`
	Description string `json:"description,omitempty"`
}

// WithdrawRequest - модель запроса ручного списания баллов
type WithdrawRequest struct {
	Points      int64  `json:"points"`
	Description string `json:"description,omitempty"`
}
