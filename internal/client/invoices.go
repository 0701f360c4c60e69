package client

import (
	"errors"
	"net/http"
	"time"
)

// InvoiceResponse - модель чека из сервиса чеков
type InvoiceResponse struct {
	ID     int64   `json:"id"`
	Total  float64 `json:"total"`
	Status string  `json:"status"`
}

var (
	ErrServiceUnavailable = errors.New("invoice service unavailable")
	ErrInvoiceNotFound    = errors.New("invoice not found")
)

type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded"
}

func NewRateLimitError(headers http.Header) *RateLimitError {
	return &RateLimitError{
		RetryAfter: ParseRetryAfter(headers),
	}
}
