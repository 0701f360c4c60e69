package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/fralcy/MegaMarket-sub000/internal/client"
	"github.com/fralcy/MegaMarket-sub000/internal/logger"
)

// InvoiceService - проверка существования чека в сервисе чеков
type InvoiceService interface {
	ValidateInvoice(ctx context.Context, invoiceID int64) error
}

type Invoices struct {
	Client  *client.Client
	Limiter *client.RateLimiter
}

// Создание сервиса
func NewInvoices(baseURL string) InvoiceService {
	return &Invoices{
		Client:  client.NewClient(baseURL, &http.Client{}),
		Limiter: client.NewRateLimiter(),
	}
}

// ValidateInvoice проверяет, что чек с таким идентификатором существует
func (s *Invoices) ValidateInvoice(ctx context.Context, invoiceID int64) error {
	if err := s.Limiter.Wait(ctx); err != nil {
		return err
	}

	_, err := s.Client.GetInvoice(ctx, invoiceID)
	if err != nil {
		// проверка большого количества запросов
		var rateLimitErr *client.RateLimitError
		if errors.As(err, &rateLimitErr) {
			logger.Warn("Too many requests to invoice service:", invoiceID)
			s.Limiter.BlockFor(rateLimitErr.RetryAfter)
			return client.ErrServiceUnavailable
		}
		return err
	}
	return nil
}
