package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fralcy/MegaMarket-sub000/internal/logger"
	"github.com/fralcy/MegaMarket-sub000/internal/models"
	"github.com/fralcy/MegaMarket-sub000/internal/services"
	"github.com/fralcy/MegaMarket-sub000/internal/storage"
	"github.com/fralcy/MegaMarket-sub000/internal/validators"
)

// GetCustomerBalanceHandler — получение баланса баллов и ранга покупателя
func GetCustomerBalanceHandler(l services.LoyaltyService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customerID, ok := validators.ParseID(chi.URLParam(r, "customerID"))
		if !ok {
			http.Error(w, "Invalid customer id", http.StatusUnprocessableEntity)
			return
		}
		balance, err := l.GetBalance(r.Context(), customerID)
		if err != nil {
			if errors.Is(err, storage.ErrCustomerNotFound) {
				http.Error(w, "Customer not found", http.StatusNotFound)
				return
			}
			logger.Error("Failed to get customer balance:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(balance)
		if err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// GetCustomerHistoryHandler — получение истории операций с баллами покупателя
func GetCustomerHistoryHandler(l services.LoyaltyService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customerID, ok := validators.ParseID(chi.URLParam(r, "customerID"))
		if !ok {
			http.Error(w, "Invalid customer id", http.StatusUnprocessableEntity)
			return
		}
		limit, offset, ok := validators.ParsePagination(r.URL.Query().Get("limit"), r.URL.Query().Get("offset"))
		if !ok {
			http.Error(w, "Invalid pagination params", http.StatusUnprocessableEntity)
			return
		}

		transactions, err := l.GetHistory(r.Context(), customerID, limit, offset)
		if err != nil {
			if errors.Is(err, storage.ErrCustomerNotFound) {
				http.Error(w, "Customer not found", http.StatusNotFound)
				return
			}
			logger.Error("Failed to get customer history:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		if len(transactions) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		var response []models.TransactionResponse
		for _, t := range transactions {
			item := models.TransactionResponse{
				ID:          t.ID,
				PointChange: t.PointChange,
				Type:        t.Type,
				InvoiceID:   t.InvoiceID,
				Description: t.Description,
				CreatedAt:   t.CreatedAt.Format(time.RFC3339),
			}
			response = append(response, item)
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(response)
		if err != nil {
			logger.Error("Failed to encode JSON response: ", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// EarnPointsHandler — ручное начисление баллов покупателю
func EarnPointsHandler(l services.LoyaltyService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customerID, ok := validators.ParseID(chi.URLParam(r, "customerID"))
		if !ok {
			http.Error(w, "Invalid customer id", http.StatusUnprocessableEntity)
			return
		}
		var req models.EarnRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		_, err := l.EarnPoints(r.Context(), customerID, req.Points, req.InvoiceID, req.Description)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidPointsAmount):
				http.Error(w, "Invalid points amount", http.StatusUnprocessableEntity)
			case errors.Is(err, storage.ErrCustomerNotFound):
				http.Error(w, "Customer not found", http.StatusNotFound)
			default:
				logger.Error("Failed to earn points:", zap.Error(err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusOK)
	})
}

// WithdrawPointsHandler — запрос на ручное списание баллов покупателя
func WithdrawPointsHandler(l services.LoyaltyService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customerID, ok := validators.ParseID(chi.URLParam(r, "customerID"))
		if !ok {
			http.Error(w, "Invalid customer id", http.StatusUnprocessableEntity)
			return
		}
		var req models.WithdrawRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		_, err := l.WithdrawPoints(r.Context(), customerID, req.Points, req.Description)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidPointsAmount):
				http.Error(w, "Invalid points amount", http.StatusUnprocessableEntity)
			case errors.Is(err, storage.ErrCustomerNotFound):
				http.Error(w, "Customer not found", http.StatusNotFound)
			case errors.Is(err, storage.ErrInsufficientPoints):
				http.Error(w, "Insufficient points", http.StatusPaymentRequired)
			default:
				logger.Error("Failed to withdraw points:", zap.Error(err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusOK)
	})
}
