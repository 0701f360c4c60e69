package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fralcy/MegaMarket-sub000/internal/client"
	"github.com/fralcy/MegaMarket-sub000/internal/logger"
	"github.com/fralcy/MegaMarket-sub000/internal/models"
	"github.com/fralcy/MegaMarket-sub000/internal/services"
	"github.com/fralcy/MegaMarket-sub000/internal/storage"
	"github.com/fralcy/MegaMarket-sub000/internal/validators"
)

// RedeemHandler — обмен баллов покупателя на вознаграждение
func RedeemHandler(s services.RedemptionService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.RedeemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		redemption, err := s.Redeem(r.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCustomerID),
				errors.Is(err, services.ErrInvalidRewardID),
				errors.Is(err, services.ErrInvalidInvoiceID):
				http.Error(w, "Invalid request", http.StatusUnprocessableEntity)
			case errors.Is(err, storage.ErrCustomerNotFound):
				http.Error(w, "Customer not found", http.StatusNotFound)
			case errors.Is(err, storage.ErrRewardNotFound):
				http.Error(w, "Reward not found", http.StatusNotFound)
			case errors.Is(err, storage.ErrInsufficientPoints):
				http.Error(w, "Insufficient points", http.StatusPaymentRequired)
			case errors.Is(err, storage.ErrOutOfStock):
				http.Error(w, "Reward is out of stock", http.StatusConflict)
			case errors.Is(err, storage.ErrConflict):
				http.Error(w, "Conflict, retry later", http.StatusConflict)
			default:
				logger.Error("Failed to redeem:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err = json.NewEncoder(w).Encode(NewRedemptionResponse(redemption)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// ClaimRedemptionHandler — получение вознаграждения покупателем
func ClaimRedemptionHandler(s services.RedemptionService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		redemptionID, ok := validators.ParseID(chi.URLParam(r, "redemptionID"))
		if !ok {
			http.Error(w, "Invalid redemption id", http.StatusUnprocessableEntity)
			return
		}

		redemption, err := s.Claim(r.Context(), redemptionID)
		if err != nil {
			WriteRedemptionError(w, err, "Failed to claim redemption")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(NewRedemptionResponse(redemption)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// ApplyToInvoiceHandler — привязка полученного вознаграждения к чеку
func ApplyToInvoiceHandler(s services.RedemptionService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		redemptionID, ok := validators.ParseID(chi.URLParam(r, "redemptionID"))
		if !ok {
			http.Error(w, "Invalid redemption id", http.StatusUnprocessableEntity)
			return
		}
		var req models.ApplyInvoiceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		redemption, err := s.ApplyToInvoice(r.Context(), redemptionID, req.InvoiceID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidInvoiceID),
				errors.Is(err, services.ErrInvoiceNotFound):
				http.Error(w, "Invalid invoice id", http.StatusUnprocessableEntity)
			case errors.Is(err, client.ErrServiceUnavailable):
				http.Error(w, "Invoice service unavailable", http.StatusServiceUnavailable)
			default:
				WriteRedemptionError(w, err, "Failed to apply redemption to invoice")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(NewRedemptionResponse(redemption)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// UseRedemptionHandler — завершение вознаграждения без привязки нового чека
func UseRedemptionHandler(s services.RedemptionService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		redemptionID, ok := validators.ParseID(chi.URLParam(r, "redemptionID"))
		if !ok {
			http.Error(w, "Invalid redemption id", http.StatusUnprocessableEntity)
			return
		}

		redemption, err := s.Use(r.Context(), redemptionID)
		if err != nil {
			WriteRedemptionError(w, err, "Failed to use redemption")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(NewRedemptionResponse(redemption)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// DeleteRedemptionHandler — отмена обмена в статусе PENDING с возвратом баллов
func DeleteRedemptionHandler(s services.RedemptionService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		redemptionID, ok := validators.ParseID(chi.URLParam(r, "redemptionID"))
		if !ok {
			http.Error(w, "Invalid redemption id", http.StatusUnprocessableEntity)
			return
		}

		if err := s.Delete(r.Context(), redemptionID); err != nil {
			WriteRedemptionError(w, err, "Failed to delete redemption")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// GetRedemptionHandler — получение одного обмена по идентификатору
func GetRedemptionHandler(s services.RedemptionService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		redemptionID, ok := validators.ParseID(chi.URLParam(r, "redemptionID"))
		if !ok {
			http.Error(w, "Invalid redemption id", http.StatusUnprocessableEntity)
			return
		}

		redemption, err := s.GetRedemption(r.Context(), redemptionID)
		if err != nil {
			WriteRedemptionError(w, err, "Failed to get redemption")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(NewRedemptionResponse(redemption)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// GetRedemptionsHandler — выборка обменов с фильтром по покупателю и статусу
func GetRedemptionsHandler(s services.RedemptionService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var filter models.RedemptionFilter
		if value := r.URL.Query().Get("customer"); value != "" {
			customerID, ok := validators.ParseID(value)
			if !ok {
				http.Error(w, "Invalid customer id", http.StatusUnprocessableEntity)
				return
			}
			filter.CustomerID = &customerID
		}
		if value := r.URL.Query().Get("status"); value != "" {
			if !models.ValidRedemptionStatus(value) {
				http.Error(w, "Invalid status", http.StatusUnprocessableEntity)
				return
			}
			filter.Status = &value
		}

		redemptions, err := s.GetRedemptions(r.Context(), filter)
		if err != nil {
			logger.Error("Failed to get redemptions:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		if len(redemptions) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		var response []models.RedemptionResponse
		for _, redemption := range redemptions {
			response = append(response, *NewRedemptionResponse(&redemption))
		}

		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// GetCustomerRedemptionsHandler — выборка обменов одного покупателя, новые первыми
func GetCustomerRedemptionsHandler(s services.RedemptionService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customerID, ok := validators.ParseID(chi.URLParam(r, "customerID"))
		if !ok {
			http.Error(w, "Invalid customer id", http.StatusUnprocessableEntity)
			return
		}

		redemptions, err := s.GetCustomerRedemptions(r.Context(), customerID)
		if err != nil {
			logger.Error("Failed to get customer redemptions:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		if len(redemptions) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		var response []models.RedemptionResponse
		for _, redemption := range redemptions {
			response = append(response, *NewRedemptionResponse(&redemption))
		}

		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// NewRedemptionResponse — преобразование модели обмена в модель выдачи
func NewRedemptionResponse(redemption *models.RedemptionData) *models.RedemptionResponse {
	response := &models.RedemptionResponse{
		ID:         redemption.ID,
		CustomerID: redemption.CustomerID,
		RewardID:   redemption.RewardID,
		InvoiceID:  redemption.InvoiceID,
		Status:     redemption.Status,
		RedeemedAt: redemption.RedeemedAt.Format(time.RFC3339),
	}
	if redemption.UsedAt != nil {
		response.UsedAt = redemption.UsedAt.Format(time.RFC3339)
	}
	return response
}

// WriteRedemptionError — единое преобразование ошибок жизненного цикла обмена в статусы HTTP
func WriteRedemptionError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, storage.ErrRedemptionNotFound):
		http.Error(w, "Redemption not found", http.StatusNotFound)
	case errors.Is(err, storage.ErrRewardNotFound):
		http.Error(w, "Reward not found", http.StatusNotFound)
	case errors.Is(err, storage.ErrInvalidState):
		http.Error(w, "Invalid redemption state", http.StatusConflict)
	case errors.Is(err, storage.ErrConflict):
		http.Error(w, "Conflict, retry later", http.StatusConflict)
	default:
		logger.Error(message, zap.Error(err))
		http.Error(w, "Server Error", http.StatusInternalServerError)
	}
}
