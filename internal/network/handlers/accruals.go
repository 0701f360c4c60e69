package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/fralcy/MegaMarket-sub000/internal/helpers"
	"github.com/fralcy/MegaMarket-sub000/internal/logger"
	"github.com/fralcy/MegaMarket-sub000/internal/models"
	"github.com/fralcy/MegaMarket-sub000/internal/services"
	"github.com/fralcy/MegaMarket-sub000/internal/storage"
)

// QueueAccrualHandler — постановка начисления баллов за чек в очередь.
// Вызывается сервисом чеков при закрытии чека.
func QueueAccrualHandler(s services.AccrualsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, err := helpers.GetCaller(r.Context())
		if err != nil {
			logger.Warn("Failed to get caller:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		var req models.AccrualRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		err = s.QueueAccrual(r.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrAlreadyExists):
				// повторная постановка того же чека - тихий успех
				w.WriteHeader(http.StatusOK)
				return
			case errors.Is(err, services.ErrInvalidAccrual):
				http.Error(w, "Invalid accrual request", http.StatusUnprocessableEntity)
				return
			case errors.Is(err, storage.ErrCustomerNotFound):
				http.Error(w, "Customer not found", http.StatusNotFound)
				return
			default:
				logger.Error("Failed to queue accrual:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
				return
			}
		}

		logger.Info("Accrual queued", "invoice", req.InvoiceID, "caller", caller)
		w.WriteHeader(http.StatusAccepted)
	})
}
