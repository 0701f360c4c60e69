package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fralcy/MegaMarket-sub000/internal/logger"
	"github.com/fralcy/MegaMarket-sub000/internal/models"
	"github.com/fralcy/MegaMarket-sub000/internal/services"
	"github.com/fralcy/MegaMarket-sub000/internal/storage"
	"github.com/fralcy/MegaMarket-sub000/internal/validators"
)

// GetRewardsHandler — получение каталога активных вознаграждений.
// При redeemable=true отдаются только вознаграждения с положительным остатком.
func GetRewardsHandler(s services.RewardsService, redeemable bool) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var (
			rewards []models.RewardData
			err     error
		)
		if redeemable {
			rewards, err = s.GetRedeemable(r.Context())
		} else {
			rewards, err = s.GetRewards(r.Context())
		}
		if err != nil {
			logger.Error("Failed to get rewards:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		if len(rewards) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		var response []models.RewardResponse
		for _, reward := range rewards {
			value, _ := reward.Value.Float64()
			item := models.RewardResponse{
				ID:                reward.ID,
				Name:              reward.Name,
				PointCost:         reward.PointCost,
				RewardType:        reward.RewardType,
				Value:             value,
				QuantityAvailable: reward.QuantityAvailable,
			}
			response = append(response, item)
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(response)
		if err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// DeactivateRewardHandler — логическое удаление вознаграждения из каталога
func DeactivateRewardHandler(s services.RewardsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rewardID, ok := validators.ParseID(chi.URLParam(r, "rewardID"))
		if !ok {
			http.Error(w, "Invalid reward id", http.StatusUnprocessableEntity)
			return
		}

		if err := s.Deactivate(r.Context(), rewardID); err != nil {
			if errors.Is(err, storage.ErrRewardNotFound) {
				http.Error(w, "Reward not found", http.StatusNotFound)
				return
			}
			logger.Error("Failed to deactivate reward:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	})
}
