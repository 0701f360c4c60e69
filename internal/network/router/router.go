package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/fralcy/MegaMarket-sub000/internal/config"
	"github.com/fralcy/MegaMarket-sub000/internal/network/handlers"
	"github.com/fralcy/MegaMarket-sub000/internal/network/middleware"
	"github.com/fralcy/MegaMarket-sub000/internal/services"
	"github.com/fralcy/MegaMarket-sub000/internal/storage"
)

type Router struct {
	Config      config.Config
	TokenAuth   *jwtauth.JWTAuth
	Loyalty     services.LoyaltyService
	Rewards     services.RewardsService
	Redemptions services.RedemptionService
	Accruals    services.AccrualsService
}

func NewRouter(config config.Config, storage storage.Storage) *Router {
	invoices := services.NewInvoices(config.Loyalty.InvoiceAddr)
	return &Router{
		Config:      config,
		TokenAuth:   jwtauth.New("HS256", []byte(config.Server.JWTSecret), nil),
		Loyalty:     services.NewLoyalty(storage.Customers, storage.Ledger),
		Rewards:     services.NewRewards(storage.Rewards),
		Redemptions: services.NewRedemption(storage.Redemptions, storage.Rewards, invoices),
		Accruals:    services.NewAccruals(storage.Accruals, config.Loyalty),
	}
}

func (router *Router) HandleRouter() chi.Router {
	ja := router.TokenAuth
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)
		// токены выпускает общий шлюз back-office, здесь они только проверяются
		r.Use(jwtauth.Verifier(ja))
		r.Use(jwtauth.Authenticator(ja))
		r.Route("/customers/{customerID}", func(r chi.Router) {
			r.Get("/balance", handlers.GetCustomerBalanceHandler(router.Loyalty))
			r.Get("/transactions", handlers.GetCustomerHistoryHandler(router.Loyalty))
			r.Get("/redemptions", handlers.GetCustomerRedemptionsHandler(router.Redemptions))
			r.Post("/earn", handlers.EarnPointsHandler(router.Loyalty))
			r.Post("/withdraw", handlers.WithdrawPointsHandler(router.Loyalty))
		})
		r.Route("/rewards", func(r chi.Router) {
			r.Get("/", handlers.GetRewardsHandler(router.Rewards, false))
			r.Get("/redeemable", handlers.GetRewardsHandler(router.Rewards, true))
			r.Post("/{rewardID}/deactivate", handlers.DeactivateRewardHandler(router.Rewards))
		})
		r.Route("/redemptions", func(r chi.Router) {
			r.Post("/", handlers.RedeemHandler(router.Redemptions))
			r.Get("/", handlers.GetRedemptionsHandler(router.Redemptions))
			r.Get("/{redemptionID}", handlers.GetRedemptionHandler(router.Redemptions))
			r.Post("/{redemptionID}/claim", handlers.ClaimRedemptionHandler(router.Redemptions))
			r.Post("/{redemptionID}/invoice", handlers.ApplyToInvoiceHandler(router.Redemptions))
			r.Post("/{redemptionID}/use", handlers.UseRedemptionHandler(router.Redemptions))
			r.Delete("/{redemptionID}", handlers.DeleteRedemptionHandler(router.Redemptions))
		})
		r.Post("/loyalty/accruals", handlers.QueueAccrualHandler(router.Accruals))
	})
	return r
}
