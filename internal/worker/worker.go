package worker

import (
	"context"
	"sync"
	"time"

	"github.com/sony/gobreaker"

	"github.com/fralcy/MegaMarket-sub000/internal/logger"
	"github.com/fralcy/MegaMarket-sub000/internal/services"
)

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "accrual-queue",
		Timeout: 30 * time.Second, // через 30 сек пробуем подключиться
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// 5 попыток достучатся до хранилища
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Infof("Circuit Breaker '%s': %s → %s", name, from, to)
		},
	})
}

// AccrualWorker - фоновый воркер начисления баллов за чеки
type AccrualWorker struct {
	Accruals     services.AccrualsService
	Breaker      *gobreaker.CircuitBreaker
	WaitGroup    sync.WaitGroup
	QuitChan     chan struct{}
	PollInterval time.Duration
}

// NewAccrualWorker - конструктор обработчика очереди начислений
func NewAccrualWorker(accruals services.AccrualsService, pollInterval time.Duration) *AccrualWorker {
	return &AccrualWorker{
		Accruals:     accruals,
		Breaker:      InitCircuitBreaker(),
		QuitChan:     make(chan struct{}),
		PollInterval: pollInterval,
	}
}

// Start - запускает воркер в фоне
func (w *AccrualWorker) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - корректно останавливает воркер
func (w *AccrualWorker) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

// Run - основная рабочая логика
func (w *AccrualWorker) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("AccrualWorker signal stop")
			return
		case <-ticker.C:
			w.ProcessAccruals(ctx)
		}
	}
}

// ProcessAccruals - обработка пачки начислений
func (w *AccrualWorker) ProcessAccruals(ctx context.Context) {
	if w.Breaker.State() == gobreaker.StateOpen {
		logger.Warnf("%s unavailable. Waiting...", w.Breaker.Name())
		return
	}

	_, err := w.Breaker.Execute(func() (interface{}, error) {
		return nil, w.Accruals.ProcessAccruals(ctx)
	})

	if err != nil {
		logger.Error("Error accruals processing", err)
	}
}
