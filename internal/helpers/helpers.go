package helpers

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/fralcy/MegaMarket-sub000/internal/logger"
)

// GetCaller - извлекает имя вызывающего сервиса из контекста JWT токена.
// Токены выпускает общий шлюз back-office, здесь они только проверяются.
func GetCaller(context context.Context) (string, error) {
	_, claims, _ := jwtauth.FromContext(context)
	caller, ok := claims["service"].(string)
	if !ok {
		logger.Warn("Undefined service name from token")
		return "", fmt.Errorf("undefined caller")
	}
	return caller, nil
}
