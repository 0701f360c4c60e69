package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr  string `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN string `env:"DATABASE_DSN" envDefault:""`
	JWTSecret   string `env:"JWT_SECRET" envDefault:"secret"`
	InvoiceAddr string `env:"INVOICE_SYSTEM_ADDRESS" envDefault:"http://localhost:8081"`
	EarnRate    string `env:"EARN_RATE" envDefault:"0.01"`
}

// ServerConfig модель настроек сервера
type ServerConfig struct {
	ListenAddr  string
	LogLevel    string
	JWTSecret   string
	DatabaseDSN string
}

// LoyaltyConfig модель настроек начисления баллов за чеки
type LoyaltyConfig struct {
	// адрес сервиса чеков (проверка чеков при привязке вознаграждений)
	InvoiceAddr string
	// курс начисления: баллов за единицу суммы чека
	EarnRate     string
	BatchSize    int
	PollInterval time.Duration
}

// Config модель настроек сервиса
type Config struct {
	Server  ServerConfig
	Loyalty LoyaltyConfig
}

func NewConfig() Config {

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server   = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		DSN      = pflag.StringP("dsn", "d", args.DatabaseDSN, "Database DSN")
		secret   = pflag.StringP("secret", "s", args.JWTSecret, "Secret to JWT")
		invoice  = pflag.StringP("invoice", "i", args.InvoiceAddr, "Invoice service address in a form host:port.")
		rate     = pflag.StringP("earn_rate", "r", args.EarnRate, "Points earned per invoice currency unit.")
	)
	pflag.Parse()

	return Config{
		Server: ServerConfig{
			ListenAddr:  *server,
			LogLevel:    *logLevel,
			DatabaseDSN: *DSN,
			JWTSecret:   *secret,
		},
		Loyalty: LoyaltyConfig{
			InvoiceAddr:  *invoice,
			EarnRate:     *rate,
			BatchSize:    10,
			PollInterval: 5 * time.Second,
		},
	}
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:  "localhost:8080",
			LogLevel:    "info",
			DatabaseDSN: "",
			JWTSecret:   "secret",
		},
		Loyalty: LoyaltyConfig{
			InvoiceAddr:  ":8081",
			EarnRate:     "0.01",
			BatchSize:    10,
			PollInterval: 5 * time.Second,
		},
	}
}
