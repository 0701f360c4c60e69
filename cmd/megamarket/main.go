package main

import (
	"fmt"

	"github.com/fralcy/MegaMarket-sub000/internal/app"
	"github.com/fralcy/MegaMarket-sub000/internal/config"
	"github.com/fralcy/MegaMarket-sub000/internal/logger"
	"github.com/fralcy/MegaMarket-sub000/internal/storage"
)

func main() {
	// загрузка конфига
	config := config.NewConfig()
	// инициализация логгера
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()
	// создание и инициализация хранилища (создание БД, миграция)
	db, err := storage.NewDatabase(config.Server.DatabaseDSN)
	if err != nil {
		logger.Panic("can't create database:", err.Error())
	}
	defer db.Close()
	if err := db.Initialize(); err != nil {
		logger.Panic("can't initialize database:", err.Error())
	}
	// запуск сервиса
	app.Run(config, storage.NewStorage(db))
}
