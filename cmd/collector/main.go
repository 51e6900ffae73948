package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"foodcart/internal/config"
	"foodcart/internal/domain/model"
	"foodcart/internal/handler"
	"foodcart/internal/infra/db"
	infraRepo "foodcart/internal/infra/repository"
	"foodcart/internal/logging"
	"foodcart/internal/server"
	"foodcart/internal/usecase"

	"go.uber.org/zap"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		panic(err)
	}
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//DB接続
	gormDB, err := db.Connect(db.Options{
		DatabaseURL: cfg.DatabaseURL,
		Host:        cfg.PostgresHost,
		Port:        cfg.PostgresPort,
		User:        cfg.PostgresUser,
		Password:    cfg.PostgresPassword,
		Name:        cfg.PostgresDB,
		SSLMode:     cfg.PostgresSSLMode,
	})
	if err != nil {
		log.Fatal("connect db", zap.Error(err))
	}
	if err := gormDB.AutoMigrate(&model.StoredRecord{}); err != nil {
		log.Fatal("migrate", zap.Error(err))
	}

	records := infraRepo.NewRecordGormRepository(gormDB)
	uc := usecase.NewCollectorUsecase(records, log.Named("collector"))
	collectorH := handler.NewCollectorHandler(uc)

	e := server.New(log)
	server.RegisterCollectorRoutes(e, collectorH)

	addr := config.Addr(cfg.CollectorPort)
	log.Info("collector listening", zap.String("addr", addr))
	if err := server.Start(ctx, e, addr); err != nil {
		log.Fatal("server", zap.Error(err))
	}
}
