package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodcart/internal/config"
	"foodcart/internal/domain/model"
	"foodcart/internal/handler"
	"foodcart/internal/infra/collector"
	"foodcart/internal/infra/db"
	infraRepo "foodcart/internal/infra/repository"
	"foodcart/internal/logging"
	repo "foodcart/internal/repository"
	"foodcart/internal/server"
	"foodcart/internal/usecase"
	"foodcart/internal/view"

	"go.uber.org/zap"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func (c *realClock) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

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

	//永続KV（localStorage相当）
	kv, err := openStorage(cfg)
	if err != nil {
		log.Fatal("open storage", zap.Error(err))
	}

	//画面とCartStore
	page, err := view.NewPage(view.DefaultMenu())
	if err != nil {
		log.Fatal("parse templates", zap.Error(err))
	}
	store := usecase.NewCartStore(kv, page, &realClock{}, log.Named("cart"))
	cart := store.Init(ctx)
	log.Info("cart loaded", zap.Int("items", len(cart)), zap.Int("count", cart.ItemCount()))

	//起動時に1回だけ注文履歴を同期（待たない）
	historySync := usecase.NewHistorySync(kv, collector.NewClient(cfg.CollectorURL, nil), log.Named("sync"))
	results := historySync.Start(ctx)
	go func() {
		res := <-results
		log.Info("history sync finished", zap.String("state", string(res.State)))
	}()

	//Handler生成
	cartH := handler.NewCartHandler(store, page, log)
	orderH := handler.NewOrderHandler(store, page, log)

	e := server.New(log)
	server.RegisterStorefrontRoutes(e, cartH, orderH, cfg.StaticDir)

	addr := config.Addr(cfg.Port)
	log.Info("storefront listening", zap.String("addr", addr), zap.String("storage", cfg.StorageDriver))
	if err := server.Start(ctx, e, addr); err != nil {
		log.Fatal("server", zap.Error(err))
	}
}

func openStorage(cfg config.Config) (repo.KVStore, error) {
	if cfg.StorageDriver == config.StorageDriverMemory {
		return infraRepo.NewMemoryKVStore(), nil
	}

	gormDB, err := db.Connect(dbOptions(cfg))
	if err != nil {
		return nil, err
	}
	if err := gormDB.AutoMigrate(&model.StorageEntry{}); err != nil {
		return nil, err
	}
	return infraRepo.NewKVGormRepository(gormDB), nil
}

func dbOptions(cfg config.Config) db.Options {
	return db.Options{
		DatabaseURL: cfg.DatabaseURL,
		Host:        cfg.PostgresHost,
		Port:        cfg.PostgresPort,
		User:        cfg.PostgresUser,
		Password:    cfg.PostgresPassword,
		Name:        cfg.PostgresDB,
		SSLMode:     cfg.PostgresSSLMode,
		Debug:       cfg.IsDev() && cfg.LogLevel == "debug",
	}
}
