package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"cardshop/internal/configs"
	httpdelivery "cardshop/internal/delivery/http"
	"cardshop/internal/delivery/kafka"
	"cardshop/internal/repository/kvstore"
	"cardshop/internal/repository/postgres"
	"cardshop/internal/repository/redisstore"
	"cardshop/internal/service"
)

// @title cardshop
// @version 1.0
// @description Digital-goods storefront: buyers submit orders and redeem them for one-time-use credential files once the operator marks them delivered. Admin endpoints cover stats, order listing, delivery and bulk inventory upload.

// @host localhost:8081
// @basePath /

func main() {
	_ = godotenv.Load()
	cfg, err := configs.LoadConfig()
	if err != nil {
		logrus.Fatalf("config load: %s", err)
	}
	logrus.Print("config parsed")

	kv, closeKV, err := openKV(cfg)
	if err != nil {
		logrus.Fatalf("store init (%s): %s", cfg.StoreBackend, err)
	}
	defer closeKV()
	logrus.Printf("store backend ready: %s", cfg.StoreBackend)

	opts := []service.Option{service.WithUnitPrice(cfg.UnitPrice)}

	var pub *kafka.Publisher
	if cfg.EventsEnabled() {
		pub = kafka.NewPublisher(cfg.KafkaBrokersSlice(), cfg.KafkaTopic)
		defer func() {
			if cerr := pub.Close(); cerr != nil {
				logrus.Errorf("publisher close: %v", cerr)
			}
		}()
		opts = append(opts, service.WithPublisher(pub))
		logrus.Printf("order events enabled on topic %s", cfg.KafkaTopic)
	}

	svc := service.NewService(kvstore.NewCollectionStore(kv), opts...)

	token := cfg.AdminToken
	if token == "" {
		token = uuid.NewString()
		logrus.Printf("ADMIN_TOKEN not set, generated one for this run: %s", token)
	}

	h := httpdelivery.NewHandler(svc, cfg.AdminPassword, token)
	srv := new(httpdelivery.Server)

	go func() {
		if err := srv.Run(cfg.HTTPAddr, h.InitRoutes()); err != nil {
			logrus.Errorf("http run: %v", err)
		}
	}()
	logrus.Printf("http server started on %s", cfg.HTTPAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit
	logrus.Print("shutdown signal received")

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("http shutdown: %s", err)
	}
	logrus.Print("service stopped")
}

func openKV(cfg configs.Config) (kvstore.KV, func(), error) {
	noop := func() {}
	switch cfg.StoreBackend {
	case "memory":
		return kvstore.NewMemory(), noop, nil
	case "file":
		kv, err := kvstore.NewFileKV(cfg.StorePath)
		return kv, noop, err
	case "redis":
		rdb, err := redisstore.Connect(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			return nil, noop, err
		}
		return redisstore.New(rdb), func() {
			if cerr := rdb.Close(); cerr != nil {
				logrus.Errorf("redis close: %v", cerr)
			}
		}, nil
	case "postgres":
		db, err := postgres.ConnectDB(postgres.Config{
			Host:     cfg.PostgresHost,
			Port:     cfg.PostgresPort,
			Username: cfg.PostgresUser,
			Password: cfg.PostgresPass,
			DbName:   cfg.PostgresDB,
			SslMode:  cfg.PostgresSSLMode,
		})
		if err != nil {
			return nil, noop, err
		}
		if err := postgres.Migrate(db); err != nil {
			return nil, noop, err
		}
		return postgres.NewKV(db), func() {
			if cerr := db.Close(); cerr != nil {
				logrus.Errorf("db close: %v", cerr)
			}
		}, nil
	default:
		return nil, noop, fmt.Errorf("unknown STORE_BACKEND: %s", cfg.StoreBackend)
	}
}
