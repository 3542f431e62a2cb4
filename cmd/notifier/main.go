package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"grubdash/internal/config"
	kafkax "grubdash/internal/kafka"
	"grubdash/internal/notifier"
	"grubdash/internal/orders"
	"grubdash/internal/redisx"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if len(cfg.KafkaBrokers) == 0 {
		log.Fatal("notifier needs KAFKA_BROKERS")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis (optional event dedup)
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redisx.New(cfg.RedisAddr)
		defer rdb.Close()
	}

	svc := &notifier.Service{
		Redis:       rdb,
		ServiceName: cfg.ServiceName + "-notifier",
	}

	cons := kafkax.NewConsumer(cfg.KafkaBrokers, cfg.NotifierGroup, orders.Topics(), cfg.NotifierWorkers)

	go func() {
		log.Printf("notifier consumer started: group=%s topics=%v workers=%d",
			cfg.NotifierGroup, orders.Topics(), cfg.NotifierWorkers)
		if err := cons.Start(ctx, svc.HandleOrderEvent); err != nil {
			log.Printf("consumer exit: %v", err)
			cancel()
		}
	}()

	// graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down notifier...")
	cancel()
	time.Sleep(500 * time.Millisecond)
}
