package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hearth/pkg/config"
	"hearth/pkg/db"
	"hearth/pkg/logger"
	"hearth/pkg/mq"
	"hearth/services/logger/event"
	"hearth/services/logger/repo"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(*configPath)
	logger.InitLogger(logger.ServiceTypeLogger, cfg.Env, cfg.Log)

	mongoClient, err := db.ConnectMongo(cfg.Mongo)
	if err != nil {
		log.Panic("MongoDB 연결 실패: ", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		mongoClient.Disconnect(ctx)
	}()

	mqClient, err := mq.ConnectToRabbitMQ(cfg.RabbitMQ.URL)
	if err != nil {
		log.Panic("RabbitMQ 연결 실패: ", err)
	}
	defer mqClient.Close()

	logRepo := repo.NewLogRepository(mongoClient, cfg.Mongo.Database)

	indexCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := logRepo.EnsureIndexes(indexCtx); err != nil {
		log.Printf("❌ Failed to create log indexes: %v", err)
	}
	cancel()

	eventHandler := event.NewEventHandler(logRepo, 5*time.Second)
	if err := event.NewConsumer(mqClient, eventHandler).StartListening(); err != nil {
		log.Panic("Logger Consumer 시작 실패: ", err)
	}

	log.Println("🚀 Logger Service Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down Logger Service...")
}
