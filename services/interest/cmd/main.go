package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"hearth/pkg/config"
	"hearth/pkg/db"
	"hearth/pkg/logger"
	"hearth/pkg/mq"
	"hearth/services/interest/handler"
	"hearth/services/interest/service"
	"hearth/services/interest/transport"
	"hearth/services/match/event"
	"hearth/services/match/repository"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(*configPath)
	logger.InitLogger(logger.ServiceTypeInterest, cfg.Env, cfg.Log)

	loc, err := cfg.Match.Location()
	if err != nil {
		log.Panic("타임존 설정 오류: ", err)
	}

	dbConn, err := db.Connect(cfg.DB)
	if err != nil {
		log.Panic("DB 연결 실패: ", err)
	}

	// 의존성 주입 (DI)
	matchRepo := repository.NewMatchRepository(dbConn)
	profileRepo := repository.NewProfileRepository(dbConn)
	reflectionRepo := repository.NewReflectionRepository(dbConn)

	var emitter service.MQEmitter
	if cfg.RabbitMQ.Enabled {
		mqClient, err := mq.ConnectToRabbitMQ(cfg.RabbitMQ.URL)
		if err != nil {
			log.Panic("RabbitMQ 연결 실패: ", err)
		}
		defer mqClient.Close()

		if err := mqClient.DeclareExchange(mq.ExchangeAppTopic, mq.ExchangeTypeTopic); err != nil {
			log.Panic("Exchange 선언 실패: ", err)
		}
		if err := mqClient.DeclareExchange(mq.ExchangeLog, mq.ExchangeTypeFanout); err != nil {
			log.Panic("Exchange 선언 실패: ", err)
		}

		logger.AttachPublisher(mqClient)
		emitter = event.NewEmitter(mqClient)
	}

	interestService := service.NewInterestService(matchRepo, profileRepo, reflectionRepo, emitter, loc)
	interestHandler := handler.NewInterestHandler(interestService)

	e := transport.NewRouter(interestHandler)

	go func() {
		log.Printf("🚀 Interest Service Started on %s", cfg.HTTP.Addr())
		if err := e.Start(cfg.HTTP.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Printf("❌ Failed to shutdown server: %v", err)
	}
}
