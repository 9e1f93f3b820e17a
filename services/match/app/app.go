package app

import (
	"fmt"
	"log"

	"hearth/pkg/config"
	"hearth/pkg/db"
	"hearth/pkg/logger"
	"hearth/pkg/metrics"
	"hearth/pkg/mq"
	"hearth/pkg/redis"
	"hearth/services/match/event"
	"hearth/services/match/handler"
	"hearth/services/match/repository"
	"hearth/services/match/service"
	"hearth/services/match/transport"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

// App 매칭 서비스 의존성 묶음. HTTP 서버와 Lambda 진입점이 함께 사용한다.
type App struct {
	Config    *config.Config
	DB        *gorm.DB
	MQ        *mq.RabbitMQ
	Redis     *redis.RedisClient
	Metrics   *metrics.GeneratorMetrics
	Generator *service.Generator
	Router    *chi.Mux
}

func New(cfg *config.Config) (*App, error) {
	a := &App{Config: cfg, Metrics: metrics.NewGeneratorMetrics()}

	dbConn, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("db 연결 실패: %w", err)
	}
	a.DB = dbConn

	// 의존성 주입 (DI)
	profileRepo := repository.NewProfileRepository(dbConn)
	reflectionRepo := repository.NewReflectionRepository(dbConn)
	matchRepo := repository.NewMatchRepository(dbConn)
	if cfg.DB.Migrate {
		if err := matchRepo.InitDB(); err != nil {
			a.Close()
			return nil, fmt.Errorf("match db migration: %w", err)
		}
	}

	opts := []service.Option{service.WithMetrics(a.Metrics)}

	if cfg.RabbitMQ.Enabled {
		mqClient, err := mq.ConnectToRabbitMQ(cfg.RabbitMQ.URL)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("rabbitmq 연결 실패: %w", err)
		}
		a.MQ = mqClient

		if err := mqClient.DeclareExchange(mq.ExchangeAppTopic, mq.ExchangeTypeTopic); err != nil {
			a.Close()
			return nil, fmt.Errorf("declare %s: %w", mq.ExchangeAppTopic, err)
		}
		if err := mqClient.DeclareExchange(mq.ExchangeLog, mq.ExchangeTypeFanout); err != nil {
			a.Close()
			return nil, fmt.Errorf("declare %s: %w", mq.ExchangeLog, err)
		}

		logger.AttachPublisher(mqClient)
		opts = append(opts, service.WithEmitter(event.NewEmitter(mqClient)))
	}

	var reports handler.RunReportReader
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewRedisClient(cfg.Redis)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("redis 연결 실패: %w", err)
		}
		a.Redis = redisClient
		reports = redisClient
		opts = append(opts, service.WithRecorder(redisClient))
	}

	generator, err := service.NewGenerator(profileRepo, reflectionRepo, matchRepo, cfg.Match, opts...)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Generator = generator

	matchHandler := handler.NewMatchHandler(generator, reports)
	a.Router = transport.NewRouter(matchHandler, a.Metrics.Handler())

	return a, nil
}

// StartConsumer match.generate 큐 트리거 시작. MQ 가 비활성화면 아무것도 하지 않는다.
func (a *App) StartConsumer() error {
	if a.MQ == nil {
		log.Println("⚠️ RabbitMQ disabled, queue trigger not started")
		return nil
	}
	return event.NewConsumer(a.MQ, a.Generator).StartListening()
}

func (a *App) Close() {
	logger.AttachPublisher(nil)

	if a.MQ != nil {
		a.MQ.Close()
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
}
