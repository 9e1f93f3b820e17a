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
	"hearth/pkg/logger"
	"hearth/services/match/app"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	once := flag.Bool("once", false, "run daily match generation once and exit")
	flag.Parse()

	cfg := config.MustLoad(*configPath)
	logger.InitLogger(logger.ServiceTypeMatch, cfg.Env, cfg.Log)

	a, err := app.New(cfg)
	if err != nil {
		log.Panic("Match Service 초기화 실패: ", err)
	}
	defer a.Close()

	// cron 등 외부 스케줄러에서 1회 실행
	if *once {
		report, err := a.Generator.GenerateDailyMatches(context.Background())
		if err != nil {
			logger.Logger.Error().Err(err).Msg("❌ Daily match generation failed")
			a.Close()
			os.Exit(1)
		}
		logger.Logger.Info().
			Str("date", report.Date).
			Int("matches_created", report.MatchesCreated).
			Int("users_processed", report.UsersProcessed).
			Msg("✅ Daily match generation finished")
		return
	}

	if err := a.StartConsumer(); err != nil {
		log.Panic("RabbitMQ Consumer 시작 실패: ", err)
	}

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      a.Router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		log.Printf("🚀 Match Service Started on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down Match Service...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("❌ Failed to shutdown server: %v", err)
	}
}
