package main

import (
	"context"
	"log"
	"time"

	"hearth/pkg/config"
	"hearth/pkg/logger"
	"hearth/services/match/app"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
)

var chiLambda *chiadapter.ChiLambdaV2

// cold start 시 한 번만 초기화
func init() {
	start := time.Now()

	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.InitLogger(logger.ServiceTypeMatch, cfg.Env, cfg.Log)

	a, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize match service: %v", err)
	}

	chiLambda = chiadapter.NewV2(a.Router)
	log.Printf("Lambda cold start completed in %v", time.Since(start))
}

func Handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	return chiLambda.ProxyWithContextV2(ctx, req)
}

func main() {
	lambda.Start(Handler)
}
