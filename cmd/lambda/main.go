package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/saulo-duarte/persona-quiz/internal/config"
	"github.com/saulo-duarte/persona-quiz/internal/container"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		config.Logger.WithError(err).Fatal("failed to load config")
	}
	config.InitLogger(cfg)
	if err := cfg.Validate(); err != nil {
		config.Logger.WithError(err).Fatal("invalid config")
	}

	c, _, err := container.Bootstrap(context.Background(), cfg)
	if err != nil {
		config.Logger.WithError(err).Fatal("failed to build container")
	}

	adapter := chiadapter.New(c.Router())
	lambda.Start(adapter.ProxyWithContext)
}
