package main

import (
	"os"

	"github.com/saulo-duarte/persona-quiz/internal/cli"
	"github.com/saulo-duarte/persona-quiz/internal/config"
)

func main() {
	if err := cli.Execute(); err != nil {
		config.Logger.WithError(err).Error("quizserver stopped")
		os.Exit(1)
	}
}
