package main

import (
	"go.uber.org/zap"

	"guardbot/bot"
	"guardbot/config"
	"guardbot/handlers"
	"guardbot/logging"
)

func main() {
	logger := logging.New()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		zap.S().Fatalw("error loading config", "error", err)
	}

	b, err := bot.New(cfg)
	if err != nil {
		zap.S().Fatalw("error creating bot", "error", err)
	}

	handlers.Register(b)

	if err := b.Run(); err != nil {
		zap.S().Fatalw("error running bot", "error", err)
	}
	b.Close()
}
