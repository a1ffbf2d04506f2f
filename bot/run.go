package bot

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

// Run opens the gateway connection, starts the background scheduler and
// blocks until SIGINT/SIGTERM.
func (b *Bot) Run() error {
	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("opening connection: %w", err)
	}

	b.scheduler.Start()

	zap.S().Infow("bot is running", "user", b.Session.State.User.Username)
	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc
	return nil
}

// Close stops background jobs and shuts the session down.
func (b *Bot) Close() {
	zap.S().Info("gracefully shutting down")
	b.scheduler.Stop()
	if err := b.Session.Close(); err != nil {
		zap.S().Warnw("error closing session", "error", err)
	}
}
