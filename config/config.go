package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"guardbot/model"
)

// Load reads the bot token from the environment (a .env file is picked
// up when present) and everything else from config.yaml, falling back
// to the shipped defaults when the file or a key is absent.
func Load() (*model.Config, error) {
	if err := godotenv.Load(); err != nil {
		zap.S().Debug(".env file not found, relying on environment variables")
	}

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		return nil, errors.New("BOT_TOKEN environment variable not set")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./data")

	v.SetDefault("prefix", ".")
	v.SetDefault("staff_ids", []string{})
	v.SetDefault("presence.text", "dsc.gg/supremeslime")
	v.SetDefault("presence.status", "idle")
	v.SetDefault("escalation.threshold", 3)
	v.SetDefault("spam.window", "5s")
	v.SetDefault("spam.threshold", 5)
	v.SetDefault("track.wait_timeout", "30s")
	v.SetDefault("verify.role_id", "")
	v.SetDefault("names.mute_role", "mute")
	v.SetDefault("names.welcome_channel", "welcome")
	v.SetDefault("names.logs_channel", "logs")
	v.SetDefault("names.staff_channel", "staff-lounge")
	v.SetDefault("names.verify_channel", "verify")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	spamWindow, err := time.ParseDuration(v.GetString("spam.window"))
	if err != nil {
		return nil, fmt.Errorf("parsing spam.window: %w", err)
	}
	trackTimeout, err := time.ParseDuration(v.GetString("track.wait_timeout"))
	if err != nil {
		return nil, fmt.Errorf("parsing track.wait_timeout: %w", err)
	}

	cfg := &model.Config{
		BotToken:            token,
		Prefix:              v.GetString("prefix"),
		StaffIDs:            v.GetStringSlice("staff_ids"),
		PresenceText:        v.GetString("presence.text"),
		PresenceStatus:      v.GetString("presence.status"),
		EscalationThreshold: v.GetInt("escalation.threshold"),
		SpamWindow:          spamWindow,
		SpamThreshold:       v.GetInt("spam.threshold"),
		TrackWaitTimeout:    trackTimeout,
		VerifyRoleID:        v.GetString("verify.role_id"),
		Names: model.NameConfig{
			MuteRole:       v.GetString("names.mute_role"),
			WelcomeChannel: v.GetString("names.welcome_channel"),
			LogsChannel:    v.GetString("names.logs_channel"),
			StaffChannel:   v.GetString("names.staff_channel"),
			VerifyChannel:  v.GetString("names.verify_channel"),
		},
	}

	if cfg.EscalationThreshold < 1 {
		return nil, fmt.Errorf("escalation.threshold must be positive, got %d", cfg.EscalationThreshold)
	}
	if cfg.SpamThreshold < 1 {
		return nil, fmt.Errorf("spam.threshold must be positive, got %d", cfg.SpamThreshold)
	}

	return cfg, nil
}
