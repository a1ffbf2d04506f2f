package bot

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"guardbot/invites"
	"guardbot/model"
	"guardbot/moderation"
	"guardbot/tracker"
)

// Bot owns the Discord session and all process-wide state. Every store
// is injected here so handlers share one instance and lifecycle matches
// the process: nothing survives a restart.
type Bot struct {
	Session *discordgo.Session
	Config  *model.Config

	Warnings  *moderation.WarningStore
	Pending   *moderation.PendingStore
	Escalator *moderation.Escalator
	Throttle  *moderation.Throttle
	Invites   *invites.Ledger
	Tracks    *tracker.Store

	StartedAt time.Time

	scheduler *Scheduler
}

func New(cfg *model.Config) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildPresences |
		discordgo.IntentsGuildInvites

	warnings := moderation.NewWarningStore()
	pending := moderation.NewPendingStore()

	b := &Bot{
		Session:   dg,
		Config:    cfg,
		Warnings:  warnings,
		Pending:   pending,
		Escalator: moderation.NewEscalator(warnings, pending, cfg.EscalationThreshold),
		Throttle:  moderation.NewThrottle(cfg.SpamWindow, cfg.SpamThreshold),
		Invites:   invites.NewLedger(),
		Tracks:    tracker.NewStore(),
		StartedAt: time.Now(),
	}
	b.scheduler = NewScheduler(b)
	return b, nil
}
