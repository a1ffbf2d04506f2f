package bot

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler runs the periodic maintenance jobs: pruning lapsed
// anti-spam windows and refreshing the invite snapshots so join
// attribution stays accurate even when joins were missed.
type Scheduler struct {
	bot  *Bot
	cron *cron.Cron
}

func NewScheduler(b *Bot) *Scheduler {
	return &Scheduler{bot: b, cron: cron.New()}
}

func (s *Scheduler) Start() {
	if _, err := s.cron.AddFunc("@every 1m", s.pruneThrottle); err != nil {
		zap.S().Errorw("failed to schedule throttle pruning", "error", err)
	}
	if _, err := s.cron.AddFunc("@every 10m", s.refreshInvites); err != nil {
		zap.S().Errorw("failed to schedule invite refresh", "error", err)
	}
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) pruneThrottle() {
	s.bot.Throttle.Prune(time.Now())
}

func (s *Scheduler) refreshInvites() {
	for _, g := range s.bot.Session.State.Guilds {
		invs, err := s.bot.Session.GuildInvites(g.ID)
		if err != nil {
			zap.S().Debugw("failed to refresh invites", "guild", g.ID, "error", err)
			continue
		}
		s.bot.Invites.Prime(g.ID, invs)
	}
}
