package handlers

import (
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"guardbot/bot"
)

func onReady(b *bot.Bot, s *discordgo.Session, r *discordgo.Ready) {
	zap.S().Infow("logged in", "user", r.User.Username, "guilds", len(r.Guilds))

	for _, g := range r.Guilds {
		invs, err := s.GuildInvites(g.ID)
		if err != nil {
			zap.S().Debugw("failed to prime invites", "guild", g.ID, "error", err)
			continue
		}
		b.Invites.Prime(g.ID, invs)
	}

	err := s.UpdateStatusComplex(discordgo.UpdateStatusData{
		Status: b.Config.PresenceStatus,
		Activities: []*discordgo.Activity{{
			Name:  b.Config.PresenceText,
			Type:  discordgo.ActivityTypeCustom,
			State: b.Config.PresenceText,
		}},
	})
	if err != nil {
		zap.S().Warnw("failed to set presence", "error", err)
	}
}
