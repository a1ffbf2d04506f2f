package handlers

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"guardbot/bot"
	"guardbot/moderation"
	"guardbot/utils"
)

// ingestSpam feeds every non-bot message into the throttle. On a
// threshold breach the triggering message is deleted and one warning is
// synthesized through the regular escalation path, so persistent
// spammers end up in front of staff like anyone else.
func ingestSpam(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate) {
	if !b.Throttle.Observe(m.Author.ID, time.Now()) {
		return
	}

	if err := s.ChannelMessageDelete(m.ChannelID, m.ID); err != nil {
		zap.S().Debugw("failed to delete spam message", "channel", m.ChannelID, "error", err)
	}

	_, esc := b.Escalator.RecordWarning(m.Author.ID, m.GuildID,
		moderation.SpamModerator, moderation.SpamReason, time.Now())

	utils.SendPrivateMessage(s, m.Author.ID,
		fmt.Sprintf("⚠️ You have been warned for spamming in **%s**", utils.GuildName(s, m.GuildID)))

	if esc != nil {
		postDecisionSurface(b, s, *esc, m.Author, moderation.SpamModerator)
	}
}
