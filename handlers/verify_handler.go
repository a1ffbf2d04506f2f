package handlers

import (
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"guardbot/bot"
	"guardbot/utils"
)

// handleVerify grants the verification role when a member types the
// verify command inside the verification channel. Messages anywhere
// else are ignored.
func handleVerify(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate) {
	ch, err := s.State.Channel(m.ChannelID)
	if err != nil {
		if ch, err = s.Channel(m.ChannelID); err != nil {
			return
		}
	}
	if !strings.Contains(ch.Name, b.Config.Names.VerifyChannel) {
		return
	}
	if !strings.EqualFold(strings.TrimSpace(m.Content), b.Config.Prefix+"verify") {
		return
	}

	if !verifyRoleExists(s, m.GuildID, b.Config.VerifyRoleID) {
		utils.Reply(s, m.Message, "❌ Role not found.")
		return
	}
	if err := s.GuildMemberRoleAdd(m.GuildID, m.Author.ID, b.Config.VerifyRoleID); err != nil {
		zap.S().Warnw("verification failed", "user", m.Author.ID, "error", err)
		utils.Reply(s, m.Message, "❌ Failed to verify you.")
	}
}

func verifyRoleExists(s *discordgo.Session, guildID, roleID string) bool {
	if roleID == "" {
		return false
	}
	roles, err := s.GuildRoles(guildID)
	if err != nil {
		return false
	}
	for _, r := range roles {
		if r.ID == roleID {
			return true
		}
	}
	return false
}
