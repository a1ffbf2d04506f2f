package handlers

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"guardbot/bot"
	"guardbot/utils"
)

func onGuildMemberAdd(b *bot.Bot, s *discordgo.Session, e *discordgo.GuildMemberAdd) {
	if welcomeCh := utils.FindChannelByName(s, e.GuildID, b.Config.Names.WelcomeChannel); welcomeCh != nil {
		_, err := s.ChannelMessageSend(welcomeCh.ID, fmt.Sprintf("👋 Welcome <@%s> to the server!", e.User.ID))
		if err != nil {
			zap.S().Debugw("failed to send welcome", "guild", e.GuildID, "error", err)
		}
	}

	invs, err := s.GuildInvites(e.GuildID)
	if err != nil {
		zap.S().Debugw("invite tracking failed", "guild", e.GuildID, "error", err)
		return
	}
	attr, ok := b.Invites.Attribute(e.GuildID, invs)
	if !ok {
		return
	}
	utils.SendModLog(s, e.GuildID, b.Config.Names.LogsChannel,
		fmt.Sprintf("%s joined using invite code **%s** created by **%s**.",
			e.User.Username, attr.Code, attr.InviterName))
}
