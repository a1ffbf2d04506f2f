package utils

import (
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Reply sends a reply to the given message. Failures are logged and
// dropped; command feedback never fails the handler.
func Reply(s *discordgo.Session, m *discordgo.Message, content string) {
	_, err := s.ChannelMessageSendReply(m.ChannelID, content, m.Reference())
	if err != nil {
		zap.S().Warnw("failed to send reply", "channel", m.ChannelID, "error", err)
	}
}

// RespondEphemeral answers an interaction with an ephemeral message,
// falling back to a follow-up when the interaction was already
// acknowledged.
func RespondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err == nil {
		return
	}
	_, err = s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		zap.S().Warnw("failed to respond to interaction", "error", err)
	}
}

// SendPrivateMessage direct-messages a user. Best-effort: failures are
// logged and never surfaced to the calling operation.
func SendPrivateMessage(s *discordgo.Session, userID, content string) {
	channel, err := s.UserChannelCreate(userID)
	if err != nil {
		zap.S().Debugw("failed to open DM channel", "user", userID, "error", err)
		return
	}
	if _, err := s.ChannelMessageSend(channel.ID, content); err != nil {
		zap.S().Debugw("failed to send DM", "user", userID, "error", err)
	}
}
