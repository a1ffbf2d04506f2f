package utils

import (
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// FindChannelByName returns the first guild channel whose name contains
// the given substring, or nil.
func FindChannelByName(s *discordgo.Session, guildID, substr string) *discordgo.Channel {
	channels, err := s.GuildChannels(guildID)
	if err != nil {
		zap.S().Warnw("failed to list guild channels", "guild", guildID, "error", err)
		return nil
	}
	for _, ch := range channels {
		if strings.Contains(ch.Name, substr) {
			return ch
		}
	}
	return nil
}

// FindRoleByName returns the first guild role whose name contains the
// given substring, case-insensitively, or nil.
func FindRoleByName(s *discordgo.Session, guildID, substr string) *discordgo.Role {
	roles, err := s.GuildRoles(guildID)
	if err != nil {
		zap.S().Warnw("failed to list guild roles", "guild", guildID, "error", err)
		return nil
	}
	substr = strings.ToLower(substr)
	for _, r := range roles {
		if strings.Contains(strings.ToLower(r.Name), substr) {
			return r
		}
	}
	return nil
}

// GuildName resolves a guild's display name, preferring the state cache.
func GuildName(s *discordgo.Session, guildID string) string {
	if g, err := s.State.Guild(guildID); err == nil && g.Name != "" {
		return g.Name
	}
	g, err := s.Guild(guildID)
	if err != nil {
		return guildID
	}
	return g.Name
}

// SendModLog writes a line to the guild's moderation log channel (the
// first channel whose name contains the configured substring).
// Best-effort: a missing channel or failed send is logged and dropped.
func SendModLog(s *discordgo.Session, guildID, channelSubstr, text string) {
	ch := FindChannelByName(s, guildID, channelSubstr)
	if ch == nil {
		return
	}
	if _, err := s.ChannelMessageSend(ch.ID, text); err != nil {
		zap.S().Warnw("failed to send mod log", "guild", guildID, "error", err)
	}
}
