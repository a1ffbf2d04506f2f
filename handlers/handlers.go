package handlers

import (
	"github.com/bwmarrin/discordgo"

	"guardbot/bot"
)

// Register wires all gateway event handlers to the session.
func Register(b *bot.Bot) {
	s := b.Session
	s.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		onReady(b, s, r)
	})
	s.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		onMessageCreate(b, s, m)
	})
	s.AddHandler(func(s *discordgo.Session, e *discordgo.GuildMemberAdd) {
		onGuildMemberAdd(b, s, e)
	})
	s.AddHandler(func(s *discordgo.Session, p *discordgo.PresenceUpdate) {
		onPresenceUpdate(b, s, p)
	})
	s.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		onInteractionCreate(b, s, i)
	})
}
