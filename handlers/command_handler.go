package handlers

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"guardbot/bot"
	"guardbot/utils"
)

// command is the closed set of prefix commands. Anything else with the
// prefix parses as cmdUnknown and gets an explicit rejection instead of
// a silent fall-through.
type command int

const (
	cmdUnknown command = iota
	cmdTrack
	cmdKick
	cmdBan
	cmdUnban
	cmdWarn
	cmdMute
	cmdUnmute
	cmdVerify
	cmdStats
)

var commandNames = map[string]command{
	"track":  cmdTrack,
	"kick":   cmdKick,
	"ban":    cmdBan,
	"unban":  cmdUnban,
	"warn":   cmdWarn,
	"mute":   cmdMute,
	"unmute": cmdUnmute,
	"verify": cmdVerify,
	"stats":  cmdStats,
}

// staffOnly commands require the caller to be on the allow-list.
var staffOnly = map[command]bool{
	cmdKick:   true,
	cmdBan:    true,
	cmdUnban:  true,
	cmdWarn:   true,
	cmdMute:   true,
	cmdUnmute: true,
}

// parseCommand splits a message into a command verb and its arguments.
// ok is false when the message is not prefixed at all.
func parseCommand(prefix, content string) (cmd command, args []string, ok bool) {
	fields := strings.Fields(content)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], prefix) || len(fields[0]) == len(prefix) {
		return cmdUnknown, nil, false
	}
	verb := strings.ToLower(strings.TrimPrefix(fields[0], prefix))
	cmd, known := commandNames[verb]
	if !known {
		return cmdUnknown, fields, true
	}
	return cmd, fields, true
}

func onMessageCreate(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}

	handleVerify(b, s, m)

	if cmd, args, ok := parseCommand(b.Config.Prefix, m.Content); ok {
		dispatchCommand(b, s, m, cmd, args)
	}

	ingestSpam(b, s, m)
}

func dispatchCommand(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, cmd command, args []string) {
	if staffOnly[cmd] && !b.Config.IsStaff(m.Author.ID) {
		utils.Reply(s, m.Message, "🚫 You are not allowed to use this command.")
		return
	}

	switch cmd {
	case cmdTrack:
		handleTrack(b, s, m, args)
	case cmdKick:
		handleKick(b, s, m)
	case cmdBan:
		handleBan(b, s, m, args)
	case cmdUnban:
		handleUnban(b, s, m, args)
	case cmdWarn:
		handleWarn(b, s, m, args)
	case cmdMute:
		handleMute(b, s, m)
	case cmdUnmute:
		handleUnmute(b, s, m)
	case cmdStats:
		handleStats(b, s, m)
	case cmdVerify:
		// Handled by the verification gate; valid only in the verify channel.
	case cmdUnknown:
		utils.Reply(s, m.Message, "❓ Unrecognized command.")
	}
}

// firstMentionedUser returns the first user mentioned in the message.
func firstMentionedUser(m *discordgo.MessageCreate) *discordgo.User {
	if len(m.Mentions) == 0 {
		return nil
	}
	return m.Mentions[0]
}
