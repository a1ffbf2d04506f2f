package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"guardbot/bot"
	"guardbot/model"
	"guardbot/moderation"
	"guardbot/utils"
)

func handleWarn(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	target := firstMentionedUser(m)
	if target == nil {
		utils.Reply(s, m.Message, "Please mention a user to warn.")
		return
	}
	reason := ""
	if len(args) > 2 {
		reason = strings.Join(args[2:], " ")
	}

	_, esc := b.Escalator.RecordWarning(target.ID, m.GuildID, m.Author.Username, reason, time.Now())

	if reason == "" {
		reason = moderation.DefaultReason
	}
	guildName := utils.GuildName(s, m.GuildID)
	utils.Reply(s, m.Message, fmt.Sprintf("⚠️ %s has been warned: %s", target.Username, reason))
	utils.SendModLog(s, m.GuildID, b.Config.Names.LogsChannel,
		fmt.Sprintf("⚠️ %s was warned by %s | Reason: %s", target.Username, m.Author.Username, reason))
	utils.SendPrivateMessage(s, target.ID,
		fmt.Sprintf("⚠️ You have been warned in **%s** by %s. Reason: %s", guildName, m.Author.Username, reason))

	if esc != nil {
		postDecisionSurface(b, s, *esc, target, m.Author.Username)
	}
}

// postDecisionSurface posts the staff prompt with one button per
// candidate action. Without a staff channel the escalation stays open
// but has no surface, matching the source behavior.
func postDecisionSurface(b *bot.Bot, s *discordgo.Session, esc model.PendingEscalation, target *discordgo.User, moderatorName string) {
	staffCh := utils.FindChannelByName(s, esc.GuildID, b.Config.Names.StaffChannel)
	if staffCh == nil {
		zap.S().Warnw("no staff channel for decision surface", "guild", esc.GuildID, "subject", esc.SubjectID)
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("⚠️ User Reached %d Warnings!", b.Config.EscalationThreshold),
		Description: fmt.Sprintf("User: **%s** (%s)\nModerator: **%s**", target.Username, target.ID, moderatorName),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Last Reason", Value: esc.TriggeringReason},
		},
		Footer:    &discordgo.MessageEmbedFooter{Text: "Choose an action below:"},
		Color:     0xED4245,
		Timestamp: time.Now().Format(time.RFC3339),
	}
	row := discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{Label: "Ban", Style: discordgo.DangerButton, CustomID: moderation.ActionBan.CustomID(esc.SubjectID)},
		discordgo.Button{Label: "Kick", Style: discordgo.PrimaryButton, CustomID: moderation.ActionKick.CustomID(esc.SubjectID)},
		discordgo.Button{Label: "Mute", Style: discordgo.SecondaryButton, CustomID: moderation.ActionMute.CustomID(esc.SubjectID)},
		discordgo.Button{Label: "Do Nothing", Style: discordgo.SuccessButton, CustomID: moderation.ActionNone.CustomID(esc.SubjectID)},
	}}

	_, err := s.ChannelMessageSendComplex(staffCh.ID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{row},
	})
	if err != nil {
		zap.S().Errorw("failed to post decision surface", "guild", esc.GuildID, "error", err)
	}
}

func handleKick(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate) {
	target := firstMentionedUser(m)
	if target == nil {
		utils.Reply(s, m.Message, "Please mention a user to kick.")
		return
	}
	utils.SendPrivateMessage(s, target.ID,
		fmt.Sprintf("👢 You have been kicked from **%s** by %s", utils.GuildName(s, m.GuildID), m.Author.Username))
	if err := s.GuildMemberDeleteWithReason(m.GuildID, target.ID, "Manual kick"); err != nil {
		zap.S().Warnw("kick failed", "guild", m.GuildID, "user", target.ID, "error", err)
	}
	utils.Reply(s, m.Message, fmt.Sprintf("👢 %s has been kicked.", target.Username))
	utils.SendModLog(s, m.GuildID, b.Config.Names.LogsChannel,
		fmt.Sprintf("👢 %s was kicked by %s", target.Username, m.Author.Username))
}

func handleBan(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) < 2 {
		utils.Reply(s, m.Message, "Please provide a user ID to ban.")
		return
	}
	targetID := args[1]
	if id, ok := utils.ParseUserMention(targetID); ok {
		targetID = id
	}
	if user, err := s.User(targetID); err == nil {
		utils.SendPrivateMessage(s, user.ID,
			fmt.Sprintf("⛔ You have been banned from **%s** by %s", utils.GuildName(s, m.GuildID), m.Author.Username))
	}
	if err := s.GuildBanCreateWithReason(m.GuildID, targetID, "Manual ban", 0); err != nil {
		zap.S().Warnw("ban failed", "guild", m.GuildID, "user", targetID, "error", err)
	}
	utils.Reply(s, m.Message, fmt.Sprintf("⛔ User with ID %s has been banned.", targetID))
	utils.SendModLog(s, m.GuildID, b.Config.Names.LogsChannel,
		fmt.Sprintf("⛔ User with ID %s was banned by %s", targetID, m.Author.Username))
}

func handleUnban(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) < 2 {
		utils.Reply(s, m.Message, "Please provide a user ID to unban.")
		return
	}
	targetID := args[1]
	if id, ok := utils.ParseUserMention(targetID); ok {
		targetID = id
	}
	if err := s.GuildBanDelete(m.GuildID, targetID); err != nil {
		zap.S().Warnw("unban failed", "guild", m.GuildID, "user", targetID, "error", err)
	}
	utils.Reply(s, m.Message, fmt.Sprintf("✅ User with ID %s has been unbanned.", targetID))
	utils.SendModLog(s, m.GuildID, b.Config.Names.LogsChannel,
		fmt.Sprintf("✅ User with ID %s was unbanned by %s", targetID, m.Author.Username))
}

func handleMute(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate) {
	target := firstMentionedUser(m)
	if target == nil {
		utils.Reply(s, m.Message, "Please mention a user to mute.")
		return
	}
	role := utils.FindRoleByName(s, m.GuildID, b.Config.Names.MuteRole)
	if role == nil {
		utils.Reply(s, m.Message, "⚠️ No mute role found.")
		return
	}
	if err := s.GuildMemberRoleAdd(m.GuildID, target.ID, role.ID); err != nil {
		zap.S().Warnw("mute failed", "guild", m.GuildID, "user", target.ID, "error", err)
	}
	utils.SendPrivateMessage(s, target.ID,
		fmt.Sprintf("🔇 You have been muted in **%s** by %s", utils.GuildName(s, m.GuildID), m.Author.Username))
	utils.Reply(s, m.Message, fmt.Sprintf("🔇 %s has been muted.", target.Username))
	utils.SendModLog(s, m.GuildID, b.Config.Names.LogsChannel,
		fmt.Sprintf("🔇 %s was muted by %s", target.Username, m.Author.Username))
}

func handleUnmute(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate) {
	target := firstMentionedUser(m)
	if target == nil {
		utils.Reply(s, m.Message, "Please mention a user to unmute.")
		return
	}
	role := utils.FindRoleByName(s, m.GuildID, b.Config.Names.MuteRole)
	if role == nil {
		utils.Reply(s, m.Message, "⚠️ No mute role found.")
		return
	}
	if err := s.GuildMemberRoleRemove(m.GuildID, target.ID, role.ID); err != nil {
		zap.S().Warnw("unmute failed", "guild", m.GuildID, "user", target.ID, "error", err)
	}
	utils.Reply(s, m.Message, fmt.Sprintf("🔊 %s has been unmuted.", target.Username))
	utils.SendModLog(s, m.GuildID, b.Config.Names.LogsChannel,
		fmt.Sprintf("🔊 %s was unmuted by %s", target.Username, m.Author.Username))
}
