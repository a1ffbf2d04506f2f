package handlers

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"guardbot/bot"
	"guardbot/model"
	"guardbot/moderation"
	"guardbot/utils"
)

var errMuteRoleMissing = errors.New("no mute role found")

func onInteractionCreate(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}
	customID := i.MessageComponentData().CustomID

	action, subjectID, err := moderation.ParseAction(customID)
	if err != nil {
		utils.RespondEphemeral(s, i, "❓ Unrecognized action.")
		return
	}

	if i.Member == nil || !b.Config.IsStaff(i.Member.User.ID) {
		utils.RespondEphemeral(s, i, "🚫 You are not allowed to use this button.")
		return
	}

	member, err := s.GuildMember(i.GuildID, subjectID)
	if err != nil {
		utils.RespondEphemeral(s, i, "❌ User not found or has left the server.")
		return
	}

	err = b.Pending.Resolve(subjectID, func(_ model.PendingEscalation) error {
		return applyDecision(b, s, i, action, member)
	})
	if errors.Is(err, moderation.ErrNoPending) {
		utils.RespondEphemeral(s, i, "This decision has already been resolved.")
		return
	}
	if err != nil {
		// The action could not be applied (mute role missing); the
		// escalation stays open and the surface stays active.
		return
	}

	disableDecisionButtons(s, i)
}

// applyDecision performs the chosen action. Discord call failures on
// ban/kick/role-add are swallowed and the confirmation still goes out;
// only a missing mute role aborts the resolution.
func applyDecision(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, action moderation.Action, member *discordgo.Member) error {
	guildName := utils.GuildName(s, i.GuildID)
	username := member.User.Username
	threshold := b.Config.EscalationThreshold

	switch action {
	case moderation.ActionBan:
		utils.SendPrivateMessage(s, member.User.ID,
			fmt.Sprintf("⛔ You have been banned from **%s** by staff.", guildName))
		reason := fmt.Sprintf("Reached %d warnings", threshold)
		if err := s.GuildBanCreateWithReason(i.GuildID, member.User.ID, reason, 0); err != nil {
			zap.S().Warnw("escalation ban failed", "user", member.User.ID, "error", err)
		}
		utils.RespondEphemeral(s, i, fmt.Sprintf("⛔ %s has been banned.", username))
		utils.SendModLog(s, i.GuildID, b.Config.Names.LogsChannel,
			fmt.Sprintf("⛔ %s was banned after %d warnings.", username, threshold))

	case moderation.ActionKick:
		utils.SendPrivateMessage(s, member.User.ID,
			fmt.Sprintf("👢 You have been kicked from **%s** by staff.", guildName))
		reason := fmt.Sprintf("Reached %d warnings", threshold)
		if err := s.GuildMemberDeleteWithReason(i.GuildID, member.User.ID, reason); err != nil {
			zap.S().Warnw("escalation kick failed", "user", member.User.ID, "error", err)
		}
		utils.RespondEphemeral(s, i, fmt.Sprintf("👢 %s has been kicked.", username))
		utils.SendModLog(s, i.GuildID, b.Config.Names.LogsChannel,
			fmt.Sprintf("👢 %s was kicked after %d warnings.", username, threshold))

	case moderation.ActionMute:
		role := utils.FindRoleByName(s, i.GuildID, b.Config.Names.MuteRole)
		if role == nil {
			utils.RespondEphemeral(s, i, "⚠️ No mute role found.")
			return errMuteRoleMissing
		}
		if err := s.GuildMemberRoleAdd(i.GuildID, member.User.ID, role.ID); err != nil {
			zap.S().Warnw("escalation mute failed", "user", member.User.ID, "error", err)
		}
		utils.SendPrivateMessage(s, member.User.ID,
			fmt.Sprintf("🔇 You have been muted in **%s** by staff.", guildName))
		utils.RespondEphemeral(s, i, fmt.Sprintf("🔇 %s has been muted.", username))
		utils.SendModLog(s, i.GuildID, b.Config.Names.LogsChannel,
			fmt.Sprintf("🔇 %s was muted after %d warnings.", username, threshold))

	case moderation.ActionNone:
		utils.RespondEphemeral(s, i, fmt.Sprintf("✅ No action taken for %s.", username))
		utils.SendModLog(s, i.GuildID, b.Config.Names.LogsChannel,
			fmt.Sprintf("✅ No action taken for %s after %d warnings.", username, threshold))
	}
	return nil
}

// disableDecisionButtons inerts all four controls on the decision
// surface once a resolution has been applied.
func disableDecisionButtons(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Message == nil {
		return
	}
	row := discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{Label: "Ban", Style: discordgo.DangerButton, CustomID: "ban_disabled", Disabled: true},
		discordgo.Button{Label: "Kick", Style: discordgo.PrimaryButton, CustomID: "kick_disabled", Disabled: true},
		discordgo.Button{Label: "Mute", Style: discordgo.SecondaryButton, CustomID: "mute_disabled", Disabled: true},
		discordgo.Button{Label: "Do Nothing", Style: discordgo.SuccessButton, CustomID: "none_disabled", Disabled: true},
	}}
	components := []discordgo.MessageComponent{row}
	_, err := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    i.ChannelID,
		ID:         i.Message.ID,
		Components: &components,
	})
	if err != nil {
		zap.S().Warnw("failed to disable decision buttons", "message", i.Message.ID, "error", err)
	}
}
