package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"guardbot/bot"
	"guardbot/model"
	"guardbot/tracker"
	"guardbot/utils"
)

func handleTrack(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) > 1 && strings.EqualFold(args[1], "off") {
		if !b.Tracks.Stop(m.GuildID) {
			utils.Reply(s, m.Message, "No active tracking to stop!")
			return
		}
		utils.Reply(s, m.Message, "Tracking stopped.")
		return
	}

	target := firstMentionedUser(m)
	if target == nil {
		utils.Reply(s, m.Message, "Please mention a user to track.")
		return
	}
	if _, err := s.GuildMember(m.GuildID, target.ID); err != nil {
		utils.Reply(s, m.Message, "User not in server.")
		return
	}

	utils.Reply(s, m.Message, "Please mention the channel where you want to track the user status (e.g. #general).")
	channelID, ok := awaitChannelMention(s, m.Author.ID, m.ChannelID, b.Config.TrackWaitTimeout)
	if !ok {
		utils.Reply(s, m.Message, "No channel mentioned, cancelled.")
		return
	}

	presence, _ := s.State.Presence(m.GuildID, target.ID)
	embed := trackingEmbed(target.Username, target.AvatarURL(""),
		tracker.FormatStatus(presence), tracker.FormatActivities(presence),
		fmt.Sprintf("Tracking started by %s", m.Author.Username))

	msg, err := s.ChannelMessageSendEmbed(channelID, embed)
	if err != nil {
		zap.S().Warnw("failed to post tracking card", "channel", channelID, "error", err)
		utils.Reply(s, m.Message, "Could not post the tracking card in that channel.")
		return
	}

	b.Tracks.Start(m.GuildID, model.TrackingSession{
		SubjectUserID: target.ID,
		ChannelID:     channelID,
		MessageID:     msg.ID,
	})
	utils.Reply(s, m.Message, fmt.Sprintf("Now tracking %s in <#%s>. To stop, type `%strack off`",
		target.Username, channelID, b.Config.Prefix))
}

// awaitChannelMention waits for the next message from the same author
// in the same channel that mentions a channel. It gives up after the
// configured timeout.
func awaitChannelMention(s *discordgo.Session, authorID, channelID string, timeout time.Duration) (string, bool) {
	result := make(chan string, 1)
	remove := s.AddHandler(func(_ *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author == nil || m.Author.ID != authorID || m.ChannelID != channelID {
			return
		}
		if id, ok := utils.FirstChannelMention(m.Content); ok {
			select {
			case result <- id:
			default:
			}
		}
	})
	defer remove()

	select {
	case id := <-result:
		return id, true
	case <-time.After(timeout):
		return "", false
	}
}

func trackingEmbed(username, avatarURL, status, activities, footer string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:     fmt.Sprintf("Tracking %s", username),
		Color:     0x3498DB,
		Thumbnail: &discordgo.MessageEmbedThumbnail{URL: avatarURL},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Status", Value: status, Inline: true},
			{Name: "Activity", Value: activities, Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: footer},
	}
}

func onPresenceUpdate(b *bot.Bot, s *discordgo.Session, p *discordgo.PresenceUpdate) {
	sess, ok := b.Tracks.Get(p.GuildID)
	if !ok || p.User == nil || p.User.ID != sess.SubjectUserID {
		return
	}

	member, err := s.GuildMember(p.GuildID, sess.SubjectUserID)
	if err != nil {
		zap.S().Debugw("failed to fetch tracked member", "user", sess.SubjectUserID, "error", err)
		return
	}

	embed := trackingEmbed(member.User.Username, member.User.AvatarURL(""),
		tracker.FormatStatus(&p.Presence), tracker.FormatActivities(&p.Presence),
		"Tracking updated")
	if _, err := s.ChannelMessageEditEmbed(sess.ChannelID, sess.MessageID, embed); err != nil {
		zap.S().Warnw("failed to update tracking card", "message", sess.MessageID, "error", err)
	}
}
