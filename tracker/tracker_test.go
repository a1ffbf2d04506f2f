package tracker

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guardbot/model"
)

func TestStoreStartStop(t *testing.T) {
	s := NewStore()

	assert.False(t, s.Stop("guild-1"), "stop with no session")

	s.Start("guild-1", model.TrackingSession{SubjectUserID: "u1", ChannelID: "c1", MessageID: "m1"})
	sess, ok := s.Get("guild-1")
	require.True(t, ok)
	assert.Equal(t, "u1", sess.SubjectUserID)

	assert.True(t, s.Stop("guild-1"))
	_, ok = s.Get("guild-1")
	assert.False(t, ok)
}

func TestStoreNewStartSupersedes(t *testing.T) {
	s := NewStore()
	s.Start("guild-1", model.TrackingSession{SubjectUserID: "u1"})
	s.Start("guild-1", model.TrackingSession{SubjectUserID: "u2", ChannelID: "c2", MessageID: "m2"})

	sess, ok := s.Get("guild-1")
	require.True(t, ok)
	assert.Equal(t, "u2", sess.SubjectUserID)
}

func TestFormatActivities(t *testing.T) {
	assert.Equal(t, "None", FormatActivities(nil))
	assert.Equal(t, "None", FormatActivities(&discordgo.Presence{}))

	p := &discordgo.Presence{Activities: []*discordgo.Activity{
		{Name: "Minecraft"},
		{Name: "Spotify"},
	}}
	assert.Equal(t, "Minecraft, Spotify", FormatActivities(p))
}

func TestFormatStatus(t *testing.T) {
	assert.Equal(t, "offline", FormatStatus(nil))
	assert.Equal(t, "offline", FormatStatus(&discordgo.Presence{}))
	assert.Equal(t, "dnd", FormatStatus(&discordgo.Presence{Status: discordgo.StatusDoNotDisturb}))
}
