package invites

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invite(code string, uses int, inviterID, inviterName string) *discordgo.Invite {
	return &discordgo.Invite{
		Code:    code,
		Uses:    uses,
		Inviter: &discordgo.User{ID: inviterID, Username: inviterName},
	}
}

func TestAttributeFindsIncreasedUse(t *testing.T) {
	l := NewLedger()
	l.Prime("guild-1", []*discordgo.Invite{
		invite("aaa", 2, "u1", "alice"),
		invite("bbb", 7, "u2", "bob"),
	})

	attr, ok := l.Attribute("guild-1", []*discordgo.Invite{
		invite("aaa", 2, "u1", "alice"),
		invite("bbb", 8, "u2", "bob"),
	})
	require.True(t, ok)
	assert.Equal(t, "bbb", attr.Code)
	assert.Equal(t, "u2", attr.InviterID)
	assert.Equal(t, "bob", attr.InviterName)
}

func TestAttributeNoIncrease(t *testing.T) {
	l := NewLedger()
	l.Prime("guild-1", []*discordgo.Invite{invite("aaa", 2, "u1", "alice")})

	_, ok := l.Attribute("guild-1", []*discordgo.Invite{invite("aaa", 2, "u1", "alice")})
	assert.False(t, ok)
}

func TestAttributeNewInviteCode(t *testing.T) {
	l := NewLedger()
	l.Prime("guild-1", nil)

	// A code absent from the snapshot counts from zero, so its first
	// use attributes the join.
	attr, ok := l.Attribute("guild-1", []*discordgo.Invite{invite("new", 1, "u3", "carol")})
	require.True(t, ok)
	assert.Equal(t, "new", attr.Code)
}

func TestAttributeUpdatesSnapshot(t *testing.T) {
	l := NewLedger()
	l.Prime("guild-1", []*discordgo.Invite{invite("aaa", 1, "u1", "alice")})

	_, ok := l.Attribute("guild-1", []*discordgo.Invite{invite("aaa", 2, "u1", "alice")})
	require.True(t, ok)

	// Same list again: the stored snapshot already reflects uses=2.
	_, ok = l.Attribute("guild-1", []*discordgo.Invite{invite("aaa", 2, "u1", "alice")})
	assert.False(t, ok)
}

func TestGuildsAreIndependent(t *testing.T) {
	l := NewLedger()
	l.Prime("guild-1", []*discordgo.Invite{invite("aaa", 5, "u1", "alice")})

	attr, ok := l.Attribute("guild-2", []*discordgo.Invite{invite("aaa", 1, "u1", "alice")})
	require.True(t, ok)
	assert.Equal(t, "aaa", attr.Code)
}
