package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserMention(t *testing.T) {
	id, ok := ParseUserMention("<@123456789>")
	require.True(t, ok)
	assert.Equal(t, "123456789", id)

	id, ok = ParseUserMention("<@!123456789>")
	require.True(t, ok)
	assert.Equal(t, "123456789", id)

	for _, bad := range []string{"", "123456789", "<#123>", "<@>", "<@abc>", "<@123"} {
		_, ok := ParseUserMention(bad)
		assert.False(t, ok, bad)
	}
}

func TestParseChannelMention(t *testing.T) {
	id, ok := ParseChannelMention("<#42>")
	require.True(t, ok)
	assert.Equal(t, "42", id)

	for _, bad := range []string{"", "<@42>", "<#>", "<#4a2>", "general"} {
		_, ok := ParseChannelMention(bad)
		assert.False(t, ok, bad)
	}
}

func TestFirstChannelMention(t *testing.T) {
	id, ok := FirstChannelMention("track them in <#777> please")
	require.True(t, ok)
	assert.Equal(t, "777", id)

	_, ok = FirstChannelMention("no channel here")
	assert.False(t, ok)
}
