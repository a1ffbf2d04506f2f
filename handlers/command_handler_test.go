package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		content string
		cmd     command
		ok      bool
	}{
		{".warn <@123> being rude", cmdWarn, true},
		{".WARN <@123>", cmdWarn, true},
		{".track off", cmdTrack, true},
		{".ban 123456", cmdBan, true},
		{".unban 123456", cmdUnban, true},
		{".kick <@123>", cmdKick, true},
		{".mute <@123>", cmdMute, true},
		{".unmute <@123>", cmdUnmute, true},
		{".verify", cmdVerify, true},
		{".stats", cmdStats, true},
		{".frobnicate", cmdUnknown, true},
		{"hello there", cmdUnknown, false},
		{"", cmdUnknown, false},
		{".", cmdUnknown, false},
		{"warn <@123>", cmdUnknown, false},
	}
	for _, tt := range tests {
		cmd, _, ok := parseCommand(".", tt.content)
		assert.Equal(t, tt.ok, ok, tt.content)
		if tt.ok {
			assert.Equal(t, tt.cmd, cmd, tt.content)
		}
	}
}

func TestParseCommandArgs(t *testing.T) {
	cmd, args, ok := parseCommand(".", ".warn  <@123>   too   many  spaces")
	require.True(t, ok)
	assert.Equal(t, cmdWarn, cmd)
	assert.Equal(t, []string{".warn", "<@123>", "too", "many", "spaces"}, args)
}

func TestParseCommandCustomPrefix(t *testing.T) {
	cmd, _, ok := parseCommand("$", "$warn <@123>")
	require.True(t, ok)
	assert.Equal(t, cmdWarn, cmd)

	_, _, ok = parseCommand("$", ".warn <@123>")
	assert.False(t, ok)
}

func TestStaffOnlyCoverage(t *testing.T) {
	for _, cmd := range []command{cmdKick, cmdBan, cmdUnban, cmdWarn, cmdMute, cmdUnmute} {
		assert.True(t, staffOnly[cmd])
	}
	for _, cmd := range []command{cmdTrack, cmdVerify, cmdStats, cmdUnknown} {
		assert.False(t, staffOnly[cmd])
	}
}
