package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guardbot/model"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test-token")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.BotToken)
	assert.Equal(t, ".", cfg.Prefix)
	assert.Empty(t, cfg.StaffIDs)
	assert.Equal(t, 3, cfg.EscalationThreshold)
	assert.Equal(t, 5*time.Second, cfg.SpamWindow)
	assert.Equal(t, 5, cfg.SpamThreshold)
	assert.Equal(t, 30*time.Second, cfg.TrackWaitTimeout)
	assert.Equal(t, "idle", cfg.PresenceStatus)
	assert.Equal(t, "mute", cfg.Names.MuteRole)
	assert.Equal(t, "staff-lounge", cfg.Names.StaffChannel)
}

func TestLoadMissingToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestIsStaff(t *testing.T) {
	cfg := &model.Config{StaffIDs: []string{"111", "222"}}

	assert.True(t, cfg.IsStaff("111"))
	assert.True(t, cfg.IsStaff("222"))
	assert.False(t, cfg.IsStaff("333"))
	assert.False(t, cfg.IsStaff(""))
}
