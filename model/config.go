package model

import "time"

// Config holds everything deployment-specific: the login token, the
// staff allow-list, moderation thresholds and the channel/role name
// fragments the bot searches for at runtime.
type Config struct {
	BotToken string

	Prefix   string
	StaffIDs []string

	PresenceText   string
	PresenceStatus string

	EscalationThreshold int
	SpamWindow          time.Duration
	SpamThreshold       int
	TrackWaitTimeout    time.Duration

	VerifyRoleID string

	Names NameConfig
}

// NameConfig lists the substrings used to locate channels and roles by
// name. Matching is case-insensitive on the role side.
type NameConfig struct {
	MuteRole       string
	WelcomeChannel string
	LogsChannel    string
	StaffChannel   string
	VerifyChannel  string
}

// IsStaff reports whether the given user is on the static allow-list.
func (c *Config) IsStaff(userID string) bool {
	for _, id := range c.StaffIDs {
		if id == userID {
			return true
		}
	}
	return false
}
