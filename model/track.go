package model

// TrackingSession is the live status card for a guild. At most one
// session exists per guild; a new `.track` supersedes the old one.
type TrackingSession struct {
	SubjectUserID string
	ChannelID     string
	MessageID     string
}
