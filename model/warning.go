package model

import "time"

// WarningRecord is a single warning issued against a user. Records are
// immutable once created and live only for the process lifetime.
type WarningRecord struct {
	Moderator string
	Reason    string
	Timestamp time.Time
}

// PendingEscalation is created when a user's warning log reaches the
// escalation threshold. At most one may be open per subject; it is
// retired when a staff decision is applied.
type PendingEscalation struct {
	SubjectID        string
	GuildID          string
	TriggeringReason string
	CreatedAt        time.Time
}
