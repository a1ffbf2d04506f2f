package moderation

import (
	"time"

	"guardbot/model"
)

// DefaultReason is recorded when a moderator warns without giving one.
const DefaultReason = "No reason provided"

// Escalator appends warnings and opens a staff escalation when a user's
// log first reaches the threshold. Counts only grow, so a given user
// crosses the threshold at most once per process lifetime; the open
// guard additionally prevents duplicate surfaces on rapid re-trigger.
type Escalator struct {
	warnings  *WarningStore
	pending   *PendingStore
	threshold int
}

func NewEscalator(warnings *WarningStore, pending *PendingStore, threshold int) *Escalator {
	return &Escalator{warnings: warnings, pending: pending, threshold: threshold}
}

// RecordWarning appends a warning for the subject. It returns the new
// warning count and, when the count lands exactly on the threshold with
// no escalation already open, the freshly opened PendingEscalation for
// the caller to surface to staff.
func (e *Escalator) RecordWarning(subjectID, guildID, moderator, reason string, now time.Time) (int, *model.PendingEscalation) {
	if reason == "" {
		reason = DefaultReason
	}
	count := e.warnings.Append(subjectID, model.WarningRecord{
		Moderator: moderator,
		Reason:    reason,
		Timestamp: now,
	})
	if count != e.threshold {
		return count, nil
	}
	esc := model.PendingEscalation{
		SubjectID:        subjectID,
		GuildID:          guildID,
		TriggeringReason: reason,
		CreatedAt:        now,
	}
	if !e.pending.Open(esc) {
		return count, nil
	}
	return count, &esc
}
