package moderation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guardbot/model"
)

func newTestEscalator(threshold int) (*Escalator, *WarningStore, *PendingStore) {
	warnings := NewWarningStore()
	pending := NewPendingStore()
	return NewEscalator(warnings, pending, threshold), warnings, pending
}

func TestEscalationFiresExactlyAtThreshold(t *testing.T) {
	esc, _, pending := newTestEscalator(3)
	now := time.Now()

	count, p := esc.RecordWarning("user-a", "guild-1", "mod", "spam1", now)
	assert.Equal(t, 1, count)
	assert.Nil(t, p)

	count, p = esc.RecordWarning("user-a", "guild-1", "mod", "spam2", now)
	assert.Equal(t, 2, count)
	assert.Nil(t, p)

	count, p = esc.RecordWarning("user-a", "guild-1", "mod", "spam3", now)
	assert.Equal(t, 3, count)
	require.NotNil(t, p)
	assert.Equal(t, "user-a", p.SubjectID)
	assert.Equal(t, "guild-1", p.GuildID)
	assert.Equal(t, "spam3", p.TriggeringReason)

	got, ok := pending.Get("user-a")
	require.True(t, ok)
	assert.Equal(t, *p, got)
}

func resolveOpen(t *testing.T, pending *PendingStore, subjectID string) {
	t.Helper()
	require.NoError(t, pending.Resolve(subjectID, func(model.PendingEscalation) error { return nil }))
}

func TestWarningsAfterResolutionDoNotReTrigger(t *testing.T) {
	esc, _, pending := newTestEscalator(3)
	now := time.Now()

	for i := 0; i < 3; i++ {
		esc.RecordWarning("user-a", "guild-1", "mod", "r", now)
	}
	resolveOpen(t, pending, "user-a")

	// The count only ever equals the threshold once, so a 4th and 5th
	// warning never open a new escalation.
	count, p := esc.RecordWarning("user-a", "guild-1", "mod", "r4", now)
	assert.Equal(t, 4, count)
	assert.Nil(t, p)
	count, p = esc.RecordWarning("user-a", "guild-1", "mod", "r5", now)
	assert.Equal(t, 5, count)
	assert.Nil(t, p)
}

func TestNoDuplicateSurfaceWhileEscalationOpen(t *testing.T) {
	esc, _, pending := newTestEscalator(3)
	now := time.Now()

	// An escalation is already open for the subject; reaching the
	// threshold must not open a second one.
	require.True(t, pending.Open(model.PendingEscalation{SubjectID: "user-a", GuildID: "guild-1"}))
	for i := 0; i < 2; i++ {
		esc.RecordWarning("user-a", "guild-1", "mod", "r", now)
	}
	count, p := esc.RecordWarning("user-a", "guild-1", "mod", "r3", now)
	assert.Equal(t, 3, count)
	assert.Nil(t, p)
}

func TestEscalationSubjectsAreIndependent(t *testing.T) {
	esc, _, _ := newTestEscalator(3)
	now := time.Now()

	for i := 0; i < 3; i++ {
		esc.RecordWarning("user-a", "guild-1", "mod", "r", now)
	}
	count, p := esc.RecordWarning("user-b", "guild-1", "mod", "first", now)
	assert.Equal(t, 1, count)
	assert.Nil(t, p)
}

func TestRecordWarningDefaultsReason(t *testing.T) {
	esc, warnings, _ := newTestEscalator(3)

	esc.RecordWarning("user-a", "guild-1", "mod", "", time.Now())
	recs := warnings.Records("user-a")
	require.Len(t, recs, 1)
	assert.Equal(t, DefaultReason, recs[0].Reason)
	assert.Equal(t, "mod", recs[0].Moderator)
}

func TestWarningLogKeepsInsertionOrder(t *testing.T) {
	esc, warnings, _ := newTestEscalator(5)
	base := time.Now()

	for i, reason := range []string{"one", "two", "three"} {
		esc.RecordWarning("user-a", "guild-1", "mod", reason, base.Add(time.Duration(i)*time.Second))
	}
	recs := warnings.Records("user-a")
	require.Len(t, recs, 3)
	assert.Equal(t, "one", recs[0].Reason)
	assert.Equal(t, "two", recs[1].Reason)
	assert.Equal(t, "three", recs[2].Reason)
}
