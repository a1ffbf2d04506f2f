package moderation

import (
	"sync"

	"guardbot/model"
)

// WarningStore keeps each user's warning log in memory, oldest first.
// Logs are keyed by user only, not by guild: a user warned across two
// guilds accumulates a single shared count.
type WarningStore struct {
	mu   sync.Mutex
	logs map[string][]model.WarningRecord
}

func NewWarningStore() *WarningStore {
	return &WarningStore{logs: make(map[string][]model.WarningRecord)}
}

// Append adds a record to the user's log and returns the new length.
func (s *WarningStore) Append(userID string, rec model.WarningRecord) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs[userID] = append(s.logs[userID], rec)
	return len(s.logs[userID])
}

// Count returns the number of warnings on record for the user.
func (s *WarningStore) Count(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.logs[userID])
}

// Records returns a copy of the user's warning log, oldest first.
func (s *WarningStore) Records(userID string) []model.WarningRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	recs := s.logs[userID]
	out := make([]model.WarningRecord, len(recs))
	copy(out, recs)
	return out
}
