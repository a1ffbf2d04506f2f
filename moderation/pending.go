package moderation

import (
	"errors"
	"sync"

	"guardbot/model"
)

// ErrNoPending is returned by Resolve when the subject has no open
// escalation, including when another resolver already claimed it.
var ErrNoPending = errors.New("no open escalation for subject")

type pendingEntry struct {
	esc     model.PendingEscalation
	claimed bool
}

// PendingStore tracks open escalations, one per subject. Resolution is
// at-most-once: the first Resolve claims the record, applies its action
// and retires it; concurrent attempts observe ErrNoPending.
type PendingStore struct {
	mu   sync.Mutex
	open map[string]*pendingEntry
}

func NewPendingStore() *PendingStore {
	return &PendingStore{open: make(map[string]*pendingEntry)}
}

// Open registers a new escalation for the subject. It reports false
// without replacing anything when one is already open.
func (s *PendingStore) Open(esc model.PendingEscalation) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.open[esc.SubjectID]; ok {
		return false
	}
	s.open[esc.SubjectID] = &pendingEntry{esc: esc}
	return true
}

// Get returns the subject's open escalation, if any.
func (s *PendingStore) Get(subjectID string) (model.PendingEscalation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.open[subjectID]
	if !ok {
		return model.PendingEscalation{}, false
	}
	return e.esc, true
}

// Resolve claims the subject's open escalation and runs fn with it. On
// a nil return the record is retired; on an error it is reopened so the
// decision surface stays live (the mute-role-missing path). Exactly one
// caller can win the claim; losers get ErrNoPending.
func (s *PendingStore) Resolve(subjectID string, fn func(model.PendingEscalation) error) error {
	s.mu.Lock()
	e, ok := s.open[subjectID]
	if !ok || e.claimed {
		s.mu.Unlock()
		return ErrNoPending
	}
	e.claimed = true
	esc := e.esc
	s.mu.Unlock()

	err := fn(esc)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		e.claimed = false
		return err
	}
	delete(s.open, subjectID)
	return nil
}
