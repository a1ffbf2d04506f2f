package moderation

import (
	"sync"
	"time"
)

// Moderator identity and reason stamped onto warnings synthesized by
// the throttle.
const (
	SpamModerator = "Anti-Spam"
	SpamReason    = "Spamming"
)

type throttleState struct {
	count       int
	windowStart time.Time
}

// Throttle counts messages per author in a fixed window. It is not a
// true sliding window: a burst straddling a window boundary can
// under-count.
type Throttle struct {
	mu        sync.Mutex
	window    time.Duration
	threshold int
	states    map[string]*throttleState
}

func NewThrottle(window time.Duration, threshold int) *Throttle {
	return &Throttle{
		window:    window,
		threshold: threshold,
		states:    make(map[string]*throttleState),
	}
}

// Observe records one message from the author and reports whether this
// message tripped the threshold. The trigger fires exactly once per
// window, on the message that reaches the threshold.
func (t *Throttle) Observe(authorID string, now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	st, ok := t.states[authorID]
	if !ok || now.Sub(st.windowStart) >= t.window {
		t.states[authorID] = &throttleState{count: 1, windowStart: now}
		return false
	}
	st.count++
	return st.count == t.threshold
}

// Prune drops authors whose window has lapsed so the state map stays
// bounded by recent activity.
func (t *Throttle) Prune(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for id, st := range t.states {
		if now.Sub(st.windowStart) >= t.window {
			delete(t.states, id)
		}
	}
}
