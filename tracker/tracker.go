package tracker

import (
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"

	"guardbot/model"
)

// Store holds at most one tracking session per guild.
type Store struct {
	mu       sync.Mutex
	sessions map[string]model.TrackingSession
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]model.TrackingSession)}
}

// Start installs the session for the guild, superseding any existing one.
func (s *Store) Start(guildID string, sess model.TrackingSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[guildID] = sess
}

// Stop removes the guild's session, reporting whether one existed.
func (s *Store) Stop(guildID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[guildID]; !ok {
		return false
	}
	delete(s.sessions, guildID)
	return true
}

// Get returns the guild's session, if any.
func (s *Store) Get(guildID string) (model.TrackingSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[guildID]
	return sess, ok
}

// FormatActivities renders a presence's activity list for the status
// card, "None" when there is nothing to show.
func FormatActivities(p *discordgo.Presence) string {
	if p == nil || len(p.Activities) == 0 {
		return "None"
	}
	names := make([]string, 0, len(p.Activities))
	for _, a := range p.Activities {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}

// FormatStatus renders a presence's status, "offline" when the user has
// no presence at all.
func FormatStatus(p *discordgo.Presence) string {
	if p == nil || p.Status == "" {
		return "offline"
	}
	return string(p.Status)
}
