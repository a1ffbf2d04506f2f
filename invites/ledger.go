package invites

import (
	"sync"

	"github.com/bwmarrin/discordgo"
)

// Attribution names the invite a new member arrived through.
type Attribution struct {
	Code        string
	InviterID   string
	InviterName string
}

// Ledger keeps a per-guild snapshot of invite use counts so member
// joins can be attributed to the invite whose count went up.
type Ledger struct {
	mu   sync.Mutex
	uses map[string]map[string]int
}

func NewLedger() *Ledger {
	return &Ledger{uses: make(map[string]map[string]int)}
}

// Prime replaces the guild's snapshot with the given invite list.
func (l *Ledger) Prime(guildID string, invs []*discordgo.Invite) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.uses[guildID] = snapshot(invs)
}

// Attribute diffs the current invite list against the stored snapshot,
// returning the invite whose use count increased, then stores the new
// snapshot. When no count increased (vanity URLs, expired snapshots)
// it reports false.
func (l *Ledger) Attribute(guildID string, current []*discordgo.Invite) (Attribution, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	old := l.uses[guildID]
	var attr Attribution
	var found bool
	for _, inv := range current {
		if inv.Uses > old[inv.Code] && !found {
			attr.Code = inv.Code
			if inv.Inviter != nil {
				attr.InviterID = inv.Inviter.ID
				attr.InviterName = inv.Inviter.Username
			}
			found = true
		}
	}
	l.uses[guildID] = snapshot(current)
	return attr, found
}

func snapshot(invs []*discordgo.Invite) map[string]int {
	m := make(map[string]int, len(invs))
	for _, inv := range invs {
		m[inv.Code] = inv.Uses
	}
	return m
}
