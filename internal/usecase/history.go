package usecase

import (
	"github.com/jjformat/jjlf/internal/banlist"
	"github.com/jjformat/jjlf/internal/carddb"
)

// History is the parsed banlist history of a format.
type History struct {
	ChangeSets []banlist.ChangeSet
	Snapshots  []*banlist.Snapshot
	// Junior is the optional Junior Royale change set.
	Junior *banlist.ChangeSet
}

// CardStatus is a card's tier in one snapshot.
type CardStatus struct {
	Snapshot string       `json:"snapshot" yaml:"snapshot"`
	Tier     banlist.Tier `json:"tier" yaml:"tier"`
	// Previous is the tier before this snapshot, set only when it changed.
	Previous banlist.Tier `json:"previous,omitempty" yaml:"previous,omitempty"`
}

// Snapshot returns the snapshot called name.
func (h *History) Snapshot(name string) (*banlist.Snapshot, bool) {
	for _, snap := range h.Snapshots {
		if snap.Name == name {
			return snap, true
		}
	}
	return nil, false
}

// CardStatuses lists the card's tier in every snapshot, in order.
func (h *History) CardStatuses(card carddb.Card) []CardStatus {
	statuses := make([]CardStatus, 0, len(h.Snapshots))
	prev := banlist.Unlimited
	for _, snap := range h.Snapshots {
		tier := snap.TierOf(card.ID)
		status := CardStatus{Snapshot: snap.Name, Tier: tier}
		if tier != prev {
			status.Previous = prev
		}
		statuses = append(statuses, status)
		prev = tier
	}
	return statuses
}
