package banlist

import (
	"slices"
)

// Apply derives the snapshot that results from applying cs on top of prior.
// A nil prior is the empty list. prior is never modified.
func Apply(prior *Snapshot, cs ChangeSet) *Snapshot {
	next := &Snapshot{
		Name:        cs.Name,
		Banned:      []int64{},
		Limited:     []int64{},
		Semilimited: []int64{},
		Changes:     []Change{},
	}
	if prior != nil {
		next.Banned = slices.Clone(prior.Banned)
		next.Limited = slices.Clone(prior.Limited)
		next.Semilimited = slices.Clone(prior.Semilimited)
	}

	for _, to := range Tiers {
		for _, card := range cs.Entries[to] {
			from := Unlimited
			for _, t := range restricted {
				ids := next.tier(t)
				if idx := slices.Index(*ids, card.ID); idx >= 0 {
					*ids = slices.Delete(*ids, idx, idx+1)
					from = t
					break
				}
			}

			if to != Unlimited {
				ids := next.tier(to)
				*ids = append(*ids, card.ID)
			}

			next.Changes = append(next.Changes, Change{From: from, To: to, Card: card})
		}
	}

	return next
}

// BuildSequence folds change sets in order, producing one snapshot per set.
func BuildSequence(changeSets []ChangeSet) []*Snapshot {
	snapshots := make([]*Snapshot, 0, len(changeSets))
	var prev *Snapshot
	for _, cs := range changeSets {
		prev = Apply(prev, cs)
		snapshots = append(snapshots, prev)
	}
	return snapshots
}
