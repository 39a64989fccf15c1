// Package banlist turns authored change files into the cumulative history of
// the format's forbidden and limited lists and projects that history onto the
// card catalog.
package banlist

import (
	"github.com/jjformat/jjlf/internal/carddb"
)

// Tier is a restriction level.
type Tier string

const (
	Banned      Tier = "banned"
	Limited     Tier = "limited"
	Semilimited Tier = "semilimited"
	Unlimited   Tier = "unlimited"
)

// Tiers lists every tier in processing and rendering order.
var Tiers = []Tier{Banned, Limited, Semilimited, Unlimited}

// restricted are the tiers a snapshot stores explicitly. Unlimited is the
// absence from all of them.
var restricted = []Tier{Banned, Limited, Semilimited}

// ParseTier maps a section name to a Tier.
func ParseTier(name string) (Tier, bool) {
	for _, t := range Tiers {
		if string(t) == name {
			return t, true
		}
	}
	return "", false
}

// Index is the tier's position in Tiers, which is also the copy count
// column of a rendered list.
func (t Tier) Index() int {
	for i, candidate := range Tiers {
		if candidate == t {
			return i
		}
	}
	return -1
}

// Change is one audit entry of a snapshot.
type Change struct {
	From Tier        `json:"from" yaml:"from"`
	To   Tier        `json:"to" yaml:"to"`
	Card carddb.Card `json:"card" yaml:"card"`
}

// Snapshot is the complete banlist state after one change set. The three
// restricted tiers are pairwise disjoint and keep insertion order.
type Snapshot struct {
	Name        string   `json:"name" yaml:"name"`
	Banned      []int64  `json:"banned" yaml:"banned"`
	Limited     []int64  `json:"limited" yaml:"limited"`
	Semilimited []int64  `json:"semilimited" yaml:"semilimited"`
	Changes     []Change `json:"changes" yaml:"changes"`
}

// TierOf returns the tier holding id. Ids in no explicit tier are unlimited.
func (s *Snapshot) TierOf(id int64) Tier {
	if s == nil {
		return Unlimited
	}
	for _, t := range restricted {
		for _, member := range *s.tier(t) {
			if member == id {
				return t
			}
		}
	}
	return Unlimited
}

// IDs returns the ids stored in a restricted tier. Unlimited yields nil.
func (s *Snapshot) IDs(t Tier) []int64 {
	if s == nil || t == Unlimited {
		return nil
	}
	return *s.tier(t)
}

func (s *Snapshot) tier(t Tier) *[]int64 {
	switch t {
	case Banned:
		return &s.Banned
	case Limited:
		return &s.Limited
	case Semilimited:
		return &s.Semilimited
	default:
		return nil
	}
}
