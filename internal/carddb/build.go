package carddb

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jjformat/jjlf/internal/ygoprodeck"
)

// UnknownReleaseDate is assigned to cards none of whose sets have a known date.
const UnknownReleaseDate = "9999-01-01"

const maxIDDigits = 8

// idOverrides maps names whose alternate artwork carries a lower id than the
// main artwork to their real id.
var idOverrides = map[string]int64{
	"Dark Magician": 46986414,
}

// typePriority is scanned in order; the first tag contained in the raw type
// string wins.
var typePriority = []CardType{
	TypeSpell,
	TypeTrap,
	TypeRitual,
	TypeFusion,
	TypeSynchro,
	TypeXYZ,
	TypeLink,
	TypeNormal,
	TypeEffect,
}

// CardSetDate is one entry of the card-set release index.
type CardSetDate struct {
	Name string
	Date string
}

// CachedCatalog is what a Store persists between runs.
type CachedCatalog struct {
	BuiltAt  time.Time
	Cards    []Card
	CardSets []CardSetDate
}

// BuildCardSetIndex keeps the sets that were released in the TCG, ordered by
// release date and then name.
func BuildCardSetIndex(sets []ygoprodeck.CardSet, logger *slog.Logger) []CardSetDate {
	index := make([]CardSetDate, 0, len(sets))
	for _, set := range sets {
		if set.TCGDate == "" {
			logger.Debug("skipping card set without release date", "set", set.SetName)
			continue
		}
		index = append(index, CardSetDate{Name: set.SetName, Date: set.TCGDate})
	}

	sort.SliceStable(index, func(i, j int) bool {
		if index[i].Date != index[j].Date {
			return index[i].Date < index[j].Date
		}
		return index[i].Name < index[j].Name
	})
	return index
}

// BuildCatalog derives catalog cards from raw provider records. The result is
// ordered by first release date and then name.
func BuildCatalog(cards []ygoprodeck.Card, sets []ygoprodeck.CardSet, now time.Time, logger *slog.Logger) (*CachedCatalog, error) {
	if logger == nil {
		logger = slog.Default()
	}

	index := BuildCardSetIndex(sets, logger)
	releases := make(map[string]string, len(index))
	for _, set := range index {
		releases[FoldName(set.Name)] = set.Date
	}

	seen := make(map[int64]string, len(cards))
	result := make([]Card, 0, len(cards))

	for _, raw := range cards {
		if !raw.HasCardSets() {
			continue
		}
		if strings.Contains(strings.ToLower(raw.Type), "skill") {
			continue
		}

		id, err := canonicalID(raw)
		if err != nil {
			return nil, err
		}
		if len(strconv.FormatInt(id, 10)) > maxIDDigits {
			continue
		}

		if first, dup := seen[id]; dup {
			logger.Warn("dropping card with duplicate id", "id", id, "name", raw.Name, "kept", first)
			continue
		}
		seen[id] = raw.Name

		result = append(result, Card{
			ID:       id,
			Name:     raw.Name,
			Date:     firstRelease(raw, releases, logger),
			Types:    typeTags(raw.Type),
			AltNames: altNames(raw),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		return result[i].Name < result[j].Name
	})

	return &CachedCatalog{
		BuiltAt:  now.UTC(),
		Cards:    result,
		CardSets: index,
	}, nil
}

func canonicalID(raw ygoprodeck.Card) (int64, error) {
	if id, ok := idOverrides[raw.Name]; ok {
		return id, nil
	}
	if len(raw.CardImages) == 0 {
		return 0, fmt.Errorf("card %q has no artwork ids", raw.Name)
	}

	lowest := raw.CardImages[0].ID
	for _, img := range raw.CardImages[1:] {
		if img.ID < lowest {
			lowest = img.ID
		}
	}
	return lowest, nil
}

func firstRelease(raw ygoprodeck.Card, releases map[string]string, logger *slog.Logger) string {
	earliest := UnknownReleaseDate
	for _, print := range raw.CardSets {
		date, ok := releases[FoldName(print.SetName)]
		if !ok {
			logger.Debug("unknown release", "card", raw.Name, "set", print.SetName)
			continue
		}
		if date < earliest {
			earliest = date
		}
	}
	return earliest
}

func typeTags(rawType string) []CardType {
	tags := make([]CardType, 0, 2)
	for _, t := range typePriority {
		if strings.Contains(rawType, string(t)) {
			tags = append(tags, t)
			break
		}
	}

	if strings.Contains(rawType, string(TypePendulum)) {
		tags = append(tags, TypePendulum)
	}

	hasEffect := func() bool {
		for _, t := range tags {
			if t == TypeEffect {
				return true
			}
		}
		return false
	}

	if (strings.Contains(rawType, "Spirit") || strings.Contains(rawType, "Toon")) && !hasEffect() {
		tags = append(tags, TypeEffect)
	}
	if rawType == "Tuner Monster" {
		tags = append(tags, TypeEffect)
	}

	return tags
}

func altNames(raw ygoprodeck.Card) []string {
	names := []string{}
	for _, entry := range raw.MiscInfo {
		if entry.BetaName != "" {
			names = append(names, entry.BetaName)
		}
	}
	return names
}
