package banlist

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/jjformat/jjlf/internal/carddb"
)

// ChangeSet is a validated change file with every name resolved to a card.
type ChangeSet struct {
	Name    string
	Source  string
	Entries map[Tier][]carddb.Card
}

// Cards returns the entries for one tier in file order.
func (cs ChangeSet) Cards(t Tier) []carddb.Card {
	return cs.Entries[t]
}

// Len counts entries across all tiers.
func (cs ChangeSet) Len() int {
	n := 0
	for _, cards := range cs.Entries {
		n += len(cards)
	}
	return n
}

// ParseResult is either a valid change set or the diagnostics explaining why
// the record was rejected.
type ParseResult struct {
	ChangeSet   *ChangeSet
	Diagnostics []Diagnostic
}

// Valid reports whether the record produced a change set.
func (r ParseResult) Valid() bool {
	return r.ChangeSet != nil && len(r.Diagnostics) == 0
}

// Err converts an invalid result into an *InvalidRecordError.
func (r ParseResult) Err(source string) error {
	if r.Valid() {
		return nil
	}
	return &InvalidRecordError{Source: source, Diagnostics: r.Diagnostics}
}

var loadOptions = ini.LoadOptions{
	AllowBooleanKeys:        true,
	AllowShadows:            true,
	KeyValueDelimiters:      "=",
	IgnoreInlineComment:     true,
	PreserveSurroundedQuote: true,
}

// ChangeSetName derives a change set's name from its file: the base name up
// to the first dot.
func ChangeSetName(source string) string {
	base := filepath.Base(source)
	if idx := strings.Index(base, "."); idx >= 0 {
		return base[:idx]
	}
	return base
}

// ParseChangeSet resolves every card name in data against catalog. A
// malformed INI document is an error; every content problem becomes a
// diagnostic on the result instead.
func ParseChangeSet(catalog *carddb.Catalog, source string, data []byte, logger *slog.Logger) (ParseResult, error) {
	if logger == nil {
		logger = slog.Default()
	}

	file, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return ParseResult{}, fmt.Errorf("failed to read change file %s: %w", source, err)
	}

	var diags []Diagnostic
	report := func(d Diagnostic) {
		logger.Error("invalid change file entry", "source", d.Source, "section", d.Section, "name", d.Name, "reason", string(d.Reason))
		diags = append(diags, d)
	}

	entries := make(map[Tier][]carddb.Card, len(Tiers))
	seen := make(map[int64]string)

	for _, section := range file.Sections() {
		if section.Name() == ini.DefaultSection {
			for _, key := range section.Keys() {
				report(Diagnostic{Source: source, Name: key.Name(), Reason: ReasonOutsideSection})
			}
			continue
		}

		tier, ok := ParseTier(section.Name())
		if !ok {
			report(Diagnostic{Source: source, Section: section.Name(), Name: section.Name(), Reason: ReasonUnknownSection})
			continue
		}

		for _, key := range section.Keys() {
			name := key.Name()
			card, found := catalog.ByName(name)
			if !found {
				report(Diagnostic{Source: source, Section: section.Name(), Name: name, Reason: ReasonUnknownCard})
				continue
			}
			if first, dup := seen[card.ID]; dup {
				report(Diagnostic{Source: source, Section: section.Name(), Name: name, Reason: ReasonDuplicateCard})
				logger.Debug("first listed", "source", source, "section", first, "id", card.ID)
				continue
			}
			seen[card.ID] = section.Name()
			entries[tier] = append(entries[tier], card)
		}
	}

	if len(diags) > 0 {
		return ParseResult{Diagnostics: diags}, nil
	}

	return ParseResult{ChangeSet: &ChangeSet{
		Name:    ChangeSetName(source),
		Source:  source,
		Entries: entries,
	}}, nil
}

// ParseChangeSetFile reads and parses the change file at path.
func ParseChangeSetFile(catalog *carddb.Catalog, path string, logger *slog.Logger) (ParseResult, error) {
	//nolint:gosec // G304: change files live in the configured changes directory
	data, err := os.ReadFile(path)
	if err != nil {
		return ParseResult{}, fmt.Errorf("failed to read change file: %w", err)
	}
	return ParseChangeSet(catalog, path, data, logger)
}

// DiscoverHistory lists the regular files in dir whose names start with
// prefix, sorted lexicographically.
func DiscoverHistory(dir, prefix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read changes directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// FindJuniorRoyale returns the path of the single <prefix>*.ini file in dir,
// or "" when there is none.
func FindJuniorRoyale(dir, prefix string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, prefix+"*.ini"))
	if err != nil {
		return "", fmt.Errorf("invalid junior royale pattern: %w", err)
	}

	switch len(matches) {
	case 0:
		return "", nil
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %s", ErrMultipleJuniorRoyale, strings.Join(matches, ", "))
	}
}

// LoadHistory parses every history file in dir. The first invalid record
// aborts the load with an *InvalidRecordError.
func LoadHistory(catalog *carddb.Catalog, dir, prefix string, logger *slog.Logger) ([]ChangeSet, error) {
	paths, err := DiscoverHistory(dir, prefix)
	if err != nil {
		return nil, err
	}

	changeSets := make([]ChangeSet, 0, len(paths))
	for _, path := range paths {
		result, err := ParseChangeSetFile(catalog, path, logger)
		if err != nil {
			return nil, err
		}
		if err := result.Err(path); err != nil {
			return nil, err
		}
		changeSets = append(changeSets, *result.ChangeSet)
	}
	return changeSets, nil
}
