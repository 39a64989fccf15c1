package edopro

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jjformat/jjlf/internal/banlist"
)

// Options names the lists of one format.
type Options struct {
	// Prefix is the format tag, e.g. "jj2".
	Prefix string
	// HistoryPrefix marks list names that belong to the main history.
	HistoryPrefix string
	// ActiveLists stay out of archive/.
	ActiveLists []string
}

// ListKind says how a planned list was derived.
type ListKind string

const (
	KindRegular     ListKind = "regular"
	KindP0          ListKind = "p0"
	KindPreliminary ListKind = "preliminary"
	KindPreview     ListKind = "preview"
	KindJunior      ListKind = "junior"
)

// List is one file of a deployment.
type List struct {
	Name       string
	PrettyName string
	Kind       ListKind
	Snapshot   *banlist.Snapshot
	Start      string
	End        string
	Junior     bool
}

// Plan lays out every list derived from history: one per snapshot, a P0 list
// after each "-p2" snapshot, the preliminary and preview lists for the year
// after the last snapshot and, when junior is set, the Junior Royale list.
func Plan(history []*banlist.Snapshot, junior *banlist.ChangeSet, opts Options) ([]List, error) {
	if len(history) == 0 {
		return nil, banlist.ErrNoHistory
	}

	var lists []List
	for _, snap := range history {
		year, err := ParseYear(snap.Name)
		if err != nil {
			return nil, err
		}

		lists = append(lists, List{
			Name:       snap.Name,
			PrettyName: PrettyName(snap.Name),
			Kind:       KindRegular,
			Snapshot:   snap,
			Start:      banlist.DefaultStart,
			End:        EndOfYear(year),
		})

		if strings.HasSuffix(snap.Name, "-p2") {
			name := fmt.Sprintf("%s-%d-p0", opts.Prefix, year+1)
			lists = append(lists, List{
				Name:       name,
				PrettyName: PrettyName(name),
				Kind:       KindP0,
				Snapshot:   snap,
				Start:      banlist.DefaultStart,
				End:        EndOfYear(year + 1),
			})
		}
	}

	last := history[len(history)-1]
	lastYear, err := ParseYear(last.Name)
	if err != nil {
		return nil, err
	}
	next := lastYear + 1

	preliminary := fmt.Sprintf("%s-%d-preliminary", opts.Prefix, next)
	lists = append(lists, List{
		Name:       preliminary,
		PrettyName: PrettyName(preliminary),
		Kind:       KindPreliminary,
		Snapshot:   last,
		Start:      banlist.DefaultStart,
		End:        EndOfYear(next),
	})

	preview := fmt.Sprintf("%s-%d-preview", opts.Prefix, next)
	lists = append(lists, List{
		Name:       preview,
		PrettyName: fmt.Sprintf("%s %d Preview", strings.ToUpper(opts.Prefix), next),
		Kind:       KindPreview,
		Snapshot:   &banlist.Snapshot{Name: preview},
		Start:      StartOfYear(next),
		End:        EndOfYear(next),
	})

	if junior != nil {
		lists = append(lists, List{
			Name:       junior.Name,
			PrettyName: PrettyName(junior.Name),
			Kind:       KindJunior,
			Snapshot:   banlist.Apply(last, *junior),
			Start:      banlist.DefaultStart,
			End:        EndOfYear(lastYear),
			Junior:     true,
		})
	}

	return lists, nil
}

// Archived reports whether a list belongs in the archive/ subdirectory.
func Archived(name string, opts Options) bool {
	return strings.HasPrefix(name, opts.HistoryPrefix) &&
		!strings.HasSuffix(name, "-preview") &&
		!slices.Contains(opts.ActiveLists, name)
}

// ParseYear reads the year from a "<prefix>-<year>-..." list name.
func ParseYear(name string) (int, error) {
	parts := strings.Split(name, "-")
	if len(parts) < 2 {
		return 0, fmt.Errorf("list name %q has no year", name)
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("list name %q has no year: %w", name, err)
	}
	return year, nil
}

// StartOfYear returns the first ISO date of year.
func StartOfYear(year int) string {
	return fmt.Sprintf("%04d-01-01", year)
}

// EndOfYear returns the last ISO date of year.
func EndOfYear(year int) string {
	return fmt.Sprintf("%04d-12-31", year)
}
