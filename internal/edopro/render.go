// Package edopro renders card pools as EDOPro lflist .conf files and plans
// which lists a deployment contains.
package edopro

import (
	"fmt"
	"strings"

	"github.com/jjformat/jjlf/internal/banlist"
)

const (
	juniorID   = 1
	juniorName = "Junior Journey Format"
	idColumn   = 20
)

// PrettyName is the display title derived from a list name.
func PrettyName(name string) string {
	return strings.ToUpper(strings.ReplaceAll(name, "-", " "))
}

// Render produces the lflist file for pool. A junior list carries the marker
// line EDOPro uses to tag the Junior Journey format.
func Render(prettyName string, pool banlist.CardPool, junior bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "#[%s]\n!%s\n$whitelist\n", prettyName, prettyName)
	if junior {
		writeLine(&b, juniorID, 1, juniorName)
	}

	for _, tier := range banlist.Tiers {
		fmt.Fprintf(&b, "# %s\n", strings.ToUpper(string(tier)))
		for _, card := range pool.Tier(tier) {
			writeLine(&b, card.ID, tier.Index(), card.Name)
		}
	}

	return b.String()
}

func writeLine(b *strings.Builder, id int64, count int, name string) {
	fmt.Fprintf(b, "%-*s-- %s\n", idColumn, fmt.Sprintf("%d %d", id, count), name)
}
