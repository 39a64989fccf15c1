package banlist

import (
	"io"
	"log/slog"

	"github.com/jjformat/jjlf/internal/carddb"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testCatalog is ordered the way a built catalog is: by date, then name.
func testCatalog() *carddb.Catalog {
	return carddb.NewCatalog([]carddb.Card{
		{ID: 89631139, Name: "Blue-Eyes White Dragon", Date: "2002-03-08"},
		{ID: 4031928, Name: "Change of Heart", Date: "2002-03-08", AltNames: []string{"Mind Control"}},
		{ID: 46986414, Name: "Dark Magician", Date: "2002-03-08"},
		{ID: 55144522, Name: "Pot of Greed", Date: "2002-03-08"},
		{ID: 12580477, Name: "Raigeki", Date: "2002-06-26"},
		{ID: 83764718, Name: "Monster Reborn", Date: "2002-06-26"},
		{ID: 70368879, Name: "Upstart Goblin", Date: "2003-03-01"},
		{ID: 14087893, Name: "book of Moon", Date: "2004-03-01"},
		{ID: 44095762, Name: "Mirror Force", Date: "2004-03-01"},
		{ID: 6850209, Name: "Zombie World", Date: "2005-10-01"},
	}, discardLogger())
}

func card(catalog *carddb.Catalog, name string) carddb.Card {
	c, ok := catalog.ByName(name)
	if !ok {
		panic("test card missing from catalog: " + name)
	}
	return c
}

func changeSet(catalog *carddb.Catalog, name string, entries map[Tier][]string) ChangeSet {
	cs := ChangeSet{Name: name, Source: name + ".ini", Entries: map[Tier][]carddb.Card{}}
	for tier, names := range entries {
		for _, n := range names {
			cs.Entries[tier] = append(cs.Entries[tier], card(catalog, n))
		}
	}
	return cs
}
