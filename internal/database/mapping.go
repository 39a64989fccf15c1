package database

import (
	"time"

	sqldb "github.com/jjformat/jjlf/internal/database/sqlc"
)

// CatalogMetaFromRow converts the catalog_meta row.
func CatalogMetaFromRow(row sqldb.CatalogMetum) CatalogMeta {
	return CatalogMeta{BuiltAt: time.Unix(row.BuiltAt, 0).UTC()}
}

// CardRecordsFromRows joins card rows with their alternate names, keeping the
// order of cards and of names within a card.
func CardRecordsFromRows(cards []sqldb.Card, altNames []sqldb.CardAltName) []CardRecord {
	namesByCard := make(map[int64][]string, len(altNames))
	for _, alt := range altNames {
		namesByCard[alt.CardID] = append(namesByCard[alt.CardID], alt.Name)
	}

	result := make([]CardRecord, 0, len(cards))
	for _, row := range cards {
		result = append(result, CardRecord{
			ID:          row.ID,
			Position:    row.Position,
			Name:        row.Name,
			ReleaseDate: row.ReleaseDate,
			Types:       SplitTypes(row.Types),
			AltNames:    namesByCard[row.ID],
		})
	}
	return result
}

// CardInsertParams creates insert parameters for a card at the given catalog position.
func CardInsertParams(position int64, record CardRecord) sqldb.InsertCardParams {
	return sqldb.InsertCardParams{
		ID:          record.ID,
		Position:    position,
		Name:        record.Name,
		ReleaseDate: record.ReleaseDate,
		Types:       JoinTypes(record.Types),
	}
}

// CardSetRecordsFromRows converts card-set rows.
func CardSetRecordsFromRows(rows []sqldb.CardSet) []CardSetRecord {
	result := make([]CardSetRecord, 0, len(rows))
	for _, row := range rows {
		result = append(result, CardSetRecord{
			Position:    row.Position,
			Name:        row.Name,
			ReleaseDate: row.ReleaseDate,
		})
	}
	return result
}
