package sqldb

import "context"

const getCatalogMeta = `SELECT id, built_at FROM catalog_meta WHERE id = 1`

func (q *Queries) GetCatalogMeta(ctx context.Context) (CatalogMetum, error) {
	row := q.db.QueryRowContext(ctx, getCatalogMeta)
	var i CatalogMetum
	err := row.Scan(&i.ID, &i.BuiltAt)
	return i, err
}

const upsertCatalogMeta = `INSERT INTO catalog_meta (id, built_at) VALUES (1, ?)
ON CONFLICT(id) DO UPDATE SET built_at = excluded.built_at`

func (q *Queries) UpsertCatalogMeta(ctx context.Context, builtAt int64) error {
	_, err := q.db.ExecContext(ctx, upsertCatalogMeta, builtAt)
	return err
}

const deleteCatalogMeta = `DELETE FROM catalog_meta`

func (q *Queries) DeleteCatalogMeta(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteCatalogMeta)
	return err
}

const insertCard = `INSERT INTO cards (id, position, name, release_date, types) VALUES (?, ?, ?, ?, ?)`

type InsertCardParams struct {
	ID          int64
	Position    int64
	Name        string
	ReleaseDate string
	Types       string
}

func (q *Queries) InsertCard(ctx context.Context, arg InsertCardParams) error {
	_, err := q.db.ExecContext(ctx, insertCard,
		arg.ID,
		arg.Position,
		arg.Name,
		arg.ReleaseDate,
		arg.Types,
	)
	return err
}

const listCards = `SELECT id, position, name, release_date, types FROM cards ORDER BY position`

func (q *Queries) ListCards(ctx context.Context) ([]Card, error) {
	rows, err := q.db.QueryContext(ctx, listCards)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Card
	for rows.Next() {
		var i Card
		if err := rows.Scan(
			&i.ID,
			&i.Position,
			&i.Name,
			&i.ReleaseDate,
			&i.Types,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countCards = `SELECT COUNT(*) FROM cards`

func (q *Queries) CountCards(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countCards)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const deleteAllCards = `DELETE FROM cards`

func (q *Queries) DeleteAllCards(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteAllCards)
	return err
}

const insertCardAltName = `INSERT INTO card_alt_names (card_id, position, name) VALUES (?, ?, ?)`

type InsertCardAltNameParams struct {
	CardID   int64
	Position int64
	Name     string
}

func (q *Queries) InsertCardAltName(ctx context.Context, arg InsertCardAltNameParams) error {
	_, err := q.db.ExecContext(ctx, insertCardAltName, arg.CardID, arg.Position, arg.Name)
	return err
}

const listCardAltNames = `SELECT card_id, position, name FROM card_alt_names ORDER BY card_id, position`

func (q *Queries) ListCardAltNames(ctx context.Context) ([]CardAltName, error) {
	rows, err := q.db.QueryContext(ctx, listCardAltNames)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CardAltName
	for rows.Next() {
		var i CardAltName
		if err := rows.Scan(&i.CardID, &i.Position, &i.Name); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteAllCardAltNames = `DELETE FROM card_alt_names`

func (q *Queries) DeleteAllCardAltNames(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteAllCardAltNames)
	return err
}

const insertCardSet = `INSERT INTO card_sets (position, name, release_date) VALUES (?, ?, ?)`

type InsertCardSetParams struct {
	Position    int64
	Name        string
	ReleaseDate string
}

func (q *Queries) InsertCardSet(ctx context.Context, arg InsertCardSetParams) error {
	_, err := q.db.ExecContext(ctx, insertCardSet, arg.Position, arg.Name, arg.ReleaseDate)
	return err
}

const listCardSets = `SELECT position, name, release_date FROM card_sets ORDER BY position`

func (q *Queries) ListCardSets(ctx context.Context) ([]CardSet, error) {
	rows, err := q.db.QueryContext(ctx, listCardSets)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CardSet
	for rows.Next() {
		var i CardSet
		if err := rows.Scan(&i.Position, &i.Name, &i.ReleaseDate); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteAllCardSets = `DELETE FROM card_sets`

func (q *Queries) DeleteAllCardSets(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteAllCardSets)
	return err
}
