package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jjformat/jjlf/internal/carddb"
	"github.com/jjformat/jjlf/internal/database"
	sqldb "github.com/jjformat/jjlf/internal/database/sqlc"
)

// CatalogService stores the built card catalog in the SQLite cache using
// sqlc-generated queries. It implements carddb.Store.
type CatalogService struct {
	ctx *database.Context
}

var _ carddb.Store = (*CatalogService)(nil)

// NewCatalogService creates a new CatalogService.
func NewCatalogService(ctx *database.Context) *CatalogService {
	return &CatalogService{
		ctx: ctx,
	}
}

// Load reads the cached catalog. It returns carddb.ErrNoCache when no build
// has been saved yet.
func (s *CatalogService) Load(ctx context.Context) (*carddb.CachedCatalog, error) {
	q, err := s.queries()
	if err != nil {
		return nil, err
	}

	metaRow, err := q.GetCatalogMeta(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, carddb.ErrNoCache
		}
		return nil, err
	}
	meta := database.CatalogMetaFromRow(metaRow)

	cardRows, err := q.ListCards(ctx)
	if err != nil {
		return nil, err
	}
	altRows, err := q.ListCardAltNames(ctx)
	if err != nil {
		return nil, err
	}
	setRows, err := q.ListCardSets(ctx)
	if err != nil {
		return nil, err
	}

	records := database.CardRecordsFromRows(cardRows, altRows)
	cards := make([]carddb.Card, 0, len(records))
	for _, record := range records {
		cards = append(cards, cardFromRecord(record))
	}

	sets := make([]carddb.CardSetDate, 0, len(setRows))
	for _, record := range database.CardSetRecordsFromRows(setRows) {
		sets = append(sets, carddb.CardSetDate{Name: record.Name, Date: record.ReleaseDate})
	}

	return &carddb.CachedCatalog{
		BuiltAt:  meta.BuiltAt,
		Cards:    cards,
		CardSets: sets,
	}, nil
}

// Save replaces the whole cache with catalog in a single transaction.
func (s *CatalogService) Save(ctx context.Context, catalog carddb.CachedCatalog) error {
	return s.withTx(ctx, func(txCtx context.Context, q *sqldb.Queries) error {
		if err := q.DeleteAllCardAltNames(txCtx); err != nil {
			return err
		}
		if err := q.DeleteAllCards(txCtx); err != nil {
			return err
		}
		if err := q.DeleteAllCardSets(txCtx); err != nil {
			return err
		}

		for i, card := range catalog.Cards {
			if err := q.InsertCard(txCtx, database.CardInsertParams(int64(i), recordFromCard(card))); err != nil {
				return fmt.Errorf("failed to insert card %d (%s): %w", card.ID, card.Name, err)
			}
			for j, alt := range card.AltNames {
				if err := q.InsertCardAltName(txCtx, sqldb.InsertCardAltNameParams{
					CardID:   card.ID,
					Position: int64(j),
					Name:     alt,
				}); err != nil {
					return fmt.Errorf("failed to insert alternate name for card %d: %w", card.ID, err)
				}
			}
		}

		for i, set := range catalog.CardSets {
			if err := q.InsertCardSet(txCtx, sqldb.InsertCardSetParams{
				Position:    int64(i),
				Name:        set.Name,
				ReleaseDate: set.Date,
			}); err != nil {
				return fmt.Errorf("failed to insert card set %q: %w", set.Name, err)
			}
		}

		return q.UpsertCatalogMeta(txCtx, catalog.BuiltAt.Unix())
	})
}

func (s *CatalogService) withTx(ctx context.Context, fn func(context.Context, *sqldb.Queries) error) error {
	if s.ctx == nil || s.ctx.DB == nil {
		return fmt.Errorf("catalog service: missing database context")
	}

	tx, err := s.ctx.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	queries := sqldb.New(tx)

	if err := fn(ctx, queries); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return nil
}

func (s *CatalogService) queries() (*sqldb.Queries, error) {
	if s.ctx == nil {
		return nil, fmt.Errorf("catalog service: missing database context")
	}
	if s.ctx.Queries == nil {
		if s.ctx.DB == nil {
			return nil, fmt.Errorf("catalog service: database handle not initialised")
		}
		s.ctx.Queries = sqldb.New(s.ctx.DB)
	}
	return s.ctx.Queries, nil
}

func cardFromRecord(record database.CardRecord) carddb.Card {
	types := make([]carddb.CardType, 0, len(record.Types))
	for _, t := range record.Types {
		types = append(types, carddb.CardType(t))
	}
	altNames := record.AltNames
	if altNames == nil {
		altNames = []string{}
	}
	return carddb.Card{
		ID:       record.ID,
		Name:     record.Name,
		Date:     record.ReleaseDate,
		Types:    types,
		AltNames: altNames,
	}
}

func recordFromCard(card carddb.Card) database.CardRecord {
	types := make([]string, 0, len(card.Types))
	for _, t := range card.Types {
		types = append(types, string(t))
	}
	return database.CardRecord{
		ID:          card.ID,
		Name:        card.Name,
		ReleaseDate: card.Date,
		Types:       types,
		AltNames:    card.AltNames,
	}
}
