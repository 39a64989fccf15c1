package carddb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jjformat/jjlf/internal/ygoprodeck"
)

// DefaultMaxAge is how long a cached catalog stays fresh.
const DefaultMaxAge = 7 * 24 * time.Hour

// ErrNoCache is returned by a Store that has never been written.
var ErrNoCache = errors.New("no cached card catalog")

// Store persists the built catalog between runs.
type Store interface {
	Load(ctx context.Context) (*CachedCatalog, error)
	Save(ctx context.Context, catalog CachedCatalog) error
}

// Provider fetches raw card data from upstream.
type Provider interface {
	FetchCards(ctx context.Context) ([]ygoprodeck.Card, error)
	FetchCardSets(ctx context.Context) ([]ygoprodeck.CardSet, error)
}

// Repository hands out the catalog, rebuilding the cache when it is missing
// or older than MaxAge.
type Repository struct {
	store    Store
	provider Provider
	logger   *slog.Logger

	// Now and MaxAge are exposed for tests.
	Now    func() time.Time
	MaxAge time.Duration
}

// NewRepository creates a Repository with the default staleness window.
func NewRepository(store Store, provider Provider, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		store:    store,
		provider: provider,
		logger:   logger,
		Now:      time.Now,
		MaxAge:   DefaultMaxAge,
	}
}

// Load returns the cached catalog, rebuilding it first when needed.
func (r *Repository) Load(ctx context.Context) (*Catalog, error) {
	cached, err := r.store.Load(ctx)
	switch {
	case errors.Is(err, ErrNoCache):
		r.logger.Info("card catalog cache missing, rebuilding")
		return r.Rebuild(ctx)
	case err != nil:
		return nil, fmt.Errorf("failed to load card catalog cache: %w", err)
	}

	if age := r.Now().Sub(cached.BuiltAt).Abs(); age > r.MaxAge {
		r.logger.Info("card catalog cache is stale, rebuilding", "built_at", cached.BuiltAt, "age", age.Round(time.Second))
		return r.Rebuild(ctx)
	}

	r.logger.Debug("using cached card catalog", "cards", len(cached.Cards), "built_at", cached.BuiltAt)
	return NewCatalog(cached.Cards, r.logger), nil
}

// Rebuild fetches fresh provider data, persists the result and returns it.
// Provider failures are returned as-is; nothing is retried.
func (r *Repository) Rebuild(ctx context.Context) (*Catalog, error) {
	cards, err := r.provider.FetchCards(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog rebuild: %w", err)
	}

	sets, err := r.provider.FetchCardSets(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog rebuild: %w", err)
	}

	built, err := BuildCatalog(cards, sets, r.Now(), r.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build card catalog: %w", err)
	}

	if err := r.store.Save(ctx, *built); err != nil {
		return nil, fmt.Errorf("failed to save card catalog: %w", err)
	}

	r.logger.Info("card catalog rebuilt", "cards", len(built.Cards), "card_sets", len(built.CardSets))
	return NewCatalog(built.Cards, r.logger), nil
}
