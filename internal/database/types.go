package database

import "time"

// CardRecord represents a row in the cards table joined with its alternate
// names. Position preserves catalog order from the last build.
type CardRecord struct {
	ID          int64
	Position    int64
	Name        string
	ReleaseDate string
	Types       []string
	AltNames    []string
}

// CardSetRecord is one entry of the raw card-set release index.
type CardSetRecord struct {
	Position    int64
	Name        string
	ReleaseDate string
}

// CatalogMeta describes the cached build as a whole.
type CatalogMeta struct {
	BuiltAt time.Time
}
