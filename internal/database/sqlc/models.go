package sqldb

type CatalogMetum struct {
	ID      int64
	BuiltAt int64
}

type Card struct {
	ID          int64
	Position    int64
	Name        string
	ReleaseDate string
	Types       string
}

type CardAltName struct {
	CardID   int64
	Position int64
	Name     string
}

type CardSet struct {
	Position    int64
	Name        string
	ReleaseDate string
}
