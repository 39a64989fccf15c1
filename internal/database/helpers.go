package database

import (
	"strings"

	sqldb "github.com/jjformat/jjlf/internal/database/sqlc"
)

const typeSeparator = ","

// JoinTypes flattens type tags into the single text column used by the cards table.
func JoinTypes(types []string) string {
	return strings.Join(types, typeSeparator)
}

// SplitTypes reverses JoinTypes. An empty column yields no tags.
func SplitTypes(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, typeSeparator)
}

func queriesFromContext(ctx *Context) *sqldb.Queries {
	if ctx == nil {
		return nil
	}
	if ctx.Queries != nil {
		return ctx.Queries
	}
	if ctx.DB == nil {
		return nil
	}
	return sqldb.New(ctx.DB)
}
