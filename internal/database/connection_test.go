package database

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/jjformat/jjlf/internal/config"
)

func setupTestDB(t *testing.T) *Context {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("JJLF_DATA_DIR", tmp)

	ctx, err := CreateDatabase("")
	if err != nil {
		t.Fatalf("CreateDatabase returned error: %v", err)
	}

	t.Cleanup(func() {
		if err := CloseDatabase(ctx); err != nil {
			t.Fatalf("CloseDatabase error: %v", err)
		}
	})

	return ctx
}

func TestDatabaseCreationAndMigration(t *testing.T) {
	ctx := setupTestDB(t)

	dbPath := filepath.Join(config.GetDataDir(), "catalog.db")
	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("expected database file to exist at %s: %v", dbPath, err)
	}

	var version int
	var dirty bool
	if err := ctx.DB.QueryRow("SELECT version, dirty FROM schema_migrations").Scan(&version, &dirty); err != nil {
		t.Fatalf("failed to read schema_migrations: %v", err)
	}
	if version != 1 || dirty {
		t.Fatalf("expected clean migration version 1, got %d (dirty=%v)", version, dirty)
	}

	tables := []string{"catalog_meta", "cards", "card_alt_names", "card_sets"}
	for _, table := range tables {
		if !tableExists(t, ctx.DB, table) {
			t.Fatalf("expected table %s to exist", table)
		}
	}
}

func TestCreateDatabaseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "catalog.db")

	first, err := CreateDatabase(path)
	if err != nil {
		t.Fatalf("first CreateDatabase error: %v", err)
	}
	insertCard(t, first.DB, 89631139, 0, "Blue-Eyes White Dragon", "2002-03-08")
	if err := CloseDatabase(first); err != nil {
		t.Fatalf("CloseDatabase error: %v", err)
	}

	second, err := CreateDatabase(path)
	if err != nil {
		t.Fatalf("second CreateDatabase error: %v", err)
	}
	defer func() { _ = CloseDatabase(second) }()

	assertCount(t, second.DB, "cards", 1)
}

func TestClearDatabaseRemovesAllRows(t *testing.T) {
	ctx := setupTestDB(t)

	if _, err := ctx.DB.Exec(`INSERT INTO catalog_meta(id, built_at) VALUES(1, 1700000000)`); err != nil {
		t.Fatalf("insert meta failed: %v", err)
	}
	insertCard(t, ctx.DB, 46986414, 0, "Dark Magician", "2002-03-08")
	if _, err := ctx.DB.Exec(`INSERT INTO card_alt_names(card_id, position, name) VALUES(?, 0, ?)`, 46986414, "Dark Magician (beta)"); err != nil {
		t.Fatalf("insert alt name failed: %v", err)
	}
	if _, err := ctx.DB.Exec(`INSERT INTO card_sets(position, name, release_date) VALUES(0, ?, ?)`, "Legend of Blue Eyes White Dragon", "2002-03-08"); err != nil {
		t.Fatalf("insert card set failed: %v", err)
	}

	assertCount(t, ctx.DB, "catalog_meta", 1)
	assertCount(t, ctx.DB, "cards", 1)
	assertCount(t, ctx.DB, "card_alt_names", 1)
	assertCount(t, ctx.DB, "card_sets", 1)

	if err := ClearDatabase(ctx); err != nil {
		t.Fatalf("ClearDatabase returned error: %v", err)
	}

	assertCount(t, ctx.DB, "catalog_meta", 0)
	assertCount(t, ctx.DB, "cards", 0)
	assertCount(t, ctx.DB, "card_alt_names", 0)
	assertCount(t, ctx.DB, "card_sets", 0)
}

func TestTypesRoundTripThroughColumn(t *testing.T) {
	if got := SplitTypes(""); got != nil {
		t.Fatalf("expected no tags for empty column, got %v", got)
	}
	joined := JoinTypes([]string{"Fusion", "Effect"})
	if joined != "Fusion,Effect" {
		t.Fatalf("unexpected joined value %q", joined)
	}
	split := SplitTypes(joined)
	if len(split) != 2 || split[0] != "Fusion" || split[1] != "Effect" {
		t.Fatalf("unexpected split value %v", split)
	}
}

func tableExists(t *testing.T, db *sql.DB, table string) bool {
	t.Helper()
	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		t.Fatalf("tableExists query failed for %s: %v", table, err)
	}
	return true
}

func insertCard(t *testing.T, db *sql.DB, id int64, position int64, name, date string) {
	t.Helper()
	if _, err := db.Exec(`INSERT INTO cards(id, position, name, release_date, types) VALUES(?, ?, ?, ?, '')`, id, position, name, date); err != nil {
		t.Fatalf("insertCard failed: %v", err)
	}
}

func assertCount(t *testing.T, db *sql.DB, table string, expected int) {
	t.Helper()
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		t.Fatalf("count query failed for %s: %v", table, err)
	}
	if count != expected {
		t.Fatalf("expected %s to have %d rows, got %d", table, expected, count)
	}
}
