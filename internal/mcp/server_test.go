package mcp

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/jjformat/jjlf/internal/banlist"
	"github.com/jjformat/jjlf/internal/carddb"
	"github.com/jjformat/jjlf/internal/edopro"
	"github.com/jjformat/jjlf/internal/usecase"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	catalog := carddb.NewCatalog([]carddb.Card{
		{ID: 55144522, Name: "Pot of Greed", Date: "2002-03-08"},
		{ID: 12580477, Name: "Raigeki", Date: "2002-06-26"},
		{ID: 70368879, Name: "Upstart Goblin", Date: "2003-03-01"},
	}, logger)

	dir := t.TempDir()
	files := map[string]string{
		"jj2-2002-p1.ini": "[banned]\nPot of Greed\n",
		"jj2-2003-p1.ini": "[limited]\nRaigeki\n[unlimited]\nPot of Greed\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	deploy := usecase.NewDeploy(catalog, usecase.DeployOptions{
		ChangesDir:    dir,
		DeployDir:     filepath.Join(dir, "deploy"),
		HistoryPrefix: "jj2-",
		JuniorPrefix:  "jr-",
		Lists:         edopro.Options{Prefix: "jj2", HistoryPrefix: "jj2-"},
	}, logger)

	return NewServer(catalog, deploy, "test")
}

func TestHandleHistory(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handleHistory(context.Background(), nil, HistoryInput{Changes: true})
	if err != nil {
		t.Fatalf("handleHistory error: %v", err)
	}
	if len(out.Snapshots) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(out.Snapshots))
	}

	first := out.Snapshots[0]
	if first.Name != "jj2-2002-p1" || first.Banned != 1 {
		t.Fatalf("unexpected first snapshot: %#v", first)
	}
	last := out.Snapshots[1]
	if last.Banned != 0 || last.Limited != 1 || len(last.Changes) != 2 {
		t.Fatalf("unexpected last snapshot: %#v", last)
	}
	if last.Changes[1].Card != "Pot of Greed" || last.Changes[1].From != "banned" || last.Changes[1].To != "unlimited" {
		t.Fatalf("unexpected change: %#v", last.Changes[1])
	}

	_, out, err = s.handleHistory(context.Background(), nil, HistoryInput{})
	if err != nil {
		t.Fatalf("handleHistory error: %v", err)
	}
	if len(out.Snapshots[1].Changes) != 0 {
		t.Fatalf("expected changes to be omitted")
	}
}

func TestHandleCardStatus(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handleCardStatus(context.Background(), nil, CardStatusInput{Name: "pot of greed"})
	if err != nil {
		t.Fatalf("handleCardStatus error: %v", err)
	}
	if out.ID != 55144522 || len(out.Statuses) != 2 {
		t.Fatalf("unexpected output: %#v", out)
	}
	if out.Statuses[0].Tier != banlist.Banned || out.Statuses[1].Tier != banlist.Unlimited {
		t.Fatalf("unexpected statuses: %#v", out.Statuses)
	}

	if _, _, err := s.handleCardStatus(context.Background(), nil, CardStatusInput{Name: "Nope"}); err == nil {
		t.Fatalf("expected error for unknown card")
	}
}

func TestHandleCardPool(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handleCardPool(context.Background(), nil, CardPoolInput{List: "jj2-2002-p1"})
	if err != nil {
		t.Fatalf("handleCardPool error: %v", err)
	}
	if out.End != "2002-12-31" || len(out.Banned) != 1 || out.UnlimitedCount != 1 || out.Unlimited != nil {
		t.Fatalf("unexpected pool: %#v", out)
	}

	_, out, err = s.handleCardPool(context.Background(), nil, CardPoolInput{List: "jj2-2004-preview", IncludeUnlimited: true})
	if err != nil {
		t.Fatalf("handleCardPool error: %v", err)
	}
	if out.Start != "2004-01-01" || out.UnlimitedCount != 0 || len(out.Unlimited) != 0 {
		t.Fatalf("unexpected preview pool: %#v", out)
	}

	if _, _, err := s.handleCardPool(context.Background(), nil, CardPoolInput{List: "jj2-1999-p1"}); err == nil {
		t.Fatalf("expected error for unknown list")
	}
}
