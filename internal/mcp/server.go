package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jjformat/jjlf/internal/banlist"
	"github.com/jjformat/jjlf/internal/carddb"
	"github.com/jjformat/jjlf/internal/usecase"
)

// Server wraps the MCP server with read-only banlist queries
type Server struct {
	server  *mcp.Server
	catalog *carddb.Catalog
	deploy  *usecase.Deploy
}

// NewServer creates a new MCP server instance
func NewServer(catalog *carddb.Catalog, deploy *usecase.Deploy, version string) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "jjlf",
		Version: version,
	}, nil)

	s := &Server{
		server:  mcpServer,
		catalog: catalog,
		deploy:  deploy,
	}

	s.registerTools()

	return s
}

// Run starts the MCP server with stdio transport
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "banlist_history",
		Description: "List every banlist snapshot of the format with tier sizes and, optionally, the changes each one made",
	}, s.handleHistory)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "card_status",
		Description: "Show the tier of a card in every banlist snapshot",
	}, s.handleCardStatus)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "card_pool",
		Description: "Project a deployed list onto the cards released in its window",
	}, s.handleCardPool)
}

// Input/Output types for each tool

type HistoryInput struct {
	Changes bool `json:"changes,omitempty" jsonschema:"Include the changes made by each snapshot"`
}

type HistoryOutput struct {
	Snapshots []SnapshotSummary `json:"snapshots"`
}

type SnapshotSummary struct {
	Name        string        `json:"name"`
	Banned      int           `json:"banned"`
	Limited     int           `json:"limited"`
	Semilimited int           `json:"semilimited"`
	Changes     []ChangeEntry `json:"changes,omitempty"`
}

type ChangeEntry struct {
	ID   int64  `json:"id"`
	Card string `json:"card"`
	From string `json:"from"`
	To   string `json:"to"`
}

type CardStatusInput struct {
	Name string `json:"name" jsonschema:"Card name or alternate name, case-insensitive"`
}

type CardStatusOutput struct {
	ID       int64                `json:"id"`
	Name     string               `json:"name"`
	Date     string               `json:"date"`
	Statuses []usecase.CardStatus `json:"statuses"`
}

type CardPoolInput struct {
	List             string `json:"list" jsonschema:"List name, e.g. jj2-2004-p1 or jj2-2005-preview"`
	IncludeUnlimited bool   `json:"includeUnlimited,omitempty" jsonschema:"Include every unlimited card instead of only the count"`
}

type CardPoolOutput struct {
	List           string     `json:"list"`
	Start          string     `json:"start"`
	End            string     `json:"end"`
	Banned         []PoolCard `json:"banned"`
	Limited        []PoolCard `json:"limited"`
	Semilimited    []PoolCard `json:"semilimited"`
	Unlimited      []PoolCard `json:"unlimited,omitempty"`
	UnlimitedCount int        `json:"unlimitedCount"`
}

type PoolCard struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
}

// Tool handlers

func (s *Server) handleHistory(ctx context.Context, req *mcp.CallToolRequest, input HistoryInput) (*mcp.CallToolResult, HistoryOutput, error) {
	history, err := s.deploy.History(ctx)
	if err != nil {
		return nil, HistoryOutput{}, fmt.Errorf("failed to load history: %w", err)
	}

	snapshots := make([]SnapshotSummary, 0, len(history.Snapshots))
	for _, snap := range history.Snapshots {
		summary := SnapshotSummary{
			Name:        snap.Name,
			Banned:      len(snap.Banned),
			Limited:     len(snap.Limited),
			Semilimited: len(snap.Semilimited),
		}
		if input.Changes {
			for _, c := range snap.Changes {
				summary.Changes = append(summary.Changes, ChangeEntry{
					ID:   c.Card.ID,
					Card: c.Card.Name,
					From: string(c.From),
					To:   string(c.To),
				})
			}
		}
		snapshots = append(snapshots, summary)
	}

	return nil, HistoryOutput{
		Snapshots: snapshots,
	}, nil
}

func (s *Server) handleCardStatus(ctx context.Context, req *mcp.CallToolRequest, input CardStatusInput) (*mcp.CallToolResult, CardStatusOutput, error) {
	card, ok := s.catalog.ByName(input.Name)
	if !ok {
		return nil, CardStatusOutput{}, fmt.Errorf("card not found: %s", input.Name)
	}

	history, err := s.deploy.History(ctx)
	if err != nil {
		return nil, CardStatusOutput{}, fmt.Errorf("failed to load history: %w", err)
	}

	return nil, CardStatusOutput{
		ID:       card.ID,
		Name:     card.Name,
		Date:     card.Date,
		Statuses: history.CardStatuses(card),
	}, nil
}

func (s *Server) handleCardPool(ctx context.Context, req *mcp.CallToolRequest, input CardPoolInput) (*mcp.CallToolResult, CardPoolOutput, error) {
	list, pool, err := s.deploy.Pool(ctx, input.List)
	if err != nil {
		return nil, CardPoolOutput{}, fmt.Errorf("failed to project list: %w", err)
	}

	out := CardPoolOutput{
		List:           list.Name,
		Start:          list.Start,
		End:            list.End,
		Banned:         poolCards(pool.Tier(banlist.Banned)),
		Limited:        poolCards(pool.Tier(banlist.Limited)),
		Semilimited:    poolCards(pool.Tier(banlist.Semilimited)),
		UnlimitedCount: len(pool.Unlimited),
	}
	if input.IncludeUnlimited {
		out.Unlimited = poolCards(pool.Unlimited)
	}

	return nil, out, nil
}

func poolCards(cards []carddb.Card) []PoolCard {
	out := make([]PoolCard, 0, len(cards))
	for _, c := range cards {
		out = append(out, PoolCard{ID: c.ID, Name: c.Name, Date: c.Date})
	}
	return out
}
