package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jjformat/jjlf/internal/carddb"
	"github.com/jjformat/jjlf/internal/usecase"
)

func newCardCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "card <name>",
		Short: "Show a card's tier in every snapshot",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")

			a, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			card, ok := a.catalog.ByName(name)
			if !ok {
				return fmt.Errorf("card not found: %s", name)
			}

			history, err := a.deploy(false).History(cmd.Context())
			if err != nil {
				return err
			}
			statuses := history.CardStatuses(card)

			switch format {
			case "json":
				return outputJSON(cmd, cardOutput{Card: card, Statuses: statuses})
			case "table":
				outputCardTable(cmd, card, statuses)
				return nil
			default:
				return fmt.Errorf("invalid format: %s (valid values: table, json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	return cmd
}

type cardOutput struct {
	Card     carddb.Card          `json:"card"`
	Statuses []usecase.CardStatus `json:"statuses"`
}

func outputCardTable(cmd *cobra.Command, card carddb.Card, statuses []usecase.CardStatus) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%d), released %s\n", card.Name, card.ID, card.Date)
	if len(card.AltNames) > 0 {
		fmt.Fprintf(out, "Also known as: %s\n", strings.Join(card.AltNames, ", "))
	}

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Snapshot", "Tier", "Change"})
	for _, s := range statuses {
		change := ""
		if s.Previous != "" {
			change = fmt.Sprintf("%s -> %s", s.Previous, s.Tier)
		}
		t.AppendRow(table.Row{s.Snapshot, string(s.Tier), change})
	}

	t.Render()
}
