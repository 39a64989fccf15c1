package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jjformat/jjlf/internal/usecase"
)

func newHistoryCmd() *cobra.Command {
	var (
		format  string
		changes bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the banlist snapshot sequence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			history, err := a.deploy(false).History(cmd.Context())
			if err != nil {
				return err
			}

			switch format {
			case "json":
				return outputJSON(cmd, historyOutput(history, changes))
			case "yaml":
				return outputYAML(cmd, historyOutput(history, changes))
			case "table":
				outputHistoryTable(cmd, history, changes)
				return nil
			default:
				return fmt.Errorf("invalid format: %s (valid values: table, json, yaml)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format: table, json or yaml")
	cmd.Flags().BoolVar(&changes, "changes", false, "Include the changes made by each snapshot")

	return cmd
}

type snapshotOutput struct {
	Name        string         `json:"name" yaml:"name"`
	Banned      int            `json:"banned" yaml:"banned"`
	Limited     int            `json:"limited" yaml:"limited"`
	Semilimited int            `json:"semilimited" yaml:"semilimited"`
	Changes     []changeOutput `json:"changes,omitempty" yaml:"changes,omitempty"`
}

type changeOutput struct {
	ID   int64  `json:"id" yaml:"id"`
	Card string `json:"card" yaml:"card"`
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

func historyOutput(history *usecase.History, withChanges bool) []snapshotOutput {
	output := make([]snapshotOutput, 0, len(history.Snapshots))
	for _, snap := range history.Snapshots {
		item := snapshotOutput{
			Name:        snap.Name,
			Banned:      len(snap.Banned),
			Limited:     len(snap.Limited),
			Semilimited: len(snap.Semilimited),
		}
		if withChanges {
			for _, c := range snap.Changes {
				item.Changes = append(item.Changes, changeOutput{
					ID:   c.Card.ID,
					Card: c.Card.Name,
					From: string(c.From),
					To:   string(c.To),
				})
			}
		}
		output = append(output, item)
	}
	return output
}

func outputHistoryTable(cmd *cobra.Command, history *usecase.History, withChanges bool) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)

	if !withChanges {
		t.AppendHeader(table.Row{"Snapshot", "Banned", "Limited", "Semilimited", "Changes"})
		for _, snap := range history.Snapshots {
			t.AppendRow(table.Row{snap.Name, len(snap.Banned), len(snap.Limited), len(snap.Semilimited), len(snap.Changes)})
		}
		t.Render()
		return
	}

	// Snapshot, id and both tiers take roughly 50 columns with borders.
	nameWidth := getTerminalWidth() - 50
	if nameWidth < 20 {
		nameWidth = 20
	}

	t.AppendHeader(table.Row{"Snapshot", "ID", "Card", "From", "To"})
	for _, snap := range history.Snapshots {
		for _, c := range snap.Changes {
			t.AppendRow(table.Row{snap.Name, c.Card.ID, fitName(c.Card.Name, nameWidth), string(c.From), string(c.To)})
		}
		t.AppendSeparator()
	}
	t.Render()
}
