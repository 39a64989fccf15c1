package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jjformat/jjlf/internal/usecase"
)

func newBuildCmd() *cobra.Command {
	var noClean bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the banlist history and deploy every lflist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			result, err := a.deploy(!noClean).Run(cmd.Context())
			if err != nil {
				return err
			}

			outputBuildTable(cmd, result)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote %d lists to %s (removed %d old files)\n", len(result.Lists), a.cfg.DeployDir, result.Cleaned)
			if result.Repo != nil && result.Repo.IsGitRepo {
				fmt.Fprintf(out, "Deployment repository %s on %s: %d changed files\n", result.Repo.Root, result.Repo.Branch, len(result.Repo.Changed))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noClean, "no-clean", false, "Keep existing .conf files in the deployment directory")

	return cmd
}

func outputBuildTable(cmd *cobra.Command, result *usecase.DeployResult) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)

	// Name, kind, flag and four counts take roughly 70 columns with borders.
	pathWidth := getTerminalWidth() - 70
	if pathWidth < 20 {
		pathWidth = 20
	}

	t.AppendHeader(table.Row{"List", "Kind", "Archived", "Banned", "Limited", "Semi", "Unlimited", "Path"})
	for _, l := range result.Lists {
		archived := ""
		if l.Archived {
			archived = "yes"
		}
		t.AppendRow(table.Row{
			l.Name,
			string(l.Kind),
			archived,
			l.Banned,
			l.Limited,
			l.Semilimited,
			l.Unlimited,
			shortenPath(l.Path, pathWidth),
		})
	}

	t.Render()
}
