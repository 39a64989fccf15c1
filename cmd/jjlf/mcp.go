package main

import (
	"github.com/spf13/cobra"

	"github.com/jjformat/jjlf/internal/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server",
		Long:  "Start the Model Context Protocol server exposing the banlist history over stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			server := mcp.NewServer(a.catalog, a.deploy(false), version)
			return server.Run(cmd.Context())
		},
	}

	return cmd
}
