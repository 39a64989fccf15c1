package main

import (
	"encoding/json"
	"os"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

func getTerminalWidth() int {
	// Try to get terminal width from stdout
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	// Default width if terminal size cannot be determined
	return 80
}

// shortenPath keeps the end of a path, which names the file, when it does not
// fit in width cells.
func shortenPath(p string, width int) string {
	over := runewidth.StringWidth(p) - width
	if over <= 0 {
		return p
	}
	return runewidth.TruncateLeft(p, over+3, "...")
}

// fitName truncates a card name to width cells with an ellipsis.
func fitName(name string, width int) string {
	if width <= 3 {
		return name
	}
	return runewidth.Truncate(name, width, "...")
}

func outputJSON(cmd *cobra.Command, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func outputYAML(cmd *cobra.Command, v any) error {
	encoder := yaml.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}
