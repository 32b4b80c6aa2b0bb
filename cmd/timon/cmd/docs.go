package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/spietras/timon-interpreter/cmd/timon/docs"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "show the language reference",
	RunE: func(cmd *cobra.Command, args []string) error {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			return fmt.Errorf("build markdown renderer: %w", err)
		}
		out, err := renderer.Render(docs.Reference)
		if err != nil {
			return fmt.Errorf("render reference: %w", err)
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
