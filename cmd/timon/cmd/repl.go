package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/spietras/timon-interpreter/cmd/timon/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "start an interactive session",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := tea.NewProgram(repl.New())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("repl: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
