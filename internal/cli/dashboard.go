package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"barkeep/internal/tui"
)

func newDashboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Interactive view of both widgets, refreshed on a ticker",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			p := tea.NewProgram(tui.NewDashboard(cfg), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
}
