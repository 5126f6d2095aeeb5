// Package cli wires the provider commands into a single barkeep binary.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"barkeep/internal/config"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "barkeep",
		Short:        "Status-bar widget providers for local mail and calendar state",
		Long: `barkeep derives short status strings for a bar like Waybar from a mail
client's on-disk state: the summed unread count from mailbox index files, and
a (next-meeting | count) summary from the active profile's calendar store.

Each provider is stateless and re-reads its sources on every invocation.`,
		SilenceUsage: true,
	}
	root.AddCommand(
		newUnreadCommand(),
		newMeetingsCommand(),
		newDashboardCommand(),
	)
	return root
}

func loadConfig() (config.Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(home)
}
