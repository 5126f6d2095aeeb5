package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"barkeep/internal/unread"
	"barkeep/internal/widget"
)

func newUnreadCommand() *cobra.Command {
	var (
		root   string
		field  int
		format string
	)
	cmd := &cobra.Command{
		Use:   "unread",
		Short: "Print the total unread-mail count",
		Long: `Scan the mailbox tree for INBOX index files and print the summed unread
count as a decimal integer. A missing or unreadable root is a configuration
error and exits non-zero with no output; everything else degrades to 0.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if root == "" {
				root = cfg.Mail.Root
			}
			if !cmd.Flags().Changed("field") {
				field = cfg.Mail.Field
			}
			f, err := widget.ParseFormat(format)
			if err != nil {
				return err
			}

			total, err := unread.Total(root, field)
			if err != nil {
				return err
			}
			line, err := widget.Unread(total).Render(f)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}
	cmd.Flags().StringVar(&root, "root", "", "mailbox tree root (default: config)")
	cmd.Flags().IntVar(&field, "field", 2, "index marker field id, 1 or 2 (default: config)")
	cmd.Flags().StringVar(&format, "format", "plain", "output format: plain or waybar")
	return cmd
}
