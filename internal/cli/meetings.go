package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"barkeep/internal/calendar"
	"barkeep/internal/model"
	"barkeep/internal/widget"
)

func newMeetingsCommand() *cobra.Command {
	var (
		registry string
		format   string
	)
	cmd := &cobra.Command{
		Use:   "meetings",
		Short: "Print today's meeting summary as (next-HH:MM | count)",
		Long: `Resolve the active profile from the profiles.ini registry, read its
calendar store, and print "(<next> | <count>)" for today. Any data problem,
including a missing registry or store, degrades to "(-- | 0)" with exit 0:
the status bar must always receive displayable text.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := widget.ParseFormat(format)
			if err != nil {
				return err
			}
			if registry == "" {
				cfg, err := loadConfig()
				if err != nil {
					// A broken config file must not blank the widget: the
					// bar treats a non-zero exit as "no text available".
					line, err := widget.Meetings(model.NoMeetings(), nil).Render(f)
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), line)
					return nil
				}
				registry = cfg.Calendar.Registry
			}

			now := time.Now()
			meetings, ok := calendar.Today(cmd.Context(), registry, now)
			sum := model.NoMeetings()
			if ok {
				sum = calendar.Summarize(meetings, now)
			}
			line, err := widget.Meetings(sum, meetings).Render(f)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}
	cmd.Flags().StringVar(&registry, "registry", "", "profiles.ini path (default: config)")
	cmd.Flags().StringVar(&format, "format", "plain", "output format: plain or waybar")
	return cmd
}
