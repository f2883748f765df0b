package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/fivetwenty-io/verge-client/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewLogsCommand creates the logs command
func NewLogsCommand() *cobra.Command {
	var (
		lines int
		since time.Duration
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show system logs",
		Long:  "Display recent system log entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			var sinceMicros int64
			if since > 0 {
				sinceMicros = time.Now().Add(-since).UnixMicro()
			}

			entries, err := client.Logs().List(ctx, sinceMicros, lines)
			if err != nil {
				return fmt.Errorf("failed to list logs: %w", err)
			}

			handled, err := renderStructured(entries)
			if handled || err != nil {
				return err
			}

			if len(entries) == 0 {
				_, _ = os.Stdout.WriteString("No log entries found\n")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Key", "Time", "Level", "Module", "Message")

			for _, entry := range entries {
				_ = table.Append(
					strconv.Itoa(entry.Key),
					formatEpochMicros(entry.Timestamp),
					formatOrNA(entry.Level),
					formatOrNA(entry.Module),
					entry.Message,
				)
			}

			return table.Render()
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", constants.DefaultLogLines, "number of log lines to fetch")
	cmd.Flags().DurationVar(&since, "since", 0, "only show entries newer than this duration (e.g. 1h)")

	return cmd
}
