package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewNodesCommand creates the nodes command group
func NewNodesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "nodes",
		Aliases: []string{"node"},
		Short:   "Manage nodes",
		Long:    "List and inspect VergeOS physical nodes",
	}

	cmd.AddCommand(newNodesListCommand())

	return cmd
}

func newNodesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List nodes",
		Long:  "List all physical nodes in the system",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			nodes, err := client.Nodes().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list nodes: %w", err)
			}

			handled, err := renderStructured(nodes)
			if handled || err != nil {
				return err
			}

			if len(nodes) == 0 {
				_, _ = os.Stdout.WriteString("No nodes found\n")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Key", "Name", "Status", "RAM")

			for _, node := range nodes {
				_ = table.Append(
					strconv.Itoa(node.Key),
					node.Name,
					formatOrNA(node.Status),
					strconv.Itoa(node.PhysRAM),
				)
			}

			return table.Render()
		},
	}
}
