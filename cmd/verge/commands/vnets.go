package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/fivetwenty-io/verge-client/pkg/verge"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewVNetsCommand creates the vnets command group
func NewVNetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vnets",
		Aliases: []string{"vnet", "networks"},
		Short:   "Manage virtual networks",
		Long:    "List and inspect VergeOS virtual networks",
	}

	cmd.AddCommand(newVNetsListCommand())

	return cmd
}

func newVNetsListCommand() *cobra.Command {
	var namePattern string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List virtual networks",
		Long:  "List all virtual networks, optionally filtered by name pattern",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			var vnets []verge.VNet
			if namePattern != "" {
				vnets, err = client.VNets().GetByName(ctx, namePattern)
			} else {
				vnets, err = client.VNets().List(ctx)
			}

			if err != nil {
				return fmt.Errorf("failed to list virtual networks: %w", err)
			}

			handled, err := renderStructured(vnets)
			if handled || err != nil {
				return err
			}

			if len(vnets) == 0 {
				_, _ = os.Stdout.WriteString("No virtual networks found\n")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Key", "Name", "Type", "Network", "Status")

			for _, vnet := range vnets {
				_ = table.Append(
					strconv.Itoa(vnet.Key),
					vnet.Name,
					formatOrNA(vnet.Type),
					formatOrNA(vnet.Network),
					formatOrNA(vnet.Status),
				)
			}

			return table.Render()
		},
	}

	cmd.Flags().StringVarP(&namePattern, "name", "n", "", "filter by name (supports * and ? wildcards)")

	return cmd
}
