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

// NewTenantsCommand creates the tenants command group
func NewTenantsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tenants",
		Aliases: []string{"tenant"},
		Short:   "Manage tenants",
		Long:    "List and inspect VergeOS tenants",
	}

	cmd.AddCommand(newTenantsListCommand())

	return cmd
}

func newTenantsListCommand() *cobra.Command {
	var namePattern string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tenants",
		Long:  "List all tenants, optionally filtered by name pattern",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			var tenants []verge.Tenant
			if namePattern != "" {
				tenants, err = client.Tenants().GetByName(ctx, namePattern)
			} else {
				tenants, err = client.Tenants().List(ctx)
			}

			if err != nil {
				return fmt.Errorf("failed to list tenants: %w", err)
			}

			handled, err := renderStructured(tenants)
			if handled || err != nil {
				return err
			}

			if len(tenants) == 0 {
				_, _ = os.Stdout.WriteString("No tenants found\n")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Key", "Name", "Status", "URL")

			for _, tenant := range tenants {
				_ = table.Append(
					strconv.Itoa(tenant.Key),
					tenant.Name,
					formatOrNA(tenant.Status),
					formatOrNA(tenant.URL),
				)
			}

			return table.Render()
		},
	}

	cmd.Flags().StringVarP(&namePattern, "name", "n", "", "filter by name (supports * and ? wildcards)")

	return cmd
}
