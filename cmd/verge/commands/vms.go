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

// NewVMsCommand creates the vms command group
func NewVMsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vms",
		Aliases: []string{"vm"},
		Short:   "Manage virtual machines",
		Long:    "List and manage VergeOS virtual machines",
	}

	cmd.AddCommand(newVMsListCommand())
	cmd.AddCommand(newVMsGetCommand())
	cmd.AddCommand(newVMsDeleteCommand())

	return cmd
}

func newVMsListCommand() *cobra.Command {
	var namePattern string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List virtual machines",
		Long:  "List all virtual machines, optionally filtered by name pattern",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			var vms []verge.VM
			if namePattern != "" {
				vms, err = client.VMs().GetByName(ctx, namePattern)
			} else {
				vms, err = client.VMs().List(ctx)
			}

			if err != nil {
				return fmt.Errorf("failed to list virtual machines: %w", err)
			}

			handled, err := renderStructured(vms)
			if handled || err != nil {
				return err
			}

			if len(vms) == 0 {
				_, _ = os.Stdout.WriteString("No virtual machines found\n")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Key", "Name", "Status", "Enabled", "CPU", "RAM")

			for _, vm := range vms {
				_ = table.Append(
					strconv.Itoa(vm.Key),
					vm.Name,
					formatOrNA(vm.Status),
					formatBool(vm.Enabled),
					strconv.Itoa(vm.CPUCores),
					strconv.Itoa(vm.RAM),
				)
			}

			return table.Render()
		},
	}

	cmd.Flags().StringVarP(&namePattern, "name", "n", "", "filter by name (supports * and ? wildcards)")

	return cmd
}

func newVMsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get VM_NAME_OR_KEY",
		Short: "Get virtual machine details",
		Long:  "Display detailed information about a virtual machine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			ref, err := client.Resolver().Resolve(ctx, "vms", verge.InputString(args[0]))
			if err != nil {
				return fmt.Errorf("failed to find virtual machine '%s': %w", args[0], err)
			}

			vm, err := client.VMs().Get(ctx, ref.Key)
			if err != nil {
				return fmt.Errorf("failed to get virtual machine '%s': %w", args[0], err)
			}

			handled, err := renderStructured(vm)
			if handled || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")

			_ = table.Append("Key", strconv.Itoa(vm.Key))
			_ = table.Append("Name", vm.Name)
			_ = table.Append("Description", formatOrNA(vm.Description))
			_ = table.Append("Status", formatOrNA(vm.Status))
			_ = table.Append("Enabled", formatBool(vm.Enabled))
			_ = table.Append("CPU Cores", strconv.Itoa(vm.CPUCores))
			_ = table.Append("RAM", strconv.Itoa(vm.RAM))
			_ = table.Append("Snapshot", formatBool(vm.Snapshot))

			return table.Render()
		},
	}
}

func newVMsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete VM_NAME_OR_KEY",
		Short: "Delete a virtual machine",
		Long:  "Delete a virtual machine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			ref, err := client.Resolver().Resolve(ctx, "vms", verge.InputString(args[0]))
			if err != nil {
				return fmt.Errorf("failed to find virtual machine '%s': %w", args[0], err)
			}

			if !force {
				_, _ = fmt.Fprintf(os.Stdout, "Really delete virtual machine '%s'? (y/N): ", args[0])

				var response string

				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					_, _ = os.Stdout.WriteString("Cancelled\n")

					return nil
				}
			}

			err = client.VMs().Delete(ctx, ref.Key)
			if err != nil {
				return fmt.Errorf("failed to delete virtual machine: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully deleted virtual machine '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}
