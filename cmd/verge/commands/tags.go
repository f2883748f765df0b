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

// NewTagsCommand creates the tags command group
func NewTagsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tags",
		Aliases: []string{"tag"},
		Short:   "Manage tags",
		Long:    "List tags and manage tag membership",
	}

	cmd.AddCommand(newTagsListCommand())
	cmd.AddCommand(newTagsMembersCommand())
	cmd.AddCommand(newTagsAssignCommand())
	cmd.AddCommand(newTagsRemoveCommand())

	return cmd
}

func newTagsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tags",
		Long:  "List all tags in the system",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			tags, err := client.Tags().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list tags: %w", err)
			}

			handled, err := renderStructured(tags)
			if handled || err != nil {
				return err
			}

			if len(tags) == 0 {
				_, _ = os.Stdout.WriteString("No tags found\n")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Key", "Name", "Description", "Color")

			for _, tag := range tags {
				_ = table.Append(
					strconv.Itoa(tag.Key),
					tag.Name,
					formatOrNA(tag.Description),
					formatOrNA(tag.Color),
				)
			}

			return table.Render()
		},
	}
}

func newTagsMembersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "members TAG_NAME_OR_KEY",
		Short: "List tag members",
		Long:  "List the resources currently attached to a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			members, err := client.Tags().Members(ctx, verge.InputString(args[0]))
			if err != nil {
				return fmt.Errorf("failed to list members of tag '%s': %w", args[0], err)
			}

			handled, err := renderStructured(members)
			if handled || err != nil {
				return err
			}

			if len(members) == 0 {
				_, _ = os.Stdout.WriteString("No members found\n")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Key", "Member", "Name")

			for _, member := range members {
				_ = table.Append(
					strconv.Itoa(member.Key),
					member.Reference.String(),
					formatOrNA(member.Name),
				)
			}

			return table.Render()
		},
	}
}

func newTagsAssignCommand() *cobra.Command {
	var family string

	cmd := &cobra.Command{
		Use:   "assign TAG_NAME_OR_KEY MEMBER_NAME_OR_KEY",
		Short: "Assign a tag to a resource",
		Long:  "Attach a tag to a resource, resolving names as needed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			member, err := client.Tags().Assign(ctx, verge.InputString(args[0]), family, verge.InputString(args[1]))
			if err != nil {
				return fmt.Errorf("failed to assign tag '%s': %w", args[0], err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully assigned tag '%s' to %s\n", args[0], member.Reference)

			return nil
		},
	}

	cmd.Flags().StringVar(&family, "family", "vms", "resource family of the member")

	return cmd
}

func newTagsRemoveCommand() *cobra.Command {
	var family string

	cmd := &cobra.Command{
		Use:   "remove TAG_NAME_OR_KEY MEMBER_NAME_OR_KEY",
		Short: "Remove a tag from a resource",
		Long:  "Detach a tag from a resource, resolving names as needed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			err = client.Tags().Remove(ctx, verge.InputString(args[0]), family, verge.InputString(args[1]))
			if err != nil {
				return fmt.Errorf("failed to remove tag '%s': %w", args[0], err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully removed tag '%s' from '%s'\n", args[0], args[1])

			return nil
		},
	}

	cmd.Flags().StringVar(&family, "family", "vms", "resource family of the member")

	return cmd
}
