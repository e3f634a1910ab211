package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var showRoles bool

// groupCmd represents the group command
var groupCmd = &cobra.Command{
	Use:   "group <id>",
	Short: "Show a group's details",
	Args:  cobra.ExactArgs(1),
	RunE:  runGroup,
}

func init() {
	groupCmd.Flags().BoolVar(&showRoles, "roles", false, "also list the group's ranks")
}

func runGroup(cmd *cobra.Command, args []string) error {
	groupID, err := parseID(args[0], "group")
	if err != nil {
		return err
	}

	ctx := context.Background()

	group, err := groupsClient.Get(ctx, groupID)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", group.Name)
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("ID:      %d\n", group.ID)
	fmt.Printf("Members: %d\n", group.MemberCount)
	if group.Owner != nil {
		fmt.Printf("Owner:   %s (@%s)\n", group.Owner.DisplayName, group.Owner.Username)
	}
	if group.HasVerifiedBadge {
		fmt.Println("Verified: yes")
	}
	if group.IsLocked {
		fmt.Println("Locked:  yes")
	}
	if group.PublicEntryAllowed {
		fmt.Println("Entry:   public")
	}
	if group.Description != "" {
		fmt.Printf("About:   %s\n", group.Description)
	}
	if group.Shout != nil && group.Shout.Body != "" {
		fmt.Printf("Shout:   %s", group.Shout.Body)
		if group.Shout.Poster != nil {
			fmt.Printf(" — @%s", group.Shout.Poster.Username)
		}
		fmt.Println()
	}

	if !showRoles {
		return nil
	}

	roles, err := groupsClient.Roles(ctx, groupID)
	if err != nil {
		return err
	}

	fmt.Printf("\n%-30s %-6s %s\n", "ROLE", "RANK", "MEMBERS")
	fmt.Println(strings.Repeat("-", 60))
	for _, role := range roles {
		fmt.Printf("%-30s %-6d %d\n", role.Name, role.Rank, role.MemberCount)
	}

	return nil
}
