package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// badgeCmd represents the badge command
var badgeCmd = &cobra.Command{
	Use:   "badge <id>",
	Short: "Show a badge's details",
	Args:  cobra.ExactArgs(1),
	RunE:  runBadge,
}

func runBadge(cmd *cobra.Command, args []string) error {
	badgeID, err := parseID(args[0], "badge")
	if err != nil {
		return err
	}

	badge, err := badgesClient.Get(context.Background(), badgeID)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", badge.Name)
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("ID:      %d\n", badge.ID)
	fmt.Printf("Enabled: %t\n", badge.Enabled)
	fmt.Printf("Created: %s\n", badge.Created.Format("2006-01-02"))
	if badge.Description != "" {
		fmt.Printf("About:   %s\n", badge.Description)
	}
	if badge.AwardingUniverse != nil {
		fmt.Printf("Game:    %s (universe %d)\n", badge.AwardingUniverse.Name, badge.AwardingUniverse.ID)
	}
	if badge.Statistics != nil {
		fmt.Printf("Awarded: %d total, %d in the past day (win rate %.2f%%)\n",
			badge.Statistics.AwardedCount,
			badge.Statistics.PastDayAwardedCount,
			badge.Statistics.WinRatePercentage*100)
	}

	return nil
}
