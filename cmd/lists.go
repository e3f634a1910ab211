package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Developer-X-0001/bloxgo/friends"
	"github.com/Developer-X-0001/bloxgo/games"
	"github.com/Developer-X-0001/bloxgo/roblox"
)

var gamesOfGroup bool

// friendsCmd represents the friends command
var friendsCmd = &cobra.Command{
	Use:   "friends <userID>",
	Short: "List a user's friends",
	Args:  cobra.ExactArgs(1),
	RunE:  runFriends,
}

// followersCmd represents the followers command
var followersCmd = &cobra.Command{
	Use:   "followers <userID>",
	Short: "List the users following a user",
	Args:  cobra.ExactArgs(1),
	RunE:  runFollowers,
}

// followingsCmd represents the followings command
var followingsCmd = &cobra.Command{
	Use:   "followings <userID>",
	Short: "List the users a user follows",
	Args:  cobra.ExactArgs(1),
	RunE:  runFollowings,
}

// badgesCmd represents the badges command
var badgesCmd = &cobra.Command{
	Use:   "badges <userID>",
	Short: "List the badges a user has earned",
	Args:  cobra.ExactArgs(1),
	RunE:  runBadges,
}

// gamesCmd represents the games command
var gamesCmd = &cobra.Command{
	Use:   "games <id>",
	Short: "List the public games of a user or group",
	Args:  cobra.ExactArgs(1),
	RunE:  runGames,
}

func init() {
	addPageFlags(followersCmd)
	addPageFlags(followingsCmd)
	addPageFlags(badgesCmd)
	addPageFlags(gamesCmd)

	gamesCmd.Flags().BoolVar(&gamesOfGroup, "group", false, "treat the ID as a group ID")
}

func runFriends(cmd *cobra.Command, args []string) error {
	userID, err := parseID(args[0], "user")
	if err != nil {
		return err
	}

	list, err := friendsClient.Friends(context.Background(), userID)
	if err != nil {
		return err
	}

	if len(list) == 0 {
		fmt.Println("No friends found.")
		return nil
	}

	fmt.Printf("Found %d friends:\n", len(list))
	printSocialList(list)
	return nil
}

func runFollowers(cmd *cobra.Command, args []string) error {
	return runSocialPage(args[0], friendsClient.Followers)
}

func runFollowings(cmd *cobra.Command, args []string) error {
	return runSocialPage(args[0], friendsClient.Followings)
}

func runSocialPage(arg string, fetch func(context.Context, int64, roblox.PageQuery) (*roblox.Page[friends.Friend], error)) error {
	userID, err := parseID(arg, "user")
	if err != nil {
		return err
	}

	page, err := fetch(context.Background(), userID, pageQueryFromFlags())
	if err != nil {
		return err
	}

	if len(page.Data) == 0 {
		fmt.Println("Nothing to show on this page.")
		return nil
	}

	printSocialList(page.Data)
	printCursors(page.PreviousPageCursor, page.NextPageCursor)
	return nil
}

func printSocialList(list []friends.Friend) {
	fmt.Println(strings.Repeat("-", 60))
	for _, f := range list {
		fmt.Printf("• %s (@%s, id %d)", f.DisplayName, f.Name, f.ID)
		if f.IsOnline {
			fmt.Printf(" [online]")
		}
		if f.HasVerifiedBadge {
			fmt.Printf(" ✓")
		}
		fmt.Println()
	}
}

func runBadges(cmd *cobra.Command, args []string) error {
	userID, err := parseID(args[0], "user")
	if err != nil {
		return err
	}

	page, err := badgesClient.UserBadges(context.Background(), userID, pageQueryFromFlags())
	if err != nil {
		return err
	}

	if len(page.Data) == 0 {
		fmt.Println("No badges on this page.")
		return nil
	}

	fmt.Println(strings.Repeat("-", 60))
	for _, badge := range page.Data {
		fmt.Printf("• %s (id %d)", badge.Name, badge.ID)
		if badge.AwardingUniverse != nil {
			fmt.Printf(" — %s", badge.AwardingUniverse.Name)
		}
		fmt.Println()
	}

	printCursors(page.PreviousPageCursor, page.NextPageCursor)
	return nil
}

func runGames(cmd *cobra.Command, args []string) error {
	what := "user"
	if gamesOfGroup {
		what = "group"
	}
	id, err := parseID(args[0], what)
	if err != nil {
		return err
	}

	ctx := context.Background()
	q := pageQueryFromFlags()

	var page *roblox.Page[games.Game]
	if gamesOfGroup {
		page, err = gamesClient.GroupGames(ctx, id, q)
	} else {
		page, err = gamesClient.UserGames(ctx, id, q)
	}
	if err != nil {
		return err
	}

	if len(page.Data) == 0 {
		fmt.Println("No games on this page.")
		return nil
	}

	fmt.Println(strings.Repeat("-", 60))
	for _, game := range page.Data {
		fmt.Printf("• %s (id %d, %d visits)\n", game.Name, game.ID, game.PlaceVisits)
	}

	printCursors(page.PreviousPageCursor, page.NextPageCursor)
	return nil
}
