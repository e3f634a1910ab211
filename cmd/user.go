package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Developer-X-0001/bloxgo/avatars"
	"github.com/Developer-X-0001/bloxgo/friends"
	"github.com/Developer-X-0001/bloxgo/users"
)

// userCmd represents the user command
var userCmd = &cobra.Command{
	Use:   "user <id>",
	Short: "Show a user's profile",
	Long: `Show a user's public profile, including avatar summary and friend
count. The profile, avatar and friend list are fetched concurrently.`,
	Args: cobra.ExactArgs(1),
	RunE: runUser,
}

func runUser(cmd *cobra.Command, args []string) error {
	userID, err := parseID(args[0], "user")
	if err != nil {
		return err
	}

	ctx := context.Background()

	var (
		user       *users.User
		avatar     *avatars.Avatar
		friendList []friends.Friend
	)

	// The library itself is strictly synchronous; fan-out lives here.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = usersClient.Get(gctx, userID)
		return err
	})
	g.Go(func() error {
		a, err := avatarsClient.Get(gctx, userID)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to fetch avatar, continuing without it")
			return nil
		}
		avatar = a
		return nil
	})
	g.Go(func() error {
		list, err := friendsClient.Friends(gctx, userID)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to fetch friends, continuing without them")
			return nil
		}
		friendList = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("%s (@%s)\n", user.DisplayName, user.Name)
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("ID:       %d\n", user.ID)
	fmt.Printf("Created:  %s\n", user.Created.Format("2006-01-02"))
	if user.HasVerifiedBadge {
		fmt.Println("Verified: yes")
	}
	if user.IsBanned {
		fmt.Println("Status:   BANNED")
	}
	if user.Description != "" {
		fmt.Printf("About:    %s\n", user.Description)
	}
	fmt.Printf("Friends:  %d\n", len(friendList))
	if avatar != nil {
		fmt.Printf("Avatar:   %s, %d assets worn\n", avatar.PlayerAvatarType, len(avatar.Assets))
	}

	return nil
}
