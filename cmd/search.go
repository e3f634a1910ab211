package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/Developer-X-0001/bloxgo/filter"
	"github.com/Developer-X-0001/bloxgo/groups"
	"github.com/Developer-X-0001/bloxgo/roblox"
	"github.com/Developer-X-0001/bloxgo/users"
)

var (
	searchGroups bool
	exactMatch   bool
	filterExpr   string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search users or groups by keyword",
	Long: `Search Roblox users (default) or groups (--groups) by keyword.

Results can be narrowed down client-side with --filter, a boolean
expression over the result fields:

  bloxgo search roblox --groups --filter 'MemberCount > 1000 && HasVerifiedBadge'
  bloxgo search builder --filter 'startsWith(Name, "builder")'`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchGroups, "groups", false, "search groups instead of users")
	searchCmd.Flags().BoolVar(&exactMatch, "exact", false, "prioritize exact keyword matches (groups only)")
	searchCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to the result page")
	searchCmd.Flags().IntVarP(&limitFlag, "limit", "l", 0, "results per page (10, 25, 50 or 100)")
	searchCmd.Flags().StringVar(&cursorFlag, "cursor", "", "opaque cursor from a previous page")
}

func runSearch(cmd *cobra.Command, args []string) error {
	keyword := args[0]

	var resultFilter *filter.Filter
	if filterExpr != "" {
		var err error
		resultFilter, err = filter.Compile(filterExpr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
	}

	logger.Info().Str("keyword", keyword).Bool("groups", searchGroups).Msg("Searching")

	ctx := context.Background()
	if searchGroups {
		return runGroupSearch(ctx, keyword, resultFilter)
	}
	return runUserSearch(ctx, keyword, resultFilter)
}

func runUserSearch(ctx context.Context, keyword string, resultFilter *filter.Filter) error {
	page, err := usersClient.Search(ctx, keyword, roblox.SearchQuery{
		Limit:  limitFlag,
		Cursor: cursorFlag,
	})
	if err != nil {
		return err
	}

	results := page.Data
	if resultFilter != nil {
		results = filter.Apply(resultFilter, results)
	}

	if len(results) == 0 {
		fmt.Println("No users found.")
		return nil
	}

	lines := lo.Map(results, func(r users.SearchResult, _ int) string {
		line := fmt.Sprintf("• %s (@%s, id %d)", r.DisplayName, r.Name, r.ID)
		if r.HasVerifiedBadge {
			line += " ✓"
		}
		if len(r.PreviousUsernames) > 0 {
			line += fmt.Sprintf(" (formerly %s)", strings.Join(r.PreviousUsernames, ", "))
		}
		return line
	})

	printSearchResults(lines, page.PreviousPageCursor, page.NextPageCursor)
	return nil
}

func runGroupSearch(ctx context.Context, keyword string, resultFilter *filter.Filter) error {
	page, err := groupsClient.Search(ctx, keyword, groups.SearchOptions{
		PrioritizeExactMatch: exactMatch,
		Limit:                limitFlag,
		Cursor:               cursorFlag,
	})
	if err != nil {
		return err
	}

	results := page.Data
	if resultFilter != nil {
		results = filter.Apply(resultFilter, results)
	}

	if len(results) == 0 {
		fmt.Println("No groups found.")
		return nil
	}

	lines := lo.Map(results, func(r groups.SearchResult, _ int) string {
		line := fmt.Sprintf("• %s (id %d, %d members)", r.Name, r.ID, r.MemberCount)
		if r.HasVerifiedBadge {
			line += " ✓"
		}
		return line
	})

	printSearchResults(lines, page.PreviousPageCursor, page.NextPageCursor)
	return nil
}

func printSearchResults(lines []string, prev, next *string) {
	fmt.Printf("Found %d results:\n", len(lines))
	fmt.Println(strings.Repeat("-", 60))
	for _, line := range lines {
		fmt.Println(line)
	}
	printCursors(prev, next)
}
