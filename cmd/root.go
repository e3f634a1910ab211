package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Developer-X-0001/bloxgo/avatars"
	"github.com/Developer-X-0001/bloxgo/badges"
	"github.com/Developer-X-0001/bloxgo/config"
	"github.com/Developer-X-0001/bloxgo/friends"
	"github.com/Developer-X-0001/bloxgo/games"
	"github.com/Developer-X-0001/bloxgo/groups"
	"github.com/Developer-X-0001/bloxgo/roblox"
	"github.com/Developer-X-0001/bloxgo/users"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger

	usersClient   *users.Client
	groupsClient  *groups.Client
	badgesClient  *badges.Client
	friendsClient *friends.Client
	gamesClient   *games.Client
	avatarsClient *avatars.Client

	// Pagination flags shared by the list commands
	limitFlag  int
	cursorFlag string
	sortFlag   string

	appVersion   = "dev"
	appBuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "bloxgo",
	Short: "Look up public Roblox users, groups and badges from the terminal",
	Long: `bloxgo is a CLI over the public Roblox web APIs. It can look up
users, groups, badges, avatars and the social graph, search users and
groups by keyword, and page through any of the list endpoints.

All endpoints are publicly readable; no authentication is needed.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion records the build information stamped in by the linker.
func SetVersion(version, buildTime string) {
	appVersion = version
	appBuildTime = buildTime
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(groupCmd)
	rootCmd.AddCommand(badgeCmd)
	rootCmd.AddCommand(friendsCmd)
	rootCmd.AddCommand(followersCmd)
	rootCmd.AddCommand(followingsCmd)
	rootCmd.AddCommand(badgesCmd)
	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(selfUpdateCmd)
}

// initializeApp initializes the configuration and clients
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// One shared transport behind every per-service client
	core := roblox.NewClient(
		roblox.WithTimeout(cfg.Client.Timeout),
		roblox.WithUserAgent(cfg.Client.UserAgent),
		roblox.WithLogger(logger),
	)

	usersClient = users.NewClient(core)
	groupsClient = groups.NewClient(core)
	badgesClient = badges.NewClient(core)
	friendsClient = friends.NewClient(core)
	gamesClient = games.NewClient(core)
	avatarsClient = avatars.NewClient(core)

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only when stderr is a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// addPageFlags registers the pagination flags on a list command.
func addPageFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&limitFlag, "limit", "l", 0, "results per page (10, 25, 50 or 100)")
	cmd.Flags().StringVar(&cursorFlag, "cursor", "", "opaque cursor from a previous page")
	cmd.Flags().StringVar(&sortFlag, "sort", "", "sort order (Asc or Desc)")
}

func pageQueryFromFlags() roblox.PageQuery {
	return roblox.PageQuery{
		Limit:     limitFlag,
		Cursor:    cursorFlag,
		SortOrder: roblox.SortOrder(sortFlag),
	}
}

// parseID parses a positional numeric ID argument.
func parseID(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s ID %q: must be an integer", what, arg)
	}
	return id, nil
}

// printCursors shows how to reach the neighboring pages.
func printCursors(prev, next *string) {
	if prev != nil && *prev != "" {
		fmt.Printf("\nPrevious page: --cursor %q\n", *prev)
	}
	if next != nil && *next != "" {
		fmt.Printf("Next page:     --cursor %q\n", *next)
	}
}
