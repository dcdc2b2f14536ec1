package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"xvidzip/pkg/config"
	"xvidzip/pkg/grabber"
	"xvidzip/pkg/logger"
	"xvidzip/pkg/profile"
	"xvidzip/pkg/ui"
)

var (
	// Grab command flags
	outputPath string
	limit      int
	cookieFile string
	quality    string
	maxRetries int
)

// grabCmd represents the grab command
var grabCmd = &cobra.Command{
	Use:   "grab <username>",
	Short: "Download a profile's videos and package them into a ZIP",
	Long: `Download all videos from an X/Twitter user's public timeline and save
them in a single ZIP archive.

Public accounts work without cookies in many cases. Private accounts
require authentication: export your browser cookies from twitter.com
while logged in (Netscape format, e.g. via a "Get cookies.txt" browser
extension) and pass the file with --cookies.`,
	Example: `  # Download everything from @nasa into nasa_videos.zip
  xvidzip grab nasa

  # Cap at 20 videos with a custom archive name
  xvidzip grab nasa --limit 20 --output nasa.zip

  # Authenticated access for protected accounts
  xvidzip grab nasa --cookies cookies.txt

  # Constrain the stream selection
  xvidzip grab nasa --quality "bestvideo[height<=720]+bestaudio/best[height<=720]"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runGrab(cmd, args)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(grabCmd)

	grabCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output ZIP path (default: <username>_videos.zip)")
	grabCmd.Flags().IntVarP(&limit, "limit", "l", 0, "maximum number of videos to download (default: all)")
	grabCmd.Flags().StringVarP(&cookieFile, "cookies", "c", "", "path to a Netscape-format cookies file for authenticated access")
	grabCmd.Flags().StringVarP(&quality, "quality", "q", "", `format selector expression (default: "best")`)
	grabCmd.Flags().IntVar(&maxRetries, "max-retries", 3, "maximum enumeration retry attempts")
}

func runGrab(cmd *cobra.Command, args []string) {
	// Username validation happens before any network or filesystem side
	// effect, configuration loading included.
	handle := profile.Normalize(args[0])
	if err := profile.Validate(handle); err != nil {
		ui.PrintError("Invalid username", args[0])
		os.Exit(1)
	}

	flags := make(map[string]interface{})
	if outputPath != "" {
		flags["output"] = outputPath
	}
	if limit > 0 {
		flags["limit"] = limit
	}
	if cookieFile != "" {
		flags["cookies"] = cookieFile
	}
	if quality != "" {
		flags["quality"] = quality
	}
	if maxRetries != 3 {
		flags["max-retries"] = maxRetries
	}
	if logLevel != "info" {
		flags["log-level"] = logLevel
	}

	cfg, err := config.Load(configFile, flags)
	if err != nil {
		ui.PrintError("Failed to load configuration", err.Error())
		os.Exit(1)
	}

	if err := logger.Initialize(&cfg.Logging); err != nil {
		ui.PrintError("Failed to initialize logger", err.Error())
		os.Exit(1)
	}
	logger.WithField("version", version).Info("xvidzip starting")

	ui.PrintInfo("Username", "@"+handle)
	ui.PrintInfo("Output ZIP", cfg.ResolveArchivePath(handle))
	if cfg.Download.Limit > 0 {
		ui.PrintInfo("Limit", fmt.Sprintf("%d video(s)", cfg.Download.Limit))
	}
	if cfg.Download.CookieFile != "" {
		ui.PrintInfo("Cookies", cfg.Download.CookieFile)
	}

	ui.PrintHighlight("[INITIATING DOWNLOAD SEQUENCE]")

	g := grabber.New(cfg)
	result, err := g.Run(context.Background(), handle)
	if err != nil {
		logger.WithError(err).WithField("username", handle).Error("Download run failed")
		ui.PrintError("DOWNLOAD FAILED", err.Error())
		os.Exit(1)
	}

	if result.Empty() {
		logger.WithField("username", handle).Warn("Run finished with nothing archived")
		os.Exit(1)
	}

	logger.WithField("username", handle).Info("Run completed successfully")
	ui.PrintSuccess("[DOWNLOAD COMPLETED SUCCESSFULLY]")
}

// Make grab the default command when no subcommand is specified
func init() {
	origRunE := rootCmd.RunE
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if origRunE != nil {
			return origRunE(cmd, args)
		}
		if len(args) > 0 && !isKnownCommand(args[0]) {
			// The first argument is not a known command; treat it as a
			// username.
			return grabCmd.RunE(grabCmd, args)
		}
		return cmd.Help()
	}

	rootCmd.Args = cobra.ArbitraryArgs
}

func isKnownCommand(arg string) bool {
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == arg || cmd.HasAlias(arg) {
			return true
		}
	}
	return false
}
