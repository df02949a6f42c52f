package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"tracksplit/config"
)

var (
	configPath string
	verbose    bool

	// cfg is loaded before any subcommand runs.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "tracksplit",
	Short: "Split long recordings into tracks using the timestamps in their description",
	Long: `Tracksplit downloads audio with yt-dlp, reads the track list out of the video
description ("0:00 Intro" or "Intro - 0:00" lines) and cuts the recording into one
MP3 per track with ffmpeg. Local files can be split the same way.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $HOME/.tracksplit.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(bulkCmd)
	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(timestampsCmd)
}

func loadConfig(cmd *cobra.Command, args []string) error {
	path, required := configPath, configPath != ""
	if path == "" {
		path = config.DefaultPath()
	}
	c, err := config.Load(path, required)
	if err != nil {
		return err
	}
	if verbose {
		c.LogLevel = "debug"
	}
	if err := config.Validate(c); err != nil {
		return err
	}

	level, _ := config.ParseLogLevel(c.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	cfg = c
	return nil
}

// applyFlags copies explicitly set command flags over the loaded config.
func applyFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if flags.Changed("bitrate") {
		cfg.Bitrate, _ = flags.GetString("bitrate")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("layout") {
		cfg.Layout, _ = flags.GetString("layout")
	}
	if flags.Changed("browser-fallback") {
		cfg.BrowserFallback, _ = flags.GetBool("browser-fallback")
	}
	if flags.Changed("output") {
		cfg.OutputDir, _ = flags.GetString("output")
	}
	return config.Validate(cfg)
}

// addSplitFlags registers the flags shared by every command that cuts tracks.
func addSplitFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("bitrate", "b", "320k", "Target MP3 bitrate")
	cmd.Flags().IntP("workers", "w", 4, "Tracks encoded in parallel")
	cmd.Flags().String("layout", "both", "Timestamp layouts to recognise: both, forward or reverse")
}
