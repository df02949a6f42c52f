package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var noSplit bool

var downloadCmd = &cobra.Command{
	Use:   "download <url-or-id> [output-dir]",
	Short: "Download YouTube audio and split it by the description timestamps",
	Long: `Download the best audio stream of a YouTube video as MP3 and, unless --no-split
is given, cut it into one file per track listed in the video description.
Tracks are written to <output-dir>/<video title>/NN - <track>.mp3.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runDownloadCommand,
}

func init() {
	downloadCmd.Flags().BoolVar(&noSplit, "no-split", false, "Download only, do not split into tracks")
	downloadCmd.Flags().Bool("browser-fallback", false, "Read the description from the watch page when yt-dlp returns none")
	addSplitFlags(downloadCmd)
}

func runDownloadCommand(cmd *cobra.Command, args []string) error {
	if err := applyFlags(cmd); err != nil {
		return err
	}
	if err := requireTools(true, !noSplit); err != nil {
		return err
	}
	dir, err := outputDir(args, 1)
	if err != nil {
		return err
	}
	return processVideo(cmd.Context(), args[0], dir, noSplit, os.Stderr)
}
