package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"tracksplit/youtube"
)

var (
	bulkNoSplit  bool
	bulkParallel int
)

var bulkCmd = &cobra.Command{
	Use:   "bulk <ids-file> [output-dir]",
	Short: "Download and split every video listed in a file",
	Long: `Process a file with one YouTube video ID or URL per line. Blank lines and lines
starting with # are ignored. A failing video does not stop the others.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runBulkCommand,
}

func init() {
	bulkCmd.Flags().BoolVar(&bulkNoSplit, "no-split", false, "Download only, do not split into tracks")
	bulkCmd.Flags().IntVarP(&bulkParallel, "parallel", "p", 1, "Videos processed at the same time")
	bulkCmd.Flags().Bool("browser-fallback", false, "Read the description from the watch page when yt-dlp returns none")
	addSplitFlags(bulkCmd)
}

func runBulkCommand(cmd *cobra.Command, args []string) error {
	if err := applyFlags(cmd); err != nil {
		return err
	}
	if bulkParallel < 1 {
		return fmt.Errorf("--parallel must be at least 1")
	}
	if err := requireTools(true, !bulkNoSplit); err != nil {
		return err
	}
	dir, err := outputDir(args, 1)
	if err != nil {
		return err
	}

	ids, err := youtube.ReadVideoIDs(args[0])
	if err != nil {
		return fmt.Errorf("error reading IDs file: %w", err)
	}
	if len(ids) == 0 {
		fmt.Printf("No video IDs found in %s\n", args[0])
		return nil
	}
	fmt.Printf("Processing %d videos\n", len(ids))

	// yt-dlp progress bars from parallel downloads would interleave.
	var progress io.Writer = os.Stderr
	if bulkParallel > 1 {
		progress = nil
	}

	var (
		mu     sync.Mutex
		failed []error
	)
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(bulkParallel)
	for _, id := range ids {
		g.Go(func() error {
			if err := processVideo(ctx, id, dir, bulkNoSplit, progress); err != nil {
				slog.Error("video failed", "video", id, "err", err)
				mu.Lock()
				failed = append(failed, fmt.Errorf("%s: %w", id, err))
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if len(failed) > 0 {
		return fmt.Errorf("%d of %d videos failed: %w", len(failed), len(ids), errors.Join(failed...))
	}
	fmt.Printf("Successfully processed %d videos\n", len(ids))
	return nil
}
