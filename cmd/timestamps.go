package cmd

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"tracksplit/segments"
	"tracksplit/timestamps"
)

var (
	tsFromClipboard bool
	tsCopy          bool
	tsDuration      string
)

var timestampsCmd = &cobra.Command{
	Use:   "timestamps [description-file|-]",
	Short: "Print the track list found in a description",
	Long: `Extract the track list from a description without downloading or cutting
anything. With --duration the resulting segments are printed as well, which is
a quick way to check a description before splitting.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTimestampsCommand,
}

func init() {
	timestampsCmd.Flags().BoolVar(&tsFromClipboard, "clipboard", false, "Read the description from the clipboard")
	timestampsCmd.Flags().BoolVar(&tsCopy, "copy", false, "Copy the track list to the clipboard")
	timestampsCmd.Flags().StringVarP(&tsDuration, "duration", "d", "", "Total length of the recording (e.g. 1:02:03 or 3723s)")
	timestampsCmd.Flags().String("layout", "both", "Timestamp layouts to recognise: both, forward or reverse")
}

func runTimestampsCommand(cmd *cobra.Command, args []string) error {
	if err := applyFlags(cmd); err != nil {
		return err
	}
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	description, err := readDescription(path, tsFromClipboard)
	if err != nil {
		return err
	}

	layouts, err := timestamps.ParseLayout(cfg.Layout)
	if err != nil {
		return err
	}
	tracks := timestamps.ExtractLayouts(description, layouts)
	if len(tracks) == 0 {
		fmt.Println("No timestamps found.")
		return nil
	}
	fmt.Print(tracks.String())

	if tsCopy {
		if err := clipboard.WriteAll(tracks.String()); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Println("Track list copied to clipboard.")
	}

	if tsDuration == "" {
		return nil
	}
	total, err := parseTotal(tsDuration)
	if err != nil {
		return err
	}
	segs, err := segments.Split(tracks, total)
	if err != nil {
		return err
	}
	fmt.Println()
	for _, seg := range segs {
		fmt.Printf("%02d. [%s - %s) %s\n", seg.Index, timestamps.Format(seg.Start), timestamps.Format(seg.End), seg.Label)
	}
	return nil
}

// parseTotal accepts a timestamp (1:02:03) or a Go duration (3723s).
func parseTotal(s string) (time.Duration, error) {
	if d, err := timestamps.Parse(s); err == nil {
		return d, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid --duration %q: want H:MM:SS, M:SS or a duration like 200s", s)
	}
	return d, nil
}
