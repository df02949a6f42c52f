package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"tracksplit/audio"
)

var splitFromClipboard bool

var splitCmd = &cobra.Command{
	Use:   "split <audio-file> [description-file|-]",
	Short: "Split a local audio file using a description's timestamps",
	Long: `Split an audio file already on disk. The description is read from a file, from
stdin when the argument is -, or from the clipboard with --clipboard. Tracks are
written next to the audio file in a directory named after it unless --output is set.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSplitCommand,
}

func init() {
	splitCmd.Flags().BoolVar(&splitFromClipboard, "clipboard", false, "Read the description from the clipboard")
	splitCmd.Flags().StringP("output", "o", "", "Directory for the tracks")
	addSplitFlags(splitCmd)
}

func runSplitCommand(cmd *cobra.Command, args []string) error {
	if err := applyFlags(cmd); err != nil {
		return err
	}

	if err := requireTools(false, true); err != nil {
		return err
	}

	audioPath := args[0]
	descPath := ""
	if len(args) > 1 {
		descPath = args[1]
	}
	description, err := readDescription(descPath, splitFromClipboard)
	if err != nil {
		return err
	}

	src := audio.LocalSource{
		AudioPath:   audioPath,
		Description: description,
		Prober:      audio.Prober{Bin: cfg.FFprobe},
	}
	media, err := src.Fetch(cmd.Context())
	if err != nil {
		return fmt.Errorf("error reading %s: %w", audioPath, err)
	}

	tracksDir := cfg.OutputDir
	if !cmd.Flags().Changed("output") || tracksDir == "" {
		base := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))
		tracksDir = filepath.Join(filepath.Dir(audioPath), audio.SanitizeFilename(filepath.Base(base)))
	}

	_, err = splitMedia(cmd.Context(), media, tracksDir)
	return err
}
