package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
)

// readDescription returns the description text from the clipboard, stdin
// ("-") or a file.
func readDescription(path string, fromClipboard bool) (string, error) {
	if fromClipboard {
		text, err := clipboard.ReadAll()
		if err != nil {
			return "", fmt.Errorf("read clipboard: %w", err)
		}
		return text, nil
	}

	switch path {
	case "":
		return "", fmt.Errorf("a description file, - for stdin, or --clipboard is required")
	case "-":
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	default:
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read description: %w", err)
		}
		return string(b), nil
	}
}
