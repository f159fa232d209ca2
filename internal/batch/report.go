package batch

import (
	"fmt"
	"io"
)

// PrintReport writes the batch summary to w (conventionally stderr, so the
// filtered-text stream on stdout stays clean).
func PrintReport(w io.Writer, results []Result) {
	totalFiles := len(results)
	successful := 0
	totalRemoved := 0
	for _, r := range results {
		if r.Success {
			successful++
		}
		totalRemoved += r.Removed
	}

	fmt.Fprintf(w, "\n=== nomoji Report ===\n")
	fmt.Fprintf(w, "Files processed: %d\n", totalFiles)
	fmt.Fprintf(w, "Successful: %d\n", successful)

	if totalFiles != successful {
		fmt.Fprintf(w, "Failed: %d\n", totalFiles-successful)
	}

	fmt.Fprintf(w, "Total emojis found: %d\n", totalRemoved)

	if len(results) > 0 {
		fmt.Fprintf(w, "\nPer-file results:\n")
		for _, r := range results {
			if r.Err != nil {
				fmt.Fprintf(w, "  %s: %d emojis - ERROR: %v\n", r.File, r.Removed, r.Err)
			} else {
				fmt.Fprintf(w, "  %s: %d emojis removed\n", r.File, r.Removed)
			}
		}
	}
}

// PrintStdinReport writes the single-count summary used in stdin mode.
func PrintStdinReport(w io.Writer, removed int) {
	fmt.Fprintf(w, "\n=== nomoji Report ===\n")
	fmt.Fprintf(w, "Emojis removed from stdin: %d\n", removed)
}
