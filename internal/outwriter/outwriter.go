// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/qafoundry/tracematrix/internal/contract"
	"golang.org/x/term"
)

// LogReportHeader prints a concise, 2-line header for each run.
func LogReportHeader(cfg *contract.Config) {
	trackerName := filepath.Base(cfg.TrackerPath)

	if cfg.UseEmojis {
		fmt.Printf("🔎 Tracker: %s (Format: %s)\n", trackerName, cfg.Output)
		fmt.Printf("🧪 Test exports: %d file(s)\n", len(cfg.TestPaths))
	} else {
		fmt.Printf("Tracker: %s (Format: %s)\n", trackerName, cfg.Output)
		fmt.Printf("Test exports: %d file(s)\n", len(cfg.TestPaths))
	}
}

// getMaxTableCellWidth calculates the maximum width for free-text cells in
// the matrix preview table based on terminal width.
func getMaxTableCellWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the key, status and count columns with borders and
	// padding, then split the rest between the two free-text columns.
	baseWidth := 35
	available := (termWidth - baseWidth) / 2
	if available < 15 {
		return 15
	}
	if available > 60 {
		return 60
	}
	return available
}
