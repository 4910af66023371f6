package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Coverage label constants.
const (
	FullValue     = "Full"     // Every tracked issue has a test
	HighValue     = "High"     // Coverage at or above 80%
	ModerateValue = "Moderate" // Coverage at or above 50%
	LowValue      = "Low"      // Everything below
)

// Color variables for console output.
var (
	FullColor     = color.New(color.FgGreen, color.Bold)
	HighColor     = color.New(color.FgGreen)
	ModerateColor = color.New(color.FgYellow)
	LowColor      = color.New(color.FgRed, color.Bold)
)

// GetPlainLabel returns a plain text label for the given coverage
// percentage. This is the core logic used for file and console output.
func GetPlainLabel(pct float64) string {
	switch {
	case pct >= 100:
		return FullValue
	case pct >= 80:
		return HighValue
	case pct >= 50:
		return ModerateValue
	default:
		return LowValue
	}
}

// GetColorLabel returns a colored coverage label for console output.
// It uses GetPlainLabel to determine the string, then applies the color.
func GetColorLabel(pct float64) string {
	text := GetPlainLabel(pct)

	switch text {
	case FullValue:
		return FullColor.Sprint(text)
	case HighValue:
		return HighColor.Sprint(text)
	case ModerateValue:
		return ModerateColor.Sprint(text)
	default: // "Low"
		return LowColor.Sprint(text)
	}
}

// ResolveOutputPath places a bare filename inside dir; a name that already
// contains a path separator is used as given.
func ResolveOutputPath(name, dir string) string {
	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, os.PathSeparator) {
		return name
	}
	return filepath.Join(dir, name)
}

// EnsureParentDir creates the directory that will hold path, if absent.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return nil
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for run history.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".tracematrix_history.db"
	}
	return filepath.Join(homeDir, ".tracematrix_history.db")
}

// TruncateCell truncates a table cell to a maximum width with an ellipsis
// suffix. Requires maxWidth > 3 so there is room for both the ellipsis and
// at least one character of content.
func TruncateCell(s string, maxWidth int) string {
	runes := []rune(s)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return s
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
