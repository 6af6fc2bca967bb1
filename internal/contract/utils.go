package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/oakline/prism/schema"
)

// Display labels for priority tiers.
const (
	HighLabel           = "High"
	MediumLabel         = "Medium"
	LowLabel            = "Low"
	NotRecommendedLabel = "Not recommended"
)

// Color variables for console output.
var (
	highColor   = color.New(color.FgGreen, color.Bold)
	mediumColor = color.New(color.FgYellow)
	lowColor    = color.New(color.FgCyan)
	notRecColor = color.New(color.FgHiBlack)
)

// GetPlainLabel returns a plain text label for a priority tier. This is the
// core mapping used for CSV, JSON, and table printing.
func GetPlainLabel(p schema.Priority) string {
	switch p {
	case schema.HighPriority:
		return HighLabel
	case schema.MediumPriority:
		return MediumLabel
	case schema.LowPriority:
		return LowLabel
	default:
		return NotRecommendedLabel
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, then applies the color.
func GetColorLabel(p schema.Priority) string {
	text := GetPlainLabel(p)

	switch p {
	case schema.HighPriority:
		return highColor.Sprint(text)
	case schema.MediumPriority:
		return mediumColor.Sprint(text)
	case schema.LowPriority:
		return lowColor.Sprint(text)
	default:
		return notRecColor.Sprint(text)
	}
}

// FormatMoney renders a currency amount with thousands separators for the
// report tables.
func FormatMoney(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	whole := int64(amount)
	s := fmt.Sprintf("%d", whole)
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return fmt.Sprintf("%s$%s", sign, string(out))
}

// SelectOutputFile returns the file to write output to. An empty path means
// stdout; callers must not close stdout.
func SelectOutputFile(outputFile string) (*os.File, error) {
	if outputFile == "" {
		return os.Stdout, nil
	}
	file, err := os.Create(outputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %s: %w", outputFile, err)
	}
	return file, nil
}

// GetTerminalWidth returns the override width if set, the detected terminal
// width otherwise, or a conservative default when stdout is not a terminal.
func GetTerminalWidth(override int) int {
	if override > 0 {
		return override
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 100
}

// GetStoreDBFilePath returns the default SQLite database file path used when
// no connection string is configured.
func GetStoreDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".prism.db"
	}
	return filepath.Join(homeDir, ".prism.db")
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "❌ %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning with an associated error.
func LogWarn(msg string, err error) {
	fmt.Fprintf(os.Stderr, "⚠️  %s: %v\n", msg, err)
}
