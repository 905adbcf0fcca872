package render

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	labelStyle    = color.New(color.FgWhite, color.Bold)
	valueStyle    = color.New(color.FgCyan)
	unsetStyle    = color.New(color.Faint)
	addressStyle  = color.New(color.FgWhite)
	testnetStyle  = color.New(color.FgYellow)
	selectedStyle = color.New(color.FgGreen, color.Bold)
)

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	// Keep only the innermost message of an error chain
	parts := strings.Split(message, ": ")
	msg := parts[len(parts)-1]

	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}

	return color.New(color.FgRed).Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// title upper-cases the first letter of each word
func title(s string) string {
	return cases.Title(language.English).String(s)
}

// orUnset renders empty values as "(not set)"
func orUnset(s string) string {
	if s == "" {
		return unsetStyle.Sprint("(not set)")
	}
	return valueStyle.Sprint(s)
}

// getRelativePath returns the relative path from current directory
func getRelativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	relPath, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}

	return relPath
}

// newPlainTable returns a borderless left-aligned table writer
func newPlainTable(columns int) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateHeader = false
	t.Style().Options.SeparateColumns = false
	t.Style().Box = table.BoxStyle{
		PaddingRight: "   ",
	}

	colConfigs := make([]table.ColumnConfig, columns)
	for i := range colConfigs {
		colConfigs[i] = table.ColumnConfig{
			Number: i + 1,
			Align:  text.AlignLeft,
		}
	}
	t.SetColumnConfigs(colConfigs)

	return t
}
