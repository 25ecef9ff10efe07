package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// quietMode suppresses non-essential output (info, dim, warning, banner).
// Success and error messages always print.
var quietMode bool

// SetQuietMode toggles suppression of non-essential output.
func SetQuietMode(quiet bool) {
	quietMode = quiet
}

// IsQuiet reports whether quiet mode is active.
func IsQuiet() bool {
	return quietMode
}

// Println prints an empty line unless quiet mode is active.
func Println() {
	if quietMode {
		return
	}
	fmt.Println()
}

// PrintSuccess prints a success message.
func PrintSuccess(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(SuccessStyle.Render("✓ " + msg))
}

// PrintError prints an error message. Errors share the stdout stream with
// all other output.
func PrintError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(ErrorStyle.Render("✗ " + msg))
}

// PrintWarning prints a warning message. Warnings are suppressed in
// quiet mode so machine-readable output stays parseable.
func PrintWarning(format string, args ...interface{}) {
	if quietMode {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Println(WarningStyle.Render("⚠ " + msg))
}

// PrintInfo prints an informational message.
func PrintInfo(format string, args ...interface{}) {
	if quietMode {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Println(InfoStyle.Render(msg))
}

// PrintDim prints a dimmed message.
func PrintDim(format string, args ...interface{}) {
	if quietMode {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Println(DimStyle.Render(msg))
}

// Table renders rows of aligned columns with a dim separator under the
// header row.
type Table struct {
	Headers []string
	Rows    [][]string
}

// AddRow appends one data row.
func (t *Table) AddRow(values ...string) {
	t.Rows = append(t.Rows, values)
}

// Print renders the table to stdout.
func (t *Table) Print() {
	widths := t.columnWidths()
	const colGap = "  "

	var headerCells []string
	for i, header := range t.Headers {
		headerCells = append(headerCells, TableHeaderStyle.Render(padRight(header, widths[i])))
	}
	fmt.Println(strings.Join(headerCells, colGap))

	total := len(colGap) * (len(widths) - 1)
	for _, w := range widths {
		total += w
	}
	fmt.Println(DimStyle.Render(strings.Repeat("─", total)))

	for _, row := range t.Rows {
		var cells []string
		for i := range t.Headers {
			val := ""
			if i < len(row) {
				val = row[i]
			}
			cells = append(cells, TableCellStyle.Render(padRight(val, widths[i])))
		}
		fmt.Println(strings.Join(cells, colGap))
	}
}

func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range t.Rows {
		for i, val := range row {
			if i >= len(widths) {
				break
			}
			if n := utf8.RuneCountInString(val); n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}

func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
