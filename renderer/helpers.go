package renderer

import "strings"

// tableLines renders a markdown table as ready-to-template lines:
// a header row, a separator, then one line per data row.
func tableLines(header []string, rows [][]string) []string {
	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, "| "+strings.Join(header, " | ")+" |")

	separator := make([]string, len(header))
	for i := range separator {
		separator[i] = "---"
	}
	lines = append(lines, "| "+strings.Join(separator, " | ")+" |")

	for _, row := range rows {
		lines = append(lines, "| "+strings.Join(row, " | ")+" |")
	}
	return lines
}
