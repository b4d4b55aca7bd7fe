package views

import (
	"fmt"

	"github.com/Cyclone1070/fileview/internal/adapter"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// RenderListing renders a directory listing as a table, directories first in
// the order they were listed, then files.
func RenderListing(payload *adapter.ListPayload) string {
	if !payload.Status {
		return ErrorStyle.Render(payload.Info)
	}

	dir := "/"
	if payload.FilteredPath != nil && *payload.FilteredPath != "" {
		dir = "/" + *payload.FilteredPath
	}

	if len(payload.Entries) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, PathStyle.Render(dir), MutedStyle.Render("(empty)"))
	}

	rows := make([][]string, 0, len(payload.Entries))
	kinds := make([]string, 0, len(payload.Entries))
	for _, e := range OrderEntries(payload.Entries) {
		name := e.Name
		size := FormatSize(e.Size)
		if e.Class == "d" {
			name += "/"
			size = "-"
		}
		rows = append(rows, []string{name, size, e.Date})
		kinds = append(kinds, e.Class)
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("NAME", "SIZE", "MODIFIED (UTC)").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().PaddingRight(2)
			switch {
			case row == table.HeaderRow:
				return style.Inherit(MutedStyle).Bold(true)
			case col == 0 && kinds[row] == "d":
				return style.Inherit(DirectoryStyle)
			case col == 0:
				return style.Inherit(FileStyle)
			case col == 1:
				return style.Align(lipgloss.Right)
			default:
				return style.Inherit(MutedStyle)
			}
		})

	return lipgloss.JoinVertical(lipgloss.Left, PathStyle.Render(dir), t.String())
}

// FormatSize renders a byte count with a binary unit.
func FormatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
