package views

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/fileview/internal/adapter"
	"github.com/Cyclone1070/fileview/internal/ui/models"
	"github.com/charmbracelet/lipgloss"
)

// chromeLines is the number of lines RenderRoot draws around the body.
const chromeLines = 4

// BodyHeight returns the lines left for the listing or file viewport.
func BodyHeight(height int) int {
	return max(height-chromeLines, 1)
}

// OrderEntries returns directories first, then files, each in listed order.
func OrderEntries(entries []adapter.ListEntry) []adapter.ListEntry {
	ordered := make([]adapter.ListEntry, 0, len(entries))
	for _, pass := range []string{"d", "f"} {
		for _, e := range entries {
			if e.Class == pass {
				ordered = append(ordered, e)
			}
		}
	}
	return ordered
}

// RenderRoot renders the browser: path header, body, status line and key help.
func RenderRoot(s models.State, helpView string) string {
	var title, body string
	switch s.Mode {
	case models.ModeFile:
		if s.File != nil {
			title = "/" + s.File.Path
		}
		body = s.Viewport.View()
	default:
		title = "/" + s.Dir
		body = RenderEntryList(s.Entries, s.Cursor, BodyHeight(s.Height))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		PathStyle.Render(title),
		body,
		RenderStatus(s),
		MutedStyle.Render(helpView),
	)
}

// RenderEntryList renders the entries that fit in height lines, scrolled so
// the cursor row is visible.
func RenderEntryList(entries []adapter.ListEntry, cursor, height int) string {
	if len(entries) == 0 {
		return MutedStyle.Render("(empty)")
	}

	first := max(cursor-height+1, 0)
	last := min(first+height, len(entries))

	lines := make([]string, 0, last-first)
	for i := first; i < last; i++ {
		e := entries[i]
		name, size := e.Name, FormatSize(e.Size)
		style := FileStyle
		if e.Class == "d" {
			name += "/"
			size = "-"
			style = DirectoryStyle
		}

		row := fmt.Sprintf("%-40s %10s  %s", name, size, e.Date)
		if i == cursor {
			lines = append(lines, SelectedStyle.Render("> "+row))
			continue
		}
		lines = append(lines, "  "+style.Render(row))
	}
	return strings.Join(lines, "\n")
}

// RenderStatus renders the status line: a spinner while loading, the last
// error, or the byte range of the open file.
func RenderStatus(s models.State) string {
	switch {
	case s.Loading:
		return s.Spinner.View() + " loading"
	case s.Err != nil:
		return ErrorStyle.Render(s.Err.Error())
	case s.Mode == models.ModeFile && s.File != nil:
		status := fmt.Sprintf("bytes %d-%d of %d", s.File.Start, s.File.End, s.File.Length)
		if s.File.Start > 0 {
			status += " (scroll up for earlier content)"
		}
		return MutedStyle.Render(status)
	default:
		return MutedStyle.Render(fmt.Sprintf("%d entries", len(s.Entries)))
	}
}
