package views

import (
	"path"
	"strings"

	"github.com/Cyclone1070/fileview/internal/adapter"
	"github.com/Cyclone1070/fileview/internal/ui/services"
)

// searchSectionSep opens every per-file section of a directory search.
const searchSectionSep = "\n\n\n\n"

// RenderSearch styles the per-file headers of search output. Output of a
// single-file search has no headers and is returned unchanged.
func RenderSearch(payload *adapter.SearchPayload) string {
	if payload.Content == "" {
		return MutedStyle.Render("no matches")
	}
	if !strings.HasPrefix(payload.Content, searchSectionSep) {
		return payload.Content
	}

	var b strings.Builder
	rest := payload.Content[len(searchSectionSep):]
	for first := true; rest != ""; first = false {
		header, tail, _ := strings.Cut(rest, "\n\n")

		// Bodies end with a newline, so the next section starts after "\n"+sep.
		body := tail
		rest = ""
		if i := strings.Index(tail, "\n"+searchSectionSep); i >= 0 {
			body = tail[:i+1]
			rest = tail[i+1+len(searchSectionSep):]
		}

		if !first {
			b.WriteString("\n")
		}
		b.WriteString(HeaderStyle.Render(header))
		b.WriteString("\n")
		b.WriteString(body)
	}
	return b.String()
}

// RenderFile returns a read window, rendering markdown files when asked.
// A window that does not start at byte zero is never rendered as markdown.
func RenderFile(payload *adapter.ReadPayload, markdown bool, width int, renderer services.MarkdownRenderer) string {
	if markdown && payload.Start == 0 && isMarkdown(payload.FilePath) {
		if out, err := services.RenderMarkdown(payload.Content, width, renderer); err == nil {
			return out
		}
	}
	return payload.Content
}

func isMarkdown(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
