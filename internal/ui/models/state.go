package models

import (
	"github.com/Cyclone1070/fileview/internal/adapter"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
)

// Mode selects what the browser shows.
type Mode int

const (
	ModeListing Mode = iota
	ModeFile
)

// FileWindow is the part of a file held in the viewport.
type FileWindow struct {
	Path   string
	Start  int64
	End    int64
	Length int64 // full file length
}

// State holds the complete browser state.
type State struct {
	Mode Mode

	// Listing
	Dir     string // root-relative, "" for the root
	Entries []adapter.ListEntry
	Cursor  int

	// File
	File     *FileWindow
	Viewport viewport.Model

	Spinner spinner.Model
	Help    help.Model
	Loading bool
	Err     error

	Width  int
	Height int
}
