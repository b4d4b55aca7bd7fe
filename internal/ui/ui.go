package ui

import (
	"context"

	"github.com/Cyclone1070/fileview/internal/adapter"
	"github.com/Cyclone1070/fileview/internal/ui/services"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Browser is the part of the adapter service the terminal browser uses.
type Browser interface {
	ListDirectory(ctx context.Context, args adapter.ListArgs) (*adapter.ListPayload, error)
	ReadWindow(ctx context.Context, args adapter.ReadArgs) (*adapter.ReadPayload, error)
}

// SpinnerFactory creates a new spinner
type SpinnerFactory func() spinner.Model

// DefaultSpinner is the spinner shown while a listing or window loads.
func DefaultSpinner() spinner.Model {
	return spinner.New(spinner.WithSpinner(spinner.Dot))
}

// Options configure a browser session.
type Options struct {
	// StartPath is the root-relative directory or file opened first.
	StartPath string
	// Window is how many bytes are loaded per step when scrolling back
	// through a large file.
	Window int64
}

// UI runs the terminal browser with Bubble Tea.
type UI struct {
	program *tea.Program
}

// NewUI creates the browser program. ctx bounds every service call it makes.
func NewUI(
	ctx context.Context,
	browser Browser,
	renderer services.MarkdownRenderer,
	spinnerFactory SpinnerFactory,
	opts Options,
	programOpts ...tea.ProgramOption,
) *UI {
	model := newBrowseModel(ctx, browser, renderer, spinnerFactory, opts)
	programOpts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, programOpts...)
	return &UI{program: tea.NewProgram(model, programOpts...)}
}

// Start runs the program until the user quits or ctx is cancelled.
func (u *UI) Start() error {
	_, err := u.program.Run()
	return err
}
