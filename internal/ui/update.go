package ui

import (
	"context"
	"path"

	"github.com/Cyclone1070/fileview/internal/adapter"
	"github.com/Cyclone1070/fileview/internal/ui/models"
	"github.com/Cyclone1070/fileview/internal/ui/services"
	"github.com/Cyclone1070/fileview/internal/ui/views"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// BubbleTeaModel implements tea.Model
type BubbleTeaModel struct {
	state models.State

	// Dependencies
	ctx      context.Context
	browser  Browser
	renderer services.MarkdownRenderer

	start  string
	window int64
	keys   keyMap
}

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Open    key.Binding
	Back    key.Binding
	Earlier key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:    key.NewBinding(key.WithKeys("enter", "l", "right"), key.WithHelp("enter", "open")),
		Back:    key.NewBinding(key.WithKeys("backspace", "h", "left", "esc"), key.WithHelp("esc", "back")),
		Earlier: key.NewBinding(key.WithKeys("up", "k", "pgup"), key.WithHelp("↑ at top", "load earlier")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// bindings adapts a binding list to help.KeyMap.
type bindings []key.Binding

func (b bindings) ShortHelp() []key.Binding  { return b }
func (b bindings) FullHelp() [][]key.Binding { return [][]key.Binding{b} }

func (m BubbleTeaModel) helpKeys() help.KeyMap {
	if m.state.Mode == models.ModeFile {
		return bindings{m.keys.Earlier, m.keys.Back, m.keys.Quit}
	}
	return bindings{m.keys.Up, m.keys.Down, m.keys.Open, m.keys.Back, m.keys.Quit}
}

// newBrowseModel creates the browser model
func newBrowseModel(
	ctx context.Context,
	browser Browser,
	renderer services.MarkdownRenderer,
	spinnerFactory SpinnerFactory,
	opts Options,
) BubbleTeaModel {
	vp := viewport.New(services.DefaultWidth, 20)

	return BubbleTeaModel{
		state: models.State{
			Mode:     models.ModeListing,
			Viewport: vp,
			Spinner:  spinnerFactory(),
			Help:     help.New(),
			Loading:  true,
		},
		ctx:      ctx,
		browser:  browser,
		renderer: renderer,
		start:    opts.StartPath,
		window:   opts.Window,
		keys:     defaultKeyMap(),
	}
}

// Internal messages
type listingMsg struct {
	payload *adapter.ListPayload
	focus   string // entry to place the cursor on
}

type windowMsg struct {
	payload *adapter.ReadPayload
	earlier bool // payload extends the open window backwards
}

type errMsg struct {
	err error
}

// Init loads the start path
func (m BubbleTeaModel) Init() tea.Cmd {
	return tea.Batch(
		m.state.Spinner.Tick,
		openPath(m.ctx, m.browser, m.start, ""),
	)
}

// View renders the UI
func (m BubbleTeaModel) View() string {
	return views.RenderRoot(m.state, m.state.Help.View(m.helpKeys()))
}

// Update handles messages
func (m BubbleTeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.state.Help.Width = msg.Width
		m.state.Viewport.Width = msg.Width
		m.state.Viewport.Height = views.BodyHeight(msg.Height)
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		return m, cmd

	case listingMsg:
		m.state.Loading = false
		m.state.Err = nil
		m.state.Mode = models.ModeListing
		m.state.File = nil
		m.state.Dir = *msg.payload.FilteredPath
		m.state.Entries = views.OrderEntries(msg.payload.Entries)
		m.state.Cursor = 0
		for i, e := range m.state.Entries {
			if e.Name == msg.focus {
				m.state.Cursor = i
				break
			}
		}
		return m, nil

	case windowMsg:
		m.state.Loading = false
		m.state.Err = nil
		m.showWindow(msg.payload, msg.earlier)
		return m, nil

	case errMsg:
		m.state.Loading = false
		m.state.Err = msg.err
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input
func (m BubbleTeaModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.state.Loading {
		return m, nil
	}

	if m.state.Mode == models.ModeFile {
		return m.handleFileKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.state.Cursor > 0 {
			m.state.Cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.state.Cursor < len(m.state.Entries)-1 {
			m.state.Cursor++
		}
	case key.Matches(msg, m.keys.Open):
		if m.state.Cursor < len(m.state.Entries) {
			target := path.Join(m.state.Dir, m.state.Entries[m.state.Cursor].Name)
			return m.load(openPath(m.ctx, m.browser, target, ""))
		}
	case key.Matches(msg, m.keys.Back):
		if m.state.Dir != "" {
			return m.load(openPath(m.ctx, m.browser, parentDir(m.state.Dir), path.Base(m.state.Dir)))
		}
	}
	return m, nil
}

func (m BubbleTeaModel) handleFileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		// A file opened directly has no listing to return to.
		if m.state.Entries == nil {
			return m.load(openPath(m.ctx, m.browser, parentDir(m.state.File.Path), path.Base(m.state.File.Path)))
		}
		m.state.Mode = models.ModeListing
		m.state.File = nil
		m.state.Err = nil
		return m, nil

	case key.Matches(msg, m.keys.Earlier) && m.state.Viewport.AtTop() && m.state.File.Start > 0:
		return m.load(readEarlier(m.ctx, m.browser, m.state.File, m.window))
	}

	var cmd tea.Cmd
	m.state.Viewport, cmd = m.state.Viewport.Update(msg)
	return m, cmd
}

// load marks the model busy while cmd runs.
func (m BubbleTeaModel) load(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.state.Loading = true
	m.state.Err = nil
	return m, tea.Batch(cmd, m.state.Spinner.Tick)
}

// showWindow puts a read window into the viewport. A window that extends the
// open one backwards keeps the lines on screen where they were.
func (m *BubbleTeaModel) showWindow(payload *adapter.ReadPayload, earlier bool) {
	prevLines := m.state.Viewport.TotalLineCount()
	prevOffset := m.state.Viewport.YOffset

	m.state.Mode = models.ModeFile
	m.state.File = &models.FileWindow{
		Path:   payload.FilePath,
		Start:  payload.Start,
		End:    payload.End,
		Length: payload.Seek,
	}
	m.state.Viewport.SetContent(views.RenderFile(payload, true, m.state.Viewport.Width, m.renderer))

	switch {
	case earlier:
		m.state.Viewport.SetYOffset(prevOffset + m.state.Viewport.TotalLineCount() - prevLines)
	case payload.Start == 0:
		m.state.Viewport.GotoTop()
	default:
		m.state.Viewport.GotoBottom()
	}
}

// openPath lists p, or reads it when it is not a directory.
func openPath(ctx context.Context, browser Browser, p, focus string) tea.Cmd {
	return func() tea.Msg {
		listing, err := browser.ListDirectory(ctx, adapter.ListArgs{Path: p})
		if err != nil {
			return errMsg{err: err}
		}
		if listing.Status {
			return listingMsg{payload: listing, focus: focus}
		}
		return readWindow(ctx, browser, adapter.ReadArgs{Path: p}, false)
	}
}

// readEarlier reads the window that ends where the open one starts. The read
// runs to EOF, so the new window covers the open one as well.
func readEarlier(ctx context.Context, browser Browser, open *models.FileWindow, window int64) tea.Cmd {
	args := adapter.ReadArgs{Path: open.Path, Seek: open.Start - window}
	if args.Seek <= 0 {
		args.Seek = 0
		args.FromStart = true
	}
	return func() tea.Msg {
		return readWindow(ctx, browser, args, true)
	}
}

func readWindow(ctx context.Context, browser Browser, args adapter.ReadArgs, earlier bool) tea.Msg {
	payload, err := browser.ReadWindow(ctx, args)
	if err != nil {
		return errMsg{err: err}
	}
	return windowMsg{payload: payload, earlier: earlier}
}

func parentDir(p string) string {
	parent := path.Dir(p)
	if parent == "." || parent == "/" {
		return ""
	}
	return parent
}
