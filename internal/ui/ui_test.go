package ui

import (
	"context"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/Cyclone1070/fileview/internal/adapter"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock dependencies
type MockMarkdownRenderer struct {
	RenderFunc func(string, int) (string, error)
}

func (m *MockMarkdownRenderer) Render(content string, width int) (string, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(content, width)
	}
	return content, nil
}

func mockSpinnerFactory() spinner.Model {
	return spinner.New()
}

type mockBrowser struct {
	lists map[string]*adapter.ListPayload
	files map[string]*adapter.ReadPayload

	listCalls []adapter.ListArgs
	readCalls []adapter.ReadArgs
	err       error
}

func newMockBrowser() *mockBrowser {
	return &mockBrowser{
		lists: make(map[string]*adapter.ListPayload),
		files: make(map[string]*adapter.ReadPayload),
	}
}

func (b *mockBrowser) ListDirectory(ctx context.Context, args adapter.ListArgs) (*adapter.ListPayload, error) {
	b.listCalls = append(b.listCalls, args)
	if b.err != nil {
		return nil, b.err
	}
	if payload, ok := b.lists[args.Path]; ok {
		return payload, nil
	}
	return &adapter.ListPayload{Status: false, Info: adapter.InfoInvalidDirectory, Entries: []adapter.ListEntry{}}, nil
}

func (b *mockBrowser) ReadWindow(ctx context.Context, args adapter.ReadArgs) (*adapter.ReadPayload, error) {
	b.readCalls = append(b.readCalls, args)
	if payload, ok := b.files[args.Path]; ok {
		return payload, nil
	}
	return nil, os.ErrNotExist
}

func listing(dir string, entries ...adapter.ListEntry) *adapter.ListPayload {
	return &adapter.ListPayload{Status: true, Entries: entries, FilteredPath: &dir}
}

func TestUI_StartQuits(t *testing.T) {
	browser := newMockBrowser()
	browser.lists[""] = listing("", adapter.ListEntry{Class: "f", Name: "a.log"})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ui := NewUI(ctx, browser, &MockMarkdownRenderer{}, mockSpinnerFactory, Options{Window: 1024},
		tea.WithInput(strings.NewReader("q")),
		tea.WithOutput(io.Discard),
	)

	require.NoError(t, ui.Start())
}

func TestDefaultSpinner(t *testing.T) {
	assert.NotEmpty(t, DefaultSpinner().View())
}
