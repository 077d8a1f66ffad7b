// ============================================================================
// lambda - Lambda Calculus Front End
// ============================================================================
//
// Package:     repl
// Description: Bubbletea model for the interactive REPL
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package repl

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/lambda/pkg/core/version"
)

// MaxInputHistory bounds the inputs reachable with Up/Down
const MaxInputHistory = 100

// Model is the Bubbletea model of the REPL
type Model struct {
	// State
	width    int
	height   int
	ready    bool
	busy     bool
	quitting bool

	// Components
	input    textinput.Model
	viewport viewport.Model

	// Session state
	ctx        context.Context
	session    *Session
	options    Options
	transcript []transcriptEntry

	// Input history
	inputHistory []string
	historyIndex int    // -1 while editing a new line
	currentInput string // line being edited before navigation started
}

// NewModel creates the REPL model for session
func NewModel(ctx context.Context, session *Session, prompt string) Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = `\x. x   (:help for commands)`
	ti.CharLimit = session.frontend.MaxInputLength()
	ti.Focus()

	return Model{
		input:        ti,
		ctx:          ctx,
		session:      session,
		options:      session.Options(),
		historyIndex: -1,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.loadHistory,
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 2 // Logo + subtitle
		footerHeight := 6 // Input box + status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight - 2
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.input.Width = msg.Width - 8
		m.updateViewportContent()

	case historyLoadedMsg:
		m.inputHistory = append(msg.inputs, m.inputHistory...)
		m.trimHistory()

	case evalResultMsg:
		m.busy = false
		m.options = msg.options
		if msg.entry.Response.Kind == ResponseQuit {
			m.quitting = true
			return m, tea.Quit
		}
		m.transcript = append(m.transcript, msg.entry)
		m.updateViewportContent()
		m.viewport.GotoBottom()
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "ctrl+d":
		m.quitting = true
		return m, tea.Quit

	case "ctrl+l":
		m.transcript = nil
		m.updateViewportContent()
		return m, nil
	}

	if m.busy {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEnter:
		line := strings.TrimSpace(m.input.Value())
		if line == "" {
			return m, nil
		}
		m.pushHistory(line)
		m.input.Reset()
		m.busy = true
		return m, m.eval(line)

	case tea.KeyUp:
		if len(m.inputHistory) > 0 {
			if m.historyIndex == -1 {
				m.currentInput = m.input.Value()
				m.historyIndex = len(m.inputHistory) - 1
			} else if m.historyIndex > 0 {
				m.historyIndex--
			}
			m.input.SetValue(m.inputHistory[m.historyIndex])
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		if m.historyIndex != -1 {
			if m.historyIndex < len(m.inputHistory)-1 {
				m.historyIndex++
				m.input.SetValue(m.inputHistory[m.historyIndex])
			} else {
				m.historyIndex = -1
				m.input.SetValue(m.currentInput)
			}
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Starting lambda REPL..."
	}

	var b strings.Builder

	b.WriteString(LogoStyle.Render(Logo) + "  " + SubHeaderStyle.Render("lambda calculus front end v"+version.Version))
	b.WriteString("\n\n")

	b.WriteString(TranscriptPanelStyle.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")

	b.WriteString(InputStyle.Width(m.width - 2).Render(m.input.View()))
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderStatusBar shows the session and the active display options
func (m Model) renderStatusBar() string {
	var enabled []string
	for _, name := range sortedOptionNames() {
		if *optionNames[name](&m.options) {
			enabled = append(enabled, name)
		}
	}
	if len(enabled) == 0 {
		enabled = append(enabled, "none")
	}

	left := "Session " + shortID(m.session.ID())
	right := "Show: " + strings.Join(enabled, ", ")
	if m.busy {
		right = "parsing... " + right
	}

	space := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 6
	if space < 2 {
		space = 2
	}
	return StatusBarStyle.Width(m.width - 2).Render(left + strings.Repeat(" ", space) + StatusOKStyle.Render(right))
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("Enter", "parse"),
		RenderKeyHint("↑/↓", "history"),
		RenderKeyHint("PgUp/PgDn", "scroll"),
		RenderKeyHint("Ctrl+L", "clear"),
		RenderKeyHint("Ctrl+C", "quit"),
	}
	return HelpDescStyle.Render(strings.Join(items, "  "))
}

// updateViewportContent renders the transcript into the viewport
func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}

	var content strings.Builder
	for _, e := range m.transcript {
		content.WriteString(InputEchoStyle.Render(m.input.Prompt+e.Input))
		content.WriteString("  " + HelpDescStyle.Render(e.Timestamp.Format("15:04:05")))
		content.WriteString("\n")
		if e.Response.Output != "" {
			content.WriteString(styleFor(e.Response.Kind).Render(e.Response.Output))
			content.WriteString("\n")
		}
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// eval evaluates line outside the update loop
func (m Model) eval(line string) tea.Cmd {
	session, ctx := m.session, m.ctx
	return func() tea.Msg {
		start := time.Now()
		resp := session.Eval(ctx, line)
		return evalResultMsg{
			entry: transcriptEntry{
				Input:     line,
				Response:  resp,
				Timestamp: start,
				Duration:  time.Since(start),
			},
			options: session.Options(),
		}
	}
}

func (m Model) loadHistory() tea.Msg {
	return historyLoadedMsg{inputs: m.session.RecentInputs(m.ctx, MaxInputHistory)}
}

// pushHistory appends line unless it repeats the last entry
func (m *Model) pushHistory(line string) {
	if len(m.inputHistory) == 0 || m.inputHistory[len(m.inputHistory)-1] != line {
		m.inputHistory = append(m.inputHistory, line)
		m.trimHistory()
	}
	m.historyIndex = -1
	m.currentInput = ""
}

func (m *Model) trimHistory() {
	if len(m.inputHistory) > MaxInputHistory {
		m.inputHistory = m.inputHistory[len(m.inputHistory)-MaxInputHistory:]
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Run starts the REPL TUI and blocks until the user quits
func Run(ctx context.Context, session *Session, prompt string) error {
	p := tea.NewProgram(NewModel(ctx, session, prompt), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
