package bubbletea

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/gemchat"
)

var _ tea.Model = Model{}

// Model is the Bubble Tea model for the gemchat TUI.
type Model struct {
	// Input is the text input component. Exported for test access.
	Input textinput.Model
	// Viewport is the scrollable output area. Exported for test access.
	Viewport viewport.Model

	send    SendFunc
	upload  UploadFunc
	session *gemchat.Session
	model   string
	theme   gemchat.Theme
	styles  Styles

	blocks []MessageBlock

	busy    bool
	pending string // status line text while busy
	cancel  context.CancelFunc
	ready   bool
}

// New creates a new TUI Model. The model string is the display name shown in
// the status line and must match the model the send function targets.
func New(send SendFunc, upload UploadFunc, session *gemchat.Session, model string, theme gemchat.Theme) Model {
	ti := textinput.New()
	ti.Placeholder = "Type a message or /help..."
	ti.Prompt = ""
	ti.Focus()
	ti.CharLimit = 0

	return Model{
		Input:   ti,
		send:    send,
		upload:  upload,
		session: session,
		model:   model,
		theme:   theme,
		styles:  NewStyles(theme),
	}
}

// Busy returns whether a send or upload is in flight.
func (m Model) Busy() bool { return m.busy }

// SetBusy is a test helper that puts the model in a busy state.
func SetBusy(m Model) (Model, tea.Cmd) {
	m.busy = true
	return m, nil
}

// SetBusyWithCancel is a test helper that puts the model in a busy state
// with a cancel function.
func SetBusyWithCancel(m Model, cancel func()) (Model, tea.Cmd) {
	m.busy = true
	m.cancel = cancel
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case SendDoneMsg:
		m = m.finishOperation()
		switch {
		case msg.Err == nil:
			m.blocks = append(m.blocks, NewAssistantBlock(msg.Reply.Text, m.theme))
		case !errors.Is(msg.Err, context.Canceled):
			m.blocks = append(m.blocks, NewErrorBlock(msg.Err, m.styles))
		}
		m.Viewport.SetContent(m.renderContent())
		m.Viewport.GotoBottom()
		cmd := m.Input.Focus()
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case UploadDoneMsg:
		m = m.finishOperation()
		switch {
		case msg.Err == nil:
			info := fmt.Sprintf("Attached %s (%s)", msg.File.Label(), formatBytes(msg.File.SizeBytes))
			m.blocks = append(m.blocks, NewInfoBlock(info, m.styles))
		case !errors.Is(msg.Err, context.Canceled):
			m.blocks = append(m.blocks, NewErrorBlock(msg.Err, m.styles))
		}
		m.Viewport.SetContent(m.renderContent())
		m.Viewport.GotoBottom()
		cmd := m.Input.Focus()
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	// Pass remaining messages to sub-components.
	// Viewport always receives messages for scrolling (keyboard and mouse).
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)

	if !m.busy {
		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder

	// Output area.
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")

	// Status line.
	b.WriteString(m.statusLine())
	b.WriteString("\n")

	// Input area.
	b.WriteString(m.Input.View())

	return b.String()
}

func (m Model) finishOperation() Model {
	m.busy = false
	m.pending = ""
	m.cancel = nil
	return m
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	inputH := 1
	statusHeight := 1
	borderHeight := 2 // newlines between sections
	vpHeight := msg.Height - inputH - statusHeight - borderHeight

	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m = m.renderSession()
		m.Viewport.SetContent(m.renderContent())
		m.Viewport.GotoBottom()
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}

	m.Input.Width = msg.Width
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		if m.busy {
			if m.cancel != nil {
				m.cancel()
			}
			return m, nil
		}
		return m, tea.Quit

	case tea.KeyEnter:
		if m.busy {
			return m, nil
		}
		text := strings.TrimSpace(m.Input.Value())
		if text == "" {
			return m, nil
		}
		if strings.HasPrefix(text, "/") {
			return m.runCommand(text)
		}
		return m.submitInput(text)
	}

	// When idle, pass keys to both input (for typing) and viewport
	// (for scrolling). Only forward non-character keys to viewport to avoid
	// conflicts (e.g. 'j'/'k' are viewport scroll AND text characters).
	if !m.busy {
		var cmd tea.Cmd
		var cmds []tea.Cmd

		if msg.Type != tea.KeyRunes {
			m.Viewport, cmd = m.Viewport.Update(msg)
			cmds = append(cmds, cmd)
		}

		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)

		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m Model) submitInput(text string) (tea.Model, tea.Cmd) {
	m.Input.SetValue("")

	// The send function appends the user turn to the session on success; the
	// block is added here so the message is visible while the reply streams in.
	m.blocks = append(m.blocks, NewUserMessageBlock(text, m.styles))
	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.busy = true
	m.pending = "Generating..."

	m.Input.Blur()

	return m, startSend(m.send, ctx, m.session, text)
}

// renderSession creates blocks from existing session messages.
func (m Model) renderSession() Model {
	for _, msg := range m.session.Messages {
		switch msg := msg.(type) {
		case gemchat.UserMessage:
			m.blocks = append(m.blocks, NewUserMessageBlock(msg.Text, m.styles))
		case gemchat.AssistantMessage:
			m.blocks = append(m.blocks, NewAssistantBlock(msg.Text, m.theme))
		}
	}
	return m
}

func (m Model) renderContent() string {
	if len(m.blocks) == 0 {
		return ""
	}
	var b strings.Builder
	for i, block := range m.blocks {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(block.View(m.Viewport.Width))
	}
	return b.String()
}

func (m Model) statusLine() string {
	if m.busy {
		return m.styles.Muted.Render(m.pending)
	}
	totals := m.session.Totals
	status := fmt.Sprintf("%s | %s | %d files | %d in / %d out | $%s",
		m.model,
		m.session.Prompt().Name,
		len(m.session.Files),
		totals.InputTokens,
		totals.OutputTokens,
		totals.Cost().StringFixed(4),
	)
	return m.styles.Muted.Render(status)
}

// startSend runs the send function in a goroutine and signals completion.
func startSend(send SendFunc, ctx context.Context, session *gemchat.Session, text string) tea.Cmd {
	return func() tea.Msg {
		reply, err := send(ctx, session, text)
		return SendDoneMsg{Reply: reply, Err: err}
	}
}

// startUpload runs the upload function in a goroutine and signals completion.
func startUpload(upload UploadFunc, ctx context.Context, session *gemchat.Session, path string) tea.Cmd {
	return func() tea.Msg {
		file, err := upload(ctx, session, path)
		return UploadDoneMsg{File: file, Err: err}
	}
}

// formatBytes renders a byte count in a human-readable unit.
func formatBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/float64(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/float64(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
