package bubbletea

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/gemchat"
)

const helpText = `Commands:
  /upload <path>   attach a file (pdf, txt, md, docx; max 20 MB)
  /files           list attached files
  /remove <n>      detach file n from the list
  /clear-files     detach all files
  /prompt          list system prompts
  /prompt <id>     switch the system prompt
  /reset-usage     zero the token and cost counters
  /help            show this help

Enter sends a message, Ctrl+C quits (or cancels while generating).`

// runCommand dispatches a slash command. Commands other than /upload run
// synchronously against the session and report through an info or error block.
func (m Model) runCommand(input string) (tea.Model, tea.Cmd) {
	m.Input.SetValue("")

	fields := strings.Fields(input)
	name, args := fields[0], fields[1:]

	var cmd tea.Cmd
	switch name {
	case "/upload":
		if len(args) != 1 {
			m = m.appendError(fmt.Errorf("usage: /upload <path>"))
		} else {
			return m.submitUpload(args[0])
		}

	case "/files":
		m = m.appendInfo(m.fileList())

	case "/remove":
		m = m.removeFile(args)

	case "/clear-files":
		n := len(m.session.Files)
		m.session.ClearFiles()
		m = m.appendInfo(fmt.Sprintf("Detached %d file(s)", n))

	case "/prompt":
		m = m.switchPrompt(args)

	case "/reset-usage":
		m.session.ResetUsage()
		m = m.appendInfo("Token and cost counters reset")

	case "/help":
		m = m.appendInfo(helpText)

	default:
		m = m.appendError(fmt.Errorf("unknown command %s, try /help", name))
	}

	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()
	return m, cmd
}

func (m Model) submitUpload(path string) (tea.Model, tea.Cmd) {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.busy = true
	m.pending = "Uploading " + path + "..."

	m.Input.Blur()
	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()

	return m, startUpload(m.upload, ctx, m.session, path)
}

func (m Model) fileList() string {
	if len(m.session.Files) == 0 {
		return "No files attached"
	}
	var b strings.Builder
	b.WriteString("Attached files:")
	for i, f := range m.session.Files {
		fmt.Fprintf(&b, "\n  %d. %s (%s)", i+1, f.Label(), formatBytes(f.SizeBytes))
	}
	return b.String()
}

func (m Model) removeFile(args []string) Model {
	if len(args) != 1 {
		return m.appendError(fmt.Errorf("usage: /remove <n>"))
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return m.appendError(fmt.Errorf("usage: /remove <n>"))
	}
	if n < 1 || n > len(m.session.Files) {
		return m.appendError(fmt.Errorf("no file %d, see /files", n))
	}
	label := m.session.Files[n-1].Label()
	if err := m.session.RemoveFile(n - 1); err != nil {
		return m.appendError(err)
	}
	return m.appendInfo("Detached " + label)
}

func (m Model) switchPrompt(args []string) Model {
	if len(args) == 0 {
		return m.appendInfo(m.promptList())
	}
	if err := m.session.SetPrompt(args[0]); err != nil {
		return m.appendError(err)
	}
	return m.appendInfo("Prompt set to " + m.session.Prompt().Name)
}

func (m Model) promptList() string {
	var b strings.Builder
	b.WriteString("System prompts:")
	for _, p := range gemchat.Prompts() {
		marker := " "
		if p.ID == m.session.PromptID {
			marker = "*"
		}
		fmt.Fprintf(&b, "\n %s %-12s %s", marker, p.ID, p.Description)
	}
	return b.String()
}

func (m Model) appendInfo(text string) Model {
	m.blocks = append(m.blocks, NewInfoBlock(text, m.styles))
	return m
}

func (m Model) appendError(err error) Model {
	m.blocks = append(m.blocks, NewErrorBlock(err, m.styles))
	return m
}
