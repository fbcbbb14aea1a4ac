// Package bubbletea provides a Bubble Tea TUI for the gemchat client.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/gemchat"
)

// SendFunc sends a user message to the model and returns the assistant reply.
// On success the implementation appends both conversation turns to the
// session. The function blocks until the reply arrives or the context is
// cancelled.
type SendFunc func(ctx context.Context, session *gemchat.Session, text string) (gemchat.AssistantMessage, error)

// UploadFunc uploads the file at path and attaches it to the session. The
// function blocks until the upload completes or the context is cancelled.
type UploadFunc func(ctx context.Context, session *gemchat.Session, path string) (gemchat.FileRef, error)

// Run creates and runs the Bubble Tea TUI program. It blocks until the
// program exits. When the context is cancelled the program quits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// SendDoneMsg signals that a send operation has completed.
type SendDoneMsg struct {
	Reply gemchat.AssistantMessage
	Err   error
}

// UploadDoneMsg signals that a file upload has completed.
type UploadDoneMsg struct {
	File gemchat.FileRef
	Err  error
}
