package bubbletea_test

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/gemchat"
	bt "github.com/fwojciec/gemchat/bubbletea"
	"github.com/stretchr/testify/require"
)

const testModel = "gemini-1.5-pro"

// newTestSession creates a session with the default prompt.
func newTestSession(t *testing.T) *gemchat.Session {
	t.Helper()
	session, err := gemchat.NewSession("test", gemchat.DefaultPromptID)
	require.NoError(t, err)
	return session
}

// initModel creates a model and sends a WindowSizeMsg to initialize the viewport.
func initModel(t *testing.T, send bt.SendFunc, upload bt.UploadFunc, session *gemchat.Session) bt.Model {
	t.Helper()
	return initModelWithSize(t, send, upload, session, 80, 24)
}

// initModelWithSize creates a model with a custom terminal size.
func initModelWithSize(t *testing.T, send bt.SendFunc, upload bt.UploadFunc, session *gemchat.Session, width, height int) bt.Model {
	t.Helper()
	m := bt.New(send, upload, session, testModel, gemchat.DefaultTheme())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

// updateModel sends a message and returns the updated Model.
func updateModel(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

// nopSend is a send function that returns an empty reply.
func nopSend(_ context.Context, _ *gemchat.Session, _ string) (gemchat.AssistantMessage, error) {
	return gemchat.AssistantMessage{}, nil
}

// nopUpload is an upload function that returns an empty file reference.
func nopUpload(_ context.Context, _ *gemchat.Session, _ string) (gemchat.FileRef, error) {
	return gemchat.FileRef{}, nil
}
