package gemchat_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/gemchat"
	"github.com/fwojciec/gemchat/mock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *gemchat.Session {
	t.Helper()
	s, err := gemchat.NewSession("sess-1", gemchat.DefaultPromptID)
	require.NoError(t, err)
	return s
}

func TestChat_Send(t *testing.T) {
	t.Parallel()

	t.Run("appends both turns and accumulates usage on success", func(t *testing.T) {
		t.Parallel()
		s := newTestSession(t)
		p := &mock.Provider{
			GenerateFn: func(_ context.Context, req gemchat.Request) (gemchat.Reply, error) {
				return gemchat.Reply{
					Text:  "the answer",
					Model: "gemini-1.5-pro",
					Usage: &gemchat.Usage{InputTokens: 2_000_000, OutputTokens: 1_000_000},
				}, nil
			},
		}
		chat := gemchat.NewChat(p)

		msg, err := chat.Send(context.Background(), s, "the question")
		require.NoError(t, err)
		assert.Equal(t, "the answer", msg.Text)
		assert.Equal(t, "gemini-1.5-pro", msg.Model)

		require.Len(t, s.Messages, 2)
		assert.Equal(t, "the question", s.Messages[0].(gemchat.UserMessage).Text)
		assert.Equal(t, "the answer", s.Messages[1].(gemchat.AssistantMessage).Text)

		assert.Equal(t, 2_000_000, s.Totals.InputTokens)
		assert.Equal(t, 1_000_000, s.Totals.OutputTokens)
		assert.True(t, s.Totals.InputCost.Equal(decimal.RequireFromString("2.50")), "input cost = %s", s.Totals.InputCost)
		assert.True(t, s.Totals.OutputCost.Equal(decimal.RequireFromString("5.00")), "output cost = %s", s.Totals.OutputCost)
	})

	t.Run("provider error leaves the session unchanged", func(t *testing.T) {
		t.Parallel()
		s := newTestSession(t)
		sentinel := errors.New("quota exceeded")
		p := &mock.Provider{
			GenerateFn: func(_ context.Context, _ gemchat.Request) (gemchat.Reply, error) {
				return gemchat.Reply{}, sentinel
			},
		}
		chat := gemchat.NewChat(p)

		_, err := chat.Send(context.Background(), s, "question")
		assert.ErrorIs(t, err, sentinel)
		assert.Empty(t, s.Messages)
		assert.Equal(t, 0, s.Totals.InputTokens)
	})

	t.Run("prior history survives a failed turn", func(t *testing.T) {
		t.Parallel()
		s := newTestSession(t)
		calls := 0
		p := &mock.Provider{
			GenerateFn: func(_ context.Context, _ gemchat.Request) (gemchat.Reply, error) {
				calls++
				if calls == 1 {
					return gemchat.Reply{Text: "ok", Model: "gemini-2.0-flash"}, nil
				}
				return gemchat.Reply{}, errors.New("transport failure")
			},
		}
		chat := gemchat.NewChat(p)

		_, err := chat.Send(context.Background(), s, "first")
		require.NoError(t, err)
		_, err = chat.Send(context.Background(), s, "second")
		require.Error(t, err)

		require.Len(t, s.Messages, 2)
		assert.Equal(t, "first", s.Messages[0].(gemchat.UserMessage).Text)
	})

	t.Run("request carries prompt, files, and text in order", func(t *testing.T) {
		t.Parallel()
		s := newTestSession(t)
		require.NoError(t, s.SetPrompt("retrieval"))
		s.AddFile(gemchat.FileRef{Handle: "files/a", URI: "uri://a"})

		var got gemchat.Request
		p := &mock.Provider{
			GenerateFn: func(_ context.Context, req gemchat.Request) (gemchat.Reply, error) {
				got = req
				return gemchat.Reply{Text: "ok", Model: "gemini-2.0-flash"}, nil
			},
		}
		chat := gemchat.NewChat(p)

		_, err := chat.Send(context.Background(), s, "question")
		require.NoError(t, err)

		retrieval, _ := gemchat.PromptByID("retrieval")
		parts := got.Parts()
		require.Len(t, parts, 3)
		assert.Equal(t, gemchat.TextPart{Text: retrieval.Text}, parts[0])
		assert.Equal(t, gemchat.FilePart{File: s.Files[0]}, parts[1])
		assert.Equal(t, gemchat.TextPart{Text: "question"}, parts[2])
	})

	t.Run("empty user message fails validation before the provider", func(t *testing.T) {
		t.Parallel()
		s := newTestSession(t)
		p := &mock.Provider{
			GenerateFn: func(_ context.Context, _ gemchat.Request) (gemchat.Reply, error) {
				t.Fatal("provider must not be reached")
				return gemchat.Reply{}, nil
			},
		}
		chat := gemchat.NewChat(p)

		_, err := chat.Send(context.Background(), s, "")
		assert.ErrorIs(t, err, gemchat.ErrValidation)
	})

	t.Run("empty reply is an error and mutates nothing", func(t *testing.T) {
		t.Parallel()
		s := newTestSession(t)
		p := &mock.Provider{
			GenerateFn: func(_ context.Context, _ gemchat.Request) (gemchat.Reply, error) {
				return gemchat.Reply{Model: "gemini-2.0-flash"}, nil
			},
		}
		chat := gemchat.NewChat(p)

		_, err := chat.Send(context.Background(), s, "question")
		assert.ErrorIs(t, err, gemchat.ErrEmptyReply)
		assert.Empty(t, s.Messages)
	})

	t.Run("WithModel overrides the request model", func(t *testing.T) {
		t.Parallel()
		s := newTestSession(t)
		p := &mock.Provider{
			GenerateFn: func(_ context.Context, req gemchat.Request) (gemchat.Reply, error) {
				return gemchat.Reply{Text: "ok", Model: req.Model}, nil
			},
		}
		chat := gemchat.NewChat(p)

		msg, err := chat.Send(context.Background(), s, "q", gemchat.WithModel("gemini-1.5-flash"))
		require.NoError(t, err)
		assert.Equal(t, "gemini-1.5-flash", msg.Model)
	})
}

func TestChat_Send_TokenCounting(t *testing.T) {
	t.Parallel()

	t.Run("falls back to per-part side calls when usage is missing", func(t *testing.T) {
		t.Parallel()
		s := newTestSession(t)
		p := &mock.Provider{
			GenerateFn: func(_ context.Context, _ gemchat.Request) (gemchat.Reply, error) {
				return gemchat.Reply{Text: "short reply", Model: "gemini-2.0-flash"}, nil
			},
			CountTokensFn: func(_ context.Context, _ string, part gemchat.Part) (int, error) {
				return 10, nil
			},
		}
		chat := gemchat.NewChat(p)

		msg, err := chat.Send(context.Background(), s, "question")
		require.NoError(t, err)
		// Two input parts (prompt, question) at 10 tokens each plus the reply.
		assert.Equal(t, 20, msg.Usage.InputTokens)
		assert.Equal(t, 10, msg.Usage.OutputTokens)
	})

	t.Run("count failures degrade to zero without blocking the exchange", func(t *testing.T) {
		t.Parallel()
		s := newTestSession(t)
		p := &mock.Provider{
			GenerateFn: func(_ context.Context, _ gemchat.Request) (gemchat.Reply, error) {
				return gemchat.Reply{Text: "reply", Model: "gemini-2.0-flash"}, nil
			},
			CountTokensFn: func(_ context.Context, _ string, _ gemchat.Part) (int, error) {
				return 0, errors.New("count endpoint down")
			},
		}
		chat := gemchat.NewChat(p)

		msg, err := chat.Send(context.Background(), s, "question")
		require.NoError(t, err)
		assert.Equal(t, 0, msg.Usage.InputTokens)
		assert.Equal(t, 0, msg.Usage.OutputTokens)
		require.Len(t, s.Messages, 2)
	})

	t.Run("server-reported usage wins over side calls", func(t *testing.T) {
		t.Parallel()
		s := newTestSession(t)
		counted := false
		p := &mock.Provider{
			GenerateFn: func(_ context.Context, _ gemchat.Request) (gemchat.Reply, error) {
				return gemchat.Reply{
					Text:  "reply",
					Model: "gemini-2.0-flash",
					Usage: &gemchat.Usage{InputTokens: 5, OutputTokens: 3},
				}, nil
			},
			CountTokensFn: func(_ context.Context, _ string, _ gemchat.Part) (int, error) {
				counted = true
				return 99, nil
			},
		}
		chat := gemchat.NewChat(p)

		msg, err := chat.Send(context.Background(), s, "question")
		require.NoError(t, err)
		assert.Equal(t, gemchat.Usage{InputTokens: 5, OutputTokens: 3}, msg.Usage)
		assert.False(t, counted)
	})
}
