package gemchat

import (
	"context"
	"log/slog"
	"time"
)

// Chat orchestrates one exchange at a time between a Session and a Provider.
type Chat struct {
	provider Provider
	logger   *slog.Logger
}

// ChatOption configures a Chat.
type ChatOption func(*Chat)

// WithLogger sets the logger. Default is a discard logger.
func WithLogger(logger *slog.Logger) ChatOption {
	return func(c *Chat) { c.logger = logger }
}

// NewChat creates a Chat with the given provider.
func NewChat(provider Provider, opts ...ChatOption) *Chat {
	c := &Chat{
		provider: provider,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// SendOption configures a single Send invocation.
type SendOption func(*sendConfig)

type sendConfig struct {
	model string
}

// WithModel sets the model ID for this exchange.
// Empty string means the provider uses its default model.
func WithModel(model string) SendOption {
	return func(c *sendConfig) {
		c.model = model
	}
}

// Send submits the session's system prompt, retained file handles, and
// the user text as one ordered request, and appends both turns to the
// session on success. On any transport or provider error the session is
// left unchanged: no partial mutation, no retry.
//
// Token accounting is best effort: server-reported usage is preferred,
// otherwise each content item is priced with a CountTokens side call
// whose failure degrades to a zero count. Cost comes from the static
// price table; unknown models cost zero.
func (c *Chat) Send(ctx context.Context, session *Session, text string, opts ...SendOption) (AssistantMessage, error) {
	var cfg sendConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	prompt, ok := PromptByID(session.PromptID)
	if !ok {
		return AssistantMessage{}, ErrUnknownPrompt
	}

	req := Request{
		Model:      cfg.model,
		PromptText: prompt.Text,
		Files:      session.Files,
		Text:       text,
	}
	if err := req.Validate(); err != nil {
		return AssistantMessage{}, err
	}

	reply, err := c.provider.Generate(ctx, req)
	if err != nil {
		c.logger.Error("generate failed", "model", cfg.model, "prompt", session.PromptID, "error", err)
		return AssistantMessage{}, err
	}
	if reply.Text == "" {
		return AssistantMessage{}, ErrEmptyReply
	}

	usage := c.resolveUsage(ctx, reply, req)
	inputCost, outputCost := Cost(reply.Model, usage.InputTokens, usage.OutputTokens)

	assistant := AssistantMessage{
		Text:      reply.Text,
		Model:     reply.Model,
		Usage:     usage,
		Timestamp: time.Now(),
	}
	session.Append(UserMessage{Text: text, Timestamp: time.Now()})
	session.Append(assistant)
	session.AddUsage(usage, inputCost, outputCost)

	c.logger.Info("exchange complete",
		"model", reply.Model,
		"prompt", session.PromptID,
		"files", len(req.Files),
		"input_tokens", usage.InputTokens,
		"output_tokens", usage.OutputTokens,
	)
	return assistant, nil
}

// resolveUsage prefers server-reported usage and falls back to counting
// each content item plus the reply text with side calls.
func (c *Chat) resolveUsage(ctx context.Context, reply Reply, req Request) Usage {
	if reply.Usage != nil {
		return *reply.Usage
	}
	var usage Usage
	for _, p := range req.Parts() {
		usage.InputTokens += c.countTokens(ctx, reply.Model, p)
	}
	usage.OutputTokens = c.countTokens(ctx, reply.Model, TextPart{Text: reply.Text})
	return usage
}

// countTokens degrades to zero on failure; counting never blocks an exchange.
func (c *Chat) countTokens(ctx context.Context, model string, p Part) int {
	n, err := c.provider.CountTokens(ctx, model, p)
	if err != nil {
		c.logger.Warn("token count failed", "model", model, "error", err)
		return 0
	}
	return n
}
