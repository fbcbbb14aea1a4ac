package gemini

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/gemchat"
	"google.golang.org/genai"
)

// Interface compliance checks.
var (
	_ gemchat.Provider = (*Client)(nil)
	_ gemchat.Uploader = (*Client)(nil)
)

// Client implements [gemchat.Provider] and [gemchat.Uploader] for the
// Google Gemini API.
type Client struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// Option configures a [Client].
type Option func(*Client)

// WithModel sets the default model ID.
func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithLogger sets the logger. Default is a discard logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// Model returns the model ID requests default to.
func (c *Client) Model() string { return c.model }

// New creates a new Gemini [Client] with the given API key and options.
func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	c := &Client{
		client: gc,
		model:  defaultModel,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Generate submits one blocking request to the Gemini API and returns
// the reply text. The ordered content list (prompt, file handles, user
// text) maps to one Content per part.
func (c *Client) Generate(ctx context.Context, req gemchat.Request) (gemchat.Reply, error) {
	if err := req.Validate(); err != nil {
		return gemchat.Reply{}, err
	}
	model := req.Model
	if model == "" {
		model = c.model
	}

	contents := ConvertParts(req.Parts())
	config := buildConfig(req)

	resp, err := c.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return gemchat.Reply{}, fmt.Errorf("gemini: generate: %w", err)
	}

	reply := gemchat.Reply{
		Text:  resp.Text(),
		Model: model,
	}
	if um := resp.UsageMetadata; um != nil {
		reply.Usage = &gemchat.Usage{
			InputTokens:  int(um.PromptTokenCount),
			OutputTokens: int(um.CandidatesTokenCount),
		}
	}
	c.logger.Debug("generate", "model", model, "contents", len(contents), "reported_usage", reply.Usage != nil)
	return reply, nil
}

// CountTokens prices a single content item via the remote token-count
// endpoint. Callers treat failures as a zero count.
func (c *Client) CountTokens(ctx context.Context, model string, p gemchat.Part) (int, error) {
	if model == "" {
		model = c.model
	}
	contents := []*genai.Content{{Role: "user", Parts: []*genai.Part{convertPart(p)}}}
	resp, err := c.client.Models.CountTokens(ctx, model, contents, nil)
	if err != nil {
		return 0, fmt.Errorf("gemini: count tokens: %w", err)
	}
	return int(resp.TotalTokens), nil
}

// Upload sends a document to the Gemini file service and returns its
// opaque handle. Size and type limits are enforced by the caller.
func (c *Client) Upload(ctx context.Context, r io.Reader, name string, size int64) (gemchat.FileRef, error) {
	f, err := c.client.Files.Upload(ctx, r, &genai.UploadFileConfig{
		DisplayName: name,
		MIMEType:    gemchat.MIMETypeFor(name),
	})
	if err != nil {
		return gemchat.FileRef{}, fmt.Errorf("gemini: upload %s: %w", name, err)
	}
	c.logger.Info("file uploaded", "name", name, "handle", f.Name, "bytes", size)
	return gemchat.FileRef{
		Handle:      f.Name,
		URI:         f.URI,
		MIMEType:    f.MIMEType,
		DisplayName: name,
		SizeBytes:   size,
	}, nil
}

// buildConfig maps the request's sampling parameters onto the SDK
// config, falling back to the captured defaults for zero/nil fields.
func buildConfig(req gemchat.Request) *genai.GenerateContentConfig {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}
	temperature := defaultTemperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}
	topP := defaultTopP
	if req.TopP != nil {
		topP = *req.TopP
	}
	topK := defaultTopK
	if req.TopK != nil {
		topK = *req.TopK
	}

	return &genai.GenerateContentConfig{
		MaxOutputTokens: int32(maxTokens),
		Temperature:     genai.Ptr(float32(temperature)),
		TopP:            genai.Ptr(float32(topP)),
		TopK:            genai.Ptr(float32(topK)),
	}
}

// ConvertParts converts an ordered content list to genai Contents, one
// Content per part so the request mirrors the captured payload shape.
// Exported for testing.
func ConvertParts(parts []gemchat.Part) []*genai.Content {
	result := make([]*genai.Content, len(parts))
	for i, p := range parts {
		result[i] = &genai.Content{
			Role:  "user",
			Parts: []*genai.Part{convertPart(p)},
		}
	}
	return result
}

func convertPart(p gemchat.Part) *genai.Part {
	switch v := p.(type) {
	case gemchat.TextPart:
		return &genai.Part{Text: v.Text}
	case gemchat.FilePart:
		return &genai.Part{
			FileData: &genai.FileData{
				FileURI:  v.File.URI,
				MIMEType: v.File.MIMEType,
			},
		}
	default:
		// Part is sealed; no other implementations exist.
		return &genai.Part{}
	}
}
