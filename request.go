package gemchat

import "fmt"

// Request carries model selection, the ordered content, and generation
// parameters for one exchange. The provider uses its own defaults when
// sampling fields are zero/nil.
type Request struct {
	Model       string // model ID, provider-specific; empty = provider default
	PromptText  string // system prompt, sent as the first content item
	Files       []FileRef
	Text        string   // the user's message, sent last
	MaxTokens   int      // 0 = provider default
	Temperature *float64 // nil = provider default
	TopP        *float64 // nil = provider default
	TopK        *int     // nil = provider default
}

// Part is a sealed interface representing one item in a request's
// ordered content list.
type Part interface {
	part()
}

// TextPart contains text content.
type TextPart struct {
	Text string
}

func (TextPart) part() {}

// FilePart references a previously uploaded document.
type FilePart struct {
	File FileRef
}

func (FilePart) part() {}

// Interface compliance checks.
var (
	_ Part = TextPart{}
	_ Part = FilePart{}
)

// Parts returns the ordered content list: the prompt text first, then
// the file handles in the order they were retained, then the user text.
func (r Request) Parts() []Part {
	parts := make([]Part, 0, len(r.Files)+2)
	parts = append(parts, TextPart{Text: r.PromptText})
	for _, f := range r.Files {
		parts = append(parts, FilePart{File: f})
	}
	parts = append(parts, TextPart{Text: r.Text})
	return parts
}

// Validate checks universal constraints on Request.
// Provider implementations may apply additional provider-specific validation.
func (r Request) Validate() error {
	if r.Text == "" {
		return fmt.Errorf("empty user message: %w", ErrValidation)
	}
	if r.MaxTokens < 0 {
		return fmt.Errorf("max_tokens must be non-negative, got %d: %w", r.MaxTokens, ErrValidation)
	}
	if r.Temperature != nil {
		if *r.Temperature < 0 || *r.Temperature > 2 {
			return fmt.Errorf("temperature must be in [0, 2], got %g: %w", *r.Temperature, ErrValidation)
		}
	}
	if r.TopP != nil {
		if *r.TopP < 0 || *r.TopP > 1 {
			return fmt.Errorf("top_p must be in [0, 1], got %g: %w", *r.TopP, ErrValidation)
		}
	}
	if r.TopK != nil && *r.TopK < 0 {
		return fmt.Errorf("top_k must be non-negative, got %d: %w", *r.TopK, ErrValidation)
	}
	return nil
}
