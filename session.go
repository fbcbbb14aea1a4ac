package gemchat

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Session holds the state of one chat: the ordered turn history, the
// retained uploaded-file handles, the selected system prompt, and the
// running usage totals. A session is mutated in place by user actions
// and discarded when the program exits; it is never persisted and
// restored.
type Session struct {
	ID        string
	PromptID  string
	Messages  []Message
	Files     []FileRef
	Totals    Totals
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSession creates a session with every field initialized up front.
// The prompt ID must name an entry in the prompt registry.
func NewSession(id, promptID string) (*Session, error) {
	if _, ok := PromptByID(promptID); !ok {
		return nil, fmt.Errorf("%q: %w", promptID, ErrUnknownPrompt)
	}
	now := time.Now()
	return &Session{
		ID:        id,
		PromptID:  promptID,
		Messages:  []Message{},
		Files:     []FileRef{},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Append adds a turn to the history. Turns keep their append order.
func (s *Session) Append(msg Message) {
	s.Messages = append(s.Messages, msg)
	s.touch()
}

// AddFile records a successfully uploaded file handle.
func (s *Session) AddFile(f FileRef) {
	s.Files = append(s.Files, f)
	s.touch()
}

// RemoveFile drops the file at index i, preserving the relative order
// of the remaining handles.
func (s *Session) RemoveFile(i int) error {
	if i < 0 || i >= len(s.Files) {
		return fmt.Errorf("%d of %d: %w", i, len(s.Files), ErrFileIndex)
	}
	s.Files = slices.Delete(s.Files, i, i+1)
	s.touch()
	return nil
}

// ClearFiles drops all retained file handles.
func (s *Session) ClearFiles() {
	s.Files = s.Files[:0]
	s.touch()
}

// SetPrompt switches the selected system prompt.
func (s *Session) SetPrompt(promptID string) error {
	if _, ok := PromptByID(promptID); !ok {
		return fmt.Errorf("%q: %w", promptID, ErrUnknownPrompt)
	}
	s.PromptID = promptID
	s.touch()
	return nil
}

// Prompt returns the currently selected prompt entry.
func (s *Session) Prompt() Prompt {
	p, ok := PromptByID(s.PromptID)
	if !ok {
		// PromptID is validated on every write; reaching this means the
		// session was constructed without NewSession.
		p, _ = PromptByID(DefaultPromptID)
	}
	return p
}

// AddUsage accumulates one exchange's tokens and costs.
func (s *Session) AddUsage(u Usage, inputCost, outputCost decimal.Decimal) {
	s.Totals.Add(u, inputCost, outputCost)
	s.touch()
}

// ResetUsage zeroes the token and cost counters unconditionally.
func (s *Session) ResetUsage() {
	s.Totals.Reset()
	s.touch()
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now()
}
