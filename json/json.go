// Package json serializes finished sessions as versioned transcript
// files. Transcripts are an explicit export; sessions are never
// restored from them.
package json

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/gemchat"
	"github.com/shopspring/decimal"
)

// envelope is the v1 wire format for an exported transcript.
type envelope struct {
	Version   int          `json:"version"`
	ID        string       `json:"id"`
	PromptID  string       `json:"prompt_id"`
	Files     []fileDTO    `json:"files,omitempty"`
	Totals    totalsDTO    `json:"totals"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	Messages  []messageDTO `json:"messages"`
}

type fileDTO struct {
	Handle      string `json:"handle"`
	URI         string `json:"uri,omitempty"`
	MIMEType    string `json:"mime_type,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	SizeBytes   int64  `json:"size_bytes,omitempty"`
}

// totalsDTO stores costs as strings to keep decimal precision exact on
// the wire.
type totalsDTO struct {
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
	InputCost    string `json:"input_cost"`
	OutputCost   string `json:"output_cost"`
}

// messageDTO is the JSON representation of a Message with a role discriminator.
type messageDTO struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Model     *string   `json:"model,omitempty"`
	Usage     *usageDTO `json:"usage,omitempty"`
}

type usageDTO struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// MarshalSession serializes a Session to JSON in v1 envelope format.
func MarshalSession(s *gemchat.Session) ([]byte, error) {
	env := envelope{
		Version:  1,
		ID:       s.ID,
		PromptID: s.PromptID,
		Totals: totalsDTO{
			InputTokens:  s.Totals.InputTokens,
			OutputTokens: s.Totals.OutputTokens,
			InputCost:    s.Totals.InputCost.String(),
			OutputCost:   s.Totals.OutputCost.String(),
		},
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		Messages:  make([]messageDTO, len(s.Messages)),
	}
	for _, f := range s.Files {
		env.Files = append(env.Files, fileDTO{
			Handle:      f.Handle,
			URI:         f.URI,
			MIMEType:    f.MIMEType,
			DisplayName: f.DisplayName,
			SizeBytes:   f.SizeBytes,
		})
	}
	for i, msg := range s.Messages {
		dto, err := marshalMessage(msg)
		if err != nil {
			return nil, fmt.Errorf("message %d: %w", i, err)
		}
		env.Messages[i] = dto
	}
	return json.MarshalIndent(env, "", "  ")
}

// UnmarshalSession deserializes a Session from JSON in v1 envelope format.
func UnmarshalSession(data []byte) (*gemchat.Session, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != 1 {
		return nil, fmt.Errorf("unsupported envelope version: %d", env.Version)
	}
	inputCost, err := decimal.NewFromString(env.Totals.InputCost)
	if err != nil {
		return nil, fmt.Errorf("parse input cost: %w", err)
	}
	outputCost, err := decimal.NewFromString(env.Totals.OutputCost)
	if err != nil {
		return nil, fmt.Errorf("parse output cost: %w", err)
	}
	s := &gemchat.Session{
		ID:       env.ID,
		PromptID: env.PromptID,
		Messages: make([]gemchat.Message, len(env.Messages)),
		Files:    make([]gemchat.FileRef, len(env.Files)),
		Totals: gemchat.Totals{
			InputTokens:  env.Totals.InputTokens,
			OutputTokens: env.Totals.OutputTokens,
			InputCost:    inputCost,
			OutputCost:   outputCost,
		},
		CreatedAt: env.CreatedAt,
		UpdatedAt: env.UpdatedAt,
	}
	for i, f := range env.Files {
		s.Files[i] = gemchat.FileRef{
			Handle:      f.Handle,
			URI:         f.URI,
			MIMEType:    f.MIMEType,
			DisplayName: f.DisplayName,
			SizeBytes:   f.SizeBytes,
		}
	}
	for i, dto := range env.Messages {
		msg, err := unmarshalMessage(dto)
		if err != nil {
			return nil, fmt.Errorf("message %d: %w", i, err)
		}
		s.Messages[i] = msg
	}
	return s, nil
}

// Save writes a transcript to a JSON file, creating parent directories
// as needed. The write is atomic (temp file plus rename).
func Save(path string, s *gemchat.Session) error {
	data, err := MarshalSession(s)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func marshalMessage(msg gemchat.Message) (messageDTO, error) {
	switch m := msg.(type) {
	case gemchat.UserMessage:
		return messageDTO{
			Role:      string(gemchat.RoleUser),
			Text:      m.Text,
			Timestamp: m.Timestamp,
		}, nil
	case gemchat.AssistantMessage:
		return messageDTO{
			Role:      string(gemchat.RoleAssistant),
			Text:      m.Text,
			Timestamp: m.Timestamp,
			Model:     &m.Model,
			Usage:     &usageDTO{InputTokens: m.Usage.InputTokens, OutputTokens: m.Usage.OutputTokens},
		}, nil
	default:
		return messageDTO{}, fmt.Errorf("unknown message type: %T", msg)
	}
}

func unmarshalMessage(dto messageDTO) (gemchat.Message, error) {
	switch dto.Role {
	case string(gemchat.RoleUser):
		return gemchat.UserMessage{Text: dto.Text, Timestamp: dto.Timestamp}, nil
	case string(gemchat.RoleAssistant):
		var model string
		if dto.Model != nil {
			model = *dto.Model
		}
		var usage gemchat.Usage
		if dto.Usage != nil {
			usage = gemchat.Usage{InputTokens: dto.Usage.InputTokens, OutputTokens: dto.Usage.OutputTokens}
		}
		return gemchat.AssistantMessage{
			Text:      dto.Text,
			Model:     model,
			Usage:     usage,
			Timestamp: dto.Timestamp,
		}, nil
	default:
		return nil, fmt.Errorf("unknown message role: %q", dto.Role)
	}
}
