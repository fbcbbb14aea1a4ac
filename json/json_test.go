package json_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/gemchat"
	gemjson "github.com/fwojciec/gemchat/json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSession(t *testing.T) *gemchat.Session {
	t.Helper()
	s, err := gemchat.NewSession("sess-42", "retrieval")
	require.NoError(t, err)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.Append(gemchat.UserMessage{Text: "what is in the contract?", Timestamp: now})
	s.Append(gemchat.AssistantMessage{
		Text:      "The contract covers...",
		Model:     "gemini-1.5-pro",
		Usage:     gemchat.Usage{InputTokens: 120, OutputTokens: 48},
		Timestamp: now.Add(2 * time.Second),
	})
	s.AddFile(gemchat.FileRef{
		Handle:      "files/abc",
		URI:         "uri://abc",
		MIMEType:    "application/pdf",
		DisplayName: "contract.pdf",
		SizeBytes:   1024,
	})
	s.AddUsage(gemchat.Usage{InputTokens: 120, OutputTokens: 48},
		decimal.RequireFromString("0.00015"), decimal.RequireFromString("0.00024"))
	return s
}

func TestMarshalUnmarshalSession_RoundTrip(t *testing.T) {
	t.Parallel()

	s := sampleSession(t)
	data, err := gemjson.MarshalSession(s)
	require.NoError(t, err)

	got, err := gemjson.UnmarshalSession(data)
	require.NoError(t, err)

	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, s.PromptID, got.PromptID)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "what is in the contract?", got.Messages[0].(gemchat.UserMessage).Text)

	assistant := got.Messages[1].(gemchat.AssistantMessage)
	assert.Equal(t, "gemini-1.5-pro", assistant.Model)
	assert.Equal(t, gemchat.Usage{InputTokens: 120, OutputTokens: 48}, assistant.Usage)

	require.Len(t, got.Files, 1)
	assert.Equal(t, "contract.pdf", got.Files[0].DisplayName)

	assert.Equal(t, 120, got.Totals.InputTokens)
	assert.True(t, got.Totals.InputCost.Equal(decimal.RequireFromString("0.00015")))
	assert.True(t, got.Totals.OutputCost.Equal(decimal.RequireFromString("0.00024")))
}

func TestUnmarshalSession_Errors(t *testing.T) {
	t.Parallel()

	t.Run("invalid JSON", func(t *testing.T) {
		t.Parallel()
		_, err := gemjson.UnmarshalSession([]byte("{nope"))
		assert.Error(t, err)
	})

	t.Run("unsupported version", func(t *testing.T) {
		t.Parallel()
		_, err := gemjson.UnmarshalSession([]byte(`{"version": 99}`))
		assert.ErrorContains(t, err, "unsupported envelope version")
	})

	t.Run("unknown message role", func(t *testing.T) {
		t.Parallel()
		data := []byte(`{"version":1,"totals":{"input_cost":"0","output_cost":"0"},"messages":[{"role":"robot","text":"hi"}]}`)
		_, err := gemjson.UnmarshalSession(data)
		assert.ErrorContains(t, err, "unknown message role")
	})
}

func TestSave(t *testing.T) {
	t.Parallel()

	s := sampleSession(t)
	path := filepath.Join(t.TempDir(), "transcripts", "sess-42.json")
	require.NoError(t, gemjson.Save(path, s))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	got, err := gemjson.UnmarshalSession(data)
	require.NoError(t, err)
	assert.Equal(t, "sess-42", got.ID)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")
}
