// Package gemini implements [gemchat.Provider] and [gemchat.Uploader]
// for the Google Gemini API.
//
// It wraps the google.golang.org/genai SDK, translating between
// gemchat's domain types and the Gemini API types. Generation is a
// single blocking GenerateContent call; token counting and document
// upload proxy to the corresponding SDK endpoints.
package gemini

// Sampling defaults mirror the captured application configuration.
const (
	defaultModel       = "gemini-2.5-flash-preview-05-20"
	defaultMaxTokens   = 32768
	defaultTemperature = 0.1
	defaultTopP        = 0.95
	defaultTopK        = 40
)
