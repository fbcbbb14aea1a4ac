package gemchat

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a request failed validation.
	ErrValidation = errors.New("validation error")

	// ErrUnknownPrompt indicates the requested system prompt does not exist.
	ErrUnknownPrompt = errors.New("unknown system prompt")

	// ErrFileTooLarge indicates an upload exceeds MaxUploadBytes.
	ErrFileTooLarge = errors.New("file too large")

	// ErrFileType indicates an upload is not a supported document format.
	ErrFileType = errors.New("unsupported file type")

	// ErrFileIndex indicates a file removal index is out of range.
	ErrFileIndex = errors.New("file index out of range")

	// ErrEmptyReply indicates the model returned no text.
	ErrEmptyReply = errors.New("empty reply from model")
)
