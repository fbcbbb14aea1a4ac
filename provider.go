package gemchat

import (
	"context"
	"io"
)

// Reply is the result of a generation call.
type Reply struct {
	Text  string
	Model string // the model that produced the reply
	Usage *Usage // nil when the provider reported no usage
}

// Provider is a strategy pattern interface for hosted model APIs.
//
// Generate submits one complete request and blocks until the reply is
// available; there is no streaming or retry. CountTokens prices a
// single content item; callers treat its failure as a zero count.
type Provider interface {
	Generate(ctx context.Context, req Request) (Reply, error)
	CountTokens(ctx context.Context, model string, p Part) (int, error)
}

// Uploader sends a local document to the remote service and returns an
// opaque handle usable in place of inline content. Size and type limits
// are enforced by the caller before Upload is reached.
type Uploader interface {
	Upload(ctx context.Context, r io.Reader, name string, size int64) (FileRef, error)
}
