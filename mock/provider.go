// Package mock provides test doubles for gemchat interfaces using function fields.
package mock

import (
	"context"
	"io"

	"github.com/fwojciec/gemchat"
)

// Interface compliance checks.
var (
	_ gemchat.Provider = (*Provider)(nil)
	_ gemchat.Uploader = (*Uploader)(nil)
)

// Provider is a test double for gemchat.Provider.
// Set GenerateFn before calling Generate. CountTokensFn is nil-safe and
// returns a zero count, because most tests exercise the generation path
// with server-reported usage and never count tokens.
type Provider struct {
	GenerateFn    func(ctx context.Context, req gemchat.Request) (gemchat.Reply, error)
	CountTokensFn func(ctx context.Context, model string, p gemchat.Part) (int, error)
}

// Generate delegates to GenerateFn.
func (p *Provider) Generate(ctx context.Context, req gemchat.Request) (gemchat.Reply, error) {
	return p.GenerateFn(ctx, req)
}

// CountTokens delegates to CountTokensFn. Returns zero when CountTokensFn is nil.
func (p *Provider) CountTokens(ctx context.Context, model string, part gemchat.Part) (int, error) {
	if p.CountTokensFn == nil {
		return 0, nil
	}
	return p.CountTokensFn(ctx, model, part)
}

// Uploader is a test double for gemchat.Uploader.
// Set UploadFn before calling Upload.
type Uploader struct {
	UploadFn func(ctx context.Context, r io.Reader, name string, size int64) (gemchat.FileRef, error)
}

// Upload delegates to UploadFn.
func (u *Uploader) Upload(ctx context.Context, r io.Reader, name string, size int64) (gemchat.FileRef, error) {
	return u.UploadFn(ctx, r, name, size)
}
