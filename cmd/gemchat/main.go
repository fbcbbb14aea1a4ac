// Command gemchat is a terminal chat client for the Google Gemini API.
//
// Usage:
//
//	GEMINI_API_KEY=gk-... gemchat [flags]
//
// Flags:
//
//	-model string       Model ID (default: gemini-2.5-flash-preview-05-20)
//	-prompt string      System prompt ID (default: default)
//	-transcript string  Path to write the session transcript on exit
//
// Environment variables (a .env file in the working directory is also read):
//
//	GEMINI_API_KEY     API key (required)
//	GEMCHAT_MODEL      Model ID (overridden by -model)
//	GEMCHAT_PROMPT     System prompt ID (overridden by -prompt)
//	GEMCHAT_LOG_FILE   Path to a JSON log file (logging is off without it)
//	GEMCHAT_LOG_LEVEL  debug, info, warn, error (default: info)
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/fwojciec/gemchat"
	bt "github.com/fwojciec/gemchat/bubbletea"
	"github.com/fwojciec/gemchat/config"
	"github.com/fwojciec/gemchat/gemini"
	gemjson "github.com/fwojciec/gemchat/json"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "gemchat: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		modelFlag      = flag.String("model", "", "Model ID")
		promptFlag     = flag.String("prompt", "", "System prompt ID")
		transcriptPath = flag.String("transcript", "", "Path to write the session transcript on exit")
	)
	flag.Parse()

	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Flags win over environment.
	model := cfg.Model
	if *modelFlag != "" {
		model = *modelFlag
	}
	promptID := cfg.PromptID
	if *promptFlag != "" {
		promptID = *promptFlag
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	client, err := gemini.New(ctx, cfg.APIKey,
		gemini.WithModel(model),
		gemini.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	session, err := gemchat.NewSession(fmt.Sprintf("%d", os.Getpid()), promptID)
	if err != nil {
		return err
	}

	chat := gemchat.NewChat(client, gemchat.WithLogger(logger))

	send := func(ctx context.Context, s *gemchat.Session, text string) (gemchat.AssistantMessage, error) {
		return chat.Send(ctx, s, text)
	}
	upload := func(ctx context.Context, s *gemchat.Session, path string) (gemchat.FileRef, error) {
		return uploadFile(ctx, client, s, path)
	}

	tuiModel := bt.New(send, upload, session, client.Model(), gemchat.DefaultTheme())
	if err := bt.Run(ctx, tuiModel); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}

	// Save transcript on exit.
	if *transcriptPath != "" && len(session.Messages) > 0 {
		if err := gemjson.Save(*transcriptPath, session); err != nil {
			return fmt.Errorf("save transcript: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Transcript saved to %s\n", *transcriptPath)
	}

	return nil
}

// uploadFile validates and uploads a local file, attaching it to the session.
func uploadFile(ctx context.Context, client *gemini.Client, s *gemchat.Session, path string) (gemchat.FileRef, error) {
	f, err := os.Open(path)
	if err != nil {
		return gemchat.FileRef{}, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return gemchat.FileRef{}, err
	}

	return gemchat.UploadTo(ctx, client, s, f, info.Name(), info.Size())
}

// newLogger builds the file-backed logger. Without GEMCHAT_LOG_FILE all log
// output is discarded so it never corrupts the TUI.
func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	if cfg.LogFile == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := config.NewLogger(f, cfg.LogLevel)
	return logger, func() { _ = f.Close() }, nil
}
