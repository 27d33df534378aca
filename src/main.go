// main.go - Entry point for DocChat
// This file handles environment setup, configuration loading, and launches the application

package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"docchat/src/app"
	"docchat/src/components/transcript"
	"docchat/src/components/viewer"
	"docchat/src/config"
	"docchat/src/models"
	"docchat/src/services/api"
	"docchat/src/services/auth"
	"docchat/src/services/logging"
	"docchat/src/services/pdfdoc"
	"docchat/src/services/storage/repositories"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "docchat:", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs go to a rotating file.
	logger, closer, err := logging.New(cfg.Log, cfg.SlogLevel())
	if err != nil {
		fmt.Fprintln(os.Stderr, "docchat:", err)
		os.Exit(1)
	}
	defer closer.Close()
	slog.SetDefault(logger)

	logger.Info("Starting DocChat", "version", version, "api", cfg.API.BaseURL)

	var renderer transcript.MarkdownRenderer = transcript.PlainRenderer{}
	if cfg.UI.Markdown {
		renderer = transcript.NewGlamourRenderer(cfg.UI.MarkdownStyle)
	}

	model := app.New(app.Options{
		Service:    api.NewClient(cfg.API.BaseURL, cfg.API.AuthURL, cfg.API.HTTPTimeout, logger),
		Tokens:     repositories.NewFileTokenRepository(cfg.TokenFile()),
		Logger:     logger,
		Renderer:   renderer,
		OpenPDF:    openPDF,
		CopyText:   clipboard.WriteAll,
		TokenValid: tokenStillValid(logger),
	})

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	// Set up graceful shutdown
	setupGracefulShutdown(program, logger)

	if _, err := program.Run(); err != nil {
		logger.Error("Application failed", "error", err)
		closer.Close()
		os.Exit(1)
	}

	logger.Info("Application completed successfully")
}

func openPDF(blob []byte) (viewer.Pages, error) {
	doc, err := pdfdoc.Open(blob)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// tokenStillValid drops saved tokens whose exp claim has passed. Tokens without
// readable claims are kept; the service has the final word.
func tokenStillValid(logger *slog.Logger) func(models.AuthToken) bool {
	return func(tok models.AuthToken) bool {
		claims, err := auth.Inspect(tok.AccessToken)
		if err != nil {
			logger.Warn("Saved token has unreadable claims", "error", err)
			return true
		}
		if claims.Expired(time.Now()) {
			logger.Info("Saved token expired", "user", tok.Username, "expired_at", claims.ExpiresAt)
			return false
		}
		return true
	}
}

// setupGracefulShutdown sets up signal handling for graceful shutdown
func setupGracefulShutdown(program *tea.Program, logger *slog.Logger) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Info("Received shutdown signal, cleaning up...")
		program.Quit()
	}()
}
