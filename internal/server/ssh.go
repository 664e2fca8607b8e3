// Package server serves the desktop over SSH so visitors can reach the
// portfolio with nothing but an ssh client.
package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/ssh"
	"charm.land/wish/v2"
	"charm.land/wish/v2/bubbletea"
	"charm.land/wish/v2/logging"

	"github.com/deskfolio/deskfolio/internal/app"
	"github.com/deskfolio/deskfolio/internal/config"
	"github.com/deskfolio/deskfolio/internal/input"
	"github.com/deskfolio/deskfolio/internal/theme"
)

// Config holds the SSH server settings.
type Config struct {
	Host    string
	Port    string
	KeyPath string // host key path, generated when missing
}

// Start runs the SSH server until the context is canceled, then shuts
// it down gracefully.
func Start(ctx context.Context, cfg Config) error {
	hostKeyPath := cfg.KeyPath
	if hostKeyPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("could not resolve home directory: %w", err)
		}
		hostKeyPath = filepath.Join(homeDir, ".ssh", "deskfolio_host_key")
	}

	srv, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(teaHandler),
			logging.Middleware(),
		),
	)
	if err != nil {
		return fmt.Errorf("could not create SSH server: %w", err)
	}

	go func() {
		log.Printf("serving the desktop on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != ssh.ErrServerClosed {
			log.Printf("SSH server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down SSH server")
	return srv.Shutdown(ctx)
}

// teaHandler builds one desktop per SSH session. Every visitor gets
// their own window manager; nothing is shared between sessions.
func teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, active := sess.Pty()
	if !active {
		return nil, nil
	}

	userConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Printf("using default config for %s: %v", sess.User(), err)
		userConfig = config.DefaultConfig()
	}
	theme.Initialize(userConfig.Appearance.Theme)

	app.SetInputHandler(input.HandleInput)

	d := app.NewDesktop(userConfig, nil)
	d.Resize(pty.Window.Width, pty.Window.Height)

	return d, []tea.ProgramOption{
		tea.WithFPS(config.NormalFPS),
	}
}
