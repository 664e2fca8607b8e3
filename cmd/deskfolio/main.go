// Package main implements deskfolio, a desktop-environment portfolio
// that runs entirely in the terminal: draggable windows, a dock, a
// menu bar, and a handful of simulated applications.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/deskfolio/deskfolio/internal/app"
	"github.com/deskfolio/deskfolio/internal/config"
	"github.com/deskfolio/deskfolio/internal/input"
	"github.com/deskfolio/deskfolio/internal/server"
	"github.com/deskfolio/deskfolio/internal/theme"
)

// Version information (set by goreleaser).
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "deskfolio",
		Short: "A desktop-environment portfolio for your terminal",
		Long: `deskfolio renders a small desktop environment in the terminal:
draggable windows, a dock, a menu bar, and a set of simulated
applications that together make up a portfolio.`,
		Example: `  # Run the desktop
  deskfolio

  # Serve it over SSH
  deskfolio ssh --port 2222

  # Edit the configuration
  deskfolio config edit`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocal()
		},
		SilenceUsage: true,
	}

	var sshPort, sshHost, sshKeyPath string
	sshCmd := &cobra.Command{
		Use:   "ssh",
		Short: "Serve the desktop over SSH",
		Long: `Serve the desktop over SSH so visitors can reach it with a plain
ssh client. A host key is generated automatically when none is given.`,
		Example: `  # Start on the default port
  deskfolio ssh

  # Custom port and host key
  deskfolio ssh --port 2222 --key-path /path/to/host_key`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSSH(sshHost, sshPort, sshKeyPath)
		},
	}
	sshCmd.Flags().StringVar(&sshPort, "port", "2222", "SSH server port")
	sshCmd.Flags().StringVar(&sshHost, "host", "localhost", "SSH server host")
	sshCmd.Flags().StringVar(&sshKeyPath, "key-path", "", "Path to SSH host key (auto-generated if not specified)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the deskfolio configuration",
	}
	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printConfigPath()
		},
	}
	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit the configuration in $EDITOR",
		RunE: func(cmd *cobra.Command, args []string) error {
			return editConfigFile()
		},
	}
	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset the configuration to defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			return resetConfig()
		},
	}
	configCmd.AddCommand(configPathCmd, configEditCmd, configResetCmd)

	rootCmd.AddCommand(sshCmd, configCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s", version, commit, date)),
	); err != nil {
		os.Exit(1)
	}
}

// filterMouseMotion drops mouse motion events outside of an active
// drag; at all-motion tracking they otherwise dominate the event loop.
func filterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return msg
	}
	desktop, ok := model.(*app.Desktop)
	if !ok || desktop.Drag.Active() {
		return msg
	}
	return nil
}

func runLocal() error {
	app.SetInputHandler(input.HandleInput)

	userConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Printf("could not load config, using defaults: %v", err)
		userConfig = config.DefaultConfig()
	}
	theme.Initialize(userConfig.Appearance.Theme)

	done := make(chan struct{})
	defer close(done)
	reloads, err := config.Watch(done)
	if err != nil {
		log.Printf("config hot reload disabled: %v", err)
		reloads = nil
	}

	desktop := app.NewDesktop(userConfig, reloads)

	p := tea.NewProgram(
		desktop,
		tea.WithFPS(config.NormalFPS),
		tea.WithFilter(filterMouseMotion),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

func runSSH(host, port, keyPath string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		cancel()
	}()

	return server.Start(ctx, server.Config{Host: host, Port: port, KeyPath: keyPath})
}

func printConfigPath() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

func editConfigFile() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if _, err := config.LoadUserConfig(); err != nil {
			return fmt.Errorf("could not create config file: %w", err)
		}
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		for _, e := range []string{"vim", "vi", "nano"} {
			if _, err := exec.LookPath(e); err == nil {
				editor = e
				break
			}
		}
	}
	if editor == "" {
		return fmt.Errorf("no editor found, set $EDITOR")
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func resetConfig() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("This will overwrite your configuration at:\n  %s\n\n", path)
		fmt.Printf("Reset to defaults? (yes/no): ")
		var response string
		fmt.Scanln(&response)
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "yes" && response != "y" {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	if err := config.SaveConfig(config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("Configuration reset: %s\n", path)
	return nil
}
