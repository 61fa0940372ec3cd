package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/godbus/dbus/v5"
	"github.com/spf13/cobra"

	"github.com/lyricast/lyricast/internal/config"
	"github.com/lyricast/lyricast/internal/lyrics"
	"github.com/lyricast/lyricast/internal/player"
	"github.com/lyricast/lyricast/internal/terminal"
	"github.com/lyricast/lyricast/internal/ui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "start the interactive lyrics viewer",
	Long:  `starts the terminal viewer with live synchronized lyrics for the playing video.`,
	RunE:  runViewer,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func loadConfig(cmd *cobra.Command) *config.Config {
	// environment first, flags override
	cfg := config.Load()

	if mprisService != "" {
		cfg.MprisService = mprisService
	}
	if searchURL != "" {
		cfg.SearchURL = searchURL
	}
	if cmd.Flags().Changed("sync-offset") {
		cfg.SyncOffset = syncOffset
	}
	if cmd.Flags().Changed("hide-header") {
		cfg.HideHeader = hideHeader
	}

	return cfg
}

func runViewer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		<-sigChan
		cancel()
		terminal.Reset()
		os.Exit(0)
	}()

	defer terminal.Reset()

	cfg := loadConfig(cmd)

	bus, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("failed to connect to session bus: %w", err)
	}
	defer bus.Close()

	source, err := player.NewSource(bus, cfg.MprisService)
	if err != nil {
		return fmt.Errorf("failed to create player source: %w", err)
	}

	if err := source.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not set up dbus signals: %v\n", err)
	}

	client, err := lyrics.NewClient(cfg.SearchURL)
	if err != nil {
		return fmt.Errorf("failed to create lyrics client: %w", err)
	}

	model := ui.NewModel(ui.ModelConfig{
		Source:     source,
		Resolver:   lyrics.NewResolver(client),
		SyncOffset: cfg.SyncOffset,
		HideHeader: cfg.HideHeader,
		TermCaps:   terminal.DetectCapabilities(),
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	go func() {
		<-ctx.Done()
		source.Stop()
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running bubble tea: %w", err)
	}

	return nil
}
