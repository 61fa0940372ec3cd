package main

import (
	"fmt"
	"strings"

	"github.com/godbus/dbus/v5"
	"github.com/spf13/cobra"

	"github.com/lyricast/lyricast/internal/player"
)

var playerCmd = &cobra.Command{
	Use:   "player",
	Short: "mpris player utilities",
	Long:  `discover mpris-capable players and inspect what they report as playing.`,
}

var playerListCmd = &cobra.Command{
	Use:   "list",
	Short: "list available mpris players",
	RunE: func(cmd *cobra.Command, args []string) error {
		bus, err := dbus.ConnectSessionBus()
		if err != nil {
			return fmt.Errorf("failed to connect to session bus: %w", err)
		}
		defer bus.Close()

		var names []string
		err = bus.BusObject().Call("org.freedesktop.DBus.ListNames", 0).Store(&names)
		if err != nil {
			return fmt.Errorf("failed to list dbus names: %w", err)
		}

		var services []string
		for _, name := range names {
			if strings.HasPrefix(name, "org.mpris.MediaPlayer2.") {
				services = append(services, name)
			}
		}

		if len(services) == 0 {
			fmt.Println("no mpris players found")
			fmt.Println("\nstart a video in a browser or open a media player and try again")
			return nil
		}

		fmt.Printf("found %d mpris player(s):\n\n", len(services))
		for _, service := range services {
			if identity := playerIdentity(bus, service); identity != "" {
				fmt.Printf("  %s (%s)\n", service, identity)
			} else {
				fmt.Printf("  %s\n", service)
			}
		}

		fmt.Println("\nuse --mpris-service to pick one")

		return nil
	},
}

var playerCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "show what the player reports as playing",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)

		bus, err := dbus.ConnectSessionBus()
		if err != nil {
			return fmt.Errorf("failed to connect to session bus: %w", err)
		}
		defer bus.Close()

		source, err := player.NewSource(bus, cfg.MprisService)
		if err != nil {
			return fmt.Errorf("failed to connect to player: %w", err)
		}

		video, err := source.CurrentVideo()
		if err != nil {
			fmt.Println("no video currently playing")
			return nil
		}

		fmt.Printf("title:    %s\n", video.RawTitle)
		if video.Channel != "" {
			fmt.Printf("channel:  %s\n", video.Channel)
		}
		if video.DurationSecs > 0 {
			fmt.Printf("duration: %d:%02d\n", video.DurationSecs/60, video.DurationSecs%60)
		}
		if video.ArtworkURL != "" {
			fmt.Printf("artwork:  %s\n", video.ArtworkURL)
		}

		if pos, err := source.Position(); err == nil {
			fmt.Printf("position: %d:%02d\n", pos/60, pos%60)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(playerCmd)

	playerCmd.AddCommand(playerListCmd)
	playerCmd.AddCommand(playerCurrentCmd)
}

func playerIdentity(bus *dbus.Conn, serviceName string) string {
	obj := bus.Object(serviceName, "/org/mpris/MediaPlayer2")
	variant, err := obj.GetProperty("org.mpris.MediaPlayer2.Identity")
	if err != nil {
		return ""
	}

	identity, ok := variant.Value().(string)
	if !ok {
		return ""
	}

	return identity
}
