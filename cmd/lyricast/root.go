package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// global flags
	mprisService string
	searchURL    string
	syncOffset   float64
	hideHeader   bool
)

var rootCmd = &cobra.Command{
	Use:   "lyricast",
	Short: "synchronized lyrics for whatever video is playing",
	Long: `lyricast watches an mpris-capable player (a browser tab playing a music
video, spotify, mpv) and resolves the noisy video title to synced lyrics
from lrclib, tracked live against the playback clock.

when run without a subcommand, it starts the interactive viewer.`,
	Version: "1.0.0",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runViewer(cmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&mprisService, "mpris-service", "m", "", "mpris service name (e.g., org.mpris.MediaPlayer2.chromium)")
	rootCmd.PersistentFlags().StringVar(&searchURL, "search-url", "", "custom lrclib search api url")
	rootCmd.PersistentFlags().Float64VarP(&syncOffset, "sync-offset", "s", 0, "initial sync offset in seconds")
	rootCmd.PersistentFlags().BoolVarP(&hideHeader, "hide-header", "H", false, "hide header section")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
