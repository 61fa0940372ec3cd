package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lyricast/lyricast/internal/lyrics"
)

var (
	resolveDuration int64
	resolveVerbose  bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <video title>",
	Short: "resolve a raw video title to lyrics",
	Long: `runs the full resolution pipeline for a raw video title: query variants,
pooled search, dedup, scoring. prints the winning candidate.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rawTitle := strings.Join(args, " ")

		cfg := loadConfig(cmd)

		client, err := lyrics.NewClient(cfg.SearchURL)
		if err != nil {
			return err
		}
		resolver := lyrics.NewResolver(client)

		queries := lyrics.BuildQueries(rawTitle)
		if len(queries) == 0 {
			return fmt.Errorf("nothing searchable in title %q", rawTitle)
		}

		fmt.Printf("resolving: %s\n\n", rawTitle)
		fmt.Println("strategies:")
		for i, q := range queries {
			fmt.Printf("  %d. %s\n", i+1, q)
		}
		fmt.Println()

		ranked, err := resolver.Rank(cmd.Context(), rawTitle, resolveDuration)
		if errors.Is(err, lyrics.ErrNoLyricsFound) {
			fmt.Println("no lyrics found")
			return nil
		}
		if err != nil {
			return fmt.Errorf("resolution failed: %w", err)
		}

		if resolveVerbose {
			fmt.Printf("pool (%d candidates):\n", len(ranked))
			for _, s := range ranked {
				fmt.Printf("  [%2d] #%-8d %s — %s (%.0fs)%s\n",
					s.Score, s.Candidate.ID,
					s.Candidate.ArtistName, s.Candidate.TrackName,
					s.Candidate.Duration, lyricsKinds(s.Candidate))
			}
			fmt.Println()
		}

		best := ranked[0].Candidate
		fmt.Println("selected:")
		fmt.Printf("  track:    %s\n", best.TrackName)
		fmt.Printf("  artist:   %s\n", best.ArtistName)
		if best.AlbumName != "" {
			fmt.Printf("  album:    %s\n", best.AlbumName)
		}
		if best.Duration > 0 {
			fmt.Printf("  duration: %.0fs\n", best.Duration)
		}
		fmt.Printf("  score:    %d\n", ranked[0].Score)

		if best.SyncedLyrics != "" {
			fmt.Printf("  synced:   %d lines\n", len(strings.Split(best.SyncedLyrics, "\n")))
		} else {
			fmt.Printf("  synced:   none\n")
		}
		if best.PlainLyrics != "" {
			fmt.Printf("  plain:    %d lines\n", len(strings.Split(best.PlainLyrics, "\n")))
		} else {
			fmt.Printf("  plain:    none\n")
		}

		return nil
	},
}

func lyricsKinds(c lyrics.Candidate) string {
	var kinds []string
	if c.SyncedLyrics != "" {
		kinds = append(kinds, "synced")
	}
	if c.PlainLyrics != "" {
		kinds = append(kinds, "plain")
	}
	if len(kinds) == 0 {
		return ""
	}
	return " [" + strings.Join(kinds, ",") + "]"
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().Int64VarP(&resolveDuration, "duration", "d", 0, "video duration in seconds, used as a soft tiebreaker")
	resolveCmd.Flags().BoolVarP(&resolveVerbose, "verbose", "v", false, "print the whole scored candidate pool")
}
