package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lyricast/lyricast/internal/title"
)

var titleCmd = &cobra.Command{
	Use:   "title <raw title>",
	Short: "show how a raw video title is parsed",
	Long:  `prints the structured guess and both cleaned variants for a raw video title, useful for debugging bad matches.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := strings.Join(args, " ")

		guess := title.Parse(raw)
		light := title.LightClean(raw)
		heavy := title.HeavyClean(raw)

		fmt.Printf("raw:    %s\n\n", raw)

		if guess.Artist != "" {
			fmt.Printf("artist: %s\n", guess.Artist)
		} else {
			fmt.Printf("artist: (none)\n")
		}
		if guess.Track != "" {
			fmt.Printf("track:  %s\n", guess.Track)
		} else {
			fmt.Printf("track:  (none)\n")
		}

		fmt.Printf("light:  %s\n", light)
		if heavy != light {
			fmt.Printf("heavy:  %s\n", heavy)
		} else {
			fmt.Printf("heavy:  (same as light)\n")
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(titleCmd)
}
