package config

import (
	"os"
	"strconv"
	"time"
)

const (
	// browsers expose the playing video tab over mpris, which is where
	// the noisy video titles come from
	DefaultMprisService = "org.mpris.MediaPlayer2.chromium"
	DefaultSearchURL    = "https://lrclib.net/api/search"
	HTTPTimeoutSeconds  = 10
	PollInterval        = 250 * time.Millisecond
)

type Config struct {
	MprisService string
	SearchURL    string
	SyncOffset   float64
	HideHeader   bool
}

func Load() *Config {
	syncOffsetStr := getEnvOrDefault("LYRICAST_SYNC_OFFSET", "0")
	syncOffset, err := strconv.ParseFloat(syncOffsetStr, 64)
	if err != nil {
		syncOffset = 0
	}

	hideHeaderStr := getEnvOrDefault("LYRICAST_HIDE_HEADER", "false")
	hideHeader := hideHeaderStr == "1" || hideHeaderStr == "true" || hideHeaderStr == "yes"

	return &Config{
		MprisService: getEnvOrDefault("MPRIS_SERVICE", DefaultMprisService),
		SearchURL:    getEnvOrDefault("LYRICAST_SEARCH_URL", DefaultSearchURL),
		SyncOffset:   syncOffset,
		HideHeader:   hideHeader,
	}
}

func getEnvOrDefault(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
