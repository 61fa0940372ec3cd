package player

import (
	"github.com/godbus/dbus/v5"

	"github.com/lyricast/lyricast/internal/track"
)

// mpris metadata keys. xesam:title carries the raw video title;
// xesam:artist is the uploader/channel for browser players.
const (
	keyTitle    = "xesam:title"
	keyArtist   = "xesam:artist"
	keyArtURL   = "mpris:artUrl"
	keyTrackID  = "mpris:trackid"
	keyLengthUS = "mpris:length"
)

func nowPlayingFromMetadata(metadata map[string]dbus.Variant) *track.NowPlaying {
	return &track.NowPlaying{
		RawTitle:     metadataString(metadata, keyTitle),
		Channel:      metadataFirstString(metadata, keyArtist),
		ArtworkURL:   metadataString(metadata, keyArtURL),
		SourceID:     metadataString(metadata, keyTrackID),
		DurationSecs: metadataDurationSecs(metadata, keyLengthUS),
	}
}

func metadataString(metadata map[string]dbus.Variant, key string) string {
	variant, exists := metadata[key]
	if !exists {
		return ""
	}

	switch typed := variant.Value().(type) {
	case string:
		return typed
	case dbus.ObjectPath:
		return string(typed)
	default:
		return ""
	}
}

// metadataFirstString handles keys that players report either as a
// plain string or as a list, like xesam:artist.
func metadataFirstString(metadata map[string]dbus.Variant, key string) string {
	variant, exists := metadata[key]
	if !exists {
		return ""
	}

	switch typed := variant.Value().(type) {
	case []string:
		if len(typed) > 0 {
			return typed[0]
		}
		return ""
	case string:
		return typed
	default:
		return ""
	}
}

func metadataDurationSecs(metadata map[string]dbus.Variant, key string) int64 {
	variant, exists := metadata[key]
	if !exists {
		return 0
	}

	switch typed := variant.Value().(type) {
	case int64:
		if typed <= 0 {
			return 0
		}
		return typed / 1_000_000
	case uint64:
		return int64(typed / 1_000_000)
	default:
		return 0
	}
}
