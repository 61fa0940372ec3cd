package player

import (
	"testing"

	"github.com/godbus/dbus/v5"
)

func TestNowPlayingFromMetadata(t *testing.T) {
	metadata := map[string]dbus.Variant{
		keyTitle:    dbus.MakeVariant("Artist - Track (Official Video)"),
		keyArtist:   dbus.MakeVariant([]string{"SomeChannel"}),
		keyArtURL:   dbus.MakeVariant("https://example.com/thumb.jpg"),
		keyTrackID:  dbus.MakeVariant(dbus.ObjectPath("/org/mpris/tracks/42")),
		keyLengthUS: dbus.MakeVariant(int64(187_000_000)),
	}

	got := nowPlayingFromMetadata(metadata)

	if got.RawTitle != "Artist - Track (Official Video)" {
		t.Errorf("RawTitle = %q", got.RawTitle)
	}
	if got.Channel != "SomeChannel" {
		t.Errorf("Channel = %q", got.Channel)
	}
	if got.SourceID != "/org/mpris/tracks/42" {
		t.Errorf("SourceID = %q", got.SourceID)
	}
	if got.DurationSecs != 187 {
		t.Errorf("DurationSecs = %d", got.DurationSecs)
	}
}

func TestNowPlayingFromMetadataMissingKeys(t *testing.T) {
	got := nowPlayingFromMetadata(map[string]dbus.Variant{})

	if got.IsValid() {
		t.Fatal("empty metadata should not be a valid video")
	}
}

func TestMetadataDurationIgnoresNegatives(t *testing.T) {
	metadata := map[string]dbus.Variant{
		keyLengthUS: dbus.MakeVariant(int64(-5)),
	}
	if got := metadataDurationSecs(metadata, keyLengthUS); got != 0 {
		t.Fatalf("duration = %d, want 0", got)
	}
}

func TestMetadataArtistAsPlainString(t *testing.T) {
	metadata := map[string]dbus.Variant{
		keyArtist: dbus.MakeVariant("SoloChannel"),
	}
	if got := metadataFirstString(metadata, keyArtist); got != "SoloChannel" {
		t.Fatalf("artist = %q", got)
	}
}
