package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MPRIS_SERVICE", "")
	t.Setenv("LYRICAST_SEARCH_URL", "")
	t.Setenv("LYRICAST_SYNC_OFFSET", "")
	t.Setenv("LYRICAST_HIDE_HEADER", "")

	cfg := Load()

	if cfg.MprisService != DefaultMprisService {
		t.Errorf("MprisService = %q", cfg.MprisService)
	}
	if cfg.SearchURL != DefaultSearchURL {
		t.Errorf("SearchURL = %q", cfg.SearchURL)
	}
	if cfg.SyncOffset != 0 {
		t.Errorf("SyncOffset = %v", cfg.SyncOffset)
	}
	if cfg.HideHeader {
		t.Error("HideHeader = true")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("MPRIS_SERVICE", "org.mpris.MediaPlayer2.mpv")
	t.Setenv("LYRICAST_SEARCH_URL", "http://localhost:9999/search")
	t.Setenv("LYRICAST_SYNC_OFFSET", "-0.5")
	t.Setenv("LYRICAST_HIDE_HEADER", "yes")

	cfg := Load()

	if cfg.MprisService != "org.mpris.MediaPlayer2.mpv" {
		t.Errorf("MprisService = %q", cfg.MprisService)
	}
	if cfg.SearchURL != "http://localhost:9999/search" {
		t.Errorf("SearchURL = %q", cfg.SearchURL)
	}
	if cfg.SyncOffset != -0.5 {
		t.Errorf("SyncOffset = %v", cfg.SyncOffset)
	}
	if !cfg.HideHeader {
		t.Error("HideHeader = false")
	}
}

func TestLoadBadSyncOffsetFallsBack(t *testing.T) {
	t.Setenv("LYRICAST_SYNC_OFFSET", "not-a-number")

	if cfg := Load(); cfg.SyncOffset != 0 {
		t.Errorf("SyncOffset = %v, want 0", cfg.SyncOffset)
	}
}
