package track

// NowPlaying is what the player reports about the current video. The
// title is raw and untrusted: user-generated, arbitrary unicode, full
// of metadata noise. Channel is whatever the player puts in the artist
// field, usually an uploader or channel name rather than the artist.
type NowPlaying struct {
	RawTitle     string
	Channel      string
	DurationSecs int64
	ArtworkURL   string
	SourceID     string
}

func (n *NowPlaying) IsValid() bool {
	return n != nil && n.RawTitle != ""
}

// IsSameVideo compares by the player's stable id when both sides have
// one, otherwise by title. Used to tell a genuine video change from a
// metadata refresh of the same video.
func (n *NowPlaying) IsSameVideo(other *NowPlaying) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.SourceID != "" && other.SourceID != "" {
		return n.SourceID == other.SourceID
	}
	return n.RawTitle == other.RawTitle
}
