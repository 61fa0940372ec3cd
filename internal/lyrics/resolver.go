package lyrics

import (
	"context"
	"errors"
	"math"
	"sort"
	"sync"

	"github.com/lyricast/lyricast/internal/lrc"
	"github.com/lyricast/lyricast/internal/title"
)

// ErrNoLyricsFound reports that every search strategy came up empty, or
// that everything it found was instrumental. An expected outcome, not a
// failure.
var ErrNoLyricsFound = errors.New("no lyrics found")

// scoring weights. duration is a soft tiebreaker only, never a filter:
// a video's apparent duration (intros, "full video" cuts) commonly
// diverges from the canonical track duration upstream.
const (
	syncedBonus        = 10
	plainBonus         = 1
	durationCloseBonus = 5
	durationNearBonus  = 2
	durationCloseSecs  = 4
	durationNearSecs   = 15
)

// Resolution is the winning candidate's usable payload: plain text when
// available, parsed synced lines when available (either may be empty),
// plus the candidate itself for display.
type Resolution struct {
	Plain  string
	Synced []lrc.Line
	Source Candidate
}

// Scored pairs a pooled candidate with its ranking score, exposed so
// the CLI can explain a pick.
type Scored struct {
	Candidate Candidate
	Score     int
}

// Resolver finds the best lyrics record for a raw video title by
// fanning out one search per query variant, pooling everything, and
// ranking the pool.
type Resolver struct {
	searcher Searcher
}

func NewResolver(s Searcher) *Resolver {
	return &Resolver{searcher: s}
}

// Resolve runs the full pipeline for one video title. videoDurationSecs
// may be zero when the player did not report a duration.
func (r *Resolver) Resolve(ctx context.Context, rawTitle string, videoDurationSecs int64) (*Resolution, error) {
	ranked, err := r.Rank(ctx, rawTitle, videoDurationSecs)
	if err != nil {
		return nil, err
	}

	best := ranked[0].Candidate
	return &Resolution{
		Plain:  best.PlainLyrics,
		Synced: lrc.ParseSynced(best.SyncedLyrics),
		Source: best,
	}, nil
}

// Rank returns the deduplicated, filtered candidate pool in score
// order. Ties keep pool order, so a same-scored candidate from an
// earlier strategy (or earlier in the endpoint's response) wins.
func (r *Resolver) Rank(ctx context.Context, rawTitle string, videoDurationSecs int64) ([]Scored, error) {
	queries := BuildQueries(rawTitle)
	if len(queries) == 0 {
		return nil, ErrNoLyricsFound
	}

	pool := r.gather(ctx, queries)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, ErrNoLyricsFound
	}

	ranked := make([]Scored, len(pool))
	for i, c := range pool {
		ranked[i] = Scored{Candidate: c, Score: score(c, videoDurationSecs)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked, nil
}

// BuildQueries derives the search strategies for a raw title, in the
// order their results are pooled:
//
//  1. structured artist/track (or track-only) from the title parser
//  2. light-cleaned free text
//  3. heavy-cleaned free text, when it differs from the light one
func BuildQueries(rawTitle string) []Query {
	var queries []Query

	guess := title.Parse(rawTitle)
	switch {
	case guess.Artist != "" && guess.Track != "":
		queries = append(queries, Query{Artist: guess.Artist, Track: guess.Track})
	case guess.Track != "":
		queries = append(queries, Query{Track: guess.Track})
	}

	light := title.LightClean(rawTitle)
	if light != "" {
		queries = append(queries, Query{FreeText: light})
	}

	heavy := title.HeavyClean(rawTitle)
	if heavy != "" && heavy != light {
		queries = append(queries, Query{FreeText: heavy})
	}

	return queries
}

// gather fans the queries out concurrently and pools the results in
// strategy order, so latency is bounded by the slowest query while the
// tie-break order stays deterministic. A failed query contributes an
// empty slot; it never aborts its siblings.
func (r *Resolver) gather(ctx context.Context, queries []Query) []Candidate {
	results := make([][]Candidate, len(queries))

	var wg sync.WaitGroup
	for i, q := range queries {
		wg.Add(1)
		go func(slot int, q Query) {
			defer wg.Done()
			found, err := r.searcher.Search(ctx, q)
			if err != nil {
				return
			}
			results[slot] = found
		}(i, q)
	}
	wg.Wait()

	seen := make(map[int64]bool)
	var pool []Candidate
	for _, found := range results {
		for _, c := range found {
			if seen[c.ID] {
				continue
			}
			seen[c.ID] = true
			if c.Instrumental {
				continue
			}
			pool = append(pool, c)
		}
	}

	return pool
}

func score(c Candidate, videoDurationSecs int64) int {
	s := 0

	if c.SyncedLyrics != "" {
		s += syncedBonus
	}

	if videoDurationSecs > 0 {
		diff := math.Abs(c.Duration - float64(videoDurationSecs))
		switch {
		case diff < durationCloseSecs:
			s += durationCloseBonus
		case diff < durationNearSecs:
			s += durationNearBonus
		}
	}

	if c.PlainLyrics != "" {
		s += plainBonus
	}

	return s
}
