// Package lyrics resolves noisy video titles to lyrics records from the
// lrclib search API.
package lyrics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/lyricast/lyricast/internal/config"
)

// Candidate is one record returned by the search endpoint. Immutable
// once received.
type Candidate struct {
	ID           int64   `json:"id"`
	TrackName    string  `json:"trackName"`
	ArtistName   string  `json:"artistName"`
	AlbumName    string  `json:"albumName"`
	Duration     float64 `json:"duration"`
	Instrumental bool    `json:"instrumental"`
	PlainLyrics  string  `json:"plainLyrics"`
	SyncedLyrics string  `json:"syncedLyrics"`
}

// Query is one search request. Exactly one shape is used per request:
// artist+track, track only, or free text.
type Query struct {
	Artist   string
	Track    string
	FreeText string
}

func (q Query) values() url.Values {
	v := url.Values{}
	switch {
	case q.FreeText != "":
		v.Set("q", q.FreeText)
	case q.Artist != "" && q.Track != "":
		v.Set("artist_name", q.Artist)
		v.Set("track_name", q.Track)
	case q.Track != "":
		v.Set("track_name", q.Track)
	}
	return v
}

func (q Query) String() string {
	if q.FreeText != "" {
		return fmt.Sprintf("q=%q", q.FreeText)
	}
	if q.Artist != "" {
		return fmt.Sprintf("artist=%q track=%q", q.Artist, q.Track)
	}
	return fmt.Sprintf("track=%q", q.Track)
}

// Searcher is the read-only search dependency the resolver fans out
// over. Satisfied by Client; tests substitute fakes.
type Searcher interface {
	Search(ctx context.Context, q Query) ([]Candidate, error)
}

var (
	httpClient     *http.Client
	httpClientOnce sync.Once
)

func getHTTPClient() *http.Client {
	httpClientOnce.Do(func() {
		transport := &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   2 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 5,
			IdleConnTimeout:     60 * time.Second,
			TLSHandshakeTimeout: 2 * time.Second,
		}
		httpClient = &http.Client{
			Transport: transport,
			Timeout:   time.Duration(config.HTTPTimeoutSeconds) * time.Second,
		}
	})
	return httpClient
}

// Client talks to an lrclib-compatible search endpoint. No auth, no
// pagination: only the first page the endpoint returns is used.
type Client struct {
	baseURL string
}

func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("empty search url")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid search url %q: %w", baseURL, err)
	}
	return &Client{baseURL: baseURL}, nil
}

// Search issues one query and decodes the first page of results. A
// non-OK status means "no results", not an error; transport and decode
// failures are errors and left to the caller to degrade.
func (c *Client) Search(ctx context.Context, q Query) ([]Candidate, error) {
	params := q.values()
	if len(params) == 0 {
		return nil, errors.New("empty search query")
	}

	reqCtx, cancel := context.WithTimeout(ctx, time.Duration(config.HTTPTimeoutSeconds)*time.Second)
	defer cancel()

	requestURL := c.baseURL + "?" + params.Encode()
	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("User-Agent", "lyricast/1.0")

	resp, err := getHTTPClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
		return nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}

	var candidates []Candidate
	if err := json.Unmarshal(body, &candidates); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	return candidates, nil
}
