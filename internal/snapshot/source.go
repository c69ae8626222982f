package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/max2697/SXSW-for-agents/internal/event"
)

// Source supplies a full event list. Implementations do the actual I/O;
// the Store only caches.
type Source interface {
	Load(ctx context.Context) ([]event.Event, error)
}

// HTTPSource fetches the event list as a JSON array from an origin URL.
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource creates an origin-backed source with a tuned client.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		url: url,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

func (s *HTTPSource) Load(ctx context.Context) ([]event.Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-200 status code: %d", resp.StatusCode)
	}

	var events []event.Event
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("failed to decode event list: %w", err)
	}
	return events, nil
}

// FileSource reads the event list from a local JSON file.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Load(ctx context.Context) ([]event.Event, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read event file: %w", err)
	}
	var events []event.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event list: %w", err)
	}
	return events, nil
}

// StaticSource serves a fixed in-memory list. Useful in tests and for the
// one-shot CLI paths.
type StaticSource struct {
	events []event.Event
}

func NewStaticSource(events []event.Event) *StaticSource {
	return &StaticSource{events: events}
}

func (s *StaticSource) Load(ctx context.Context) ([]event.Event, error) {
	return s.events, nil
}
