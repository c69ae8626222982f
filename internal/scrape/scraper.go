// Package scrape turns published schedule pages into event records. It is
// the data-acquisition collaborator feeding the snapshot layer; the search
// core never touches the network.
package scrape

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/temoto/robotstxt"
	"golang.org/x/sync/singleflight"

	"github.com/max2697/SXSW-for-agents/internal/event"
)

// Scraper fetches schedule pages politely: one tuned HTTP client, a
// declared User-Agent, and a robots.txt check against each origin before
// the first fetch.
type Scraper struct {
	client      *http.Client
	logger      *logrus.Entry
	userAgent   string
	checkRobots bool

	robotsGroup singleflight.Group
	mu          sync.Mutex
	robotsCache map[string]*robotstxt.RobotsData
}

func New(timeout time.Duration, userAgent string, checkRobots bool, logger *logrus.Entry) *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		logger:      logger,
		userAgent:   userAgent,
		checkRobots: checkRobots,
		robotsCache: make(map[string]*robotstxt.RobotsData),
	}
}

// Scrape downloads one schedule page and parses its event cards.
func (s *Scraper) Scrape(ctx context.Context, pageURL string) ([]event.Event, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule URL: %w", err)
	}

	if s.checkRobots {
		allowed, err := s.allowed(ctx, parsed)
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, fmt.Errorf("robots.txt disallows %s for %s", parsed.Path, s.userAgent)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-200 status code: %d", resp.StatusCode)
	}

	events, err := ParseSchedule(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing error: %w", err)
	}

	s.logger.WithFields(logrus.Fields{"url": pageURL, "events": len(events)}).Info("Scraped schedule page")
	return events, nil
}

// allowed fetches and caches robots.txt for the page's origin and tests the
// page path against the group for our User-Agent. The fill is guarded by a
// per-host single-flight so concurrent first scrapes of one host fetch
// robots.txt once.
func (s *Scraper) allowed(ctx context.Context, page *url.URL) (bool, error) {
	s.mu.Lock()
	robots, ok := s.robotsCache[page.Host]
	s.mu.Unlock()

	if !ok {
		v, err, _ := s.robotsGroup.Do(page.Host, func() (interface{}, error) {
			// A concurrent flight may have filled the cache while this
			// call waited.
			s.mu.Lock()
			cached, ok := s.robotsCache[page.Host]
			s.mu.Unlock()
			if ok {
				return cached, nil
			}

			fetched, err := s.fetchRobots(ctx, page)
			if err != nil {
				return nil, err
			}

			s.mu.Lock()
			s.robotsCache[page.Host] = fetched
			s.mu.Unlock()
			return fetched, nil
		})
		if err != nil {
			return false, err
		}
		robots = v.(*robotstxt.RobotsData)
	}

	return robots.FindGroup(s.userAgent).Test(page.Path), nil
}

func (s *Scraper) fetchRobots(ctx context.Context, page *url.URL) (*robotstxt.RobotsData, error) {
	robotsURL := fmt.Sprintf("%s://%s/robots.txt", page.Scheme, page.Host)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create robots request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch robots.txt: %w", err)
	}
	defer resp.Body.Close()

	robots, err := robotstxt.FromResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse robots.txt: %w", err)
	}
	return robots, nil
}

// Source adapts a Scraper over a fixed page list into a snapshot source.
type Source struct {
	scraper *Scraper
	pages   []string
}

func NewSource(scraper *Scraper, pages []string) *Source {
	return &Source{scraper: scraper, pages: pages}
}

// Load scrapes every configured page and concatenates the results. Page
// failures are logged and skipped; an error is returned only when nothing
// was collected and at least one page failed.
func (s *Source) Load(ctx context.Context) ([]event.Event, error) {
	var events []event.Event
	var lastErr error

	for _, page := range s.pages {
		scraped, err := s.scraper.Scrape(ctx, page)
		if err != nil {
			s.scraper.logger.WithError(err).WithField("url", page).Error("Failed to scrape schedule page")
			lastErr = err
			continue
		}
		events = append(events, scraped...)
	}

	if len(events) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return events, nil
}
