package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/max2697/SXSW-for-agents/internal/api"
	"github.com/max2697/SXSW-for-agents/internal/config"
	"github.com/max2697/SXSW-for-agents/internal/engine"
	"github.com/max2697/SXSW-for-agents/internal/filter"
	"github.com/max2697/SXSW-for-agents/internal/scrape"
	"github.com/max2697/SXSW-for-agents/internal/search"
	"github.com/max2697/SXSW-for-agents/internal/snapshot"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	entry := logger.WithField("service", "catalog-api")

	app := &cli.App{
		Name:  "sxsw-catalog",
		Usage: "Festival event catalog with filtered search and daily shortlists",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: func(c *cli.Context) error {
			level, err := logrus.ParseLevel(c.String("log-level"))
			if err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			logger.SetLevel(level)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Run the HTTP API service",
				Action: func(c *cli.Context) error {
					return serveCommand(entry)
				},
			},
			{
				Name:      "search",
				Usage:     "Run one query against the event list and print JSON results",
				ArgsUsage: "<query>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "mode", Usage: "Query mode: any, all or phrase", Value: "any"},
					&cli.IntFlag{Name: "limit", Usage: "Maximum results", Value: 10},
				},
				Action: func(c *cli.Context) error {
					return searchCommand(c, entry)
				},
			},
			{
				Name:  "shortlist",
				Usage: "Print the ranked daily shortlist for a topic as JSON",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "topic", Usage: "Shortlist topic preset", Value: "agents"},
					&cli.IntFlag{Name: "per-day", Usage: "Events per day", Value: 3},
				},
				Action: func(c *cli.Context) error {
					return shortlistCommand(c, entry)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		entry.Fatal(err)
	}
}

func serveCommand(entry *logrus.Entry) error {
	entry.Info("Starting Catalog API Service")

	cfg, eng, err := buildEngine(entry)
	if err != nil {
		return err
	}

	if spec := cfg.Snapshot.RefreshCron; spec != "" {
		c, err := eng.Store.ScheduleRefresh(spec)
		if err != nil {
			return fmt.Errorf("invalid refresh schedule: %w", err)
		}
		defer c.Stop()
		entry.Infof("Snapshot refresh scheduled: %s", spec)
	}

	server := api.NewServer(eng, entry)
	entry.Infof("Catalog API ready on %s", cfg.Server.Port)
	return server.Start(cfg.Server.Port)
}

func searchCommand(c *cli.Context, entry *logrus.Entry) error {
	query := c.Args().First()
	mode, err := search.ParseMode(c.String("mode"))
	if err != nil {
		return err
	}

	_, eng, err := buildEngine(entry)
	if err != nil {
		return err
	}

	hits, err := eng.Search(context.Background(), filter.Filters{}, query, mode, c.Int("limit"))
	if err != nil {
		return err
	}
	return printJSON(hits)
}

func shortlistCommand(c *cli.Context, entry *logrus.Entry) error {
	_, eng, err := buildEngine(entry)
	if err != nil {
		return err
	}

	days, err := eng.Shortlist(context.Background(), c.String("topic"), c.Int("per-day"))
	if err != nil {
		return err
	}
	return printJSON(days)
}

func buildEngine(entry *logrus.Entry) (*config.Config, *engine.Engine, error) {
	cfg := config.Load()

	if cfg.Snapshot.PresetsFile != "" {
		if err := config.ApplyPresetsFile(cfg.Snapshot.PresetsFile); err != nil {
			return nil, nil, err
		}
		entry.Infof("Loaded presets from %s", cfg.Snapshot.PresetsFile)
	}

	source, err := buildSource(cfg, entry)
	if err != nil {
		return nil, nil, err
	}

	store := snapshot.NewStore(source, cfg.Snapshot.TTL, entry)
	return cfg, engine.New(cfg, entry, store), nil
}

// buildSource picks the event source: scraped schedule pages win, then a
// JSON origin, then the local file.
func buildSource(cfg *config.Config, entry *logrus.Entry) (snapshot.Source, error) {
	if len(cfg.Scrape.Pages) > 0 {
		scraper := scrape.New(cfg.Scrape.RequestTimeout, cfg.Scrape.UserAgent, cfg.Scrape.EnableRobotsCheck, entry)
		return scrape.NewSource(scraper, cfg.Scrape.Pages), nil
	}
	if cfg.Snapshot.OriginURL != "" {
		return snapshot.NewHTTPSource(cfg.Snapshot.OriginURL, cfg.Snapshot.FetchTimeout), nil
	}
	if cfg.Snapshot.FilePath != "" {
		return snapshot.NewFileSource(cfg.Snapshot.FilePath), nil
	}
	return nil, fmt.Errorf("no event source configured")
}

func printJSON(payload interface{}) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
