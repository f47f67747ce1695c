// Package bref scrapes Basketball Reference player game logs, league
// season stats, and team ratings into canonical records.
//
// Fetch failures here are reported as empty results rather than errors: a
// single missing page should not take down a batch of scrapes. Parse
// failures behave the same way. Only configuration mistakes (an unknown
// stat type) are returned as errors.
package bref

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/anthonysuherli/featherweight/internal/htmltable"
	"github.com/anthonysuherli/featherweight/internal/logger"
	"github.com/anthonysuherli/featherweight/pkg/models"
)

const BaseURL = "https://www.basketball-reference.com"

// Fetcher retrieves the body of a URL. Satisfied by fetch.Client and
// fetch.Browser.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// StatType selects which league-wide stats table to scrape.
type StatType string

const (
	PerGame   StatType = "per_game"
	Totals    StatType = "totals"
	PerMinute StatType = "per_minute"
	PerPoss   StatType = "per_poss"
	Advanced  StatType = "advanced"
)

// statTables maps each stat type to the table id on its season page.
// These ids are a stable external contract.
var statTables = map[StatType]string{
	PerGame:   "per_game_stats",
	Totals:    "totals_stats",
	PerMinute: "per_minute_stats",
	PerPoss:   "per_poss_stats",
	Advanced:  "advanced_stats",
}

// ParseStatType validates a user-supplied stat type string.
func ParseStatType(s string) (StatType, error) {
	st := StatType(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := statTables[st]; !ok {
		return "", fmt.Errorf("invalid stat type %q (want per_game, totals, per_minute, per_poss, or advanced)", s)
	}
	return st, nil
}

// Scraper fetches and normalizes Basketball Reference pages.
type Scraper struct {
	fetcher Fetcher
	baseURL string
	log     *logrus.Entry
}

func NewScraper(f Fetcher) *Scraper {
	return &Scraper{
		fetcher: f,
		baseURL: BaseURL,
		log:     logger.Get().WithField("component", "bref"),
	}
}

// PlayerGameLogs fetches one player's game log for a season. season is
// the ending year (2025 for the 2024-25 season). A failed fetch or a page
// without the game-log table yields an empty slice, not an error.
func (s *Scraper) PlayerGameLogs(ctx context.Context, name string, season int, playoffs bool) ([]models.GameStatRecord, error) {
	slug := urlSlug(name)
	if slug == "" {
		s.log.WithField("player", name).Error("could not derive URL slug")
		return nil, nil
	}

	gameType := "gamelog"
	if playoffs {
		gameType = "playoffs"
	}
	url := fmt.Sprintf("%s/players/%c/%s/%s/%d", s.baseURL, slug[0], slug, gameType, season)

	s.log.WithFields(logrus.Fields{"player": name, "season": season}).Info("fetching game logs")
	body, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		s.log.WithError(err).WithField("player", name).Warn("game log fetch failed, returning empty result")
		return nil, nil
	}

	tables := htmltable.Extract(string(body), "pgl_basic")
	if len(tables) == 0 {
		s.log.WithField("player", name).Warn("no game log table found")
		return nil, nil
	}

	cleaned := htmltable.Clean(tables[0], gameLogNumericColumns, gameLogRenames)
	return gameLogRecords(cleaned, name, strconv.Itoa(season)), nil
}

// SeasonStats fetches the league-wide stats table for a season. An
// unknown stat type is a configuration error and fails immediately.
func (s *Scraper) SeasonStats(ctx context.Context, season int, statType StatType, playoffs bool) ([]models.GameStatRecord, error) {
	tableID, ok := statTables[statType]
	if !ok {
		return nil, fmt.Errorf("invalid stat type %q", statType)
	}

	base := "leagues"
	if playoffs {
		base = "playoffs"
	}
	url := fmt.Sprintf("%s/%s/NBA_%d_%s.html", s.baseURL, base, season, statType)

	s.log.WithFields(logrus.Fields{"season": season, "stat_type": statType}).Info("fetching season stats")
	body, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		s.log.WithError(err).WithField("season", season).Warn("season stats fetch failed, returning empty result")
		return nil, nil
	}

	tables := htmltable.Extract(string(body), tableID)
	if len(tables) == 0 {
		s.log.WithFields(logrus.Fields{"season": season, "stat_type": statType}).Warn("no stats table found")
		return nil, nil
	}

	cleaned := htmltable.Clean(tables[0], seasonNumericColumns, seasonRenames)
	return seasonStatRecords(cleaned, strconv.Itoa(season)), nil
}

// TeamRatings fetches the team offensive/defensive ratings table for a
// season. The result is the cleaned table itself; ratings have no
// per-player canonical record.
func (s *Scraper) TeamRatings(ctx context.Context, season int) (htmltable.Table, error) {
	url := fmt.Sprintf("%s/leagues/NBA_%d_ratings.html", s.baseURL, season)

	s.log.WithField("season", season).Info("fetching team ratings")
	body, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		s.log.WithError(err).WithField("season", season).Warn("team ratings fetch failed, returning empty result")
		return htmltable.Table{}, nil
	}

	tables := htmltable.Extract(string(body), "ratings")
	if len(tables) == 0 {
		s.log.WithField("season", season).Warn("no ratings table found")
		return htmltable.Table{}, nil
	}

	return htmltable.Clean(tables[0], nil, nil), nil
}

// urlSlug converts a player name to the site's URL slug: first five
// letters of the last name, first two of the first name, then "01"
// ("LeBron James" -> "jamesle01"). Returns "" when a slug cannot be
// derived.
func urlSlug(name string) string {
	parts := strings.Fields(strings.ToLower(name))
	if len(parts) < 2 {
		return ""
	}
	first, last := parts[0], parts[len(parts)-1]
	if len(last) > 5 {
		last = last[:5]
	}
	if len(first) > 2 {
		first = first[:2]
	}
	return last + first + "01"
}
