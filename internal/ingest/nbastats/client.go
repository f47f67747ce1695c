// Package nbastats pulls player game logs and team metrics from the
// stats.nba.com API and normalizes them into canonical records.
//
// Unlike the HTML-scraping path, exhausted fetch retries against the
// aggregate endpoints propagate as errors: a silently empty league game
// log is worse than a loud failure.
package nbastats

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/anthonysuherli/featherweight/internal/htmltable"
	"github.com/anthonysuherli/featherweight/internal/logger"
)

const BaseURL = "https://stats.nba.com/stats"

// SeasonType selects regular-season or playoff data.
type SeasonType string

const (
	RegularSeason SeasonType = "Regular Season"
	Playoffs      SeasonType = "Playoffs"
)

// ParseSeasonType validates a user-supplied season type.
func ParseSeasonType(s string) (SeasonType, error) {
	switch SeasonType(s) {
	case RegularSeason, Playoffs:
		return SeasonType(s), nil
	case "":
		return RegularSeason, nil
	default:
		return "", fmt.Errorf("invalid season type %q (want %q or %q)", s, RegularSeason, Playoffs)
	}
}

// Fetcher retrieves the body of a URL, retrying transient failures.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Headers the stats API requires before it will answer.
var requiredHeaders = map[string]string{
	"Accept":  "application/json",
	"Referer": "https://www.nba.com/",
}

// RequiredHeaders returns the request headers the API expects, for
// configuring the shared fetch client.
func RequiredHeaders() map[string]string {
	h := make(map[string]string, len(requiredHeaders))
	for k, v := range requiredHeaders {
		h[k] = v
	}
	return h
}

// response is the API's envelope: every endpoint answers with one or more
// result sets of column headers plus untyped rows.
type response struct {
	Resource   string      `json:"resource"`
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string          `json:"name"`
	Headers []string        `json:"headers"`
	RowSet  [][]interface{} `json:"rowSet"`
}

// Client wraps the stats API behind table-shaped results.
type Client struct {
	fetcher Fetcher
	baseURL string
	log     *logrus.Entry
}

type Option func(*Client)

// WithBaseURL points the client at a different host. Tests use this.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

func NewClient(f Fetcher, opts ...Option) *Client {
	c := &Client{
		fetcher: f,
		baseURL: BaseURL,
		log:     logger.Get().WithField("component", "nbastats"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// resultTable calls an endpoint and converts its first result set into a
// table. Fetch errors are returned as-is; a response that is not the
// expected shape is a parse failure and also returned as an error for the
// caller to downgrade or propagate per its own policy.
func (c *Client) resultTable(ctx context.Context, endpoint string, params url.Values) (htmltable.Table, error) {
	u := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())

	body, err := c.fetcher.Fetch(ctx, u)
	if err != nil {
		return htmltable.Table{}, err
	}

	// A blocked or throttled client gets an HTML error page back.
	if len(body) > 0 && body[0] == '<' {
		return htmltable.Table{}, fmt.Errorf("%s returned an HTML error page", endpoint)
	}

	var resp response
	if err := json.Unmarshal(body, &resp); err != nil {
		return htmltable.Table{}, fmt.Errorf("decoding %s response: %w", endpoint, err)
	}
	if len(resp.ResultSets) == 0 {
		return htmltable.Table{}, fmt.Errorf("%s response contained no result sets", endpoint)
	}

	return tableFromResultSet(resp.ResultSets[0]), nil
}

// tableFromResultSet flattens a result set into the same untyped table
// shape the HTML extractor produces, so the cleaning step downstream is
// shared.
func tableFromResultSet(rs resultSet) htmltable.Table {
	t := htmltable.Table{
		ID:      rs.Name,
		Columns: append([]string(nil), rs.Headers...),
		Rows:    make([][]string, 0, len(rs.RowSet)),
	}
	for _, raw := range rs.RowSet {
		row := make([]string, len(rs.Headers))
		for i := range rs.Headers {
			if i < len(raw) {
				row[i] = cellString(raw[i])
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func cellString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return htmltable.Missing
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
