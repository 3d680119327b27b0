// Package eugen provides a minimal client for the Eugen backend that serves
// WARNO ladder data: the frozen-Elo leaderboard view, per-player profile
// stats and the HTML game-history pages.
package eugen

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// defaultBaseURL is the root endpoint of the Eugen backend.
const defaultBaseURL = "https://api.eugnet.com"

// Client is a read-only Eugen backend client. None of the endpoints require
// authentication.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client against the given base URL; pass the empty
// string for the production backend.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// LeaderboardRow is one ranked player from the frozen-Elo view.
type LeaderboardRow struct {
	EugenID string
	Elo     float64
}

// couchRow mirrors the CouchDB view row shape the leaderboard endpoint
// returns: id "u29_<eugenid>", value the Elo as a string.
type couchRow struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

type couchView struct {
	TotalRows int        `json:"total_rows"`
	Rows      []couchRow `json:"rows"`
}

// Leaderboard fetches the ranked ladder ordered as the backend serves it.
// Rows with malformed ids or Elo values are skipped.
func (c *Client) Leaderboard() ([]LeaderboardRow, error) {
	var view couchView
	if err := c.getJSON("/stats/_design/LB29/_view/freezed_ELO", &view); err != nil {
		return nil, err
	}

	rows := make([]LeaderboardRow, 0, len(view.Rows))
	for _, row := range view.Rows {
		_, id, ok := strings.Cut(row.ID, "_")
		if !ok {
			continue
		}
		elo, err := strconv.ParseFloat(row.Value, 64)
		if err != nil {
			continue
		}
		rows = append(rows, LeaderboardRow{EugenID: id, Elo: elo})
	}
	return rows, nil
}

// Profile is the subset of the per-player stats document the CLI reports.
// Every numeric field arrives as a string.
type Profile struct {
	ELO        string `json:"ELO"`
	RankedWin  string `json:"ranked_win"`
	RankedLoss string `json:"ranked_loss"`
	LadderRank string `json:"ELO_LB_rank"`
	LadderElo  string `json:"ELO_LB_value"`
	Level      string `json:"@level"`
	LastGame   string `json:"ranked_last_game"`
}

// Profile fetches a player's stats document by Eugen user id.
func (c *Client) Profile(eugenID string) (*Profile, error) {
	var p Profile
	if err := c.getJSON("/stats/u29_"+eugenID, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) getJSON(path string, out any) error {
	resp, err := c.http.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: HTTP %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) getBody(path string) (string, error) {
	resp, err := c.http.Get(c.baseURL + path)
	if err != nil {
		return "", fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("GET %s: HTTP %d", path, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
