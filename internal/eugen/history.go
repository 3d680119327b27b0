package eugen

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Game is one ladder game scraped from the HTML history page. Score is the
// player's Elo change; its sign determines Result.
type Game struct {
	GameID   string
	Score    float64
	Result   string // "victory" or "defeat"
	PlayedAt time.Time
}

// The history endpoint serves an HTML fragment, not JSON. These pull out the
// per-game id, the signed Elo delta and the client-side timestamp.
var (
	gameIDRe = regexp.MustCompile(`gameid=([a-f0-9]{32})`)
	scoreRe  = regexp.MustCompile(`\(\d+/\d+(?: (-?\d*\.\d+))?\)`)
	timeRe   = regexp.MustCompile(`myDate=new Date\((\d+\.\d+)\)`)
)

// GameHistory fetches one page of a player's ladder history.
func (c *Client) GameHistory(eugenID string, page int) ([]Game, error) {
	body, err := c.getBody(fmt.Sprintf("/gamehistory/list?userid=%s&page=%d", eugenID, page))
	if err != nil {
		return nil, err
	}
	return parseGameHistory(body), nil
}

// parseGameHistory extracts games from the history page markup. Entries whose
// score group is missing are skipped: those are unranked games the page lists
// without an Elo delta.
func parseGameHistory(body string) []Game {
	ids := gameIDRe.FindAllStringSubmatch(body, -1)
	scores := scoreRe.FindAllStringSubmatch(body, -1)
	times := timeRe.FindAllStringSubmatch(body, -1)

	var games []Game
	for i := range ids {
		if i >= len(scores) || scores[i][1] == "" {
			continue
		}
		score, err := strconv.ParseFloat(scores[i][1], 64)
		if err != nil {
			continue
		}

		game := Game{GameID: ids[i][1], Score: score, Result: "victory"}
		if score < 0 {
			game.Result = "defeat"
		}
		if i < len(times) {
			if ms, err := strconv.ParseFloat(times[i][1], 64); err == nil {
				game.PlayedAt = time.Unix(int64(ms/1000), 0).UTC()
			}
		}
		games = append(games, game)
	}
	return games
}
