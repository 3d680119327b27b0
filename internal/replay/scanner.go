package replay

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// replayExt is the save-file extension the game client writes.
const replayExt = ".rpl3"

// The game embeds two JSON documents in an otherwise binary replay file: a
// session header that ends with the subject's seat index, and a result
// trailer appended when the match finishes. Files for unfinished matches have
// no trailer and are skipped.
var (
	headerRe  = regexp.MustCompile(`\{"game":.*?"ingamePlayerId":\d+\}`)
	trailerRe = regexp.MustCompile(`\{"result":.*?\}\}`)
)

// Scanner reads replay directories into RawReplay records.
type Scanner struct {
	log zerolog.Logger
}

// NewScanner returns a Scanner that reports per-file problems on log.
func NewScanner(log zerolog.Logger) *Scanner {
	return &Scanner{log: log}
}

// Scan walks the given directories and parses every replay file found,
// concurrently. Unreadable directories and malformed files are logged and
// skipped; they never abort the pass. Results are ordered by creation time
// ascending.
func (s *Scanner) Scan(ctx context.Context, dirs []string) ([]RawReplay, error) {
	var paths []string
	for _, dir := range dirs {
		abs, err := filepath.Abs(dir)
		if err != nil {
			s.log.Warn().Str("dir", dir).Err(err).Msg("skipping directory")
			continue
		}
		entries, err := os.ReadDir(abs)
		if err != nil {
			s.log.Warn().Str("dir", abs).Err(err).Msg("skipping directory")
			continue
		}
		s.log.Debug().Str("dir", abs).Msg("scanning directory")
		for _, e := range entries {
			if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), replayExt) {
				continue
			}
			paths = append(paths, filepath.Join(abs, e.Name()))
		}
	}

	var (
		mu      sync.Mutex
		replays []RawReplay
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for _, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := parseReplayFile(path)
			if err != nil {
				s.log.Warn().Str("file", path).Err(err).Msg("skipping replay")
				return nil
			}
			s.log.Debug().Str("file", r.FilePath).Time("created", r.CreatedAt).Msg("parsed replay")
			mu.Lock()
			replays = append(replays, r)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(replays, func(i, j int) bool {
		if !replays[i].CreatedAt.Equal(replays[j].CreatedAt) {
			return replays[i].CreatedAt.Before(replays[j].CreatedAt)
		}
		return replays[i].FileName < replays[j].FileName
	})
	return replays, nil
}

// seatedPlayer pairs a participant with its header key ("player_0", ...).
type seatedPlayer struct {
	Key    string
	Player RawParticipant
}

func parseReplayFile(path string) (RawReplay, error) {
	info, err := os.Stat(path)
	if err != nil {
		return RawReplay{}, fmt.Errorf("stat: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return RawReplay{}, fmt.Errorf("read: %w", err)
	}

	content := strings.ReplaceAll(string(data), "\n", "")
	headerDoc := headerRe.FindString(content)
	if headerDoc == "" {
		return RawReplay{}, fmt.Errorf("no session header found")
	}
	trailerDoc := trailerRe.FindString(content)
	if trailerDoc == "" {
		return RawReplay{}, fmt.Errorf("no result trailer found (match unfinished?)")
	}

	var header struct {
		Game           RawGame `json:"game"`
		IngamePlayerID int     `json:"ingamePlayerId"`
	}
	if err := json.Unmarshal([]byte(headerDoc), &header); err != nil {
		return RawReplay{}, fmt.Errorf("decode header: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(headerDoc), &fields); err != nil {
		return RawReplay{}, fmt.Errorf("decode header fields: %w", err)
	}
	players := make(map[string]RawParticipant)
	var seats []seatedPlayer
	for key, raw := range fields {
		if !strings.HasPrefix(key, "player_") {
			continue
		}
		var p RawParticipant
		if err := json.Unmarshal(raw, &p); err != nil {
			continue
		}
		players[key] = p
		seats = append(seats, seatedPlayer{Key: key, Player: p})
	}
	if len(seats) == 0 {
		return RawReplay{}, fmt.Errorf("no participants in header")
	}

	var trailer struct {
		Result RawResult `json:"result"`
	}
	if err := json.Unmarshal([]byte(trailerDoc), &trailer); err != nil {
		return RawReplay{}, fmt.Errorf("decode trailer: %w", err)
	}

	subjectKey, subjectID, err := locateSubject(seats, header.IngamePlayerID)
	if err != nil {
		return RawReplay{}, err
	}

	return RawReplay{
		FileName:  filepath.Base(path),
		FilePath:  path,
		CreatedAt: info.ModTime(),
		Match: RawMatch{
			Game:        header.Game,
			SubjectID:   subjectID,
			SubjectKey:  subjectKey,
			Players:     players,
			PlayerCount: len(players),
			Result:      trailer.Result,
		},
	}, nil
}

// locateSubject resolves the header's seat index to a participant key. Seats
// are numbered per side: participants sort by their key's numeric suffix,
// then side 0 seats before side 1, and the index counts through that order.
func locateSubject(seats []seatedPlayer, seatIndex int) (key, userID string, err error) {
	sort.Slice(seats, func(i, j int) bool {
		return seatNumber(seats[i].Key) < seatNumber(seats[j].Key)
	})
	var ordered []seatedPlayer
	for _, side := range []string{"0", "1"} {
		for _, s := range seats {
			if s.Player.Alliance == side {
				ordered = append(ordered, s)
			}
		}
	}
	if len(ordered) != len(seats) {
		// Participants with unexpected side values keep header order at the end.
		for _, s := range seats {
			if s.Player.Alliance != "0" && s.Player.Alliance != "1" {
				ordered = append(ordered, s)
			}
		}
	}
	if seatIndex < 0 || seatIndex >= len(ordered) {
		return "", "", fmt.Errorf("seat index %d out of range for %d participants", seatIndex, len(seats))
	}
	return ordered[seatIndex].Key, ordered[seatIndex].Player.UserID, nil
}

func seatNumber(key string) int {
	n, _ := strconv.Atoi(strings.TrimPrefix(key, "player_"))
	return n
}
