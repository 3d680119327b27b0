package replay

import (
	"sort"
	"strconv"
	"time"

	"github.com/pable/go-warno-stats/internal/division"
	"github.com/pable/go-warno-stats/internal/elo"
	"github.com/pable/go-warno-stats/internal/identity"
)

// CommonReplayData is the shape shared by all normalized replays; everything
// is from the subject's perspective.
type CommonReplayData struct {
	CreatedAt  time.Time
	FileName   string
	PlayerID   string
	PlayerName string
	Rank       string // raw; may be empty or non-numeric
	Division   string
	DeckCode   string
	Duration   int // seconds
	Map        string
	Result     Outcome
}

// Replay1v1 is a normalized two-participant match.
type Replay1v1 struct {
	CommonReplayData
	EnemyID       string
	EnemyName     string
	EnemyDivision string
	EnemyRank     string
	EnemyDeck     string
	PlayerRating  int // 0 when the raw field did not parse
	EnemyRating   int
	EloDelta      float64 // estimated; 0 when either rating is missing
}

// TeamPlayer is one non-subject participant of a team match.
type TeamPlayer struct {
	ID       string
	Name     string
	Division string
	Rank     string
	DeckCode string
}

// Replay2v2 is a normalized four-participant match: the subject, one ally and
// exactly two enemies.
type Replay2v2 struct {
	CommonReplayData
	Ally    TeamPlayer
	Enemies [2]TeamPlayer
}

// SeenPlayer is a distinct (id, display name) pair observed during one pass.
type SeenPlayer struct {
	ID   string
	Name string
}

// ParseResult is the accepted subset of one normalization pass.
type ParseResult struct {
	OneVsOne []Replay1v1
	TwoVsTwo []Replay2v2
	Seen     []SeenPlayer
}

// Config scopes a normalization pass. Zero values disable each filter.
type Config struct {
	// TrackedIDs restricts the pass to matches whose subject is listed.
	TrackedIDs map[string]struct{}
	// StartDate drops records created before it.
	StartDate time.Time
}

// Tracks reports whether the config accepts the given subject id.
func (c Config) Tracks(id string) bool {
	if len(c.TrackedIDs) == 0 {
		return true
	}
	_, ok := c.TrackedIDs[id]
	return ok
}

// Normalizer converts raw match records into replay entities, updating the
// alias map as a side effect. Records that are malformed or out of scope are
// silently dropped; that is expected and frequent (observer slots, matches
// belonging to untracked accounts), not an error.
type Normalizer struct {
	divisions *division.Resolver
	aliases   *identity.AliasMap
	cfg       Config

	seen map[string]string
}

// NewNormalizer returns a Normalizer writing alias sightings into aliases.
func NewNormalizer(divisions *division.Resolver, aliases *identity.AliasMap, cfg Config) *Normalizer {
	return &Normalizer{
		divisions: divisions,
		aliases:   aliases,
		cfg:       cfg,
		seen:      make(map[string]string),
	}
}

// NormalizeAll runs one pass over raws and returns the accepted subset in
// chronological order.
func (n *Normalizer) NormalizeAll(raws []RawReplay) ParseResult {
	sorted := make([]RawReplay, len(raws))
	copy(sorted, raws)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	var res ParseResult
	for _, raw := range sorted {
		one, two := n.normalize(raw)
		if one != nil {
			res.OneVsOne = append(res.OneVsOne, *one)
		}
		if two != nil {
			res.TwoVsTwo = append(res.TwoVsTwo, *two)
		}
	}

	ids := make([]string, 0, len(n.seen))
	for id := range n.seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		res.Seen = append(res.Seen, SeenPlayer{ID: id, Name: n.seen[id]})
	}
	return res
}

// normalize maps one raw record to a 1v1 or 2v2 replay, or to (nil, nil) when
// the record is rejected.
func (n *Normalizer) normalize(raw RawReplay) (*Replay1v1, *Replay2v2) {
	m := raw.Match
	subject, ok := m.Players[m.SubjectKey]
	if m.SubjectKey == "" || !ok {
		return nil, nil
	}
	// The header records the subject id twice; a disagreement means the seat
	// resolution went wrong and the record cannot be trusted.
	if m.SubjectID != "" && m.SubjectID != subject.UserID {
		return nil, nil
	}
	if !n.cfg.Tracks(subject.UserID) {
		return nil, nil
	}
	if !n.cfg.StartDate.IsZero() && raw.CreatedAt.Before(n.cfg.StartDate) {
		return nil, nil
	}

	n.observe(subject)

	common := CommonReplayData{
		CreatedAt:  raw.CreatedAt,
		FileName:   raw.FileName,
		PlayerID:   subject.UserID,
		PlayerName: subject.Name,
		Rank:       subject.Rank,
		Division:   n.divisions.Name(subject.DeckCode),
		DeckCode:   subject.DeckCode,
		Duration:   parseSeconds(m.Result.Duration),
		Map:        MapName(m.Game.Map),
		Result:     ClassifyOutcome(m.Result.Victory),
	}

	switch m.PlayerCount {
	case 2:
		return n.normalize1v1(m, subject, common), nil
	case 4:
		return nil, n.normalize2v2(m, subject, common)
	default:
		return nil, nil
	}
}

func (n *Normalizer) normalize1v1(m RawMatch, subject RawParticipant, common CommonReplayData) *Replay1v1 {
	var enemy RawParticipant
	found := false
	for key, p := range m.Players {
		if key != m.SubjectKey {
			enemy = p
			found = true
			break
		}
	}
	if !found || enemy.UserID == subject.UserID {
		return nil
	}
	n.observe(enemy)

	r := &Replay1v1{
		CommonReplayData: common,
		EnemyID:          enemy.UserID,
		EnemyName:        enemy.Name,
		EnemyDivision:    n.divisions.Name(enemy.DeckCode),
		EnemyRank:        enemy.Rank,
		EnemyDeck:        enemy.DeckCode,
	}
	subjectRating, okS := parseRating(subject.Rating)
	enemyRating, okE := parseRating(enemy.Rating)
	if okS && okE {
		r.PlayerRating = subjectRating
		r.EnemyRating = enemyRating
		r.EloDelta = elo.EstimateDelta(float64(subjectRating), float64(enemyRating), common.Result.Score())
	}
	return r
}

func (n *Normalizer) normalize2v2(m RawMatch, subject RawParticipant, common CommonReplayData) *Replay2v2 {
	subjectAlliance := n.divisions.Alliance(subject.DeckCode)

	var allies, enemies []RawParticipant
	for key, p := range m.Players {
		if key == m.SubjectKey {
			continue
		}
		if division.SameAlliance(subjectAlliance, n.divisions.Alliance(p.DeckCode)) {
			allies = append(allies, p)
		} else {
			enemies = append(enemies, p)
		}
	}
	if len(allies) != 1 || len(enemies) != 2 {
		return nil
	}

	n.observe(allies[0])
	n.observe(enemies[0])
	n.observe(enemies[1])

	// Deterministic enemy slot order regardless of map iteration.
	if enemies[1].UserID < enemies[0].UserID {
		enemies[0], enemies[1] = enemies[1], enemies[0]
	}

	return &Replay2v2{
		CommonReplayData: common,
		Ally:             n.teamPlayer(allies[0]),
		Enemies:          [2]TeamPlayer{n.teamPlayer(enemies[0]), n.teamPlayer(enemies[1])},
	}
}

func (n *Normalizer) teamPlayer(p RawParticipant) TeamPlayer {
	return TeamPlayer{
		ID:       p.UserID,
		Name:     p.Name,
		Division: n.divisions.Name(p.DeckCode),
		Rank:     p.Rank,
		DeckCode: p.DeckCode,
	}
}

func (n *Normalizer) observe(p RawParticipant) {
	n.aliases.Increment(p.UserID, p.Name)
	if _, ok := n.seen[p.UserID]; !ok && p.UserID != "" && p.Name != "" {
		n.seen[p.UserID] = p.Name
	}
}

func parseSeconds(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// parseRating parses a raw rating string. The absent channel is explicit:
// ok is false for empty or non-numeric input, while a legitimate "0" parses.
func parseRating(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}
