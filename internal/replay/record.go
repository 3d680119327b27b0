// Package replay turns raw save-file match records into analysis-ready
// entities: it scans replay directories, extracts the JSON documents the game
// client embeds in each file, and normalizes them into 1v1 and 2v2 replays.
package replay

import "time"

// RawParticipant carries the per-player fields consumed from a match record.
// Every value arrives as a string, numeric or not; normalization decides what
// parses and what degrades.
type RawParticipant struct {
	Alliance string `json:"PlayerAlliance"`
	DeckCode string `json:"PlayerDeckContent"`
	Rating   string `json:"PlayerElo"`
	Level    string `json:"PlayerLevel"`
	Name     string `json:"PlayerName"`
	Rank     string `json:"PlayerRank"`
	UserID   string `json:"PlayerUserId"`
}

// RawGame is the session header embedded at the start of a replay file.
type RawGame struct {
	Map       string `json:"Map"`
	GameMode  string `json:"GameMode"`
	GameType  string `json:"GameType"`
	Version   string `json:"Version"`
	SessionID string `json:"UniqueSessionId"`
}

// RawResult is the outcome trailer appended when the match ends. Duration is
// seconds as a numeric string; Victory is an opaque result code.
type RawResult struct {
	Duration string `json:"Duration"`
	Victory  string `json:"Victory"`
}

// RawMatch is one merged match record.
type RawMatch struct {
	Game        RawGame                   `json:"game"`
	SubjectID   string                    `json:"localPlayerEugenId"`
	SubjectKey  string                    `json:"localPlayerKey"`
	Players     map[string]RawParticipant `json:"players"`
	PlayerCount int                       `json:"playerCount"`
	Result      RawResult                 `json:"result"`
}

// RawReplay is a RawMatch plus its file provenance.
type RawReplay struct {
	FileName  string    `json:"fileName"`
	FilePath  string    `json:"filePath"`
	CreatedAt time.Time `json:"createdAt"`
	Match     RawMatch  `json:"warno"`
}
