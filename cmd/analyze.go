package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/spf13/cobra"

	"github.com/pable/go-warno-stats/internal/identity"
	"github.com/pable/go-warno-stats/internal/replay"
	"github.com/pable/go-warno-stats/internal/stats"
)

const analyzeSystemPrompt = `You are a WARNO ranked-ladder analyst. You are given structured data from a
replay-parsing tool and a question from the player.

Rules:
- Answer ONLY from the data provided. Never invent or estimate statistics.
- Always cite specific numbers when making a claim.
- If the data is insufficient to answer confidently, say so explicitly.
- Be concise and actionable — focus on what the player can actually improve.
- Avoid generic WARNO advice unless it directly explains a pattern in the data.

Metrics glossary:
- Win rate: wins ÷ games, in percent. Draws count as games but not wins.
- Weighted score: win rate discounted by sample size; use it to compare rows
  with different game counts.
- Elo delta: estimated ladder-rating change per game, from both players'
  pre-game ratings.
- Division: the deck's formation (e.g. 82nd Airborne); NATO and PACT
  divisions never share a team in ranked.
- Rank buckets: opponent ladder position in bands of 50 ("1-50" is the top).
- Duration buckets: game length in 10-minute bands; "40m+" games usually
  went to the score cap.`

var (
	analyzeModel  string
	analyzeAPIKey string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <question>",
	Short: "AI-powered grounded analysis of your replays (requires ANTHROPIC_API_KEY)",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeModel, "model", "claude-haiku-4-5-20251001", "Anthropic model to use")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Anthropic API key (falls back to $ANTHROPIC_API_KEY)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	question := args[0]

	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	result, aliases, err := scanReplays(cmd, cfg)
	if err != nil {
		return err
	}
	if len(result.OneVsOne) == 0 && len(result.TwoVsTwo) == 0 {
		return fmt.Errorf("no ranked games found in the configured replay directories")
	}

	contextJSON, err := buildAnalysisContext(result, aliases)
	if err != nil {
		return fmt.Errorf("build context: %w", err)
	}

	return callAnthropic(cmd.Context(), analyzeAPIKey, analyzeModel, contextJSON, question)
}

// buildAnalysisContext serialises the aggregated ladder data into compact
// JSON for the model.
func buildAnalysisContext(result replay.ParseResult, aliases *identity.AliasMap) (string, error) {
	s1 := stats.Compute1v1(result.OneVsOne)
	s2 := stats.Compute2v2(result.TwoVsTwo)

	type groupEntry struct {
		Name    string  `json:"name"`
		Games   int     `json:"games"`
		Wins    int     `json:"wins"`
		WinRate float64 `json:"win_rate"`
		Score   float64 `json:"weighted_score"`
	}
	groups := func(rows []stats.GroupStat) []groupEntry {
		out := make([]groupEntry, 0, len(rows))
		for _, r := range rows {
			out = append(out, groupEntry{r.Key, r.Games, r.Victories, r.WinRate, r.WeightedScore()})
		}
		return out
	}

	type opponentEntry struct {
		Name    string  `json:"name"`
		Games   int     `json:"games"`
		Wins    int     `json:"wins"`
		WinRate float64 `json:"win_rate"`
	}
	opponents := make([]opponentEntry, 0)
	for _, o := range stats.Opponents(result.OneVsOne) {
		opponents = append(opponents, opponentEntry{
			Name: aliases.CommonName(o.ID), Games: o.Games, Wins: o.Victories, WinRate: o.WinRate,
		})
	}

	overview := func(c stats.Common) map[string]any {
		return map[string]any{
			"games":               c.TotalGames,
			"wins":                c.WonGames,
			"win_rate":            c.WinRate,
			"longest_win_streak":  c.LongestWinStreak,
			"longest_loss_streak": c.LongestLossStreak,
			"avg_duration_s":      int(c.AverageDuration),
		}
	}

	doc := map[string]any{
		"one_vs_one": map[string]any{
			"overview":        overview(s1.Common),
			"own_divisions":   groups(s1.Divisions),
			"enemy_divisions": groups(s1.EnemyDivisions),
			"maps":            groups(s1.Maps),
			"by_enemy_rank":   s1.ByEnemyRank,
			"by_duration":     s1.ByDuration,
			"opponents":       opponents,
		},
		"two_vs_two": map[string]any{
			"overview":             overview(s2.Common),
			"own_division_pairs":   s2.AllyDivisionPairs,
			"enemy_division_pairs": s2.EnemyDivisionPairs,
			"maps":                 groups(s2.Maps),
		},
	}

	b, err := json.Marshal(doc)
	return string(b), err
}

// callAnthropic streams a response from the Anthropic API and prints it to stdout.
func callAnthropic(ctx context.Context, apiKey, modelID, dataJSON, question string) error {
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("no API key: set ANTHROPIC_API_KEY or use --api-key")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	userMsg := fmt.Sprintf("DATA:\n%s\n\nQUESTION: %s", dataJSON, question)

	fmt.Fprintln(os.Stdout, "\n─── AI Analysis ─────────────────────────────────────")

	stream := client.Messages.NewStreaming(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(modelID),
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: analyzeSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userMsg)),
		},
	})

	for stream.Next() {
		evt := stream.Current()
		if evt.Type == "content_block_delta" {
			delta := evt.AsContentBlockDelta()
			if delta.Delta.Type == "text_delta" {
				fmt.Fprint(os.Stdout, delta.Delta.AsTextDelta().Text)
			}
		}
	}
	fmt.Fprintln(os.Stdout, "\n─────────────────────────────────────────────────────")

	if err := stream.Err(); err != nil {
		// Provide a cleaner error message for common API errors.
		errStr := err.Error()
		if strings.Contains(errStr, "401") || strings.Contains(errStr, "authentication") {
			return fmt.Errorf("API authentication failed — check your API key")
		}
		return fmt.Errorf("streaming error: %w", err)
	}
	return nil
}
