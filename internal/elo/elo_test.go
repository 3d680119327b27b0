package elo

import (
	"math"
	"testing"
)

func TestFavoredWinnerGainsLittle(t *testing.T) {
	delta := EstimateDelta(1500, 1400, ScoreWin)
	if delta <= 0 {
		t.Fatalf("favored winner delta = %v, want > 0", delta)
	}
	underdog := EstimateDelta(1400, 1500, ScoreWin)
	if underdog <= delta {
		t.Errorf("underdog win delta %v should exceed favored win delta %v", underdog, delta)
	}
}

func TestDeltaSignsMirror(t *testing.T) {
	win := EstimateDelta(1500, 1480, ScoreWin)
	loss := EstimateDelta(1500, 1480, ScoreLoss)
	if win <= 0 || loss >= 0 {
		t.Errorf("win delta %v should be positive, loss delta %v negative", win, loss)
	}
}

func TestEqualRatingsDraw(t *testing.T) {
	if d := EstimateDelta(1500, 1500, ScoreDraw); d != 0 {
		t.Errorf("draw between equals = %v, want 0", d)
	}
}

func TestKSchedule(t *testing.T) {
	cases := []struct {
		gap  float64
		want float64
	}{
		{0, 22},
		{39, 22},
		{40, 25},
		{99, 25},
		{100, 26},
		{500, 26},
	}
	for _, tc := range cases {
		if got := kFor(DefaultKTable, tc.gap); got != tc.want {
			t.Errorf("kFor(%v) = %v, want %v", tc.gap, got, tc.want)
		}
	}
}

func TestRoundedToTwoDecimals(t *testing.T) {
	d := EstimateDelta(1500, 1480, ScoreWin)
	if math.Abs(d*100-math.Round(d*100)) > 1e-9 {
		t.Errorf("delta %v not rounded to two decimals", d)
	}
}

func TestExactValue(t *testing.T) {
	// gap 0 → K 22, E = 0.5, win → 22 * 0.5 = 11.00
	if d := EstimateDelta(1500, 1500, ScoreWin); d != 11 {
		t.Errorf("delta = %v, want 11", d)
	}
}
