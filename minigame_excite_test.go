package main

import "testing"

func TestExciteCountsConfirmsOnly(t *testing.T) {
	g := NewExciteMinigame(testContext(1, nil))

	g.HandleInput(TokenA)
	g.HandleInput(TokenLClick)
	g.HandleInput(TokenLeft)
	g.HandleInput(TokenB)
	g.HandleInput(TokenA)

	if g.Excitement() != 3 {
		t.Errorf("Excitement() = %d, want 3", g.Excitement())
	}
}

func TestExciteResultHalvesScore(t *testing.T) {
	ctx := testContext(1, nil)
	g := NewExciteMinigame(ctx)

	for i := 0; i < 7; i++ {
		g.HandleInput(TokenA)
	}
	res := runUntilResult(t, g, ctx.Config.Training.Excite.WindowTicks+5)

	if res.Score != 7 {
		t.Errorf("Score = %d, want 7", res.Score)
	}
	if res.Deltas[StatExcitement] != 3 {
		t.Errorf("Deltas[excitement] = %d, want 3", res.Deltas[StatExcitement])
	}
}

func TestExciteSingleTapStillCounts(t *testing.T) {
	ctx := testContext(1, nil)
	g := NewExciteMinigame(ctx)

	g.HandleInput(TokenA)
	res := runUntilResult(t, g, ctx.Config.Training.Excite.WindowTicks+5)

	// 1回でも押したら最低1は上がる
	if res.Deltas[StatExcitement] != 1 {
		t.Errorf("Deltas[excitement] = %d, want 1", res.Deltas[StatExcitement])
	}
}

func TestExciteSaturatesAtMax(t *testing.T) {
	ctx := testContext(1, nil)
	g := NewExciteMinigame(ctx)

	for i := 0; i < ctx.Config.Training.Excite.Max*3; i++ {
		g.HandleInput(TokenA)
	}
	if g.Excitement() != ctx.Config.Training.Excite.Max {
		t.Errorf("Excitement() = %d, want %d（飽和）", g.Excitement(), ctx.Config.Training.Excite.Max)
	}
}
