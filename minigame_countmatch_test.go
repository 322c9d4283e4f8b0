package main

import (
	"math/rand"
	"testing"
)

// tokenForCount は個数から答えのトークンを引きます（countForTokenの逆引き）。
func tokenForCount(t *testing.T, count int) InputToken {
	t.Helper()
	for tok, c := range countForToken {
		if c == count {
			return tok
		}
	}
	t.Fatalf("個数 %d に対応するトークンがありません", count)
	return ""
}

func wrongTokenForCount(t *testing.T, count int) InputToken {
	wrong := count%4 + 1
	return tokenForCount(t, wrong)
}

// predictCount は同じシードの乱数列から次ラウンドの表示個数を先読みします。
func predictCount(r *rand.Rand, maxCount int) int {
	return 1 + r.Intn(maxCount)
}

// passFlash はフラッシュ表示を終わらせて回答フェーズへ進めます。
func passFlash(t *testing.T, g *CountMatchMinigame) {
	t.Helper()
	for i := 0; i < g.cfg.FlashTicks; i++ {
		g.Update()
	}
	if g.Phase() != countMatchPhaseAnswer {
		t.Fatalf("フェーズ = %v, want countMatchPhaseAnswer", g.Phase())
	}
}

// passRoundEnd はラウンド終了処理を進めます。
func passRoundEnd(g *CountMatchMinigame) {
	for i := 0; i < g.cfg.FlashTicks/2; i++ {
		g.Update()
	}
}

func TestCountMatchCorrectAnswersAccumulate(t *testing.T) {
	const seed = 9
	ctx := testContext(seed, nil)
	maxCount := ctx.Config.Training.CountMatch.MaxCount
	oracle := rand.New(rand.NewSource(seed))
	g := NewCountMatchMinigame(ctx)

	// ラウンド1・2は正解、ラウンド3はわざと外す
	count := predictCount(oracle, maxCount)
	passFlash(t, g)
	g.HandleInput(tokenForCount(t, count))
	passRoundEnd(g)
	if g.Correct() != 1 || g.Round() != 2 {
		t.Fatalf("ラウンド1後: correct=%d round=%d, want 1/2", g.Correct(), g.Round())
	}

	count = predictCount(oracle, maxCount)
	passFlash(t, g)
	g.HandleInput(tokenForCount(t, count))
	passRoundEnd(g)
	if g.Correct() != 2 {
		t.Fatalf("ラウンド2後: correct=%d, want 2（累計が保持される）", g.Correct())
	}

	count = predictCount(oracle, maxCount)
	passFlash(t, g)
	g.HandleInput(wrongTokenForCount(t, count))
	passRoundEnd(g)

	res := runUntilResult(t, g, 5)
	if res.Score != 2 {
		t.Errorf("Score = %d, want 2", res.Score)
	}
	if res.Deltas[StatDiscipline] != 2 {
		t.Errorf("Deltas[discipline] = %d, want 2", res.Deltas[StatDiscipline])
	}
	if _, ok := res.Deltas[StatExcitement]; ok {
		t.Error("全問正解ではないのにボーナスが付きました")
	}
}

func TestCountMatchPerfectRunGetsBonus(t *testing.T) {
	const seed = 21
	ctx := testContext(seed, nil)
	maxCount := ctx.Config.Training.CountMatch.MaxCount
	rounds := ctx.Config.Training.CountMatch.Rounds
	oracle := rand.New(rand.NewSource(seed))
	g := NewCountMatchMinigame(ctx)

	for i := 0; i < rounds; i++ {
		count := predictCount(oracle, maxCount)
		passFlash(t, g)
		g.HandleInput(tokenForCount(t, count))
		passRoundEnd(g)
	}

	res := runUntilResult(t, g, 5)
	if res.Score != rounds {
		t.Errorf("Score = %d, want %d", res.Score, rounds)
	}
	if res.Deltas[StatExcitement] != 1 {
		t.Errorf("全問正解ボーナス = %d, want 1", res.Deltas[StatExcitement])
	}
}

func TestCountMatchTimeoutIsMiss(t *testing.T) {
	ctx := testContext(13, nil)
	g := NewCountMatchMinigame(ctx)

	passFlash(t, g)
	// 無回答のまま時間切れ
	for i := 0; i < g.cfg.AnswerTicks; i++ {
		g.Update()
	}
	if g.Phase() != countMatchPhaseRoundEnd {
		t.Fatalf("フェーズ = %v, want countMatchPhaseRoundEnd", g.Phase())
	}
	if g.Correct() != 0 {
		t.Errorf("時間切れなのにCorrect = %d", g.Correct())
	}
}

func TestCountMatchIgnoresInputDuringFlash(t *testing.T) {
	ctx := testContext(13, nil)
	g := NewCountMatchMinigame(ctx)

	g.HandleInput(TokenLeft)
	if g.Phase() != countMatchPhaseFlash {
		t.Errorf("フラッシュ中の入力でフェーズが動きました: %v", g.Phase())
	}
	if g.Correct() != 0 {
		t.Errorf("フラッシュ中の入力が採点されました: %d", g.Correct())
	}
}

func TestCountMatchSecondAnswerIgnored(t *testing.T) {
	const seed = 17
	ctx := testContext(seed, nil)
	oracle := rand.New(rand.NewSource(seed))
	g := NewCountMatchMinigame(ctx)

	count := predictCount(oracle, ctx.Config.Training.CountMatch.MaxCount)
	passFlash(t, g)
	g.HandleInput(wrongTokenForCount(t, count))
	// 答え直しはできない
	g.HandleInput(tokenForCount(t, count))
	if g.Correct() != 0 {
		t.Errorf("答え直しが採点されました: %d", g.Correct())
	}
}
