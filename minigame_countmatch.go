package main

// かぞえっこ。アイコンが一瞬だけ表示され、いくつあったかを方向キーで答えます。
// LEFT=1 UP=2 RIGHT=3 DOWN=4。正解するたび累計スコアが増え、
// ラウンドをまたいでもスコアは保持されます。

type countMatchPhase int

const (
	countMatchPhaseFlash countMatchPhase = iota
	countMatchPhaseAnswer
	countMatchPhaseRoundEnd
	countMatchPhaseResult
)

// 方向トークンと答えの個数の対応。
var countForToken = map[InputToken]int{
	TokenLeft:  1,
	TokenUp:    2,
	TokenRight: 3,
	TokenDown:  4,
}

type CountMatchMinigame struct {
	ctx *MinigameContext
	cfg CountMatchConfig

	phase    countMatchPhase
	frame    int
	round    int // 1始まり
	count    int // このラウンドで表示している個数
	answered bool
	correct  ScoreAccumulator

	icon *Sprite

	result   *TrainingResult
	reported bool
}

func NewCountMatchMinigame(ctx *MinigameContext) *CountMatchMinigame {
	cfg := ctx.Config.Training.CountMatch
	g := &CountMatchMinigame{
		ctx:     ctx,
		cfg:     cfg,
		phase:   countMatchPhaseFlash,
		round:   1,
		correct: NewScoreAccumulator(cfg.Rounds),
		icon:    ctx.sprite(ImageTrainingCounterIcon, 10, true),
	}
	g.rollCount()
	return g
}

func (g *CountMatchMinigame) rollCount() {
	g.count = 1 + g.ctx.Rand.Intn(g.cfg.MaxCount)
}

func (g *CountMatchMinigame) HandleInput(tok InputToken) {
	if g.phase != countMatchPhaseAnswer || g.answered {
		return
	}
	answer, ok := countForToken[tok]
	if !ok {
		return
	}
	g.answered = true
	if answer == g.count {
		g.ctx.Sound.Play(SoundHit)
		g.correct.Inc(1)
	} else {
		g.ctx.Sound.Play(SoundWhiff)
	}
	g.advance(countMatchPhaseRoundEnd)
}

func (g *CountMatchMinigame) Update() *TrainingResult {
	g.frame++

	switch g.phase {
	case countMatchPhaseFlash:
		if g.frame >= g.cfg.FlashTicks {
			g.advance(countMatchPhaseAnswer)
		}
	case countMatchPhaseAnswer:
		if g.frame >= g.cfg.AnswerTicks {
			// 時間切れは不正解扱い
			g.ctx.Sound.Play(SoundWhiff)
			g.advance(countMatchPhaseRoundEnd)
		}
	case countMatchPhaseRoundEnd:
		if g.frame >= g.cfg.FlashTicks/2 {
			if g.round >= g.cfg.Rounds {
				g.ctx.Sound.Play(SoundResult)
				g.result = g.buildResult()
				g.advance(countMatchPhaseResult)
			} else {
				g.resetForNextRound()
			}
		}
	case countMatchPhaseResult:
		if !g.reported {
			g.reported = true
			return g.result
		}
	}
	return nil
}

func (g *CountMatchMinigame) advance(next countMatchPhase) {
	if next <= g.phase {
		return
	}
	g.phase = next
	g.frame = 0
}

// resetForNextRound は累計スコアを保持したまま次のラウンドへ戻ります。
func (g *CountMatchMinigame) resetForNextRound() {
	g.round++
	g.answered = false
	g.rollCount()
	g.phase = countMatchPhaseFlash
	g.frame = 0
}

func (g *CountMatchMinigame) buildResult() *TrainingResult {
	v := g.correct.Value()
	deltas := map[StatKind]int{StatDiscipline: v}
	if v >= g.cfg.Rounds {
		// 全問正解のごほうび
		deltas[StatExcitement] = 1
	}
	return &TrainingResult{
		ParticipantID: g.ctx.Participants[0].ID,
		Kind:          TrainingCountMatch,
		Score:         v,
		Deltas:        deltas,
	}
}

func (g *CountMatchMinigame) Draw(target RenderTarget) {
	if g.phase != countMatchPhaseFlash || g.icon == nil {
		return
	}
	ui := g.ctx.UIScale
	centerX := float64(g.ctx.Config.UI.Screen.Width) / 2
	centerY := float64(g.ctx.Config.UI.Screen.Height) / 2
	spacing := g.icon.W + 16*ui
	startX := centerX - spacing*float64(g.count-1)/2 - g.icon.W/2
	for i := 0; i < g.count; i++ {
		drawSprite(target, g.icon, startX+float64(i)*spacing, centerY-g.icon.H/2)
	}
}

// Round は現在のラウンド番号（1始まり）です。
func (g *CountMatchMinigame) Round() int {
	return g.round
}

// Correct は累計正解数です。
func (g *CountMatchMinigame) Correct() int {
	return g.correct.Value()
}

// Phase は現在のフェーズです。
func (g *CountMatchMinigame) Phase() countMatchPhase {
	return g.phase
}
