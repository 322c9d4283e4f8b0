package main

// くらべっこバトル。2体のペットが数ラウンドの読み合いをします。
// プレイヤーが選んだ方向と相手の方向が一致したら攻めが通ってプレイヤー側の得点、
// 外れたら相手側の得点です。ラウンド間はフェーズを初期に戻しますが、
// 累計スコアは保持したまま次のラウンドへ進みます。

type versusPhase int

const (
	versusPhaseChoose versusPhase = iota
	versusPhaseReveal
	versusPhaseRoundEnd
	versusPhaseResult
)

var versusDirections = []InputToken{TokenLeft, TokenRight, TokenUp, TokenDown}

type VersusMinigame struct {
	ctx *MinigameContext
	cfg VersusConfig

	phase versusPhase
	frame int
	round int // 1始まり

	playerChoice   InputToken
	opponentChoice InputToken
	scores         [2]ScoreAccumulator // 参加者順の累計スコア

	petLeft  *Sprite
	petRight *Sprite
	spark    *Sprite

	result   *TrainingResult
	reported bool
}

func NewVersusMinigame(ctx *MinigameContext) *VersusMinigame {
	cfg := ctx.Config.Training.Versus
	g := &VersusMinigame{
		ctx:      ctx,
		cfg:      cfg,
		phase:    versusPhaseChoose,
		round:    1,
		petLeft:  ctx.sprite(ImagePetIdle, 28, true),
		petRight: ctx.sprite(ImagePetAttack, 28, true),
		spark:    ctx.sprite(ImageTrainingSpark, 14, true),
	}
	g.scores[0] = NewScoreAccumulator(cfg.Rounds)
	g.scores[1] = NewScoreAccumulator(cfg.Rounds)
	return g
}

func (g *VersusMinigame) HandleInput(tok InputToken) {
	if g.phase != versusPhaseChoose {
		return
	}
	for _, dir := range versusDirections {
		if tok == dir {
			g.playerChoice = tok
			g.opponentChoice = versusDirections[g.ctx.Rand.Intn(len(versusDirections))]
			g.ctx.Sound.Play(SoundRound)
			g.advance(versusPhaseReveal)
			return
		}
	}
}

func (g *VersusMinigame) Update() *TrainingResult {
	g.frame++

	switch g.phase {
	case versusPhaseChoose:
		// 入力待ち。時間制限はありません。
	case versusPhaseReveal:
		if g.frame >= g.cfg.RevealTicks {
			if g.playerChoice == g.opponentChoice {
				g.ctx.Sound.Play(SoundHit)
				g.scores[0].Inc(1)
			} else {
				g.ctx.Sound.Play(SoundWhiff)
				g.scores[1].Inc(1)
			}
			g.advance(versusPhaseRoundEnd)
		}
	case versusPhaseRoundEnd:
		if g.frame >= g.cfg.IntervalTicks {
			if g.round >= g.cfg.Rounds {
				g.ctx.Sound.Play(SoundResult)
				g.result = g.buildResult()
				g.advance(versusPhaseResult)
			} else {
				g.resetForNextRound()
			}
		}
	case versusPhaseResult:
		if !g.reported {
			g.reported = true
			return g.result
		}
	}
	return nil
}

// advance は前進方向のフェーズ遷移だけを行います。
func (g *VersusMinigame) advance(next versusPhase) {
	if next <= g.phase {
		return
	}
	g.phase = next
	g.frame = 0
}

// resetForNextRound は唯一の後退遷移です。累計スコアを保持したまま
// 次のラウンドの初期フェーズへ戻ります。
func (g *VersusMinigame) resetForNextRound() {
	g.round++
	g.playerChoice = ""
	g.opponentChoice = ""
	g.phase = versusPhaseChoose
	g.frame = 0
}

func (g *VersusMinigame) buildResult() *TrainingResult {
	winner := -1
	if g.scores[0].Value() > g.scores[1].Value() {
		winner = 0
	} else if g.scores[1].Value() > g.scores[0].Value() {
		winner = 1
	}
	if winner < 0 {
		// 引き分けはどちらのステータスも動かしません
		return &TrainingResult{
			Kind:  TrainingVersus,
			Score: g.scores[0].Value(),
		}
	}
	return &TrainingResult{
		ParticipantID: g.ctx.Participants[winner].ID,
		Kind:          TrainingVersus,
		Score:         g.scores[winner].Value(),
		Deltas: map[StatKind]int{
			StatStrength:   2,
			StatDiscipline: 1,
		},
	}
}

func (g *VersusMinigame) Draw(target RenderTarget) {
	ui := g.ctx.UIScale
	centerX := float64(g.ctx.Config.UI.Screen.Width) / 2
	centerY := float64(g.ctx.Config.UI.Screen.Height) / 2

	drawSprite(target, g.petLeft, centerX-300*ui, centerY-60*ui)
	drawSprite(target, g.petRight, centerX+160*ui, centerY-60*ui)

	if g.phase == versusPhaseReveal && g.playerChoice == g.opponentChoice {
		drawSprite(target, g.spark, centerX-30*ui, centerY-80*ui)
	}
}

// Round は現在のラウンド番号（1始まり）です。
func (g *VersusMinigame) Round() int {
	return g.round
}

// CumulativeScore は参加者iの累計スコアです。
func (g *VersusMinigame) CumulativeScore(i int) int {
	return g.scores[i].Value()
}

// Phase は現在のフェーズです。
func (g *VersusMinigame) Phase() versusPhase {
	return g.phase
}
