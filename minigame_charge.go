package main

// パンチングトレーニング。
// 連打で強さバーを溜め、受付終了後にダミー人形へ一撃入れて結果を出します。
// バー満タンで攻撃演出とボーナスが豪華になります。

type chargePhase int

const (
	chargePhaseCharging chargePhase = iota
	chargePhaseWaitAttack
	chargePhaseImpact
	chargePhaseResult
)

type ChargeMinigame struct {
	ctx *MinigameContext
	cfg ChargeConfig

	phase    chargePhase
	frame    int // フェーズ突入からの経過tick
	strength ScoreAccumulator
	fullAt   int // バーが満タンになったtick（未達なら-1）

	barSegment *Sprite
	barBack    *Sprite
	maxBanner  *Sprite
	dummy      *Sprite
	spark      *Sprite

	result   *TrainingResult
	reported bool
}

func NewChargeMinigame(ctx *MinigameContext) *ChargeMinigame {
	cfg := ctx.Config.Training.Charge
	return &ChargeMinigame{
		ctx:        ctx,
		cfg:        cfg,
		phase:      chargePhaseCharging,
		strength:   NewScoreAccumulator(cfg.BarLevel),
		fullAt:     -1,
		barSegment: ctx.sprite(ImageTrainingBarSegment, 3, true),
		barBack:    ctx.sprite(ImageTrainingBarBack, 48, true),
		maxBanner:  ctx.sprite(ImageTrainingMaxBanner, 8, true),
		dummy:      ctx.sprite(ImageTrainingDummy, 30, true),
		spark:      ctx.sprite(ImageTrainingSpark, 18, true),
	}
}

// HandleInput は決定トークン1回につき強さを1段増やします。
// 他のトークンはこの種目には関係ないので黙って無視します。
func (g *ChargeMinigame) HandleInput(tok InputToken) {
	if g.phase != chargePhaseCharging {
		return
	}
	if !isConfirm(tok) {
		return
	}
	g.ctx.Sound.Play(SoundPump)
	g.strength.Inc(1)
	if g.strength.Full() && g.fullAt < 0 {
		g.fullAt = g.frame
		g.ctx.Sound.Play(SoundMax)
	}
}

func (g *ChargeMinigame) Update() *TrainingResult {
	g.frame++

	switch g.phase {
	case chargePhaseCharging:
		windowOver := g.frame >= g.cfg.WindowTicks
		graceOver := g.fullAt >= 0 && g.frame-g.fullAt >= g.cfg.GraceTicks
		if windowOver || graceOver {
			g.advance(chargePhaseWaitAttack)
		}
	case chargePhaseWaitAttack:
		if g.frame >= g.cfg.WindupTicks {
			g.ctx.Sound.Play(SoundHit)
			g.advance(chargePhaseImpact)
		}
	case chargePhaseImpact:
		if g.frame >= g.cfg.ImpactTicks {
			g.ctx.Sound.Play(SoundResult)
			g.result = g.buildResult()
			g.advance(chargePhaseResult)
		}
	case chargePhaseResult:
		if !g.reported {
			g.reported = true
			return g.result
		}
	}
	return nil
}

// advance は前進方向のフェーズ遷移だけを行います。
func (g *ChargeMinigame) advance(next chargePhase) {
	if next <= g.phase {
		return
	}
	g.phase = next
	g.frame = 0
}

func (g *ChargeMinigame) buildResult() *TrainingResult {
	v := g.strength.Value()
	delta := (v + 2) / 3
	if g.strength.Full() {
		delta += 2
	}
	return &TrainingResult{
		ParticipantID: g.ctx.Participants[0].ID,
		Kind:          TrainingCharge,
		Score:         v,
		Deltas:        map[StatKind]int{StatStrength: delta},
	}
}

func (g *ChargeMinigame) Draw(target RenderTarget) {
	ui := g.ctx.UIScale
	screenW := float64(g.ctx.Config.UI.Screen.Width)
	screenH := float64(g.ctx.Config.UI.Screen.Height)
	centerX := screenW / 2
	centerY := screenH / 2

	// バーは画面中央より左、ダミーは右。基準オフセットにUIスケールを掛けます。
	barX := centerX - 320*ui
	barBottom := centerY + 180*ui
	if g.barBack != nil {
		drawSprite(target, g.barBack, barX-12*ui, barBottom-g.barBack.H)
	}
	if g.barSegment != nil {
		for i := 0; i < g.strength.Value(); i++ {
			y := barBottom - float64(i+1)*g.barSegment.H
			drawSprite(target, g.barSegment, barX, y)
		}
	}
	if g.strength.Full() && g.maxBanner != nil {
		drawSprite(target, g.maxBanner, barX-20*ui, barBottom-110*ui-g.maxBanner.H)
	}

	dummyX := centerX + 160*ui
	dummyY := centerY - 60*ui
	if g.phase == chargePhaseImpact && g.dummy != nil {
		// ヒット中はのけぞらせる
		dummyX += 18 * ui
	}
	drawSprite(target, g.dummy, dummyX, dummyY)

	if g.phase == chargePhaseImpact && g.spark != nil {
		alpha := 1 - float32(g.frame)/float32(g.cfg.ImpactTicks)
		drawSpriteAlpha(target, g.spark, dummyX-40*ui, dummyY+20*ui, alpha)
	}
}

// Strength は現在のバー段数です。
func (g *ChargeMinigame) Strength() int {
	return g.strength.Value()
}

// Phase は現在のフェーズです。
func (g *ChargeMinigame) Phase() chargePhase {
	return g.phase
}
