package main

// テンションアップ。制限時間内に連打した回数だけテンションが上がります。

type excitePhase int

const (
	excitePhaseMash excitePhase = iota
	excitePhaseResult
)

type ExciteMinigame struct {
	ctx *MinigameContext
	cfg ExciteConfig

	phase      excitePhase
	frame      int
	excitement ScoreAccumulator

	meter *Sprite
	pet   *Sprite
	happy *Sprite

	result   *TrainingResult
	reported bool
}

func NewExciteMinigame(ctx *MinigameContext) *ExciteMinigame {
	cfg := ctx.Config.Training.Excite
	return &ExciteMinigame{
		ctx:        ctx,
		cfg:        cfg,
		phase:      excitePhaseMash,
		excitement: NewScoreAccumulator(cfg.Max),
		meter:      ctx.sprite(ImageTrainingBarSegment, 3, true),
		pet:        ctx.sprite(ImagePetIdle, 30, true),
		happy:      ctx.sprite(ImagePetHappy, 30, true),
	}
}

func (g *ExciteMinigame) HandleInput(tok InputToken) {
	if g.phase != excitePhaseMash {
		return
	}
	if !isConfirm(tok) {
		return
	}
	g.ctx.Sound.Play(SoundPump)
	g.excitement.Inc(1)
}

func (g *ExciteMinigame) Update() *TrainingResult {
	g.frame++

	switch g.phase {
	case excitePhaseMash:
		if g.frame >= g.cfg.WindowTicks {
			g.ctx.Sound.Play(SoundResult)
			g.result = g.buildResult()
			g.phase = excitePhaseResult
			g.frame = 0
		}
	case excitePhaseResult:
		if !g.reported {
			g.reported = true
			return g.result
		}
	}
	return nil
}

func (g *ExciteMinigame) buildResult() *TrainingResult {
	v := g.excitement.Value()
	delta := v / 2
	if v > 0 && delta == 0 {
		delta = 1
	}
	return &TrainingResult{
		ParticipantID: g.ctx.Participants[0].ID,
		Kind:          TrainingExcite,
		Score:         v,
		Deltas:        map[StatKind]int{StatExcitement: delta},
	}
}

func (g *ExciteMinigame) Draw(target RenderTarget) {
	ui := g.ctx.UIScale
	centerX := float64(g.ctx.Config.UI.Screen.Width) / 2
	centerY := float64(g.ctx.Config.UI.Screen.Height) / 2

	// テンションが高いほどペットが跳ねる
	bounce := float64(g.excitement.Value()) * 3 * ui
	sprite := g.pet
	if g.excitement.Full() {
		sprite = g.happy
	}
	drawSprite(target, sprite, centerX-60*ui, centerY-bounce)

	if g.meter != nil {
		baseY := centerY + 200*ui
		for i := 0; i < g.excitement.Value(); i++ {
			drawSprite(target, g.meter, centerX-200*ui+float64(i)*(g.meter.W+2*ui), baseY)
		}
	}
}

// Excitement は現在のテンション値です。
func (g *ExciteMinigame) Excitement() int {
	return g.excitement.Value()
}
