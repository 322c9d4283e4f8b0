package main

// 木ゆすり。左右トークンを交互に入れたときだけ揺れがカウントされます。
// 同じ方向の連打は揺れにならないので数えません。

type shakePhase int

const (
	shakePhaseShake shakePhase = iota
	shakePhaseResult
)

type ShakeMinigame struct {
	ctx *MinigameContext
	cfg ShakeConfig

	phase   shakePhase
	frame   int
	shakes  ScoreAccumulator
	lastDir InputToken

	tree *Sprite
	pet  *Sprite

	result   *TrainingResult
	reported bool
}

func NewShakeMinigame(ctx *MinigameContext) *ShakeMinigame {
	cfg := ctx.Config.Training.Shake
	return &ShakeMinigame{
		ctx:    ctx,
		cfg:    cfg,
		phase:  shakePhaseShake,
		shakes: NewScoreAccumulator(cfg.Max),
		tree:   ctx.sprite(ImageTrainingTree, 55, true),
		pet:    ctx.sprite(ImagePetIdle, 25, true),
	}
}

func (g *ShakeMinigame) HandleInput(tok InputToken) {
	if g.phase != shakePhaseShake {
		return
	}
	if tok != TokenLeft && tok != TokenRight {
		return
	}
	if tok == g.lastDir {
		return
	}
	g.lastDir = tok
	g.ctx.Sound.Play(SoundPump)
	g.shakes.Inc(1)
}

func (g *ShakeMinigame) Update() *TrainingResult {
	g.frame++

	switch g.phase {
	case shakePhaseShake:
		if g.frame >= g.cfg.WindowTicks {
			g.ctx.Sound.Play(SoundResult)
			g.result = g.buildResult()
			g.phase = shakePhaseResult
			g.frame = 0
		}
	case shakePhaseResult:
		if !g.reported {
			g.reported = true
			return g.result
		}
	}
	return nil
}

func (g *ShakeMinigame) buildResult() *TrainingResult {
	v := g.shakes.Value()
	delta := v / 2
	if v > 0 && delta == 0 {
		delta = 1
	}
	return &TrainingResult{
		ParticipantID: g.ctx.Participants[0].ID,
		Kind:          TrainingShake,
		Score:         v,
		Deltas:        map[StatKind]int{StatStamina: delta},
	}
}

func (g *ShakeMinigame) Draw(target RenderTarget) {
	ui := g.ctx.UIScale
	centerX := float64(g.ctx.Config.UI.Screen.Width) / 2
	centerY := float64(g.ctx.Config.UI.Screen.Height) / 2

	// 直前の入力方向に木をわずかに傾ける代わりに平行移動で揺れを見せる
	sway := 0.0
	switch g.lastDir {
	case TokenLeft:
		sway = -8 * ui
	case TokenRight:
		sway = 8 * ui
	}
	drawSprite(target, g.tree, centerX-120*ui+sway, centerY-220*ui)
	drawSprite(target, g.pet, centerX-40*ui, centerY+80*ui)
}

// Shakes は現在の揺らし回数です。
func (g *ShakeMinigame) Shakes() int {
	return g.shakes.Value()
}
