package main

// モグラたたき。4方向の穴のどれかからモグラが顔を出し、
// 出ている間に同じ方向のトークンを入れられたらヒットです。
// 時間切れと方向違いはミス。規定回数出きったら終わります。

type mogeraPhase int

const (
	mogeraPhasePop mogeraPhase = iota
	mogeraPhaseGap
	mogeraPhaseResult
)

type MogeraMinigame struct {
	ctx *MinigameContext
	cfg MogeraConfig

	phase     mogeraPhase
	frame     int
	popIndex  int        // 何匹目か（1始まり）
	activeDir InputToken // いま出ているモグラの方向
	hitThis   bool       // この出現ですでに叩いたか
	hits      ScoreAccumulator

	mole *Sprite
	hole *Sprite

	result   *TrainingResult
	reported bool
}

var mogeraSlots = []InputToken{TokenLeft, TokenUp, TokenRight, TokenDown}

func NewMogeraMinigame(ctx *MinigameContext) *MogeraMinigame {
	cfg := ctx.Config.Training.Mogera
	g := &MogeraMinigame{
		ctx:      ctx,
		cfg:      cfg,
		phase:    mogeraPhasePop,
		popIndex: 1,
		hits:     NewScoreAccumulator(cfg.Pops),
		mole:     ctx.sprite(ImageTrainingMole, 14, true),
		hole:     ctx.sprite(ImageTrainingMoleHole, 10, true),
	}
	g.rollSlot()
	return g
}

func (g *MogeraMinigame) rollSlot() {
	g.activeDir = mogeraSlots[g.ctx.Rand.Intn(len(mogeraSlots))]
	g.hitThis = false
}

func (g *MogeraMinigame) HandleInput(tok InputToken) {
	if g.phase != mogeraPhasePop || g.hitThis {
		return
	}
	isDir := false
	for _, dir := range mogeraSlots {
		if tok == dir {
			isDir = true
			break
		}
	}
	if !isDir {
		return
	}
	if tok == g.activeDir {
		g.hitThis = true
		g.ctx.Sound.Play(SoundHit)
		g.hits.Inc(1)
	} else {
		g.ctx.Sound.Play(SoundWhiff)
	}
}

func (g *MogeraMinigame) Update() *TrainingResult {
	g.frame++

	switch g.phase {
	case mogeraPhasePop:
		if g.hitThis || g.frame >= g.cfg.PopTicks {
			g.advance(mogeraPhaseGap)
		}
	case mogeraPhaseGap:
		if g.frame >= g.cfg.GapTicks {
			if g.popIndex >= g.cfg.Pops {
				g.ctx.Sound.Play(SoundResult)
				g.result = g.buildResult()
				g.advance(mogeraPhaseResult)
			} else {
				g.nextPop()
			}
		}
	case mogeraPhaseResult:
		if !g.reported {
			g.reported = true
			return g.result
		}
	}
	return nil
}

func (g *MogeraMinigame) advance(next mogeraPhase) {
	if next <= g.phase {
		return
	}
	g.phase = next
	g.frame = 0
}

// nextPop は累計ヒット数を保持したまま次の出現へ戻ります。
func (g *MogeraMinigame) nextPop() {
	g.popIndex++
	g.rollSlot()
	g.phase = mogeraPhasePop
	g.frame = 0
}

func (g *MogeraMinigame) buildResult() *TrainingResult {
	v := g.hits.Value()
	deltas := map[StatKind]int{StatStrength: v / 2}
	if v*2 >= g.cfg.Pops {
		deltas[StatExcitement] = 1
	}
	return &TrainingResult{
		ParticipantID: g.ctx.Participants[0].ID,
		Kind:          TrainingMogera,
		Score:         v,
		Deltas:        deltas,
	}
}

// slotOffset は方向ごとの穴の位置（画面中央基準のオフセット）です。
func slotOffset(dir InputToken, ui float64) (float64, float64) {
	switch dir {
	case TokenLeft:
		return -240 * ui, 80 * ui
	case TokenUp:
		return -80 * ui, -40 * ui
	case TokenRight:
		return 80 * ui, 80 * ui
	case TokenDown:
		return 240 * ui, -40 * ui
	}
	return 0, 0
}

func (g *MogeraMinigame) Draw(target RenderTarget) {
	ui := g.ctx.UIScale
	centerX := float64(g.ctx.Config.UI.Screen.Width) / 2
	centerY := float64(g.ctx.Config.UI.Screen.Height)/2 + 120*ui

	for _, dir := range mogeraSlots {
		dx, dy := slotOffset(dir, ui)
		drawSprite(target, g.hole, centerX+dx, centerY+dy)
	}
	if g.phase == mogeraPhasePop && !g.hitThis && g.mole != nil {
		dx, dy := slotOffset(g.activeDir, ui)
		drawSprite(target, g.mole, centerX+dx, centerY+dy-g.mole.H*0.6)
	}
}

// Hits は累計ヒット数です。
func (g *MogeraMinigame) Hits() int {
	return g.hits.Value()
}

// PopIndex は何匹目の出現か（1始まり）です。
func (g *MogeraMinigame) PopIndex() int {
	return g.popIndex
}

// ActiveDir はいま出ているモグラの方向です。
func (g *MogeraMinigame) ActiveDir() InputToken {
	return g.activeDir
}

// Phase は現在のフェーズです。
func (g *MogeraMinigame) Phase() mogeraPhase {
	return g.phase
}
