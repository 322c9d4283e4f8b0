package main

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	resource "github.com/quasilyte/ebitengine-resource"
)

// TrainingKind はトレーニング種目です。メニューの並び順がそのまま値になります。
type TrainingKind int

const (
	TrainingCharge TrainingKind = iota
	TrainingExcite
	TrainingShake
	TrainingVersus
	TrainingCountMatch
	TrainingMogera

	trainingKindCount
)

func (k TrainingKind) String() string {
	switch k {
	case TrainingCharge:
		return "charge"
	case TrainingExcite:
		return "excite"
	case TrainingShake:
		return "shake"
	case TrainingVersus:
		return "versus"
	case TrainingCountMatch:
		return "countmatch"
	case TrainingMogera:
		return "mogera"
	}
	return "unknown"
}

// DisplayName はメニューに表示する種目名です。
func (k TrainingKind) DisplayName() string {
	switch k {
	case TrainingCharge:
		return "パンチングトレーニング"
	case TrainingExcite:
		return "テンションアップ"
	case TrainingShake:
		return "木ゆすり"
	case TrainingVersus:
		return "くらべっこバトル"
	case TrainingCountMatch:
		return "かぞえっこ"
	case TrainingMogera:
		return "モグラたたき"
	}
	return "？？？"
}

// ParticipantCount は種目が必要とするペットの数です。
func (k TrainingKind) ParticipantCount() int {
	if k == TrainingVersus {
		return 2
	}
	return 1
}

// Participant はセッションに参加するペットの素性です。
// ミニゲームはペット本体には触れず、結果だけを返します。
type Participant struct {
	ID   string
	Name string
}

// TrainingResult は終端フェーズに達したセッションが報告する不変の結果です。
// ペットへの反映はシーン側だけが行います。
type TrainingResult struct {
	ParticipantID string
	Kind          TrainingKind
	Score         int
	Deltas        map[StatKind]int
}

// RenderTarget はミニゲームが描き込む先の面です。*ebiten.Image が満たします。
type RenderTarget interface {
	DrawImage(img *ebiten.Image, opts *ebiten.DrawImageOptions)
}

// Minigame は全種目が満たす契約です。
//   - Update は1tickぶん状態を進め、終端フェーズに達した瞬間に結果を返します。
//     それ以外は nil です。結果を返した後のUpdateも nil です。
//   - HandleInput は知らないトークンを黙って無視します。
//   - Draw はブロックせず、渡された面に描くだけです。
type Minigame interface {
	Update() *TrainingResult
	HandleInput(tok InputToken)
	Draw(target RenderTarget)
}

// MinigameContext は各種目へ明示的に渡す依存の束です。
// グローバルへは一切手を伸ばしません。
type MinigameContext struct {
	Config       *Config
	Assets       AssetLoader
	Sound        SoundPlayer
	UIScale      float64
	Participants []Participant
	Rand         *rand.Rand
}

// sprite はコンテキスト経由でスプライトを引きます。
// 読み込みエラーはシーン側のローダーで処理済みなので、ここでは nil を許容するだけです。
func (ctx *MinigameContext) sprite(id resource.ImageID, percentOfHeight float64, keepAspect bool) *Sprite {
	s, err := ctx.Assets.LoadScaledSprite(id, percentOfHeight, keepAspect)
	if err != nil {
		// ローダーが差し替えをしない構成（テストなど）では描画なしで続行する
		return nil
	}
	return s
}

// NewMinigame は種目に対応するセッションを生成します。
func NewMinigame(kind TrainingKind, ctx *MinigameContext) Minigame {
	switch kind {
	case TrainingCharge:
		return NewChargeMinigame(ctx)
	case TrainingExcite:
		return NewExciteMinigame(ctx)
	case TrainingShake:
		return NewShakeMinigame(ctx)
	case TrainingVersus:
		return NewVersusMinigame(ctx)
	case TrainingCountMatch:
		return NewCountMatchMinigame(ctx)
	case TrainingMogera:
		return NewMogeraMinigame(ctx)
	}
	return nil
}

// ScoreAccumulator は上限つきの加算カウンタです。
// どれだけ連打されても上限を超えません（飽和加算）。
type ScoreAccumulator struct {
	value int
	max   int
}

func NewScoreAccumulator(max int) ScoreAccumulator {
	return ScoreAccumulator{max: max}
}

// Inc は n を加算します。結果は常に 0..max に収まります。
func (a *ScoreAccumulator) Inc(n int) {
	a.value = clampInt(a.value+n, 0, a.max)
}

func (a *ScoreAccumulator) Value() int {
	return a.value
}

func (a *ScoreAccumulator) Max() int {
	return a.max
}

func (a *ScoreAccumulator) Full() bool {
	return a.value >= a.max
}

// drawSprite はスケール済みスプライトを左上基準で描きます。
func drawSprite(target RenderTarget, s *Sprite, x, y float64) {
	drawSpriteAlpha(target, s, x, y, 1)
}

func drawSpriteAlpha(target RenderTarget, s *Sprite, x, y float64, alpha float32) {
	if s == nil || s.Image == nil {
		return
	}
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(s.ScaleX, s.ScaleY)
	opts.GeoM.Translate(x, y)
	if alpha < 1 {
		opts.ColorScale.ScaleAlpha(alpha)
	}
	target.DrawImage(s.Image, opts)
}
