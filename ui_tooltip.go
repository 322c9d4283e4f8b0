package main

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Tooltip は中央寄せ・自動折り返し・フェードイン付きのポップアップです。
// レイアウトは構築時に確定し、表示スケールが変わったときだけ再計算します。
type Tooltip struct {
	text      string
	viewportW int
	viewportH int
	cfg       TooltipConfig
	colors    *ColorPalette
	font      text.Face
	measure   func(s string) float64

	lines      []string
	boxW, boxH float64
	x, y       float64

	elapsed  int
	fadeDone bool

	surface *ebiten.Image
}

// NewTooltip はツールチップを作り、即座にレイアウトを計算します。
// measure が nil の場合はフォントの実測幅を使います。
func NewTooltip(txt string, viewportW, viewportH int, font text.Face, cfg TooltipConfig, colors *ColorPalette, measure func(s string) float64) *Tooltip {
	t := &Tooltip{
		text:      txt,
		viewportW: viewportW,
		viewportH: viewportH,
		cfg:       cfg,
		colors:    colors,
		font:      font,
		measure:   measure,
	}
	if t.measure == nil {
		t.measure = func(s string) float64 {
			w, _ := text.Measure(s, font, 0)
			return w
		}
	}
	t.setupLayout()
	return t
}

// UpdateScaling はビューポート変更時に呼ばれ、レイアウトを作り直します。
func (t *Tooltip) UpdateScaling(viewportW, viewportH int) {
	t.viewportW = viewportW
	t.viewportH = viewportH
	t.surface = nil
	t.setupLayout()
}

func (t *Tooltip) setupLayout() {
	maxWidth := float64(t.viewportW) * t.cfg.MaxWidthRatio
	limit := maxWidth - t.cfg.Padding*2
	t.lines = wrapWords(t.text, limit, t.measure)

	longest := 0.0
	for _, line := range t.lines {
		if w := t.measure(line); w > longest {
			longest = w
		}
	}
	t.boxW = longest + t.cfg.Padding*2
	t.boxH = float64(len(t.lines))*t.cfg.LineHeight + t.cfg.Padding*2
	t.x = (float64(t.viewportW) - t.boxW) / 2
	t.y = float64(t.viewportH) - t.boxH - 40
}

// wrapWords は貪欲に単語を詰める折り返しです。1単語で上限を超える場合は
// その単語を単独行に置きます（切り捨てはしません）。
func wrapWords(s string, limit float64, measure func(string) float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	current := ""
	for _, word := range words {
		if current == "" {
			current = word
			continue
		}
		candidate := current + " " + word
		if measure(candidate) <= limit {
			current = candidate
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	lines = append(lines, current)
	return lines
}

// Update はフェードイン時計を進めます。全表示に達した後は何もしません。
func (t *Tooltip) Update() {
	if t.fadeDone {
		return
	}
	t.elapsed++
	if t.elapsed >= t.cfg.FadeTicks {
		t.fadeDone = true
	}
}

// Alpha は現在の不透明度です。経過tickに比例し、0..255に収まります。
func (t *Tooltip) Alpha() uint8 {
	if t.cfg.FadeTicks <= 0 || t.elapsed >= t.cfg.FadeTicks {
		return 255
	}
	a := t.elapsed * 255 / t.cfg.FadeTicks
	return uint8(clampInt(a, 0, 255))
}

// Draw は背景→枠→本文の順でオフスクリーン面に合成し、
// 現在のアルファでスクリーンに転送します。
func (t *Tooltip) Draw(screen *ebiten.Image) {
	if len(t.lines) == 0 {
		return
	}
	if t.surface == nil {
		t.surface = ebiten.NewImage(int(t.boxW)+1, int(t.boxH)+1)
		t.renderSurface()
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(t.x, t.y)
	opts.ColorScale.ScaleAlpha(float32(t.Alpha()) / 255)
	screen.DrawImage(t.surface, opts)
}

func (t *Tooltip) renderSurface() {
	w := float32(t.boxW)
	h := float32(t.boxH)
	r := float32(t.cfg.CornerRadius)

	// 角丸背景。矩形2枚と四隅の円で近似します。
	vector.DrawFilledRect(t.surface, r, 0, w-2*r, h, t.colors.Panel, true)
	vector.DrawFilledRect(t.surface, 0, r, w, h-2*r, t.colors.Panel, true)
	for _, c := range [][2]float32{{r, r}, {w - r, r}, {r, h - r}, {w - r, h - r}} {
		vector.DrawFilledCircle(t.surface, c[0], c[1], r, t.colors.Panel, true)
	}
	vector.StrokeRect(t.surface, 0.5, 0.5, w-1, h-1, 1, t.colors.Border, true)

	for i, line := range t.lines {
		drawOpts := &text.DrawOptions{}
		drawOpts.GeoM.Translate(t.cfg.Padding, t.cfg.Padding+float64(i)*t.cfg.LineHeight)
		drawOpts.ColorScale.ScaleWithColor(t.colors.White)
		text.Draw(t.surface, line, t.font, drawOpts)
	}
}

// Lines は折り返し後の行を返します。
func (t *Tooltip) Lines() []string {
	return t.lines
}

// BoxSize はツールチップ全体の大きさです。
func (t *Tooltip) BoxSize() (float64, float64) {
	return t.boxW, t.boxH
}
