package main

import (
	"image"
)

// ToggleButton はトグル式のメニューボタンです。
// グループに登録するとラジオボタンとして振る舞います。
type ToggleButton struct {
	label    string
	toggled  bool
	group    *ButtonGroup
	rect     image.Rectangle
	onToggle func(active bool)
}

func NewToggleButton(label string) *ToggleButton {
	return &ToggleButton{label: label}
}

// SetOnToggle はユーザー操作でアクティブ化されたときの副作用を設定します。
func (b *ToggleButton) SetOnToggle(fn func(active bool)) {
	b.onToggle = fn
}

// SetRect はクリック判定用の矩形を設定します。
func (b *ToggleButton) SetRect(rect image.Rectangle) {
	b.rect = rect
}

// HitTest は座標がボタンの矩形内かどうかを返します。
func (b *ToggleButton) HitTest(x, y int) bool {
	return image.Pt(x, y).In(b.rect)
}

// Rect は判定矩形を返します。
func (b *ToggleButton) Rect() image.Rectangle {
	return b.rect
}

// Toggle はユーザー操作による切り替えです。グループ登録済みなら
// グループへ通知し、ラジオ動作（他を消灯）に従います。
func (b *ToggleButton) Toggle() {
	if b.group != nil {
		b.group.SetActiveButton(b)
		return
	}
	b.toggled = !b.toggled
	if b.onToggle != nil {
		b.onToggle(b.toggled)
	}
}

// setToggled は副作用を起こさずに状態だけを変える内部用の操作です。
func (b *ToggleButton) setToggled(v bool) {
	b.toggled = v
}

func (b *ToggleButton) Toggled() bool {
	return b.toggled
}

func (b *ToggleButton) Label() string {
	return b.label
}

// ButtonGroup は登録されたボタン群に「同時に1つまで」の排他を課します。
type ButtonGroup struct {
	buttons []*ToggleButton
}

func NewButtonGroup() *ButtonGroup {
	return &ButtonGroup{}
}

// AddButton はボタンを登録します。二重登録は何もしません。
func (g *ButtonGroup) AddButton(b *ToggleButton) {
	for _, existing := range g.buttons {
		if existing == b {
			return
		}
	}
	b.group = g
	g.buttons = append(g.buttons, b)
}

// SetActiveButton は対象以外を副作用なしで消灯してから、
// 対象が未点灯なら点灯させます。呼び出し後に点灯しているのは最大1つです。
func (g *ButtonGroup) SetActiveButton(b *ToggleButton) {
	for _, other := range g.buttons {
		if other != b {
			other.setToggled(false)
		}
	}
	if b != nil && !b.toggled {
		b.setToggled(true)
		if b.onToggle != nil {
			b.onToggle(true)
		}
	}
}

// ClearActive は全ボタンを消灯します。
func (g *ButtonGroup) ClearActive() {
	for _, b := range g.buttons {
		b.setToggled(false)
	}
}

// ActiveButton は点灯中のボタンを返します。無ければ nil です。
func (g *ButtonGroup) ActiveButton() *ToggleButton {
	for _, b := range g.buttons {
		if b.toggled {
			return b
		}
	}
	return nil
}

// ActiveIndex は点灯中のボタンの登録順の位置を返します。無ければ -1 です。
func (g *ButtonGroup) ActiveIndex() int {
	for i, b := range g.buttons {
		if b.toggled {
			return i
		}
	}
	return -1
}

// Buttons は登録順のボタン一覧です。
func (g *ButtonGroup) Buttons() []*ToggleButton {
	return g.buttons
}
