package main

import (
	"testing"
)

// fixedMeasure は1文字10pxとして扱う固定幅の実測関数です。
func fixedMeasure(s string) float64 {
	return float64(len(s)) * 10
}

func testTooltipConfig() TooltipConfig {
	return TooltipConfig{
		MaxWidthRatio: 0.4,
		Padding:       12,
		FadeTicks:     20,
		LineHeight:    18,
		CornerRadius:  8,
	}
}

func TestTooltipWrapsAtMaxWidth(t *testing.T) {
	// maxWidth = 200*0.4 = 80, limit = 80-24 = 56
	// "AAAA BBBB" は90pxなので1行に収まらない
	tip := NewTooltip("AAAA BBBB CCCC", 200, 600, nil, testTooltipConfig(), &ColorPalette{}, fixedMeasure)

	lines := tip.Lines()
	if len(lines) != 3 {
		t.Fatalf("行数 = %d, want 3: %v", len(lines), lines)
	}
	for i, want := range []string{"AAAA", "BBBB", "CCCC"} {
		if lines[i] != want {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], want)
		}
	}
}

func TestTooltipKeepsShortTextOnOneLine(t *testing.T) {
	tip := NewTooltip("AAAA BBBB CCCC", 2000, 600, nil, testTooltipConfig(), &ColorPalette{}, fixedMeasure)
	if len(tip.Lines()) != 1 {
		t.Errorf("行数 = %d, want 1: %v", len(tip.Lines()), tip.Lines())
	}
}

func TestTooltipOversizedWordGetsOwnLine(t *testing.T) {
	// 上限56pxに対して1単語で100px。切り捨てずに単独行へ置く
	tip := NewTooltip("AA AAAAAAAAAA BB", 200, 600, nil, testTooltipConfig(), &ColorPalette{}, fixedMeasure)
	lines := tip.Lines()
	found := false
	for _, line := range lines {
		if line == "AAAAAAAAAA" {
			found = true
		}
	}
	if !found {
		t.Errorf("長すぎる単語が単独行になっていません: %v", lines)
	}
}

func TestTooltipFadeInAlpha(t *testing.T) {
	tip := NewTooltip("A", 600, 600, nil, testTooltipConfig(), &ColorPalette{}, fixedMeasure)

	if tip.Alpha() != 0 {
		t.Errorf("初期Alpha = %d, want 0", tip.Alpha())
	}

	for i := 0; i < 10; i++ {
		tip.Update()
	}
	if got := tip.Alpha(); got != 127 {
		t.Errorf("半分経過のAlpha = %d, want 127", got)
	}

	for i := 0; i < 10; i++ {
		tip.Update()
	}
	if tip.Alpha() != 255 {
		t.Errorf("フェード完了のAlpha = %d, want 255", tip.Alpha())
	}

	// 完了後は時計が止まり255のまま
	for i := 0; i < 100; i++ {
		tip.Update()
	}
	if tip.Alpha() != 255 {
		t.Errorf("完了後のAlpha = %d, want 255", tip.Alpha())
	}
}

func TestTooltipBoxCenteredHorizontally(t *testing.T) {
	tip := NewTooltip("AAAA", 600, 400, nil, testTooltipConfig(), &ColorPalette{}, fixedMeasure)
	w, h := tip.BoxSize()

	// 幅 = 40 + padding*2
	if w != 64 {
		t.Errorf("boxW = %v, want 64", w)
	}
	// 高さ = 1行*18 + padding*2
	if h != 42 {
		t.Errorf("boxH = %v, want 42", h)
	}
	if tip.x != (600-64)/2 {
		t.Errorf("x = %v, want %v", tip.x, (600-64)/2)
	}
	if tip.y != 400-42-40 {
		t.Errorf("y = %v, want %v", tip.y, 400-42-40)
	}
}

func TestTooltipUpdateScalingRelayouts(t *testing.T) {
	tip := NewTooltip("AAAA BBBB CCCC", 200, 600, nil, testTooltipConfig(), &ColorPalette{}, fixedMeasure)
	if len(tip.Lines()) != 3 {
		t.Fatalf("前提が崩れています: %v", tip.Lines())
	}

	tip.UpdateScaling(2000, 600)
	if len(tip.Lines()) != 1 {
		t.Errorf("拡大後の行数 = %d, want 1", len(tip.Lines()))
	}
	if tip.surface != nil {
		t.Error("UpdateScalingで描画面が無効化されていません")
	}
}
