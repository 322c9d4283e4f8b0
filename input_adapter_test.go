package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestTokenForKeyMapping(t *testing.T) {
	cases := []struct {
		key  ebiten.Key
		want InputToken
	}{
		{ebiten.KeyZ, TokenA},
		{ebiten.KeyEnter, TokenA},
		{ebiten.KeyX, TokenB},
		{ebiten.KeyEscape, TokenB},
		{ebiten.KeyArrowLeft, TokenLeft},
		{ebiten.KeyArrowRight, TokenRight},
		{ebiten.KeyArrowUp, TokenUp},
		{ebiten.KeyArrowDown, TokenDown},
		{ebiten.KeyA, ""},
		{ebiten.KeySpace, ""},
	}
	for _, c := range cases {
		if got := tokenForKey(c.key); got != c.want {
			t.Errorf("tokenForKey(%v) = %q, want %q", c.key, got, c.want)
		}
	}
}

func TestWatchedKeysAllMapToTokens(t *testing.T) {
	for _, key := range watchedKeys {
		if tokenForKey(key) == "" {
			t.Errorf("監視対象キー %v にトークンが割り当てられていません", key)
		}
	}
}

func TestIsConfirm(t *testing.T) {
	if !isConfirm(TokenA) || !isConfirm(TokenLClick) {
		t.Error("AとLCLICKは決定系のはずです")
	}
	for _, tok := range []InputToken{TokenB, TokenLeft, TokenRight, TokenUp, TokenDown, ""} {
		if isConfirm(tok) {
			t.Errorf("%qが決定系と判定されました", tok)
		}
	}
}
