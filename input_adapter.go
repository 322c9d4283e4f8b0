package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputToken はプラットフォーム入力を抽象化したトークンです。
// ミニゲームはこのトークンだけを消費し、生のキー状態には触れません。
type InputToken string

const (
	TokenA      InputToken = "A"
	TokenB      InputToken = "B"
	TokenLClick InputToken = "LCLICK"
	TokenLeft   InputToken = "LEFT"
	TokenRight  InputToken = "RIGHT"
	TokenUp     InputToken = "UP"
	TokenDown   InputToken = "DOWN"
)

// watchedKeys は毎tickポーリングするキーの一覧です。
var watchedKeys = []ebiten.Key{
	ebiten.KeyZ,
	ebiten.KeyEnter,
	ebiten.KeyX,
	ebiten.KeyEscape,
	ebiten.KeyArrowLeft,
	ebiten.KeyArrowRight,
	ebiten.KeyArrowUp,
	ebiten.KeyArrowDown,
}

// tokenForKey はキーに対応するトークンを返します。未対応のキーは空文字です。
func tokenForKey(key ebiten.Key) InputToken {
	switch key {
	case ebiten.KeyZ, ebiten.KeyEnter:
		return TokenA
	case ebiten.KeyX, ebiten.KeyEscape:
		return TokenB
	case ebiten.KeyArrowLeft:
		return TokenLeft
	case ebiten.KeyArrowRight:
		return TokenRight
	case ebiten.KeyArrowUp:
		return TokenUp
	case ebiten.KeyArrowDown:
		return TokenDown
	}
	return ""
}

// InputAdapter はEbitenの入力をトークン列へ変換します。
type InputAdapter struct{}

func NewInputAdapter() *InputAdapter {
	return &InputAdapter{}
}

// Poll はこのtickに発生した入力をトークンとして返します。
// 押しっぱなしは含めず、押された瞬間だけを拾います。
func (a *InputAdapter) Poll() []InputToken {
	var tokens []InputToken
	for _, key := range watchedKeys {
		if inpututil.IsKeyJustPressed(key) {
			if tok := tokenForKey(key); tok != "" {
				tokens = append(tokens, tok)
			}
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		tokens = append(tokens, TokenLClick)
	}
	return tokens
}

// isConfirm は決定系トークン（連打対象）かどうかを返します。
func isConfirm(tok InputToken) bool {
	return tok == TokenA || tok == TokenLClick
}
