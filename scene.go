package main

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi"
)

// SharedResources はシーン間で共有されるリソースを保持します
type SharedResources struct {
	GameData        *GameData
	GameDataManager *GameDataManager
	Config          Config
	Font            text.Face
	World           donburi.World
	Assets          AssetLoader
	Sound           SoundPlayer
	Store           *SaveStore
	ButtonImage     *widget.ButtonImage
}

// Sceneは、bamennで管理される全てのシーンが満たすべきインターフェースです。
// ebiten.Gameを埋め込むことで、Update/Draw/Layoutメソッドを持つことが保証されます。
type Scene interface {
	ebiten.Game
}
