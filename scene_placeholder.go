package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// PlaceholderScene は未実装モードの代わりに表示するシーンです。
// メッセージとタイトルへ戻るボタンだけを持ちます。
type PlaceholderScene struct {
	resources *SharedResources
	manager   *SceneManager
	ui        *ebitenui.UI
}

func NewPlaceholderScene(res *SharedResources, manager *SceneManager, message string) *PlaceholderScene {
	p := &PlaceholderScene{
		resources: res,
		manager:   manager,
	}

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(20),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(50)),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		})),
	)
	rootContainer.AddChild(panel)

	messageText := widget.NewText(
		widget.TextOpts.Text(message, res.Font, color.White),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
	)
	panel.AddChild(messageText)

	backButton := widget.NewButton(
		widget.ButtonOpts.Image(res.ButtonImage),
		widget.ButtonOpts.Text("タイトルへ戻る", res.Font, &widget.ButtonTextColor{Idle: color.White}),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(10)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			p.manager.GoToTitleScene()
		}),
	)
	panel.AddChild(backButton)

	p.ui = &ebitenui.UI{Container: rootContainer}
	return p
}

func (p *PlaceholderScene) Update() error {
	p.ui.Update()
	return nil
}

func (p *PlaceholderScene) Draw(screen *ebiten.Image) {
	screen.Fill(p.resources.Config.UI.Colors.Background)
	p.ui.Draw(screen)
}

func (p *PlaceholderScene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.resources.Config.UI.Screen.Width, p.resources.Config.UI.Screen.Height
}
