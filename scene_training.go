package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	resource "github.com/quasilyte/ebitengine-resource"
)

type trainingSceneState int

const (
	trainingStateMenu trainingSceneState = iota
	trainingStatePlaying
	trainingStateResult
)

// TrainingScene はトレーニングの親シーンです。
// 種目の選択、セッションの生成と駆動、結果のペットへの反映までを受け持ちます。
// セッションが終端フェーズに達する前に抜けた場合、ステータスは一切変化しません。
type TrainingScene struct {
	resources *SharedResources
	manager   *SceneManager

	input   *InputAdapter
	group   *ButtonGroup
	tooltip *Tooltip

	state       trainingSceneState
	session     Minigame
	sessionKind TrainingKind
	resultMsg   string
}

func NewTrainingScene(res *SharedResources, manager *SceneManager) *TrainingScene {
	s := &TrainingScene{
		resources: res,
		manager:   manager,
		input:     NewInputAdapter(),
		state:     trainingStateMenu,
	}
	s.buildMenu()
	return s
}

func (s *TrainingScene) buildMenu() {
	cfg := &s.resources.Config
	ui := cfg.UI.Scale
	s.group = NewButtonGroup()

	x := int(80 * ui)
	y := int(120 * ui)
	w := int(360 * ui)
	h := int(48 * ui)
	gap := int(14 * ui)

	for kind := TrainingKind(0); kind < trainingKindCount; kind++ {
		k := kind
		button := NewToggleButton(k.DisplayName())
		button.SetRect(image.Rect(x, y, x+w, y+h))
		button.SetOnToggle(func(active bool) {
			if active {
				s.showTooltipFor(k)
			}
		})
		s.group.AddButton(button)
		y += h + gap
	}
}

func (s *TrainingScene) showTooltipFor(kind TrainingKind) {
	cfg := &s.resources.Config
	msgID := fmt.Sprintf("training_desc_%s", kind)
	desc, ok := s.resources.GameDataManager.Messages.GetRawMessage(msgID)
	if !ok {
		desc = kind.DisplayName()
	}
	s.tooltip = NewTooltip(desc, cfg.UI.Screen.Width, cfg.UI.Screen.Height,
		s.resources.Font, cfg.UI.Tooltip, &cfg.UI.Colors, nil)
}

func (s *TrainingScene) Update() error {
	tokens := s.input.Poll()

	switch s.state {
	case trainingStateMenu:
		s.updateMenu(tokens)
	case trainingStatePlaying:
		s.updatePlaying(tokens)
	case trainingStateResult:
		s.updateResult(tokens)
	}
	return nil
}

func (s *TrainingScene) updateMenu(tokens []InputToken) {
	if s.tooltip != nil {
		s.tooltip.Update()
	}
	for _, tok := range tokens {
		switch tok {
		case TokenLClick:
			mx, my := ebiten.CursorPosition()
			for _, button := range s.group.Buttons() {
				if button.HitTest(mx, my) {
					button.Toggle()
					break
				}
			}
		case TokenA:
			s.startSession()
		case TokenB:
			s.manager.GoToTitleScene()
			return
		case TokenDown, TokenUp:
			s.moveSelection(tok)
		}
	}
}

// moveSelection は上下キーでの種目選択です。未選択から下で先頭を選びます。
func (s *TrainingScene) moveSelection(tok InputToken) {
	buttons := s.group.Buttons()
	if len(buttons) == 0 {
		return
	}
	idx := s.group.ActiveIndex()
	if tok == TokenDown {
		idx++
	} else {
		idx--
	}
	idx = clampInt(idx, 0, len(buttons)-1)
	s.group.SetActiveButton(buttons[idx])
}

func (s *TrainingScene) startSession() {
	idx := s.group.ActiveIndex()
	if idx < 0 {
		return
	}
	kind := TrainingKind(idx)

	pets := AllPets(s.resources.World)
	need := kind.ParticipantCount()
	if len(pets) < need {
		log.Printf("%s には%d体のペットが必要です（現在%d体）", kind.DisplayName(), need, len(pets))
		return
	}

	participants := make([]Participant, 0, need)
	for _, entry := range pets[:need] {
		settings := SettingsComponent.Get(entry)
		participants = append(participants, Participant{ID: settings.ID, Name: settings.Name})
	}

	ctx := &MinigameContext{
		Config:       &s.resources.Config,
		Assets:       newFallbackAssetLoader(s.resources.Assets, &s.resources.Config),
		Sound:        s.resources.Sound,
		UIScale:      s.resources.Config.UI.Scale,
		Participants: participants,
		Rand:         globalRand,
	}

	s.session = NewMinigame(kind, ctx)
	if s.session == nil {
		log.Printf("種目 %v のセッションを生成できませんでした", kind)
		return
	}
	s.sessionKind = kind
	s.state = trainingStatePlaying
}

func (s *TrainingScene) updatePlaying(tokens []InputToken) {
	for _, tok := range tokens {
		if tok == TokenB {
			// 途中離脱。終端フェーズ前なのでステータスには何も反映しません。
			log.Printf("%v のセッションを中断しました（結果は破棄）", s.sessionKind)
			s.abandonSession()
			return
		}
		s.session.HandleInput(tok)
	}

	if result := s.session.Update(); result != nil {
		s.finishSession(result)
	}
}

func (s *TrainingScene) abandonSession() {
	s.session = nil
	s.state = trainingStateMenu
}

func (s *TrainingScene) finishSession(result *TrainingResult) {
	res := s.resources

	applied := ApplyTrainingResult(res.World, result)
	if applied {
		if entry, ok := FindPetByID(res.World, result.ParticipantID); ok {
			settings := SettingsComponent.Get(entry)
			stats := StatsComponent.Get(entry)
			if err := res.Store.SavePetStats(settings.ID, *stats); err != nil {
				log.Printf("セーブに失敗しました: %v", err)
			}
			if err := res.Store.RecordTraining(settings.ID, result.Kind.String(), result.Score); err != nil {
				log.Printf("トレーニング履歴の記録に失敗しました: %v", err)
			}
			s.resultMsg = res.GameDataManager.Messages.FormatMessage("training_result", map[string]interface{}{
				"name":  settings.Name,
				"score": result.Score,
			})
		}
	} else {
		s.resultMsg = res.GameDataManager.Messages.FormatMessage("training_draw", map[string]interface{}{})
	}

	s.session = nil
	s.state = trainingStateResult
}

func (s *TrainingScene) updateResult(tokens []InputToken) {
	for _, tok := range tokens {
		if isConfirm(tok) || tok == TokenB {
			s.state = trainingStateMenu
			return
		}
	}
}

func (s *TrainingScene) Draw(screen *ebiten.Image) {
	cfg := &s.resources.Config
	screen.Fill(cfg.UI.Colors.Background)

	switch s.state {
	case trainingStateMenu:
		s.drawMenu(screen)
	case trainingStatePlaying:
		s.session.Draw(screen)
	case trainingStateResult:
		s.drawCenteredText(screen, s.resultMsg)
	}
}

func (s *TrainingScene) drawMenu(screen *ebiten.Image) {
	for _, button := range s.group.Buttons() {
		s.drawButton(screen, button)
	}
	if s.tooltip != nil {
		s.tooltip.Draw(screen)
	}
}

func (s *TrainingScene) drawButton(screen *ebiten.Image, button *ToggleButton) {
	cfg := &s.resources.Config
	r := button.Rect()
	fill := cfg.UI.Colors.Panel
	if button.Toggled() {
		fill = cfg.UI.Colors.Accent
	}
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y),
		float32(r.Dx()), float32(r.Dy()), fill, true)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y),
		float32(r.Dx()), float32(r.Dy()), 1, cfg.UI.Colors.Border, true)

	drawOpts := &text.DrawOptions{}
	drawOpts.GeoM.Translate(float64(r.Min.X)+12, float64(r.Min.Y)+float64(r.Dy())/2)
	drawOpts.LayoutOptions = text.LayoutOptions{SecondaryAlign: text.AlignCenter}
	drawOpts.ColorScale.ScaleWithColor(cfg.UI.Colors.White)
	text.Draw(screen, button.Label(), s.resources.Font, drawOpts)
}

func (s *TrainingScene) drawCenteredText(screen *ebiten.Image, msg string) {
	cfg := &s.resources.Config
	drawOpts := &text.DrawOptions{}
	drawOpts.GeoM.Translate(float64(cfg.UI.Screen.Width)/2, float64(cfg.UI.Screen.Height)/2)
	drawOpts.LayoutOptions = text.LayoutOptions{
		PrimaryAlign:   text.AlignCenter,
		SecondaryAlign: text.AlignCenter,
	}
	drawOpts.ColorScale.ScaleWithColor(cfg.UI.Colors.White)
	text.Draw(screen, msg, s.resources.Font, drawOpts)
}

func (s *TrainingScene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.resources.Config.UI.Screen.Width, s.resources.Config.UI.Screen.Height
}

// 読み込みに失敗したアセットの代替色。
var placeholderColor = color.RGBA{R: 0xFF, G: 0x00, B: 0xFF, A: 0xFF}

// fallbackAssetLoader はアセット読み込み失敗をシーン境界で一度だけ処理し、
// プレースホルダーに差し替えるローダーです。ミニゲーム側は
// フレームごとのエラー処理から解放されます。
type fallbackAssetLoader struct {
	inner        AssetLoader
	screenW      float64
	screenH      float64
	placeholders map[float64]*Sprite
}

func newFallbackAssetLoader(inner AssetLoader, cfg *Config) *fallbackAssetLoader {
	return &fallbackAssetLoader{
		inner:        inner,
		screenW:      float64(cfg.UI.Screen.Width),
		screenH:      float64(cfg.UI.Screen.Height),
		placeholders: make(map[float64]*Sprite),
	}
}

func (l *fallbackAssetLoader) LoadScaledSprite(id resource.ImageID, percentOfHeight float64, keepAspect bool) (*Sprite, error) {
	s, err := l.inner.LoadScaledSprite(id, percentOfHeight, keepAspect)
	if err == nil {
		return s, nil
	}
	var loadErr *AssetLoadError
	if errors.As(err, &loadErr) {
		log.Printf("警告: %v。プレースホルダーで続行します。", loadErr)
		return l.placeholder(percentOfHeight), nil
	}
	return nil, err
}

// placeholder は目標サイズに合わせた単色スプライトを返します。
func (l *fallbackAssetLoader) placeholder(percentOfHeight float64) *Sprite {
	if s, ok := l.placeholders[percentOfHeight]; ok {
		return s
	}
	size := int(percentOfHeight / 100.0 * l.screenH)
	if size < 1 {
		size = 1
	}
	img := ebiten.NewImage(size, size)
	img.Fill(placeholderColor)
	s := &Sprite{
		Image:  img,
		W:      float64(size),
		H:      float64(size),
		ScaleX: 1,
		ScaleY: 1,
	}
	l.placeholders[percentOfHeight] = s
	return s
}
