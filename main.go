package main

import (
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"

	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/noppikinatta/bamenn"
	"github.com/yohamta/donburi"
	"golang.org/x/image/font/basicfont"
)

var globalRand *rand.Rand

func main() {
	globalRand = rand.New(rand.NewSource(time.Now().UnixNano()))

	wd, err := os.Getwd()
	if err != nil {
		log.Printf("カレントワーキングディレクトリの取得に失敗しました: %v", err)
	} else {
		log.Printf("カレントワーキングディレクトリ: %s", wd)
	}

	config, err := LoadConfig("")
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// Initialize audio context for the resource loader
	audioContext := audio.NewContext(soundSampleRate)
	initResources(audioContext, &config.AssetPaths)

	fontFace, err := LoadFont(FontMPLUS1pRegular)
	if err != nil {
		// フォントが無くてもゲームは起動できるようにする
		log.Printf("フォントの読み込みに失敗したため内蔵フォントを使用します: %v", err)
		fontFace = text.NewGoXFace(basicfont.Face7x13)
	}

	gdm, err := NewGameDataManager(fontFace, &config.AssetPaths, r)
	if err != nil {
		log.Fatalf("GameDataManagerの初期化に失敗しました: %v", err)
	}

	if err := LoadAllStaticGameData(gdm); err != nil {
		log.Fatalf("静的ゲームデータの読み込みに失敗しました: %v", err)
	}

	petLoadouts, err := LoadPetLoadouts()
	if err != nil {
		log.Fatalf("ペットロードアウトの読み込みに失敗しました: %v", err)
	}

	gameData := &GameData{
		Pets: petLoadouts,
	}

	// ペットエンティティのワールドはシーンをまたいで共有します
	world := donburi.NewWorld()
	CreatePetEntities(world, gameData, gdm)

	// セーブデータ。開けなくてもゲーム自体は続行できます
	store, err := OpenSaveStore(config.AssetPaths.SaveDB)
	if err != nil {
		log.Printf("セーブデータを開けませんでした（記録なしで続行します）: %v", err)
		store = nil
	}
	RestorePetStats(world, store)

	// ボタン用のシンプルな画像を作成
	buttonImage := ebiten.NewImage(30, 30)
	buttonImage.Fill(color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xFF})

	res := &SharedResources{
		GameData:        gameData,
		GameDataManager: gdm,
		Config:          config,
		Font:            fontFace,
		World:           world,
		Assets:          NewSpriteCache(r, &config),
		Sound:           NewResourceSoundPlayer(audioContext, r, &config.AssetPaths),
		Store:           store,
		ButtonImage: &widget.ButtonImage{
			Idle:    image.NewNineSliceSimple(buttonImage, 10, 10),
			Hover:   image.NewNineSliceSimple(buttonImage, 10, 10),
			Pressed: image.NewNineSliceSimple(buttonImage, 10, 10),
		},
	}

	manager := NewSceneManager(res)

	ebiten.SetWindowSize(config.UI.Screen.Width, config.UI.Screen.Height)
	ebiten.SetWindowTitle("DigiPet Training")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(manager.sequence); err != nil {
		log.Fatal(err)
	}
}

// SceneManagerはbamennのシーケンスと共有リソースを管理します
type SceneManager struct {
	sequence  *bamenn.Sequence
	resources *SharedResources
}

// NewSceneManagerは新しいシーンマネージャを作成し、初期シーンを設定します
func NewSceneManager(res *SharedResources) *SceneManager {
	m := &SceneManager{
		resources: res,
	}

	initialScene, err := m.newTitleScene()
	if err != nil {
		log.Fatalf("初期シーンの作成に失敗しました: %v", err)
	}

	seq := bamenn.NewSequence(initialScene)
	m.sequence = seq

	return m
}

// 各シーンを生成するファクトリ関数です
// これにより、循環参照することなく、各シーンからマネージャ経由で他のシーンに遷移できます

func (m *SceneManager) newTitleScene() (Scene, error) {
	return NewTitleScene(m.resources, m), nil
}

func (m *SceneManager) newTrainingScene() (Scene, error) {
	return NewTrainingScene(m.resources, m), nil
}

func (m *SceneManager) newCareScene() (Scene, error) {
	return NewPlaceholderScene(m.resources, m, "お世話モードは準備中です。"), nil
}

// GoTo... メソッド群は、各シーンから呼び出され、指定されたシーンに遷移させます

func (m *SceneManager) GoToTitleScene() {
	scene, err := m.newTitleScene()
	if err != nil {
		log.Printf("タイトルシーンへの切り替えに失敗しました: %v", err)
		return
	}
	m.sequence.Switch(scene)
}

func (m *SceneManager) GoToTrainingScene() {
	scene, err := m.newTrainingScene()
	if err != nil {
		log.Printf("トレーニングシーンへの切り替えに失敗しました: %v", err)
		return
	}
	m.sequence.Switch(scene)
}

func (m *SceneManager) GoToCareScene() {
	scene, err := m.newCareScene()
	if err != nil {
		log.Printf("お世話シーンへの切り替えに失敗しました: %v", err)
		return
	}
	m.sequence.Switch(scene)
}
