package main

import (
	"image/color"

	resource "github.com/quasilyte/ebitengine-resource"
)

// AssetPaths はゲームが参照する外部アセットのパスをまとめたものです。
type AssetPaths struct {
	GameSettings string
	Messages     string
	SpeciesCSV   string
	PetsCSV      string
	Font         string
	SaveDB       string
	Images       map[resource.ImageID]string
	Sounds       map[resource.RawID]string
}

// Config は実行時に参照される全設定です。game_settings.yaml から構築されます。
type Config struct {
	UI         UIConfig
	Training   TrainingConfig
	AssetPaths AssetPaths
}

type UIConfig struct {
	Screen struct {
		Width  int
		Height int
	}
	Scale   float64
	Tooltip TooltipConfig
	Colors  ColorPalette
}

type TooltipConfig struct {
	MaxWidthRatio float64 // 画面幅に対する最大幅の比率
	Padding       float64
	FadeTicks     int
	LineHeight    float64
	CornerRadius  float64
}

// ColorPalette はUI全体で使うテーマカラーです。
type ColorPalette struct {
	White      color.Color
	Yellow     color.Color
	Gray       color.Color
	Accent     color.Color
	Panel      color.Color
	Border     color.Color
	Background color.Color
}

// TrainingConfig は各トレーニングのバランス値です。
type TrainingConfig struct {
	Charge     ChargeConfig
	Excite     ExciteConfig
	Shake      ShakeConfig
	Versus     VersusConfig
	CountMatch CountMatchConfig
	Mogera     MogeraConfig
}

type ChargeConfig struct {
	BarLevel    int // 強さバーの最大段数
	WindowTicks int // 連打を受け付けるtick数
	GraceTicks  int // バーが満タンになってから攻撃へ移るまでの猶予
	WindupTicks int // 攻撃モーションの溜め
	ImpactTicks int // ヒット演出の長さ
}

type ExciteConfig struct {
	WindowTicks int
	Max         int
}

type ShakeConfig struct {
	WindowTicks int
	Max         int
}

type VersusConfig struct {
	Rounds        int
	RevealTicks   int // 両者の選択を見せる時間
	IntervalTicks int // ラウンド間の間
}

type CountMatchConfig struct {
	Rounds      int
	MaxCount    int // 表示する個数の上限（1..MaxCount）
	FlashTicks  int
	AnswerTicks int
}

type MogeraConfig struct {
	Pops     int
	PopTicks int
	GapTicks int
}
