package main

import (
	"fmt"
	"image/color"
	"log"
	"os"

	resource "github.com/quasilyte/ebitengine-resource"
	"gopkg.in/yaml.v3"
)

// GameSettings は game_settings.yaml の構造を定義します。
type GameSettings struct {
	UI struct {
		Screen struct {
			Width  int `yaml:"width"`
			Height int `yaml:"height"`
		} `yaml:"screen"`
		Scale   float64 `yaml:"scale"`
		Tooltip struct {
			MaxWidthRatio float64 `yaml:"maxWidthRatio"`
			Padding       float64 `yaml:"padding"`
			FadeTicks     int     `yaml:"fadeTicks"`
			LineHeight    float64 `yaml:"lineHeight"`
			CornerRadius  float64 `yaml:"cornerRadius"`
		} `yaml:"tooltip"`
		Colors struct {
			White      string `yaml:"white"`
			Yellow     string `yaml:"yellow"`
			Gray       string `yaml:"gray"`
			Accent     string `yaml:"accent"`
			Panel      string `yaml:"panel"`
			Border     string `yaml:"border"`
			Background string `yaml:"background"`
		} `yaml:"colors"`
	} `yaml:"ui"`
	Training struct {
		Charge struct {
			BarLevel    int `yaml:"barLevel"`
			WindowTicks int `yaml:"windowTicks"`
			GraceTicks  int `yaml:"graceTicks"`
			WindupTicks int `yaml:"windupTicks"`
			ImpactTicks int `yaml:"impactTicks"`
		} `yaml:"charge"`
		Excite struct {
			WindowTicks int `yaml:"windowTicks"`
			Max         int `yaml:"max"`
		} `yaml:"excite"`
		Shake struct {
			WindowTicks int `yaml:"windowTicks"`
			Max         int `yaml:"max"`
		} `yaml:"shake"`
		Versus struct {
			Rounds        int `yaml:"rounds"`
			RevealTicks   int `yaml:"revealTicks"`
			IntervalTicks int `yaml:"intervalTicks"`
		} `yaml:"versus"`
		CountMatch struct {
			Rounds      int `yaml:"rounds"`
			MaxCount    int `yaml:"maxCount"`
			FlashTicks  int `yaml:"flashTicks"`
			AnswerTicks int `yaml:"answerTicks"`
		} `yaml:"countmatch"`
		Mogera struct {
			Pops     int `yaml:"pops"`
			PopTicks int `yaml:"popTicks"`
			GapTicks int `yaml:"gapTicks"`
		} `yaml:"mogera"`
	} `yaml:"training"`
}

const defaultSettingsPath = "assets/configs/game_settings.yaml"

// DefaultGameSettings は設定ファイルが無いときのフォールバック値です。
func DefaultGameSettings() GameSettings {
	var s GameSettings
	s.UI.Screen.Width = 1280
	s.UI.Screen.Height = 720
	s.UI.Scale = 1.0
	s.UI.Tooltip.MaxWidthRatio = 0.4
	s.UI.Tooltip.Padding = 12
	s.UI.Tooltip.FadeTicks = 20
	s.UI.Tooltip.LineHeight = 18
	s.UI.Tooltip.CornerRadius = 8
	s.UI.Colors.White = "ffffff"
	s.UI.Colors.Yellow = "ffff64"
	s.UI.Colors.Gray = "969696"
	s.UI.Colors.Accent = "ff6432"
	s.UI.Colors.Panel = "1e283c"
	s.UI.Colors.Border = "c8c8dc"
	s.UI.Colors.Background = "1e1e28"
	s.Training.Charge.BarLevel = 14
	s.Training.Charge.WindowTicks = 600
	s.Training.Charge.GraceTicks = 30
	s.Training.Charge.WindupTicks = 45
	s.Training.Charge.ImpactTicks = 40
	s.Training.Excite.WindowTicks = 480
	s.Training.Excite.Max = 20
	s.Training.Shake.WindowTicks = 480
	s.Training.Shake.Max = 16
	s.Training.Versus.Rounds = 3
	s.Training.Versus.RevealTicks = 30
	s.Training.Versus.IntervalTicks = 40
	s.Training.CountMatch.Rounds = 3
	s.Training.CountMatch.MaxCount = 4
	s.Training.CountMatch.FlashTicks = 90
	s.Training.CountMatch.AnswerTicks = 240
	s.Training.Mogera.Pops = 8
	s.Training.Mogera.PopTicks = 45
	s.Training.Mogera.GapTicks = 20
	return s
}

// LoadConfig は設定をロードします。
// 探索順: customPath -> ./assets/configs/game_settings.yaml -> デフォルト値
func LoadConfig(customPath string) (Config, error) {
	settings := DefaultGameSettings()

	path := customPath
	if path == "" {
		path = defaultSettingsPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return Config{}, fmt.Errorf("%s の解析に失敗しました: %w", path, err)
		}
	case customPath != "" && os.IsNotExist(err):
		// 明示されたパスが無いのはエラー扱い
		return Config{}, fmt.Errorf("設定ファイル %s が見つかりません: %w", customPath, err)
	default:
		log.Printf("設定ファイル %s が見つからないためデフォルト値を使用します", path)
	}

	return buildConfig(settings), nil
}

func buildConfig(s GameSettings) Config {
	assetPaths := AssetPaths{
		GameSettings: defaultSettingsPath,
		Messages:     "assets/texts/messages.json",
		SpeciesCSV:   "assets/databases/species.csv",
		PetsCSV:      "assets/databases/pets.csv",
		Font:         "assets/fonts/MPLUS1p-Regular.ttf",
		SaveDB:       "savedata/digipet.db",
		Images: map[resource.ImageID]string{
			ImageTrainingBarSegment:  "assets/images/training/bar_segment.png",
			ImageTrainingBarBack:     "assets/images/training/bar_back.png",
			ImageTrainingMaxBanner:   "assets/images/training/max_banner.png",
			ImageTrainingDummy:       "assets/images/training/dummy.png",
			ImageTrainingSpark:       "assets/images/training/spark.png",
			ImageTrainingMole:        "assets/images/training/mole.png",
			ImageTrainingMoleHole:    "assets/images/training/mole_hole.png",
			ImageTrainingTree:        "assets/images/training/tree.png",
			ImageTrainingCounterIcon: "assets/images/training/counter_icon.png",
			ImagePetIdle:             "assets/images/pets/idle.png",
			ImagePetAttack:           "assets/images/pets/attack.png",
			ImagePetHappy:            "assets/images/pets/happy.png",
		},
		Sounds: map[resource.RawID]string{
			RawSoundPumpWAV:   "assets/sounds/pump.wav",
			RawSoundHitWAV:    "assets/sounds/hit.wav",
			RawSoundMaxWAV:    "assets/sounds/max.wav",
			RawSoundWhiffWAV:  "assets/sounds/whiff.wav",
			RawSoundRoundWAV:  "assets/sounds/round.wav",
			RawSoundResultWAV: "assets/sounds/result.wav",
		},
	}

	cfg := Config{
		AssetPaths: assetPaths,
		Training: TrainingConfig{
			Charge:     ChargeConfig(s.Training.Charge),
			Excite:     ExciteConfig(s.Training.Excite),
			Shake:      ShakeConfig(s.Training.Shake),
			Versus:     VersusConfig(s.Training.Versus),
			CountMatch: CountMatchConfig(s.Training.CountMatch),
			Mogera:     MogeraConfig(s.Training.Mogera),
		},
	}
	cfg.UI.Screen.Width = s.UI.Screen.Width
	cfg.UI.Screen.Height = s.UI.Screen.Height
	cfg.UI.Scale = s.UI.Scale
	cfg.UI.Tooltip = TooltipConfig(s.UI.Tooltip)
	cfg.UI.Colors = ColorPalette{
		White:      parseHexColor(s.UI.Colors.White),
		Yellow:     parseHexColor(s.UI.Colors.Yellow),
		Gray:       parseHexColor(s.UI.Colors.Gray),
		Accent:     parseHexColor(s.UI.Colors.Accent),
		Panel:      parseHexColor(s.UI.Colors.Panel),
		Border:     parseHexColor(s.UI.Colors.Border),
		Background: parseHexColor(s.UI.Colors.Background),
	}
	return cfg
}

// parseHexColor は16進数文字列からcolor.Colorをパースします。
func parseHexColor(s string) color.Color {
	var r, g, b uint8
	if len(s) == 6 {
		_, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b)
		if err != nil {
			log.Printf("Failed to parse hex color %s: %v", s, err)
			return color.White
		}
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
