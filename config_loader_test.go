package main

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileFallsBackToDefaults(t *testing.T) {
	// デフォルトパスが存在しないディレクトリで実行する
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.UI.Screen.Width != 1280 || cfg.UI.Screen.Height != 720 {
		t.Errorf("画面サイズ = %dx%d, want 1280x720", cfg.UI.Screen.Width, cfg.UI.Screen.Height)
	}
	if cfg.Training.Charge.BarLevel != 14 {
		t.Errorf("BarLevel = %d, want 14", cfg.Training.Charge.BarLevel)
	}
}

func TestLoadConfigExplicitMissingPathIsError(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "no_such_settings.yaml"))
	if err == nil {
		t.Fatal("明示パスの不在がエラーになりません")
	}
}

func TestLoadConfigReadsYAMLOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	body := []byte(`
ui:
  screen:
    width: 640
    height: 480
training:
  charge:
    barLevel: 5
    windowTicks: 100
`)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.UI.Screen.Width != 640 || cfg.UI.Screen.Height != 480 {
		t.Errorf("画面サイズ = %dx%d, want 640x480", cfg.UI.Screen.Width, cfg.UI.Screen.Height)
	}
	if cfg.Training.Charge.BarLevel != 5 {
		t.Errorf("BarLevel = %d, want 5", cfg.Training.Charge.BarLevel)
	}
	// YAMLに無い値はデフォルトのまま
	if cfg.Training.Charge.GraceTicks != 30 {
		t.Errorf("GraceTicks = %d, want 30", cfg.Training.Charge.GraceTicks)
	}
	if cfg.Training.Excite.WindowTicks != 480 {
		t.Errorf("Excite.WindowTicks = %d, want 480", cfg.Training.Excite.WindowTicks)
	}
}

func TestLoadConfigBrokenYAMLIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("ui: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("壊れたYAMLがエラーになりません")
	}
}

func TestParseHexColor(t *testing.T) {
	got := parseHexColor("ff6432")
	want := color.RGBA{R: 255, G: 100, B: 50, A: 255}
	if got != want {
		t.Errorf("parseHexColor = %v, want %v", got, want)
	}

	// 不正な値は白にフォールバックする
	if parseHexColor("zzzzzz") != color.White {
		t.Error("不正な16進文字列が白になりません")
	}
	if parseHexColor("fff") != (color.RGBA{A: 255}) {
		t.Error("桁数違いはゼロ値RGBAになるはずです")
	}
}
