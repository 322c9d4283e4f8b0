package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	resource "github.com/quasilyte/ebitengine-resource"
)

// AssetLoadError はスプライトアセットを読み込めなかったことを表します。
// 呼び出し側（シーン側）が一度だけ捕捉し、プレースホルダーに差し替えます。
type AssetLoadError struct {
	Path string
	Err  error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("アセット %s の読み込みに失敗しました: %v", e.Path, e.Err)
}

func (e *AssetLoadError) Unwrap() error {
	return e.Err
}

// Sprite は描画スケール確定済みの画像リソースです。
// Image は元解像度のまま保持し、描画時に ScaleX/ScaleY を適用します。
type Sprite struct {
	Image  *ebiten.Image
	W, H   float64 // スケール適用後のピクセルサイズ
	ScaleX float64
	ScaleY float64
}

// AssetLoader は論理IDと目標サイズからスプライトを引く能力です。
type AssetLoader interface {
	// LoadScaledSprite は画面高さに対する割合でスケールされたスプライトを返します。
	// keepAspect が false の場合、幅は画面幅に対して同じ割合まで引き伸ばされます。
	LoadScaledSprite(id resource.ImageID, percentOfHeight float64, keepAspect bool) (*Sprite, error)
}

type spriteKey struct {
	id         resource.ImageID
	percent    float64
	keepAspect bool
}

// SpriteCache は (ID, 目標割合, アスペクト固定) をキーに、デコードとスケール計算を
// プロセス内で1回に抑える共有キャッシュです。セッションごとの作り直しはしません。
type SpriteCache struct {
	screenW float64
	screenH float64
	paths   map[resource.ImageID]string
	decode  func(id resource.ImageID) (img *ebiten.Image, w, h int, err error)
	entries map[spriteKey]*Sprite
}

// NewSpriteCache はebitengine-resourceのローダーを背にしたキャッシュを作ります。
func NewSpriteCache(loader *resource.Loader, cfg *Config) *SpriteCache {
	c := &SpriteCache{
		screenW: float64(cfg.UI.Screen.Width),
		screenH: float64(cfg.UI.Screen.Height),
		paths:   cfg.AssetPaths.Images,
		entries: make(map[spriteKey]*Sprite),
	}
	c.decode = func(id resource.ImageID) (*ebiten.Image, int, int, error) {
		img := loader.LoadImage(id).Data
		bounds := img.Bounds()
		return img, bounds.Dx(), bounds.Dy(), nil
	}
	return c
}

// newSpriteCacheForTest はデコードフックを差し替えたキャッシュを作ります。
func newSpriteCacheForTest(screenW, screenH float64, decode func(id resource.ImageID) (*ebiten.Image, int, int, error)) *SpriteCache {
	return &SpriteCache{
		screenW: screenW,
		screenH: screenH,
		paths:   map[resource.ImageID]string{},
		decode:  decode,
		entries: make(map[spriteKey]*Sprite),
	}
}

func (c *SpriteCache) LoadScaledSprite(id resource.ImageID, percentOfHeight float64, keepAspect bool) (*Sprite, error) {
	key := spriteKey{id: id, percent: percentOfHeight, keepAspect: keepAspect}
	if s, ok := c.entries[key]; ok {
		return s, nil
	}

	// リソースローダーは読み込み失敗でpanicするため、先にファイルの存在を確認します。
	if path, ok := c.paths[id]; ok {
		if _, err := os.Stat(path); err != nil {
			return nil, &AssetLoadError{Path: path, Err: err}
		}
	}

	img, w, h, err := c.decode(id)
	if err != nil {
		return nil, &AssetLoadError{Path: c.paths[id], Err: err}
	}
	if w <= 0 || h <= 0 {
		return nil, &AssetLoadError{Path: c.paths[id], Err: fmt.Errorf("画像サイズが不正です: %dx%d", w, h)}
	}

	targetH := percentOfHeight / 100.0 * c.screenH
	scaleY := targetH / float64(h)
	scaleX := scaleY
	if !keepAspect {
		targetW := percentOfHeight / 100.0 * c.screenW
		scaleX = targetW / float64(w)
	}

	s := &Sprite{
		Image:  img,
		W:      float64(w) * scaleX,
		H:      float64(h) * scaleY,
		ScaleX: scaleX,
		ScaleY: scaleY,
	}
	c.entries[key] = s
	return s, nil
}

// Purge はキャッシュ内容を捨てます。表示スケールが変わったときに呼びます。
func (c *SpriteCache) Purge() {
	c.entries = make(map[spriteKey]*Sprite)
}
