package main

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	resource "github.com/quasilyte/ebitengine-resource"
)

func TestSpriteCacheScalesToPercentOfHeight(t *testing.T) {
	img := ebiten.NewImage(100, 50)
	cache := newSpriteCacheForTest(1280, 720, func(resource.ImageID) (*ebiten.Image, int, int, error) {
		return img, 100, 50, nil
	})

	s, err := cache.LoadScaledSprite(ImagePetIdle, 25, true)
	if err != nil {
		t.Fatalf("LoadScaledSprite: %v", err)
	}

	// 目標高 = 720*0.25 = 180
	if s.H != 180 {
		t.Errorf("H = %v, want 180", s.H)
	}
	// アスペクト固定なので幅は3.6倍の360
	if s.W != 360 {
		t.Errorf("W = %v, want 360", s.W)
	}
	if s.ScaleX != s.ScaleY {
		t.Errorf("アスペクト固定でScaleX(%v) != ScaleY(%v)", s.ScaleX, s.ScaleY)
	}
}

func TestSpriteCacheStretchWidthWhenAspectFree(t *testing.T) {
	img := ebiten.NewImage(100, 50)
	cache := newSpriteCacheForTest(1280, 720, func(resource.ImageID) (*ebiten.Image, int, int, error) {
		return img, 100, 50, nil
	})

	s, err := cache.LoadScaledSprite(ImagePetIdle, 50, false)
	if err != nil {
		t.Fatalf("LoadScaledSprite: %v", err)
	}
	// 幅も画面幅の50% = 640まで引き伸ばされる
	if s.W != 640 {
		t.Errorf("W = %v, want 640", s.W)
	}
	if s.H != 360 {
		t.Errorf("H = %v, want 360", s.H)
	}
}

func TestSpriteCacheMemoizesDecode(t *testing.T) {
	img := ebiten.NewImage(8, 8)
	decodes := 0
	cache := newSpriteCacheForTest(1280, 720, func(resource.ImageID) (*ebiten.Image, int, int, error) {
		decodes++
		return img, 8, 8, nil
	})

	a, _ := cache.LoadScaledSprite(ImagePetIdle, 25, true)
	b, _ := cache.LoadScaledSprite(ImagePetIdle, 25, true)
	if decodes != 1 {
		t.Errorf("デコード回数 = %d, want 1", decodes)
	}
	if a != b {
		t.Error("同じキーで別インスタンスが返りました")
	}

	// キーが違えば別エントリになる
	cache.LoadScaledSprite(ImagePetIdle, 30, true)
	cache.LoadScaledSprite(ImagePetIdle, 25, false)
	if decodes != 3 {
		t.Errorf("デコード回数 = %d, want 3", decodes)
	}

	cache.Purge()
	cache.LoadScaledSprite(ImagePetIdle, 25, true)
	if decodes != 4 {
		t.Errorf("Purge後のデコード回数 = %d, want 4", decodes)
	}
}

func TestSpriteCacheDecodeFailureIsAssetLoadError(t *testing.T) {
	cause := errors.New("decode failed")
	cache := newSpriteCacheForTest(1280, 720, func(resource.ImageID) (*ebiten.Image, int, int, error) {
		return nil, 0, 0, cause
	})

	_, err := cache.LoadScaledSprite(ImagePetIdle, 25, true)
	var loadErr *AssetLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("err = %v, want *AssetLoadError", err)
	}
	if !errors.Is(err, cause) {
		t.Error("元のエラーがUnwrapで辿れません")
	}
}

func TestSpriteCacheRejectsMissingFile(t *testing.T) {
	cache := newSpriteCacheForTest(1280, 720, func(resource.ImageID) (*ebiten.Image, int, int, error) {
		t.Fatal("存在しないファイルでデコードが呼ばれました")
		return nil, 0, 0, nil
	})
	cache.paths[ImagePetIdle] = "assets/images/pets/no_such_file.png"

	_, err := cache.LoadScaledSprite(ImagePetIdle, 25, true)
	var loadErr *AssetLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("err = %v, want *AssetLoadError", err)
	}
}
