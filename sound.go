package main

import (
	"bytes"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	resource "github.com/quasilyte/ebitengine-resource"
)

const soundSampleRate = 44100

// SoundID はUI効果音の論理IDです。
type SoundID int

const (
	SoundPump SoundID = iota
	SoundHit
	SoundMax
	SoundWhiff
	SoundRound
	SoundResult
)

var soundRawIDs = map[SoundID]resource.RawID{
	SoundPump:   RawSoundPumpWAV,
	SoundHit:    RawSoundHitWAV,
	SoundMax:    RawSoundMaxWAV,
	SoundWhiff:  RawSoundWhiffWAV,
	SoundRound:  RawSoundRoundWAV,
	SoundResult: RawSoundResultWAV,
}

// SoundPlayer は発火して忘れる効果音再生の能力です。戻り値はありません。
type SoundPlayer interface {
	Play(id SoundID)
}

// ResourceSoundPlayer はWAVを起動時に一度デコードし、再生ごとに
// 使い捨てプレイヤーを起こす実装です。
type ResourceSoundPlayer struct {
	ctx     *audio.Context
	samples map[SoundID][]byte
}

func NewResourceSoundPlayer(ctx *audio.Context, loader *resource.Loader, assetPaths *AssetPaths) *ResourceSoundPlayer {
	p := &ResourceSoundPlayer{
		ctx:     ctx,
		samples: make(map[SoundID][]byte),
	}
	for id, rawID := range soundRawIDs {
		path := assetPaths.Sounds[rawID]
		if _, err := os.Stat(path); err != nil {
			log.Printf("効果音 %s が見つからないため無音にします", path)
			continue
		}
		res := loader.LoadRaw(rawID)
		stream, err := wav.DecodeWithSampleRate(soundSampleRate, bytes.NewReader(res.Data))
		if err != nil {
			log.Printf("効果音 %s のデコードに失敗しました: %v", path, err)
			continue
		}
		data, err := io.ReadAll(stream)
		if err != nil {
			log.Printf("効果音 %s の読み込みに失敗しました: %v", path, err)
			continue
		}
		p.samples[id] = data
	}
	return p
}

// Play は対応するサンプルがあれば再生します。無ければ何もしません。
func (p *ResourceSoundPlayer) Play(id SoundID) {
	data, ok := p.samples[id]
	if !ok {
		return
	}
	p.ctx.NewPlayerFromBytes(data).Play()
}

// NopSoundPlayer は何も再生しない実装です。テストや音声無効時に使います。
type NopSoundPlayer struct{}

func (NopSoundPlayer) Play(SoundID) {}
