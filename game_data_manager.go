package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	resource "github.com/quasilyte/ebitengine-resource"
)

// GameDataManager は種族定義などのすべての静的ゲームデータ定義とメッセージを保持します。
type GameDataManager struct {
	speciesDefinitions map[string]*SpeciesDefinition
	Messages           *MessageManager
	Font               text.Face // UIで使用するフォント
}

// NewGameDataManager はGameDataManagerの新しいインスタンスを作成し、初期化します。
func NewGameDataManager(font text.Face, assetPaths *AssetPaths, r *resource.Loader) (*GameDataManager, error) {
	messageManager, err := NewMessageManager(assetPaths.Messages, r)
	if err != nil {
		return nil, fmt.Errorf("メッセージマネージャーの初期化に失敗しました: %w", err)
	}

	gdm := &GameDataManager{
		speciesDefinitions: make(map[string]*SpeciesDefinition),
		Messages:           messageManager,
		Font:               font,
	}
	return gdm, nil
}

// AddSpeciesDefinition は種族定義をマネージャーに追加します。
func (gdm *GameDataManager) AddSpeciesDefinition(sd *SpeciesDefinition) error {
	if sd == nil {
		return fmt.Errorf("nilのSpeciesDefinitionを追加できません")
	}
	if _, exists := gdm.speciesDefinitions[sd.ID]; exists {
		return fmt.Errorf("ID %s のSpeciesDefinitionは既に存在します", sd.ID)
	}
	gdm.speciesDefinitions[sd.ID] = sd
	return nil
}

// GetSpeciesDefinition はIDによって種族定義を取得します。
func (gdm *GameDataManager) GetSpeciesDefinition(id string) (*SpeciesDefinition, bool) {
	sd, found := gdm.speciesDefinitions[id]
	return sd, found
}

// GetAllSpeciesDefinitions はすべての種族定義のスライスを返します。
// 注意: マップの反復処理は順序を保証しません。順序が必要な場合はソートしてください。
func (gdm *GameDataManager) GetAllSpeciesDefinitions() []*SpeciesDefinition {
	defs := make([]*SpeciesDefinition, 0, len(gdm.speciesDefinitions))
	for _, sd := range gdm.speciesDefinitions {
		defs = append(defs, sd)
	}
	return defs
}
