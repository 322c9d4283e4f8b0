package main

import (
	"log"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

// CreatePetEntities は手持ちペットのロードアウトからエンティティを生成します。
// 種族が見つからない場合はデフォルト種族で続行します（起動を止めない）。
func CreatePetEntities(world donburi.World, gameData *GameData, gdm *GameDataManager) {
	for _, loadout := range gameData.Pets {
		species, ok := gdm.GetSpeciesDefinition(loadout.SpeciesID)
		if !ok {
			log.Printf("警告: 種族ID '%s' が見つかりません。'%s'にはデフォルト種族を使用します。", loadout.SpeciesID, loadout.Name)
			species = &SpeciesDefinition{ID: "fallback", Name: "フォールバック", Stage: "幼年期", BaseStats: PetStats{Strength: 1, Stamina: 1}}
		}

		entry := world.Entry(world.Create(SettingsComponent, StatsComponent, ConditionComponent))
		SettingsComponent.SetValue(entry, PetSettings{
			ID:        loadout.ID,
			Name:      loadout.Name,
			SpeciesID: species.ID,
		})
		StatsComponent.SetValue(entry, species.BaseStats)
		ConditionComponent.SetValue(entry, PetCondition{})
	}
	log.Printf("%d体のペットを初期化しました。", len(gameData.Pets))
}

// FindPetByID はIDでペットエンティティを探します。
func FindPetByID(world donburi.World, id string) (*donburi.Entry, bool) {
	var found *donburi.Entry
	query.NewQuery(filter.Contains(SettingsComponent)).Each(world, func(entry *donburi.Entry) {
		if found != nil {
			return
		}
		if SettingsComponent.Get(entry).ID == id {
			found = entry
		}
	})
	return found, found != nil
}

// AllPets は登録順にすべてのペットエンティティを返します。
func AllPets(world donburi.World) []*donburi.Entry {
	var pets []*donburi.Entry
	query.NewQuery(filter.Contains(SettingsComponent)).Each(world, func(entry *donburi.Entry) {
		pets = append(pets, entry)
	})
	return pets
}

// RestorePetStats はセーブデータに残っているステータスを反映します。
func RestorePetStats(world donburi.World, store *SaveStore) {
	if store == nil {
		return
	}
	for _, entry := range AllPets(world) {
		settings := SettingsComponent.Get(entry)
		stats, found, err := store.LoadPetStats(settings.ID)
		if err != nil {
			log.Printf("ペット %s のセーブデータ読み込みに失敗しました: %v", settings.ID, err)
			continue
		}
		if found {
			StatsComponent.SetValue(entry, stats)
		}
	}
}
