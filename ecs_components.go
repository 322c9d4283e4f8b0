package main

import (
	"github.com/yohamta/donburi"
)

// --- Componentの型定義 ---
// 各コンポーネントにユニークな型情報を持たせます。
var (
	SettingsComponent  = donburi.NewComponentType[PetSettings]()
	StatsComponent     = donburi.NewComponentType[PetStats]()
	ConditionComponent = donburi.NewComponentType[PetCondition]()
)
