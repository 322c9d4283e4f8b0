package main

import (
	"log"

	"github.com/yohamta/donburi"
)

// ApplyTrainingResult は結果をペットエンティティへ反映します。
// ステータスへの書き込みはこの経路だけです（ミニゲームは直接触りません）。
// 反映したら true、対象が見つからないか結果が空なら false を返します。
func ApplyTrainingResult(world donburi.World, res *TrainingResult) bool {
	if res == nil || res.ParticipantID == "" || len(res.Deltas) == 0 {
		return false
	}
	entry, ok := FindPetByID(world, res.ParticipantID)
	if !ok {
		log.Printf("警告: トレーニング結果の対象ペット '%s' が見つかりません", res.ParticipantID)
		return false
	}

	stats := StatsComponent.Get(entry)
	stats.Apply(res.Deltas)

	condition := ConditionComponent.Get(entry)
	condition.Fatigue++

	return true
}
