package main

import (
	"testing"

	"github.com/yohamta/donburi"
)

func newTestWorldWithPet(id string, stats PetStats) donburi.World {
	world := donburi.NewWorld()
	entry := world.Entry(world.Create(SettingsComponent, StatsComponent, ConditionComponent))
	SettingsComponent.SetValue(entry, PetSettings{ID: id, Name: "テスト", SpeciesID: "agumon"})
	StatsComponent.SetValue(entry, stats)
	ConditionComponent.SetValue(entry, PetCondition{})
	return world
}

func TestApplyTrainingResultUpdatesStatsAndFatigue(t *testing.T) {
	world := newTestWorldWithPet("p1", PetStats{Strength: 10, Stamina: 5})

	applied := ApplyTrainingResult(world, &TrainingResult{
		ParticipantID: "p1",
		Kind:          TrainingCharge,
		Score:         14,
		Deltas:        map[StatKind]int{StatStrength: 7},
	})
	if !applied {
		t.Fatal("結果が適用されませんでした")
	}

	entry, _ := FindPetByID(world, "p1")
	stats := StatsComponent.Get(entry)
	if stats.Strength != 17 {
		t.Errorf("Strength = %d, want 17", stats.Strength)
	}
	if stats.Stamina != 5 {
		t.Errorf("対象外のStaminaが動きました: %d", stats.Stamina)
	}
	condition := ConditionComponent.Get(entry)
	if condition.Fatigue != 1 {
		t.Errorf("Fatigue = %d, want 1", condition.Fatigue)
	}
}

func TestApplyTrainingResultClampsAtCap(t *testing.T) {
	world := newTestWorldWithPet("p1", PetStats{Strength: statCap - 1})

	ApplyTrainingResult(world, &TrainingResult{
		ParticipantID: "p1",
		Kind:          TrainingCharge,
		Deltas:        map[StatKind]int{StatStrength: 50},
	})

	entry, _ := FindPetByID(world, "p1")
	if got := StatsComponent.Get(entry).Strength; got != statCap {
		t.Errorf("Strength = %d, want %d（上限で飽和）", got, statCap)
	}
}

func TestApplyTrainingResultRejectsEmptyResults(t *testing.T) {
	world := newTestWorldWithPet("p1", PetStats{Strength: 10})

	cases := []*TrainingResult{
		nil,
		{Kind: TrainingVersus},                                            // 引き分け（対象なし）
		{ParticipantID: "p1", Kind: TrainingCharge},                       // 差分なし
		{ParticipantID: "ghost", Deltas: map[StatKind]int{StatStrength: 1}}, // 対象不在
	}
	for i, res := range cases {
		if ApplyTrainingResult(world, res) {
			t.Errorf("case %d: 空の結果が適用されました", i)
		}
	}

	entry, _ := FindPetByID(world, "p1")
	if got := StatsComponent.Get(entry).Strength; got != 10 {
		t.Errorf("Strength = %d, want 10（変化なし）", got)
	}
	if got := ConditionComponent.Get(entry).Fatigue; got != 0 {
		t.Errorf("Fatigue = %d, want 0", got)
	}
}

func TestPetStatsApplyNeverGoesNegative(t *testing.T) {
	stats := PetStats{Strength: 2}
	stats.Apply(map[StatKind]int{StatStrength: -10})
	if stats.Strength != 0 {
		t.Errorf("Strength = %d, want 0", stats.Strength)
	}
}
