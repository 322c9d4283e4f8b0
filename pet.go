package main

// StatKind はトレーニングで変化するステータスの種類です。
type StatKind string

const (
	StatStrength   StatKind = "strength"
	StatStamina    StatKind = "stamina"
	StatExcitement StatKind = "excitement"
	StatDiscipline StatKind = "discipline"
)

// ステータスの上限。トレーニングをいくら積んでもこれを超えません。
const statCap = 999

// PetStats はペット1体のトレーニング対象ステータスです。
type PetStats struct {
	Strength   int
	Stamina    int
	Excitement int
	Discipline int
}

// Apply はステータス差分を適用します。各値は 0..statCap に飽和します。
func (s *PetStats) Apply(deltas map[StatKind]int) {
	for kind, d := range deltas {
		switch kind {
		case StatStrength:
			s.Strength = clampInt(s.Strength+d, 0, statCap)
		case StatStamina:
			s.Stamina = clampInt(s.Stamina+d, 0, statCap)
		case StatExcitement:
			s.Excitement = clampInt(s.Excitement+d, 0, statCap)
		case StatDiscipline:
			s.Discipline = clampInt(s.Discipline+d, 0, statCap)
		}
	}
}

// Get は種類を指定してステータス値を取得します。
func (s *PetStats) Get(kind StatKind) int {
	switch kind {
	case StatStrength:
		return s.Strength
	case StatStamina:
		return s.Stamina
	case StatExcitement:
		return s.Excitement
	case StatDiscipline:
		return s.Discipline
	}
	return 0
}

// SpeciesDefinition は species.csv の1行に対応する種族定義です。
type SpeciesDefinition struct {
	ID        string
	Name      string
	Stage     string // 幼年期/成長期など
	BaseStats PetStats
}

// PetData は pets.csv の1行（プレイヤーの手持ちペット）です。
type PetData struct {
	ID        string
	Name      string
	SpeciesID string
}

// PetSettings はエンティティの不変の素性です。
type PetSettings struct {
	ID        string
	Name      string
	SpeciesID string
}

// PetCondition はトレーニングで変動する体調です。
type PetCondition struct {
	Fatigue int // セッションを終えるたびに増える
}

// GameData は起動時に読み込まれる可変ゲームデータの入れ物です。
type GameData struct {
	Pets []PetData
}
