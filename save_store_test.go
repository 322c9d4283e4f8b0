package main

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *SaveStore {
	t.Helper()
	store, err := OpenSaveStore(filepath.Join(t.TempDir(), "savedata", "test.db"))
	if err != nil {
		t.Fatalf("OpenSaveStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveStoreRoundTrip(t *testing.T) {
	store := openTestStore(t)

	want := PetStats{Strength: 17, Stamina: 8, Excitement: 3, Discipline: 5}
	if err := store.SavePetStats("p1", want); err != nil {
		t.Fatalf("SavePetStats: %v", err)
	}

	got, found, err := store.LoadPetStats("p1")
	if err != nil {
		t.Fatalf("LoadPetStats: %v", err)
	}
	if !found {
		t.Fatal("保存したはずのペットが見つかりません")
	}
	if got != want {
		t.Errorf("LoadPetStats = %+v, want %+v", got, want)
	}
}

func TestSaveStoreUpsertOverwrites(t *testing.T) {
	store := openTestStore(t)

	store.SavePetStats("p1", PetStats{Strength: 1})
	store.SavePetStats("p1", PetStats{Strength: 9, Discipline: 2})

	got, _, err := store.LoadPetStats("p1")
	if err != nil {
		t.Fatalf("LoadPetStats: %v", err)
	}
	if got.Strength != 9 || got.Discipline != 2 {
		t.Errorf("上書き後 = %+v", got)
	}
}

func TestSaveStoreMissingPetNotFound(t *testing.T) {
	store := openTestStore(t)

	_, found, err := store.LoadPetStats("nobody")
	if err != nil {
		t.Fatalf("LoadPetStats: %v", err)
	}
	if found {
		t.Error("存在しないペットがfound=trueになりました")
	}
}

func TestSaveStoreTrainingLog(t *testing.T) {
	store := openTestStore(t)

	store.RecordTraining("p1", "charge", 14)
	store.RecordTraining("p1", "excite", 7)
	store.RecordTraining("p2", "shake", 3)

	entries, err := store.RecentTraining("p1", 10)
	if err != nil {
		t.Fatalf("RecentTraining: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("履歴件数 = %d, want 2", len(entries))
	}
	// 新しい順
	if entries[0].Kind != "excite" || entries[0].Score != 7 {
		t.Errorf("entries[0] = %+v, want excite/7", entries[0])
	}
	if entries[1].Kind != "charge" || entries[1].Score != 14 {
		t.Errorf("entries[1] = %+v, want charge/14", entries[1])
	}

	limited, err := store.RecentTraining("p1", 1)
	if err != nil {
		t.Fatalf("RecentTraining: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limit付き履歴件数 = %d, want 1", len(limited))
	}
}

func TestNilSaveStoreIsNoop(t *testing.T) {
	var store *SaveStore

	if err := store.SavePetStats("p1", PetStats{}); err != nil {
		t.Errorf("nilストアのSavePetStats: %v", err)
	}
	if _, found, err := store.LoadPetStats("p1"); err != nil || found {
		t.Errorf("nilストアのLoadPetStats: found=%v err=%v", found, err)
	}
	if err := store.RecordTraining("p1", "charge", 1); err != nil {
		t.Errorf("nilストアのRecordTraining: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("nilストアのClose: %v", err)
	}
}
