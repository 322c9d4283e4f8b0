package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	resource "github.com/quasilyte/ebitengine-resource"
)

// Global resource loader
var r *resource.Loader

// 読み込み前の存在チェック用。OpenAssetFuncはpanicするため先に確かめます。
var fontPath string

func initResources(audioContext *audio.Context, assetPaths *AssetPaths) {
	r = resource.NewLoader(audioContext)

	// In a real application, you would use something like go:embed
	// to bundle your assets. For this example, we'll use os.ReadFile.
	r.OpenAssetFunc = func(path string) io.ReadCloser {
		data, err := os.ReadFile(path)
		if err != nil {
			// 存在チェックは呼び出し側（SpriteCache / SoundPlayer）が済ませている前提
			panic(err)
		}
		return io.NopCloser(bytes.NewReader(data))
	}

	// Register raw resources (CSV / JSON / WAV).
	rawResources := map[resource.RawID]resource.RawInfo{
		RawSpeciesCSV:   {Path: assetPaths.SpeciesCSV},
		RawPetsCSV:      {Path: assetPaths.PetsCSV},
		RawMessagesJSON: {Path: assetPaths.Messages},
	}
	for id, path := range assetPaths.Sounds {
		rawResources[id] = resource.RawInfo{Path: path}
	}
	r.RawRegistry.Assign(rawResources)

	// Register font resources.
	fontPath = assetPaths.Font
	fontResources := map[resource.FontID]resource.FontInfo{
		FontMPLUS1pRegular: {Path: assetPaths.Font, Size: 12},
	}
	r.FontRegistry.Assign(fontResources)

	// Register image resources.
	imageResources := make(map[resource.ImageID]resource.ImageInfo, len(assetPaths.Images))
	for id, path := range assetPaths.Images {
		imageResources[id] = resource.ImageInfo{Path: path}
	}
	r.ImageRegistry.Assign(imageResources)
}

func LoadFont(id resource.FontID) (text.Face, error) {
	if _, err := os.Stat(fontPath); err != nil {
		return nil, &AssetLoadError{Path: fontPath, Err: err}
	}
	f := r.LoadFont(id)
	return text.NewGoXFace(f.Face), nil
}

// LoadAllStaticGameData は種族データベースなどの静的データを読み込みます。
func LoadAllStaticGameData(gdm *GameDataManager) error {
	if err := LoadSpecies(gdm); err != nil {
		return fmt.Errorf("failed to load species.csv: %w", err)
	}
	return nil
}

// LoadSpecies loads species definitions from the CSV resource.
func LoadSpecies(gdm *GameDataManager) error {
	res := r.LoadRaw(RawSpeciesCSV)
	reader := csv.NewReader(bytes.NewReader(res.Data))
	_, err := reader.Read() // Skip header
	if err != nil {
		return fmt.Errorf("failed to read header from species data: %w", err)
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Printf("error reading record from species data: %v\n", err)
			continue
		}
		if len(record) < 7 {
			fmt.Printf("skipping malformed record in species data (not enough columns): %v\n", record)
			continue
		}
		species := SpeciesDefinition{
			ID:    record[0],
			Name:  record[1],
			Stage: record[2],
			BaseStats: PetStats{
				Strength:   parseInt(record[3], 1),
				Stamina:    parseInt(record[4], 1),
				Excitement: parseInt(record[5], 0),
				Discipline: parseInt(record[6], 0),
			},
		}
		if err := gdm.AddSpeciesDefinition(&species); err != nil {
			fmt.Printf("error adding species definition %s: %v\n", species.ID, err)
		}
	}
	return nil
}

// LoadPetLoadouts loads the player's pet roster from the CSV resource.
func LoadPetLoadouts() ([]PetData, error) {
	res := r.LoadRaw(RawPetsCSV)
	reader := csv.NewReader(bytes.NewReader(res.Data))
	_, err := reader.Read() // Skip header
	if err != nil {
		return nil, fmt.Errorf("failed to read header from pets data: %w", err)
	}

	var pets []PetData
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Printf("error reading record from pets data: %v\n", err)
			continue
		}
		if len(record) < 3 {
			fmt.Printf("skipping malformed record in pets data (not enough columns): %v\n", record)
			continue
		}
		pet := PetData{
			ID:        record[0],
			Name:      record[1],
			SpeciesID: record[2],
		}
		pets = append(pets, pet)
	}
	return pets, nil
}

func parseInt(s string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return v
}

func parseBool(s string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return v
}
