package main

import (
	resource "github.com/quasilyte/ebitengine-resource"
)

// Resource IDs
const (
	_ resource.FontID = iota
	FontMPLUS1pRegular
)

const (
	_ resource.ImageID = iota
	ImageTrainingBarSegment
	ImageTrainingBarBack
	ImageTrainingMaxBanner
	ImageTrainingDummy
	ImageTrainingSpark
	ImageTrainingMole
	ImageTrainingMoleHole
	ImageTrainingTree
	ImageTrainingCounterIcon
	ImagePetIdle
	ImagePetAttack
	ImagePetHappy
)

const (
	_ resource.RawID = iota
	RawSpeciesCSV
	RawPetsCSV
	RawMessagesJSON
	RawSoundPumpWAV
	RawSoundHitWAV
	RawSoundMaxWAV
	RawSoundWhiffWAV
	RawSoundRoundWAV
	RawSoundResultWAV
)
