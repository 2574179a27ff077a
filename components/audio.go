package components

import "github.com/yohamta/donburi"

// ImpactSounder plays one impact sound per call at the given volume
type ImpactSounder interface {
	PlayImpactSound(volume float64)
	Constructed() int
}

// AudioData stores the impact engine handle (singleton component)
type AudioData struct {
	Engine ImpactSounder
}

var Audio = donburi.NewComponentType[AudioData]()
