package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// RandomData holds the random source used by the procedural effects
type RandomData struct {
	Rand *rand.Rand
}

var Random = donburi.NewComponentType[RandomData]()
