package components

import "github.com/yohamta/donburi"

// HintData is the instructional hint shown on activation
type HintData struct {
	Text    string
	Visible bool
}

var Hint = donburi.NewComponentType[HintData]()
