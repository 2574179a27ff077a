package tags

import "github.com/yohamta/donburi"

var (
	Shard = donburi.NewTag().SetName("Shard")
)
