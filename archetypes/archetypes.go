package archetypes

import (
	"github.com/automoto/glasspane/components"
	"github.com/automoto/glasspane/tags"
	"github.com/yohamta/donburi"
)

var (
	Shard = newArchetype(
		tags.Shard,
		components.Shard,
		components.AutoDestroy,
	)
	Session = newArchetype(
		components.Mode,
		components.Avatar,
		components.Hint,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
