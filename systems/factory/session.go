package factory

import (
	"github.com/automoto/glasspane/archetypes"
	"github.com/automoto/glasspane/components"
	cfg "github.com/automoto/glasspane/config"
	"github.com/yohamta/donburi"
)

// CreateSession creates the inactive destruction mode session with its
// avatar and hidden hint
func CreateSession(w donburi.World) *donburi.Entry {
	entry := archetypes.Session.Spawn(w)

	components.Mode.SetValue(entry, components.ModeData{
		State: components.ModeInactive,
	})
	components.Hint.SetValue(entry, components.HintData{
		Text: cfg.Destruction.HintText,
	})

	return entry
}
