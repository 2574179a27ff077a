package systems

import (
	"time"

	"github.com/automoto/glasspane/components"
	cfg "github.com/automoto/glasspane/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTimers advances the session clock, then runs due deferred tasks and
// removes expired auto-destroy entities. Runs every tick regardless of mode.
func UpdateTimers(e *ecs.ECS) {
	AdvanceClock(e.World)
}

// AdvanceClock moves the clock forward one tick and processes what came due.
func AdvanceClock(w donburi.World) {
	clock := GetOrCreateClock(w)
	clock.Elapsed += clock.Tick
	runDeferred(w, clock.Elapsed)
	updateAutoDestroy(w, clock.Elapsed)
}

// Now returns the session clock
func Now(w donburi.World) time.Duration {
	return GetOrCreateClock(w).Elapsed
}

// After schedules fn to run once, delay after now. The task cannot be cancelled.
func After(w donburi.World, delay time.Duration, fn func()) {
	entry := w.Entry(w.Create(components.Deferred))
	components.Deferred.SetValue(entry, components.DeferredData{
		Due: Now(w) + delay,
		Run: fn,
	})
}

func runDeferred(w donburi.World, now time.Duration) {
	var due []*donburi.Entry

	components.Deferred.Each(w, func(entry *donburi.Entry) {
		if components.Deferred.Get(entry).Due <= now {
			due = append(due, entry)
		}
	})

	for _, entry := range due {
		task := *components.Deferred.Get(entry)
		entry.Remove()
		if task.Run != nil {
			task.Run()
		}
	}
}

// updateAutoDestroy removes entities whose deadline has passed
func updateAutoDestroy(w donburi.World, now time.Duration) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(w, func(entry *donburi.Entry) {
		if components.AutoDestroy.Get(entry).ExpiresAt <= now {
			toDestroy = append(toDestroy, entry)
		}
	})

	for _, entry := range toDestroy {
		entry.Remove()
	}
}

// GetOrCreateClock returns the singleton Clock component, creating it if needed
func GetOrCreateClock(w donburi.World) *components.ClockData {
	entry, ok := components.Clock.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Clock))
		components.Clock.SetValue(entry, components.ClockData{
			Tick: cfg.C.TickDuration(),
		})
	}
	return components.Clock.Get(entry)
}
