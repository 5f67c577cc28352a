package ecs

import (
	"github.com/phanxgames/gaze"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TrackerEventType is the Donburi event type for gaze tracker events.
var TrackerEventType = events.NewEventType[gaze.TrackerEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Tracker events are published to TrackerEventType and can be consumed
// with Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) gaze.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event gaze.TrackerEvent) {
	TrackerEventType.Publish(s.world, event)
}
