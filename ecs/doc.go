// Package ecs provides ECS adapters for gaze's tracker event system.
//
// The primary adapter is [NewDonburiStore], which bridges gaze tracker
// events (activate, deactivate, frame) into a [Donburi] world as typed
// events. Subscribe to [TrackerEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	registry.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
