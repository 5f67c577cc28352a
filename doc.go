// Package gaze makes a face appear to follow the pointer by swapping between
// pre-rendered images, one per cell of a small 2D grid.
//
// As the pointer moves over a bounded container, its position relative to the
// container's center is normalized to [-1, 1] on each axis, snapped onto an
// integer lattice by a [Grid], and turned into an asset file name such as
// gaze_px0_py15_256.webp. A [Sink] receives the resulting [Frame] and decides
// how to display it.
//
// # Quick start
//
// A [Registry] owns one [Router] and every [Tracker] on the surface. Feed it
// raw pointer input and it synthesizes enter/leave boundary events:
//
//	reg, _ := gaze.NewRegistry(gaze.RegistryConfig{})
//	reg.CreateTracker(
//		gaze.Descriptor{Name: "hero"},
//		gaze.RectContainer{Left: 100, Top: 100, Width: 200, Height: 200},
//		gaze.SinkFunc(func(f gaze.Frame) { show(f.Path) }),
//	)
//	reg.PointerMove(200, 100) // show("/faces/gaze_px0_py15_256.webp")
//
// Hosts with native boundary events (a DOM, a widget toolkit) can skip the
// registry's hit testing: call [Tracker.PointerEnter] and
// [Tracker.PointerLeave] from those events and forward raw moves to
// [Router.RoutePointerMove].
//
// # Routing
//
// Only one tracker receives moves at a time. Entering a container claims the
// router outright; leaving it clears the router and re-renders the centered
// frame. With [GateStrict] the router also drops moves outside the active
// container's current bounds, so a pointer that escapes without a leave event
// stops driving the face. [GateTrust] forwards everything.
//
// # Rounding
//
// [Grid.Quantize] rounds ties away from zero, so -0.5 on the default grid
// maps to -9 rather than -6. NaN inputs are treated as 0.
//
// An Ebitengine host lives in gaze/ebitenhost; a Donburi bridge for
// [TrackerEvent] lives in the separate gaze/ecs module.
package gaze
