package ecs

import "sort"

// EntityMoved is emitted by the movement system when a position changes.
type EntityMoved struct {
	Entity     Entity
	OldX, OldY float64
	X, Y       float64
}

// MovementSystem applies velocities to positions each update.
type MovementSystem struct {
	Registry *Registry
	Enabled  bool
}

// NewMovementSystem creates an enabled movement system.
func NewMovementSystem(r *Registry) *MovementSystem {
	return &MovementSystem{Registry: r, Enabled: true}
}

// Update advances every entity with both Position and Velocity by
// velocity scaled with dt, emitting EntityMoved for each change.
func (s *MovementSystem) Update(dt float64) {
	if !s.Enabled {
		return
	}
	for _, e := range Entities[Position](s.Registry) {
		vel, ok := Get[Velocity](s.Registry, e)
		if !ok || (vel.DX == 0 && vel.DY == 0) {
			continue
		}
		pos, _ := Get[Position](s.Registry, e)
		old := pos
		pos.X += vel.DX * dt
		pos.Y += vel.DY * dt
		Add(s.Registry, e, pos)
		s.Registry.Events.Emit(EntityMoved{
			Entity: e,
			OldX:   old.X, OldY: old.Y,
			X: pos.X, Y: pos.Y,
		})
	}
}

// RenderItem is one drawable entity snapshot collected by the render system.
type RenderItem struct {
	Entity Entity
	X, Y   int
	Glyph  rune
	Color  int
	Layer  int
}

// RenderSystem collects visible renderables sorted by layer.
type RenderSystem struct {
	Registry *Registry
	Enabled  bool

	items []RenderItem
}

// NewRenderSystem creates an enabled render system.
func NewRenderSystem(r *Registry) *RenderSystem {
	return &RenderSystem{Registry: r, Enabled: true}
}

// Update rebuilds the render item list from visible entities with both
// Position and Renderable, ordered by layer then entity ID.
func (s *RenderSystem) Update(dt float64) {
	if !s.Enabled {
		return
	}
	s.items = s.items[:0]
	for _, e := range Entities[Renderable](s.Registry) {
		rend, _ := Get[Renderable](s.Registry, e)
		if !rend.Visible {
			continue
		}
		pos, ok := Get[Position](s.Registry, e)
		if !ok {
			continue
		}
		s.items = append(s.items, RenderItem{
			Entity: e,
			X:      int(pos.X),
			Y:      int(pos.Y),
			Glyph:  rend.Glyph,
			Color:  rend.Color,
			Layer:  rend.Layer,
		})
	}
	sort.SliceStable(s.items, func(i, j int) bool {
		return s.items[i].Layer < s.items[j].Layer
	})
}

// Items returns the render list from the last Update. The slice is reused
// across updates; callers must not retain it.
func (s *RenderSystem) Items() []RenderItem {
	return s.items
}
