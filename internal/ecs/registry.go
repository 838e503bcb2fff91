// Package ecs provides a small entity-component registry with an event bus.
package ecs

import (
	"fmt"
	"reflect"
	"sort"
)

// Entity identifies a game object. The zero value is never a valid entity.
type Entity uint64

// Registry owns entities and their components. Component storage is keyed by
// concrete component type; use the package-level generic helpers to access it.
type Registry struct {
	nextID     Entity
	entities   map[Entity]struct{}
	components map[reflect.Type]map[Entity]any

	// Events delivers typed events emitted by systems.
	Events *EventBus
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		nextID:     1,
		entities:   make(map[Entity]struct{}),
		components: make(map[reflect.Type]map[Entity]any),
		Events:     NewEventBus(),
	}
}

// Create allocates a new entity with an incrementing ID.
func (r *Registry) Create() Entity {
	id := r.nextID
	r.nextID++
	r.entities[id] = struct{}{}
	return id
}

// Destroy removes an entity and all of its components. Destroying an unknown
// entity is a no-op.
func (r *Registry) Destroy(e Entity) {
	if _, ok := r.entities[e]; !ok {
		return
	}
	for _, store := range r.components {
		delete(store, e)
	}
	delete(r.entities, e)
}

// Exists reports whether the entity is alive.
func (r *Registry) Exists(e Entity) bool {
	_, ok := r.entities[e]
	return ok
}

// Len returns the number of live entities.
func (r *Registry) Len() int {
	return len(r.entities)
}

// Add attaches a component to an entity, replacing any existing component of
// the same type.
func Add[C any](r *Registry, e Entity, c C) error {
	if !r.Exists(e) {
		return fmt.Errorf("entity %d does not exist", e)
	}
	t := reflect.TypeOf(c)
	store, ok := r.components[t]
	if !ok {
		store = make(map[Entity]any)
		r.components[t] = store
	}
	store[e] = c
	return nil
}

// Get returns the entity's component of type C, if present.
func Get[C any](r *Registry, e Entity) (C, bool) {
	var zero C
	store, ok := r.components[reflect.TypeOf(zero)]
	if !ok {
		return zero, false
	}
	c, ok := store[e]
	if !ok {
		return zero, false
	}
	return c.(C), true
}

// Has reports whether the entity carries a component of type C.
func Has[C any](r *Registry, e Entity) bool {
	_, ok := Get[C](r, e)
	return ok
}

// Remove detaches the entity's component of type C, if present.
func Remove[C any](r *Registry, e Entity) {
	var zero C
	if store, ok := r.components[reflect.TypeOf(zero)]; ok {
		delete(store, e)
	}
}

// Entities returns the IDs of all entities carrying a component of type C,
// sorted ascending so system updates are deterministic.
func Entities[C any](r *Registry) []Entity {
	var zero C
	store, ok := r.components[reflect.TypeOf(zero)]
	if !ok {
		return nil
	}
	ids := make([]Entity, 0, len(store))
	for e := range store {
		ids = append(ids, e)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// EventBus dispatches events to handlers subscribed by event type.
type EventBus struct {
	handlers map[reflect.Type][]func(any)
}

// NewEventBus creates an empty event bus.
func NewEventBus() *EventBus {
	return &EventBus{handlers: make(map[reflect.Type][]func(any))}
}

// Emit delivers the event to every handler subscribed to its concrete type,
// in subscription order. Events with no subscribers are dropped.
func (b *EventBus) Emit(event any) {
	for _, h := range b.handlers[reflect.TypeOf(event)] {
		h(event)
	}
}

// Subscribe registers a handler for events of type E.
func Subscribe[E any](b *EventBus, handler func(E)) {
	var zero E
	t := reflect.TypeOf(zero)
	b.handlers[t] = append(b.handlers[t], func(ev any) {
		handler(ev.(E))
	})
}
