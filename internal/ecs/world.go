package ecs

// World is the central entity arena and component store. Entity slots are
// reused after destruction; the per-slot generation counter keeps recycled
// slots from resurrecting stale EntityIDs.
type World struct {
	generations []uint32
	alive       []bool
	free        []uint32
	components  map[ComponentType]map[EntityID]Component
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		components: make(map[ComponentType]map[EntityID]Component),
	}
}

// CreateEntity allocates a slot (reusing a freed one if available) and
// returns its handle.
func (w *World) CreateEntity() EntityID {
	var idx uint32
	if n := len(w.free); n > 0 {
		idx = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		idx = uint32(len(w.generations))
		w.generations = append(w.generations, 0)
		w.alive = append(w.alive, false)
	}
	w.generations[idx]++
	w.alive[idx] = true
	return EntityID{Index: idx, Generation: w.generations[idx]}
}

// DestroyEntity removes all the entity's components and retires its
// generation. Stale handles are a no-op.
func (w *World) DestroyEntity(id EntityID) {
	if !w.Alive(id) {
		return
	}
	w.alive[id.Index] = false
	w.free = append(w.free, id.Index)
	for _, store := range w.components {
		delete(store, id)
	}
}

// Alive reports whether id refers to a live entity of the current generation.
func (w *World) Alive(id EntityID) bool {
	if int(id.Index) >= len(w.generations) {
		return false
	}
	return w.alive[id.Index] && w.generations[id.Index] == id.Generation
}

// Add attaches a component to an entity. Stale handles are ignored.
func (w *World) Add(id EntityID, c Component) {
	if !w.Alive(id) {
		return
	}
	t := c.Type()
	if w.components[t] == nil {
		w.components[t] = make(map[EntityID]Component)
	}
	w.components[t][id] = c
}

// Get returns the component of the given type for entity id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	if !w.Alive(id) {
		return nil
	}
	store := w.components[t]
	if store == nil {
		return nil
	}
	return store[id]
}

// Remove detaches a component from an entity.
func (w *World) Remove(id EntityID, t ComponentType) {
	if store := w.components[t]; store != nil {
		delete(store, id)
	}
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	return w.Get(id, t) != nil
}

// Query returns all alive entities that have every listed component type.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	// Use the smallest store as the candidate set.
	smallest := types[0]
	for _, t := range types[1:] {
		if len(w.components[t]) < len(w.components[smallest]) {
			smallest = t
		}
	}
	store := w.components[smallest]
	if store == nil {
		return nil
	}
	var result []EntityID
	for id := range store {
		if !w.Alive(id) {
			continue
		}
		match := true
		for _, t := range types {
			if t == smallest {
				continue
			}
			if !w.Has(id, t) {
				match = false
				break
			}
		}
		if match {
			result = append(result, id)
		}
	}
	return result
}
