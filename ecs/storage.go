package ecs

// entityStore tracks entity generations and free ids. Slot ids start at 1 so
// the zero Entity stays invalid.
type entityStore struct {
	gen  []generation
	free []entityID
}

func (s *entityStore) create() Entity {
	var id entityID
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.gen = append(s.gen, 0)
		id = entityID(len(s.gen))
	}
	return makeEntity(id, s.gen[id-1])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	s.gen[e.id()-1]++
	s.free = append(s.free, e.id())
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.gen) {
		return false
	}
	return s.gen[id-1] == e.generation()
}
