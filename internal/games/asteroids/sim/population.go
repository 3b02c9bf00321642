package sim

import "github.com/kamstrup/intmap"

// population is the live entity set plus its deferred mutations.
//
// Structural changes only happen in commitRemoves, commitAdds and clear. Everything
// else queues. live keeps promotion order so iteration is deterministic.
type population struct {
	byID          *intmap.Map[EntityID, *Entity]
	live          []*Entity
	pendingAdd    []*Entity
	pendingRemove *intmap.Set[EntityID]
	counts        [kindCount]int
}

func newPopulation() *population {
	return &population{
		byID:          intmap.New[EntityID, *Entity](64),
		pendingRemove: intmap.NewSet[EntityID](16),
	}
}

// get returns a live entity.
func (p *population) get(id EntityID) (*Entity, bool) {
	return p.byID.Get(id)
}

// isLive reports whether e has been promoted and not yet removed.
func (p *population) isLive(e *Entity) bool {
	got, ok := p.byID.Get(e.ID)
	return ok && got == e
}

// queueAdd defers e until the next commitAdds.
func (p *population) queueAdd(e *Entity) {
	p.pendingAdd = append(p.pendingAdd, e)
}

// queueRemove marks e for the next commitRemoves. It returns false if e was already marked.
func (p *population) queueRemove(e *Entity) bool {
	if e.removed {
		return false
	}
	e.removed = true
	p.pendingRemove.Add(e.ID)
	return true
}

// commitRemoves drops every marked entity, calling release on each.
func (p *population) commitRemoves(release func(*Entity)) {
	if p.pendingRemove.Len() == 0 {
		return
	}

	kept := p.live[:0]
	for _, e := range p.live {
		if !p.pendingRemove.Has(e.ID) {
			kept = append(kept, e)
			continue
		}
		p.byID.Del(e.ID)
		p.counts[e.Kind]--
		release(e)
	}
	clear(p.live[len(kept):])
	p.live = kept
	p.pendingRemove.Clear()
}

// commitAdds promotes every queued entity, calling admit on each.
// Entities removed while still pending are dropped without being admitted.
func (p *population) commitAdds(admit func(*Entity)) {
	pending := p.pendingAdd
	p.pendingAdd = nil
	for _, e := range pending {
		if e.removed {
			p.pendingRemove.Del(e.ID)
			continue
		}
		p.byID.Put(e.ID, e)
		p.live = append(p.live, e)
		p.counts[e.Kind]++
		admit(e)
	}
}

// snapshot copies the live entities that are still collidable and not marked for removal.
func (p *population) snapshot() []*Entity {
	out := make([]*Entity, 0, len(p.live))
	for _, e := range p.live {
		if e.Collidable() && !e.removed {
			out = append(out, e)
		}
	}
	return out
}

// count returns the number of live entities of kind.
func (p *population) count(kind Kind) int {
	return p.counts[kind]
}

// pending returns the number of queued entities of kind.
func (p *population) pending(kind Kind) int {
	n := 0
	for _, e := range p.pendingAdd {
		if e.Kind == kind && !e.removed {
			n++
		}
	}
	return n
}

// clear releases every live entity and forgets everything queued.
func (p *population) clear(release func(*Entity)) {
	for _, e := range p.live {
		e.removed = true
		release(e)
	}
	for _, e := range p.pendingAdd {
		e.removed = true
	}
	p.byID.Clear()
	p.pendingRemove.Clear()
	clear(p.live)
	p.live = p.live[:0]
	p.pendingAdd = nil
	p.counts = [kindCount]int{}
}
