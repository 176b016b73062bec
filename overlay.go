package prolog

// Overlay is a backtracking-safe staging layer over a ClauseStore, grounded
// on zamiaprolog/logicdb.py's LogicDBOverlay. A query that asserts or
// retracts clauses mid-search does so against its own Overlay, never the
// underlying store directly, so a failed branch leaves the persistent
// database untouched (spec.md §5 "Overlay").
type Overlay struct {
	assertz   map[string][]Clause
	retracted map[string][]Clause
}

// NewOverlay returns an empty overlay.
func NewOverlay() *Overlay {
	return &Overlay{assertz: map[string][]Clause{}, retracted: map[string][]Clause{}}
}

// Assertz stages c as a newly asserted clause, visible to lookups against
// this overlay but not yet committed to the store.
func (o *Overlay) Assertz(c Clause) {
	o.assertz[c.Head.Name] = append(o.assertz[c.Head.Name], c)
}

// Retractall stages every stored clause whose head structurally matches
// pattern's head for removal from lookups against this overlay. Clauses
// asserted into this overlay are not affected. This is the exact
// structural-match interpretation of retractall (see DESIGN.md); it never
// touches the persistent store.
func (o *Overlay) Retractall(pattern Clause) {
	o.retracted[pattern.Head.Name] = append(o.retracted[pattern.Head.Name], pattern)
}

// Clone makes an independent copy of the overlay. Search does not call it:
// one overlay is shared by every goal frame of a search.
func (o *Overlay) Clone() *Overlay {
	if o == nil {
		return nil
	}
	clone := &Overlay{
		assertz:   make(map[string][]Clause, len(o.assertz)),
		retracted: make(map[string][]Clause, len(o.retracted)),
	}
	for k, v := range o.assertz {
		clone.assertz[k] = append([]Clause(nil), v...)
	}
	for k, v := range o.retracted {
		clone.retracted[k] = append([]Clause(nil), v...)
	}
	return clone
}

// Filter applies this overlay's staged retractions and assertions to a
// store's base candidate list for name: clauses matching a retracted
// pattern are dropped, then this overlay's own asserted clauses are
// appended in assertion order.
func (o *Overlay) Filter(name string, base []Clause) []Clause {
	if o == nil {
		return base
	}
	out := make([]Clause, 0, len(base)+len(o.assertz[name]))
	for _, c := range base {
		if o.matchesRetracted(name, c) {
			continue
		}
		out = append(out, c)
	}
	out = append(out, o.assertz[name]...)
	return out
}

func (o *Overlay) matchesRetracted(name string, c Clause) bool {
	for _, pattern := range o.retracted[name] {
		if Equal(pattern.Head, c.Head) {
			return true
		}
	}
	return false
}
