package tallybook

import "slices"

// Collection is an insertion-ordered entity store for one entity kind.
// All mutation of stored entities goes through Create, Update and Delete;
// no caller may retain and mutate a returned entity without calling Update.
type Collection[E any] struct {
	kind  Kind
	idOf  func(E) ID
	order []ID
	items map[ID]E
}

// NewCollection creates an empty collection for a kind. idOf extracts the
// entity identifier.
func NewCollection[E any](kind Kind, idOf func(E) ID) *Collection[E] {
	return &Collection[E]{kind: kind, idOf: idOf, items: make(map[ID]E)}
}

// Kind returns the collection's entity kind.
func (c *Collection[E]) Kind() Kind { return c.kind }

// Len returns the number of stored entities.
func (c *Collection[E]) Len() int { return len(c.order) }

// Create stores a new entity and returns its identifier. The identifier
// must already be assigned and must not be in use.
func (c *Collection[E]) Create(e E) (ID, error) {
	id := c.idOf(e)
	if id.IsZero() {
		return "", invalidf("%s entity has no identifier", c.kind)
	}
	if _, ok := c.items[id]; ok {
		return "", invalidf("%s %s already exists", c.kind, id.Short())
	}
	c.items[id] = e
	c.order = append(c.order, id)
	return id, nil
}

// Update replaces the stored entity with the same identifier.
func (c *Collection[E]) Update(e E) error {
	id := c.idOf(e)
	if _, ok := c.items[id]; !ok {
		return notFoundf("%s %s", c.kind, id.Short())
	}
	c.items[id] = e
	return nil
}

// Delete removes the entity with this identifier.
func (c *Collection[E]) Delete(id ID) error {
	if _, ok := c.items[id]; !ok {
		return notFoundf("%s %s", c.kind, id.Short())
	}
	delete(c.items, id)
	if i := slices.Index(c.order, id); i >= 0 {
		c.order = slices.Delete(c.order, i, i+1)
	}
	return nil
}

// Get returns the entity with this identifier.
func (c *Collection[E]) Get(id ID) (E, error) {
	e, ok := c.items[id]
	if !ok {
		var zero E
		return zero, notFoundf("%s %s", c.kind, id.Short())
	}
	return e, nil
}

// List returns all entities in insertion order.
func (c *Collection[E]) List() []E {
	out := make([]E, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

// Filter returns, in insertion order, the entities whose identifier the
// keep function accepts. This is how tenant-scoped views are built.
func (c *Collection[E]) Filter(keep func(ID) bool) []E {
	out := make([]E, 0, len(c.order))
	for _, id := range c.order {
		if keep(id) {
			out = append(out, c.items[id])
		}
	}
	return out
}
