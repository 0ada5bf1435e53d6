package tallybook

import (
	"errors"
	"testing"
)

type thing struct {
	ID   ID
	Name string
}

func newThings() *Collection[*thing] {
	return NewCollection(Kind("things"), func(t *thing) ID { return t.ID })
}

func TestCollectionCreate(t *testing.T) {
	c := newThings()
	a := &thing{ID: NewID(), Name: "a"}
	if _, err := c.Create(a); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Create(a); !errors.Is(err, ErrValidation) {
		t.Errorf("duplicate create: got %v, want a validation error", err)
	}
	if _, err := c.Create(&thing{Name: "no id"}); !errors.Is(err, ErrValidation) {
		t.Errorf("create without identifier: got %v, want a validation error", err)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestCollectionOrder(t *testing.T) {
	c := newThings()
	names := []string{"first", "second", "third"}
	for _, n := range names {
		if _, err := c.Create(&thing{ID: NewID(), Name: n}); err != nil {
			t.Fatal(err)
		}
	}
	for i, e := range c.List() {
		if e.Name != names[i] {
			t.Errorf("List[%d] = %s, want %s", i, e.Name, names[i])
		}
	}
}

func TestCollectionUpdateDelete(t *testing.T) {
	c := newThings()
	a := &thing{ID: NewID(), Name: "a"}
	if _, err := c.Create(a); err != nil {
		t.Fatal(err)
	}
	if err := c.Update(&thing{ID: a.ID, Name: "b"}); err != nil {
		t.Fatal(err)
	}
	got, err := c.Get(a.ID)
	if err != nil || got.Name != "b" {
		t.Errorf("Get after Update = %+v, %v", got, err)
	}
	if err := c.Update(&thing{ID: NewID()}); !errors.Is(err, ErrNotFound) {
		t.Errorf("update of unknown entity: got %v, want a not-found error", err)
	}
	if err := c.Delete(a.ID); err != nil {
		t.Fatal(err)
	}
	if err := c.Delete(a.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("double delete: got %v, want a not-found error", err)
	}
	if _, err := c.Get(a.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("get after delete: got %v, want a not-found error", err)
	}
}

func TestCollectionFilter(t *testing.T) {
	c := newThings()
	keepMe := &thing{ID: NewID(), Name: "keep"}
	dropMe := &thing{ID: NewID(), Name: "drop"}
	c.Create(keepMe)
	c.Create(dropMe)
	got := c.Filter(func(id ID) bool { return id == keepMe.ID })
	if len(got) != 1 || got[0].Name != "keep" {
		t.Errorf("Filter = %+v", got)
	}
}
