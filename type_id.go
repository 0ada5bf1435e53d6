package tallybook

import "github.com/google/uuid"

// ID is the process-unique identifier assigned to every entity and
// sub-record at creation. It is never reassigned.
type ID string

// NewID returns a fresh random identifier.
func NewID() ID { return ID(uuid.NewString()) }

// IsZero returns true when the identifier is unset.
func (id ID) IsZero() bool { return id == "" }

// Short returns an 8-character prefix for terminal display.
func (id ID) Short() string {
	if len(id) < 8 {
		return string(id)
	}
	return string(id[:8])
}

func (id ID) String() string { return string(id) }
