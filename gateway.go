package tallybook

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Gateway is the persistence collaborator of the core. One durable
// collection exists per entity kind; the core only asks to load or save a
// whole collection and never looks at the bytes.
//
// Load must return an empty stream, not an error, when no prior data exists.
// Save must be atomic from the core's point of view: either the whole new
// state is durable, or the old state remains.
type Gateway interface {
	Load(kind Kind) (io.ReadCloser, error)
	Save(kind Kind, write func(io.Writer) error) error
}

// DirGateway persists each collection as one JSONL file in a directory, in a
// way that is human-readable and git-friendly.
type DirGateway struct {
	Dir string
}

func (g DirGateway) path(kind Kind) string {
	return filepath.Join(g.Dir, string(kind)+".jsonl")
}

// Load opens the collection file for reading. A missing file yields an
// empty stream.
func (g DirGateway) Load(kind Kind) (io.ReadCloser, error) {
	f, err := os.Open(g.path(kind))
	if os.IsNotExist(err) {
		return io.NopCloser(bytes.NewReader(nil)), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open %q for reading: %w", g.path(kind), err)
	}
	return f, nil
}

// Save writes the collection to a temporary file and renames it into place,
// so a crashed save leaves the previous state intact.
func (g DirGateway) Save(kind Kind, write func(io.Writer) error) error {
	if err := os.MkdirAll(g.Dir, 0755); err != nil {
		return fmt.Errorf("cannot create book directory %q: %w", g.Dir, err)
	}
	tmp, err := os.CreateTemp(g.Dir, string(kind)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("cannot create temporary file for %q: %w", kind, err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write collection %q: %w", kind, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot close temporary file for %q: %w", kind, err)
	}
	if err := os.Rename(tmp.Name(), g.path(kind)); err != nil {
		return fmt.Errorf("cannot save collection %q: %w", kind, err)
	}
	return nil
}
