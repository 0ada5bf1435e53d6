package tallybook

import (
	"bytes"
	"io"
	"testing"
)

// USD is a helper for tests to create dollar money from const.
func USD(v float64) Money { return M(v, "USD") }

// memGateway keeps every collection in memory. Save failures never happen,
// which keeps the mutation-path tests about the mutations.
type memGateway struct {
	files map[Kind][]byte
}

func newMemGateway() *memGateway { return &memGateway{files: make(map[Kind][]byte)} }

func (g *memGateway) Load(kind Kind) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(g.files[kind])), nil
}

func (g *memGateway) Save(kind Kind, write func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return err
	}
	g.files[kind] = buf.Bytes()
	return nil
}

// newTestBook opens an empty in-memory book, seeded with the default company.
func newTestBook(t *testing.T) *Book {
	t.Helper()
	b, err := Open(newMemGateway(), Options{Currency: "USD", Owner: "Owner"})
	if err != nil {
		t.Fatalf("cannot open book: %v", err)
	}
	return b
}
