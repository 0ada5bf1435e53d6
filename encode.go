package tallybook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file persists entity collections as JSONL: one JSON object per line,
// in insertion order. The format is append-friendly, diff-friendly, and
// round-trips every field including identifiers and optional fields.

// encodeCollection writes each entity of the collection as one JSON line.
func encodeCollection[E any](w io.Writer, c *Collection[E]) error {
	for _, e := range c.List() {
		line, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("cannot encode %s entity: %w", c.kind, err)
		}
		if _, err := w.Write(append(line, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// decodeCollection reads a JSONL stream into the collection, preserving
// line order as insertion order.
func decodeCollection[E any](r io.Reader, c *Collection[E]) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		b := scanner.Bytes()
		if len(b) == 0 {
			continue
		}
		var e E
		if err := json.Unmarshal(b, &e); err != nil {
			return fmt.Errorf("format error in %s line %d: %w", c.kind, line, err)
		}
		if _, err := c.Create(e); err != nil {
			return fmt.Errorf("format error in %s line %d: %w", c.kind, line, err)
		}
	}
	return scanner.Err()
}

// encodeOne writes a single record as one JSON line; decodeOne reads it
// back. Used for the personal account and the settings record.
func encodeOne(w io.Writer, v any) error {
	line, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(append(line, '\n'))
	return err
}

// decodeOne reads the first non-empty JSON line into v. It reports whether
// a record was found.
func decodeOne(r io.Reader, v any) (bool, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		b := scanner.Bytes()
		if len(b) == 0 {
			continue
		}
		if err := json.Unmarshal(b, v); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, scanner.Err()
}
