package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/renato0307/tally/internal/domain"
)

// DecodeBatch parses a JSON payload of T records. A JSON array is read whole;
// anything else is read as a stream of objects, which covers JSON lines.
func DecodeBatch[T any](r io.Reader) ([]T, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read input: %v", domain.ErrInvalidInput, err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty input", domain.ErrInvalidInput)
	}

	if raw[0] == '[' {
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("%w: malformed array: %v", domain.ErrInvalidInput, err)
		}
		return items, nil
	}

	var items []T
	dec := json.NewDecoder(bytes.NewReader(raw))
	for line := 1; ; line++ {
		var item T
		err := dec.Decode(&item)
		if errors.Is(err, io.EOF) {
			return items, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: malformed record %d: %v", domain.ErrInvalidInput, line, err)
		}
		items = append(items, item)
	}
}
