package stats

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotObject is returned when an object shaped source is not a JSON object.
var ErrNotObject = errors.New("stats source is not an object")

// UnmarshalJSON decodes a JSON object keeping the order of its keys.
// A repeated key keeps its first position and its last value.
func (s *ObjectSource) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to read stats source: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: got %v", ErrNotObject, tok)
	}

	out := ObjectSource{}
	seen := make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to read stats key: %w", err)
		}
		key, _ := keyTok.(string)

		var item ObjectItem
		if err := dec.Decode(&item); err != nil {
			return fmt.Errorf("failed to decode stat %q: %w", key, err)
		}

		if i, ok := seen[key]; ok {
			out[i].Item = item
			continue
		}
		seen[key] = len(out)
		out = append(out, ObjectEntry{ID: key, Item: item})
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("failed to read stats source: %w", err)
	}

	*s = out
	return nil
}

// DecodeArray decodes the array shaped source. Elements that are not
// key/value objects are skipped and counted; only a non-array source fails.
func DecodeArray(raw []byte) (items []ArrayItem, skipped int, err error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, 0, fmt.Errorf("failed to decode array stats: %w", err)
	}

	items = make([]ArrayItem, 0, len(elems))
	for _, elem := range elems {
		var item ArrayItem
		if IsEmpty(elem) || json.Unmarshal(elem, &item) != nil || item.Key == "" {
			skipped++
			continue
		}
		items = append(items, item)
	}
	return items, skipped, nil
}

// DecodeObject decodes the object shaped source.
func DecodeObject(raw []byte) (ObjectSource, error) {
	var src ObjectSource
	if err := json.Unmarshal(raw, &src); err != nil {
		return nil, err
	}
	return src, nil
}

// IsEmpty reports whether a raw section is absent: no bytes or a JSON null.
func IsEmpty(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
