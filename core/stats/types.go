package stats

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RawValue is a provider value that may arrive either as a JSON string or a JSON number.
type RawValue struct {
	// Text is the string form of the value. For numbers it is the JSON literal.
	Text string
	// Num holds the decoded number when IsNum is set.
	Num float64
	// IsNum reports whether the provider sent a JSON number.
	IsNum bool
}

// StringValue wraps a string sent by the provider.
func StringValue(s string) RawValue {
	return RawValue{Text: s}
}

// NumberValue wraps a number sent by the provider.
func NumberValue(f float64) RawValue {
	return RawValue{Text: strconv.FormatFloat(f, 'f', -1, 64), Num: f, IsNum: true}
}

// UnmarshalJSON accepts strings and numbers. Any other JSON literal (true, null)
// is kept as its text.
func (r *RawValue) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*r = RawValue{Text: s}
		return nil
	}
	if f, err := strconv.ParseFloat(string(trimmed), 64); err == nil {
		*r = RawValue{Text: string(trimmed), Num: f, IsNum: true}
		return nil
	}
	*r = RawValue{Text: string(trimmed)}
	return nil
}

// MarshalJSON writes the value back in the shape it was received.
func (r RawValue) MarshalJSON() ([]byte, error) {
	if r.IsNum {
		return json.Marshal(r.Num)
	}
	return json.Marshal(r.Text)
}

// falsy mirrors the provider's "missing" convention for optional fields:
// an empty string or a zero number counts as absent.
func (r RawValue) falsy() bool {
	if r.IsNum {
		return r.Num == 0 || math.IsNaN(r.Num)
	}
	return r.Text == ""
}

// Value is the normalized value of a stat: a number when the raw value parsed,
// otherwise the original string (durations such as "3h" stay strings).
type Value struct {
	num   float64
	str   string
	isNum bool
}

// Number returns a numeric Value.
func Number(f float64) Value {
	return Value{num: f, isNum: true}
}

// Text returns a string Value.
func Text(s string) Value {
	return Value{str: s}
}

// IsNumber reports whether the value is numeric.
func (v Value) IsNumber() bool {
	return v.isNum
}

// Float returns the numeric value, or NaN for string values.
func (v Value) Float() float64 {
	if !v.isNum {
		return math.NaN()
	}
	return v.num
}

// IsZero reports whether the value is the number 0.
func (v Value) IsZero() bool {
	return v.isNum && v.num == 0
}

func (v Value) String() string {
	if v.isNum {
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return v.str
}

// MarshalJSON writes numbers as JSON numbers and strings as JSON strings.
// A number that failed to parse (NaN) is written as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.isNum {
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return []byte("null"), nil
		}
		return json.Marshal(v.num)
	}
	return json.Marshal(v.str)
}

// Record is a single normalized stat.
type Record struct {
	// Field is the canonical id. A trailing "_" marks a percentage variant.
	Field string `json:"field"`
	// Label is the human readable name.
	Label string `json:"label"`
	// Value is the normalized value.
	Value Value `json:"value" swaggertype:"primitive,number"`
	// Display is the value formatted for presentation.
	Display string `json:"display"`
}

// ArrayItem is one entry of the array shaped source.
type ArrayItem struct {
	Key   string   `json:"key"`
	Value RawValue `json:"value"`
}

// UnmarshalJSON decodes an item. A key sent as a number or bool is kept as
// its JSON text; a null or missing key leaves Key empty.
func (it *ArrayItem) UnmarshalJSON(b []byte) error {
	var raw struct {
		Key   json.RawMessage `json:"key"`
		Value RawValue        `json:"value"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	key, err := scalarText(raw.Key)
	if err != nil {
		return err
	}
	*it = ArrayItem{Key: key, Value: raw.Value}
	return nil
}

func scalarText(b json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(b)
	switch {
	case len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")):
		return "", nil
	case trimmed[0] == '"':
		var s string
		err := json.Unmarshal(trimmed, &s)
		return s, err
	case trimmed[0] == '{' || trimmed[0] == '[':
		return "", fmt.Errorf("stat key is not a scalar: %s", trimmed)
	}
	return string(trimmed), nil
}

// ObjectItem is one entry of the object shaped source.
type ObjectItem struct {
	Label        string    `json:"label"`
	Value        RawValue  `json:"value"`
	Percentile   *float64  `json:"percentile,omitempty"`
	DisplayValue *RawValue `json:"displayValue,omitempty"`
}

// UnmarshalJSON decodes an item. The percentile may arrive as a number or
// as a numeric string ("42", "42%").
func (it *ObjectItem) UnmarshalJSON(b []byte) error {
	type plain ObjectItem
	var raw struct {
		plain
		Percentile *RawValue `json:"percentile,omitempty"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*it = ObjectItem(raw.plain)
	it.Percentile = nil
	if raw.Percentile != nil {
		p := raw.Percentile.Num
		if !raw.Percentile.IsNum {
			p = parseLeadingFloat(strings.ReplaceAll(raw.Percentile.Text, ",", ""))
		}
		it.Percentile = &p
	}
	return nil
}

func (it ObjectItem) hasPercentile() bool {
	return it.Percentile != nil && *it.Percentile != 0 && !math.IsNaN(*it.Percentile)
}

func (it ObjectItem) displaySource() RawValue {
	if it.DisplayValue != nil && !it.DisplayValue.falsy() {
		return *it.DisplayValue
	}
	return it.Value
}

// ObjectEntry pairs an opaque stat id with its item.
type ObjectEntry struct {
	ID   string
	Item ObjectItem
}

// ObjectSource is the object shaped source in document key order.
type ObjectSource []ObjectEntry
