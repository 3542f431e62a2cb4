package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
)

// Payload is the {"data": {...}} request envelope, kept dynamic on
// purpose: validation steps have to distinguish "field missing" from
// "field present but invalid", and a missing envelope counts as every
// field missing.
type Payload struct {
	data map[string]any
}

type envelope struct {
	Data map[string]any `json:"data"`
}

// Decode reads a request body into a Payload. An empty body decodes to
// an empty payload; invalid JSON is the caller's error to report.
func Decode(r io.Reader) (Payload, error) {
	var env envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		if errors.Is(err, io.EOF) {
			return Payload{}, nil
		}
		return Payload{}, fmt.Errorf("decode body: %w", err)
	}
	return Payload{data: env.Data}, nil
}

// FromMap builds a Payload directly, bypassing JSON. Test helper mostly.
func FromMap(data map[string]any) Payload { return Payload{data: data} }

// Field returns the raw value, or nil when absent.
func (p Payload) Field(name string) any {
	if p.data == nil {
		return nil
	}
	return p.data[name]
}

// Has reports whether the field is present and non-empty. Absent, null,
// false, "" and numeric 0 all count as missing; arrays and objects are
// present even when empty.
func (p Payload) Has(name string) bool { return truthy(p.Field(name)) }

// String returns the field as a string, "" when absent or not a string.
func (p Payload) String(name string) string {
	s, _ := p.Field(name).(string)
	return s
}

// Int returns the field as an integer. ok is false when the value is
// absent, not a number, or has a fractional part.
func (p Payload) Int(name string) (int, bool) { return IntValue(p.Field(name)) }

// Slice returns the field as an array, ok false for anything else.
func (p Payload) Slice(name string) ([]any, bool) {
	s, ok := p.Field(name).([]any)
	return s, ok
}

// IntValue converts a decoded JSON value to an int. JSON numbers arrive
// as float64; only values without a fractional part qualify.
func IntValue(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	if math.Trunc(f) != f || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	default:
		return true
	}
}
