package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Number is a JSON field that accepts either a number or a numeric string.
// The admin console historically submitted commission rates as strings, so
// string input is coerced at validation time; a non-numeric string is kept
// and reported as a field error instead of failing the whole decode.
type Number struct {
	value   float64
	defined bool
	invalid bool
	raw     string
}

// NumberFrom builds a defined Number, mainly for tests and re-validation.
func NumberFrom(v float64) Number {
	return Number{value: v, defined: true}
}

// Float64 returns the parsed value, or 0 when undefined or invalid.
func (n Number) Float64() float64 {
	if n.invalid {
		return 0
	}
	return n.value
}

// Defined reports whether the field was present in the input.
func (n Number) Defined() bool {
	return n.defined
}

// Invalid reports whether the input could not be coerced to a number.
func (n Number) Invalid() bool {
	return n.invalid
}

// Raw returns the original input for invalid values.
func (n Number) Raw() string {
	return n.raw
}

func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*n = Number{}
		return nil
	}

	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			*n = Number{defined: true, invalid: true, raw: str}
			return nil
		}
		*n = Number{value: v, defined: true}
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		// Booleans, objects, and arrays are coercion failures, not decode errors
		*n = Number{defined: true, invalid: true, raw: s}
		return nil
	}
	*n = Number{value: v, defined: true}
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Float64())
}
