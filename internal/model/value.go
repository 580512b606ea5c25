package model

import (
	"encoding/json"
	"strconv"
)

// Value is an aggregation result: either text or a whole number.
type Value struct {
	text     string
	number   int
	isNumber bool
}

// TextValue wraps s as a text result.
func TextValue(s string) Value {
	return Value{text: s}
}

// NumberValue wraps n as a numeric result.
func NumberValue(n int) Value {
	return Value{number: n, isNumber: true}
}

// IsNumber reports whether v holds a number.
func (v Value) IsNumber() bool {
	return v.isNumber
}

// Number returns the numeric payload; zero for text values.
func (v Value) Number() int {
	return v.number
}

// String renders v the way it is compared and displayed.
func (v Value) String() string {
	if v.isNumber {
		return strconv.Itoa(v.number)
	}
	return v.text
}

// Interface returns the underlying Go value (string or int).
func (v Value) Interface() any {
	if v.isNumber {
		return v.number
	}
	return v.text
}

// MarshalJSON emits numbers as JSON numbers and text as strings.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// Update is one key/value write handed to the frontmatter writer.
type Update struct {
	Key       string `json:"key"`
	Value     Value  `json:"value"`
	Overwrite bool   `json:"overwrite"`
}
