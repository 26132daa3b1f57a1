package patch

import (
	"bytes"
	"encoding/json"
)

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Nullable distinguishes an absent field from an explicit null in a JSON patch.
//
//	absent:  Set == false
//	null:    Set == true, Value == nil
//	value:   Set == true, Value != nil
type Nullable[T any] struct {
	Set   bool
	Value *T
}

func Some[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: &v}
}

func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

func (n Nullable[T]) IsNull() bool {
	return n.Set && n.Value == nil
}

// Resolve applies the patch to current.
func (n Nullable[T]) Resolve(current *T) *T {
	if !n.Set {
		return current
	}
	return n.Value
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}
