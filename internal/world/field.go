package world

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field is an optional attribute value that remembers whether the user
// specified it. A locked field is immune to regeneration: Replace,
// ReplaceWith and Clear are no-ops on it.
type Field[T any] struct {
	locked  bool
	present bool
	value   T
}

// NewField returns a locked field holding value.
func NewField[T any](value T) Field[T] {
	return Field[T]{locked: true, present: true, value: value}
}

// GeneratedField returns an unlocked field holding value.
func GeneratedField[T any](value T) Field[T] {
	return Field[T]{present: true, value: value}
}

// EmptyField returns an empty field with the given lock state.
func EmptyField[T any](locked bool) Field[T] {
	return Field[T]{locked: locked}
}

func (f *Field[T]) IsLocked() bool   { return f.locked }
func (f *Field[T]) IsUnlocked() bool { return !f.locked }
func (f *Field[T]) IsSome() bool     { return f.present }
func (f *Field[T]) IsNone() bool     { return !f.present }

func (f *Field[T]) Lock()   { f.locked = true }
func (f *Field[T]) Unlock() { f.locked = false }

// Value returns the held value and whether one is present.
func (f *Field[T]) Value() (T, bool) {
	return f.value, f.present
}

// ValueOr returns the held value, or fallback when empty.
func (f *Field[T]) ValueOr(fallback T) T {
	if !f.present {
		return fallback
	}
	return f.value
}

// ValuePtr exposes the held value for in-place mutation. It returns nil when
// the field is empty. Mutation through the pointer ignores the lock.
func (f *Field[T]) ValuePtr() *T {
	if !f.present {
		return nil
	}
	return &f.value
}

func (f *Field[T]) Replace(value T) {
	f.ReplaceWith(func(T, bool) T { return value })
}

// ReplaceWith calls fn with the previous value and stores its result, unless
// the field is locked.
func (f *Field[T]) ReplaceWith(fn func(old T, ok bool) T) {
	if f.locked {
		return
	}
	f.value = fn(f.value, f.present)
	f.present = true
}

func (f *Field[T]) Clear() {
	if f.locked {
		return
	}
	var zero T
	f.value = zero
	f.present = false
}

func (f Field[T]) String() string {
	if !f.present {
		return ""
	}
	return fmt.Sprint(f.value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.present {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

// UnmarshalJSON decodes a stored value as locked: anything persisted was
// accepted by the user.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*f = Field[T]{locked: true}
		return nil
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*f = NewField(value)
	return nil
}
