// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package optional implements a generic container that holds either one
// value of type T or no value, replacing nil and zero-value sentinels
// with an explicit present/absent discriminant and a set of combinators
// over it.
package optional

import "fmt"

// Optional holds either exactly one value of type T or no value. The
// zero value is the absent Optional. Instances are immutable: every
// combinator returns a new Optional and none modifies its receiver, so
// concurrent reads need no synchronization.
type Optional[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{
		present: true,
		value:   v,
	}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr converts a pointer into an Optional, treating nil as absent.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (self Optional[T]) IsPresent() bool {
	return self.present
}

func (self Optional[T]) IsAbsent() bool {
	return !self.present
}

// IsPresentAnd reports whether the Optional holds a value satisfying
// predicate. The predicate is never called on an absent Optional.
func (self Optional[T]) IsPresentAnd(predicate func(T) bool) bool {
	return self.present && predicate(self.value)
}

// Value returns the held value, or the zero value of T when absent.
func (self Optional[T]) Value() T {
	return self.value
}

// Get returns the held value and whether it was present.
func (self Optional[T]) Get() (T, bool) {
	return self.value, self.present
}

// Unwrap returns the held value. It panics with an EmptyValueAccess
// carrying no message when the Optional is absent.
func (self Optional[T]) Unwrap() T {
	if !self.present {
		panic(EmptyValueAccess{})
	}
	return self.value
}

// Expect is Unwrap with a caller-supplied diagnostic attached to the
// failure.
func (self Optional[T]) Expect(message string) T {
	if !self.present {
		panic(EmptyValueAccess{Message: message})
	}
	return self.value
}

func (self Optional[T]) UnwrapOr(defaultValue T) T {
	if self.present {
		return self.value
	}
	return defaultValue
}

// UnwrapOrElse returns the held value, or the result of fn when absent.
// fn is never called on a present Optional.
func (self Optional[T]) UnwrapOrElse(fn func() T) T {
	if self.present {
		return self.value
	}
	return fn()
}

// UnwrapOrZero returns the held value, or the zero value of T when
// absent.
func (self Optional[T]) UnwrapOrZero() T {
	if self.present {
		return self.value
	}
	var zero T
	return zero
}

// Or returns self when present and other when absent. The alternative is
// evaluated by the caller either way; use OrElse when computing it is
// expensive or has side effects that must not happen unnecessarily.
func (self Optional[T]) Or(other Optional[T]) Optional[T] {
	if self.present {
		return self
	}
	return other
}

// OrElse returns self when present, otherwise the result of fn. fn is
// never called on a present Optional.
func (self Optional[T]) OrElse(fn func() Optional[T]) Optional[T] {
	if self.present {
		return self
	}
	return fn()
}

// Xor returns whichever of self and other is present when exactly one of
// them is. It is absent when both are present or both are absent.
func (self Optional[T]) Xor(other Optional[T]) Optional[T] {
	if self.present == other.present {
		return None[T]()
	}
	if self.present {
		return self
	}
	return other
}

// Filter returns self when it holds a value satisfying predicate, and an
// absent Optional otherwise. The predicate is never called on an absent
// Optional.
func (self Optional[T]) Filter(predicate func(T) bool) Optional[T] {
	if self.present && predicate(self.value) {
		return self
	}
	return None[T]()
}

// Inspect calls fn with the held value, if any, and returns self
// unchanged. It exists to allow side effects mid-chain.
func (self Optional[T]) Inspect(fn func(T)) Optional[T] {
	if self.present {
		fn(self.value)
	}
	return self
}

// ToPtr returns a pointer to a copy of the held value, or nil when
// absent. The pointer never aliases the Optional's own storage.
func (self Optional[T]) ToPtr() *T {
	if !self.present {
		return nil
	}
	v := self.value
	return &v
}

func (self Optional[T]) String() string {
	if self.present {
		return fmt.Sprintf("Some(%v)", self.value)
	}
	return "None"
}
