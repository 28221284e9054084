// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package optional

// The operations in this file change the payload type and are package
// functions because Go methods cannot declare additional type
// parameters.

// Map applies fn to the held value and wraps the result. An absent input
// produces an absent output without calling fn.
func Map[T any, U any](o Optional[T], fn func(T) U) Optional[U] {
	if !o.present {
		return None[U]()
	}
	return Some(fn(o.value))
}

// MapOr returns fn applied to the held value, or defaultValue when o is
// absent. The default is evaluated by the caller either way; use
// MapOrElse when computing it is expensive.
func MapOr[T any, U any](o Optional[T], defaultValue U, fn func(T) U) U {
	if !o.present {
		return defaultValue
	}
	return fn(o.value)
}

// MapOrElse returns fn applied to the held value, or the result of
// defaultFn when o is absent. Exactly one of the two functions is
// called.
func MapOrElse[T any, U any](o Optional[T], defaultFn func() U, fn func(T) U) U {
	if !o.present {
		return defaultFn()
	}
	return fn(o.value)
}

// And returns other when o is present, and an absent Optional otherwise.
// other is evaluated by the caller either way; use AndThen when it must
// only be computed from a present value.
func And[T any, U any](o Optional[T], other Optional[U]) Optional[U] {
	if !o.present {
		return None[U]()
	}
	return other
}

// AndThen returns the result of fn applied to the held value, or an
// absent Optional when o is absent. fn is never called on an absent
// input.
func AndThen[T any, U any](o Optional[T], fn func(T) Optional[U]) Optional[U] {
	if !o.present {
		return None[U]()
	}
	return fn(o.value)
}

// Pair is the payload produced by Zip.
type Pair[T any, U any] struct {
	First  T
	Second U
}

// Zip pairs the values of two Optionals. The result is absent unless
// both inputs are present.
func Zip[T any, U any](o Optional[T], other Optional[U]) Optional[Pair[T, U]] {
	if !o.present || !other.present {
		return None[Pair[T, U]]()
	}
	return Some(Pair[T, U]{First: o.value, Second: other.value})
}

// ZipWith combines the values of two Optionals with fn. The result is
// absent unless both inputs are present; fn is only called when it is.
func ZipWith[T any, U any, R any](o Optional[T], other Optional[U], fn func(T, U) R) Optional[R] {
	if !o.present || !other.present {
		return None[R]()
	}
	return Some(fn(o.value, other.value))
}

// Flatten removes one level of nesting.
func Flatten[T any](o Optional[Optional[T]]) Optional[T] {
	if !o.present {
		return None[T]()
	}
	return o.value
}
