package shape

// Option is a value that may be absent. The zero Option is absent.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns a present Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the held value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether no value is present.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Or returns o if it is present, otherwise other.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return other
}

// UnwrapOr returns the held value, or def if absent.
func (o Option[T]) UnwrapOr(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// MapOption applies f to the held value, if any.
func MapOption[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(f(o.value))
}

// Smart is either automatic (the engine decides) or a custom value.
// The zero Smart is automatic, so an explicit zero value stays distinct
// from "no opinion".
type Smart[T any] struct {
	value  T
	custom bool
}

// Auto returns an automatic Smart value.
func Auto[T any]() Smart[T] {
	return Smart[T]{}
}

// Custom returns a Smart holding an explicit value.
func Custom[T any](v T) Smart[T] {
	return Smart[T]{value: v, custom: true}
}

// IsAuto reports whether the value is automatic.
func (s Smart[T]) IsAuto() bool {
	return !s.custom
}

// IsCustom reports whether an explicit value is held.
func (s Smart[T]) IsCustom() bool {
	return s.custom
}

// Get returns the explicit value and whether one is held.
func (s Smart[T]) Get() (T, bool) {
	return s.value, s.custom
}

// UnwrapOr returns the explicit value, or def if automatic.
func (s Smart[T]) UnwrapOr(def T) T {
	if s.custom {
		return s.value
	}
	return def
}

// MapSmart applies f to the explicit value, if any.
func MapSmart[T, U any](s Smart[T], f func(T) U) Smart[U] {
	if !s.custom {
		return Auto[U]()
	}
	return Custom(f(s.value))
}
