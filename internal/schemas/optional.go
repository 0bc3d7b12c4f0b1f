package schemas

import (
	"bytes"
	"encoding/json"

	"github.com/samber/mo"
)

// Optional is a JSON field that distinguishes "absent" from "explicitly
// null" from "set to a value". Partial updates must not reset stored values
// for fields the caller never mentioned, so a plain pointer is not enough.
type Optional[T any] struct {
	present bool
	value   mo.Option[T]
}

// Set returns an Optional carrying v.
func Set[T any](v T) Optional[T] {
	return Optional[T]{present: true, value: mo.Some(v)}
}

// SetNull returns an Optional that was explicitly set to null.
func SetNull[T any]() Optional[T] {
	return Optional[T]{present: true, value: mo.None[T]()}
}

// Present reports whether the field appeared in the request at all.
func (o Optional[T]) Present() bool {
	return o.present
}

// Null reports whether the field was explicitly set to null.
func (o Optional[T]) Null() bool {
	return o.present && o.value.IsAbsent()
}

// Get returns the value and whether one was set (false for absent or null).
func (o Optional[T]) Get() (T, bool) {
	return o.value.Get()
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.present = true
	if bytes.Equal(b, []byte("null")) {
		o.value = mo.None[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.value = mo.Some(v)
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if v, ok := o.value.Get(); ok {
		return json.Marshal(v)
	}
	return []byte("null"), nil
}
