package ez

import (
	"bytes"
	"encoding/json"
	"reflect"
)

// Optional records whether a JSON field was present. An explicit null is
// rejected with a *json.UnmarshalTypeError, so the decoder reports it
// against the field name like any other type mismatch.
type Optional[T any] struct {
	Value T
	Set   bool
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return &json.UnmarshalTypeError{Value: "null", Type: reflect.TypeOf((*T)(nil)).Elem()}
	}
	if err := json.Unmarshal(b, &o.Value); err != nil {
		return err
	}
	o.Set = true
	return nil
}

// Ptr returns nil when the field was absent.
func (o Optional[T]) Ptr() *T {
	if !o.Set {
		return nil
	}
	v := o.Value
	return &v
}
