// Package store provides a type-safe key-value store shared by the actions
// of a running workflow
package store

import (
	"errors"
	"reflect"
)

// entry holds the serialized value plus its concrete Go type.
type entry struct {
	typ  reflect.Type
	blob []byte
}

// Common errors returned by the store
var (
	ErrNotFound     = errors.New("key not found")
	ErrTypeMismatch = errors.New("type mismatch on Get")
)
