package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/invopop/jsonschema"
	"github.com/morrisxyang/xreflect"
)

// KVStore is a threadsafe, type-aware in-memory store.
type KVStore struct {
	mu   sync.RWMutex
	data map[string]entry
}

// NewKVStore constructs an empty store.
func NewKVStore() *KVStore {
	return &KVStore{data: make(map[string]entry)}
}

// Put stores any Go value under key, capturing its concrete type.
func (s *KVStore) Put(key string, value interface{}) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	blob, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.data[key] = entry{typ: reflect.TypeOf(value), blob: blob}
	s.mu.Unlock()
	return nil
}

// Get retrieves and unmarshals key into a value of type T.
func Get[T any](s *KVStore, key string) (T, error) {
	var zero T
	if key == "" {
		return zero, errors.New("key cannot be empty")
	}

	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return zero, ErrNotFound
	}

	want := reflect.TypeOf((*T)(nil)).Elem()
	if e.typ != want {
		return zero, fmt.Errorf("%w: wanted %v, got %v",
			ErrTypeMismatch, want, e.typ)
	}

	var v T
	if err := json.Unmarshal(e.blob, &v); err != nil {
		return zero, err
	}

	return v, nil
}

// GetOrDefault retrieves a value of type T for the given key.
func GetOrDefault[T any](s *KVStore, key string, defaultValue T) (T, error) {
	value, err := Get[T](s, key)
	if err == ErrNotFound {
		return defaultValue, nil
	}
	return value, err
}

// Has reports whether key exists in the store.
func (s *KVStore) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.data[key]
	return ok
}

// Delete removes a key from the store.
func (s *KVStore) Delete(key string) bool {
	if key == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists := s.data[key]
	if exists {
		delete(s.data, key)
		return true
	}
	return false
}

// Clear removes all keys from the store.
func (s *KVStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]entry)
}

// ListKeys returns all stored keys.
func (s *KVStore) ListKeys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.data))
	for k := range s.data {
		out = append(out, k)
	}
	return out
}

// Count returns the number of entries in the store.
func (s *KVStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// KeysByType returns all keys whose stored value has type T.
func KeysByType[T any](s *KVStore) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	want := reflect.TypeOf((*T)(nil)).Elem()
	keys := []string{}

	for k, e := range s.data {
		if e.typ == want {
			keys = append(keys, k)
		}
	}
	return keys
}

// GetTypeSchema returns a JSON Schema representation of the stored value's type.
func (s *KVStore) GetTypeSchema(key string) (interface{}, error) {
	if key == "" {
		return nil, errors.New("key cannot be empty")
	}

	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}

	return TypeToSchema(e.typ), nil
}

// TypeToSchema converts a reflect.Type to a JSON schema.
func TypeToSchema(t reflect.Type) interface{} {
	instance := reflect.New(t).Interface()
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
	}
	return reflector.Reflect(instance)
}

// UpdateField updates a single field in a stored object using dot notation.
func (s *KVStore) UpdateField(key string, fieldPath string, fieldValue interface{}) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	if fieldPath == "" {
		return errors.New("fieldPath cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[key]
	if !ok {
		return ErrNotFound
	}

	instance := reflect.New(e.typ).Interface()
	if err := json.Unmarshal(e.blob, instance); err != nil {
		return err
	}

	if err := xreflect.SetEmbedField(instance, fieldPath, fieldValue); err != nil {
		return fmt.Errorf("failed to update field: %w", err)
	}

	newBlob, err := json.Marshal(instance)
	if err != nil {
		return err
	}

	s.data[key] = entry{typ: e.typ, blob: newBlob}
	return nil
}
