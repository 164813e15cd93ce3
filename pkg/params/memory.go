package params

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrAlreadyDeclared is returned when a parameter name is declared twice.
var ErrAlreadyDeclared = errors.New("parameter already declared")

// declared is one resolved parameter held by a MemoryStore.
type declared struct {
	value Value
	desc  Descriptor
}

// MemoryStore is an in-process parameter store. Overrides seeded with
// SetOverride win over declaration defaults, mirroring how operators
// inject values before an endpoint is constructed.
type MemoryStore struct {
	mu        sync.Mutex
	overrides map[string]Value
	params    map[string]declared
}

// NewMemoryStore returns an empty store with no overrides.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		overrides: make(map[string]Value),
		params:    make(map[string]declared),
	}
}

// SetOverride seeds an operator override for a parameter that has not
// been declared yet. Declaring that name later yields v instead of the
// declaration default.
func (s *MemoryStore) SetOverride(name string, v Value) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[name] = v
}

// SetOverrides seeds a batch of overrides, e.g. one loaded from an
// override file.
func (s *MemoryStore) SetOverrides(values map[string]Value) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, v := range values {
		s.overrides[name] = v
	}
}

// Declare implements Store. The effective value is the seeded override
// when one exists, otherwise def. An override whose kind differs from
// def's is rejected.
func (s *MemoryStore) Declare(name string, def Value, desc Descriptor) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.params[name]; ok {
		return Value{}, fmt.Errorf("%w: %s", ErrAlreadyDeclared, name)
	}

	effective := def
	if override, ok := s.overrides[name]; ok {
		if override.Kind() != def.Kind() {
			return Value{}, fmt.Errorf(
				"override for %s has type %s, expected %s", name, override.Kind(), def.Kind())
		}
		effective = override
	}

	s.params[name] = declared{value: effective, desc: desc}
	return effective, nil
}

// Get returns the effective value of a declared parameter.
func (s *MemoryStore) Get(name string) (Value, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.params[name]
	return d.value, ok
}

// Describe returns the descriptor a parameter was declared with.
func (s *MemoryStore) Describe(name string) (Descriptor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.params[name]
	return d.desc, ok
}

// ByPrefix returns the names of all declared parameters under prefix,
// sorted for deterministic iteration.
func (s *MemoryStore) ByPrefix(prefix string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var names []string
	for name := range s.params {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
