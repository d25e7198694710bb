package di

import (
	"errors"
	"strconv"
)

// ErrNilTarget is returned when an injector is applied to a nil service
// or a service with a nil Val.
var ErrNilTarget = errors.New("di: nil target service")

// DependencyKey identifies a dependency stored in a Service's Deps bag.
//
// Keys are typically package-level constants:
//
//	const KeyOutput di.DependencyKey = "output"
type DependencyKey string

// Key converts a string into a DependencyKey.
func Key(name string) DependencyKey { return DependencyKey(name) }

// DuplicateKeyError is returned when an injector attempts to register a dependency
// under a key that already exists in the target Service.
type DuplicateKeyError struct{ Key DependencyKey }

// Error implements the error interface.
func (e DuplicateKeyError) Error() string {
	// Example: di: duplicate dependency key "output"
	return "di: duplicate dependency key " + strconv.Quote(string(e.Key))
}

// NilDependencyServiceError indicates a nil dependency service for a specific key.
type NilDependencyServiceError struct{ Key DependencyKey }

// Error implements the error interface.
func (e NilDependencyServiceError) Error() string {
	// Example: di: nil dependency service for key "output"
	return "di: nil dependency service for key " + strconv.Quote(string(e.Key))
}

// NilBindError indicates a nil bind function for a specific key.
type NilBindError struct{ Key DependencyKey }

// Error implements the error interface.
func (e NilBindError) Error() string {
	return "di: nil bind function for key " + strconv.Quote(string(e.Key))
}

// Service wraps a constructed value plus the dependencies wired into it.
//
// Deps is keyed by DependencyKey and stores the dependency pointers for
// introspection; typed retrieval is available via GetAs.
type Service[T any] struct {
	Val  *T
	Deps map[DependencyKey]any
}

// Init constructs a Service by calling ctor and initializing the dependency bag.
func Init[T any](ctor func() *T) *Service[T] {
	return &Service[T]{Val: ctor(), Deps: make(map[DependencyKey]any)}
}

// Value returns the constructed value pointer.
func (s *Service[T]) Value() *T { return s.Val }

// Injector mutates a Service in-place and returns an error if wiring fails.
type Injector[T any] func(*Service[T]) error

// With applies a single injector to the Service.
//
// If inj is nil, With is a no-op and returns (s, nil).
func (s *Service[T]) With(inj Injector[T]) (*Service[T], error) {
	if inj == nil {
		return s, nil
	}
	if err := inj(s); err != nil {
		return s, err
	}
	return s, nil
}

// WithAll applies multiple injectors in order and stops at the first error.
func (s *Service[T]) WithAll(deps ...Injector[T]) (*Service[T], error) {
	for _, inj := range deps {
		if _, err := s.With(inj); err != nil {
			return s, err
		}
	}
	return s, nil
}

// Injecting builds an Injector that records dep under key and calls bind to
// attach it to the target.
//
// The returned injector fails if:
//   - the target service (or its Val) is nil (ErrNilTarget)
//   - the dependency service (or its Val) is nil (NilDependencyServiceError)
//   - bind is nil (NilBindError)
//   - key already exists in the target's Deps (DuplicateKeyError)
func Injecting[T any, D any](
	key DependencyKey,
	dep *Service[D],
	bind func(target *T, dependency *D),
) Injector[T] {
	return func(s *Service[T]) error {
		if s == nil || s.Val == nil {
			return ErrNilTarget
		}
		if dep == nil || dep.Val == nil {
			return NilDependencyServiceError{Key: key}
		}
		if bind == nil {
			return NilBindError{Key: key}
		}
		if s.Deps == nil {
			s.Deps = make(map[DependencyKey]any)
		}
		if _, exists := s.Deps[key]; exists {
			return DuplicateKeyError{Key: key}
		}

		d := dep.Val
		s.Deps[key] = d
		bind(s.Val, d)
		return nil
	}
}

// Has reports whether a dependency exists for the key (regardless of type).
func (s *Service[T]) Has(key DependencyKey) bool {
	if s == nil || s.Deps == nil {
		return false
	}
	_, ok := s.Deps[key]
	return ok
}

// GetAs returns the dependency typed as *D.
//
// ok is false if the key is missing or the stored value is not a *D.
func GetAs[T any, D any](s *Service[T], key DependencyKey) (*D, bool) {
	if s == nil || s.Deps == nil {
		return nil, false
	}
	raw, ok := s.Deps[key]
	if !ok || raw == nil {
		return nil, false
	}
	d, ok := raw.(*D)
	return d, ok
}
