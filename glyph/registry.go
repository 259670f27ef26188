package glyph

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"sync"
)

// Backend parses font data into a Face.
type Backend interface {
	// Parse parses TrueType or OpenType font data.
	Parse(data []byte) (Face, error)
}

// DefaultBackend is the name of the backend used when none is selected.
const DefaultBackend = "ximage"

var (
	registryMu sync.RWMutex
	registry   = map[string]Backend{
		"ximage":   ximageBackend{},
		"freetype": freetypeBackend{},
		"gotext":   gotextBackend{},
	}
)

// Register makes a backend available under name, replacing any backend
// already registered under it.
func Register(name string, b Backend) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = b
}

// Lookup returns the backend registered under name.
func Lookup(name string) (Backend, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	b, ok := registry[name]
	if !ok {
		return nil, &BackendError{Name: name}
	}
	return b, nil
}

// Backends returns the registered backend names in sorted order.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Parse parses font data with the named backend.
// An empty backend name selects DefaultBackend.
func Parse(data []byte, backend string) (Face, error) {
	if backend == "" {
		backend = DefaultBackend
	}
	b, err := Lookup(backend)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, &DecodeError{Backend: backend, Err: ErrEmptyData}
	}

	face, err := b.Parse(data)
	if err != nil {
		return nil, &DecodeError{Backend: backend, Err: err}
	}
	return face, nil
}

// ParseFile reads and parses the font file at path with the named backend.
func ParseFile(path, backend string) (Face, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("glyph: failed to read font file: %w", err)
	}

	face, err := Parse(data, backend)
	if err != nil {
		if de, ok := err.(*DecodeError); ok {
			de.Path = path
		}
		return nil, err
	}
	return face, nil
}

func checkSize(px float64) error {
	if !(px > 0) || math.IsInf(px, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSize, px)
	}
	return nil
}
