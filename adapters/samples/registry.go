// Package samples loads batches of measurement samples from files.
package samples

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"corrosion-rate/core/types"
	"corrosion-rate/internal/errors"
)

// Loader reads samples from one file format
type Loader interface {
	// Name returns the loader name
	Name() string

	// CanLoad reports whether the loader handles the path
	CanLoad(path string) bool

	// Load parses the file. Samples are returned in file order and are not
	// validated; the engine does that per sample.
	Load(ctx context.Context, path string) ([]*types.Sample, error)
}

// Registry manages loader registration and lookup
type Registry struct {
	mu      sync.RWMutex
	loaders map[string]Loader
	order   []string
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		loaders: make(map[string]Loader),
	}
}

// Register adds a loader to the registry
func (r *Registry) Register(loader Loader) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := loader.Name()
	if _, exists := r.loaders[name]; exists {
		return fmt.Errorf("loader already registered: %s", name)
	}
	r.loaders[name] = loader
	r.order = append(r.order, name)
	return nil
}

// Detect returns the first loader, in registration order, that handles path
func (r *Registry) Detect(path string) (Loader, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range r.order {
		if l := r.loaders[name]; l.CanLoad(path) {
			return l, nil
		}
	}
	return nil, errors.NotSupported(fmt.Sprintf("sample file type %q", filepath.Ext(path))).
		WithContext("path", path)
}

// Load detects the format and loads path
func (r *Registry) Load(ctx context.Context, path string) ([]*types.Sample, error) {
	loader, err := r.Detect(path)
	if err != nil {
		return nil, err
	}
	return loader.Load(ctx, path)
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns a registry holding every built-in loader
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		for _, l := range []Loader{NewHCLLoader(), NewYAMLLoader(), NewJSONLoader(), NewXLSXLoader()} {
			_ = defaultRegistry.Register(l)
		}
	})
	return defaultRegistry
}

// Load reads samples with the default registry
func Load(ctx context.Context, path string) ([]*types.Sample, error) {
	return Default().Load(ctx, path)
}

func hasExt(path string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
